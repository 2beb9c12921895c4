package response

import (
	"time"

	"fleetops/internal/usecase/queries"

	"github.com/google/uuid"
)

type TaskBoardItemResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Type          string     `json:"type"`
	Category      string     `json:"category"`
	AssigneeID    *uuid.UUID `json:"assigneeId,omitempty"`
	Status        string     `json:"status"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	BookingID     *uuid.UUID `json:"bookingId,omitempty"`
	Priority      int        `json:"priority"`
	DeadlineState string     `json:"deadlineState"`
	SecondsLeft   *int64     `json:"secondsLeft,omitempty"`
}

func FromTaskBoardItem(it *queries.TaskBoardItem) *TaskBoardItemResponse {
	return &TaskBoardItemResponse{
		ID:            it.ID,
		Title:         it.Title,
		Type:          it.Type,
		Category:      it.Category,
		AssigneeID:    it.AssigneeID,
		Status:        it.Status,
		Deadline:      it.Deadline,
		BookingID:     it.BookingID,
		Priority:      it.Priority,
		DeadlineState: it.DeadlineState,
		SecondsLeft:   it.SecondsLeft,
	}
}
