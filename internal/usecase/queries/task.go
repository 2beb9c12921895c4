package queries

import (
	"context"
	"time"

	"fleetops/internal/domain/deadline"
	"fleetops/internal/pkg/clock"

	"github.com/google/uuid"
)

type TaskBoardItem struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Type          string     `json:"type"`
	Category      string     `json:"category"`
	AssigneeID    *uuid.UUID `json:"assignee_id,omitempty"`
	Status        string     `json:"status"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	BookingID     *uuid.UUID `json:"booking_id,omitempty"`
	Priority      int        `json:"priority"`
	DeadlineState string     `json:"deadline_state"`
	// SecondsLeft is negative when overdue; omitted for tasks without a deadline.
	SecondsLeft *int64 `json:"seconds_left,omitempty"`
}

type TaskQueries interface {
	ListBoard(ctx context.Context) ([]*TaskBoardItem, error)
}

type TaskViewRepo interface {
	ListAll(ctx context.Context) ([]*TaskBoardItem, error)
}

type taskQueriesImpl struct {
	repo TaskViewRepo
	cl   clock.Clock
}

func NewTaskQueries(repo TaskViewRepo, cl clock.Clock) TaskQueries {
	return &taskQueriesImpl{repo: repo, cl: cl}
}

// ListBoard loads open tasks and buckets each by deadline urgency so the board
// can group them without re-deriving the thresholds client-side.
func (q *taskQueriesImpl) ListBoard(ctx context.Context) ([]*TaskBoardItem, error) {
	items, err := q.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := q.cl.Now()
	for _, it := range items {
		completed := it.Status == "done"
		if it.Deadline == nil {
			if completed {
				it.DeadlineState = string(deadline.StateCompleted)
			} else {
				it.DeadlineState = string(deadline.StateScheduled)
			}
			continue
		}
		c := deadline.Classify(*it.Deadline, completed, now)
		it.DeadlineState = string(c.State)
		if c.State != deadline.StateCompleted {
			secs := int64(c.Until / time.Second)
			it.SecondsLeft = &secs
		}
	}
	return items, nil
}
