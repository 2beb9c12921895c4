package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

type Type string

const (
	TypePreparation Type = "preparation"
	TypeDelivery    Type = "delivery"
	TypeReturn      Type = "return"
)

// Task is a unit of field work rendered by the external task board. This
// service creates tasks; completion is the board's concern.
type Task struct {
	id         uuid.UUID
	title      string
	taskType   Type
	category   string
	assigneeID *uuid.UUID
	status     Status
	deadline   time.Time
	bookingID  *uuid.UUID
	priority   int
}

// NewExtensionPreparation is the one task the extension lifecycle creates per
// confirmed extension: prepare the vehicle before the extension starts.
func NewExtensionPreparation(bookingID uuid.UUID, extensionLabel string, deadline time.Time, assigneeID *uuid.UUID) *Task {
	bid := bookingID
	return &Task{
		id:         uuid.New(),
		title:      fmt.Sprintf("Prepare vehicle for %s", extensionLabel),
		taskType:   TypePreparation,
		category:   "extension",
		assigneeID: assigneeID,
		status:     StatusOpen,
		deadline:   deadline,
		bookingID:  &bid,
		priority:   1,
	}
}

func Reconstruct(
	id uuid.UUID,
	title string,
	taskType Type,
	category string,
	assigneeID *uuid.UUID,
	status Status,
	deadline time.Time,
	bookingID *uuid.UUID,
	priority int,
) *Task {
	return &Task{
		id:         id,
		title:      title,
		taskType:   taskType,
		category:   category,
		assigneeID: assigneeID,
		status:     status,
		deadline:   deadline,
		bookingID:  bookingID,
		priority:   priority,
	}
}

func (t *Task) ID() uuid.UUID          { return t.id }
func (t *Task) Title() string          { return t.title }
func (t *Task) Type() Type             { return t.taskType }
func (t *Task) Category() string       { return t.category }
func (t *Task) AssigneeID() *uuid.UUID { return t.assigneeID }
func (t *Task) Status() Status         { return t.status }
func (t *Task) Deadline() time.Time    { return t.deadline }
func (t *Task) BookingID() *uuid.UUID  { return t.bookingID }
func (t *Task) Priority() int          { return t.priority }

func (t *Task) IsCompleted() bool {
	return t.status == StatusDone
}
