package schedule

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventRental      EventType = "rental"
	EventMaintenance EventType = "maintenance"
	EventRepair      EventType = "repair"
	EventExtension   EventType = "extension"
)

func (t EventType) String() string {
	return string(t)
}

type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// CalendarEvent is a scheduled occupation of a vehicle.
type CalendarEvent struct {
	id        uuid.UUID
	vehicleID uuid.UUID
	eventType EventType
	title     string
	interval  Interval
	status    EventStatus
	priority  int
}

// NewExtensionBlock is the only event this service creates itself; rental and
// maintenance blocks arrive from fleet planning.
func NewExtensionBlock(vehicleID uuid.UUID, title string, interval Interval) *CalendarEvent {
	return &CalendarEvent{
		id:        uuid.New(),
		vehicleID: vehicleID,
		eventType: EventExtension,
		title:     title,
		interval:  interval,
		status:    EventScheduled,
		priority:  1,
	}
}

func ReconstructCalendarEvent(
	id, vehicleID uuid.UUID,
	eventType EventType,
	title string,
	interval Interval,
	status EventStatus,
	priority int,
) *CalendarEvent {
	return &CalendarEvent{
		id:        id,
		vehicleID: vehicleID,
		eventType: eventType,
		title:     title,
		interval:  interval,
		status:    status,
		priority:  priority,
	}
}

func (e *CalendarEvent) ID() uuid.UUID        { return e.id }
func (e *CalendarEvent) VehicleID() uuid.UUID { return e.vehicleID }
func (e *CalendarEvent) Type() EventType      { return e.eventType }
func (e *CalendarEvent) Title() string        { return e.title }
func (e *CalendarEvent) Interval() Interval   { return e.interval }
func (e *CalendarEvent) Status() EventStatus  { return e.status }
func (e *CalendarEvent) Priority() int        { return e.priority }

func (e *CalendarEvent) OccupiesAt(t time.Time) bool {
	return !t.Before(e.interval.Start()) && t.Before(e.interval.End())
}
