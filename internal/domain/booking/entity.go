package booking

import (
	"time"

	"fleetops/internal/domain/audit"
	"fleetops/internal/domain/billing"
	"fleetops/internal/domain/extension"
	"fleetops/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is the rental aggregate root. All mutation goes through the status
// machine (status) and the extension lifecycle commands (extensions, invoices,
// history); children are appended and never physically removed.
type Booking struct {
	id         uuid.UUID
	code       string
	clientID   uuid.UUID
	vehicleID  uuid.UUID
	driverID   *uuid.UUID
	status     Status
	interval   schedule.Interval
	pickup     string
	dropoff    string
	total      decimal.Decimal
	paid       decimal.Decimal
	deposit    decimal.Decimal
	currency   string
	priority   Priority
	targetTime *time.Time
	ownerID    uuid.UUID

	extensions []*extension.Extension
	invoices   []*billing.Invoice
	history    []audit.HistoryEntry
	timeline   []audit.TimelineEntry

	persistedHistory  int
	persistedTimeline int
}

// BookingParams carries the full persisted state for reconstruction.
type BookingParams struct {
	ID         uuid.UUID
	Code       string
	ClientID   uuid.UUID
	VehicleID  uuid.UUID
	DriverID   *uuid.UUID
	Status     Status
	Interval   schedule.Interval
	Pickup     string
	Dropoff    string
	Total      decimal.Decimal
	Paid       decimal.Decimal
	Deposit    decimal.Decimal
	Currency   string
	Priority   Priority
	TargetTime *time.Time
	OwnerID    uuid.UUID
	Extensions []*extension.Extension
	Invoices   []*billing.Invoice
	History    []audit.HistoryEntry
	Timeline   []audit.TimelineEntry
}

func ReconstructBooking(p BookingParams) *Booking {
	return &Booking{
		id:                p.ID,
		code:              p.Code,
		clientID:          p.ClientID,
		vehicleID:         p.VehicleID,
		driverID:          p.DriverID,
		status:            p.Status,
		interval:          p.Interval,
		pickup:            p.Pickup,
		dropoff:           p.Dropoff,
		total:             p.Total,
		paid:              p.Paid,
		deposit:           p.Deposit,
		currency:          p.Currency,
		priority:          p.Priority,
		targetTime:        p.TargetTime,
		ownerID:           p.OwnerID,
		extensions:        p.Extensions,
		invoices:          p.Invoices,
		history:           p.History,
		timeline:          p.Timeline,
		persistedHistory:  len(p.History),
		persistedTimeline: len(p.Timeline),
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) Code() string                { return b.code }
func (b *Booking) ClientID() uuid.UUID         { return b.clientID }
func (b *Booking) VehicleID() uuid.UUID        { return b.vehicleID }
func (b *Booking) DriverID() *uuid.UUID        { return b.driverID }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Interval() schedule.Interval { return b.interval }
func (b *Booking) Pickup() string              { return b.pickup }
func (b *Booking) Dropoff() string             { return b.dropoff }
func (b *Booking) Total() decimal.Decimal      { return b.total }
func (b *Booking) Paid() decimal.Decimal       { return b.paid }
func (b *Booking) Deposit() decimal.Decimal    { return b.deposit }
func (b *Booking) Currency() string            { return b.currency }
func (b *Booking) Priority() Priority          { return b.priority }
func (b *Booking) TargetTime() *time.Time      { return b.targetTime }
func (b *Booking) OwnerID() uuid.UUID          { return b.ownerID }

// Outstanding is the unpaid part of the base rental.
func (b *Booking) Outstanding() decimal.Decimal {
	out := b.total.Sub(b.paid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// applyStatus is called by the status machine only. The SLA checkpoint cannot
// survive into a stage that disallows it.
func (b *Booking) applyStatus(s Status) {
	b.status = s
	if !s.AllowsTargetTime() {
		b.targetTime = nil
	}
}

func (b *Booking) AssignDriver(driverID uuid.UUID) {
	id := driverID
	b.driverID = &id
}

// SetTargetTime sets the SLA checkpoint. It is only legal while the booking is
// in new, preparation or delivery.
func (b *Booking) SetTargetTime(t time.Time) bool {
	if !b.status.AllowsTargetTime() {
		return false
	}
	b.targetTime = &t
	return true
}

func (b *Booking) ClearTargetTime() {
	b.targetTime = nil
}

func (b *Booking) Extensions() []*extension.Extension {
	return b.extensions
}

// ActiveExtensions returns the non-cancelled extensions in order.
func (b *Booking) ActiveExtensions() []*extension.Extension {
	var out []*extension.Extension
	for _, e := range b.extensions {
		if !e.IsCancelled() {
			out = append(out, e)
		}
	}
	return out
}

func (b *Booking) ExtensionByID(id uuid.UUID) *extension.Extension {
	for _, e := range b.extensions {
		if e.ID() == id {
			return e
		}
	}
	return nil
}

// NextExtensionNumber counts every existing extension, cancelled included, so
// codes stay unique over the booking's life.
func (b *Booking) NextExtensionNumber() int {
	return len(b.extensions) + 1
}

func (b *Booking) AddExtension(e *extension.Extension) {
	b.extensions = append(b.extensions, e)
}

func (b *Booking) Invoices() []*billing.Invoice {
	return b.invoices
}

func (b *Booking) AddInvoice(inv *billing.Invoice) {
	b.invoices = append(b.invoices, inv)
}

func (b *Booking) AppendHistory(at time.Time, text string) {
	b.history = append(b.history, audit.HistoryEntry{At: at, Text: text})
}

func (b *Booking) AppendTimeline(at time.Time, tag, text string) {
	b.timeline = append(b.timeline, audit.TimelineEntry{At: at, Tag: tag, Text: text})
}

func (b *Booking) History() []audit.HistoryEntry   { return b.history }
func (b *Booking) Timeline() []audit.TimelineEntry { return b.timeline }

// UnsavedHistory returns history entries appended since the aggregate was
// loaded; repositories persist exactly these.
func (b *Booking) UnsavedHistory() []audit.HistoryEntry {
	return b.history[b.persistedHistory:]
}

func (b *Booking) UnsavedTimeline() []audit.TimelineEntry {
	return b.timeline[b.persistedTimeline:]
}
