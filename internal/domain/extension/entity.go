package extension

import (
	"fmt"
	"time"

	"fleetops/internal/domain/audit"
	"fleetops/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Extension is an additional rental interval appended after a booking's (or a
// prior extension's) end. Once created it is never deleted; cancellation flips
// the status and zeroes the outstanding amount.
type Extension struct {
	id        uuid.UUID
	code      string
	label     string
	interval  schedule.Interval
	status    Status
	pricing   Pricing
	ledger    PaymentLedger
	riskFlags []string
	invoiceID uuid.UUID
	taskID    uuid.UUID
	timeline  []audit.TimelineEntry

	persistedTimeline int
}

// Code builds the deterministic human code for the n-th extension of a booking.
func Code(bookingCode string, n int) string {
	return fmt.Sprintf("EXT-%s-%d", bookingCode, n)
}

// Label builds the display label for the n-th extension.
func Label(n int) string {
	return fmt.Sprintf("Extension #%d", n)
}

// Confirm creates a confirmed extension. riskFlags are the slugified advisory
// findings frozen at confirmation time.
func Confirm(
	bookingCode string,
	n int,
	interval schedule.Interval,
	pricing Pricing,
	riskFlags []string,
	invoiceID, taskID uuid.UUID,
	now time.Time,
) (*Extension, error) {
	total := pricing.Total()
	if !total.IsPositive() {
		return nil, ErrNonPositiveTotal
	}

	e := &Extension{
		id:        uuid.New(),
		code:      Code(bookingCode, n),
		label:     Label(n),
		interval:  interval,
		status:    StatusConfirmed,
		pricing:   pricing,
		ledger:    NewPaymentLedger(total, decimal.Zero),
		riskFlags: riskFlags,
		invoiceID: invoiceID,
		taskID:    taskID,
	}
	e.appendTimeline(now, "extension", fmt.Sprintf("%s confirmed for %s", e.label, interval))
	return e, nil
}

func Reconstruct(
	id uuid.UUID,
	code, label string,
	interval schedule.Interval,
	status Status,
	pricing Pricing,
	ledger PaymentLedger,
	riskFlags []string,
	invoiceID, taskID uuid.UUID,
	timeline []audit.TimelineEntry,
) *Extension {
	return &Extension{
		id:                id,
		code:              code,
		label:             label,
		interval:          interval,
		status:            status,
		pricing:           pricing,
		ledger:            ledger,
		riskFlags:         riskFlags,
		invoiceID:         invoiceID,
		taskID:            taskID,
		timeline:          timeline,
		persistedTimeline: len(timeline),
	}
}

func (e *Extension) ID() uuid.UUID               { return e.id }
func (e *Extension) Code() string                { return e.code }
func (e *Extension) Label() string               { return e.label }
func (e *Extension) Interval() schedule.Interval { return e.interval }
func (e *Extension) Status() Status              { return e.status }
func (e *Extension) Pricing() Pricing            { return e.pricing }
func (e *Extension) Ledger() PaymentLedger       { return e.ledger }
func (e *Extension) RiskFlags() []string         { return e.riskFlags }
func (e *Extension) InvoiceID() uuid.UUID        { return e.invoiceID }
func (e *Extension) TaskID() uuid.UUID           { return e.taskID }

func (e *Extension) IsCancelled() bool {
	return e.status == StatusCancelled
}

// Cancel flips the extension to cancelled and forces the outstanding amount to
// zero. The record is retained; lastPaymentAt survives for auditability.
// Returns false when the extension was already cancelled (informational no-op).
func (e *Extension) Cancel(now time.Time) bool {
	if e.status == StatusCancelled {
		return false
	}
	e.status = StatusCancelled
	e.ledger.outstanding = decimal.Zero
	e.appendTimeline(now, "cancelled", fmt.Sprintf("%s cancelled", e.label))
	return true
}

func (e *Extension) Timeline() []audit.TimelineEntry {
	return e.timeline
}

// UnsavedTimeline returns the entries appended since the extension was loaded.
func (e *Extension) UnsavedTimeline() []audit.TimelineEntry {
	return e.timeline[e.persistedTimeline:]
}

func (e *Extension) appendTimeline(at time.Time, tag, text string) {
	e.timeline = append(e.timeline, audit.TimelineEntry{At: at, Tag: tag, Text: text})
}
