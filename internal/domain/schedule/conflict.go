package schedule

import (
	"fmt"
	"time"

	"fleetops/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Finding struct {
	Text     string
	Severity Severity
}

type Report struct {
	Findings []Finding
}

func (r Report) HasBlocking() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r Report) Warnings() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			out = append(out, f)
		}
	}
	return out
}

// ExtensionSlot is a non-cancelled extension interval on the booking itself.
type ExtensionSlot struct {
	Label    string
	Interval Interval
}

// SiblingBooking is another booking sharing the vehicle, with its own
// non-cancelled extension intervals.
type SiblingBooking struct {
	Code       string
	Interval   Interval
	Extensions []Interval
}

// Context is the consistent snapshot a proposed extension is checked against.
// The caller is responsible for reading it under the same transaction (or
// vehicle lock) that performs the subsequent write.
type Context struct {
	BookingEnd         time.Time // zero when the base rental end is unknown
	OwnExtensions      []ExtensionSlot
	Siblings           []SiblingBooking
	Events             []*CalendarEvent
	OutstandingBalance decimal.Decimal
	Currency           string
	// MaintenanceSlot suppresses the idle-gap advisory when the caller is
	// deliberately leaving room for a maintenance block.
	MaintenanceSlot bool
}

// maintenanceGap is the idle time after the prior rental end beyond which we
// suggest scheduling a maintenance slot instead of a bare extension.
const maintenanceGap = 6 * time.Hour

type ConflictDetector struct {
	clock clock.Clock
}

func NewConflictDetector(clk clock.Clock) *ConflictDetector {
	return &ConflictDetector{clock: clk}
}

// Detect classifies everything that stands between a booking and a proposed
// extension interval. It never mutates and is safe to call repeatedly while a
// dispatcher edits the proposed dates.
func (d *ConflictDetector) Detect(start, end time.Time, ctx Context) Report {
	var findings []Finding

	blocking := func(format string, args ...any) {
		findings = append(findings, Finding{Text: fmt.Sprintf(format, args...), Severity: SeverityError})
	}
	advisory := func(format string, args ...any) {
		findings = append(findings, Finding{Text: fmt.Sprintf(format, args...), Severity: SeverityWarning})
	}

	if !end.After(start) {
		blocking("Extension end must be after its start")
	}

	priorEnd := ctx.BookingEnd
	for _, ext := range ctx.OwnExtensions {
		if ext.Interval.End().After(priorEnd) {
			priorEnd = ext.Interval.End()
		}
	}
	if !priorEnd.IsZero() && start.Before(priorEnd) {
		blocking("Extension must start no earlier than the current rental end (%s)",
			priorEnd.Format(time.RFC3339))
	}

	proposed := Interval{start: start, end: end}

	for _, ext := range ctx.OwnExtensions {
		if proposed.Overlaps(ext.Interval) {
			blocking("Overlaps with extension %s", ext.Label)
		}
	}

	for _, sib := range ctx.Siblings {
		if proposed.Overlaps(sib.Interval) {
			blocking("Vehicle already booked by %s (%s)", sib.Code, sib.Interval)
		}
		for _, ext := range sib.Extensions {
			if proposed.Overlaps(ext) {
				blocking("Vehicle held by an extension of %s (%s)", sib.Code, ext)
			}
		}
	}

	for _, ev := range ctx.Events {
		// Extension blocks are covered by the booking/extension rules above.
		if ev.Type() == EventExtension {
			continue
		}
		if proposed.Overlaps(ev.Interval()) {
			advisory("Vehicle has a %s block %q in this window (%s)",
				ev.Type(), ev.Title(), ev.Interval())
		}
	}

	if start.Before(d.clock.Now()) {
		advisory("Extension starts in the past")
	}

	if ctx.OutstandingBalance.IsPositive() {
		advisory("Booking has an outstanding balance of %s %s",
			ctx.OutstandingBalance.StringFixed(2), ctx.Currency)
	}

	if !ctx.MaintenanceSlot && !priorEnd.IsZero() && start.Sub(priorEnd) > maintenanceGap {
		advisory("Gap of %s before the extension; consider a maintenance slot instead",
			start.Sub(priorEnd))
	}

	return Report{Findings: findings}
}
