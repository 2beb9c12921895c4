//go:build unit

package schedule_test

import (
	"testing"

	"fleetops/internal/domain/schedule"
	"fleetops/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetector() *schedule.ConflictDetector {
	return schedule.NewConflictDetector(clock.NewMockClock(at(0)))
}

func baseContext(t *testing.T) schedule.Context {
	t.Helper()
	return schedule.Context{
		BookingEnd:         at(10),
		OutstandingBalance: decimal.Zero,
		Currency:           "EUR",
	}
}

func errorTexts(r schedule.Report) []string {
	var out []string
	for _, f := range r.Findings {
		if f.Severity == schedule.SeverityError {
			out = append(out, f.Text)
		}
	}
	return out
}

func warningTexts(r schedule.Report) []string {
	var out []string
	for _, f := range r.Warnings() {
		out = append(out, f.Text)
	}
	return out
}

func TestDetectCleanProposal(t *testing.T) {
	report := newDetector().Detect(at(10), at(14), baseContext(t))

	assert.False(t, report.HasBlocking())
	assert.Empty(t, report.Findings)
}

func TestDetectInvalidInterval(t *testing.T) {
	report := newDetector().Detect(at(14), at(10), baseContext(t))

	require.True(t, report.HasBlocking())
	assert.Contains(t, errorTexts(report)[0], "end must be after")
}

func TestDetectStartBeforeRentalEnd(t *testing.T) {
	t.Run("before the base booking end", func(t *testing.T) {
		report := newDetector().Detect(at(8), at(14), baseContext(t))

		require.True(t, report.HasBlocking())
		assert.Contains(t, errorTexts(report)[0], "current rental end")
	})

	t.Run("active extensions push the rental end forward", func(t *testing.T) {
		ctx := baseContext(t)
		ctx.OwnExtensions = []schedule.ExtensionSlot{
			{Label: "Extension #1", Interval: mustInterval(t, at(10), at(16))},
		}

		report := newDetector().Detect(at(12), at(20), ctx)

		require.True(t, report.HasBlocking())
		// Both the prior-end rule and the own-extension overlap fire.
		texts := errorTexts(report)
		assert.Len(t, texts, 2)
		assert.Contains(t, texts[0], "current rental end")
		assert.Contains(t, texts[1], "Extension #1")
	})

	t.Run("starting exactly at the rental end is fine", func(t *testing.T) {
		report := newDetector().Detect(at(10), at(14), baseContext(t))
		assert.False(t, report.HasBlocking())
	})
}

func TestDetectSiblingConflicts(t *testing.T) {
	t.Run("overlap with a sibling booking", func(t *testing.T) {
		ctx := baseContext(t)
		ctx.Siblings = []schedule.SiblingBooking{
			{Code: "BK-2002", Interval: mustInterval(t, at(12), at(20))},
		}

		report := newDetector().Detect(at(10), at(14), ctx)

		require.True(t, report.HasBlocking())
		assert.Contains(t, errorTexts(report)[0], "BK-2002")
	})

	t.Run("overlap with a sibling's extension", func(t *testing.T) {
		ctx := baseContext(t)
		ctx.Siblings = []schedule.SiblingBooking{
			{
				Code:       "BK-2002",
				Interval:   mustInterval(t, at(20), at(30)),
				Extensions: []schedule.Interval{mustInterval(t, at(12), at(16))},
			},
		}

		report := newDetector().Detect(at(10), at(14), ctx)

		require.True(t, report.HasBlocking())
		assert.Contains(t, errorTexts(report)[0], "extension of BK-2002")
	})

	t.Run("back to back with a sibling is fine", func(t *testing.T) {
		ctx := baseContext(t)
		ctx.Siblings = []schedule.SiblingBooking{
			{Code: "BK-2002", Interval: mustInterval(t, at(14), at(20))},
		}

		report := newDetector().Detect(at(10), at(14), ctx)
		assert.False(t, report.HasBlocking())
	})
}

func TestDetectCalendarAdvisories(t *testing.T) {
	t.Run("maintenance block in the window warns", func(t *testing.T) {
		ctx := baseContext(t)
		ctx.Events = []*schedule.CalendarEvent{
			schedule.ReconstructCalendarEvent(
				uuid.New(), uuid.New(), schedule.EventMaintenance, "Oil change",
				mustInterval(t, at(11), at(12)), schedule.EventScheduled, 1),
		}

		report := newDetector().Detect(at(10), at(14), ctx)

		assert.False(t, report.HasBlocking())
		require.Len(t, report.Warnings(), 1)
		assert.Contains(t, warningTexts(report)[0], "Oil change")
	})

	t.Run("extension blocks are not double reported", func(t *testing.T) {
		ctx := baseContext(t)
		ctx.Events = []*schedule.CalendarEvent{
			schedule.NewExtensionBlock(uuid.New(), "BK-1001 - Extension #1", mustInterval(t, at(11), at(12))),
		}

		report := newDetector().Detect(at(10), at(14), ctx)
		assert.Empty(t, report.Findings)
	})
}

func TestDetectPastStartWarns(t *testing.T) {
	detector := schedule.NewConflictDetector(clock.NewMockClock(at(12)))

	report := detector.Detect(at(10), at(14), baseContext(t))

	assert.False(t, report.HasBlocking())
	require.Len(t, report.Warnings(), 1)
	assert.Contains(t, warningTexts(report)[0], "past")
}

func TestDetectOutstandingBalanceWarns(t *testing.T) {
	ctx := baseContext(t)
	ctx.OutstandingBalance = decimal.NewFromFloat(120.50)

	report := newDetector().Detect(at(10), at(14), ctx)

	assert.False(t, report.HasBlocking())
	require.Len(t, report.Warnings(), 1)
	assert.Contains(t, warningTexts(report)[0], "120.50 EUR")
}

func TestDetectIdleGap(t *testing.T) {
	t.Run("gap over six hours warns", func(t *testing.T) {
		report := newDetector().Detect(at(17), at(20), baseContext(t))

		require.Len(t, report.Warnings(), 1)
		assert.Contains(t, warningTexts(report)[0], "maintenance slot")
	})

	t.Run("gap of exactly six hours does not warn", func(t *testing.T) {
		report := newDetector().Detect(at(16), at(20), baseContext(t))
		assert.Empty(t, report.Warnings())
	})

	t.Run("maintenance slot flag suppresses the warning", func(t *testing.T) {
		ctx := baseContext(t)
		ctx.MaintenanceSlot = true

		report := newDetector().Detect(at(17), at(20), ctx)
		assert.Empty(t, report.Warnings())
	})
}

func TestDetectWarningsNeverBlock(t *testing.T) {
	ctx := baseContext(t)
	ctx.OutstandingBalance = decimal.NewFromInt(500)
	detector := schedule.NewConflictDetector(clock.NewMockClock(at(18)))

	// Past start, outstanding balance and idle gap all at once.
	report := detector.Detect(at(17), at(20), ctx)

	assert.False(t, report.HasBlocking())
	assert.Len(t, report.Warnings(), 3)
}
