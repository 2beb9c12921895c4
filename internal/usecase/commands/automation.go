package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fleetops/internal/domain/booking"
	"fleetops/internal/infra"
	"fleetops/internal/usecase/shared"
)

// slaWindow is the SLA checkpoint granted when a booking enters delivery.
const slaWindow = 2 * time.Hour

// AutomationEngine applies the side effects of a successful status transition.
// Every automation is an advisory convenience: idempotent per booking, and
// never an error, a failed automation degrades to a no-op plus a log line.
type AutomationEngine struct {
	logger *slog.Logger
}

func NewAutomationEngine(logger *slog.Logger) *AutomationEngine {
	return &AutomationEngine{logger: logger}
}

// Apply runs inside the same transaction as the status write (the driver
// mutation must commit or roll back with it). It returns the names of the
// notification events the transition produced.
func (a *AutomationEngine) Apply(ctx context.Context, tx shared.Tx, b *booking.Booking, ev booking.TransitionEvent) []string {
	var emitted []string

	switch ev.To {
	case booking.StatusPreparation:
		if a.assignDriver(ctx, tx, b, ev.At) {
			emitted = append(emitted, EventDriverAutoAssigned)
		}
	case booking.StatusDelivery:
		a.setCheckpoint(b, ev.At)
	case booking.StatusSettlement:
		a.settle(b, ev.At)
		emitted = append(emitted, EventSettlementReached)
	}

	return emitted
}

func (a *AutomationEngine) assignDriver(ctx context.Context, tx shared.Tx, b *booking.Booking, at time.Time) bool {
	if b.DriverID() != nil {
		return false
	}

	d, err := tx.Drivers().FirstAvailableForUpdate(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			a.logger.Info("no driver available for auto-assignment", "booking", b.Code())
		} else {
			a.logger.Warn("driver auto-assignment skipped", "booking", b.Code(), "error", err.Error())
		}
		return false
	}

	d.MarkOnTask()
	if err := tx.Drivers().Save(ctx, d); err != nil {
		a.logger.Warn("driver auto-assignment skipped", "booking", b.Code(), "error", err.Error())
		return false
	}

	b.AssignDriver(d.ID())
	b.AppendHistory(at, fmt.Sprintf("Driver %s auto-assigned", d.Name()))
	return true
}

func (a *AutomationEngine) setCheckpoint(b *booking.Booking, at time.Time) {
	if b.TargetTime() != nil {
		return
	}
	target := at.Add(slaWindow)
	if !b.SetTargetTime(target) {
		return
	}
	b.AppendHistory(at, fmt.Sprintf("SLA checkpoint set for %s", target.Format(time.RFC3339)))
}

func (a *AutomationEngine) settle(b *booking.Booking, at time.Time) {
	b.ClearTargetTime()
	b.AppendHistory(at, "Booking reached settlement")
}
