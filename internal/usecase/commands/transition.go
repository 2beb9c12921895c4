package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fleetops/internal/domain/booking"
	"fleetops/internal/infra"
	"fleetops/internal/pkg/clock"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransitionResult struct {
	Event booking.TransitionEvent
	// Emitted lists the notification events the automation engine produced in
	// addition to transition-applied.
	Emitted []string
}

type TransitionCommands interface {
	RequestTransition(ctx context.Context, bookingID uuid.UUID, target booking.Status) (*TransitionResult, error)
}

type transitionCommandsImpl struct {
	uow        shared.UnitOfWork
	machine    *booking.StatusMachine
	automation *AutomationEngine
	publisher  EventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewTransitionCommands(
	uow shared.UnitOfWork,
	machine *booking.StatusMachine,
	automation *AutomationEngine,
	publisher EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) TransitionCommands {
	return &transitionCommandsImpl{
		uow:        uow,
		machine:    machine,
		automation: automation,
		publisher:  publisher,
		clock:      clk,
		logger:     logger,
	}
}

func (c *transitionCommandsImpl) RequestTransition(ctx context.Context, bookingID uuid.UUID, target booking.Status) (*TransitionResult, error) {
	var result TransitionResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		ev, err := c.machine.RequestTransition(b, target, c.clock.Now())
		if err != nil {
			if errors.Is(err, booking.ErrUnknownStatus) {
				return errs.Mark(err, errs.ErrValidation)
			}
			return errs.Mark(err, errs.ErrIllegalTransition)
		}

		emitted := c.automation.Apply(ctx, tx, b, ev)

		b.AppendTimeline(ev.At, "status", fmt.Sprintf("Status changed from %s to %s", ev.From, ev.To))

		if err := tx.Bookings().Save(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = TransitionResult{Event: ev, Emitted: emitted}
		return nil
	})
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"booking_id": result.Event.BookingID,
		"from":       result.Event.From,
		"to":         result.Event.To,
		"at":         result.Event.At,
	}
	publishQuietly(ctx, c.publisher, c.logger, EventTransitionApplied, payload)
	for _, name := range result.Emitted {
		publishQuietly(ctx, c.publisher, c.logger, name, payload)
	}

	return &result, nil
}
