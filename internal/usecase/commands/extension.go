package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fleetops/internal/domain/billing"
	"fleetops/internal/domain/booking"
	"fleetops/internal/domain/extension"
	"fleetops/internal/domain/schedule"
	"fleetops/internal/domain/task"
	"fleetops/internal/infra"
	"fleetops/internal/pkg/clock"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/usecase/shared"

	"github.com/google/uuid"
)

// ConflictError carries the full findings list of a rejected confirmation so
// the caller can surface every blocking reason at once.
type ConflictError struct {
	Report schedule.Report
}

func (e *ConflictError) Error() string {
	var texts []string
	for _, f := range e.Report.Findings {
		if f.Severity == schedule.SeverityError {
			texts = append(texts, f.Text)
		}
	}
	return "extension conflict: " + strings.Join(texts, "; ")
}

type ConfirmExtensionInput struct {
	Start time.Time
	End   time.Time
	// Pricing total (base + addons + fees − discounts) must be positive.
	Pricing extension.Pricing
	Notes   string
	// MaintenanceSlot marks the gap before the extension as intentional,
	// suppressing the idle-gap advisory.
	MaintenanceSlot bool
}

type ConfirmExtensionResult struct {
	Extension     *extension.Extension
	Invoice       *billing.Invoice
	Task          *task.Task
	CalendarEvent *schedule.CalendarEvent
	Warnings      []schedule.Finding
}

type CancelExtensionResult struct {
	// AlreadyCancelled marks the informational no-op of cancelling twice.
	AlreadyCancelled bool
}

type ExtensionCommands interface {
	Preview(ctx context.Context, bookingID uuid.UUID, start, end time.Time, maintenanceSlot bool) (*schedule.Report, error)
	Confirm(ctx context.Context, bookingID uuid.UUID, input ConfirmExtensionInput) (*ConfirmExtensionResult, error)
	Cancel(ctx context.Context, bookingID, extensionID uuid.UUID) (*CancelExtensionResult, error)
}

type extensionCommandsImpl struct {
	uow       shared.UnitOfWork
	detector  *schedule.ConflictDetector
	publisher EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewExtensionCommands(
	uow shared.UnitOfWork,
	detector *schedule.ConflictDetector,
	publisher EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) ExtensionCommands {
	return &extensionCommandsImpl{
		uow:       uow,
		detector:  detector,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// Preview runs the conflict detector against a consistent snapshot without
// mutating anything. Dispatchers call it repeatedly while editing dates.
func (c *extensionCommandsImpl) Preview(ctx context.Context, bookingID uuid.UUID, start, end time.Time, maintenanceSlot bool) (*schedule.Report, error) {
	var report schedule.Report

	err := c.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().Find(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		snap, err := c.loadDetectContext(ctx, tx, b, maintenanceSlot)
		if err != nil {
			return err
		}

		report = c.detector.Detect(start, end, snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Confirm re-validates conflicts inside the same transaction that performs the
// writes, holding the vehicle lock across detect+write: two simultaneous
// confirmations on one vehicle cannot race past each other's overlap check.
func (c *extensionCommandsImpl) Confirm(ctx context.Context, bookingID uuid.UUID, input ConfirmExtensionInput) (*ConfirmExtensionResult, error) {
	if input.Start.IsZero() || input.End.IsZero() {
		return nil, errs.Mark(errs.New("extension interval must be fully specified"), errs.ErrValidation)
	}
	if !input.Pricing.Total().IsPositive() {
		return nil, errs.Mark(extension.ErrNonPositiveTotal, errs.ErrValidation)
	}

	var result ConfirmExtensionResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.LockVehicle(ctx, b.VehicleID()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		snap, err := c.loadDetectContext(ctx, tx, b, input.MaintenanceSlot)
		if err != nil {
			return err
		}

		report := c.detector.Detect(input.Start, input.End, snap)
		if report.HasBlocking() {
			return errs.Mark(&ConflictError{Report: report}, errs.ErrExtensionConflict)
		}

		interval, err := schedule.NewInterval(input.Start, input.End)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		now := c.clock.Now()
		n := b.NextExtensionNumber()
		label := extension.Label(n)

		inv := billing.NewExtensionInvoice(
			b.Code(), n, label, input.Pricing.Total(), input.Pricing.Currency, now, input.Start)
		tk := task.NewExtensionPreparation(b.ID(), label, input.Start, b.DriverID())

		var riskFlags []string
		for _, w := range report.Warnings() {
			riskFlags = append(riskFlags, extension.Slugify(w.Text))
		}

		ext, err := extension.Confirm(b.Code(), n, interval, input.Pricing, riskFlags, inv.ID(), tk.ID(), now)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		block := schedule.NewExtensionBlock(b.VehicleID(),
			fmt.Sprintf("%s - %s", b.Code(), label), interval)

		b.AddExtension(ext)
		b.AddInvoice(inv)
		b.AppendTimeline(now, "extension", fmt.Sprintf("%s confirmed for %s", label, interval))
		b.AppendHistory(now, fmt.Sprintf("Extension %s confirmed, invoice %s issued", ext.Code(), inv.Code()))
		if input.Notes != "" {
			b.AppendHistory(now, fmt.Sprintf("Extension note: %s", input.Notes))
		}

		if err := tx.Extensions().Create(ctx, b.ID(), ext); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Invoices().Create(ctx, b.ID(), inv); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Tasks().Create(ctx, tk); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Calendar().Create(ctx, block); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Bookings().Save(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = ConfirmExtensionResult{
			Extension:     ext,
			Invoice:       inv,
			Task:          tk,
			CalendarEvent: block,
			Warnings:      report.Warnings(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishQuietly(ctx, c.publisher, c.logger, EventExtensionConfirmed, map[string]any{
		"booking_id":     bookingID,
		"extension_code": result.Extension.Code(),
		"invoice_code":   result.Invoice.Code(),
		"start":          result.Extension.Interval().Start(),
		"end":            result.Extension.Interval().End(),
	})

	return &result, nil
}

// Cancel is terminal-but-retained: the extension stays on the booking with
// status cancelled and a zeroed outstanding amount, and the linked invoice is
// cancelled. The linked task and calendar event are left in place
// (orphaned but auditable); the history line tells operators to follow up.
func (c *extensionCommandsImpl) Cancel(ctx context.Context, bookingID, extensionID uuid.UUID) (*CancelExtensionResult, error) {
	var result CancelExtensionResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		ext := b.ExtensionByID(extensionID)
		if ext == nil {
			return errs.ErrExtensionNotFound
		}

		now := c.clock.Now()
		if !ext.Cancel(now) {
			result = CancelExtensionResult{AlreadyCancelled: true}
			return nil
		}

		for _, inv := range b.Invoices() {
			if inv.ID() == ext.InvoiceID() {
				inv.Cancel()
				if err := tx.Invoices().Save(ctx, inv); err != nil {
					return errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
				break
			}
		}

		b.AppendTimeline(now, "extension", fmt.Sprintf("%s cancelled", ext.Label()))
		b.AppendHistory(now, fmt.Sprintf("Extension %s cancelled, invoice voided; linked task and calendar block kept for review", ext.Code()))

		if err := tx.Extensions().Save(ctx, ext); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Bookings().Save(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyCancelled {
		publishQuietly(ctx, c.publisher, c.logger, EventExtensionCancelled, map[string]any{
			"booking_id":   bookingID,
			"extension_id": extensionID,
		})
	}

	return &result, nil
}

func (c *extensionCommandsImpl) loadDetectContext(ctx context.Context, tx shared.Tx, b *booking.Booking, maintenanceSlot bool) (schedule.Context, error) {
	siblings, err := tx.Bookings().SiblingsForVehicle(ctx, b.VehicleID(), b.ID())
	if err != nil {
		return schedule.Context{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	events, err := tx.Calendar().ListForVehicle(ctx, b.VehicleID())
	if err != nil {
		return schedule.Context{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var own []schedule.ExtensionSlot
	for _, e := range b.ActiveExtensions() {
		own = append(own, schedule.ExtensionSlot{Label: e.Label(), Interval: e.Interval()})
	}

	return schedule.Context{
		BookingEnd:         b.Interval().End(),
		OwnExtensions:      own,
		Siblings:           siblings,
		Events:             events,
		OutstandingBalance: b.Outstanding(),
		Currency:           b.Currency(),
		MaintenanceSlot:    maintenanceSlot,
	}, nil
}
