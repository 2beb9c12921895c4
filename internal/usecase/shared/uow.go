package shared

import (
	"context"

	"fleetops/internal/domain/billing"
	"fleetops/internal/domain/booking"
	"fleetops/internal/domain/driver"
	"fleetops/internal/domain/extension"
	"fleetops/internal/domain/schedule"
	"fleetops/internal/domain/task"

	"github.com/google/uuid"
)

// UnitOfWork serializes all mutation of a booking aggregate: commands run the
// whole detect-then-write sequence inside one transaction so the snapshot a
// decision was made on and the write it produced cannot be separated.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent multi-table snapshot for previews and views.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Extensions() ExtensionRepository
	Invoices() InvoiceRepository
	Calendar() CalendarRepository
	Tasks() TaskRepository
	Drivers() DriverRepository
	// LockVehicle takes a transaction-scoped exclusive lock on the vehicle's
	// timeline so two concurrent confirmations cannot both pass the conflict
	// check against a stale snapshot.
	LockVehicle(ctx context.Context, vehicleID uuid.UUID) error
}

type BookingRepository interface {
	// Find loads the aggregate (with extensions and invoices) without locking;
	// safe inside read-only transactions.
	Find(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindForUpdate loads the aggregate under a row lock, serializing writers
	// per booking id.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Save persists status, driver, SLA checkpoint and any history/timeline
	// entries appended since load.
	Save(ctx context.Context, b *booking.Booking) error
	// SiblingsForVehicle returns every other booking on the vehicle together
	// with their non-cancelled extension intervals.
	SiblingsForVehicle(ctx context.Context, vehicleID, excludeBookingID uuid.UUID) ([]schedule.SiblingBooking, error)
}

type ExtensionRepository interface {
	Create(ctx context.Context, bookingID uuid.UUID, e *extension.Extension) error
	// Save persists status, ledger and unsaved timeline entries. Extensions
	// are never deleted.
	Save(ctx context.Context, e *extension.Extension) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, bookingID uuid.UUID, inv *billing.Invoice) error
	Save(ctx context.Context, inv *billing.Invoice) error
}

type CalendarRepository interface {
	Create(ctx context.Context, ev *schedule.CalendarEvent) error
	ListForVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*schedule.CalendarEvent, error)
}

type TaskRepository interface {
	Create(ctx context.Context, t *task.Task) error
}

type DriverRepository interface {
	// FirstAvailableForUpdate returns the available driver with the lowest id
	// under a row lock; repositories signal NOT_FOUND when the pool is empty.
	FirstAvailableForUpdate(ctx context.Context) (*driver.Driver, error)
	Save(ctx context.Context, d *driver.Driver) error
}
