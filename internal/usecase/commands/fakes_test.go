//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"fleetops/internal/domain/billing"
	"fleetops/internal/domain/booking"
	"fleetops/internal/domain/driver"
	"fleetops/internal/domain/extension"
	"fleetops/internal/domain/schedule"
	"fleetops/internal/domain/task"
	"fleetops/internal/infra"
	"fleetops/internal/usecase/shared"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUoW runs the callback directly against an in-memory fakeTx; rollback is
// approximated by the tests asserting no writes were recorded on error.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: newFakeTx()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeTx struct {
	bookings   *fakeBookingRepo
	extensions *fakeExtensionRepo
	invoices   *fakeInvoiceRepo
	calendar   *fakeCalendarRepo
	tasks      *fakeTaskRepo
	drivers    *fakeDriverRepo

	vehicleLocks []uuid.UUID
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		bookings:   &fakeBookingRepo{byID: map[uuid.UUID]*booking.Booking{}},
		extensions: &fakeExtensionRepo{},
		invoices:   &fakeInvoiceRepo{},
		calendar:   &fakeCalendarRepo{},
		tasks:      &fakeTaskRepo{},
		drivers:    &fakeDriverRepo{},
	}
}

func (t *fakeTx) Bookings() shared.BookingRepository     { return t.bookings }
func (t *fakeTx) Extensions() shared.ExtensionRepository { return t.extensions }
func (t *fakeTx) Invoices() shared.InvoiceRepository     { return t.invoices }
func (t *fakeTx) Calendar() shared.CalendarRepository    { return t.calendar }
func (t *fakeTx) Tasks() shared.TaskRepository           { return t.tasks }
func (t *fakeTx) Drivers() shared.DriverRepository       { return t.drivers }

func (t *fakeTx) LockVehicle(_ context.Context, vehicleID uuid.UUID) error {
	t.vehicleLocks = append(t.vehicleLocks, vehicleID)
	return nil
}

type fakeBookingRepo struct {
	byID     map[uuid.UUID]*booking.Booking
	siblings []schedule.SiblingBooking
	saved    []*booking.Booking
}

func (r *fakeBookingRepo) Find(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", errors.New("no rows"))
	}
	return b, nil
}

func (r *fakeBookingRepo) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.Find(ctx, id)
}

func (r *fakeBookingRepo) Save(_ context.Context, b *booking.Booking) error {
	r.saved = append(r.saved, b)
	return nil
}

func (r *fakeBookingRepo) SiblingsForVehicle(context.Context, uuid.UUID, uuid.UUID) ([]schedule.SiblingBooking, error) {
	return r.siblings, nil
}

type fakeExtensionRepo struct {
	created []*extension.Extension
	saved   []*extension.Extension
}

func (r *fakeExtensionRepo) Create(_ context.Context, _ uuid.UUID, e *extension.Extension) error {
	r.created = append(r.created, e)
	return nil
}

func (r *fakeExtensionRepo) Save(_ context.Context, e *extension.Extension) error {
	r.saved = append(r.saved, e)
	return nil
}

type fakeInvoiceRepo struct {
	created []*billing.Invoice
	saved   []*billing.Invoice
}

func (r *fakeInvoiceRepo) Create(_ context.Context, _ uuid.UUID, inv *billing.Invoice) error {
	r.created = append(r.created, inv)
	return nil
}

func (r *fakeInvoiceRepo) Save(_ context.Context, inv *billing.Invoice) error {
	r.saved = append(r.saved, inv)
	return nil
}

type fakeCalendarRepo struct {
	events  []*schedule.CalendarEvent
	created []*schedule.CalendarEvent
}

func (r *fakeCalendarRepo) Create(_ context.Context, ev *schedule.CalendarEvent) error {
	r.created = append(r.created, ev)
	return nil
}

func (r *fakeCalendarRepo) ListForVehicle(context.Context, uuid.UUID) ([]*schedule.CalendarEvent, error) {
	return r.events, nil
}

type fakeTaskRepo struct {
	created []*task.Task
}

func (r *fakeTaskRepo) Create(_ context.Context, t *task.Task) error {
	r.created = append(r.created, t)
	return nil
}

type fakeDriverRepo struct {
	available *driver.Driver
	saved     []*driver.Driver
	calls     int
}

func (r *fakeDriverRepo) FirstAvailableForUpdate(context.Context) (*driver.Driver, error) {
	r.calls++
	if r.available == nil {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "no available driver", errors.New("no rows"))
	}
	return r.available, nil
}

func (r *fakeDriverRepo) Save(_ context.Context, d *driver.Driver) error {
	r.saved = append(r.saved, d)
	return nil
}

// capturePublisher records published events in order.
type capturePublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *capturePublisher) Publish(_ context.Context, event string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}
