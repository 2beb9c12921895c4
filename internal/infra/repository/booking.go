package repository

import (
	"context"
	"errors"
	"time"

	"fleetops/internal/domain/billing"
	"fleetops/internal/domain/booking"
	"fleetops/internal/domain/extension"
	"fleetops/internal/domain/schedule"
	"fleetops/internal/infra"
	"fleetops/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Find(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.find(ctx, id, false)
}

// FindForUpdate locks the booking row, serializing writers per booking id.
func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.find(ctx, id, true)
}

func (r *BookingRepository) find(ctx context.Context, id uuid.UUID, forUpdate bool) (*booking.Booking, error) {
	q := `
SELECT id, code, client_id, vehicle_id, driver_id, status, start_time, end_time,
       pickup, dropoff, total_amount, paid_amount, deposit, currency, priority,
       target_time, owner_id
FROM bookings
WHERE id = $1
`
	if forUpdate {
		q += "FOR UPDATE\n"
	}
	var p booking.BookingParams
	var status, priority string
	var start, end time.Time
	err := r.db.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Code, &p.ClientID, &p.VehicleID, &p.DriverID, &status,
		&start, &end, &p.Pickup, &p.Dropoff, &p.Total, &p.Paid, &p.Deposit,
		&p.Currency, &priority, &p.TargetTime, &p.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load booking", err)
	}
	p.Status = booking.Status(status)
	p.Priority = booking.Priority(priority)
	p.Interval = schedule.ReconstructInterval(start, end)

	p.Extensions, err = r.loadExtensions(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Invoices, err = r.loadInvoices(ctx, id)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(p), nil
}

func (r *BookingRepository) loadExtensions(ctx context.Context, bookingID uuid.UUID) ([]*extension.Extension, error) {
	const q = `
SELECT id, code, label, start_time, end_time, status,
       price_base, price_addons, price_fees, price_discounts, currency,
       paid_amount, outstanding_amount, deposit_adjustment, last_payment_at,
       risk_flags, invoice_id, task_id
FROM extensions
WHERE booking_id = $1
ORDER BY position
`
	rows, err := r.db.Query(ctx, q, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load extensions", err)
	}
	defer rows.Close()

	var out []*extension.Extension
	for rows.Next() {
		var (
			id, invoiceID, taskID           uuid.UUID
			code, label, status, currency   string
			start, end                      time.Time
			base, addons, fees, discounts   decimal.Decimal
			paid, outstanding, depositAdj   decimal.Decimal
			lastPaymentAt                   *time.Time
			riskFlags                       []string
		)
		if err := rows.Scan(
			&id, &code, &label, &start, &end, &status,
			&base, &addons, &fees, &discounts, &currency,
			&paid, &outstanding, &depositAdj, &lastPaymentAt,
			&riskFlags, &invoiceID, &taskID,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan extension", err)
		}

		out = append(out, extension.Reconstruct(
			id, code, label,
			schedule.ReconstructInterval(start, end),
			extension.Status(status),
			extension.Pricing{Base: base, Addons: addons, Fees: fees, Discounts: discounts, Currency: currency},
			extension.ReconstructPaymentLedger(paid, outstanding, depositAdj, lastPaymentAt),
			riskFlags, invoiceID, taskID, nil,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read extensions", err)
	}
	return out, nil
}

func (r *BookingRepository) loadInvoices(ctx context.Context, bookingID uuid.UUID) ([]*billing.Invoice, error) {
	const q = `
SELECT id, code, label, amount, currency, status, scope, issued_date, due_date
FROM invoices
WHERE booking_id = $1
ORDER BY issued_date
`
	rows, err := r.db.Query(ctx, q, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load invoices", err)
	}
	defer rows.Close()

	var out []*billing.Invoice
	for rows.Next() {
		var (
			id                  uuid.UUID
			code, label         string
			amount              decimal.Decimal
			currency            string
			status, scope       string
			issuedDate, dueDate time.Time
		)
		if err := rows.Scan(&id, &code, &label, &amount, &currency, &status, &scope, &issuedDate, &dueDate); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan invoice", err)
		}
		out = append(out, billing.ReconstructInvoice(
			id, code, label, amount, currency,
			billing.InvoiceStatus(status), billing.InvoiceScope(scope),
			issuedDate, dueDate,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read invoices", err)
	}
	return out, nil
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	const q = `
UPDATE bookings
SET status = $2, driver_id = $3, target_time = $4, updated_at = now()
WHERE id = $1
`
	if _, err := r.db.Exec(ctx, q, b.ID(), b.Status().String(), b.DriverID(), b.TargetTime()); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking", err)
	}

	for _, h := range b.UnsavedHistory() {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO booking_history (booking_id, at, text) VALUES ($1, $2, $3)`,
			b.ID(), h.At, h.Text,
		); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to append booking history", err)
		}
	}
	for _, t := range b.UnsavedTimeline() {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO booking_timeline (booking_id, at, tag, text) VALUES ($1, $2, $3, $4)`,
			b.ID(), t.At, t.Tag, t.Text,
		); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to append booking timeline", err)
		}
	}
	return nil
}

func (r *BookingRepository) SiblingsForVehicle(ctx context.Context, vehicleID, excludeBookingID uuid.UUID) ([]schedule.SiblingBooking, error) {
	const q = `
SELECT id, code, start_time, end_time
FROM bookings
WHERE vehicle_id = $1 AND id <> $2
`
	rows, err := r.db.Query(ctx, q, vehicleID, excludeBookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load sibling bookings", err)
	}
	defer rows.Close()

	var siblings []schedule.SiblingBooking
	var ids []uuid.UUID
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var id uuid.UUID
		var code string
		var start, end time.Time
		if err := rows.Scan(&id, &code, &start, &end); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan sibling booking", err)
		}
		index[id] = len(siblings)
		ids = append(ids, id)
		siblings = append(siblings, schedule.SiblingBooking{
			Code:     code,
			Interval: schedule.ReconstructInterval(start, end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read sibling bookings", err)
	}
	if len(siblings) == 0 {
		return nil, nil
	}

	const extQ = `
SELECT booking_id, start_time, end_time
FROM extensions
WHERE booking_id = ANY($1) AND status <> 'cancelled'
`
	extRows, err := r.db.Query(ctx, extQ, ids)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load sibling extensions", err)
	}
	defer extRows.Close()

	for extRows.Next() {
		var bookingID uuid.UUID
		var start, end time.Time
		if err := extRows.Scan(&bookingID, &start, &end); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan sibling extension", err)
		}
		i := index[bookingID]
		siblings[i].Extensions = append(siblings[i].Extensions, schedule.ReconstructInterval(start, end))
	}
	if err := extRows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read sibling extensions", err)
	}

	return siblings, nil
}
