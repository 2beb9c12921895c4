package readstore

import (
	"context"
	"errors"
	"time"

	"fleetops/internal/infra"
	"fleetops/internal/infra/db"
	"fleetops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// Column lists below must stay in sync with the migrations; see schema_test.go.
const bookingViewQuery = `
SELECT id, code, client_id, vehicle_id, driver_id, status, start_time, end_time,
       pickup, dropoff, total_amount, paid_amount, deposit,
       currency, priority, target_time
FROM bookings
WHERE id = $1
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v := &queries.BookingView{}
	err := r.db.QueryRow(ctx, bookingViewQuery, id).Scan(
		&v.ID, &v.Code, &v.ClientID, &v.VehicleID, &v.DriverID, &v.Status,
		&v.Start, &v.End, &v.PickupLocation, &v.DropoffLocation,
		&v.TotalAmount, &v.PaidAmount, &v.DepositAmount,
		&v.Currency, &v.Priority, &v.TargetTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking by ID", err)
	}

	if v.Extensions, err = r.listExtensions(ctx, id); err != nil {
		return nil, err
	}
	if v.Invoices, err = r.listInvoices(ctx, id); err != nil {
		return nil, err
	}
	if v.History, err = r.listHistory(ctx, id); err != nil {
		return nil, err
	}
	if v.Timeline, err = r.listTimeline(ctx, id); err != nil {
		return nil, err
	}

	// Outstanding covers the base rental plus every non-cancelled extension.
	v.Outstanding = v.TotalAmount.Sub(v.PaidAmount)
	for _, ext := range v.Extensions {
		if ext.Status != "cancelled" {
			v.Outstanding = v.Outstanding.Add(ext.Outstanding)
		}
	}

	return v, nil
}

const extensionListQuery = `
SELECT id, code, label, start_time, end_time, status,
       price_base + price_addons + price_fees - price_discounts,
       paid_amount, outstanding_amount, currency, risk_flags, invoice_id, task_id, position
FROM extensions
WHERE booking_id = $1
ORDER BY position
`

func (r *BookingReadStore) listExtensions(ctx context.Context, bookingID uuid.UUID) ([]queries.ExtensionView, error) {
	rows, err := r.db.Query(ctx, extensionListQuery, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load extensions", err)
	}
	defer rows.Close()

	out := []queries.ExtensionView{}
	for rows.Next() {
		var ev queries.ExtensionView
		var total decimal.Decimal
		if err := rows.Scan(
			&ev.ID, &ev.Code, &ev.Label, &ev.Start, &ev.End, &ev.Status,
			&total, &ev.Paid, &ev.Outstanding, &ev.Currency, &ev.RiskFlags,
			&ev.InvoiceID, &ev.TaskID, &ev.Position,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan extension", err)
		}
		if total.IsNegative() {
			total = decimal.Zero
		}
		ev.Total = total
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read extensions", err)
	}
	return out, nil
}

const invoiceListQuery = `
SELECT id, code, label, amount, currency, status, scope, issued_date, due_date
FROM invoices
WHERE booking_id = $1
ORDER BY issued_date
`

func (r *BookingReadStore) listInvoices(ctx context.Context, bookingID uuid.UUID) ([]queries.InvoiceView, error) {
	rows, err := r.db.Query(ctx, invoiceListQuery, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load invoices", err)
	}
	defer rows.Close()

	out := []queries.InvoiceView{}
	for rows.Next() {
		var iv queries.InvoiceView
		if err := rows.Scan(
			&iv.ID, &iv.Code, &iv.Label, &iv.Amount, &iv.Currency,
			&iv.Status, &iv.Scope, &iv.IssuedDate, &iv.DueDate,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan invoice", err)
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read invoices", err)
	}
	return out, nil
}

const historyListQuery = `SELECT at, text FROM booking_history WHERE booking_id = $1 ORDER BY at, id`

func (r *BookingReadStore) listHistory(ctx context.Context, bookingID uuid.UUID) ([]queries.HistoryEntryView, error) {
	rows, err := r.db.Query(ctx, historyListQuery, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load booking history", err)
	}
	defer rows.Close()

	out := []queries.HistoryEntryView{}
	for rows.Next() {
		var at time.Time
		var text string
		if err := rows.Scan(&at, &text); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan history entry", err)
		}
		out = append(out, queries.HistoryEntryView{At: at, Text: text})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking history", err)
	}
	return out, nil
}

const timelineListQuery = `SELECT at, tag, text FROM booking_timeline WHERE booking_id = $1 ORDER BY at, id`

func (r *BookingReadStore) listTimeline(ctx context.Context, bookingID uuid.UUID) ([]queries.TimelineEntryView, error) {
	rows, err := r.db.Query(ctx, timelineListQuery, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load booking timeline", err)
	}
	defer rows.Close()

	out := []queries.TimelineEntryView{}
	for rows.Next() {
		var at time.Time
		var tag, text string
		if err := rows.Scan(&at, &tag, &text); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan timeline entry", err)
		}
		out = append(out, queries.TimelineEntryView{At: at, Tag: tag, Text: text})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking timeline", err)
	}
	return out, nil
}
