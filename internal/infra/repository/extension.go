package repository

import (
	"context"

	"fleetops/internal/domain/extension"
	"fleetops/internal/infra"
	"fleetops/internal/infra/db"

	"github.com/google/uuid"
)

type ExtensionRepository struct {
	db db.DBTX
}

func NewExtensionRepository(dbtx db.DBTX) *ExtensionRepository {
	return &ExtensionRepository{db: dbtx}
}

func (r *ExtensionRepository) Create(ctx context.Context, bookingID uuid.UUID, e *extension.Extension) error {
	const q = `
INSERT INTO extensions (
    id, booking_id, code, label, start_time, end_time, status,
    price_base, price_addons, price_fees, price_discounts, currency,
    paid_amount, outstanding_amount, deposit_adjustment, last_payment_at,
    risk_flags, invoice_id, task_id, position
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
    (SELECT COUNT(*) + 1 FROM extensions WHERE booking_id = $2)
)
`
	p := e.Pricing()
	l := e.Ledger()
	_, err := r.db.Exec(ctx, q,
		e.ID(), bookingID, e.Code(), e.Label(),
		e.Interval().Start(), e.Interval().End(), e.Status().String(),
		p.Base, p.Addons, p.Fees, p.Discounts, p.Currency,
		l.Paid(), l.Outstanding(), l.DepositAdjustment(), l.LastPaymentAt(),
		e.RiskFlags(), e.InvoiceID(), e.TaskID(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create extension", err)
	}

	return r.appendTimeline(ctx, e)
}

func (r *ExtensionRepository) Save(ctx context.Context, e *extension.Extension) error {
	const q = `
UPDATE extensions
SET status = $2, paid_amount = $3, outstanding_amount = $4, updated_at = now()
WHERE id = $1
`
	l := e.Ledger()
	if _, err := r.db.Exec(ctx, q, e.ID(), e.Status().String(), l.Paid(), l.Outstanding()); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update extension", err)
	}
	return r.appendTimeline(ctx, e)
}

func (r *ExtensionRepository) appendTimeline(ctx context.Context, e *extension.Extension) error {
	for _, t := range e.UnsavedTimeline() {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO extension_timeline (extension_id, at, tag, text) VALUES ($1, $2, $3, $4)`,
			e.ID(), t.At, t.Tag, t.Text,
		); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to append extension timeline", err)
		}
	}
	return nil
}
