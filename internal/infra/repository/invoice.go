package repository

import (
	"context"

	"fleetops/internal/domain/billing"
	"fleetops/internal/infra"
	"fleetops/internal/infra/db"

	"github.com/google/uuid"
)

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(dbtx db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: dbtx}
}

func (r *InvoiceRepository) Create(ctx context.Context, bookingID uuid.UUID, inv *billing.Invoice) error {
	const q = `
INSERT INTO invoices (id, booking_id, code, label, amount, currency, status, scope, issued_date, due_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`
	_, err := r.db.Exec(ctx, q,
		inv.ID(), bookingID, inv.Code(), inv.Label(), inv.Amount(), inv.Currency(),
		string(inv.Status()), string(inv.Scope()), inv.IssuedDate(), inv.DueDate(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) Save(ctx context.Context, inv *billing.Invoice) error {
	const q = `UPDATE invoices SET status = $2 WHERE id = $1`
	if _, err := r.db.Exec(ctx, q, inv.ID(), string(inv.Status())); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update invoice", err)
	}
	return nil
}
