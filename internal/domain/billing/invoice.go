package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "Pending"
	InvoicePaid      InvoiceStatus = "Paid"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

type InvoiceScope string

const (
	ScopeExtension InvoiceScope = "extension"
	ScopeRental    InvoiceScope = "rental"
)

// Invoice is a billing record. Invoices are never deleted; cancelling the
// spawning extension cancels the invoice.
type Invoice struct {
	id         uuid.UUID
	code       string
	label      string
	amount     decimal.Decimal
	currency   string
	status     InvoiceStatus
	scope      InvoiceScope
	issuedDate time.Time
	dueDate    time.Time
}

// InvoiceCode builds the deterministic code for the invoice of the n-th
// extension of a booking.
func InvoiceCode(bookingCode string, n int) string {
	return fmt.Sprintf("INV-%s-EXT%d", bookingCode, n)
}

// NewExtensionInvoice issues the pending invoice spawned by a confirmed
// extension. Due date is the extension start: the client pays before pickup.
func NewExtensionInvoice(bookingCode string, n int, label string, amount decimal.Decimal, currency string, issued, due time.Time) *Invoice {
	return &Invoice{
		id:         uuid.New(),
		code:       InvoiceCode(bookingCode, n),
		label:      label,
		amount:     amount,
		currency:   currency,
		status:     InvoicePending,
		scope:      ScopeExtension,
		issuedDate: issued,
		dueDate:    due,
	}
}

func ReconstructInvoice(
	id uuid.UUID,
	code, label string,
	amount decimal.Decimal,
	currency string,
	status InvoiceStatus,
	scope InvoiceScope,
	issuedDate, dueDate time.Time,
) *Invoice {
	return &Invoice{
		id:         id,
		code:       code,
		label:      label,
		amount:     amount,
		currency:   currency,
		status:     status,
		scope:      scope,
		issuedDate: issuedDate,
		dueDate:    dueDate,
	}
}

func (i *Invoice) ID() uuid.UUID           { return i.id }
func (i *Invoice) Code() string            { return i.code }
func (i *Invoice) Label() string           { return i.label }
func (i *Invoice) Amount() decimal.Decimal { return i.amount }
func (i *Invoice) Currency() string        { return i.currency }
func (i *Invoice) Status() InvoiceStatus   { return i.status }
func (i *Invoice) Scope() InvoiceScope     { return i.scope }
func (i *Invoice) IssuedDate() time.Time   { return i.issuedDate }
func (i *Invoice) DueDate() time.Time      { return i.dueDate }

func (i *Invoice) Cancel() {
	i.status = InvoiceCancelled
}
