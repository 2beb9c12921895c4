//go:build unit || e2e

package builder

import (
	"time"

	"fleetops/internal/domain/audit"
	"fleetops/internal/domain/billing"
	dombooking "fleetops/internal/domain/booking"
	"fleetops/internal/domain/extension"
	"fleetops/internal/domain/schedule"
	"fleetops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseTime anchors every builder default so overlap assertions are stable.
var BaseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID         uuid.UUID
	Code       string
	ClientID   uuid.UUID
	VehicleID  uuid.UUID
	DriverID   *uuid.UUID
	Status     dombooking.Status
	Start      time.Time
	End        time.Time
	Pickup     string
	Dropoff    string
	Total      decimal.Decimal
	Paid       decimal.Decimal
	Deposit    decimal.Decimal
	Currency   string
	Priority   dombooking.Priority
	TargetTime *time.Time
	OwnerID    uuid.UUID
	Extensions []*extension.Extension
	Invoices   []*billing.Invoice
	History    []audit.HistoryEntry
	Timeline   []audit.TimelineEntry
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		Code:      "BK-1001",
		ClientID:  uuid.New(),
		VehicleID: uuid.New(),
		Status:    dombooking.StatusNew,
		Start:     BaseTime,
		End:       BaseTime.Add(72 * time.Hour),
		Pickup:    "Airport Terminal 1",
		Dropoff:   "Central Station",
		Total:     decimal.NewFromInt(900),
		Paid:      decimal.NewFromInt(900),
		Deposit:   decimal.NewFromInt(300),
		Currency:  "EUR",
		Priority:  dombooking.PriorityNormal,
		OwnerID:   uuid.New(),
	}
}

func (b *BookingBuilder) WithStatus(s dombooking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithDriver(id uuid.UUID) *BookingBuilder {
	b.DriverID = &id
	return b
}

func (b *BookingBuilder) WithInterval(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithOutstanding(amount decimal.Decimal) *BookingBuilder {
	b.Paid = b.Total.Sub(amount)
	return b
}

func (b *BookingBuilder) WithTargetTime(t time.Time) *BookingBuilder {
	b.TargetTime = &t
	return b
}

func (b *BookingBuilder) WithExtension(e *extension.Extension) *BookingBuilder {
	b.Extensions = append(b.Extensions, e)
	return b
}

func (b *BookingBuilder) WithInvoice(inv *billing.Invoice) *BookingBuilder {
	b.Invoices = append(b.Invoices, inv)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(dombooking.BookingParams{
		ID:         b.ID,
		Code:       b.Code,
		ClientID:   b.ClientID,
		VehicleID:  b.VehicleID,
		DriverID:   b.DriverID,
		Status:     b.Status,
		Interval:   schedule.ReconstructInterval(b.Start, b.End),
		Pickup:     b.Pickup,
		Dropoff:    b.Dropoff,
		Total:      b.Total,
		Paid:       b.Paid,
		Deposit:    b.Deposit,
		Currency:   b.Currency,
		Priority:   b.Priority,
		TargetTime: b.TargetTime,
		OwnerID:    b.OwnerID,
		Extensions: b.Extensions,
		Invoices:   b.Invoices,
		History:    b.History,
		Timeline:   b.Timeline,
	})
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		Code:            b.Code,
		ClientID:        b.ClientID,
		VehicleID:       b.VehicleID,
		DriverID:        b.DriverID,
		Status:          b.Status.String(),
		Start:           b.Start,
		End:             b.End,
		PickupLocation:  b.Pickup,
		DropoffLocation: b.Dropoff,
		TotalAmount:     b.Total,
		PaidAmount:      b.Paid,
		Outstanding:     b.Total.Sub(b.Paid),
		DepositAmount:   b.Deposit,
		Currency:        b.Currency,
		Priority:        string(b.Priority),
		TargetTime:      b.TargetTime,
		Extensions:      []queries.ExtensionView{},
		Invoices:        []queries.InvoiceView{},
		History:         []queries.HistoryEntryView{},
		Timeline:        []queries.TimelineEntryView{},
	}
}

type ExtensionBuilder struct {
	BookingCode string
	Number      int
	Start       time.Time
	End         time.Time
	Pricing     extension.Pricing
	RiskFlags   []string
	InvoiceID   uuid.UUID
	TaskID      uuid.UUID
	Now         time.Time
}

func NewExtensionBuilder() *ExtensionBuilder {
	end := BaseTime.Add(72 * time.Hour)
	return &ExtensionBuilder{
		BookingCode: "BK-1001",
		Number:      1,
		Start:       end,
		End:         end.Add(24 * time.Hour),
		Pricing: extension.Pricing{
			Base:     decimal.NewFromInt(300),
			Currency: "EUR",
		},
		InvoiceID: uuid.New(),
		TaskID:    uuid.New(),
		Now:       BaseTime,
	}
}

func (e *ExtensionBuilder) WithNumber(n int) *ExtensionBuilder {
	e.Number = n
	return e
}

func (e *ExtensionBuilder) WithInterval(start, end time.Time) *ExtensionBuilder {
	e.Start = start
	e.End = end
	return e
}

func (e *ExtensionBuilder) WithBase(amount decimal.Decimal) *ExtensionBuilder {
	e.Pricing.Base = amount
	return e
}

func (e *ExtensionBuilder) BuildDomain() (*extension.Extension, error) {
	interval, err := schedule.NewInterval(e.Start, e.End)
	if err != nil {
		return nil, err
	}
	return extension.Confirm(e.BookingCode, e.Number, interval, e.Pricing, e.RiskFlags, e.InvoiceID, e.TaskID, e.Now)
}
