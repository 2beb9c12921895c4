package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID           `json:"id"`
	Code            string              `json:"code"`
	ClientID        uuid.UUID           `json:"client_id"`
	VehicleID       uuid.UUID           `json:"vehicle_id"`
	DriverID        *uuid.UUID          `json:"driver_id,omitempty"`
	Status          string              `json:"status"`
	Start           time.Time           `json:"start"`
	End             time.Time           `json:"end"`
	PickupLocation  string              `json:"pickup_location"`
	DropoffLocation string              `json:"dropoff_location"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaidAmount      decimal.Decimal     `json:"paid_amount"`
	Outstanding     decimal.Decimal     `json:"outstanding"`
	DepositAmount   decimal.Decimal     `json:"deposit_amount"`
	Currency        string              `json:"currency"`
	Priority        string              `json:"priority"`
	TargetTime      *time.Time          `json:"target_time,omitempty"`
	Extensions      []ExtensionView     `json:"extensions"`
	Invoices        []InvoiceView       `json:"invoices"`
	History         []HistoryEntryView  `json:"history"`
	Timeline        []TimelineEntryView `json:"timeline"`
}

type ExtensionView struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Label       string          `json:"label"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Currency    string          `json:"currency"`
	RiskFlags   []string        `json:"risk_flags,omitempty"`
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	TaskID      uuid.UUID       `json:"task_id"`
	Position    int             `json:"position"`
}

type InvoiceView struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Status     string          `json:"status"`
	Scope      string          `json:"scope"`
	IssuedDate time.Time       `json:"issued_date"`
	DueDate    time.Time       `json:"due_date"`
}

type HistoryEntryView struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

type TimelineEntryView struct {
	At   time.Time `json:"at"`
	Tag  string    `json:"tag"`
	Text string    `json:"text"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}
