package response

import (
	"time"

	"fleetops/internal/usecase/commands"
	"fleetops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID              uuid.UUID               `json:"id"`
	Code            string                  `json:"code"`
	ClientID        uuid.UUID               `json:"clientId"`
	VehicleID       uuid.UUID               `json:"vehicleId"`
	DriverID        *uuid.UUID              `json:"driverId,omitempty"`
	Status          string                  `json:"status"`
	Start           time.Time               `json:"start"`
	End             time.Time               `json:"end"`
	PickupLocation  string                  `json:"pickupLocation"`
	DropoffLocation string                  `json:"dropoffLocation"`
	TotalAmount     decimal.Decimal         `json:"totalAmount"`
	PaidAmount      decimal.Decimal         `json:"paidAmount"`
	Outstanding     decimal.Decimal         `json:"outstanding"`
	DepositAmount   decimal.Decimal         `json:"depositAmount"`
	Currency        string                  `json:"currency"`
	Priority        string                  `json:"priority"`
	TargetTime      *time.Time              `json:"targetTime,omitempty"`
	Extensions      []ExtensionItemResponse `json:"extensions"`
	Invoices        []InvoiceResponse       `json:"invoices"`
	History         []HistoryEntryResponse  `json:"history"`
	Timeline        []TimelineEntryResponse `json:"timeline"`
}

type ExtensionItemResponse struct {
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
	RiskFlags   []string        `json:"riskFlags,omitempty"`
	InvoiceID   uuid.UUID       `json:"invoiceId"`
	TaskID      uuid.UUID       `json:"taskId"`
	Position    int             `json:"position"`
}

type InvoiceResponse struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Status     string          `json:"status"`
	Scope      string          `json:"scope"`
	IssuedDate time.Time       `json:"issuedDate"`
	DueDate    time.Time       `json:"dueDate"`
}

type HistoryEntryResponse struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

type TimelineEntryResponse struct {
	At   time.Time `json:"at"`
	Tag  string    `json:"tag"`
	Text string    `json:"text"`
}

type TransitionResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	At        time.Time `json:"at"`
	// Blockers of the stage that was left; advisory, the transition went through.
	Blockers []string `json:"blockers,omitempty"`
	Emitted  []string `json:"emitted,omitempty"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:              rm.ID,
		Code:            rm.Code,
		ClientID:        rm.ClientID,
		VehicleID:       rm.VehicleID,
		DriverID:        rm.DriverID,
		Status:          rm.Status,
		Start:           rm.Start,
		End:             rm.End,
		PickupLocation:  rm.PickupLocation,
		DropoffLocation: rm.DropoffLocation,
		TotalAmount:     rm.TotalAmount,
		PaidAmount:      rm.PaidAmount,
		Outstanding:     rm.Outstanding,
		DepositAmount:   rm.DepositAmount,
		Currency:        rm.Currency,
		Priority:        rm.Priority,
		TargetTime:      rm.TargetTime,
		Extensions:      make([]ExtensionItemResponse, len(rm.Extensions)),
		Invoices:        make([]InvoiceResponse, len(rm.Invoices)),
		History:         make([]HistoryEntryResponse, len(rm.History)),
		Timeline:        make([]TimelineEntryResponse, len(rm.Timeline)),
	}
	for i, e := range rm.Extensions {
		resp.Extensions[i] = ExtensionItemResponse{
			ID:          e.ID,
			Code:        e.Code,
			Label:       e.Label,
			Start:       e.Start,
			End:         e.End,
			Status:      e.Status,
			Total:       e.Total,
			Paid:        e.Paid,
			Outstanding: e.Outstanding,
			Currency:    e.Currency,
			RiskFlags:   e.RiskFlags,
			InvoiceID:   e.InvoiceID,
			TaskID:      e.TaskID,
			Position:    e.Position,
		}
	}
	for i, inv := range rm.Invoices {
		resp.Invoices[i] = InvoiceResponse{
			ID:         inv.ID,
			Code:       inv.Code,
			Label:      inv.Label,
			Amount:     inv.Amount,
			Currency:   inv.Currency,
			Status:     inv.Status,
			Scope:      inv.Scope,
			IssuedDate: inv.IssuedDate,
			DueDate:    inv.DueDate,
		}
	}
	for i, h := range rm.History {
		resp.History[i] = HistoryEntryResponse{At: h.At, Text: h.Text}
	}
	for i, t := range rm.Timeline {
		resp.Timeline[i] = TimelineEntryResponse{At: t.At, Tag: t.Tag, Text: t.Text}
	}
	return resp
}

func FromTransitionResult(r *commands.TransitionResult) *TransitionResponse {
	var blockers []string
	for _, b := range r.Event.Blockers {
		blockers = append(blockers, b.String())
	}
	return &TransitionResponse{
		BookingID: r.Event.BookingID,
		From:      r.Event.From.String(),
		To:        r.Event.To.String(),
		At:        r.Event.At,
		Blockers:  blockers,
		Emitted:   r.Emitted,
	}
}
