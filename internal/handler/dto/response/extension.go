package response

import (
	"time"

	"fleetops/internal/domain/schedule"
	"fleetops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FindingResponse struct {
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

type ConflictReportResponse struct {
	Findings    []FindingResponse `json:"findings"`
	HasBlocking bool              `json:"hasBlocking"`
}

type ConfirmExtensionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Label       string          `json:"label"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Currency    string          `json:"currency"`
	RiskFlags   []string        `json:"riskFlags,omitempty"`
	Invoice     InvoiceResponse `json:"invoice"`
	TaskID      uuid.UUID       `json:"taskId"`
	CalendarID  uuid.UUID       `json:"calendarEventId"`
	Warnings    []string        `json:"warnings,omitempty"`
}

type CancelExtensionResponse struct {
	Cancelled        bool `json:"cancelled"`
	AlreadyCancelled bool `json:"alreadyCancelled"`
}

func FromConflictReport(r *schedule.Report) *ConflictReportResponse {
	resp := &ConflictReportResponse{
		Findings:    make([]FindingResponse, len(r.Findings)),
		HasBlocking: r.HasBlocking(),
	}
	for i, f := range r.Findings {
		resp.Findings[i] = FindingResponse{Severity: string(f.Severity), Text: f.Text}
	}
	return resp
}

func FromConfirmExtensionResult(r *commands.ConfirmExtensionResult) *ConfirmExtensionResponse {
	ext := r.Extension
	inv := r.Invoice

	warnings := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		warnings[i] = w.Text
	}

	return &ConfirmExtensionResponse{
		ID:          ext.ID(),
		Code:        ext.Code(),
		Label:       ext.Label(),
		Start:       ext.Interval().Start(),
		End:         ext.Interval().End(),
		Status:      ext.Status().String(),
		Total:       ext.Pricing().Total(),
		Outstanding: ext.Ledger().Outstanding(),
		Currency:    ext.Pricing().Currency,
		RiskFlags:   ext.RiskFlags(),
		Invoice: InvoiceResponse{
			ID:         inv.ID(),
			Code:       inv.Code(),
			Label:      inv.Label(),
			Amount:     inv.Amount(),
			Currency:   inv.Currency(),
			Status:     string(inv.Status()),
			Scope:      string(inv.Scope()),
			IssuedDate: inv.IssuedDate(),
			DueDate:    inv.DueDate(),
		},
		TaskID:     r.Task.ID(),
		CalendarID: r.CalendarEvent.ID(),
		Warnings:   warnings,
	}
}
