package request

import (
	"strings"
	"time"

	"fleetops/internal/domain/extension"
	"fleetops/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type PreviewExtensionRequest struct {
	Start           time.Time `json:"start" binding:"required"`
	End             time.Time `json:"end" binding:"required"`
	MaintenanceSlot bool      `json:"maintenance_slot"`
}

type ConfirmExtensionRequest struct {
	Start           time.Time       `json:"start" binding:"required"`
	End             time.Time       `json:"end" binding:"required"`
	PriceBase       decimal.Decimal `json:"price_base" binding:"required"`
	PriceAddons     decimal.Decimal `json:"price_addons"`
	PriceFees       decimal.Decimal `json:"price_fees"`
	PriceDiscounts  decimal.Decimal `json:"price_discounts"`
	Currency        string          `json:"currency" binding:"required"`
	Notes           string          `json:"notes"`
	MaintenanceSlot bool            `json:"maintenance_slot"`
}

func (r ConfirmExtensionRequest) ToInput() commands.ConfirmExtensionInput {
	return commands.ConfirmExtensionInput{
		Start: r.Start,
		End:   r.End,
		Pricing: extension.Pricing{
			Base:      r.PriceBase,
			Addons:    r.PriceAddons,
			Fees:      r.PriceFees,
			Discounts: r.PriceDiscounts,
			Currency:  strings.ToUpper(strings.TrimSpace(r.Currency)),
		},
		Notes:           strings.TrimSpace(r.Notes),
		MaintenanceSlot: r.MaintenanceSlot,
	}
}
