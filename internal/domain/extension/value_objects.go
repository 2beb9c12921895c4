package extension

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

var ErrNonPositiveTotal = errors.New("extension total must be positive")

// Pricing is the additive breakdown of an extension price:
// base + addons + fees − discounts, floored at zero.
type Pricing struct {
	Base      decimal.Decimal
	Addons    decimal.Decimal
	Fees      decimal.Decimal
	Discounts decimal.Decimal
	Currency  string
}

func (p Pricing) Total() decimal.Decimal {
	total := p.Base.Add(p.Addons).Add(p.Fees).Sub(p.Discounts)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// PaymentLedger is the payment sub-ledger of a single extension.
type PaymentLedger struct {
	paid              decimal.Decimal
	outstanding       decimal.Decimal
	depositAdjustment decimal.Decimal
	lastPaymentAt     *time.Time
}

func NewPaymentLedger(total, depositAdjustment decimal.Decimal) PaymentLedger {
	return PaymentLedger{
		paid:              decimal.Zero,
		outstanding:       total,
		depositAdjustment: depositAdjustment,
	}
}

func ReconstructPaymentLedger(paid, outstanding, depositAdjustment decimal.Decimal, lastPaymentAt *time.Time) PaymentLedger {
	return PaymentLedger{
		paid:              paid,
		outstanding:       outstanding,
		depositAdjustment: depositAdjustment,
		lastPaymentAt:     lastPaymentAt,
	}
}

func (l PaymentLedger) Paid() decimal.Decimal              { return l.paid }
func (l PaymentLedger) Outstanding() decimal.Decimal       { return l.outstanding }
func (l PaymentLedger) DepositAdjustment() decimal.Decimal { return l.depositAdjustment }
func (l PaymentLedger) LastPaymentAt() *time.Time          { return l.lastPaymentAt }

// Slugify turns an advisory finding text into a stable risk-flag tag.
func Slugify(text string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
