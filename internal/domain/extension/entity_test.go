//go:build unit

package extension_test

import (
	"testing"
	"time"

	"fleetops/internal/domain/extension"
	"fleetops/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestConfirm(t *testing.T) {
	t.Run("confirmed extension", func(t *testing.T) {
		ext, err := builder.NewExtensionBuilder().WithNumber(3).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "EXT-BK-1001-3", ext.Code())
		assert.Equal(t, "Extension #3", ext.Label())
		assert.Equal(t, extension.StatusConfirmed, ext.Status())
		assert.True(t, ext.Ledger().Outstanding().Equal(decimal.NewFromInt(300)))
		assert.True(t, ext.Ledger().Paid().IsZero())
		require.Len(t, ext.UnsavedTimeline(), 1)
		assert.Equal(t, "extension", ext.UnsavedTimeline()[0].Tag)
	})

	t.Run("non-positive total is rejected", func(t *testing.T) {
		_, err := builder.NewExtensionBuilder().WithBase(decimal.Zero).BuildDomain()
		assert.ErrorIs(t, err, extension.ErrNonPositiveTotal)
	})
}

func TestCancel(t *testing.T) {
	ext, err := builder.NewExtensionBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("first cancel flips status and zeroes outstanding", func(t *testing.T) {
		require.True(t, ext.Cancel(now))

		assert.True(t, ext.IsCancelled())
		assert.True(t, ext.Ledger().Outstanding().IsZero())
	})

	t.Run("second cancel is a no-op", func(t *testing.T) {
		entries := len(ext.Timeline())

		assert.False(t, ext.Cancel(now))
		assert.Len(t, ext.Timeline(), entries, "no-op cancel must not append to the timeline")
	})
}

func TestPricingTotal(t *testing.T) {
	tests := []struct {
		name    string
		pricing extension.Pricing
		want    int64
	}{
		{
			name: "all components",
			pricing: extension.Pricing{
				Base:      decimal.NewFromInt(300),
				Addons:    decimal.NewFromInt(50),
				Fees:      decimal.NewFromInt(20),
				Discounts: decimal.NewFromInt(70),
			},
			want: 300,
		},
		{
			name: "discounts beyond the subtotal floor at zero",
			pricing: extension.Pricing{
				Base:      decimal.NewFromInt(100),
				Discounts: decimal.NewFromInt(250),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pricing.Total().Equal(decimal.NewFromInt(tt.want)))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Extension starts in the past", "extension-starts-in-the-past"},
		{"Booking has an outstanding balance of 120.50 EUR", "booking-has-an-outstanding-balance-of-120-50-eur"},
		{"  --Already-dashed--  ", "already-dashed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extension.Slugify(tt.in))
	}
}
