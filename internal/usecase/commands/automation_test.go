//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fleetops/internal/domain/booking"
	"fleetops/internal/domain/driver"
	"fleetops/internal/usecase/commands"
	"fleetops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var autoNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func applyTransition(t *testing.T, tx *fakeTx, b *booking.Booking, to booking.Status) []string {
	t.Helper()
	engine := commands.NewAutomationEngine(discardLogger())
	ev := booking.TransitionEvent{BookingID: b.ID(), From: b.Status(), To: to, At: autoNow}
	return engine.Apply(context.Background(), tx, b, ev)
}

func TestAutomationPreparation(t *testing.T) {
	t.Run("assigns the first available driver", func(t *testing.T) {
		tx := newFakeTx()
		d := driver.ReconstructDriver(uuid.New(), "Dana", driver.StatusAvailable)
		tx.drivers.available = d
		b := builder.NewBookingBuilder().BuildDomain()

		emitted := applyTransition(t, tx, b, booking.StatusPreparation)

		require.NotNil(t, b.DriverID())
		assert.Equal(t, d.ID(), *b.DriverID())
		assert.Equal(t, driver.StatusOnTask, d.Status())
		require.Len(t, tx.drivers.saved, 1)
		assert.Equal(t, []string{commands.EventDriverAutoAssigned}, emitted)
		require.Len(t, b.UnsavedHistory(), 1)
		assert.Contains(t, b.UnsavedHistory()[0].Text, "Dana")
	})

	t.Run("keeps an already assigned driver", func(t *testing.T) {
		tx := newFakeTx()
		tx.drivers.available = driver.ReconstructDriver(uuid.New(), "Dana", driver.StatusAvailable)
		existing := uuid.New()
		b := builder.NewBookingBuilder().WithDriver(existing).BuildDomain()

		emitted := applyTransition(t, tx, b, booking.StatusPreparation)

		assert.Equal(t, existing, *b.DriverID())
		assert.Zero(t, tx.drivers.calls, "must not touch the driver pool")
		assert.Empty(t, emitted)
	})

	t.Run("empty driver pool is a quiet no-op", func(t *testing.T) {
		tx := newFakeTx()
		b := builder.NewBookingBuilder().BuildDomain()

		emitted := applyTransition(t, tx, b, booking.StatusPreparation)

		assert.Nil(t, b.DriverID())
		assert.Empty(t, emitted)
		assert.Empty(t, b.UnsavedHistory())
	})
}

func TestAutomationDelivery(t *testing.T) {
	t.Run("sets the SLA checkpoint two hours out", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusDelivery).BuildDomain()

		applyTransition(t, newFakeTx(), b, booking.StatusDelivery)

		require.NotNil(t, b.TargetTime())
		assert.Equal(t, autoNow.Add(2*time.Hour), *b.TargetTime())
	})

	t.Run("does not overwrite an existing checkpoint", func(t *testing.T) {
		manual := autoNow.Add(30 * time.Minute)
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusDelivery).
			WithTargetTime(manual).
			BuildDomain()

		applyTransition(t, newFakeTx(), b, booking.StatusDelivery)

		require.NotNil(t, b.TargetTime())
		assert.Equal(t, manual, *b.TargetTime())
		assert.Empty(t, b.UnsavedHistory())
	})
}

func TestAutomationSettlement(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusSettlement).BuildDomain()

	emitted := applyTransition(t, newFakeTx(), b, booking.StatusSettlement)

	assert.Nil(t, b.TargetTime())
	assert.Equal(t, []string{commands.EventSettlementReached}, emitted)
	require.Len(t, b.UnsavedHistory(), 1)
	assert.Contains(t, b.UnsavedHistory()[0].Text, "settlement")
}

func TestAutomationIdempotent(t *testing.T) {
	tx := newFakeTx()
	tx.drivers.available = driver.ReconstructDriver(uuid.New(), "Dana", driver.StatusAvailable)
	b := builder.NewBookingBuilder().BuildDomain()

	first := applyTransition(t, tx, b, booking.StatusPreparation)
	second := applyTransition(t, tx, b, booking.StatusPreparation)

	assert.Len(t, first, 1)
	assert.Empty(t, second, "re-applying the same transition must not re-fire automations")
	assert.Len(t, tx.drivers.saved, 1)
}
