//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fleetops/internal/domain/booking"
	"fleetops/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMachine() *booking.StatusMachine {
	return booking.NewStatusMachine(booking.DefaultStatusGraph())
}

func TestRequestTransition(t *testing.T) {
	forward := []struct {
		from, to booking.Status
	}{
		{booking.StatusNew, booking.StatusPreparation},
		{booking.StatusPreparation, booking.StatusDelivery},
		{booking.StatusDelivery, booking.StatusInRent},
		{booking.StatusInRent, booking.StatusSettlement},
	}

	for _, step := range forward {
		t.Run(string(step.from)+" to "+string(step.to), func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(step.from).BuildDomain()

			ev, err := newMachine().RequestTransition(b, step.to, now)
			require.NoError(t, err)

			assert.Equal(t, step.from, ev.From)
			assert.Equal(t, step.to, ev.To)
			assert.Equal(t, now, ev.At)
			assert.Equal(t, step.to, b.Status())
		})
	}

	t.Run("event carries the blockers of the stage being left", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPreparation).BuildDomain()

		ev, err := newMachine().RequestTransition(b, booking.StatusDelivery, now)
		require.NoError(t, err)
		assert.Equal(t, []booking.Blocker{booking.BlockerNoDriverAssigned}, ev.Blockers)
	})
}

func TestRequestTransitionRejections(t *testing.T) {
	tests := []struct {
		name   string
		from   booking.Status
		target booking.Status
		errIs  error
	}{
		{name: "skipping a stage", from: booking.StatusNew, target: booking.StatusDelivery, errIs: booking.ErrIllegalTransition},
		{name: "moving backwards", from: booking.StatusDelivery, target: booking.StatusPreparation, errIs: booking.ErrIllegalTransition},
		{name: "same status", from: booking.StatusInRent, target: booking.StatusInRent, errIs: booking.ErrIllegalTransition},
		{name: "leaving the terminal stage", from: booking.StatusSettlement, target: booking.StatusNew, errIs: booking.ErrIllegalTransition},
		{name: "unknown target", from: booking.StatusNew, target: booking.Status("archived"), errIs: booking.ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tt.from).BuildDomain()

			_, err := newMachine().RequestTransition(b, tt.target, now)
			require.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, tt.from, b.Status(), "rejected transition must not mutate the booking")
		})
	}
}

func TestTargetTimeLifecycle(t *testing.T) {
	t.Run("set while allowed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusDelivery).BuildDomain()

		ok := b.SetTargetTime(now.Add(2 * time.Hour))
		require.True(t, ok)
		require.NotNil(t, b.TargetTime())
	})

	t.Run("rejected in rent", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusInRent).BuildDomain()

		assert.False(t, b.SetTargetTime(now))
		assert.Nil(t, b.TargetTime())
	})

	t.Run("cleared when entering a stage that disallows it", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusDelivery).
			WithTargetTime(now.Add(2 * time.Hour)).
			BuildDomain()

		_, err := newMachine().RequestTransition(b, booking.StatusInRent, now)
		require.NoError(t, err)
		assert.Nil(t, b.TargetTime())
	})
}

func TestNextExtensionNumberCountsCancelled(t *testing.T) {
	ext, err := builder.NewExtensionBuilder().BuildDomain()
	require.NoError(t, err)
	require.True(t, ext.Cancel(now))

	b := builder.NewBookingBuilder().WithExtension(ext).BuildDomain()

	assert.Equal(t, 2, b.NextExtensionNumber())
	assert.Empty(t, b.ActiveExtensions())
}
