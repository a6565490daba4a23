//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	stay := mustRange(t, "2024-06-10", "2024-06-12")

	t.Run("basic success case", func(t *testing.T) {
		r, err := reservation.NewReservation(uuid.New(), uuid.New(), stay, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.True(t, r.IsActive())
		assert.Equal(t, now, r.CreatedAt())
		assert.True(t, r.Conflicts(mustRange(t, "2024-06-11", "2024-06-15")))
		assert.False(t, r.Conflicts(mustRange(t, "2024-06-12", "2024-06-15")))
	})

	t.Run("required references", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.Nil, uuid.New(), stay, now)
		assert.ErrorIs(t, err, reservation.ErrMissingRoom)

		_, err = reservation.NewReservation(uuid.New(), uuid.Nil, stay, now)
		assert.ErrorIs(t, err, reservation.ErrMissingBooking)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("cancel excludes the interval from conflicts", func(t *testing.T) {
		r, err := reservation.NewReservation(uuid.New(), uuid.New(), stay, now)
		require.NoError(t, err)

		later := now.Add(time.Hour)
		require.NoError(t, r.Cancel(later))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
		assert.Equal(t, later, r.UpdatedAt())
		assert.False(t, r.Conflicts(stay))

		err = r.Cancel(later)
		assert.ErrorIs(t, err, reservation.ErrReservationCancelled)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("lifecycle", func(t *testing.T) {
		r, err := reservation.NewReservation(uuid.New(), uuid.New(), stay, now)
		require.NoError(t, err)

		assert.ErrorIs(t, r.Complete(now), reservation.ErrInvalidTransition)
		require.NoError(t, r.MarkCheckedIn(now))
		assert.True(t, r.IsActive())
		require.NoError(t, r.Complete(now))
		assert.True(t, r.IsActive(), "completed stays still occupy their nights")
		assert.ErrorIs(t, r.Cancel(now), reservation.ErrReservationCompleted)
	})
}
