//go:build unit

package offer_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, offer.StatusDraft, o.Status())
		assert.Equal(t, offer.Code("SUMMER20"), o.Code())
		assert.Equal(t, 1, o.Conditions().MinimumStay)
		assert.Equal(t, 0, o.Usage().CurrentBookings())
		assert.Nil(t, o.ApprovedAt())
	})

	testCases := []struct {
		name   string
		mutate func(*builder.OfferBuilder)
		errIs  error
	}{
		{name: "lowercase code is normalised", mutate: func(b *builder.OfferBuilder) { b.Code = " summer20 " }},
		{name: "code too short", mutate: func(b *builder.OfferBuilder) { b.Code = "AB" }, errIs: offer.ErrInvalidOfferCode},
		{name: "empty title", mutate: func(b *builder.OfferBuilder) { b.Title = " " }, errIs: offer.ErrEmptyTitle},
		{name: "missing hotel", mutate: func(b *builder.OfferBuilder) { b.HotelID = uuid.Nil }, errIs: offer.ErrMissingHotel},
		{
			name:   "validity reversed",
			mutate: func(b *builder.OfferBuilder) { b.ValidFrom, b.ValidTo = b.ValidTo, b.ValidFrom },
			errIs:  offer.ErrInvalidValidity,
		},
		{
			name:   "zero per customer limit",
			mutate: func(b *builder.OfferBuilder) { b.BookingsPerCustomer = 0 },
			errIs:  offer.ErrInvalidUsageLimit,
		},
		{
			name: "maximum stay below minimum",
			mutate: func(b *builder.OfferBuilder) {
				b.MinimumStay = 3
				two := 2
				b.MaximumStay = &two
			},
			errIs: offer.ErrInvalidConditions,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := builder.NewOfferBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, o)
				return
			}
			require.Nil(t, o)
			assert.ErrorIs(t, err, tc.errIs)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestOfferStateMachine(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("draft to active to paused and back", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, o.Pause(now), offer.ErrInvalidTransition)
		require.NoError(t, o.Approve(now))
		assert.Equal(t, offer.StatusActive, o.Status())
		require.NotNil(t, o.ApprovedAt())

		require.NoError(t, o.Pause(now))
		assert.Equal(t, offer.StatusPaused, o.Status())
		assert.ErrorIs(t, o.Approve(now), offer.ErrInvalidTransition)

		require.NoError(t, o.Resume(now))
		assert.Equal(t, offer.StatusActive, o.Status())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		o := builder.NewOfferBuilder().MustBuildReconstructed()
		require.NoError(t, o.Cancel(now))
		assert.ErrorIs(t, o.Cancel(now), offer.ErrOfferTerminal)
		assert.ErrorIs(t, o.Resume(now), offer.ErrOfferTerminal)
		assert.ErrorIs(t, o.Approve(now), errs.ErrConflict)
	})

	t.Run("lazy expiry", func(t *testing.T) {
		o := builder.NewOfferBuilder().MustBuildReconstructed()
		after := o.Validity().End().Add(time.Second)

		assert.Equal(t, offer.StatusActive, o.Status(), "stored status lags until touched")
		assert.Equal(t, offer.StatusExpired, o.EffectiveStatus(after))
		assert.False(t, o.IsCurrentlyActive(after))
		assert.True(t, o.IsCurrentlyActive(now))

		assert.False(t, o.ExpireIfElapsed(now))
		assert.True(t, o.ExpireIfElapsed(after))
		assert.Equal(t, offer.StatusExpired, o.Status())
		assert.False(t, o.ExpireIfElapsed(after), "already persisted as expired")
		assert.ErrorIs(t, o.Pause(after), offer.ErrOfferTerminal)
	})

	t.Run("cancelled offers never flip to expired", func(t *testing.T) {
		o := builder.NewOfferBuilder().MustBuildReconstructed()
		require.NoError(t, o.Cancel(now))
		assert.False(t, o.ExpireIfElapsed(o.Validity().End().AddDate(1, 0, 0)))
		assert.Equal(t, offer.StatusCancelled, o.Status())
	})
}

func TestRedeem(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	customer := uuid.New()

	t.Run("success records redemption and counters", func(t *testing.T) {
		o := builder.NewOfferBuilder().MustBuildReconstructed()
		req := stayRequest(t, "2024-03-01", "2024-03-03")
		bookingID := uuid.New()

		r, err := o.Redeem(now, customer, &bookingID, req)
		require.NoError(t, err)

		assert.Equal(t, int64(50000), r.Original().Cents())
		assert.Equal(t, int64(10000), r.Discount().Cents())
		assert.Equal(t, int64(40000), r.Final().Cents())
		assert.Equal(t, o.ID(), r.OfferID())
		assert.Equal(t, &bookingID, r.BookingID())
		assert.Equal(t, 1, o.Usage().CurrentBookings())
		assert.Equal(t, int64(1), o.Analytics().Bookings())
		assert.Equal(t, int64(40000), o.Analytics().Revenue().Cents())
		assert.Len(t, o.PendingRedemptions(), 1)
	})

	t.Run("failed check leaves the offer untouched", func(t *testing.T) {
		o := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.MinimumStay = 2 }).MustBuildReconstructed()
		before := o.UpdatedAt()

		_, err := o.Redeem(now, customer, nil, stayRequest(t, "2024-03-01", "2024-03-02"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.ErrorIs(t, err, errs.ErrOfferInapplicable)
		assert.Equal(t, "Minimum stay of 2 nights required", errs.Reason(err))

		assert.Equal(t, 0, o.Usage().CurrentBookings())
		assert.Equal(t, int64(0), o.Analytics().Bookings())
		assert.Empty(t, o.PendingRedemptions())
		assert.Equal(t, before, o.UpdatedAt())
	})

	t.Run("the N+1th redemption exceeds the limit", func(t *testing.T) {
		const n = 3
		o := builder.NewOfferBuilder().WithTotalBookings(n).MustBuildReconstructed()

		for i := 0; i < n; i++ {
			_, err := o.Redeem(now, uuid.New(), nil, stayRequest(t, "2024-03-01", "2024-03-02"))
			require.NoError(t, err, "redemption %d", i+1)
		}

		_, err := o.Redeem(now, uuid.New(), nil, stayRequest(t, "2024-03-01", "2024-03-02"))
		assert.ErrorIs(t, err, errs.ErrLimitExceeded)
		assert.ErrorIs(t, err, errs.ErrOfferLimitReached)
		assert.Equal(t, n, o.Usage().CurrentBookings())
		assert.Equal(t, 0, *o.Usage().Remaining())
	})

	t.Run("per customer limit is a limit error", func(t *testing.T) {
		o := builder.NewOfferBuilder().MustBuildReconstructed()
		req := stayRequest(t, "2024-03-01", "2024-03-02")
		req.PriorRedemptions = 1

		_, err := o.Redeem(now, customer, nil, req)
		assert.ErrorIs(t, err, errs.ErrLimitExceeded)
	})

	t.Run("expired offer is a conflict", func(t *testing.T) {
		o := builder.NewOfferBuilder().MustBuildReconstructed()
		_, err := o.Redeem(o.Validity().End().Add(time.Minute), customer, nil, stayRequest(t, "2025-03-01", "2025-03-02"))
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, "Offer has expired", errs.Reason(err))
	})

	t.Run("customer is required", func(t *testing.T) {
		o := builder.NewOfferBuilder().MustBuildReconstructed()
		_, err := o.Redeem(now, uuid.Nil, nil, stayRequest(t, "2024-03-01", "2024-03-02"))
		assert.ErrorIs(t, err, offer.ErrMissingCustomer)
	})
}

func TestAnalytics(t *testing.T) {
	a := offer.NewAnalytics(100, 8, 2, reservation.NewMoney(30001))
	assert.Equal(t, "0.25", a.ConversionRate().String())
	assert.Equal(t, int64(15001), a.AverageBookingValue().Cents())

	empty := offer.NewAnalytics(0, 0, 0, reservation.NewMoney(0))
	assert.True(t, empty.ConversionRate().IsZero())
	assert.True(t, empty.AverageBookingValue().IsZero())
}
