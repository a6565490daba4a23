//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/pricing"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func stay(t *testing.T, in, out string) reservation.DateRange {
	t.Helper()
	r, err := reservation.ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

func TestCompose(t *testing.T) {
	composer := pricing.NewComposer(2)

	t.Run("weekend surcharge on friday and saturday", func(t *testing.T) {
		r := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.BasePrice, b.WeekendSurcharge = 100, 20
		}).MustBuildDomain()
		policy := builder.NewHotelBuilder().WithoutTax().MustBuildDomain()

		q, err := composer.Compose(r, policy, stay(t, "2024-06-07", "2024-06-09"), 2)
		require.NoError(t, err)

		assert.Equal(t, 2, q.Nights)
		assert.Equal(t, int64(240), q.Subtotal.Cents())
		assert.Equal(t, int64(240), q.Total.Cents())
		for _, line := range q.PerNight {
			assert.Equal(t, int64(20), line.WeekendSurcharge.Cents())
			assert.Equal(t, int64(120), line.Amount.Cents())
		}
	})

	t.Run("first matching seasonal window wins", func(t *testing.T) {
		r := builder.NewRoomBuilder().
			WithSeason("summer", date("2024-06-01"), date("2024-06-30"), 15000).
			WithSeason("peak", date("2024-06-10"), date("2024-06-12"), 30000).
			MustBuildDomain()
		policy := builder.NewHotelBuilder().WithoutTax().MustBuildDomain()

		q, err := composer.Compose(r, policy, stay(t, "2024-06-10", "2024-06-12"), 1)
		require.NoError(t, err)

		require.Len(t, q.PerNight, 2)
		for _, line := range q.PerNight {
			assert.Equal(t, "summer", line.Season)
			assert.Equal(t, int64(15000), line.Base.Cents())
		}
		assert.Equal(t, int64(30000), q.NightsTotal.Cents())
	})

	t.Run("holiday surcharge", func(t *testing.T) {
		r := builder.NewRoomBuilder().MustBuildDomain()
		policy := builder.NewHotelBuilder().WithoutTax().With(func(b *builder.HotelBuilder) {
			b.Holidays = []time.Time{date("2024-12-25")}
		}).MustBuildDomain()

		q, err := composer.Compose(r, policy, stay(t, "2024-12-24", "2024-12-26"), 2)
		require.NoError(t, err)

		assert.Equal(t, int64(0), q.PerNight[0].HolidaySurcharge.Cents())
		assert.Equal(t, int64(1500), q.PerNight[1].HolidaySurcharge.Cents())
		assert.Equal(t, int64(21500), q.Subtotal.Cents())
	})

	t.Run("extra guest charge and taxes", func(t *testing.T) {
		r := builder.NewRoomBuilder().MustBuildDomain()
		policy := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.GSTRate = decimal.RequireFromString("12")
			b.ServiceTaxRate = decimal.RequireFromString("2.5")
		}).MustBuildDomain()

		// Tue..Thu: 3 nights at 10000, 2 extra guests at 1000 per night
		q, err := composer.Compose(r, policy, stay(t, "2024-06-11", "2024-06-14"), 4)
		require.NoError(t, err)

		assert.Equal(t, 2, q.ExtraGuests)
		assert.Equal(t, int64(6000), q.ExtraGuestCharge.Cents())
		assert.Equal(t, int64(36000), q.Subtotal.Cents())
		assert.Equal(t, int64(4320), q.Taxes.GST.Cents())
		assert.Equal(t, int64(900), q.Taxes.ServiceTax.Cents())
		assert.Equal(t, int64(5220), q.Tax.Cents())
		assert.Equal(t, int64(41220), q.Total.Cents())
	})

	t.Run("hotel base occupancy overrides the default", func(t *testing.T) {
		r := builder.NewRoomBuilder().MustBuildDomain()
		policy := builder.NewHotelBuilder().WithoutTax().With(func(b *builder.HotelBuilder) { b.BaseOccupancy = 3 }).MustBuildDomain()

		q, err := composer.Compose(r, policy, stay(t, "2024-06-11", "2024-06-12"), 3)
		require.NoError(t, err)
		assert.Zero(t, q.ExtraGuests)
		assert.True(t, q.ExtraGuestCharge.IsZero())
	})

	t.Run("tax rounds half up per line", func(t *testing.T) {
		r := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.BasePrice = 333 }).MustBuildDomain()
		policy := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.GSTRate = decimal.RequireFromString("12.5")
			b.ServiceTaxRate = decimal.RequireFromString("12.5")
		}).MustBuildDomain()

		q, err := composer.Compose(r, policy, stay(t, "2024-06-11", "2024-06-12"), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(42), q.Taxes.GST.Cents())
		assert.Equal(t, int64(84), q.Tax.Cents())
	})

	t.Run("validation", func(t *testing.T) {
		r := builder.NewRoomBuilder().MustBuildDomain()
		policy := builder.NewHotelBuilder().MustBuildDomain()

		_, err := composer.Compose(r, policy, stay(t, "2024-06-11", "2024-06-12"), 0)
		assert.ErrorIs(t, err, pricing.ErrInvalidGuests)

		_, err = composer.Compose(r, policy, stay(t, "2024-06-11", "2024-06-12"), 5)
		assert.ErrorIs(t, err, pricing.ErrCapacityExceeded)
	})
}

func TestComposeIsDeterministic(t *testing.T) {
	composer := pricing.NewComposer(2)
	r := builder.NewRoomBuilder().
		WithSeason("winter", date("2024-12-20"), date("2025-01-05"), 18000).
		MustBuildDomain()
	policy := builder.NewHotelBuilder().MustBuildDomain()
	s := stay(t, "2024-12-18", "2024-12-28")

	first, err := composer.Compose(r, policy, s, 3)
	require.NoError(t, err)
	second, err := composer.Compose(r, policy, s, 3)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmp.AllowUnexported(reservation.Money{})); diff != "" {
		t.Errorf("quote mismatch (-first +second):\n%s", diff)
	}

	var sum int64
	for _, line := range first.PerNight {
		sum += line.Amount.Cents()
	}
	assert.Equal(t, first.NightsTotal.Cents(), sum)
	assert.Equal(t, first.Subtotal.Add(first.Tax), first.Total)
}
