//go:build unit

package hotel_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/hotel"
	"hotel-booking-engine/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy(t *testing.T) {
	t.Run("holidays match by calendar date", func(t *testing.T) {
		p, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.Holidays = []time.Time{time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)}
		}).BuildDomain()
		require.NoError(t, err)

		assert.True(t, p.IsHoliday(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)))
		assert.False(t, p.IsHoliday(time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("base occupancy falls back when unset", func(t *testing.T) {
		p := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) { b.BaseOccupancy = 0 }).MustBuildDomain()
		assert.Equal(t, 3, p.BaseOccupancyOr(3))

		p = builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) { b.BaseOccupancy = 4 }).MustBuildDomain()
		assert.Equal(t, 4, p.BaseOccupancyOr(3))
	})

	t.Run("negative tax rejected", func(t *testing.T) {
		_, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.GSTRate = decimal.NewFromInt(-1)
		}).BuildDomain()
		assert.ErrorIs(t, err, hotel.ErrNegativeTaxRate)
	})
}
