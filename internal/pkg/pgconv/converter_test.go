//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumeric(t *testing.T) {
	testCases := []string{"18", "12.5", "0.0001", "0"}
	for _, raw := range testCases {
		t.Run(raw, func(t *testing.T) {
			d := decimal.RequireFromString(raw)
			got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}

	t.Run("null numeric is zero", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})
}

func TestDate(t *testing.T) {
	local := time.Date(2024, 12, 24, 23, 30, 0, 0, time.FixedZone("JST", 9*3600))
	pd := pgconv.DateToPgtype(local)
	assert.Equal(t, time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))

	dates := pgconv.DatesFromPgtype([]pgtype.Date{pd, {Valid: false}})
	assert.Len(t, dates, 1)
}

func TestIntPtr(t *testing.T) {
	assert.Nil(t, pgconv.IntPtrFromPgtype(pgtype.Int4{}))
	v := 5
	assert.Equal(t, &v, pgconv.IntPtrFromPgtype(pgconv.IntPtrToPgtype(&v)))
	assert.False(t, pgconv.IntPtrToPgtype(nil).Valid)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
