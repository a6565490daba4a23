//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/errs"

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

func mustRange(t *testing.T, in, out string) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(date(in), date(out))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("success: normalises to UTC dates", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		r, err := reservation.NewDateRange(
			time.Date(2024, 12, 24, 15, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 26, 20, 0, 0, 0, jst),
		)
		require.NoError(t, err)
		assert.Equal(t, date("2024-12-24"), r.Start())
		assert.Equal(t, date("2024-12-26"), r.End())
		assert.Equal(t, 2, r.Nights())
		assert.Equal(t, "[2024-12-24,2024-12-26)", r.String())
	})

	testCases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{name: "equal dates", checkIn: date("2024-12-24"), checkOut: date("2024-12-24")},
		{name: "reversed", checkIn: date("2024-12-26"), checkOut: date("2024-12-24")},
		{name: "same day different hours", checkIn: date("2024-12-24").Add(time.Hour), checkOut: date("2024-12-24").Add(20 * time.Hour)},
		{name: "missing checkIn", checkOut: date("2024-12-24")},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			_, err := reservation.NewDateRange(tc.checkIn, tc.checkOut)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestParseDateRange(t *testing.T) {
	r, err := reservation.ParseDateRange("2024-03-01", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Nights())

	_, err = reservation.ParseDateRange("2024/03/01", "2024-03-04")
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, errs.Reason(err), "YYYY-MM-DD")

	_, err = reservation.ParseDateRange("", "2024-03-04")
	assert.ErrorIs(t, err, reservation.ErrMissingDate)
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, "2024-06-10", "2024-06-13")

	testCases := []struct {
		name  string
		other reservation.DateRange
		want  bool
	}{
		{name: "identical", other: mustRange(t, "2024-06-10", "2024-06-13"), want: true},
		{name: "back to back after", other: mustRange(t, "2024-06-13", "2024-06-15"), want: false},
		{name: "back to back before", other: mustRange(t, "2024-06-08", "2024-06-10"), want: false},
		{name: "contained", other: mustRange(t, "2024-06-11", "2024-06-12"), want: true},
		{name: "straddles start", other: mustRange(t, "2024-06-09", "2024-06-11"), want: true},
		{name: "straddles end", other: mustRange(t, "2024-06-12", "2024-06-20"), want: true},
		{name: "disjoint", other: mustRange(t, "2024-07-01", "2024-07-02"), want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestDateRangeDates(t *testing.T) {
	r := mustRange(t, "2024-02-28", "2024-03-02")
	assert.Equal(t, []time.Time{date("2024-02-28"), date("2024-02-29"), date("2024-03-01")}, r.Dates())
	assert.True(t, r.Contains(date("2024-02-29")))
	assert.False(t, r.Contains(date("2024-03-02")))
}

func TestMoney(t *testing.T) {
	t.Run("percent rounds half up", func(t *testing.T) {
		testCases := []struct {
			cents int64
			rate  string
			want  int64
		}{
			{cents: 1000, rate: "18", want: 180},
			{cents: 1005, rate: "10", want: 101},
			{cents: 1004, rate: "10", want: 100},
			{cents: 333, rate: "12.5", want: 42},
			{cents: 0, rate: "18", want: 0},
		}
		for _, tc := range testCases {
			got := reservation.NewMoney(tc.cents).Percent(decimal.RequireFromString(tc.rate))
			assert.Equal(t, tc.want, got.Cents(), "%d x %s%%", tc.cents, tc.rate)
		}
	})

	t.Run("arithmetic", func(t *testing.T) {
		a := reservation.NewMoney(500)
		b := reservation.NewMoney(200)
		assert.Equal(t, int64(700), a.Add(b).Cents())
		assert.Equal(t, int64(300), a.Sub(b).Cents())
		assert.Equal(t, int64(1500), a.Times(3).Cents())
		assert.Equal(t, b, a.Min(b))
		assert.Equal(t, a, a.Max(b))
		assert.Equal(t, "5.00", a.String())
	})

	t.Run("non negative guard", func(t *testing.T) {
		_, err := reservation.NewNonNegativeMoney(-1)
		assert.ErrorIs(t, err, reservation.ErrNegativeMoney)
	})
}
