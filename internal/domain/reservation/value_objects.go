package reservation

import (
	"fmt"
	"time"

	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errs.Validation("checkIn must be before checkOut")
	ErrMissingDate      = errs.Validation("checkIn and checkOut are required")
	ErrNegativeMoney    = errs.Validation("money cannot be negative")
)

// DateRange is a half-open interval of UTC calendar dates: [start, end).
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return DateRange{}, ErrMissingDate
	}
	start, end := clock.DateOf(checkIn), clock.DateOf(checkOut)
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	if checkIn == "" || checkOut == "" {
		return DateRange{}, ErrMissingDate
	}
	start, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(start, end)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errs.Validationf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Dates lists every night of the stay; the checkout date is excluded.
func (r DateRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func (r DateRange) Contains(date time.Time) bool {
	d := clock.DateOf(date)
	return !d.Before(r.start) && d.Before(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", FormatDate(r.start), FormatDate(r.end))
}

// Money is an amount in minor currency units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

func (m Money) Max(other Money) Money {
	if other.cents > m.cents {
		return other
	}
	return m
}

// Percent returns rate% of m rounded half-up to the minor unit.
func (m Money) Percent(rate decimal.Decimal) Money {
	return FromDecimal(m.Decimal().Mul(rate).Div(decimal.NewFromInt(100)))
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.cents)
}

// FromDecimal rounds a minor-unit amount half-up.
func FromDecimal(d decimal.Decimal) Money {
	return Money{cents: d.Round(0).IntPart()}
}

func (m Money) String() string {
	return decimal.New(m.cents, -2).StringFixed(2)
}
