package offer

import (
	"hotel-booking-engine/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

type Analytics struct {
	views    int64
	clicks   int64
	bookings int64
	revenue  reservation.Money
}

func NewAnalytics(views, clicks, bookings int64, revenue reservation.Money) Analytics {
	return Analytics{views: views, clicks: clicks, bookings: bookings, revenue: revenue}
}

func (a Analytics) Views() int64               { return a.views }
func (a Analytics) Clicks() int64              { return a.clicks }
func (a Analytics) Bookings() int64            { return a.bookings }
func (a Analytics) Revenue() reservation.Money { return a.revenue }

// ConversionRate is bookings per click, zero before the first click.
func (a Analytics) ConversionRate() decimal.Decimal {
	if a.clicks == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(a.bookings).Div(decimal.NewFromInt(a.clicks)).Round(4)
}

func (a Analytics) AverageBookingValue() reservation.Money {
	if a.bookings == 0 {
		return reservation.NewMoney(0)
	}
	return reservation.FromDecimal(a.revenue.Decimal().Div(decimal.NewFromInt(a.bookings)))
}

func (a Analytics) recordBooking(final reservation.Money) Analytics {
	a.bookings++
	a.revenue = a.revenue.Add(final)
	return a
}
