package pricing

import (
	"time"

	"hotel-booking-engine/internal/domain/hotel"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/pkg/errs"
)

var (
	ErrInvalidGuests    = errs.Validation("guests must be at least 1")
	ErrCapacityExceeded = errs.Validation("guests exceed room capacity")
)

type NightLine struct {
	Date             time.Time
	Base             reservation.Money
	Season           string
	WeekendSurcharge reservation.Money
	HolidaySurcharge reservation.Money
	Amount           reservation.Money
}

type Taxes struct {
	GST        reservation.Money
	ServiceTax reservation.Money
}

type Quote struct {
	Nights           int
	PerNight         []NightLine
	NightsTotal      reservation.Money
	ExtraGuests      int
	ExtraGuestCharge reservation.Money
	Subtotal         reservation.Money
	Taxes            Taxes
	Tax              reservation.Money
	Total            reservation.Money
}

// PriceCalculator prices a stay from room and hotel state alone.
type PriceCalculator interface {
	Compose(r *room.Room, policy *hotel.Policy, stay reservation.DateRange, guests int) (Quote, error)
}

type Composer struct {
	defaultBaseOccupancy int
}

func NewComposer(defaultBaseOccupancy int) *Composer {
	if defaultBaseOccupancy < 1 {
		defaultBaseOccupancy = 2
	}
	return &Composer{defaultBaseOccupancy: defaultBaseOccupancy}
}

// Compose is pure: identical room, policy, stay and guests give an identical quote.
func (c *Composer) Compose(r *room.Room, policy *hotel.Policy, stay reservation.DateRange, guests int) (Quote, error) {
	if guests < 1 {
		return Quote{}, ErrInvalidGuests
	}
	if !r.Capacity().Fits(guests) {
		return Quote{}, ErrCapacityExceeded
	}

	p := r.Pricing()
	q := Quote{Nights: stay.Nights(), PerNight: make([]NightLine, 0, stay.Nights())}

	for _, night := range stay.Dates() {
		line := NightLine{Date: night}
		base, season := p.RateFor(night)
		line.Base = base
		if season != nil {
			line.Season = season.Name()
		}
		if room.IsWeekend(night) {
			line.WeekendSurcharge = p.WeekendSurcharge()
		}
		if policy.IsHoliday(night) {
			line.HolidaySurcharge = p.HolidaySurcharge()
		}
		line.Amount = line.Base.Add(line.WeekendSurcharge).Add(line.HolidaySurcharge)

		q.PerNight = append(q.PerNight, line)
		q.NightsTotal = q.NightsTotal.Add(line.Amount)
	}

	threshold := policy.BaseOccupancyOr(c.defaultBaseOccupancy)
	if guests > threshold {
		q.ExtraGuests = guests - threshold
		q.ExtraGuestCharge = p.ExtraPersonCharge().Times(q.ExtraGuests).Times(q.Nights)
	}

	q.Subtotal = q.NightsTotal.Add(q.ExtraGuestCharge)
	q.Taxes = Taxes{
		GST:        q.Subtotal.Percent(policy.GSTRate()),
		ServiceTax: q.Subtotal.Percent(policy.ServiceTaxRate()),
	}
	q.Tax = q.Taxes.GST.Add(q.Taxes.ServiceTax)
	q.Total = q.Subtotal.Add(q.Tax)
	return q, nil
}
