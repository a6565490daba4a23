package room

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

type Capacity struct {
	adults       int
	children     int
	infants      int
	maxOccupancy int
}

func NewCapacity(adults, children, infants, maxOccupancy int) (Capacity, error) {
	if adults < 0 || children < 0 || infants < 0 {
		return Capacity{}, ErrNegativeCapacity
	}
	if maxOccupancy <= 0 {
		return Capacity{}, ErrInvalidMaxOccupancy
	}
	if maxOccupancy < adults+children {
		return Capacity{}, ErrOccupancyBelowGuests
	}
	return Capacity{adults: adults, children: children, infants: infants, maxOccupancy: maxOccupancy}, nil
}

func (c Capacity) Adults() int       { return c.adults }
func (c Capacity) Children() int     { return c.children }
func (c Capacity) Infants() int      { return c.infants }
func (c Capacity) MaxOccupancy() int { return c.maxOccupancy }

func (c Capacity) Fits(guests int) bool {
	return guests <= c.maxOccupancy
}

type Bed struct {
	Type  string
	Count int
}

func NewBeds(beds []Bed) ([]Bed, error) {
	out := make([]Bed, 0, len(beds))
	for _, b := range beds {
		t := strings.TrimSpace(b.Type)
		if t == "" || b.Count <= 0 {
			return nil, ErrInvalidBed
		}
		out = append(out, Bed{Type: t, Count: b.Count})
	}
	return out, nil
}

// SeasonWindow is an inclusive range of calendar dates.
type SeasonWindow struct {
	start time.Time
	end   time.Time
}

func NewSeasonWindow(start, end time.Time) (SeasonWindow, error) {
	s, e := clock.DateOf(start), clock.DateOf(end)
	if s.After(e) {
		return SeasonWindow{}, ErrInvalidSeasonWindow
	}
	return SeasonWindow{start: s, end: e}, nil
}

func (w SeasonWindow) Start() time.Time { return w.start }
func (w SeasonWindow) End() time.Time   { return w.end }

func (w SeasonWindow) Contains(date time.Time) bool {
	d := clock.DateOf(date)
	return !d.Before(w.start) && !d.After(w.end)
}

type SeasonalRate struct {
	name   string
	window SeasonWindow
	price  reservation.Money
}

func NewSeasonalRate(name string, window SeasonWindow, price reservation.Money) (SeasonalRate, error) {
	if price.IsNegative() {
		return SeasonalRate{}, ErrNegativePrice
	}
	return SeasonalRate{name: strings.TrimSpace(name), window: window, price: price}, nil
}

func (s SeasonalRate) Name() string             { return s.name }
func (s SeasonalRate) Window() SeasonWindow     { return s.window }
func (s SeasonalRate) Price() reservation.Money { return s.price }

type Pricing struct {
	basePrice         reservation.Money
	seasonalRates     []SeasonalRate
	weekendSurcharge  reservation.Money
	holidaySurcharge  reservation.Money
	extraPersonCharge reservation.Money
}

func NewPricing(
	basePrice reservation.Money,
	seasonalRates []SeasonalRate,
	weekendSurcharge, holidaySurcharge, extraPersonCharge reservation.Money,
) (Pricing, error) {
	for _, m := range []reservation.Money{basePrice, weekendSurcharge, holidaySurcharge, extraPersonCharge} {
		if m.IsNegative() {
			return Pricing{}, ErrNegativePrice
		}
	}
	rates := make([]SeasonalRate, len(seasonalRates))
	copy(rates, seasonalRates)
	return Pricing{
		basePrice:         basePrice,
		seasonalRates:     rates,
		weekendSurcharge:  weekendSurcharge,
		holidaySurcharge:  holidaySurcharge,
		extraPersonCharge: extraPersonCharge,
	}, nil
}

func (p Pricing) BasePrice() reservation.Money         { return p.basePrice }
func (p Pricing) WeekendSurcharge() reservation.Money  { return p.weekendSurcharge }
func (p Pricing) HolidaySurcharge() reservation.Money  { return p.holidaySurcharge }
func (p Pricing) ExtraPersonCharge() reservation.Money { return p.extraPersonCharge }

func (p Pricing) SeasonalRates() []SeasonalRate {
	out := make([]SeasonalRate, len(p.seasonalRates))
	copy(out, p.seasonalRates)
	return out
}

// RateFor returns the nightly rate before surcharges. The first seasonal
// window containing the date wins; nil season means the base price applied.
func (p Pricing) RateFor(date time.Time) (reservation.Money, *SeasonalRate) {
	for i := range p.seasonalRates {
		if p.seasonalRates[i].window.Contains(date) {
			s := p.seasonalRates[i]
			return s.price, &s
		}
	}
	return p.basePrice, nil
}

// IsWeekend reports Friday and Saturday nights.
func IsWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Friday, time.Saturday:
		return true
	default:
		return false
	}
}

type MaintenanceWindow struct {
	id     uuid.UUID
	period reservation.DateRange
	reason string
}

func NewMaintenanceWindow(period reservation.DateRange, reason string) MaintenanceWindow {
	return MaintenanceWindow{id: uuid.New(), period: period, reason: strings.TrimSpace(reason)}
}

func ReconstructMaintenanceWindow(id uuid.UUID, period reservation.DateRange, reason string) MaintenanceWindow {
	return MaintenanceWindow{id: id, period: period, reason: reason}
}

func (w MaintenanceWindow) ID() uuid.UUID                 { return w.id }
func (w MaintenanceWindow) Period() reservation.DateRange { return w.period }
func (w MaintenanceWindow) Reason() string                { return w.reason }
