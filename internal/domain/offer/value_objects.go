package offer

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOfferCode       = errs.Validation("invalid offer code format")
	ErrInvalidDiscountType    = errs.Validation("invalid discount type")
	ErrInvalidDiscountAmount  = errs.Validation("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errs.Validation("percentage discount must be between 0 and 100")
	ErrFractionalAmount       = errs.Validation("fixed discount must be a whole number of minor units")
	ErrInvalidFreeNights      = errs.Validation("free-nights discount requires freeNights of at least 1")
	ErrInvalidValidity        = errs.Validation("validity startDate must be before endDate")
	ErrInvalidConditions      = errs.Validation("invalid offer conditions")
	ErrInvalidUsageLimit      = errs.Validation("invalid usage limit")
)

var offerCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewOfferCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !offerCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidOfferCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Discount holds a percentage (value 0..100) or a minor-unit amount,
// depending on its type.
type Discount struct {
	kind        DiscountType
	value       decimal.Decimal
	maxDiscount *reservation.Money
	freeNights  *int
}

func NewDiscount(kind DiscountType, value decimal.Decimal, maxDiscount *int64, freeNights *int) (Discount, error) {
	if !kind.IsValid() {
		return Discount{}, ErrInvalidDiscountType
	}
	if value.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}

	d := Discount{kind: kind, value: value}
	switch kind {
	case DiscountPercentage:
		if value.GreaterThan(decimal.NewFromInt(100)) {
			return Discount{}, ErrInvalidDiscountPercent
		}
	case DiscountFixedAmount:
		if !value.Equal(value.Truncate(0)) {
			return Discount{}, ErrFractionalAmount
		}
	case DiscountFreeNights:
		if freeNights == nil || *freeNights < 1 {
			return Discount{}, ErrInvalidFreeNights
		}
		n := *freeNights
		d.freeNights = &n
	}

	if maxDiscount != nil {
		if *maxDiscount < 0 {
			return Discount{}, ErrInvalidDiscountAmount
		}
		m := reservation.NewMoney(*maxDiscount)
		d.maxDiscount = &m
	}
	return d, nil
}

func (d Discount) Type() DiscountType              { return d.kind }
func (d Discount) Value() decimal.Decimal          { return d.value }
func (d Discount) MaxDiscount() *reservation.Money { return d.maxDiscount }
func (d Discount) FreeNights() *int                { return d.freeNights }

type Conditions struct {
	MinimumStay          int
	MaximumStay          *int
	MinimumRooms         int
	MinimumBookingAmount *reservation.Money
	AdvanceBookingDays   *int
	BlackoutDates        []time.Time
	ApplicableRoomTypes  []string
}

// NewConditions normalises dates and room types and applies the defaults of
// one night and one room.
func NewConditions(c Conditions) (Conditions, error) {
	if c.MinimumStay <= 0 {
		c.MinimumStay = 1
	}
	if c.MinimumRooms <= 0 {
		c.MinimumRooms = 1
	}
	if c.MaximumStay != nil && *c.MaximumStay < c.MinimumStay {
		return Conditions{}, ErrInvalidConditions
	}
	if c.AdvanceBookingDays != nil && *c.AdvanceBookingDays < 0 {
		return Conditions{}, ErrInvalidConditions
	}
	if c.MinimumBookingAmount != nil && c.MinimumBookingAmount.IsNegative() {
		return Conditions{}, ErrInvalidConditions
	}

	blackouts := make([]time.Time, 0, len(c.BlackoutDates))
	for _, d := range c.BlackoutDates {
		blackouts = append(blackouts, clock.DateOf(d))
	}
	sort.Slice(blackouts, func(i, j int) bool { return blackouts[i].Before(blackouts[j]) })
	c.BlackoutDates = blackouts

	types := make([]string, 0, len(c.ApplicableRoomTypes))
	for _, t := range c.ApplicableRoomTypes {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			types = append(types, t)
		}
	}
	c.ApplicableRoomTypes = types
	return c, nil
}

// Validity is inclusive at both ends.
type Validity struct {
	start time.Time
	end   time.Time
}

func NewValidity(start, end time.Time) (Validity, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return Validity{}, ErrInvalidValidity
	}
	return Validity{start: start.UTC(), end: end.UTC()}, nil
}

func (v Validity) Start() time.Time { return v.start }
func (v Validity) End() time.Time   { return v.end }

func (v Validity) HasStarted(now time.Time) bool {
	return !now.Before(v.start)
}

func (v Validity) HasElapsed(now time.Time) bool {
	return now.After(v.end)
}

type UsageLimit struct {
	totalBookings       *int
	bookingsPerCustomer int
	currentBookings     int
}

func NewUsageLimit(totalBookings *int, bookingsPerCustomer, currentBookings int) (UsageLimit, error) {
	if totalBookings != nil && *totalBookings < 1 {
		return UsageLimit{}, ErrInvalidUsageLimit
	}
	if bookingsPerCustomer < 1 || currentBookings < 0 {
		return UsageLimit{}, ErrInvalidUsageLimit
	}
	var total *int
	if totalBookings != nil {
		n := *totalBookings
		total = &n
	}
	return UsageLimit{totalBookings: total, bookingsPerCustomer: bookingsPerCustomer, currentBookings: currentBookings}, nil
}

func (u UsageLimit) TotalBookings() *int      { return u.totalBookings }
func (u UsageLimit) BookingsPerCustomer() int { return u.bookingsPerCustomer }
func (u UsageLimit) CurrentBookings() int     { return u.currentBookings }

func (u UsageLimit) Exhausted() bool {
	return u.totalBookings != nil && u.currentBookings >= *u.totalBookings
}

// Remaining returns nil when the offer is unlimited.
func (u UsageLimit) Remaining() *int {
	if u.totalBookings == nil {
		return nil
	}
	n := max(*u.totalBookings-u.currentBookings, 0)
	return &n
}

// Redemption is one successful application of an offer to a booking.
type Redemption struct {
	id         uuid.UUID
	offerID    uuid.UUID
	customerID uuid.UUID
	bookingID  *uuid.UUID
	stay       reservation.DateRange
	original   reservation.Money
	discount   reservation.Money
	final      reservation.Money
	redeemedAt time.Time
}

func ReconstructRedemption(
	id, offerID, customerID uuid.UUID,
	bookingID *uuid.UUID,
	stay reservation.DateRange,
	original, discount, final reservation.Money,
	redeemedAt time.Time,
) Redemption {
	return Redemption{
		id:         id,
		offerID:    offerID,
		customerID: customerID,
		bookingID:  bookingID,
		stay:       stay,
		original:   original,
		discount:   discount,
		final:      final,
		redeemedAt: redeemedAt,
	}
}

func (r Redemption) ID() uuid.UUID               { return r.id }
func (r Redemption) OfferID() uuid.UUID          { return r.offerID }
func (r Redemption) CustomerID() uuid.UUID       { return r.customerID }
func (r Redemption) BookingID() *uuid.UUID       { return r.bookingID }
func (r Redemption) Stay() reservation.DateRange { return r.stay }
func (r Redemption) Original() reservation.Money { return r.original }
func (r Redemption) Discount() reservation.Money { return r.discount }
func (r Redemption) Final() reservation.Money    { return r.final }
func (r Redemption) RedeemedAt() time.Time       { return r.redeemedAt }
