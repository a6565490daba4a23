package offer

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/clock"
)

// StayRequest is the stay an offer is evaluated against.
type StayRequest struct {
	Stay     reservation.DateRange
	Rooms    int
	Amount   reservation.Money
	RoomType string
	// Redemptions this customer already made of the offer.
	PriorRedemptions int
}

type Verdict struct {
	Applicable bool
	Reason     string
	Code       ReasonCode
}

func applicable() Verdict {
	return Verdict{Applicable: true}
}

func reject(code ReasonCode, format string, args ...any) Verdict {
	return Verdict{Applicable: false, Code: code, Reason: fmt.Sprintf(format, args...)}
}

// IsApplicable runs the checks in a fixed order; the first failure wins.
func (o *Offer) IsApplicable(now time.Time, req StayRequest) Verdict {
	if v := o.checkValid(now); !v.Applicable {
		return v
	}

	c := o.conditions
	nights := req.Stay.Nights()
	if nights < c.MinimumStay {
		return reject(ReasonMinimumStay, "Minimum stay of %d nights required", c.MinimumStay)
	}
	if c.MaximumStay != nil && nights > *c.MaximumStay {
		return reject(ReasonMaximumStay, "Maximum stay of %d nights exceeded", *c.MaximumStay)
	}
	if req.Rooms < c.MinimumRooms {
		return reject(ReasonMinimumRooms, "Minimum of %d rooms required", c.MinimumRooms)
	}
	if c.MinimumBookingAmount != nil && req.Amount.LessThan(*c.MinimumBookingAmount) {
		return reject(ReasonMinimumAmount, "Minimum booking amount of %s required", c.MinimumBookingAmount.String())
	}
	if c.AdvanceBookingDays != nil {
		days := int(req.Stay.Start().Sub(clock.DateOf(now)).Hours() / 24)
		if days < *c.AdvanceBookingDays {
			return reject(ReasonAdvanceBooking, "Booking must be made at least %d days in advance", *c.AdvanceBookingDays)
		}
	}
	for _, b := range c.BlackoutDates {
		if req.Stay.Contains(b) {
			return reject(ReasonBlackoutDate, "Offer is not valid on blackout date %s", reservation.FormatDate(b))
		}
	}
	if len(c.ApplicableRoomTypes) > 0 && !slices.ContainsFunc(c.ApplicableRoomTypes, func(t string) bool {
		return t == normaliseRoomType(req.RoomType)
	}) {
		return reject(ReasonRoomType, "Offer is not applicable to room type %s", req.RoomType)
	}
	if req.PriorRedemptions >= o.usage.bookingsPerCustomer {
		return reject(ReasonCustomerLimit, "Customer has reached the booking limit for this offer")
	}
	return applicable()
}

func (o *Offer) checkValid(now time.Time) Verdict {
	switch {
	case o.EffectiveStatus(now) == StatusExpired:
		return reject(ReasonExpired, "Offer has expired")
	case o.status != StatusActive:
		return reject(ReasonNotActive, "Offer is not active")
	case !o.validity.HasStarted(now):
		return reject(ReasonNotStarted, "Offer is not yet valid")
	case o.usage.Exhausted():
		return reject(ReasonUsageLimit, "Offer usage limit reached")
	}
	return applicable()
}

// IsCurrentlyActive is the read-side view of lazy expiry.
func (o *Offer) IsCurrentlyActive(now time.Time) bool {
	return o.EffectiveStatus(now) == StatusActive && o.validity.HasStarted(now)
}

func normaliseRoomType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
