package offer

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errs.Validation("offer title cannot be empty")
	ErrMissingHotel      = errs.Validation("hotelId is required")
	ErrMissingCustomer   = errs.Validation("customerId is required")
	ErrInvalidTransition = errs.Conflict("invalid offer status transition")
	ErrOfferTerminal     = errs.Conflict("offer is expired or cancelled")
)

type Offer struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	code        Code
	title       string
	description string
	discount    Discount
	conditions  Conditions
	validity    Validity
	usage       UsageLimit
	status      Status
	analytics   Analytics
	approvedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	// appended by Redeem, persisted by the repository
	pendingRedemptions []Redemption
}

func NewOffer(
	hotelID uuid.UUID,
	code Code,
	title, description string,
	discount Discount,
	conditions Conditions,
	validity Validity,
	usage UsageLimit,
	now time.Time,
) (*Offer, error) {
	if hotelID == uuid.Nil {
		return nil, ErrMissingHotel
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	return &Offer{
		id:          uuid.New(),
		hotelID:     hotelID,
		code:        code,
		title:       title,
		description: strings.TrimSpace(description),
		discount:    discount,
		conditions:  conditions,
		validity:    validity,
		usage:       usage,
		status:      StatusDraft,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructOffer(
	id, hotelID uuid.UUID,
	code Code,
	title, description string,
	discount Discount,
	conditions Conditions,
	validity Validity,
	usage UsageLimit,
	status Status,
	analytics Analytics,
	approvedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:          id,
		hotelID:     hotelID,
		code:        code,
		title:       title,
		description: description,
		discount:    discount,
		conditions:  conditions,
		validity:    validity,
		usage:       usage,
		status:      status,
		analytics:   analytics,
		approvedAt:  approvedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// EffectiveStatus applies lazy expiry without mutating the offer.
func (o *Offer) EffectiveStatus(now time.Time) Status {
	if !o.status.IsTerminal() && o.validity.HasElapsed(now) {
		return StatusExpired
	}
	return o.status
}

// ExpireIfElapsed moves the offer to expired once its validity has passed.
// It reports whether the status changed and must be persisted.
func (o *Offer) ExpireIfElapsed(now time.Time) bool {
	if o.EffectiveStatus(now) == StatusExpired && o.status != StatusExpired {
		o.status = StatusExpired
		o.updatedAt = now
		return true
	}
	return false
}

func (o *Offer) Approve(now time.Time) error {
	if err := o.transition(StatusDraft, StatusActive, now); err != nil {
		return err
	}
	o.approvedAt = &now
	return nil
}

func (o *Offer) Pause(now time.Time) error {
	return o.transition(StatusActive, StatusPaused, now)
}

func (o *Offer) Resume(now time.Time) error {
	return o.transition(StatusPaused, StatusActive, now)
}

func (o *Offer) Cancel(now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOfferTerminal
	}
	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

func (o *Offer) transition(from, to Status, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOfferTerminal
	}
	if o.status != from {
		return ErrInvalidTransition
	}
	o.status = to
	o.updatedAt = now
	return nil
}

// Redeem applies the offer to one booking. On any failed check it returns the
// reason and leaves the offer untouched.
func (o *Offer) Redeem(now time.Time, customerID uuid.UUID, bookingID *uuid.UUID, req StayRequest) (Redemption, error) {
	if customerID == uuid.Nil {
		return Redemption{}, ErrMissingCustomer
	}
	v := o.IsApplicable(now, req)
	if !v.Applicable {
		if v.Code.IsLimit() {
			return Redemption{}, errs.Tagged(errs.ErrLimitExceeded, errs.ErrOfferLimitReached, v.Reason)
		}
		return Redemption{}, errs.Tagged(errs.ErrConflict, errs.ErrOfferInapplicable, v.Reason)
	}

	result := CalculateDiscount(o.discount, req.Amount, req.Stay.Nights())
	r := Redemption{
		id:         uuid.New(),
		offerID:    o.id,
		customerID: customerID,
		bookingID:  bookingID,
		stay:       req.Stay,
		original:   result.Original,
		discount:   result.Discount,
		final:      result.Final,
		redeemedAt: now,
	}

	o.usage.currentBookings++
	o.analytics = o.analytics.recordBooking(r.final)
	o.pendingRedemptions = append(o.pendingRedemptions, r)
	o.updatedAt = now
	return r, nil
}

func (o *Offer) PendingRedemptions() []Redemption {
	out := make([]Redemption, len(o.pendingRedemptions))
	copy(out, o.pendingRedemptions)
	return out
}

func (o *Offer) ID() uuid.UUID          { return o.id }
func (o *Offer) HotelID() uuid.UUID     { return o.hotelID }
func (o *Offer) Code() Code             { return o.code }
func (o *Offer) Title() string          { return o.title }
func (o *Offer) Description() string    { return o.description }
func (o *Offer) Discount() Discount     { return o.discount }
func (o *Offer) Conditions() Conditions { return o.conditions }
func (o *Offer) Validity() Validity     { return o.validity }
func (o *Offer) Usage() UsageLimit      { return o.usage }
func (o *Offer) Status() Status         { return o.status }
func (o *Offer) Analytics() Analytics   { return o.analytics }
func (o *Offer) ApprovedAt() *time.Time { return o.approvedAt }
func (o *Offer) CreatedAt() time.Time   { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time   { return o.updatedAt }
