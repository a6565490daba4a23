//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	HotelID              uuid.UUID
	Code                 string
	Title                string
	Description          string
	DiscountType         offer.DiscountType
	DiscountValue        decimal.Decimal
	MaxDiscount          *int64
	FreeNights           *int
	MinimumStay          int
	MaximumStay          *int
	MinimumRooms         int
	MinimumBookingAmount *int64
	AdvanceBookingDays   *int
	BlackoutDates        []time.Time
	ApplicableRoomTypes  []string
	ValidFrom            time.Time
	ValidTo              time.Time
	TotalBookings        *int
	BookingsPerCustomer  int
	CurrentBookings      int
	Status               offer.Status
	Now                  time.Time
}

func NewOfferBuilder() *OfferBuilder {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return &OfferBuilder{
		HotelID:             uuid.New(),
		Code:                "SUMMER20",
		Title:               "Summer sale",
		Description:         "20% off summer stays",
		DiscountType:        offer.DiscountPercentage,
		DiscountValue:       decimal.NewFromInt(20),
		MinimumStay:         1,
		MinimumRooms:        1,
		ValidFrom:           now.AddDate(0, 0, -1),
		ValidTo:             now.AddDate(1, 0, 0),
		BookingsPerCustomer: 1,
		Status:              offer.StatusActive,
		Now:                 now,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithHotel(id uuid.UUID) *OfferBuilder {
	b.HotelID = id
	return b
}

func (b *OfferBuilder) WithTotalBookings(n int) *OfferBuilder {
	b.TotalBookings = &n
	return b
}

func (b *OfferBuilder) parts() (offer.Code, offer.Discount, offer.Conditions, offer.Validity, offer.UsageLimit, error) {
	code, err := offer.NewOfferCode(b.Code)
	if err != nil {
		return "", offer.Discount{}, offer.Conditions{}, offer.Validity{}, offer.UsageLimit{}, err
	}
	discount, err := offer.NewDiscount(b.DiscountType, b.DiscountValue, b.MaxDiscount, b.FreeNights)
	if err != nil {
		return "", offer.Discount{}, offer.Conditions{}, offer.Validity{}, offer.UsageLimit{}, err
	}
	var minAmount *reservation.Money
	if b.MinimumBookingAmount != nil {
		m := reservation.NewMoney(*b.MinimumBookingAmount)
		minAmount = &m
	}
	conditions, err := offer.NewConditions(offer.Conditions{
		MinimumStay:          b.MinimumStay,
		MaximumStay:          b.MaximumStay,
		MinimumRooms:         b.MinimumRooms,
		MinimumBookingAmount: minAmount,
		AdvanceBookingDays:   b.AdvanceBookingDays,
		BlackoutDates:        b.BlackoutDates,
		ApplicableRoomTypes:  b.ApplicableRoomTypes,
	})
	if err != nil {
		return "", offer.Discount{}, offer.Conditions{}, offer.Validity{}, offer.UsageLimit{}, err
	}
	validity, err := offer.NewValidity(b.ValidFrom, b.ValidTo)
	if err != nil {
		return "", offer.Discount{}, offer.Conditions{}, offer.Validity{}, offer.UsageLimit{}, err
	}
	usage, err := offer.NewUsageLimit(b.TotalBookings, b.BookingsPerCustomer, b.CurrentBookings)
	if err != nil {
		return "", offer.Discount{}, offer.Conditions{}, offer.Validity{}, offer.UsageLimit{}, err
	}
	return code, discount, conditions, validity, usage, nil
}

// BuildDomain creates a fresh draft offer.
func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	code, discount, conditions, validity, usage, err := b.parts()
	if err != nil {
		return nil, err
	}
	return offer.NewOffer(b.HotelID, code, b.Title, b.Description, discount, conditions, validity, usage, b.Now)
}

// BuildReconstructed creates an offer in b.Status as if loaded from storage.
func (b *OfferBuilder) BuildReconstructed() (*offer.Offer, error) {
	code, discount, conditions, validity, usage, err := b.parts()
	if err != nil {
		return nil, err
	}
	return offer.ReconstructOffer(
		uuid.New(), b.HotelID, code, b.Title, b.Description,
		discount, conditions, validity, usage, b.Status,
		offer.NewAnalytics(0, 0, 0, reservation.NewMoney(0)),
		nil, b.Now, b.Now,
	), nil
}

func (b *OfferBuilder) MustBuildReconstructed() *offer.Offer {
	o, err := b.BuildReconstructed()
	if err != nil {
		panic(err)
	}
	return o
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return queries.NewOfferView(b.MustBuildReconstructed(), b.Now)
}
