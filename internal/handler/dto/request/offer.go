package request

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferConditionsRequest struct {
	MinimumStay          int      `json:"minimum_stay" binding:"min=0"`
	MaximumStay          *int     `json:"maximum_stay" binding:"omitempty,min=1"`
	MinimumRooms         int      `json:"minimum_rooms" binding:"min=0"`
	MinimumBookingAmount *int64   `json:"minimum_booking_amount" binding:"omitempty,min=0"`
	AdvanceBookingDays   *int     `json:"advance_booking_days" binding:"omitempty,min=0"`
	BlackoutDates        []string `json:"blackout_dates"`
	ApplicableRoomTypes  []string `json:"applicable_room_types"`
}

type CreateOfferRequest struct {
	Code                string                 `json:"code" binding:"required,max=50"`
	Title               string                 `json:"title" binding:"required,max=200"`
	Description         string                 `json:"description" binding:"max=2000"`
	DiscountType        string                 `json:"discount_type" binding:"required" example:"percentage"`
	DiscountValue       decimal.Decimal        `json:"discount_value" swaggertype:"string" example:"15"`
	MaxDiscount         *int64                 `json:"max_discount" binding:"omitempty,min=0"`
	FreeNights          *int                   `json:"free_nights" binding:"omitempty,min=1"`
	Conditions          OfferConditionsRequest `json:"conditions"`
	StartDate           time.Time              `json:"start_date" binding:"required"`
	EndDate             time.Time              `json:"end_date" binding:"required"`
	TotalBookings       *int                   `json:"total_bookings" binding:"omitempty,min=1"`
	BookingsPerCustomer *int                   `json:"bookings_per_customer" binding:"omitempty,min=1"`
}

func (r CreateOfferRequest) ToCommand(hotelID uuid.UUID) (commands.CreateOfferCommand, error) {
	blackout := make([]time.Time, 0, len(r.Conditions.BlackoutDates))
	for _, d := range r.Conditions.BlackoutDates {
		date, err := reservation.ParseDate(d)
		if err != nil {
			return commands.CreateOfferCommand{}, err
		}
		blackout = append(blackout, date)
	}

	return commands.CreateOfferCommand{
		HotelID:       hotelID,
		Code:          strings.TrimSpace(r.Code),
		Title:         strings.TrimSpace(r.Title),
		Description:   r.Description,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MaxDiscount:   r.MaxDiscount,
		FreeNights:    r.FreeNights,
		Conditions: commands.ConditionsInput{
			MinimumStay:          r.Conditions.MinimumStay,
			MaximumStay:          r.Conditions.MaximumStay,
			MinimumRooms:         r.Conditions.MinimumRooms,
			MinimumBookingAmount: r.Conditions.MinimumBookingAmount,
			AdvanceBookingDays:   r.Conditions.AdvanceBookingDays,
			BlackoutDates:        blackout,
			ApplicableRoomTypes:  r.Conditions.ApplicableRoomTypes,
		},
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		TotalBookings:       r.TotalBookings,
		BookingsPerCustomer: r.BookingsPerCustomer,
	}, nil
}

// StayRequest is the candidate stay an offer is checked or redeemed against.
type StayRequest struct {
	StayDates
	Rooms    int    `json:"rooms" binding:"min=0"`
	Amount   int64  `json:"amount" binding:"min=0"`
	RoomType string `json:"room_type"`
}

type ApplicabilityRequest struct {
	StayRequest
	PriorRedemptions int `json:"prior_redemptions" binding:"min=0"`
}

func (r ApplicabilityRequest) ToQuery(customerID *uuid.UUID, maxNights int) (queries.ApplicabilityRequest, error) {
	stay, err := r.Stay(maxNights)
	if err != nil {
		return queries.ApplicabilityRequest{}, err
	}
	return queries.ApplicabilityRequest{
		Stay:             stay,
		Rooms:            roomsOrOne(r.Rooms),
		Amount:           r.Amount,
		RoomType:         r.RoomType,
		PriorRedemptions: r.PriorRedemptions,
		CustomerID:       customerID,
	}, nil
}

type ApplyOfferRequest struct {
	StayRequest
	BookingID *uuid.UUID `json:"booking_id"`
}

func (r ApplyOfferRequest) ToCommand(offerID, customerID uuid.UUID, maxNights int) (commands.ApplyOfferCommand, error) {
	stay, err := r.Stay(maxNights)
	if err != nil {
		return commands.ApplyOfferCommand{}, err
	}
	return commands.ApplyOfferCommand{
		OfferID:    offerID,
		CustomerID: customerID,
		BookingID:  r.BookingID,
		Stay:       stay,
		Rooms:      roomsOrOne(r.Rooms),
		Amount:     r.Amount,
		RoomType:   r.RoomType,
	}, nil
}

type RedemptionListQuery struct {
	After string `form:"after"`
	Limit *int   `form:"limit" binding:"omitempty,min=1"`
}

func roomsOrOne(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
