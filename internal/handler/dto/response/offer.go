package response

import (
	"time"

	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferResponse struct {
	ID                   uuid.UUID         `json:"id"`
	HotelID              uuid.UUID         `json:"hotel_id"`
	Code                 string            `json:"code"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	DiscountType         string            `json:"discount_type"`
	DiscountValue        string            `json:"discount_value"`
	MaxDiscount          *int64            `json:"max_discount,omitempty"`
	FreeNights           *int              `json:"free_nights,omitempty"`
	MinimumStay          int               `json:"minimum_stay"`
	MaximumStay          *int              `json:"maximum_stay,omitempty"`
	MinimumRooms         int               `json:"minimum_rooms"`
	MinimumBookingAmount *int64            `json:"minimum_booking_amount,omitempty"`
	AdvanceBookingDays   *int              `json:"advance_booking_days,omitempty"`
	BlackoutDates        []string          `json:"blackout_dates"`
	ApplicableRoomTypes  []string          `json:"applicable_room_types"`
	StartDate            time.Time         `json:"start_date"`
	EndDate              time.Time         `json:"end_date"`
	TotalBookings        *int              `json:"total_bookings,omitempty"`
	BookingsPerCustomer  int               `json:"bookings_per_customer"`
	CurrentBookings      int               `json:"current_bookings"`
	Status               string            `json:"status"`
	Analytics            AnalyticsResponse `json:"analytics"`
	ApprovedAt           *time.Time        `json:"approved_at,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

type AnalyticsResponse struct {
	OfferID             uuid.UUID `json:"offer_id"`
	Views               int64     `json:"views"`
	Clicks              int64     `json:"clicks"`
	Bookings            int64     `json:"bookings"`
	Revenue             int64     `json:"revenue"`
	ConversionRate      string    `json:"conversion_rate"`
	AverageBookingValue int64     `json:"average_booking_value"`
}

type VerdictResponse struct {
	Applicable bool   `json:"applicable"`
	Reason     string `json:"reason,omitempty"`
	Code       string `json:"code,omitempty"`
}

type RedemptionResponse struct {
	ID         uuid.UUID  `json:"id"`
	OfferID    uuid.UUID  `json:"offer_id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	CheckIn    string     `json:"check_in"`
	CheckOut   string     `json:"check_out"`
	Original   int64      `json:"original"`
	Discount   int64      `json:"discount"`
	Final      int64      `json:"final"`
	RedeemedAt time.Time  `json:"redeemed_at"`
}

type RedemptionPageResponse struct {
	Items      []*RedemptionResponse `json:"items"`
	NextCursor *string               `json:"next_cursor,omitempty"`
}

func FromOfferView(v *queries.OfferView) (*OfferResponse, error) {
	return copyFrom[OfferResponse](v)
}

func FromOfferViews(vs []*queries.OfferView) ([]*OfferResponse, error) {
	return copyList[OfferResponse](vs)
}

func FromAnalyticsView(v *queries.AnalyticsView) (*AnalyticsResponse, error) {
	return copyFrom[AnalyticsResponse](v)
}

func FromVerdictView(v *queries.VerdictView) (*VerdictResponse, error) {
	return copyFrom[VerdictResponse](v)
}

func FromRedemptionView(v *queries.RedemptionView) (*RedemptionResponse, error) {
	return copyFrom[RedemptionResponse](v)
}

func FromRedemptionPage(items []*queries.RedemptionView, next *queries.Cursor) (*RedemptionPageResponse, error) {
	list, err := copyList[RedemptionResponse](items)
	if err != nil {
		return nil, err
	}
	page := &RedemptionPageResponse{Items: list}
	if next != nil && next.After != "" {
		page.NextCursor = &next.After
	}
	return page, nil
}
