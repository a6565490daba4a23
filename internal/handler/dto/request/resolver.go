package request

import (
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResolveRequest struct {
	HotelID uuid.UUID `json:"hotel_id" binding:"required"`
	StayDates
	Guests   int        `json:"guests" binding:"required,min=1"`
	RoomType *string    `json:"room_type"`
	OfferID  *uuid.UUID `json:"offer_id"`
	Rooms    int        `json:"rooms" binding:"min=0"`
}

func (r ResolveRequest) ToQuery(customerID *uuid.UUID, maxNights int) (queries.ResolveRequest, error) {
	stay, err := r.Stay(maxNights)
	if err != nil {
		return queries.ResolveRequest{}, err
	}
	return queries.ResolveRequest{
		HotelID:    r.HotelID,
		Stay:       stay,
		Guests:     r.Guests,
		RoomType:   r.RoomType,
		OfferID:    r.OfferID,
		CustomerID: customerID,
		Rooms:      roomsOrOne(r.Rooms),
	}, nil
}
