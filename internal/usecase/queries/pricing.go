package queries

import (
	"context"

	"hotel-booking-engine/internal/domain/hotel"
	"hotel-booking-engine/internal/domain/pricing"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelReadStore interface {
	PolicyByID(ctx context.Context, id uuid.UUID) (*hotel.Policy, error)
}

type PricingQueries interface {
	PriceStay(ctx context.Context, roomID uuid.UUID, stay reservation.DateRange, guests int) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	rooms  RoomReadStore
	hotels HotelReadStore
	calc   pricing.PriceCalculator
}

func NewPricingQueries(rooms RoomReadStore, hotels HotelReadStore, calc pricing.PriceCalculator) PricingQueries {
	return &pricingQueriesImpl{rooms: rooms, hotels: hotels, calc: calc}
}

func (q *pricingQueriesImpl) PriceStay(ctx context.Context, roomID uuid.UUID, stay reservation.DateRange, guests int) (*QuoteView, error) {
	rm, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
	}
	if rm.IsArchived() {
		return nil, room.ErrRoomArchived
	}
	policy, err := q.hotels.PolicyByID(ctx, rm.HotelID())
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrHotelNotFound)
	}

	quote, err := q.calc.Compose(rm, policy, stay, guests)
	if err != nil {
		return nil, err
	}
	return NewQuoteView(roomID, stay, guests, quote), nil
}
