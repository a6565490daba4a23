package queries

import (
	"context"
	"sort"

	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/pricing"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResolveRequest struct {
	HotelID    uuid.UUID
	Stay       reservation.DateRange
	Guests     int
	RoomType   *string
	OfferID    *uuid.UUID
	CustomerID *uuid.UUID
	Rooms      int
}

type OfferOutcomeView struct {
	OfferID    uuid.UUID `json:"offer_id"`
	Applicable bool      `json:"applicable"`
	Reason     string    `json:"reason,omitempty"`
	Code       string    `json:"code,omitempty"`
	Discount   int64     `json:"discount"`
}

type CandidateView struct {
	Room       *RoomView         `json:"room"`
	Quote      *QuoteView        `json:"quote"`
	Offer      *OfferOutcomeView `json:"offer,omitempty"`
	FinalPrice int64             `json:"final_price"`
}

type ResolverQueries interface {
	Resolve(ctx context.Context, req ResolveRequest) ([]*CandidateView, error)
}

type resolverImpl struct {
	rooms  RoomReadStore
	hotels HotelReadStore
	offers OfferReadStore
	calc   pricing.PriceCalculator
	clock  clock.Clock
}

func NewResolverQueries(rooms RoomReadStore, hotels HotelReadStore, offers OfferReadStore, calc pricing.PriceCalculator, clk clock.Clock) ResolverQueries {
	return &resolverImpl{rooms: rooms, hotels: hotels, offers: offers, calc: calc, clock: clk}
}

// Resolve lists the bookable rooms for a stay with their final prices,
// cheapest first. It reads only; redemption happens through ApplyOffer.
func (r *resolverImpl) Resolve(ctx context.Context, req ResolveRequest) ([]*CandidateView, error) {
	if req.Guests < 1 {
		return nil, pricing.ErrInvalidGuests
	}
	if req.Rooms < 1 {
		req.Rooms = 1
	}

	policy, err := r.hotels.PolicyByID(ctx, req.HotelID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrHotelNotFound)
	}

	var (
		o     *offer.Offer
		prior int
	)
	if req.OfferID != nil {
		o, err = r.offers.FindByID(ctx, *req.OfferID)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, errs.ErrOfferNotFound)
		}
		if o.HotelID() != req.HotelID {
			return nil, errs.ErrOfferHotelMismatch
		}
		if req.CustomerID != nil {
			prior, err = r.offers.CountCustomerRedemptions(ctx, o.ID(), *req.CustomerID)
			if err != nil {
				return nil, shared.TranslateRepoErr(err, nil)
			}
		}
	}

	rooms, err := r.rooms.ListAvailable(ctx, req.HotelID, req.Stay, req.Guests, req.RoomType)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, nil)
	}

	now := r.clock.Now()
	candidates := make([]*CandidateView, 0, len(rooms))
	for _, rm := range rooms {
		quote, err := r.calc.Compose(rm, policy, req.Stay, req.Guests)
		if err != nil {
			return nil, err
		}

		c := &CandidateView{
			Room:       NewRoomView(rm),
			Quote:      NewQuoteView(rm.ID(), req.Stay, req.Guests, quote),
			FinalPrice: quote.Total.Cents(),
		}
		if o != nil {
			verdict := o.IsApplicable(now, offer.StayRequest{
				Stay:             req.Stay,
				Rooms:            req.Rooms,
				Amount:           quote.Total,
				RoomType:         rm.Type().String(),
				PriorRedemptions: prior,
			})
			outcome := &OfferOutcomeView{
				OfferID:    o.ID(),
				Applicable: verdict.Applicable,
				Reason:     verdict.Reason,
				Code:       string(verdict.Code),
			}
			if verdict.Applicable {
				result := offer.CalculateDiscount(o.Discount(), quote.Total, quote.Nights)
				outcome.Discount = result.Discount.Cents()
				c.FinalPrice = result.Final.Cents()
			}
			c.Offer = outcome
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].FinalPrice != candidates[j].FinalPrice {
			return candidates[i].FinalPrice < candidates[j].FinalPrice
		}
		return candidates[i].Room.Number < candidates[j].Room.Number
	})
	return candidates, nil
}
