package queries

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	ListActiveByHotel(ctx context.Context, hotelID uuid.UUID, now time.Time) ([]*offer.Offer, error)
	CountCustomerRedemptions(ctx context.Context, offerID, customerID uuid.UUID) (int, error)
	RedemptionsFirstPage(ctx context.Context, offerID uuid.UUID, limit int32) ([]*RedemptionView, error)
	RedemptionsKeyset(ctx context.Context, offerID uuid.UUID, lastRedeemedAt time.Time, lastID uuid.UUID, limit int32) ([]*RedemptionView, error)
}

// ApplicabilityRequest describes a candidate stay. When CustomerID is set the
// prior redemption count is read from the ledger; otherwise PriorRedemptions
// as supplied by the caller is used.
type ApplicabilityRequest struct {
	Stay             reservation.DateRange
	Rooms            int
	Amount           int64
	RoomType         string
	CustomerID       *uuid.UUID
	PriorRedemptions int
}

type OfferQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	IsApplicable(ctx context.Context, offerID uuid.UUID, req ApplicabilityRequest) (*VerdictView, error)
	GetAnalytics(ctx context.Context, id uuid.UUID) (*AnalyticsView, error)
	ListActive(ctx context.Context, hotelID uuid.UUID) ([]*OfferView, error)
	ListRedemptions(ctx context.Context, offerID uuid.UUID, cursor *Cursor, limit int) ([]*RedemptionView, *Cursor, error)
}

type offerQueriesImpl struct {
	offers OfferReadStore
	clock  clock.Clock
}

func NewOfferQueries(offers OfferReadStore, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{offers: offers, clock: clk}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	o, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewOfferView(o, q.clock.Now()), nil
}

func (q *offerQueriesImpl) IsApplicable(ctx context.Context, offerID uuid.UUID, req ApplicabilityRequest) (*VerdictView, error) {
	o, err := q.find(ctx, offerID)
	if err != nil {
		return nil, err
	}

	prior := req.PriorRedemptions
	if req.CustomerID != nil {
		prior, err = q.offers.CountCustomerRedemptions(ctx, offerID, *req.CustomerID)
		if err != nil {
			return nil, shared.TranslateRepoErr(err, nil)
		}
	}

	amount, err := reservation.NewNonNegativeMoney(req.Amount)
	if err != nil {
		return nil, err
	}
	verdict := o.IsApplicable(q.clock.Now(), offer.StayRequest{
		Stay:             req.Stay,
		Rooms:            req.Rooms,
		Amount:           amount,
		RoomType:         req.RoomType,
		PriorRedemptions: prior,
	})
	return NewVerdictView(verdict), nil
}

func (q *offerQueriesImpl) GetAnalytics(ctx context.Context, id uuid.UUID) (*AnalyticsView, error) {
	o, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewAnalyticsView(o), nil
}

func (q *offerQueriesImpl) ListActive(ctx context.Context, hotelID uuid.UUID) ([]*OfferView, error) {
	now := q.clock.Now()
	offers, err := q.offers.ListActiveByHotel(ctx, hotelID, now)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, nil)
	}
	out := make([]*OfferView, 0, len(offers))
	for _, o := range offers {
		out = append(out, NewOfferView(o, now))
	}
	return out, nil
}

// ListRedemptions pages the redemption audit trail, newest first.
func (q *offerQueriesImpl) ListRedemptions(ctx context.Context, offerID uuid.UUID, cursor *Cursor, limit int) ([]*RedemptionView, *Cursor, error) {
	if _, err := q.find(ctx, offerID); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*RedemptionView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.offers.RedemptionsFirstPage(ctx, offerID, int32(limit+1))
	} else {
		lastRedeemedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.offers.RedemptionsKeyset(ctx, offerID, lastRedeemedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, shared.TranslateRepoErr(err, nil)
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.RedeemedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *offerQueriesImpl) find(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	o, err := q.offers.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrOfferNotFound)
	}
	return o, nil
}
