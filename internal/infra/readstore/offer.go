package readstore

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferReadQueries interface {
	GetOfferByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Offer, error)
	ListActiveOffersByHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveOffersByHotelParams) ([]sqlc.Offer, error)
	CountCustomerRedemptions(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCustomerRedemptionsParams) (int64, error)
	ListRedemptionsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRedemptionsFirstPageParams) ([]sqlc.OfferRedemption, error)
	ListRedemptionsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRedemptionsKeysetParams) ([]sqlc.OfferRedemption, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqlc.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqlc.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOfferByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer by id", err)
	}
	o, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode offer", err, infra.KindDBFailure)
	}
	return o, nil
}

// ListActiveByHotel filters on status and end date at query time, so an
// elapsed offer whose row still says active is left out.
func (r *OfferReadStore) ListActiveByHotel(ctx context.Context, hotelID uuid.UUID, now time.Time) ([]*offer.Offer, error) {
	rows, err := r.queries.ListActiveOffersByHotel(ctx, r.db, sqlc.ListActiveOffersByHotelParams{
		HotelID: hotelID,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active offers", err)
	}
	out := make([]*offer.Offer, 0, len(rows))
	for _, row := range rows {
		o, err := converter.OfferFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode offer", err, infra.KindDBFailure)
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OfferReadStore) CountCustomerRedemptions(ctx context.Context, offerID, customerID uuid.UUID) (int, error) {
	n, err := r.queries.CountCustomerRedemptions(ctx, r.db, sqlc.CountCustomerRedemptionsParams{
		OfferID:    offerID,
		CustomerID: customerID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count customer redemptions", err)
	}
	return int(n), nil
}

func (r *OfferReadStore) RedemptionsFirstPage(ctx context.Context, offerID uuid.UUID, limit int32) ([]*queries.RedemptionView, error) {
	rows, err := r.queries.ListRedemptionsFirstPage(ctx, r.db, sqlc.ListRedemptionsFirstPageParams{
		OfferID: offerID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get redemptions first page", err)
	}
	return mapRedemptionRows(rows)
}

func (r *OfferReadStore) RedemptionsKeyset(ctx context.Context, offerID uuid.UUID, lastRedeemedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RedemptionView, error) {
	rows, err := r.queries.ListRedemptionsKeyset(ctx, r.db, sqlc.ListRedemptionsKeysetParams{
		OfferID:    offerID,
		RedeemedAt: pgconv.TimeToPgtype(lastRedeemedAt),
		ID:         lastID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get redemptions keyset page", err)
	}
	return mapRedemptionRows(rows)
}

func mapRedemptionRows(rows []sqlc.OfferRedemption) ([]*queries.RedemptionView, error) {
	redemptions, err := converter.RedemptionsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode redemptions", err, infra.KindDBFailure)
	}
	out := make([]*queries.RedemptionView, 0, len(redemptions))
	for _, red := range redemptions {
		out = append(out, queries.NewRedemptionView(red))
	}
	return out, nil
}
