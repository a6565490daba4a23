package repository

import (
	"context"

	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOfferParams) error
	GetOfferForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Offer, error)
	UpdateOfferStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferStatusParams) (int64, error)
	IncrementOfferUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementOfferUsageParams) (int64, error)
	IncrementOfferViews(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	IncrementOfferClicks(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	InsertOfferRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOfferRedemptionParams) error
	CountCustomerRedemptions(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCustomerRedemptionsParams) (int64, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
	db      sqlc.DBTX
}

func NewOfferRepository(queries OfferWriteQueries, db sqlc.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfferRepository) Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error {
	if err := r.queries.CreateOffer(ctx, tx, converter.OfferToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOfferForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock offer", err)
	}
	o, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode offer", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OfferRepository) SaveStatus(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error {
	n, err := r.queries.UpdateOfferStatus(ctx, tx, converter.OfferToStatusParams(o))
	if err != nil {
		return infra.WrapRepoErr("failed to update offer status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) CountCustomerRedemptions(ctx context.Context, tx sqlc.DBTX, offerID, customerID uuid.UUID) (int, error) {
	n, err := r.queries.CountCustomerRedemptions(ctx, tx, sqlc.CountCustomerRedemptionsParams{
		OfferID:    offerID,
		CustomerID: customerID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count customer redemptions", err)
	}
	return int(n), nil
}

// RecordRedemptions persists every pending redemption of o. The usage counter
// is bumped with a guarded UPDATE; zero affected rows means the cap was hit
// by another transaction and is reported as KindLimitReached.
func (r *OfferRepository) RecordRedemptions(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error {
	for _, red := range o.PendingRedemptions() {
		n, err := r.queries.IncrementOfferUsage(ctx, tx, sqlc.IncrementOfferUsageParams{
			Revenue:   red.Final().Cents(),
			UpdatedAt: pgconv.TimeToPgtype(red.RedeemedAt()),
			ID:        o.ID(),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to increment offer usage", err)
		}
		if n == 0 {
			return infra.WrapRepoErr("offer usage limit reached", nil, infra.KindLimitReached)
		}
		if err := r.queries.InsertOfferRedemption(ctx, tx, converter.RedemptionToInsertParams(red)); err != nil {
			return infra.WrapRepoErr("failed to insert redemption", err)
		}
	}
	return nil
}

func (r *OfferRepository) IncrementViews(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.IncrementOfferViews(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to record offer view", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) IncrementClicks(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.IncrementOfferClicks(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to record offer click", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}
