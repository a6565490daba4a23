package readstore

import (
	"context"

	"hotel-booking-engine/internal/domain/hotel"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelReadQueries interface {
	GetHotelPolicy(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotel, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelReadQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) PolicyByID(ctx context.Context, id uuid.UUID) (*hotel.Policy, error) {
	row, err := r.queries.GetHotelPolicy(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel policy", err)
	}
	policy, err := converter.PolicyFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode hotel policy", err, infra.KindDBFailure)
	}
	return policy, nil
}
