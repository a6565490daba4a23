package repository

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error
	GetRoomForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Room, error)
	ListSeasonalRatesByRooms(ctx context.Context, db sqlc.DBTX, roomIds []uuid.UUID) ([]sqlc.RoomSeasonalRate, error)
	ListMaintenanceWindowsByRooms(ctx context.Context, db sqlc.DBTX, roomIds []uuid.UUID) ([]sqlc.RoomMaintenanceWindow, error)
	UpdateRoomState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomStateParams) (int64, error)
	UpdateRoomPricing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomPricingParams) (int64, error)
	DeleteSeasonalRates(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) error
	InsertSeasonalRate(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSeasonalRateParams) error
	InsertMaintenanceWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMaintenanceWindowParams) error
	DeleteMaintenanceWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteMaintenanceWindowParams) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	params, err := converter.RoomToCreateParams(rm)
	if err != nil {
		return infra.WrapRepoErr("failed to encode room", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateRoom(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return r.insertSeasonalRates(ctx, tx, rm)
}

// FindForUpdate locks the room row for the rest of the transaction.
func (r *RoomRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}

	ids := []uuid.UUID{id}
	rates, err := r.queries.ListSeasonalRatesByRooms(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load seasonal rates", err)
	}
	windows, err := r.queries.ListMaintenanceWindowsByRooms(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load maintenance windows", err)
	}

	rm, err := converter.RoomFromRow(row, rates, windows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode room", err, infra.KindDBFailure)
	}
	return rm, nil
}

func (r *RoomRepository) SaveState(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	n, err := r.queries.UpdateRoomState(ctx, tx, converter.RoomToStateParams(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room state", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

// SavePricing replaces the room's prices and its seasonal rates.
func (r *RoomRepository) SavePricing(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	n, err := r.queries.UpdateRoomPricing(ctx, tx, converter.RoomToPricingParams(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room pricing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	if err := r.queries.DeleteSeasonalRates(ctx, tx, rm.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear seasonal rates", err)
	}
	return r.insertSeasonalRates(ctx, tx, rm)
}

func (r *RoomRepository) AddMaintenanceWindow(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, w room.MaintenanceWindow, now time.Time) error {
	if err := r.queries.InsertMaintenanceWindow(ctx, tx, converter.MaintenanceWindowToParams(roomID, w, now)); err != nil {
		return infra.WrapRepoErr("failed to insert maintenance window", err)
	}
	return nil
}

func (r *RoomRepository) RemoveMaintenanceWindow(ctx context.Context, tx sqlc.DBTX, roomID, windowID uuid.UUID) error {
	n, err := r.queries.DeleteMaintenanceWindow(ctx, tx, sqlc.DeleteMaintenanceWindowParams{ID: windowID, RoomID: roomID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete maintenance window", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("maintenance window not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) insertSeasonalRates(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	for _, p := range converter.SeasonalRatesToParams(rm.ID(), rm.Pricing()) {
		if err := r.queries.InsertSeasonalRate(ctx, tx, p); err != nil {
			return infra.WrapRepoErr("failed to insert seasonal rate", err)
		}
	}
	return nil
}
