package readstore

import (
	"context"
	"strings"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Room, error)
	ListRoomsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Room, error)
	ListAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableRoomsParams) ([]sqlc.Room, error)
	ListSeasonalRatesByRooms(ctx context.Context, db sqlc.DBTX, roomIds []uuid.UUID) ([]sqlc.RoomSeasonalRate, error)
	ListMaintenanceWindowsByRooms(ctx context.Context, db sqlc.DBTX, roomIds []uuid.UUID) ([]sqlc.RoomMaintenanceWindow, error)
}

// RoomReadStore rebuilds room aggregates so prices and availability can be
// evaluated on read.
type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}
	rooms, err := r.hydrate(ctx, []sqlc.Room{row})
	if err != nil {
		return nil, err
	}
	return rooms[0], nil
}

// ListByHotel returns the hotel's rooms; archived rooms are excluded in SQL.
func (r *RoomReadStore) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.Room, error) {
	rows, err := r.queries.ListRoomsByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by hotel", err)
	}
	return r.hydrate(ctx, rows)
}

// ListAvailable returns sellable rooms of the hotel that fit guests and have
// no blocking reservation or maintenance window inside stay.
func (r *RoomReadStore) ListAvailable(ctx context.Context, hotelID uuid.UUID, stay reservation.DateRange, guests int, roomType *string) ([]*room.Room, error) {
	var rt *string
	if roomType != nil {
		v := strings.ToLower(strings.TrimSpace(*roomType))
		rt = &v
	}
	rows, err := r.queries.ListAvailableRooms(ctx, r.db, sqlc.ListAvailableRoomsParams{
		HotelID:  hotelID,
		Guests:   int32(guests),
		RoomType: pgconv.StringPtrToPgtype(rt),
		CheckIn:  pgconv.DateToPgtype(stay.Start()),
		CheckOut: pgconv.DateToPgtype(stay.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	return r.hydrate(ctx, rows)
}

// hydrate loads the child rows of every room in two batched queries.
func (r *RoomReadStore) hydrate(ctx context.Context, rows []sqlc.Room) ([]*room.Room, error) {
	if len(rows) == 0 {
		return []*room.Room{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	rates, err := r.queries.ListSeasonalRatesByRooms(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load seasonal rates", err)
	}
	windows, err := r.queries.ListMaintenanceWindowsByRooms(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load maintenance windows", err)
	}

	ratesByRoom := make(map[uuid.UUID][]sqlc.RoomSeasonalRate, len(rows))
	for _, rate := range rates {
		ratesByRoom[rate.RoomID] = append(ratesByRoom[rate.RoomID], rate)
	}
	windowsByRoom := make(map[uuid.UUID][]sqlc.RoomMaintenanceWindow, len(rows))
	for _, w := range windows {
		windowsByRoom[w.RoomID] = append(windowsByRoom[w.RoomID], w)
	}

	out := make([]*room.Room, 0, len(rows))
	for _, row := range rows {
		rm, err := converter.RoomFromRow(row, ratesByRoom[row.ID], windowsByRoom[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode room", err, infra.KindDBFailure)
		}
		out = append(out, rm)
	}
	return out, nil
}
