package queries

import (
	"context"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.Room, error)
	ListAvailable(ctx context.Context, hotelID uuid.UUID, stay reservation.DateRange, guests int, roomType *string) ([]*room.Room, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	rooms RoomReadStore
}

func NewRoomQueries(rooms RoomReadStore) RoomQueries {
	return &roomQueriesImpl{rooms: rooms}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	rm, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
	}
	return NewRoomView(rm), nil
}

func (q *roomQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error) {
	rooms, err := q.rooms.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, nil)
	}
	return newRoomViews(rooms), nil
}

func newRoomViews(rooms []*room.Room) []*RoomView {
	out := make([]*RoomView, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, NewRoomView(rm))
	}
	return out
}
