package queries

import (
	"context"

	"hotel-booking-engine/internal/domain/availability"
	"hotel-booking-engine/internal/domain/pricing"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	BlockingReservations(ctx context.Context, roomID uuid.UUID, period reservation.DateRange) ([]*reservation.Reservation, error)
	OverlappingMaintenance(ctx context.Context, roomID uuid.UUID, period reservation.DateRange) ([]room.MaintenanceWindow, error)
}

type AvailabilityQueries interface {
	IsRoomFree(ctx context.Context, roomID uuid.UUID, stay reservation.DateRange) (*AvailabilityView, error)
	ListAvailable(ctx context.Context, hotelID uuid.UUID, stay reservation.DateRange, guests int, roomType *string) ([]*RoomView, error)
	OccupancySnapshot(ctx context.Context, roomID uuid.UUID, period reservation.DateRange) (*OccupancyView, error)
}

type availabilityQueriesImpl struct {
	rooms     RoomReadStore
	intervals AvailabilityReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, intervals AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, intervals: intervals}
}

// IsRoomFree reports the blocking intervals as well, so a busy room comes
// back with its reason.
func (q *availabilityQueriesImpl) IsRoomFree(ctx context.Context, roomID uuid.UUID, stay reservation.DateRange) (*AvailabilityView, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
	}
	reservations, windows, err := q.loadIntervals(ctx, roomID, stay)
	if err != nil {
		return nil, err
	}
	return NewAvailabilityView(roomID, stay, availability.Evaluate(stay, reservations, windows)), nil
}

func (q *availabilityQueriesImpl) ListAvailable(ctx context.Context, hotelID uuid.UUID, stay reservation.DateRange, guests int, roomType *string) ([]*RoomView, error) {
	if guests < 1 {
		return nil, pricing.ErrInvalidGuests
	}
	rooms, err := q.rooms.ListAvailable(ctx, hotelID, stay, guests, roomType)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, nil)
	}
	return newRoomViews(rooms), nil
}

func (q *availabilityQueriesImpl) OccupancySnapshot(ctx context.Context, roomID uuid.UUID, period reservation.DateRange) (*OccupancyView, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
	}
	reservations, windows, err := q.loadIntervals(ctx, roomID, period)
	if err != nil {
		return nil, err
	}
	occ := availability.Snapshot(period, reservations, windows)
	return &OccupancyView{
		RoomID:            roomID,
		From:              period.Start(),
		To:                period.End(),
		Nights:            occ.Nights,
		BookedNights:      occ.BookedNights,
		MaintenanceNights: occ.MaintenanceNights,
		OccupancyRate:     occ.Rate,
	}, nil
}

func (q *availabilityQueriesImpl) loadIntervals(ctx context.Context, roomID uuid.UUID, period reservation.DateRange) ([]*reservation.Reservation, []room.MaintenanceWindow, error) {
	reservations, err := q.intervals.BlockingReservations(ctx, roomID, period)
	if err != nil {
		return nil, nil, shared.TranslateRepoErr(err, nil)
	}
	windows, err := q.intervals.OverlappingMaintenance(ctx, roomID, period)
	if err != nil {
		return nil, nil, shared.TranslateRepoErr(err, nil)
	}
	return reservations, windows, nil
}
