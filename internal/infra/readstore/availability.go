package readstore

import (
	"context"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AvailabilityReadQueries interface {
	ListBlockingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockingReservationsParams) ([]sqlc.RoomReservation, error)
	ListOverlappingMaintenance(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingMaintenanceParams) ([]sqlc.RoomMaintenanceWindow, error)
}

// AvailabilityReadStore runs the interval overlap predicates in SQL and hands
// only overlapping rows to the domain.
type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) BlockingReservations(ctx context.Context, roomID uuid.UUID, period reservation.DateRange) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListBlockingReservations(ctx, r.db, sqlc.ListBlockingReservationsParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(period.Start()),
		CheckOut: pgconv.DateToPgtype(period.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking reservations", err)
	}
	out, err := converter.ReservationsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservations", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *AvailabilityReadStore) OverlappingMaintenance(ctx context.Context, roomID uuid.UUID, period reservation.DateRange) ([]room.MaintenanceWindow, error) {
	rows, err := r.queries.ListOverlappingMaintenance(ctx, r.db, sqlc.ListOverlappingMaintenanceParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(period.Start()),
		CheckOut: pgconv.DateToPgtype(period.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list maintenance windows", err)
	}
	out, err := converter.MaintenanceWindowsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode maintenance windows", err, infra.KindDBFailure)
	}
	return out, nil
}
