package repository

import (
	"context"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/converter"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	InsertRoomReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRoomReservationParams) error
	GetRoomReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomReservation, error)
	UpdateRoomReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomReservationStatusParams) (int64, error)
	ListBlockingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockingReservationsParams) ([]sqlc.RoomReservation, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on the room_reservations_no_overlap exclusion constraint;
// a concurrent overlapping insert surfaces as KindExclusionViolated.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.InsertRoomReservation(ctx, tx, converter.ReservationToInsertParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetRoomReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) SaveStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateRoomReservationStatus(ctx, tx, converter.ReservationToStatusParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListBlocking returns the non-cancelled reservations of roomID overlapping stay.
func (r *ReservationRepository) ListBlocking(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, stay reservation.DateRange) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListBlockingReservations(ctx, tx, sqlc.ListBlockingReservationsParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(stay.Start()),
		CheckOut: pgconv.DateToPgtype(stay.End()),
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
