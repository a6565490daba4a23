package converter

import (
	"hotel-booking-engine/internal/domain/reservation"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/pgconv"
)

func ReservationToInsertParams(res *reservation.Reservation) sqlc.InsertRoomReservationParams {
	return sqlc.InsertRoomReservationParams{
		ID:        res.ID(),
		RoomID:    res.RoomID(),
		BookingID: res.BookingID(),
		CheckIn:   pgconv.DateToPgtype(res.Stay().Start()),
		CheckOut:  pgconv.DateToPgtype(res.Stay().End()),
		Status:    res.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToStatusParams(res *reservation.Reservation) sqlc.UpdateRoomReservationStatusParams {
	return sqlc.UpdateRoomReservationStatusParams{
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
		ID:        res.ID(),
	}
}

func ReservationFromRow(row sqlc.RoomReservation) (*reservation.Reservation, error) {
	stay, err := reservation.NewDateRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", row.ID)
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.RoomID,
		row.BookingID,
		stay,
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsFromRows(rows []sqlc.RoomReservation) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
