package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-engine/internal/domain/availability"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveRoomCommand struct {
	RoomID    uuid.UUID
	BookingID uuid.UUID
	Stay      reservation.DateRange
}

type ReservationResult struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	BookingID uuid.UUID `json:"booking_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Nights    int       `json:"nights"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReservationCommands interface {
	ReserveRoom(ctx context.Context, cmd ReserveRoomCommand) (*ReservationResult, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (*ReservationResult, error)
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, clock: clk}
}

// ReserveRoom holds the interval for a booking. The room row is locked for
// the transaction and the no-overlap exclusion constraint rejects any insert
// that still races past the check.
func (uc *reservationUseCaseImpl) ReserveRoom(ctx context.Context, cmd ReserveRoomCommand) (*ReservationResult, error) {
	var result *ReservationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindForUpdate(ctx, tx.DB(), cmd.RoomID)
		if err != nil {
			return shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
		}
		if rm.IsArchived() {
			return room.ErrRoomArchived
		}
		if !rm.IsSellable() {
			return errs.ErrRoomUnavailable
		}

		existing, err := tx.Reservations().ListBlocking(ctx, tx.DB(), rm.ID(), cmd.Stay)
		if err != nil {
			return shared.TranslateRepoErr(err, nil)
		}
		if a := availability.Evaluate(cmd.Stay, existing, rm.MaintenanceWindows()); !a.Free {
			return errs.ErrRoomUnavailable
		}

		res, err := reservation.NewReservation(rm.ID(), cmd.BookingID, cmd.Stay, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return shared.TranslateRepoErr(err, nil)
		}
		result = newReservationResult(res)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("room reserved",
		slog.String("reservation_id", result.ID.String()),
		slog.String("room_id", result.RoomID.String()),
		slog.String("stay", cmd.Stay.String()))
	return result, nil
}

// CancelReservation releases the interval; cancelled rows never block.
func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID) (*ReservationResult, error) {
	var result *ReservationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return shared.TranslateRepoErr(err, errs.ErrReservationNotFound)
		}
		if err := res.Cancel(uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reservations().SaveStatus(ctx, tx.DB(), res); err != nil {
			return shared.TranslateRepoErr(err, errs.ErrReservationNotFound)
		}
		result = newReservationResult(res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func newReservationResult(res *reservation.Reservation) *ReservationResult {
	return &ReservationResult{
		ID:        res.ID(),
		RoomID:    res.RoomID(),
		BookingID: res.BookingID(),
		CheckIn:   res.Stay().Start(),
		CheckOut:  res.Stay().End(),
		Nights:    res.Stay().Nights(),
		Status:    res.Status().String(),
		CreatedAt: res.CreatedAt(),
		UpdatedAt: res.UpdatedAt(),
	}
}
