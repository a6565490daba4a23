package commands

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateRoomNumber = errs.Conflict("room number already exists in this hotel")

type CapacityInput struct {
	Adults       int
	Children     int
	Infants      int
	MaxOccupancy int
}

type SeasonalRateInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Price     int64
}

type PricingInput struct {
	BasePrice         int64
	SeasonalRates     []SeasonalRateInput
	WeekendSurcharge  int64
	HolidaySurcharge  int64
	ExtraPersonCharge int64
}

type CreateRoomCommand struct {
	HotelID  uuid.UUID
	Number   string
	Type     string
	Capacity CapacityInput
	Beds     []room.Bed
	Pricing  PricingInput
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, cmd CreateRoomCommand) (*queries.RoomView, error)
	UpdatePricing(ctx context.Context, roomID uuid.UUID, in PricingInput) (*queries.RoomView, error)
	CheckIn(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error)
	CheckOut(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error)
	ScheduleMaintenance(ctx context.Context, roomID uuid.UUID, period reservation.DateRange, reason string) (*queries.MaintenanceWindowView, error)
	CancelMaintenance(ctx context.Context, roomID, windowID uuid.UUID) error
	StartMaintenance(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error)
	EndMaintenance(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error)
	MarkOutOfOrder(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error)
	RestoreService(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error)
	SetHousekeeping(ctx context.Context, roomID uuid.UUID, status string) (*queries.RoomView, error)
	Archive(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error)
}

type roomUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{uow: uow, clock: clk}
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, cmd CreateRoomCommand) (*queries.RoomView, error) {
	rm, err := buildRoom(cmd, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().HotelPolicy(ctx, cmd.HotelID); err != nil {
			return shared.TranslateRepoErr(err, errs.ErrHotelNotFound)
		}
		if err := tx.Rooms().Create(ctx, tx.DB(), rm); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
			}
			return shared.TranslateRepoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewRoomView(rm), nil
}

func (uc *roomUseCaseImpl) UpdatePricing(ctx context.Context, roomID uuid.UUID, in PricingInput) (*queries.RoomView, error) {
	p, err := buildPricing(in)
	if err != nil {
		return nil, err
	}

	var view *queries.RoomView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindForUpdate(ctx, tx.DB(), roomID)
		if err != nil {
			return shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
		}
		if err := rm.UpdatePricing(p, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Rooms().SavePricing(ctx, tx.DB(), rm); err != nil {
			return shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
		}
		view = queries.NewRoomView(rm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *roomUseCaseImpl) CheckIn(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	return uc.mutate(ctx, roomID, (*room.Room).CheckIn)
}

func (uc *roomUseCaseImpl) CheckOut(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	return uc.mutate(ctx, roomID, (*room.Room).CheckOut)
}

func (uc *roomUseCaseImpl) StartMaintenance(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	return uc.mutate(ctx, roomID, (*room.Room).StartMaintenance)
}

func (uc *roomUseCaseImpl) EndMaintenance(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	return uc.mutate(ctx, roomID, (*room.Room).EndMaintenance)
}

func (uc *roomUseCaseImpl) MarkOutOfOrder(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	return uc.mutate(ctx, roomID, (*room.Room).MarkOutOfOrder)
}

func (uc *roomUseCaseImpl) RestoreService(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	return uc.mutate(ctx, roomID, (*room.Room).RestoreService)
}

func (uc *roomUseCaseImpl) Archive(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	return uc.mutate(ctx, roomID, (*room.Room).Archive)
}

func (uc *roomUseCaseImpl) SetHousekeeping(ctx context.Context, roomID uuid.UUID, status string) (*queries.RoomView, error) {
	h := room.Housekeeping(status)
	return uc.mutate(ctx, roomID, func(rm *room.Room, now time.Time) error {
		return rm.SetHousekeeping(h, now)
	})
}

func (uc *roomUseCaseImpl) ScheduleMaintenance(ctx context.Context, roomID uuid.UUID, period reservation.DateRange, reason string) (*queries.MaintenanceWindowView, error) {
	var view *queries.MaintenanceWindowView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindForUpdate(ctx, tx.DB(), roomID)
		if err != nil {
			return shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
		}
		now := uc.clock.Now()
		w, err := rm.ScheduleMaintenance(period, reason, now)
		if err != nil {
			return err
		}
		if err := tx.Rooms().AddMaintenanceWindow(ctx, tx.DB(), rm.ID(), w, now); err != nil {
			if infra.IsKind(err, infra.KindExclusionViolated) {
				return room.ErrMaintenanceOverlap
			}
			return shared.TranslateRepoErr(err, nil)
		}
		if err := tx.Rooms().SaveState(ctx, tx.DB(), rm); err != nil {
			return shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
		}
		view = &queries.MaintenanceWindowView{
			ID:     w.ID(),
			Start:  w.Period().Start(),
			End:    w.Period().End(),
			Reason: w.Reason(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *roomUseCaseImpl) CancelMaintenance(ctx context.Context, roomID, windowID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindForUpdate(ctx, tx.DB(), roomID)
		if err != nil {
			return shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
		}
		if err := rm.CancelMaintenance(windowID, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Rooms().RemoveMaintenanceWindow(ctx, tx.DB(), rm.ID(), windowID); err != nil {
			return shared.TranslateRepoErr(err, room.ErrMaintenanceWindowNotFound)
		}
		return shared.TranslateRepoErr(tx.Rooms().SaveState(ctx, tx.DB(), rm), errs.ErrRoomNotFound)
	})
}

// mutate runs one state transition on the locked room and persists it.
func (uc *roomUseCaseImpl) mutate(ctx context.Context, roomID uuid.UUID, transition func(*room.Room, time.Time) error) (*queries.RoomView, error) {
	var view *queries.RoomView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindForUpdate(ctx, tx.DB(), roomID)
		if err != nil {
			return shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
		}
		if err := transition(rm, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Rooms().SaveState(ctx, tx.DB(), rm); err != nil {
			return shared.TranslateRepoErr(err, errs.ErrRoomNotFound)
		}
		view = queries.NewRoomView(rm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func buildRoom(cmd CreateRoomCommand, now time.Time) (*room.Room, error) {
	roomType, err := room.NewType(cmd.Type)
	if err != nil {
		return nil, err
	}
	capacity, err := room.NewCapacity(cmd.Capacity.Adults, cmd.Capacity.Children, cmd.Capacity.Infants, cmd.Capacity.MaxOccupancy)
	if err != nil {
		return nil, err
	}
	beds, err := room.NewBeds(cmd.Beds)
	if err != nil {
		return nil, err
	}
	p, err := buildPricing(cmd.Pricing)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(cmd.HotelID, cmd.Number, roomType, capacity, beds, p, now)
}

func buildPricing(in PricingInput) (room.Pricing, error) {
	rates := make([]room.SeasonalRate, 0, len(in.SeasonalRates))
	for _, s := range in.SeasonalRates {
		w, err := room.NewSeasonWindow(s.StartDate, s.EndDate)
		if err != nil {
			return room.Pricing{}, err
		}
		rate, err := room.NewSeasonalRate(s.Name, w, reservation.NewMoney(s.Price))
		if err != nil {
			return room.Pricing{}, err
		}
		rates = append(rates, rate)
	}
	return room.NewPricing(
		reservation.NewMoney(in.BasePrice),
		rates,
		reservation.NewMoney(in.WeekendSurcharge),
		reservation.NewMoney(in.HolidaySurcharge),
		reservation.NewMoney(in.ExtraPersonCharge),
	)
}
