package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrDuplicateOfferCode = errs.Conflict("offer code already exists")

type ConditionsInput struct {
	MinimumStay          int
	MaximumStay          *int
	MinimumRooms         int
	MinimumBookingAmount *int64
	AdvanceBookingDays   *int
	BlackoutDates        []time.Time
	ApplicableRoomTypes  []string
}

type CreateOfferCommand struct {
	HotelID             uuid.UUID
	Code                string
	Title               string
	Description         string
	DiscountType        string
	DiscountValue       decimal.Decimal
	MaxDiscount         *int64
	FreeNights          *int
	Conditions          ConditionsInput
	StartDate           time.Time
	EndDate             time.Time
	TotalBookings       *int
	BookingsPerCustomer *int
}

type ApplyOfferCommand struct {
	OfferID    uuid.UUID
	CustomerID uuid.UUID
	BookingID  *uuid.UUID
	Stay       reservation.DateRange
	Rooms      int
	Amount     int64
	RoomType   string
}

type OfferCommands interface {
	CreateOffer(ctx context.Context, cmd CreateOfferCommand) (*queries.OfferView, error)
	Approve(ctx context.Context, offerID uuid.UUID) (*queries.OfferView, error)
	Pause(ctx context.Context, offerID uuid.UUID) (*queries.OfferView, error)
	Resume(ctx context.Context, offerID uuid.UUID) (*queries.OfferView, error)
	Cancel(ctx context.Context, offerID uuid.UUID) (*queries.OfferView, error)
	ApplyOffer(ctx context.Context, cmd ApplyOfferCommand) (*queries.RedemptionView, error)
	RecordView(ctx context.Context, offerID uuid.UUID) error
	RecordClick(ctx context.Context, offerID uuid.UUID) error
}

type offerUseCaseImpl struct {
	uow                        shared.UnitOfWork
	clock                      clock.Clock
	defaultBookingsPerCustomer int
}

func NewOfferUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) OfferCommands {
	perCustomer := cfg.Offer.DefaultBookingsPerCustomer
	if perCustomer < 1 {
		perCustomer = 1
	}
	return &offerUseCaseImpl{uow: uow, clock: clk, defaultBookingsPerCustomer: perCustomer}
}

func (uc *offerUseCaseImpl) CreateOffer(ctx context.Context, cmd CreateOfferCommand) (*queries.OfferView, error) {
	now := uc.clock.Now()
	o, err := uc.buildOffer(cmd, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().HotelPolicy(ctx, cmd.HotelID); err != nil {
			return shared.TranslateRepoErr(err, errs.ErrHotelNotFound)
		}
		if err := tx.Offers().Create(ctx, tx.DB(), o); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateOfferCode
			}
			return shared.TranslateRepoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewOfferView(o, now), nil
}

func (uc *offerUseCaseImpl) Approve(ctx context.Context, offerID uuid.UUID) (*queries.OfferView, error) {
	return uc.transition(ctx, offerID, (*offer.Offer).Approve)
}

func (uc *offerUseCaseImpl) Pause(ctx context.Context, offerID uuid.UUID) (*queries.OfferView, error) {
	return uc.transition(ctx, offerID, (*offer.Offer).Pause)
}

func (uc *offerUseCaseImpl) Resume(ctx context.Context, offerID uuid.UUID) (*queries.OfferView, error) {
	return uc.transition(ctx, offerID, (*offer.Offer).Resume)
}

func (uc *offerUseCaseImpl) Cancel(ctx context.Context, offerID uuid.UUID) (*queries.OfferView, error) {
	return uc.transition(ctx, offerID, (*offer.Offer).Cancel)
}

// ApplyOffer redeems the offer for one booking in a single transaction: the
// offer row is locked, the checks run against it, and the guarded usage
// increment and the redemption insert commit together or not at all.
func (uc *offerUseCaseImpl) ApplyOffer(ctx context.Context, cmd ApplyOfferCommand) (*queries.RedemptionView, error) {
	amount, err := reservation.NewNonNegativeMoney(cmd.Amount)
	if err != nil {
		return nil, err
	}

	var (
		redemption offer.Redemption
		rejected   error
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, now, err := uc.lockOffer(ctx, tx, cmd.OfferID)
		if err != nil {
			return err
		}

		prior, err := tx.Offers().CountCustomerRedemptions(ctx, tx.DB(), o.ID(), cmd.CustomerID)
		if err != nil {
			return shared.TranslateRepoErr(err, nil)
		}

		redemption, rejected = o.Redeem(now, cmd.CustomerID, cmd.BookingID, offer.StayRequest{
			Stay:             cmd.Stay,
			Rooms:            cmd.Rooms,
			Amount:           amount,
			RoomType:         cmd.RoomType,
			PriorRedemptions: prior,
		})
		if rejected != nil {
			// commit so a lazily applied expiry is kept
			return nil
		}
		return shared.TranslateRepoErr(tx.Offers().RecordRedemptions(ctx, tx.DB(), o), errs.ErrOfferNotFound)
	})
	if err != nil {
		return nil, err
	}
	if rejected != nil {
		return nil, rejected
	}

	slog.Info("offer redeemed",
		slog.String("offer_id", cmd.OfferID.String()),
		slog.String("redemption_id", redemption.ID().String()),
		slog.Int64("discount", redemption.Discount().Cents()))
	return queries.NewRedemptionView(redemption), nil
}

func (uc *offerUseCaseImpl) RecordView(ctx context.Context, offerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.TranslateRepoErr(tx.Offers().IncrementViews(ctx, tx.DB(), offerID), errs.ErrOfferNotFound)
	})
}

func (uc *offerUseCaseImpl) RecordClick(ctx context.Context, offerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.TranslateRepoErr(tx.Offers().IncrementClicks(ctx, tx.DB(), offerID), errs.ErrOfferNotFound)
	})
}

// transition applies a lifecycle change. A rejected change still commits the
// lazy expiry, if one happened.
func (uc *offerUseCaseImpl) transition(ctx context.Context, offerID uuid.UUID, change func(*offer.Offer, time.Time) error) (*queries.OfferView, error) {
	var (
		view     *queries.OfferView
		rejected error
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, now, err := uc.lockOffer(ctx, tx, offerID)
		if err != nil {
			return err
		}
		if rejected = change(o, now); rejected != nil {
			return nil
		}
		if err := tx.Offers().SaveStatus(ctx, tx.DB(), o); err != nil {
			return shared.TranslateRepoErr(err, errs.ErrOfferNotFound)
		}
		view = queries.NewOfferView(o, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rejected != nil {
		return nil, rejected
	}
	return view, nil
}

// lockOffer loads the offer FOR UPDATE and persists a pending lazy expiry.
func (uc *offerUseCaseImpl) lockOffer(ctx context.Context, tx shared.Tx, offerID uuid.UUID) (*offer.Offer, time.Time, error) {
	o, err := tx.Offers().FindForUpdate(ctx, tx.DB(), offerID)
	if err != nil {
		return nil, time.Time{}, shared.TranslateRepoErr(err, errs.ErrOfferNotFound)
	}
	now := uc.clock.Now()
	if o.ExpireIfElapsed(now) {
		if err := tx.Offers().SaveStatus(ctx, tx.DB(), o); err != nil {
			return nil, time.Time{}, shared.TranslateRepoErr(err, errs.ErrOfferNotFound)
		}
		slog.Info("offer expired", slog.String("offer_id", o.ID().String()))
	}
	return o, now, nil
}

func (uc *offerUseCaseImpl) buildOffer(cmd CreateOfferCommand, now time.Time) (*offer.Offer, error) {
	code, err := offer.NewOfferCode(cmd.Code)
	if err != nil {
		return nil, err
	}
	discount, err := offer.NewDiscount(offer.DiscountType(cmd.DiscountType), cmd.DiscountValue, cmd.MaxDiscount, cmd.FreeNights)
	if err != nil {
		return nil, err
	}

	var minAmount *reservation.Money
	if cmd.Conditions.MinimumBookingAmount != nil {
		m, err := reservation.NewNonNegativeMoney(*cmd.Conditions.MinimumBookingAmount)
		if err != nil {
			return nil, err
		}
		minAmount = &m
	}
	conditions, err := offer.NewConditions(offer.Conditions{
		MinimumStay:          cmd.Conditions.MinimumStay,
		MaximumStay:          cmd.Conditions.MaximumStay,
		MinimumRooms:         cmd.Conditions.MinimumRooms,
		MinimumBookingAmount: minAmount,
		AdvanceBookingDays:   cmd.Conditions.AdvanceBookingDays,
		BlackoutDates:        cmd.Conditions.BlackoutDates,
		ApplicableRoomTypes:  cmd.Conditions.ApplicableRoomTypes,
	})
	if err != nil {
		return nil, err
	}

	validity, err := offer.NewValidity(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	perCustomer := uc.defaultBookingsPerCustomer
	if cmd.BookingsPerCustomer != nil {
		perCustomer = *cmd.BookingsPerCustomer
	}
	usage, err := offer.NewUsageLimit(cmd.TotalBookings, perCustomer, 0)
	if err != nil {
		return nil, err
	}

	return offer.NewOffer(cmd.HotelID, code, cmd.Title, cmd.Description, discount, conditions, validity, usage, now)
}
