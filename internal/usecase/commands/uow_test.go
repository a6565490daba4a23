//go:build unit

package commands_test

import (
	"context"

	"hotel-booking-engine/internal/usecase/shared"
	sharedmock "hotel-booking-engine/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txFixture runs every Within callback against one mocked transaction.
type txFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	rooms        *sharedmock.MockRoomRepository
	reservations *sharedmock.MockReservationRepository
	offers       *sharedmock.MockOfferRepository
	reads        *sharedmock.MockCommandReads
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		rooms:        sharedmock.NewMockRoomRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		offers:       sharedmock.NewMockOfferRepository(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Offers().Return(f.offers).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	return f
}
