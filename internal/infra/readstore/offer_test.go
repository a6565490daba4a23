//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/readstore"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"
	readstoremock "hotel-booking-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Redemption Paging Tests
// =============================================================================

func TestOfferReadStore_Redemptions(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	base := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

	t.Run("first page maps rows to views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockOfferReadQueries(ctrl)
		store := readstore.NewOfferReadStore(mockQueries, &mockDBTX{})

		booking := uuid.New()
		rows := []sqlc.OfferRedemption{
			redemptionRow(offerID, base.Add(2*time.Hour), &booking),
			redemptionRow(offerID, base, nil),
		}
		mockQueries.EXPECT().ListRedemptionsFirstPage(ctx, gomock.Any(), sqlc.ListRedemptionsFirstPageParams{
			OfferID: offerID,
			Limit:   21,
		}).Return(rows, nil)

		views, err := store.RedemptionsFirstPage(ctx, offerID, 21)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, rows[0].ID, views[0].ID)
		require.NotNil(t, views[0].BookingID)
		assert.Equal(t, booking, *views[0].BookingID)
		assert.Nil(t, views[1].BookingID)
		assert.Equal(t, int64(30000), views[1].Original)
		assert.Equal(t, int64(6000), views[1].Discount)
		assert.Equal(t, int64(24000), views[1].Final)
	})

	t.Run("keyset page passes the cursor position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockOfferReadQueries(ctrl)
		store := readstore.NewOfferReadStore(mockQueries, &mockDBTX{})

		lastID := uuid.New()
		mockQueries.EXPECT().ListRedemptionsKeyset(ctx, gomock.Any(), sqlc.ListRedemptionsKeysetParams{
			OfferID:    offerID,
			RedeemedAt: pgconv.TimeToPgtype(base),
			ID:         lastID,
			Limit:      11,
		}).Return([]sqlc.OfferRedemption{}, nil)

		views, err := store.RedemptionsKeyset(ctx, offerID, base, lastID, 11)

		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("inverted stay is a decode failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockOfferReadQueries(ctrl)
		store := readstore.NewOfferReadStore(mockQueries, &mockDBTX{})

		row := redemptionRow(offerID, base, nil)
		row.CheckIn, row.CheckOut = row.CheckOut, row.CheckIn
		mockQueries.EXPECT().ListRedemptionsFirstPage(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.OfferRedemption{row}, nil)

		_, err := store.RedemptionsFirstPage(ctx, offerID, 5)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOfferReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "error: offer not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", err: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockOfferReadQueries(ctrl)
			store := readstore.NewOfferReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetOfferByID(ctx, gomock.Any(), offerID).Return(sqlc.Offer{}, tc.err)

			o, err := store.FindByID(ctx, offerID)

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
			assert.Nil(t, o)
		})
	}
}

func TestOfferReadStore_ListActiveByHotel(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockOfferReadQueries(ctrl)
	store := readstore.NewOfferReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListActiveOffersByHotel(ctx, gomock.Any(), sqlc.ListActiveOffersByHotelParams{
		HotelID: hotelID,
		Now:     pgconv.TimeToPgtype(now),
	}).Return(nil, nil)

	offers, err := store.ListActiveByHotel(ctx, hotelID, now)

	require.NoError(t, err)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)
}

func redemptionRow(offerID uuid.UUID, at time.Time, booking *uuid.UUID) sqlc.OfferRedemption {
	return sqlc.OfferRedemption{
		ID:             uuid.New(),
		OfferID:        offerID,
		CustomerID:     uuid.New(),
		BookingID:      pgconv.UUIDPtrToPgtype(booking),
		CheckIn:        pgconv.DateToPgtype(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		CheckOut:       pgconv.DateToPgtype(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)),
		OriginalAmount: 30000,
		DiscountAmount: 6000,
		FinalAmount:    24000,
		RedeemedAt:     pgconv.TimeToPgtype(at),
	}
}
