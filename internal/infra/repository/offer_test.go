//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"
	"hotel-booking-engine/tests/common/builder"
	repositorymock "hotel-booking-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnection = errors.New("database connection error")

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestOfferRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOfferWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: offer locked and decoded",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetOfferForUpdate(ctx, tx, offerID).Return(offerRow(offerID), nil)
			},
			expectedError: false,
		},
		{
			name: "error: offer not found",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetOfferForUpdate(ctx, tx, offerID).Return(sqlc.Offer{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetOfferForUpdate(ctx, tx, offerID).Return(sqlc.Offer{}, errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: stored row cannot be decoded",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, tx sqlc.DBTX) {
				row := offerRow(offerID)
				row.DiscountType = "bogus"
				mock.EXPECT().GetOfferForUpdate(ctx, tx, offerID).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOfferRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			o, actualError := repo.FindForUpdate(ctx, mockDB, offerID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, o)
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, o)
				assert.Equal(t, offerID, o.ID())
				assert.Equal(t, offer.StatusActive, o.Status())
				assert.Equal(t, 3, o.Usage().CurrentBookings())
			}
		})
	}
}

// =============================================================================
// RecordRedemptions Tests
// =============================================================================

func TestOfferRepository_RecordRedemptions(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOfferWriteQueries, *offer.Offer, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: usage incremented and redemption inserted",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, o *offer.Offer, tx sqlc.DBTX) {
				red := o.PendingRedemptions()[0]
				gomock.InOrder(
					mock.EXPECT().IncrementOfferUsage(ctx, tx, sqlc.IncrementOfferUsageParams{
						Revenue:   red.Final().Cents(),
						UpdatedAt: pgconv.TimeToPgtype(red.RedeemedAt()),
						ID:        o.ID(),
					}).Return(int64(1), nil),
					mock.EXPECT().InsertOfferRedemption(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertOfferRedemptionParams) error {
							assert.Equal(t, red.ID(), arg.ID)
							assert.Equal(t, int64(20000), arg.OriginalAmount)
							assert.Equal(t, int64(4000), arg.DiscountAmount)
							assert.Equal(t, int64(16000), arg.FinalAmount)
							return nil
						}),
				)
			},
			expectedError: false,
		},
		{
			name: "error: guarded increment matched no row",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, o *offer.Offer, tx sqlc.DBTX) {
				mock.EXPECT().IncrementOfferUsage(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindLimitReached,
		},
		{
			name: "error: increment fails",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, o *offer.Offer, tx sqlc.DBTX) {
				mock.EXPECT().IncrementOfferUsage(ctx, tx, gomock.Any()).Return(int64(0), errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate redemption id",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, o *offer.Offer, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().IncrementOfferUsage(ctx, tx, gomock.Any()).Return(int64(1), nil)
				mock.EXPECT().InsertOfferRedemption(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOfferRepository(mockQueries, mockDB)

			b := builder.NewOfferBuilder()
			o := b.MustBuildReconstructed()
			stay, err := reservation.NewDateRange(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))
			require.NoError(t, err)
			_, err = o.Redeem(b.Now, uuid.New(), nil, offer.StayRequest{
				Stay:   stay,
				Rooms:  1,
				Amount: reservation.NewMoney(20000),
			})
			require.NoError(t, err)

			tc.setupMock(mockQueries, o, mockDB)

			actualError := repo.RecordRedemptions(ctx, mockDB, o)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestOfferRepository_RecordRedemptions_NothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOfferRepository(mockQueries, mockDB)

	err := repo.RecordRedemptions(context.Background(), mockDB, builder.NewOfferBuilder().MustBuildReconstructed())

	assert.NoError(t, err)
}

// =============================================================================
// Counter Tests
// =============================================================================

func TestOfferRepository_Counters(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOfferWriteQueries, sqlc.DBTX)
		call          func(*repository.OfferRepository, sqlc.DBTX) error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: view recorded",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().IncrementOfferViews(ctx, tx, offerID).Return(int64(1), nil)
			},
			call: func(r *repository.OfferRepository, tx sqlc.DBTX) error {
				return r.IncrementViews(ctx, tx, offerID)
			},
		},
		{
			name: "error: click on unknown offer",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().IncrementOfferClicks(ctx, tx, offerID).Return(int64(0), nil)
			},
			call: func(r *repository.OfferRepository, tx sqlc.DBTX) error {
				return r.IncrementClicks(ctx, tx, offerID)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: status update on unknown offer",
			setupMock: func(mock *repositorymock.MockOfferWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateOfferStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			call: func(r *repository.OfferRepository, tx sqlc.DBTX) error {
				return r.SaveStatus(ctx, tx, builder.NewOfferBuilder().MustBuildReconstructed())
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOfferWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOfferRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualError := tc.call(repo, mockDB)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func offerRow(id uuid.UUID) sqlc.Offer {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return sqlc.Offer{
		ID:                  id,
		HotelID:             uuid.New(),
		Code:                "WINTER10",
		Title:               "Winter sale",
		DiscountType:        string(offer.DiscountPercentage),
		DiscountValue:       pgconv.DecimalToNumeric(decimal.NewFromInt(10)),
		MinimumStay:         1,
		MinimumRooms:        1,
		ApplicableRoomTypes: []string{},
		StartDate:           pgconv.TimeToPgtype(now.AddDate(0, 0, -1)),
		EndDate:             pgconv.TimeToPgtype(now.AddDate(0, 6, 0)),
		BookingsPerCustomer: 1,
		CurrentBookings:     3,
		Status:              string(offer.StatusActive),
		CreatedAt:           pgconv.TimeToPgtype(now),
		UpdatedAt:           pgconv.TimeToPgtype(now),
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
