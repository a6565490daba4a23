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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHotelReadStore_PolicyByID(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	testCases := []struct {
		name          string
		row           sqlc.Hotel
		err           error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectBase    int
	}{
		{
			name: "success: policy with explicit base occupancy",
			row: sqlc.Hotel{
				ID:             hotelID,
				OwnerID:        uuid.New(),
				Name:           "Harbour View",
				GstRate:        pgconv.DecimalToNumeric(decimal.RequireFromString("12")),
				ServiceTaxRate: pgconv.DecimalToNumeric(decimal.RequireFromString("2.5")),
				BaseOccupancy:  pgtype.Int4{Int32: 3, Valid: true},
				Holidays:       []pgtype.Date{pgconv.DateToPgtype(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))},
			},
			expectBase: 3,
		},
		{
			name:          "error: hotel not found",
			err:           pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: database error",
			err:           errDBConnectionLost,
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockHotelReadQueries(ctrl)
			store := readstore.NewHotelReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetHotelPolicy(ctx, gomock.Any(), hotelID).Return(tc.row, tc.err)

			policy, err := store.PolicyByID(ctx, hotelID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, policy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectBase, policy.BaseOccupancyOr(2))
			assert.True(t, policy.GSTRate().Equal(decimal.NewFromInt(12)))
			assert.True(t, policy.IsHoliday(time.Date(2024, 12, 25, 15, 0, 0, 0, time.UTC)))
		})
	}
}
