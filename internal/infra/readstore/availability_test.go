//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/infra"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityReadQueries struct {
	mock.Mock
}

func (m *MockAvailabilityReadQueries) ListBlockingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockingReservationsParams) ([]sqlc.RoomReservation, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.RoomReservation), args.Error(1)
}

func (m *MockAvailabilityReadQueries) ListOverlappingMaintenance(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingMaintenanceParams) ([]sqlc.RoomMaintenanceWindow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.RoomMaintenanceWindow), args.Error(1)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, checkIn, checkOut string) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(day(checkIn), day(checkOut))
	require.NoError(t, err)
	return r
}

func TestBlockingReservations(t *testing.T) {
	roomID := uuid.New()
	resID := uuid.New()
	now := pgconv.TimeToPgtype(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name       string
		mockReturn []sqlc.RoomReservation
		mockError  error
		wantCount  int
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name: "success - overlapping rows are decoded",
			mockReturn: []sqlc.RoomReservation{{
				ID:        resID,
				RoomID:    roomID,
				BookingID: uuid.New(),
				CheckIn:   pgconv.DateToPgtype(day("2024-03-03")),
				CheckOut:  pgconv.DateToPgtype(day("2024-03-05")),
				Status:    "confirmed",
				CreatedAt: now,
				UpdatedAt: now,
			}},
			wantCount: 1,
		},
		{
			name:       "success - nothing overlaps",
			mockReturn: []sqlc.RoomReservation{},
			wantCount:  0,
		},
		{
			name: "error - stored interval is inverted",
			mockReturn: []sqlc.RoomReservation{{
				ID:       resID,
				RoomID:   roomID,
				CheckIn:  pgconv.DateToPgtype(day("2024-03-05")),
				CheckOut: pgconv.DateToPgtype(day("2024-03-03")),
				Status:   "confirmed",
			}},
			wantKind: infra.KindDBFailure,
		},
		{
			name:       "error - query fails",
			mockReturn: []sqlc.RoomReservation(nil),
			mockError:  errors.New("connection reset"),
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queries := new(MockAvailabilityReadQueries)
			stay := mustRange(t, "2024-03-04", "2024-03-06")
			queries.On("ListBlockingReservations", mock.Anything, mock.Anything, sqlc.ListBlockingReservationsParams{
				RoomID:   roomID,
				CheckIn:  pgconv.DateToPgtype(stay.Start()),
				CheckOut: pgconv.DateToPgtype(stay.End()),
			}).Return(tt.mockReturn, tt.mockError)

			store := NewAvailabilityReadStore(queries, nil)
			got, err := store.BlockingReservations(context.Background(), roomID, stay)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantCount)
				if tt.wantCount > 0 {
					assert.Equal(t, resID, got[0].ID())
					assert.True(t, got[0].Conflicts(stay))
				}
			}
			queries.AssertExpectations(t)
		})
	}
}

func TestOverlappingMaintenance(t *testing.T) {
	roomID := uuid.New()
	windowID := uuid.New()

	t.Run("success - windows keep id, period and reason", func(t *testing.T) {
		queries := new(MockAvailabilityReadQueries)
		period := mustRange(t, "2024-03-01", "2024-03-31")
		queries.On("ListOverlappingMaintenance", mock.Anything, mock.Anything, mock.AnythingOfType("sqlc.ListOverlappingMaintenanceParams")).
			Return([]sqlc.RoomMaintenanceWindow{{
				ID:        windowID,
				RoomID:    roomID,
				StartDate: pgconv.DateToPgtype(day("2024-03-10")),
				EndDate:   pgconv.DateToPgtype(day("2024-03-12")),
				Reason:    "repainting",
			}}, nil)

		store := NewAvailabilityReadStore(queries, nil)
		got, err := store.OverlappingMaintenance(context.Background(), roomID, period)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, windowID, got[0].ID())
		assert.Equal(t, 2, got[0].Period().Nights())
		assert.Equal(t, "repainting", got[0].Reason())
		queries.AssertExpectations(t)
	})

	t.Run("error - query fails", func(t *testing.T) {
		queries := new(MockAvailabilityReadQueries)
		queries.On("ListOverlappingMaintenance", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.RoomMaintenanceWindow(nil), errors.New("timeout"))

		store := NewAvailabilityReadStore(queries, nil)
		_, err := store.OverlappingMaintenance(context.Background(), roomID, mustRange(t, "2024-03-01", "2024-03-02"))

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
