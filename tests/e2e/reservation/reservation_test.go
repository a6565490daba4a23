//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/tests/common/dbtest"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reserveURL      = "/api/rooms/%s/reservations"
	cancelURL       = "/api/reservations/%s/cancel"
	availabilityURL = "/api/rooms/%s/availability?checkIn=%s&checkOut=%s"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func reserveBody(checkIn, checkOut string) map[string]any {
	return map[string]any{
		"booking_id": uuid.New(),
		"check_in":   checkIn,
		"check_out":  checkOut,
	}
}

// =============================================================================
// TestReserveRoom - Interval guard against double booking
// =============================================================================

func (s *ReservationSuite) TestReserveRoom() {
	s.Run("Normal case: reservation blocks the room until cancelled", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, dbtest.DefaultHotelID, "101", 2, 10000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reserveURL, roomID), reserveBody("2030-03-04", "2030-03-07"), "")
		require.Equal(t, http.StatusCreated, w.Code)
		var created resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, 3, created.Nights)
		require.Equal(t, "confirmed", created.Status)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, roomID, "2030-03-06", "2030-03-08"), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)
		var blocked resdto.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &blocked))
		require.False(t, blocked.Free)
		require.Len(t, blocked.Conflicts, 1)
		require.Equal(t, "reservation", blocked.Conflicts[0].Kind)
		require.Equal(t, created.ID, blocked.Conflicts[0].ID)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, "")
		require.Equal(t, http.StatusOK, cw.Code)

		aw = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, roomID, "2030-03-06", "2030-03-08"), nil, "")
		var free resdto.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &free))
		require.True(t, free.Free)

		again := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, "")
		require.Equal(t, http.StatusConflict, again.Code, "Cancelling twice should conflict")
	})

	s.Run("Normal case: back-to-back stays do not overlap", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, dbtest.DefaultHotelID, "102", 2, 10000)

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reserveURL, roomID), reserveBody("2030-03-04", "2030-03-06"), "")
		require.Equal(t, http.StatusCreated, first.Code)

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reserveURL, roomID), reserveBody("2030-03-06", "2030-03-08"), "")
		require.Equal(t, http.StatusCreated, second.Code, "Checkout day is free for the next check-in")
	})

	s.Run("Error case: overlapping stay conflicts", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, dbtest.DefaultHotelID, "103", 2, 10000)

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reserveURL, roomID), reserveBody("2030-03-04", "2030-03-08"), "")
		require.Equal(t, http.StatusCreated, first.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reserveURL, roomID), reserveBody("2030-03-07", "2030-03-09"), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")
	})

	s.Run("Error case: maintenance window blocks the stay", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, dbtest.DefaultHotelID, "104", 2, 10000)

		mw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/rooms/%s/maintenance", roomID),
			map[string]any{"start": "2030-03-05", "end": "2030-03-06", "reason": "plumbing"}, "")
		require.Equal(t, http.StatusCreated, mw.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reserveURL, roomID), reserveBody("2030-03-04", "2030-03-07"), "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Concurrency: exactly one of many overlapping requests wins", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, dbtest.DefaultHotelID, "105", 2, 10000)
		url := fmt.Sprintf(reserveURL, roomID)

		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				// staggered but pairwise overlapping stays
				checkIn := fmt.Sprintf("2030-04-%02d", 10+i%2)
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reserveBody(checkIn, "2030-04-14"), "")
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, attempts-1, conflicted, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB,
			"SELECT count(*) FROM room_reservations WHERE room_id = $1 AND status <> 'cancelled'", roomID))
	})
}
