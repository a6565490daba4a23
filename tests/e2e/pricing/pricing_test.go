//go:build e2e

package pricing_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/tests/common/builder"
	"hotel-booking-engine/tests/common/dbtest"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	hotelRoomsURL = "/api/hotels/%s/rooms"
	roomURL       = "/api/rooms/%s"
	quoteURL      = "/api/rooms/%s/quote"
)

type PricingSuite struct {
	e2e.SharedSuite
}

func (s *PricingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPricingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PricingSuite))
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func (s *PricingSuite) createRoom(t *testing.T, hotelID uuid.UUID, b *builder.RoomBuilder) resdto.RoomResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(hotelRoomsURL, hotelID), b.BuildCreateRequestDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	var created resdto.RoomResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *PricingSuite) quote(t *testing.T, roomID uuid.UUID, checkIn, checkOut string, guests int) resdto.QuoteResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quoteURL, roomID),
		map[string]any{"check_in": checkIn, "check_out": checkOut, "guests": guests}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var q resdto.QuoteResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &q))
	return q
}

// =============================================================================
// TestQuote - Rate composition over persisted pricing
// =============================================================================

func (s *PricingSuite) TestQuote() {
	s.Run("Normal case: season, weekend, extra guest and taxes", func() {
		t := s.T()
		b := builder.NewRoomBuilder().WithSeason("Spring", day("2030-03-09"), day("2030-03-09"), 15000)
		created := s.createRoom(t, dbtest.DefaultHotelID, b)

		// 2030-03-08 is a Friday
		actual := s.quote(t, created.ID, "2030-03-08", "2030-03-10", 3)

		expected := resdto.QuoteResponse{
			RoomID:   created.ID,
			CheckIn:  "2030-03-08",
			CheckOut: "2030-03-10",
			Guests:   3,
			Nights:   2,
			PerNight: []resdto.NightLineResponse{
				{Date: "2030-03-08", Base: 10000, WeekendSurcharge: 2000, Amount: 12000},
				{Date: "2030-03-09", Base: 15000, Season: "Spring", WeekendSurcharge: 2000, Amount: 17000},
			},
			NightsTotal:      29000,
			ExtraGuests:      1,
			ExtraGuestCharge: 2000,
			Subtotal:         31000,
			GST:              3720,
			ServiceTax:       1550,
			Tax:              5270,
			Total:            36270,
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Quote mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: hotel holidays add the holiday surcharge", func() {
		t := s.T()
		hotelID := dbtest.CreateTestHotel(t, s.DB, dbtest.HotelFixture{
			GSTRate:        "0",
			ServiceTaxRate: "0",
			Holidays:       []time.Time{day("2030-03-05")},
		})
		created := s.createRoom(t, hotelID, builder.NewRoomBuilder())

		actual := s.quote(t, created.ID, "2030-03-04", "2030-03-06", 2)

		require.Equal(t, int64(10000), actual.PerNight[0].Amount)
		require.Equal(t, int64(1500), actual.PerNight[1].HolidaySurcharge)
		require.Equal(t, int64(21500), actual.Total)
	})

	s.Run("Error case: guests beyond capacity", func() {
		t := s.T()
		created := s.createRoom(t, dbtest.DefaultHotelID, builder.NewRoomBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quoteURL, created.ID),
			map[string]any{"check_in": "2030-03-04", "check_out": "2030-03-06", "guests": 5}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "capacity")
	})
}

// =============================================================================
// TestPricingRoundTrip - Stored pricing reads back unchanged
// =============================================================================

func (s *PricingSuite) TestPricingRoundTrip() {
	s.Run("Normal case: create, read and partially update pricing", func() {
		t := s.T()
		b := builder.NewRoomBuilder().
			WithSeason("Festive", day("2030-12-20"), day("2031-01-05"), 18000).
			WithSeason("Summer", day("2030-06-01"), day("2030-08-31"), 14000)
		created := s.createRoom(t, dbtest.DefaultHotelID, b)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, created.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var fetched resdto.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))

		expectedPricing := resdto.PricingResponse{
			BasePrice: 10000,
			SeasonalRates: []resdto.SeasonalRateResponse{
				{Name: "Festive", StartDate: "2030-12-20", EndDate: "2031-01-05", Price: 18000},
				{Name: "Summer", StartDate: "2030-06-01", EndDate: "2030-08-31", Price: 14000},
			},
			WeekendSurcharge:  2000,
			HolidaySurcharge:  1500,
			ExtraPersonCharge: 1000,
		}
		if diff := cmp.Diff(expectedPricing, fetched.Pricing); diff != "" {
			t.Errorf("Pricing mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, created.Beds, fetched.Beds)

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(roomURL, created.ID)+"/pricing",
			map[string]any{"base_price": 11000}, "")
		require.Equal(t, http.StatusOK, uw.Code)
		var updated resdto.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, uw.Body, &updated))

		expectedPricing.BasePrice = 11000
		opts := []cmp.Option{cmpopts.EquateEmpty()}
		if diff := cmp.Diff(expectedPricing, updated.Pricing, opts...); diff != "" {
			t.Errorf("Updated pricing mismatch (-want +got):\n%s", diff)
		}
	})
}
