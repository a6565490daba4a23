//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-booking-engine/internal/handler/api"
	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/common/testutil"
	commandsmock "hotel-booking-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, config.NewTestConfig())

	s.router.POST("/rooms/:id/reservations", s.handler.Reserve)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseRequest struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
	expectMsg  string
}

func reservationResult(roomID, bookingID uuid.UUID, status string) *commands.ReservationResult {
	return &commands.ReservationResult{
		ID:        uuid.New(),
		RoomID:    roomID,
		BookingID: bookingID,
		CheckIn:   date("2024-03-04"),
		CheckOut:  date("2024-03-06"),
		Nights:    2,
		Status:    status,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *ReservationHandlerTestSuite) TestReserve() {
	roomID := uuid.New()
	bookingID := uuid.New()
	url := "/rooms/" + roomID.String() + "/reservations"
	reqBody := reqdto.ReserveRoomRequest{
		BookingID: bookingID,
		StayDates: reqdto.StayDates{CheckIn: "2024-03-04", CheckOut: "2024-03-06"},
	}

	s.Run("success: returns 201 with the held interval", func() {
		s.mockCommands.EXPECT().ReserveRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd commands.ReserveRoomCommand) (*commands.ReservationResult, error) {
				s.Equal(roomID, cmd.RoomID)
				s.Equal(bookingID, cmd.BookingID)
				s.Equal(2, cmd.Stay.Nights())
				return reservationResult(roomID, bookingID, "confirmed"), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("2024-03-04", body.CheckIn)
		s.Equal("2024-03-06", body.CheckOut)
		s.Equal(2, body.Nights)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 Bad Request on invalid input", func() {
		cases := []testCaseRequest{
			{name: "missing booking_id", mutate: testutil.Field("booking_id", nil), expectCode: http.StatusBadRequest, expectMsg: "Invalid request format"},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest, expectMsg: "Invalid request format"},
			{name: "malformed date", mutate: testutil.Field("check_in", "04/03/2024"), expectCode: http.StatusBadRequest, expectMsg: "invalid date"},
			{name: "check_out before check_in", mutate: testutil.Field("check_out", "2024-03-01"), expectCode: http.StatusBadRequest},
			{name: "same day stay", mutate: testutil.Field("check_out", "2024-03-04"), expectCode: http.StatusBadRequest},
			{name: "stay longer than allowed", mutate: testutil.Field("check_out", "2024-07-01"), expectCode: http.StatusBadRequest, expectMsg: "exceeds the maximum"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/not-a-uuid/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID format")
	})

	s.Run("error: use case errors map to their status", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "overlap is a conflict", err: errs.ErrRoomUnavailable, expectCode: http.StatusConflict, expectMsg: "not available"},
			{name: "unknown room", err: errs.ErrRoomNotFound, expectCode: http.StatusNotFound, expectMsg: "room not found"},
			{name: "database down", err: errs.Infrastructure("db unavailable", context.DeadlineExceeded), expectCode: http.StatusServiceUnavailable, expectMsg: "temporarily unavailable"},
			{name: "unclassified error", err: errs.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ReserveRoom(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("success: returns the cancelled reservation", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).
			Return(reservationResult(uuid.New(), uuid.New(), "cancelled"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).
			Return(nil, errs.Conflict("reservation is already cancelled")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})

	s.Run("error: 404 when unknown", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}
