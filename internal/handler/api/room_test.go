//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/handler/api"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/tests/common/builder"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/common/testutil"
	commandsmock "hotel-booking-engine/tests/mock/commands"
	queriesmock "hotel-booking-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/hotels/:id/rooms", s.handler.Create)
	s.router.GET("/hotels/:id/rooms", s.handler.List)
	s.router.GET("/rooms/:id", s.handler.Get)
	s.router.PUT("/rooms/:id/pricing", s.handler.UpdatePricing)
	s.router.POST("/rooms/:id/check-in", s.handler.CheckIn)
	s.router.POST("/rooms/:id/check-out", s.handler.CheckOut)
	s.router.POST("/rooms/:id/maintenance", s.handler.ScheduleMaintenance)
	s.router.DELETE("/rooms/:id/maintenance/:windowId", s.handler.CancelMaintenance)
	s.router.PUT("/rooms/:id/housekeeping", s.handler.SetHousekeeping)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RoomHandlerTestSuite) TestCreate() {
	hotelID := uuid.New()
	url := "/hotels/" + hotelID.String() + "/rooms"
	b := builder.NewRoomBuilder().WithHotel(hotelID).
		WithSeason("Festive", date("2024-12-20"), date("2025-01-05"), 18000)
	view := b.BuildView()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd commands.CreateRoomCommand) (*queries.RoomView, error) {
				s.Equal(hotelID, cmd.HotelID)
				s.Equal("101", cmd.Number)
				s.Equal(4, cmd.Capacity.MaxOccupancy)
				s.Equal(2, cmd.Capacity.Adults)
				s.Len(cmd.Beds, 1)
				s.Equal("queen", cmd.Beds[0].Type)
				s.Require().Len(cmd.Pricing.SeasonalRates, 1)
				s.Equal(date("2024-12-20"), cmd.Pricing.SeasonalRates[0].StartDate)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO(), "")

		var resp resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("available", resp.Status)
		s.Require().Len(resp.Pricing.SeasonalRates, 1)
		s.Equal("2024-12-20", resp.Pricing.SeasonalRates[0].StartDate)
		s.Equal("2025-01-05", resp.Pricing.SeasonalRates[0].EndDate)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/rooms/" + view.ID.String()})
	})

	validationCases := []testCaseRequest{
		{
			name:       "number is required",
			mutate:     testutil.Field("number", nil),
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid request format",
		},
		{
			name: "max occupancy must be positive",
			mutate: testutil.Field("capacity", map[string]any{
				"adults": 1, "children": 0, "infants": 0, "max_occupancy": 0,
			}),
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid request format",
		},
		{
			name: "seasonal dates must be calendar dates",
			mutate: testutil.Field("pricing", map[string]any{
				"base_price": 10000,
				"seasonal_rates": []map[string]any{
					{"name": "Festive", "start_date": "20/12/2024", "end_date": "2025-01-05", "price": 18000},
				},
			}),
			expectCode: http.StatusBadRequest,
			expectMsg:  "invalid date",
		},
	}
	for _, tc := range validationCases {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), b.BuildCreateRequestDTO(), tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: 400 from domain validation", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			Return(nil, errs.Validation("max occupancy must cover adults and children")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "max occupancy")
	})

	s.Run("error: 409 on duplicate number", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateRoomNumber).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room number already exists")
	})

	s.Run("error: 400 on invalid hotel id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hotels/nope/rooms", b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hotel ID format")
	})
}

// ================================================================================
// TestUpdatePricing
// ================================================================================

func (s *RoomHandlerTestSuite) TestUpdatePricing() {
	existing := builder.NewRoomBuilder().
		WithSeason("Festive", date("2024-12-20"), date("2025-01-05"), 18000).
		BuildView()
	url := "/rooms/" + existing.ID.String() + "/pricing"

	s.Run("success: unsent fields keep their current value", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil).Times(1)
		s.mockCommands.EXPECT().UpdatePricing(gomock.Any(), existing.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.PricingInput) (*queries.RoomView, error) {
				s.Equal(int64(12500), in.BasePrice)
				s.Equal(existing.Pricing.WeekendSurcharge, in.WeekendSurcharge)
				s.Equal(existing.Pricing.ExtraPersonCharge, in.ExtraPersonCharge)
				s.Require().Len(in.SeasonalRates, 1)
				s.Equal("Festive", in.SeasonalRates[0].Name)
				return existing, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"base_price": 12500}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: sent seasonal rates replace the list", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil).Times(1)
		s.mockCommands.EXPECT().UpdatePricing(gomock.Any(), existing.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.PricingInput) (*queries.RoomView, error) {
				s.Empty(in.SeasonalRates)
				s.Equal(existing.Pricing.BasePrice, in.BasePrice)
				return existing, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"seasonal_rates": []any{}}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), existing.ID).Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"base_price": 1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})

	s.Run("validation: negative base price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"base_price": -1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *RoomHandlerTestSuite) TestTransitions() {
	view := builder.NewRoomBuilder().BuildView()

	s.Run("success: check-in returns the room", func() {
		occupied := *view
		occupied.Status = "occupied"
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), view.ID).Return(&occupied, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/"+view.ID.String()+"/check-in", nil, "")

		var resp resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("occupied", resp.Status)
	})

	s.Run("error: 409 on an illegal transition", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), view.ID).
			Return(nil, errs.Conflict("room is not occupied")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/"+view.ID.String()+"/check-out", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not occupied")
	})

	s.Run("validation: unknown housekeeping status", func() {
		s.mockCommands.EXPECT().SetHousekeeping(gomock.Any(), view.ID, "sparkling").
			Return(nil, errs.Validation("unknown housekeeping status")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rooms/"+view.ID.String()+"/housekeeping",
			map[string]any{"status": "sparkling"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "housekeeping")
	})
}

// ================================================================================
// TestMaintenance
// ================================================================================

func (s *RoomHandlerTestSuite) TestMaintenance() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/maintenance"

	s.Run("success: schedule returns 201 with the window", func() {
		windowID := uuid.New()
		s.mockCommands.EXPECT().ScheduleMaintenance(gomock.Any(), roomID, gomock.Any(), "deep clean").
			DoAndReturn(func(_ context.Context, _ uuid.UUID, period reservation.DateRange, reason string) (*queries.MaintenanceWindowView, error) {
				s.Equal(2, period.Nights())
				return &queries.MaintenanceWindowView{
					ID:     windowID,
					Start:  period.Start(),
					End:    period.End(),
					Reason: reason,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"start": "2024-03-10", "end": "2024-03-12", "reason": "deep clean"}, "")

		var resp resdto.MaintenanceWindowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(windowID, resp.ID)
		s.Equal("2024-03-10", resp.Start)
		s.Equal("2024-03-12", resp.End)
	})

	s.Run("error: 409 on overlapping window", func() {
		s.mockCommands.EXPECT().ScheduleMaintenance(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return(nil, errs.Conflict("maintenance window overlaps an existing one")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"start": "2024-03-10", "end": "2024-03-12"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "overlaps")
	})

	s.Run("validation: inverted window", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"start": "2024-03-12", "end": "2024-03-10"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "checkIn must be before checkOut")
	})

	s.Run("success: cancel returns 204", func() {
		windowID := uuid.New()
		s.mockCommands.EXPECT().CancelMaintenance(gomock.Any(), roomID, windowID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"/"+windowID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on invalid window id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid maintenance window ID format")
	})
}
