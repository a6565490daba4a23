//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-booking-engine/internal/handler/api"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/tests/common/builder"
	"hotel-booking-engine/tests/common/httptest"
	commandsmock "hotel-booking-engine/tests/mock/commands"
	queriesmock "hotel-booking-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	handler      *api.OfferHandler
	cfg          config.Config
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.CustomerContext())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.cfg = config.NewTestConfig()
	s.handler = api.NewOfferHandler(s.mockCommands, s.mockQueries, s.cfg)

	s.router.POST("/hotels/:id/offers", s.handler.Create)
	s.router.GET("/hotels/:id/offers/active", s.handler.ListActive)
	s.router.GET("/offers/:id", s.handler.Get)
	s.router.POST("/offers/:id/approve", s.handler.Approve)
	s.router.POST("/offers/:id/view", s.handler.RecordView)
	s.router.POST("/offers/:id/applicability", s.handler.Applicability)
	s.router.POST("/offers/:id/redemptions", middleware.RequireCustomer(), s.handler.Redeem)
	s.router.GET("/offers/:id/redemptions", s.handler.ListRedemptions)
	s.router.GET("/offers/:id/analytics", s.handler.Analytics)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func stayBody(extra map[string]any) map[string]any {
	body := map[string]any{
		"check_in":  "2024-03-04",
		"check_out": "2024-03-06",
		"rooms":     1,
		"amount":    20000,
		"room_type": "deluxe",
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OfferHandlerTestSuite) TestCreate() {
	hotelID := uuid.New()
	url := "/hotels/" + hotelID.String() + "/offers"
	view := builder.NewOfferBuilder().WithHotel(hotelID).With(func(b *builder.OfferBuilder) {
		b.BlackoutDates = []time.Time{date("2024-12-31")}
	}).BuildView()

	body := map[string]any{
		"code":           "SPRING15",
		"title":          "Spring sale",
		"discount_type":  "percentage",
		"discount_value": "15",
		"conditions": map[string]any{
			"minimum_stay":   2,
			"blackout_dates": []string{"2024-12-31"},
		},
		"start_date": "2024-03-01T00:00:00Z",
		"end_date":   "2024-06-01T00:00:00Z",
	}

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd commands.CreateOfferCommand) (*queries.OfferView, error) {
				s.Equal(hotelID, cmd.HotelID)
				s.Equal("SPRING15", cmd.Code)
				s.Equal("15", cmd.DiscountValue.String())
				s.Equal(2, cmd.Conditions.MinimumStay)
				s.Equal([]time.Time{date("2024-12-31")}, cmd.Conditions.BlackoutDates)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var resp resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal([]string{"2024-12-31"}, resp.BlackoutDates)
		s.Equal("0.0000", resp.Analytics.ConversionRate)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/offers/" + view.ID.String()})
	})

	s.Run("error: 400 on malformed blackout date", func() {
		bad := map[string]any{}
		for k, v := range body {
			bad[k] = v
		}
		bad["conditions"] = map[string]any{"blackout_dates": []string{"31-12-2024"}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid date")
	})

	s.Run("error: 409 on duplicate code", func() {
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateOfferCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "offer code already exists")
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *OfferHandlerTestSuite) TestRedeem() {
	offerID := uuid.New()
	customerID := uuid.New()
	url := "/offers/" + offerID.String() + "/redemptions"

	s.Run("success: returns 201 with the redemption", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().ApplyOffer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd commands.ApplyOfferCommand) (*queries.RedemptionView, error) {
				s.Equal(offerID, cmd.OfferID)
				s.Equal(customerID, cmd.CustomerID)
				s.Equal(&bookingID, cmd.BookingID)
				s.Equal(int64(20000), cmd.Amount)
				return &queries.RedemptionView{
					ID:         uuid.New(),
					OfferID:    offerID,
					CustomerID: customerID,
					BookingID:  &bookingID,
					CheckIn:    date("2024-03-04"),
					CheckOut:   date("2024-03-06"),
					Original:   20000,
					Discount:   4000,
					Final:      16000,
					RedeemedAt: testNow,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, stayBody(map[string]any{"booking_id": bookingID}), customerID.String())

		var resp resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(int64(16000), resp.Final)
		s.Equal("2024-03-04", resp.CheckIn)
	})

	s.Run("error: rejections map onto status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{
				name:       "usage limit is 422",
				err:        errs.Tagged(errs.ErrLimitExceeded, errs.ErrOfferLimitReached, "Offer usage limit reached"),
				expectCode: http.StatusUnprocessableEntity,
				expectMsg:  "usage limit reached",
			},
			{
				name:       "failed condition is 409",
				err:        errs.Tagged(errs.ErrConflict, errs.ErrOfferInapplicable, "Minimum stay of 3 nights required"),
				expectCode: http.StatusConflict,
				expectMsg:  "Minimum stay",
			},
			{name: "unknown offer is 404", err: errs.ErrOfferNotFound, expectCode: http.StatusNotFound, expectMsg: "offer not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ApplyOffer(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, stayBody(nil), customerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 400 without a customer", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, stayBody(nil), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Customer id required")
	})

	s.Run("error: 400 on malformed customer id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, stayBody(nil), "someone")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customer id")
	})
}

// ================================================================================
// TestApplicability
// ================================================================================

func (s *OfferHandlerTestSuite) TestApplicability() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String() + "/applicability"

	s.Run("success: failed check is still 200 with the reason", func() {
		s.mockQueries.EXPECT().IsApplicable(gomock.Any(), offerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req queries.ApplicabilityRequest) (*queries.VerdictView, error) {
				s.Nil(req.CustomerID)
				s.Equal(2, req.PriorRedemptions)
				return &queries.VerdictView{Applicable: false, Reason: "Customer usage limit reached", Code: "CUSTOMER_LIMIT"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, stayBody(map[string]any{"prior_redemptions": 2}), "")

		var resp resdto.VerdictResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.False(resp.Applicable)
		s.Equal("CUSTOMER_LIMIT", resp.Code)
	})

	s.Run("success: forwarded customer is passed through", func() {
		customerID := uuid.New()
		s.mockQueries.EXPECT().IsApplicable(gomock.Any(), offerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req queries.ApplicabilityRequest) (*queries.VerdictView, error) {
				s.Require().NotNil(req.CustomerID)
				s.Equal(customerID, *req.CustomerID)
				return &queries.VerdictView{Applicable: true}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, stayBody(nil), customerID.String())

		var resp resdto.VerdictResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Applicable)
	})
}

// ================================================================================
// TestListRedemptions
// ================================================================================

func (s *OfferHandlerTestSuite) TestListRedemptions() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String() + "/redemptions"

	s.Run("success: default page size and next cursor", func() {
		s.mockQueries.EXPECT().ListRedemptions(gomock.Any(), offerID, &queries.Cursor{}, s.cfg.Offer.RedemptionPageSize).
			Return([]*queries.RedemptionView{{ID: uuid.New(), OfferID: offerID, CheckIn: date("2024-03-04"), CheckOut: date("2024-03-05")}},
				&queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp resdto.RedemptionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Items, 1)
		s.Require().NotNil(resp.NextCursor)
		s.Equal("next-page", *resp.NextCursor)
	})

	s.Run("success: explicit cursor and limit", func() {
		s.mockQueries.EXPECT().ListRedemptions(gomock.Any(), offerID, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.RedemptionView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc&limit=5", nil, "")

		var resp resdto.RedemptionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Nil(resp.NextCursor)
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().ListRedemptions(gomock.Any(), offerID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

// ================================================================================
// TestLifecycleAndCounters
// ================================================================================

func (s *OfferHandlerTestSuite) TestLifecycleAndCounters() {
	offerID := uuid.New()

	s.Run("approve returns the active offer", func() {
		view := builder.NewOfferBuilder().BuildView()
		s.mockCommands.EXPECT().Approve(gomock.Any(), offerID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/"+offerID.String()+"/approve", nil, "")

		var resp resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("active", resp.Status)
	})

	s.Run("approve of a non-draft is 409", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), offerID).
			Return(nil, errs.Conflict("only draft offers can be approved")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/"+offerID.String()+"/approve", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "draft")
	})

	s.Run("view counter answers 204", func() {
		s.mockCommands.EXPECT().RecordView(gomock.Any(), offerID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/"+offerID.String()+"/view", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("analytics", func() {
		s.mockQueries.EXPECT().GetAnalytics(gomock.Any(), offerID).
			Return(&queries.AnalyticsView{OfferID: offerID, Views: 10, Clicks: 4, Bookings: 2, Revenue: 40000, AverageBookingValue: 20000}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/"+offerID.String()+"/analytics", nil, "")

		var resp resdto.AnalyticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(20000), resp.AverageBookingValue)
	})
}
