package api

import (
	"context"
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/pkg/patch"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	cmds      commands.OfferCommands
	q         queries.OfferQueries
	maxNights int
	pageSize  int
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries, cfg config.Config) *OfferHandler {
	return &OfferHandler{
		cmds:      cmds,
		q:         q,
		maxNights: cfg.Pricing.MaxStayNights,
		pageSize:  cfg.Offer.RedemptionPageSize,
	}
}

// @Summary Create offer
// @Description Create a draft offer for a hotel. It becomes redeemable once approved
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{id}/offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	hotelID, ok := pathID(c, "id", "hotel")
	if !ok {
		return
	}
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cmd, err := req.ToCommand(hotelID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid offer")
		return
	}

	view, err := h.cmds.CreateOffer(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create offer failed")
		return
	}
	c.Header("Location", "/api/offers/"+view.ID.String())
	resp, err := resdto.FromOfferView(view)
	respond(c, http.StatusCreated, resp, err)
}

// @Summary List active offers
// @Description Offers of a hotel that are active and not past their end date
// @Tags offers
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels/{id}/offers/active [get]
func (h *OfferHandler) ListActive(c *gin.Context) {
	hotelID, ok := pathID(c, "id", "hotel")
	if !ok {
		return
	}
	views, err := h.q.ListActive(c.Request.Context(), hotelID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List offers failed")
		return
	}
	resp, err := resdto.FromOfferViews(views)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Get offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	offerID, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), offerID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Offer not found")
		return
	}
	resp, err := resdto.FromOfferView(view)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Approve offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/approve [post]
func (h *OfferHandler) Approve(c *gin.Context) {
	h.transition(c, h.cmds.Approve, "Approve failed")
}

// @Summary Pause offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/pause [post]
func (h *OfferHandler) Pause(c *gin.Context) {
	h.transition(c, h.cmds.Pause, "Pause failed")
}

// @Summary Resume offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/resume [post]
func (h *OfferHandler) Resume(c *gin.Context) {
	h.transition(c, h.cmds.Resume, "Resume failed")
}

// @Summary Cancel offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/cancel [post]
func (h *OfferHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel, "Cancel failed")
}

// @Summary Record offer view
// @Tags offers
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/view [post]
func (h *OfferHandler) RecordView(c *gin.Context) {
	h.count(c, h.cmds.RecordView)
}

// @Summary Record offer click
// @Tags offers
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/click [post]
func (h *OfferHandler) RecordClick(c *gin.Context) {
	h.count(c, h.cmds.RecordClick)
}

// @Summary Check offer applicability
// @Description Run the eligibility checks against a candidate stay without redeeming. A failed check is a 200 with applicable=false and the reason
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param X-Customer-ID header string false "Customer ID; when set prior redemptions are read from the ledger"
// @Param request body reqdto.ApplicabilityRequest true "Candidate stay"
// @Success 200 {object} resdto.VerdictResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/applicability [post]
func (h *OfferHandler) Applicability(c *gin.Context) {
	offerID, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	var req reqdto.ApplicabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	query, err := req.ToQuery(middleware.OptionalCustomerID(c), h.maxNights)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid stay")
		return
	}

	view, err := h.q.IsApplicable(c.Request.Context(), offerID, query)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Applicability check failed")
		return
	}
	resp, err := resdto.FromVerdictView(view)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Redeem offer
// @Description Apply the offer to a booking atomically. 422 when a usage limit is reached, 409 when another check fails
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param X-Customer-ID header string true "Customer ID"
// @Param request body reqdto.ApplyOfferRequest true "Stay being booked"
// @Success 201 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /offers/{id}/redemptions [post]
func (h *OfferHandler) Redeem(c *gin.Context) {
	offerID, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, middleware.ErrMissingCustomer, "Customer id required", nil)
		return
	}
	var req reqdto.ApplyOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cmd, err := req.ToCommand(offerID, customerID, h.maxNights)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid stay")
		return
	}

	view, err := h.cmds.ApplyOffer(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Offer redemption failed")
		return
	}
	resp, err := resdto.FromRedemptionView(view)
	respond(c, http.StatusCreated, resp, err)
}

// @Summary List redemptions
// @Description Redemption audit trail of an offer, newest first, keyset paginated
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Param after query string false "Cursor returned as next_cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RedemptionPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/redemptions [get]
func (h *OfferHandler) ListRedemptions(c *gin.Context) {
	offerID, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	var query reqdto.RedemptionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	items, next, err := h.q.ListRedemptions(c.Request.Context(), offerID, &queries.Cursor{After: query.After}, patch.CoalescePositive(query.Limit, h.pageSize))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List redemptions failed")
		return
	}
	resp, err := resdto.FromRedemptionPage(items, next)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Offer analytics
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id}/analytics [get]
func (h *OfferHandler) Analytics(c *gin.Context) {
	offerID, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	view, err := h.q.GetAnalytics(c.Request.Context(), offerID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Offer not found")
		return
	}
	resp, err := resdto.FromAnalyticsView(view)
	respond(c, http.StatusOK, resp, err)
}

func (h *OfferHandler) transition(c *gin.Context, change func(context.Context, uuid.UUID) (*queries.OfferView, error), failure string) {
	offerID, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	view, err := change(c.Request.Context(), offerID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, failure)
		return
	}
	resp, err := resdto.FromOfferView(view)
	respond(c, http.StatusOK, resp, err)
}

func (h *OfferHandler) count(c *gin.Context, record func(context.Context, uuid.UUID) error) {
	offerID, ok := pathID(c, "id", "offer")
	if !ok {
		return
	}
	if err := record(c.Request.Context(), offerID); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Offer not found")
		return
	}
	c.Status(http.StatusNoContent)
}
