package api

import (
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q         queries.PricingQueries
	maxNights int
}

func NewPricingHandler(q queries.PricingQueries, cfg config.Config) *PricingHandler {
	return &PricingHandler{q: q, maxNights: cfg.Pricing.MaxStayNights}
}

// @Summary Quote a stay
// @Description Itemised price of a stay in one room: nightly rates, extra guests and taxes
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.QuoteRequest true "Stay and party size"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	stay, err := req.Stay(h.maxNights)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid stay")
		return
	}

	view, err := h.q.PriceStay(c.Request.Context(), roomID, stay, req.Guests)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Pricing failed")
		return
	}
	resp, err := resdto.FromQuoteView(view)
	respond(c, http.StatusOK, resp, err)
}
