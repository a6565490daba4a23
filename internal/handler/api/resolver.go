package api

import (
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResolverHandler struct {
	q         queries.ResolverQueries
	maxNights int
}

func NewResolverHandler(q queries.ResolverQueries, cfg config.Config) *ResolverHandler {
	return &ResolverHandler{q: q, maxNights: cfg.Pricing.MaxStayNights}
}

// @Summary Resolve a stay
// @Description Bookable rooms for a stay with final prices, cheapest first. An offer that does not apply to a room is reported with its reason
// @Tags stays
// @Accept json
// @Produce json
// @Param X-Customer-ID header string false "Customer ID, used for per-customer offer limits"
// @Param request body reqdto.ResolveRequest true "Stay search"
// @Success 200 {array} resdto.CandidateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stays/resolve [post]
func (h *ResolverHandler) Resolve(c *gin.Context) {
	var req reqdto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	query, err := req.ToQuery(middleware.OptionalCustomerID(c), h.maxNights)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid stay")
		return
	}

	views, err := h.q.Resolve(c.Request.Context(), query)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Stay resolution failed")
		return
	}
	resp, err := resdto.FromCandidateViews(views)
	respond(c, http.StatusOK, resp, err)
}
