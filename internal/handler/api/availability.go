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

type AvailabilityHandler struct {
	q         queries.AvailabilityQueries
	maxNights int
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, cfg config.Config) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, maxNights: cfg.Pricing.MaxStayNights}
}

// @Summary Room availability
// @Description Check whether a room is free for a stay and list what blocks it
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *AvailabilityHandler) RoomAvailability(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	stay, err := query.Stay(h.maxNights)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid stay")
		return
	}

	view, err := h.q.IsRoomFree(c.Request.Context(), roomID, stay)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Availability check failed")
		return
	}
	resp, err := resdto.FromAvailabilityView(view)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Hotel availability
// @Description List the sellable rooms of a hotel that are free for a stay and fit the party
// @Tags availability
// @Produce json
// @Param id path string true "Hotel ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int true "Number of guests"
// @Param roomType query string false "Room type filter"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels/{id}/availability [get]
func (h *AvailabilityHandler) HotelAvailability(c *gin.Context) {
	hotelID, ok := pathID(c, "id", "hotel")
	if !ok {
		return
	}
	var query reqdto.HotelAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	stay, err := query.Stay(h.maxNights)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid stay")
		return
	}

	views, err := h.q.ListAvailable(c.Request.Context(), hotelID, stay, query.Guests, query.RoomTypeFilter())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Availability search failed")
		return
	}
	resp, err := resdto.FromRoomViews(views)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Room occupancy
// @Description Booked and maintenance nights of a room over a period
// @Tags availability
// @Produce json
// @Param id path string true "Room ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end, exclusive (YYYY-MM-DD)"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/occupancy [get]
func (h *AvailabilityHandler) Occupancy(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var query reqdto.OccupancyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	period, err := query.Period()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid period")
		return
	}

	view, err := h.q.OccupancySnapshot(c.Request.Context(), roomID, period)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Occupancy report failed")
		return
	}
	resp, err := resdto.FromOccupancyView(view)
	respond(c, http.StatusOK, resp, err)
}
