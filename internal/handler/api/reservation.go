package api

import (
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds      commands.ReservationCommands
	maxNights int
}

func NewReservationHandler(cmds commands.ReservationCommands, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, maxNights: cfg.Pricing.MaxStayNights}
}

// @Summary Reserve a room
// @Description Hold a room for a booking. Fails with 409 when the dates overlap another reservation or a maintenance window
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.ReserveRoomRequest true "Booking and stay"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var req reqdto.ReserveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cmd, err := req.ToCommand(roomID, h.maxNights)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid stay")
		return
	}

	result, err := h.cmds.ReserveRoom(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Reservation failed")
		return
	}
	resp, err := resdto.FromReservationResult(result)
	respond(c, http.StatusCreated, resp, err)
}

// @Summary Cancel a reservation
// @Description Release the interval held by a reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id", "reservation")
	if !ok {
		return
	}

	result, err := h.cmds.CancelReservation(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Cancellation failed")
		return
	}
	resp, err := resdto.FromReservationResult(result)
	respond(c, http.StatusOK, resp, err)
}
