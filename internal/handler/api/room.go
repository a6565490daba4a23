package api

import (
	"context"
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary Create room
// @Description Register a room in a hotel's inventory
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{id}/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	hotelID, ok := pathID(c, "id", "hotel")
	if !ok {
		return
	}
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cmd, err := req.ToCommand(hotelID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid room")
		return
	}

	view, err := h.cmds.CreateRoom(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create room failed")
		return
	}
	c.Header("Location", "/api/rooms/"+view.ID.String())
	resp, err := resdto.FromRoomView(view)
	respond(c, http.StatusCreated, resp, err)
}

// @Summary List rooms
// @Description All rooms of a hotel, archived ones included, ordered by number
// @Tags rooms
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels/{id}/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	hotelID, ok := pathID(c, "id", "hotel")
	if !ok {
		return
	}
	views, err := h.q.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "List rooms failed")
		return
	}
	resp, err := resdto.FromRoomViews(views)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Room not found")
		return
	}
	resp, err := resdto.FromRoomView(view)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Update room pricing
// @Description Replace the fields that are sent; omitted fields keep their current value
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdatePricingRequest true "Pricing changes"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/pricing [put]
func (h *RoomHandler) UpdatePricing(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var req reqdto.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Room not found")
		return
	}
	in, err := req.ToInput(existing)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid pricing")
		return
	}

	view, err := h.cmds.UpdatePricing(c.Request.Context(), roomID, in)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update pricing failed")
		return
	}
	resp, err := resdto.FromRoomView(view)
	respond(c, http.StatusOK, resp, err)
}

// @Summary Check in
// @Description Move a reserved or available room to occupied
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/check-in [post]
func (h *RoomHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.cmds.CheckIn, "Check-in failed")
}

// @Summary Check out
// @Description Free an occupied room and flag it for housekeeping
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/check-out [post]
func (h *RoomHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.cmds.CheckOut, "Check-out failed")
}

// @Summary Mark out of order
// @Description Take a room out of sale until it is restored
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/out-of-order [post]
func (h *RoomHandler) MarkOutOfOrder(c *gin.Context) {
	h.transition(c, h.cmds.MarkOutOfOrder, "Mark out of order failed")
}

// @Summary Restore service
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/restore [post]
func (h *RoomHandler) RestoreService(c *gin.Context) {
	h.transition(c, h.cmds.RestoreService, "Restore service failed")
}

// @Summary Start maintenance
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/maintenance/start [post]
func (h *RoomHandler) StartMaintenance(c *gin.Context) {
	h.transition(c, h.cmds.StartMaintenance, "Start maintenance failed")
}

// @Summary End maintenance
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/maintenance/end [post]
func (h *RoomHandler) EndMaintenance(c *gin.Context) {
	h.transition(c, h.cmds.EndMaintenance, "End maintenance failed")
}

// @Summary Archive room
// @Description Soft delete; the room keeps its history but is never sold again
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/archive [post]
func (h *RoomHandler) Archive(c *gin.Context) {
	h.transition(c, h.cmds.Archive, "Archive failed")
}

// @Summary Schedule maintenance
// @Description Block a date range for maintenance. Windows of one room may not overlap
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.ScheduleMaintenanceRequest true "Maintenance window"
// @Success 201 {object} resdto.MaintenanceWindowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id}/maintenance [post]
func (h *RoomHandler) ScheduleMaintenance(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var req reqdto.ScheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	period, err := req.Period()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid maintenance window")
		return
	}

	view, err := h.cmds.ScheduleMaintenance(c.Request.Context(), roomID, period, req.Reason)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Schedule maintenance failed")
		return
	}
	resp, err := resdto.FromMaintenanceWindowView(view)
	respond(c, http.StatusCreated, resp, err)
}

// @Summary Cancel maintenance
// @Tags rooms
// @Param id path string true "Room ID"
// @Param windowId path string true "Maintenance window ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/maintenance/{windowId} [delete]
func (h *RoomHandler) CancelMaintenance(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	windowID, ok := pathID(c, "windowId", "maintenance window")
	if !ok {
		return
	}
	if err := h.cmds.CancelMaintenance(c.Request.Context(), roomID, windowID); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Cancel maintenance failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set housekeeping status
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.HousekeepingRequest true "Housekeeping status"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/housekeeping [put]
func (h *RoomHandler) SetHousekeeping(c *gin.Context) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	var req reqdto.HousekeepingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.cmds.SetHousekeeping(c.Request.Context(), roomID, req.Status)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Set housekeeping failed")
		return
	}
	resp, err := resdto.FromRoomView(view)
	respond(c, http.StatusOK, resp, err)
}

func (h *RoomHandler) transition(c *gin.Context, change func(context.Context, uuid.UUID) (*queries.RoomView, error), failure string) {
	roomID, ok := pathID(c, "id", "room")
	if !ok {
		return
	}
	view, err := change(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, failure)
		return
	}
	resp, err := resdto.FromRoomView(view)
	respond(c, http.StatusOK, resp, err)
}
