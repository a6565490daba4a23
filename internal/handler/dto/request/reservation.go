package request

import (
	"hotel-booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveRoomRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	StayDates
}

func (r ReserveRoomRequest) ToCommand(roomID uuid.UUID, maxNights int) (commands.ReserveRoomCommand, error) {
	stay, err := r.Stay(maxNights)
	if err != nil {
		return commands.ReserveRoomCommand{}, err
	}
	return commands.ReserveRoomCommand{
		RoomID:    roomID,
		BookingID: r.BookingID,
		Stay:      stay,
	}, nil
}
