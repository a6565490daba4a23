package response

import (
	"time"

	"hotel-booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	BookingID uuid.UUID `json:"booking_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Nights    int       `json:"nights"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromReservationResult(r *commands.ReservationResult) (*ReservationResponse, error) {
	return copyFrom[ReservationResponse](r)
}
