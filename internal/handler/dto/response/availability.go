package response

import (
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	RoomID    uuid.UUID         `json:"room_id"`
	CheckIn   string            `json:"check_in"`
	CheckOut  string            `json:"check_out"`
	Free      bool              `json:"free"`
	Conflicts []BlockerResponse `json:"conflicts"`
}

// BlockerResponse names what blocks the stay: a reservation or a maintenance window.
type BlockerResponse struct {
	Kind  string    `json:"kind"`
	ID    uuid.UUID `json:"id"`
	Start string    `json:"start"`
	End   string    `json:"end"`
}

type OccupancyResponse struct {
	RoomID            uuid.UUID `json:"room_id"`
	From              string    `json:"from"`
	To                string    `json:"to"`
	Nights            int       `json:"nights"`
	BookedNights      int       `json:"booked_nights"`
	MaintenanceNights int       `json:"maintenance_nights"`
	OccupancyRate     string    `json:"occupancy_rate"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	resp, err := copyFrom[AvailabilityResponse](v)
	if err != nil {
		return nil, err
	}
	if resp.Conflicts == nil {
		resp.Conflicts = []BlockerResponse{}
	}
	return resp, nil
}

func FromOccupancyView(v *queries.OccupancyView) (*OccupancyResponse, error) {
	return copyFrom[OccupancyResponse](v)
}
