package response

import (
	"time"

	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID                 uuid.UUID                   `json:"id"`
	HotelID            uuid.UUID                   `json:"hotel_id"`
	Number             string                      `json:"number"`
	Type               string                      `json:"room_type"`
	Capacity           CapacityResponse            `json:"capacity"`
	Beds               []BedResponse               `json:"beds"`
	Pricing            PricingResponse             `json:"pricing"`
	Status             string                      `json:"status"`
	Housekeeping       string                      `json:"housekeeping"`
	MaintenanceWindows []MaintenanceWindowResponse `json:"maintenance_windows"`
	ArchivedAt         *time.Time                  `json:"archived_at,omitempty"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

type CapacityResponse struct {
	Adults       int `json:"adults"`
	Children     int `json:"children"`
	Infants      int `json:"infants"`
	MaxOccupancy int `json:"max_occupancy"`
}

type BedResponse struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type PricingResponse struct {
	BasePrice         int64                  `json:"base_price"`
	SeasonalRates     []SeasonalRateResponse `json:"seasonal_rates"`
	WeekendSurcharge  int64                  `json:"weekend_surcharge"`
	HolidaySurcharge  int64                  `json:"holiday_surcharge"`
	ExtraPersonCharge int64                  `json:"extra_person_charge"`
}

type SeasonalRateResponse struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Price     int64  `json:"price"`
}

type MaintenanceWindowResponse struct {
	ID     uuid.UUID `json:"id"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Reason string    `json:"reason"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	return copyFrom[RoomResponse](v)
}

func FromRoomViews(vs []*queries.RoomView) ([]*RoomResponse, error) {
	return copyList[RoomResponse](vs)
}

func FromMaintenanceWindowView(v *queries.MaintenanceWindowView) (*MaintenanceWindowResponse, error) {
	return copyFrom[MaintenanceWindowResponse](v)
}
