package response

import (
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// QuoteResponse amounts are minor currency units.
type QuoteResponse struct {
	RoomID           uuid.UUID           `json:"room_id"`
	CheckIn          string              `json:"check_in"`
	CheckOut         string              `json:"check_out"`
	Guests           int                 `json:"guests"`
	Nights           int                 `json:"nights"`
	PerNight         []NightLineResponse `json:"per_night"`
	NightsTotal      int64               `json:"nights_total"`
	ExtraGuests      int                 `json:"extra_guests"`
	ExtraGuestCharge int64               `json:"extra_guest_charge"`
	Subtotal         int64               `json:"subtotal"`
	GST              int64               `json:"gst"`
	ServiceTax       int64               `json:"service_tax"`
	Tax              int64               `json:"tax"`
	Total            int64               `json:"total"`
}

type NightLineResponse struct {
	Date             string `json:"date"`
	Base             int64  `json:"base"`
	Season           string `json:"season,omitempty"`
	WeekendSurcharge int64  `json:"weekend_surcharge"`
	HolidaySurcharge int64  `json:"holiday_surcharge"`
	Amount           int64  `json:"amount"`
}

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	return copyFrom[QuoteResponse](v)
}
