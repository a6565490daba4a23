package request

import (
	"strings"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/patch"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CapacityRequest struct {
	Adults       int `json:"adults" binding:"min=0"`
	Children     int `json:"children" binding:"min=0"`
	Infants      int `json:"infants" binding:"min=0"`
	MaxOccupancy int `json:"max_occupancy" binding:"required,min=1"`
}

type BedRequest struct {
	Type  string `json:"type" binding:"required"`
	Count int    `json:"count" binding:"required,min=1"`
}

type SeasonalRateRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required" example:"2024-12-20"`
	EndDate   string `json:"end_date" binding:"required" example:"2025-01-05"`
	Price     int64  `json:"price" binding:"min=0"`
}

type PricingRequest struct {
	BasePrice         int64                 `json:"base_price" binding:"min=0"`
	SeasonalRates     []SeasonalRateRequest `json:"seasonal_rates" binding:"dive"`
	WeekendSurcharge  int64                 `json:"weekend_surcharge" binding:"min=0"`
	HolidaySurcharge  int64                 `json:"holiday_surcharge" binding:"min=0"`
	ExtraPersonCharge int64                 `json:"extra_person_charge" binding:"min=0"`
}

type CreateRoomRequest struct {
	Number   string          `json:"number" binding:"required,max=20"`
	Type     string          `json:"room_type" binding:"required"`
	Capacity CapacityRequest `json:"capacity"`
	Beds     []BedRequest    `json:"beds" binding:"dive"`
	Pricing  PricingRequest  `json:"pricing"`
}

func (r CreateRoomRequest) ToCommand(hotelID uuid.UUID) (commands.CreateRoomCommand, error) {
	cmd := commands.CreateRoomCommand{
		HotelID: hotelID,
		Number:  strings.TrimSpace(r.Number),
		Type:    r.Type,
	}
	if err := copier.Copy(&cmd.Capacity, &r.Capacity); err != nil {
		return commands.CreateRoomCommand{}, errs.Wrap(err, "copy capacity")
	}
	beds := make([]room.Bed, 0, len(r.Beds))
	if err := copier.Copy(&beds, &r.Beds); err != nil {
		return commands.CreateRoomCommand{}, errs.Wrap(err, "copy beds")
	}
	cmd.Beds = beds

	pricing, err := r.Pricing.ToInput()
	if err != nil {
		return commands.CreateRoomCommand{}, err
	}
	cmd.Pricing = pricing
	return cmd, nil
}

func (p PricingRequest) ToInput() (commands.PricingInput, error) {
	rates, err := toSeasonalRates(p.SeasonalRates)
	if err != nil {
		return commands.PricingInput{}, err
	}
	return commands.PricingInput{
		BasePrice:         p.BasePrice,
		SeasonalRates:     rates,
		WeekendSurcharge:  p.WeekendSurcharge,
		HolidaySurcharge:  p.HolidaySurcharge,
		ExtraPersonCharge: p.ExtraPersonCharge,
	}, nil
}

// UpdatePricingRequest replaces only the fields that are sent. Sending
// seasonal_rates replaces the whole list.
type UpdatePricingRequest struct {
	BasePrice         *int64                 `json:"base_price" binding:"omitempty,min=0"`
	SeasonalRates     *[]SeasonalRateRequest `json:"seasonal_rates"`
	WeekendSurcharge  *int64                 `json:"weekend_surcharge" binding:"omitempty,min=0"`
	HolidaySurcharge  *int64                 `json:"holiday_surcharge" binding:"omitempty,min=0"`
	ExtraPersonCharge *int64                 `json:"extra_person_charge" binding:"omitempty,min=0"`
}

func (r UpdatePricingRequest) ToInput(existing *queries.RoomView) (commands.PricingInput, error) {
	current := existing.Pricing

	rates := make([]commands.SeasonalRateInput, 0, len(current.SeasonalRates))
	for _, s := range current.SeasonalRates {
		rates = append(rates, commands.SeasonalRateInput{
			Name:      s.Name,
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
			Price:     s.Price,
		})
	}
	if r.SeasonalRates != nil {
		replaced, err := toSeasonalRates(*r.SeasonalRates)
		if err != nil {
			return commands.PricingInput{}, err
		}
		rates = replaced
	}

	return commands.PricingInput{
		BasePrice:         patch.Coalesce(r.BasePrice, current.BasePrice),
		SeasonalRates:     rates,
		WeekendSurcharge:  patch.Coalesce(r.WeekendSurcharge, current.WeekendSurcharge),
		HolidaySurcharge:  patch.Coalesce(r.HolidaySurcharge, current.HolidaySurcharge),
		ExtraPersonCharge: patch.Coalesce(r.ExtraPersonCharge, current.ExtraPersonCharge),
	}, nil
}

func toSeasonalRates(in []SeasonalRateRequest) ([]commands.SeasonalRateInput, error) {
	out := make([]commands.SeasonalRateInput, 0, len(in))
	for _, s := range in {
		start, err := reservation.ParseDate(s.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := reservation.ParseDate(s.EndDate)
		if err != nil {
			return nil, err
		}
		out = append(out, commands.SeasonalRateInput{
			Name:      strings.TrimSpace(s.Name),
			StartDate: start,
			EndDate:   end,
			Price:     s.Price,
		})
	}
	return out, nil
}

type ScheduleMaintenanceRequest struct {
	Start  string `json:"start" binding:"required" example:"2024-03-10"`
	End    string `json:"end" binding:"required" example:"2024-03-12"`
	Reason string `json:"reason" binding:"max=500"`
}

func (r ScheduleMaintenanceRequest) Period() (reservation.DateRange, error) {
	return reservation.ParseDateRange(r.Start, r.End)
}

type HousekeepingRequest struct {
	Status string `json:"status" binding:"required" example:"clean"`
}
