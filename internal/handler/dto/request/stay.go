package request

import (
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/errs"
)

// StayDates is embedded by every request that names a stay.
type StayDates struct {
	CheckIn  string `json:"check_in" form:"checkIn" binding:"required" example:"2024-03-04"`
	CheckOut string `json:"check_out" form:"checkOut" binding:"required" example:"2024-03-06"`
}

// Stay parses the dates and rejects stays longer than maxNights when it is set.
func (s StayDates) Stay(maxNights int) (reservation.DateRange, error) {
	stay, err := reservation.ParseDateRange(s.CheckIn, s.CheckOut)
	if err != nil {
		return reservation.DateRange{}, err
	}
	if maxNights > 0 && stay.Nights() > maxNights {
		return reservation.DateRange{}, errs.Validationf("stay of %d nights exceeds the maximum of %d", stay.Nights(), maxNights)
	}
	return stay, nil
}

type OccupancyQuery struct {
	From string `form:"from" binding:"required" example:"2024-03-01"`
	To   string `form:"to" binding:"required" example:"2024-04-01"`
}

func (q OccupancyQuery) Period() (reservation.DateRange, error) {
	return reservation.ParseDateRange(q.From, q.To)
}
