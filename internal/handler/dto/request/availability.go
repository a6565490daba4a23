package request

import (
	"strings"
)

type AvailabilityQuery struct {
	StayDates
}

type HotelAvailabilityQuery struct {
	StayDates
	Guests   int    `form:"guests" binding:"required,min=1"`
	RoomType string `form:"roomType"`
}

func (q HotelAvailabilityQuery) RoomTypeFilter() *string {
	trimmed := strings.TrimSpace(q.RoomType)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type QuoteRequest struct {
	StayDates
	Guests int `json:"guests" binding:"required"`
}
