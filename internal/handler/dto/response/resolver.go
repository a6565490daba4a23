package response

import (
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type CandidateResponse struct {
	Room       *RoomResponse         `json:"room"`
	Quote      *QuoteResponse        `json:"quote"`
	Offer      *OfferOutcomeResponse `json:"offer,omitempty"`
	FinalPrice int64                 `json:"final_price"`
}

type OfferOutcomeResponse struct {
	OfferID    uuid.UUID `json:"offer_id"`
	Applicable bool      `json:"applicable"`
	Reason     string    `json:"reason,omitempty"`
	Code       string    `json:"code,omitempty"`
	Discount   int64     `json:"discount"`
}

func FromCandidateViews(vs []*queries.CandidateView) ([]*CandidateResponse, error) {
	return copyList[CandidateResponse](vs)
}
