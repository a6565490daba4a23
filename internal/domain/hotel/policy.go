package hotel

import (
	"time"

	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNegativeTaxRate = errs.Validation("tax rates cannot be negative")

// Policy is the pricing configuration this core consumes from the hotel.
type Policy struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	name           string
	gstRate        decimal.Decimal
	serviceTaxRate decimal.Decimal
	baseOccupancy  int
	holidays       map[time.Time]struct{}
}

// NewPolicy builds a policy; baseOccupancy <= 0 means the hotel has not set one.
func NewPolicy(
	id, ownerID uuid.UUID,
	name string,
	gstRate, serviceTaxRate decimal.Decimal,
	baseOccupancy int,
	holidays []time.Time,
) (*Policy, error) {
	if gstRate.IsNegative() || serviceTaxRate.IsNegative() {
		return nil, ErrNegativeTaxRate
	}
	set := make(map[time.Time]struct{}, len(holidays))
	for _, h := range holidays {
		set[clock.DateOf(h)] = struct{}{}
	}
	return &Policy{
		id:             id,
		ownerID:        ownerID,
		name:           name,
		gstRate:        gstRate,
		serviceTaxRate: serviceTaxRate,
		baseOccupancy:  baseOccupancy,
		holidays:       set,
	}, nil
}

func (p *Policy) BaseOccupancyOr(fallback int) int {
	if p.baseOccupancy > 0 {
		return p.baseOccupancy
	}
	return fallback
}

func (p *Policy) IsHoliday(date time.Time) bool {
	_, ok := p.holidays[clock.DateOf(date)]
	return ok
}

func (p *Policy) ID() uuid.UUID                   { return p.id }
func (p *Policy) OwnerID() uuid.UUID              { return p.ownerID }
func (p *Policy) Name() string                    { return p.name }
func (p *Policy) GSTRate() decimal.Decimal        { return p.gstRate }
func (p *Policy) ServiceTaxRate() decimal.Decimal { return p.serviceTaxRate }
func (p *Policy) BaseOccupancy() int              { return p.baseOccupancy }
