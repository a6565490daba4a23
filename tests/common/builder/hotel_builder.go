//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-engine/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HotelBuilder struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	GSTRate        decimal.Decimal
	ServiceTaxRate decimal.Decimal
	BaseOccupancy  int
	Holidays       []time.Time
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           "Seaside Hotel",
		GSTRate:        decimal.NewFromInt(12),
		ServiceTaxRate: decimal.NewFromInt(5),
		BaseOccupancy:  2,
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) WithoutTax() *HotelBuilder {
	b.GSTRate = decimal.Zero
	b.ServiceTaxRate = decimal.Zero
	return b
}

func (b *HotelBuilder) BuildDomain() (*hotel.Policy, error) {
	return hotel.NewPolicy(b.ID, b.OwnerID, b.Name, b.GSTRate, b.ServiceTaxRate, b.BaseOccupancy, b.Holidays)
}

func (b *HotelBuilder) MustBuildDomain() *hotel.Policy {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}
