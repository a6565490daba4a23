//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	reqdto "hotel-booking-engine/internal/handler/dto/request"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type SeasonSpec struct {
	Name  string
	Start time.Time
	End   time.Time
	Price int64
}

type RoomBuilder struct {
	HotelID           uuid.UUID
	Number            string
	Type              string
	Adults            int
	Children          int
	Infants           int
	MaxOccupancy      int
	Beds              []room.Bed
	BasePrice         int64
	Seasons           []SeasonSpec
	WeekendSurcharge  int64
	HolidaySurcharge  int64
	ExtraPersonCharge int64
	Now               time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		HotelID:           uuid.New(),
		Number:            "101",
		Type:              "deluxe",
		Adults:            2,
		Children:          1,
		Infants:           1,
		MaxOccupancy:      4,
		Beds:              []room.Bed{{Type: "queen", Count: 1}},
		BasePrice:         10000,
		WeekendSurcharge:  2000,
		HolidaySurcharge:  1500,
		ExtraPersonCharge: 1000,
		Now:               time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithHotel(id uuid.UUID) *RoomBuilder {
	b.HotelID = id
	return b
}

func (b *RoomBuilder) WithNumber(n string) *RoomBuilder {
	b.Number = n
	return b
}

func (b *RoomBuilder) WithSeason(name string, start, end time.Time, price int64) *RoomBuilder {
	b.Seasons = append(b.Seasons, SeasonSpec{Name: name, Start: start, End: end, Price: price})
	return b
}

func (b *RoomBuilder) BuildPricing() (room.Pricing, error) {
	rates := make([]room.SeasonalRate, 0, len(b.Seasons))
	for _, s := range b.Seasons {
		w, err := room.NewSeasonWindow(s.Start, s.End)
		if err != nil {
			return room.Pricing{}, err
		}
		rate, err := room.NewSeasonalRate(s.Name, w, reservation.NewMoney(s.Price))
		if err != nil {
			return room.Pricing{}, err
		}
		rates = append(rates, rate)
	}
	return room.NewPricing(
		reservation.NewMoney(b.BasePrice),
		rates,
		reservation.NewMoney(b.WeekendSurcharge),
		reservation.NewMoney(b.HolidaySurcharge),
		reservation.NewMoney(b.ExtraPersonCharge),
	)
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	roomType, err := room.NewType(b.Type)
	if err != nil {
		return nil, err
	}
	capacity, err := room.NewCapacity(b.Adults, b.Children, b.Infants, b.MaxOccupancy)
	if err != nil {
		return nil, err
	}
	beds, err := room.NewBeds(b.Beds)
	if err != nil {
		return nil, err
	}
	pricing, err := b.BuildPricing()
	if err != nil {
		return nil, err
	}
	return room.NewRoom(b.HotelID, b.Number, roomType, capacity, beds, pricing, b.Now)
}

func (b *RoomBuilder) MustBuildDomain() *room.Room {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return queries.NewRoomView(b.MustBuildDomain())
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	beds := make([]reqdto.BedRequest, 0, len(b.Beds))
	for _, bed := range b.Beds {
		beds = append(beds, reqdto.BedRequest{Type: bed.Type, Count: bed.Count})
	}
	seasons := make([]reqdto.SeasonalRateRequest, 0, len(b.Seasons))
	for _, s := range b.Seasons {
		seasons = append(seasons, reqdto.SeasonalRateRequest{
			Name:      s.Name,
			StartDate: reservation.FormatDate(s.Start),
			EndDate:   reservation.FormatDate(s.End),
			Price:     s.Price,
		})
	}
	return reqdto.CreateRoomRequest{
		Number: b.Number,
		Type:   b.Type,
		Capacity: reqdto.CapacityRequest{
			Adults:       b.Adults,
			Children:     b.Children,
			Infants:      b.Infants,
			MaxOccupancy: b.MaxOccupancy,
		},
		Beds: beds,
		Pricing: reqdto.PricingRequest{
			BasePrice:         b.BasePrice,
			SeasonalRates:     seasons,
			WeekendSurcharge:  b.WeekendSurcharge,
			HolidaySurcharge:  b.HolidaySurcharge,
			ExtraPersonCharge: b.ExtraPersonCharge,
		},
	}
}
