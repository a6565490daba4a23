package queries

import (
	"time"

	"hotel-booking-engine/internal/domain/availability"
	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/pricing"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID                 uuid.UUID               `json:"id"`
	HotelID            uuid.UUID               `json:"hotel_id"`
	Number             string                  `json:"number"`
	Type               string                  `json:"room_type"`
	Capacity           CapacityView            `json:"capacity"`
	Beds               []BedView               `json:"beds"`
	Pricing            PricingView             `json:"pricing"`
	Status             string                  `json:"status"`
	Housekeeping       string                  `json:"housekeeping"`
	MaintenanceWindows []MaintenanceWindowView `json:"maintenance_windows"`
	ArchivedAt         *time.Time              `json:"archived_at,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

type CapacityView struct {
	Adults       int `json:"adults"`
	Children     int `json:"children"`
	Infants      int `json:"infants"`
	MaxOccupancy int `json:"max_occupancy"`
}

type BedView struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type PricingView struct {
	BasePrice         int64              `json:"base_price"`
	SeasonalRates     []SeasonalRateView `json:"seasonal_rates"`
	WeekendSurcharge  int64              `json:"weekend_surcharge"`
	HolidaySurcharge  int64              `json:"holiday_surcharge"`
	ExtraPersonCharge int64              `json:"extra_person_charge"`
}

type SeasonalRateView struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Price     int64     `json:"price"`
}

type MaintenanceWindowView struct {
	ID     uuid.UUID `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Reason string    `json:"reason"`
}

// AvailabilityView answers whether one room is free and, if not, why.
type AvailabilityView struct {
	RoomID    uuid.UUID     `json:"room_id"`
	CheckIn   time.Time     `json:"check_in"`
	CheckOut  time.Time     `json:"check_out"`
	Free      bool          `json:"free"`
	Conflicts []BlockerView `json:"conflicts"`
}

type BlockerView struct {
	Kind  string    `json:"kind"`
	ID    uuid.UUID `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type OccupancyView struct {
	RoomID            uuid.UUID       `json:"room_id"`
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
	Nights            int             `json:"nights"`
	BookedNights      int             `json:"booked_nights"`
	MaintenanceNights int             `json:"maintenance_nights"`
	OccupancyRate     decimal.Decimal `json:"occupancy_rate"`
}

type QuoteView struct {
	RoomID           uuid.UUID       `json:"room_id"`
	CheckIn          time.Time       `json:"check_in"`
	CheckOut         time.Time       `json:"check_out"`
	Guests           int             `json:"guests"`
	Nights           int             `json:"nights"`
	PerNight         []NightLineView `json:"per_night"`
	NightsTotal      int64           `json:"nights_total"`
	ExtraGuests      int             `json:"extra_guests"`
	ExtraGuestCharge int64           `json:"extra_guest_charge"`
	Subtotal         int64           `json:"subtotal"`
	GST              int64           `json:"gst"`
	ServiceTax       int64           `json:"service_tax"`
	Tax              int64           `json:"tax"`
	Total            int64           `json:"total"`
}

type NightLineView struct {
	Date             time.Time `json:"date"`
	Base             int64     `json:"base"`
	Season           string    `json:"season,omitempty"`
	WeekendSurcharge int64     `json:"weekend_surcharge"`
	HolidaySurcharge int64     `json:"holiday_surcharge"`
	Amount           int64     `json:"amount"`
}

// OfferView represents read-optimized offer data. Status is the effective
// status at read time, so an elapsed offer reads as expired.
type OfferView struct {
	ID                   uuid.UUID     `json:"id"`
	HotelID              uuid.UUID     `json:"hotel_id"`
	Code                 string        `json:"code"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	DiscountType         string        `json:"discount_type"`
	DiscountValue        string        `json:"discount_value"`
	MaxDiscount          *int64        `json:"max_discount,omitempty"`
	FreeNights           *int          `json:"free_nights,omitempty"`
	MinimumStay          int           `json:"minimum_stay"`
	MaximumStay          *int          `json:"maximum_stay,omitempty"`
	MinimumRooms         int           `json:"minimum_rooms"`
	MinimumBookingAmount *int64        `json:"minimum_booking_amount,omitempty"`
	AdvanceBookingDays   *int          `json:"advance_booking_days,omitempty"`
	BlackoutDates        []time.Time   `json:"blackout_dates"`
	ApplicableRoomTypes  []string      `json:"applicable_room_types"`
	StartDate            time.Time     `json:"start_date"`
	EndDate              time.Time     `json:"end_date"`
	TotalBookings        *int          `json:"total_bookings,omitempty"`
	BookingsPerCustomer  int           `json:"bookings_per_customer"`
	CurrentBookings      int           `json:"current_bookings"`
	Status               string        `json:"status"`
	Analytics            AnalyticsView `json:"analytics"`
	ApprovedAt           *time.Time    `json:"approved_at,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

type AnalyticsView struct {
	OfferID             uuid.UUID       `json:"offer_id"`
	Views               int64           `json:"views"`
	Clicks              int64           `json:"clicks"`
	Bookings            int64           `json:"bookings"`
	Revenue             int64           `json:"revenue"`
	ConversionRate      decimal.Decimal `json:"conversion_rate"`
	AverageBookingValue int64           `json:"average_booking_value"`
}

type VerdictView struct {
	Applicable bool   `json:"applicable"`
	Reason     string `json:"reason,omitempty"`
	Code       string `json:"code,omitempty"`
}

type RedemptionView struct {
	ID         uuid.UUID  `json:"id"`
	OfferID    uuid.UUID  `json:"offer_id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   time.Time  `json:"check_out"`
	Original   int64      `json:"original"`
	Discount   int64      `json:"discount"`
	Final      int64      `json:"final"`
	RedeemedAt time.Time  `json:"redeemed_at"`
}

func NewRoomView(r *room.Room) *RoomView {
	c := r.Capacity()
	p := r.Pricing()

	beds := make([]BedView, 0, len(r.Beds()))
	for _, b := range r.Beds() {
		beds = append(beds, BedView{Type: b.Type, Count: b.Count})
	}
	rates := make([]SeasonalRateView, 0, len(p.SeasonalRates()))
	for _, s := range p.SeasonalRates() {
		rates = append(rates, SeasonalRateView{
			Name:      s.Name(),
			StartDate: s.Window().Start(),
			EndDate:   s.Window().End(),
			Price:     s.Price().Cents(),
		})
	}
	windows := make([]MaintenanceWindowView, 0, len(r.MaintenanceWindows()))
	for _, w := range r.MaintenanceWindows() {
		windows = append(windows, MaintenanceWindowView{
			ID:     w.ID(),
			Start:  w.Period().Start(),
			End:    w.Period().End(),
			Reason: w.Reason(),
		})
	}

	return &RoomView{
		ID:      r.ID(),
		HotelID: r.HotelID(),
		Number:  r.Number(),
		Type:    r.Type().String(),
		Capacity: CapacityView{
			Adults:       c.Adults(),
			Children:     c.Children(),
			Infants:      c.Infants(),
			MaxOccupancy: c.MaxOccupancy(),
		},
		Beds: beds,
		Pricing: PricingView{
			BasePrice:         p.BasePrice().Cents(),
			SeasonalRates:     rates,
			WeekendSurcharge:  p.WeekendSurcharge().Cents(),
			HolidaySurcharge:  p.HolidaySurcharge().Cents(),
			ExtraPersonCharge: p.ExtraPersonCharge().Cents(),
		},
		Status:             r.Status().String(),
		Housekeeping:       r.Housekeeping().String(),
		MaintenanceWindows: windows,
		ArchivedAt:         r.ArchivedAt(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

func NewAvailabilityView(roomID uuid.UUID, stay reservation.DateRange, a availability.Availability) *AvailabilityView {
	conflicts := make([]BlockerView, 0, len(a.Blockers))
	for _, b := range a.Blockers {
		conflicts = append(conflicts, BlockerView{
			Kind:  string(b.Kind),
			ID:    b.ID,
			Start: b.Period.Start(),
			End:   b.Period.End(),
		})
	}
	return &AvailabilityView{
		RoomID:    roomID,
		CheckIn:   stay.Start(),
		CheckOut:  stay.End(),
		Free:      a.Free,
		Conflicts: conflicts,
	}
}

func NewQuoteView(roomID uuid.UUID, stay reservation.DateRange, guests int, q pricing.Quote) *QuoteView {
	lines := make([]NightLineView, 0, len(q.PerNight))
	for _, n := range q.PerNight {
		lines = append(lines, NightLineView{
			Date:             n.Date,
			Base:             n.Base.Cents(),
			Season:           n.Season,
			WeekendSurcharge: n.WeekendSurcharge.Cents(),
			HolidaySurcharge: n.HolidaySurcharge.Cents(),
			Amount:           n.Amount.Cents(),
		})
	}
	return &QuoteView{
		RoomID:           roomID,
		CheckIn:          stay.Start(),
		CheckOut:         stay.End(),
		Guests:           guests,
		Nights:           q.Nights,
		PerNight:         lines,
		NightsTotal:      q.NightsTotal.Cents(),
		ExtraGuests:      q.ExtraGuests,
		ExtraGuestCharge: q.ExtraGuestCharge.Cents(),
		Subtotal:         q.Subtotal.Cents(),
		GST:              q.Taxes.GST.Cents(),
		ServiceTax:       q.Taxes.ServiceTax.Cents(),
		Tax:              q.Tax.Cents(),
		Total:            q.Total.Cents(),
	}
}

func NewOfferView(o *offer.Offer, now time.Time) *OfferView {
	d := o.Discount()
	c := o.Conditions()
	u := o.Usage()

	var maxDiscount, minAmount *int64
	if m := d.MaxDiscount(); m != nil {
		v := m.Cents()
		maxDiscount = &v
	}
	if m := c.MinimumBookingAmount; m != nil {
		v := m.Cents()
		minAmount = &v
	}
	blackout := c.BlackoutDates
	if blackout == nil {
		blackout = []time.Time{}
	}
	roomTypes := c.ApplicableRoomTypes
	if roomTypes == nil {
		roomTypes = []string{}
	}

	return &OfferView{
		ID:                   o.ID(),
		HotelID:              o.HotelID(),
		Code:                 o.Code().String(),
		Title:                o.Title(),
		Description:          o.Description(),
		DiscountType:         string(d.Type()),
		DiscountValue:        d.Value().String(),
		MaxDiscount:          maxDiscount,
		FreeNights:           d.FreeNights(),
		MinimumStay:          c.MinimumStay,
		MaximumStay:          c.MaximumStay,
		MinimumRooms:         c.MinimumRooms,
		MinimumBookingAmount: minAmount,
		AdvanceBookingDays:   c.AdvanceBookingDays,
		BlackoutDates:        blackout,
		ApplicableRoomTypes:  roomTypes,
		StartDate:            o.Validity().Start(),
		EndDate:              o.Validity().End(),
		TotalBookings:        u.TotalBookings(),
		BookingsPerCustomer:  u.BookingsPerCustomer(),
		CurrentBookings:      u.CurrentBookings(),
		Status:               o.EffectiveStatus(now).String(),
		Analytics:            *NewAnalyticsView(o),
		ApprovedAt:           o.ApprovedAt(),
		CreatedAt:            o.CreatedAt(),
		UpdatedAt:            o.UpdatedAt(),
	}
}

func NewAnalyticsView(o *offer.Offer) *AnalyticsView {
	a := o.Analytics()
	return &AnalyticsView{
		OfferID:             o.ID(),
		Views:               a.Views(),
		Clicks:              a.Clicks(),
		Bookings:            a.Bookings(),
		Revenue:             a.Revenue().Cents(),
		ConversionRate:      a.ConversionRate(),
		AverageBookingValue: a.AverageBookingValue().Cents(),
	}
}

func NewVerdictView(v offer.Verdict) *VerdictView {
	return &VerdictView{
		Applicable: v.Applicable,
		Reason:     v.Reason,
		Code:       string(v.Code),
	}
}

func NewRedemptionView(r offer.Redemption) *RedemptionView {
	return &RedemptionView{
		ID:         r.ID(),
		OfferID:    r.OfferID(),
		CustomerID: r.CustomerID(),
		BookingID:  r.BookingID(),
		CheckIn:    r.Stay().Start(),
		CheckOut:   r.Stay().End(),
		Original:   r.Original().Cents(),
		Discount:   r.Discount().Cents(),
		Final:      r.Final().Cents(),
		RedeemedAt: r.RedeemedAt(),
	}
}
