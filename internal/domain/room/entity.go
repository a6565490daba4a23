package room

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber      = errs.Validation("room number cannot be empty")
	ErrRoomNumberTooLong    = errs.Validation("room number is too long (max 32 characters)")
	ErrEmptyRoomType        = errs.Validation("room type cannot be empty")
	ErrRoomTypeTooLong      = errs.Validation("room type is too long (max 64 characters)")
	ErrMissingHotel         = errs.Validation("hotelId is required")
	ErrNegativeCapacity     = errs.Validation("capacity values cannot be negative")
	ErrInvalidMaxOccupancy  = errs.Validation("maxOccupancy must be greater than zero")
	ErrOccupancyBelowGuests = errs.Validation("maxOccupancy must be at least adults + children")
	ErrInvalidBed           = errs.Validation("bed type and a positive count are required")
	ErrInvalidSeasonWindow  = errs.Validation("seasonal window start must not be after its end")
	ErrNegativePrice        = errs.Validation("prices cannot be negative")
	ErrInvalidHousekeeping  = errs.Validation("invalid housekeeping status")

	ErrRoomArchived              = errs.Conflict("room is archived")
	ErrInvalidTransition         = errs.Conflict("invalid room status transition")
	ErrMaintenanceOverlap        = errs.Conflict("maintenance window overlaps an existing window")
	ErrMaintenanceWindowNotFound = errs.NotFound("maintenance window not found")
)

const (
	MaxRoomNumberLength = 32
	MaxRoomTypeLength   = 64
)

type Room struct {
	id                 uuid.UUID
	hotelID            uuid.UUID
	number             string
	roomType           Type
	capacity           Capacity
	beds               []Bed
	pricing            Pricing
	status             Status
	housekeeping       Housekeeping
	maintenanceWindows []MaintenanceWindow
	archivedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func NewRoom(
	hotelID uuid.UUID,
	number string,
	roomType Type,
	capacity Capacity,
	beds []Bed,
	pricing Pricing,
	now time.Time,
) (*Room, error) {
	if hotelID == uuid.Nil {
		return nil, ErrMissingHotel
	}
	number, err := validateNumber(number)
	if err != nil {
		return nil, err
	}
	if roomType == "" {
		return nil, ErrEmptyRoomType
	}

	return &Room{
		id:           uuid.New(),
		hotelID:      hotelID,
		number:       number,
		roomType:     roomType,
		capacity:     capacity,
		beds:         beds,
		pricing:      pricing,
		status:       StatusAvailable,
		housekeeping: HousekeepingClean,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructRoom(
	id, hotelID uuid.UUID,
	number string,
	roomType Type,
	capacity Capacity,
	beds []Bed,
	pricing Pricing,
	status Status,
	housekeeping Housekeeping,
	maintenanceWindows []MaintenanceWindow,
	archivedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:                 id,
		hotelID:            hotelID,
		number:             number,
		roomType:           roomType,
		capacity:           capacity,
		beds:               beds,
		pricing:            pricing,
		status:             status,
		housekeeping:       housekeeping,
		maintenanceWindows: maintenanceWindows,
		archivedAt:         archivedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func validateNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return "", ErrRoomNumberTooLong
	}
	return number, nil
}

func (r *Room) CheckIn(now time.Time) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if r.status != StatusAvailable && r.status != StatusReserved {
		return ErrInvalidTransition
	}
	r.status = StatusOccupied
	r.updatedAt = now
	return nil
}

func (r *Room) CheckOut(now time.Time) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if r.status != StatusOccupied {
		return ErrInvalidTransition
	}
	r.status = StatusAvailable
	r.housekeeping = HousekeepingDirty
	r.updatedAt = now
	return nil
}

func (r *Room) ScheduleMaintenance(period reservation.DateRange, reason string, now time.Time) (MaintenanceWindow, error) {
	if err := r.ensureActive(); err != nil {
		return MaintenanceWindow{}, err
	}
	for _, w := range r.maintenanceWindows {
		if w.period.Overlaps(period) {
			return MaintenanceWindow{}, ErrMaintenanceOverlap
		}
	}
	w := NewMaintenanceWindow(period, reason)
	r.maintenanceWindows = append(r.maintenanceWindows, w)
	r.updatedAt = now
	return w, nil
}

func (r *Room) CancelMaintenance(windowID uuid.UUID, now time.Time) error {
	for i, w := range r.maintenanceWindows {
		if w.id == windowID {
			r.maintenanceWindows = append(r.maintenanceWindows[:i:i], r.maintenanceWindows[i+1:]...)
			r.updatedAt = now
			return nil
		}
	}
	return ErrMaintenanceWindowNotFound
}

func (r *Room) StartMaintenance(now time.Time) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if r.status != StatusAvailable {
		return ErrInvalidTransition
	}
	r.status = StatusMaintenance
	r.updatedAt = now
	return nil
}

func (r *Room) EndMaintenance(now time.Time) error {
	if r.status != StatusMaintenance {
		return ErrInvalidTransition
	}
	r.status = StatusAvailable
	r.updatedAt = now
	return nil
}

func (r *Room) MarkOutOfOrder(now time.Time) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if r.status == StatusOccupied || r.status == StatusOutOfOrder {
		return ErrInvalidTransition
	}
	r.status = StatusOutOfOrder
	r.housekeeping = HousekeepingOutOfOrder
	r.updatedAt = now
	return nil
}

func (r *Room) RestoreService(now time.Time) error {
	if r.status != StatusOutOfOrder {
		return ErrInvalidTransition
	}
	r.status = StatusAvailable
	r.housekeeping = HousekeepingDirty
	r.updatedAt = now
	return nil
}

func (r *Room) SetHousekeeping(h Housekeeping, now time.Time) error {
	if !h.IsValid() {
		return ErrInvalidHousekeeping
	}
	if err := r.ensureActive(); err != nil {
		return err
	}
	r.housekeeping = h
	r.updatedAt = now
	return nil
}

func (r *Room) UpdatePricing(p Pricing, now time.Time) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	r.pricing = p
	r.updatedAt = now
	return nil
}

// Archive is the soft delete; rooms are never removed.
func (r *Room) Archive(now time.Time) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if r.status == StatusOccupied {
		return ErrInvalidTransition
	}
	r.archivedAt = &now
	r.updatedAt = now
	return nil
}

// CurrentNightlyRate is computed on read and never persisted.
func (r *Room) CurrentNightlyRate(date time.Time) reservation.Money {
	rate, _ := r.pricing.RateFor(date)
	if IsWeekend(date) {
		rate = rate.Add(r.pricing.weekendSurcharge)
	}
	return rate
}

func (r *Room) IsArchived() bool {
	return r.archivedAt != nil
}

// IsSellable reports whether the room may be offered for new stays.
func (r *Room) IsSellable() bool {
	return !r.IsArchived() && r.status != StatusOutOfOrder
}

func (r *Room) ensureActive() error {
	if r.IsArchived() {
		return ErrRoomArchived
	}
	return nil
}

func (r *Room) MaintenanceWindows() []MaintenanceWindow {
	out := make([]MaintenanceWindow, len(r.maintenanceWindows))
	copy(out, r.maintenanceWindows)
	return out
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) HotelID() uuid.UUID         { return r.hotelID }
func (r *Room) Number() string             { return r.number }
func (r *Room) Type() Type                 { return r.roomType }
func (r *Room) Capacity() Capacity         { return r.capacity }
func (r *Room) Beds() []Bed                { return r.beds }
func (r *Room) Pricing() Pricing           { return r.pricing }
func (r *Room) Status() Status             { return r.status }
func (r *Room) Housekeeping() Housekeeping { return r.housekeeping }
func (r *Room) ArchivedAt() *time.Time     { return r.archivedAt }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }
