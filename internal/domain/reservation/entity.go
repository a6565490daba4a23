package reservation

import (
	"time"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationCancelled = errs.Conflict("reservation is already cancelled")
	ErrReservationCompleted = errs.Conflict("reservation is already completed")
	ErrInvalidTransition    = errs.Conflict("invalid reservation status transition")
	ErrMissingRoom          = errs.Validation("roomId is required")
	ErrMissingBooking       = errs.Validation("bookingId is required")
)

// Reservation is the interval a booking holds on one room.
type Reservation struct {
	id        uuid.UUID
	roomID    uuid.UUID
	bookingID uuid.UUID
	stay      DateRange
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(roomID, bookingID uuid.UUID, stay DateRange, now time.Time) (*Reservation, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if bookingID == uuid.Nil {
		return nil, ErrMissingBooking
	}
	if stay.Nights() <= 0 {
		return nil, ErrInvalidDateRange
	}

	return &Reservation{
		id:        uuid.New(),
		roomID:    roomID,
		bookingID: bookingID,
		stay:      stay,
		status:    StatusConfirmed,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, roomID, bookingID uuid.UUID,
	stay DateRange,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		bookingID: bookingID,
		stay:      stay,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) Cancel(now time.Time) error {
	switch r.status {
	case StatusCancelled:
		return ErrReservationCancelled
	case StatusCompleted:
		return ErrReservationCompleted
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) MarkCheckedIn(now time.Time) error {
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	r.status = StatusCheckedIn
	r.updatedAt = now
	return nil
}

func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusCheckedIn {
		return ErrInvalidTransition
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.Blocks()
}

func (r *Reservation) Conflicts(stay DateRange) bool {
	return r.IsActive() && r.stay.Overlaps(stay)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) BookingID() uuid.UUID { return r.bookingID }
func (r *Reservation) Stay() DateRange      { return r.stay }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
