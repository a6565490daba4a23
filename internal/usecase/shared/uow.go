package shared

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/hotel"
	"hotel-booking-engine/internal/domain/offer"
	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Offers() OfferRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	HotelPolicy(ctx context.Context, hotelID uuid.UUID) (*hotel.Policy, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*room.Room, error)
	SaveState(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error
	SavePricing(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error
	AddMaintenanceWindow(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, w room.MaintenanceWindow, now time.Time) error
	RemoveMaintenanceWindow(ctx context.Context, tx sqlc.DBTX, roomID, windowID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	SaveStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	ListBlocking(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, stay reservation.DateRange) ([]*reservation.Reservation, error)
}

type OfferRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*offer.Offer, error)
	SaveStatus(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error
	CountCustomerRedemptions(ctx context.Context, tx sqlc.DBTX, offerID, customerID uuid.UUID) (int, error)
	RecordRedemptions(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error
	IncrementViews(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	IncrementClicks(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}
