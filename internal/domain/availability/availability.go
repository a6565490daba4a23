package availability

import (
	"sort"
	"time"

	"hotel-booking-engine/internal/domain/reservation"
	"hotel-booking-engine/internal/domain/room"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BlockerKind string

const (
	BlockerReservation BlockerKind = "reservation"
	BlockerMaintenance BlockerKind = "maintenance"
)

// Blocker is one interval that prevents the requested stay.
type Blocker struct {
	Kind   BlockerKind
	ID     uuid.UUID
	Period reservation.DateRange
}

type Availability struct {
	Free     bool
	Blockers []Blocker
}

// Evaluate checks the requested stay against the room's intervals.
// Cancelled reservations never block.
func Evaluate(requested reservation.DateRange, reservations []*reservation.Reservation, windows []room.MaintenanceWindow) Availability {
	var blockers []Blocker
	for _, r := range reservations {
		if r.Conflicts(requested) {
			blockers = append(blockers, Blocker{Kind: BlockerReservation, ID: r.ID(), Period: r.Stay()})
		}
	}
	for _, w := range windows {
		if w.Period().Overlaps(requested) {
			blockers = append(blockers, Blocker{Kind: BlockerMaintenance, ID: w.ID(), Period: w.Period()})
		}
	}
	sort.SliceStable(blockers, func(i, j int) bool {
		return blockers[i].Period.Start().Before(blockers[j].Period.Start())
	})
	return Availability{Free: len(blockers) == 0, Blockers: blockers}
}

type Occupancy struct {
	Nights            int
	BookedNights      int
	MaintenanceNights int
	Rate              decimal.Decimal
}

// Snapshot counts, per night of period, whether the room was booked or under
// maintenance. Rate is booked nights over total nights.
func Snapshot(period reservation.DateRange, reservations []*reservation.Reservation, windows []room.MaintenanceWindow) Occupancy {
	occ := Occupancy{Nights: period.Nights(), Rate: decimal.Zero}
	for _, night := range period.Dates() {
		if bookedOn(night, reservations) {
			occ.BookedNights++
		} else if underMaintenanceOn(night, windows) {
			occ.MaintenanceNights++
		}
	}
	if occ.Nights > 0 {
		occ.Rate = decimal.NewFromInt(int64(occ.BookedNights)).
			Div(decimal.NewFromInt(int64(occ.Nights))).
			Round(4)
	}
	return occ
}

func bookedOn(night time.Time, reservations []*reservation.Reservation) bool {
	for _, r := range reservations {
		if r.IsActive() && r.Stay().Contains(night) {
			return true
		}
	}
	return false
}

func underMaintenanceOn(night time.Time, windows []room.MaintenanceWindow) bool {
	for _, w := range windows {
		if w.Period().Contains(night) {
			return true
		}
	}
	return false
}
