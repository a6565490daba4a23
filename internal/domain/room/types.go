package room

import "strings"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusOutOfOrder  Status = "out-of-order"
	StatusReserved    Status = "reserved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusOutOfOrder, StatusReserved:
		return true
	default:
		return false
	}
}

type Housekeeping string

const (
	HousekeepingClean      Housekeeping = "clean"
	HousekeepingDirty      Housekeeping = "dirty"
	HousekeepingOutOfOrder Housekeeping = "out-of-order"
)

func (h Housekeeping) String() string {
	return string(h)
}

func (h Housekeeping) IsValid() bool {
	switch h {
	case HousekeepingClean, HousekeepingDirty, HousekeepingOutOfOrder:
		return true
	default:
		return false
	}
}

// Type is a hotel-defined room category such as "deluxe" or "suite".
type Type string

func NewType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrEmptyRoomType
	}
	if len(s) > MaxRoomTypeLength {
		return "", ErrRoomTypeTooLong
	}
	return Type(s), nil
}

func (t Type) String() string {
	return string(t)
}

// Matches compares room types case-insensitively.
func (t Type) Matches(other string) bool {
	return strings.EqualFold(string(t), strings.TrimSpace(other))
}
