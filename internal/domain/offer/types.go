package offer

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusExpired || s == StatusCancelled
}

type DiscountType string

const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixedAmount DiscountType = "fixed-amount"
	DiscountFreeNights  DiscountType = "free-nights"
	DiscountUpgrade     DiscountType = "upgrade"
	DiscountPackage     DiscountType = "package"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixedAmount, DiscountFreeNights, DiscountUpgrade, DiscountPackage:
		return true
	default:
		return false
	}
}

// ReasonCode identifies which eligibility check failed.
type ReasonCode string

const (
	ReasonNone           ReasonCode = ""
	ReasonNotActive      ReasonCode = "OFFER_NOT_ACTIVE"
	ReasonNotStarted     ReasonCode = "OFFER_NOT_STARTED"
	ReasonExpired        ReasonCode = "OFFER_EXPIRED"
	ReasonUsageLimit     ReasonCode = "USAGE_LIMIT_REACHED"
	ReasonMinimumStay    ReasonCode = "MINIMUM_STAY"
	ReasonMaximumStay    ReasonCode = "MAXIMUM_STAY"
	ReasonMinimumRooms   ReasonCode = "MINIMUM_ROOMS"
	ReasonMinimumAmount  ReasonCode = "MINIMUM_BOOKING_AMOUNT"
	ReasonAdvanceBooking ReasonCode = "ADVANCE_BOOKING"
	ReasonBlackoutDate   ReasonCode = "BLACKOUT_DATE"
	ReasonRoomType       ReasonCode = "ROOM_TYPE"
	ReasonCustomerLimit  ReasonCode = "CUSTOMER_LIMIT"
)

// IsLimit reports codes that mean a usage cap was hit.
func (c ReasonCode) IsLimit() bool {
	return c == ReasonUsageLimit || c == ReasonCustomerLimit
}
