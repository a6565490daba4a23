package errs

import "errors"

// Error taxonomy shared by every layer. Domain and usecase errors are matched
// against these with errors.Is; the specific reason travels with Reason.
var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrLimitExceeded  = errors.New("limit exceeded")
	ErrInfrastructure = errors.New("infrastructure error")
)

var (
	// Lookup errors
	ErrRoomNotFound        = NotFound("room not found")
	ErrHotelNotFound       = NotFound("hotel not found")
	ErrReservationNotFound = NotFound("reservation not found")
	ErrOfferNotFound       = NotFound("offer not found")

	// Booking errors
	ErrRoomUnavailable = Conflict("room is not available for the requested dates")

	// Offer errors, marked onto the reasoned error carrying the failed check
	ErrOfferInapplicable  = errors.New("offer not applicable")
	ErrOfferLimitReached  = errors.New("offer usage limit reached")
	ErrOfferHotelMismatch = Conflict("offer belongs to a different hotel")
)
