package shared

import (
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/errs"
)

// TranslateRepoErr maps a repository error onto the error taxonomy.
// notFound is returned for KindNotFound. Non-repository errors that already
// carry a taxonomy kind pass through untouched.
func TranslateRepoErr(err error, notFound error) error {
	if err == nil {
		return nil
	}

	kind, ok := infra.KindOf(err)
	if !ok {
		if errs.KindOf(err) != nil {
			return err
		}
		return errs.Infrastructure("storage unavailable", err)
	}
	switch kind {
	case infra.KindNotFound:
		if notFound != nil {
			return notFound
		}
		return errs.NotFound("resource not found")
	case infra.KindExclusionViolated:
		return errs.ErrRoomUnavailable
	case infra.KindLimitReached:
		return errs.Tagged(errs.ErrLimitExceeded, errs.ErrOfferLimitReached, "Offer usage limit reached")
	case infra.KindDuplicateKey:
		return errs.Conflict("resource already exists")
	case infra.KindForeignKeyViolated:
		return errs.Validation("referenced resource does not exist")
	default:
		return errs.Infrastructure("storage unavailable", err)
	}
}
