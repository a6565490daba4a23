package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// reasonError carries a user-facing reason and the taxonomy kind it belongs to.
// tag optionally names the specific sentinel as well.
type reasonError struct {
	kind   error
	tag    error
	reason string
	cause  error
}

func (e *reasonError) Error() string {
	return e.reason
}

func (e *reasonError) Is(target error) bool {
	return target == e.kind || (e.tag != nil && target == e.tag)
}

func (e *reasonError) Unwrap() error {
	return e.cause
}

func withReason(kind error, reason string, cause error) error {
	return cr.WithStackDepth(&reasonError{kind: kind, reason: reason, cause: cause}, 2)
}

// Tagged builds a reasoned error that matches both kind and tag with errors.Is.
func Tagged(kind, tag error, reason string) error {
	return cr.WithStackDepth(&reasonError{kind: kind, tag: tag, reason: reason}, 1)
}

func Validation(reason string) error {
	return withReason(ErrValidation, reason, nil)
}

func Validationf(format string, args ...any) error {
	return withReason(ErrValidation, fmt.Sprintf(format, args...), nil)
}

func NotFound(reason string) error {
	return withReason(ErrNotFound, reason, nil)
}

func Conflict(reason string) error {
	return withReason(ErrConflict, reason, nil)
}

func Conflictf(format string, args ...any) error {
	return withReason(ErrConflict, fmt.Sprintf(format, args...), nil)
}

func LimitExceeded(reason string) error {
	return withReason(ErrLimitExceeded, reason, nil)
}

func Infrastructure(reason string, cause error) error {
	return withReason(ErrInfrastructure, reason, cause)
}

// Reason returns the first user-facing reason attached anywhere in the chain.
func Reason(err error) string {
	var re *reasonError
	if errors.As(err, &re) {
		return re.reason
	}
	return ""
}

// KindOf reports which taxonomy kind err belongs to, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrLimitExceeded, ErrInfrastructure} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
