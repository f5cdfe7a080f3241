package booking

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a booking failure for the transport layer.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindInternal   ErrorKind = "internal"
)

// Error is returned by every BookingService operation that fails.
type Error struct {
	Kind    ErrorKind
	Message string
	// Missing lists absent request fields for presence failures.
	Missing []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newValidationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func newConflictError(err error) error {
	return &Error{Kind: KindConflict, Message: "This time slot is already reserved", Err: err}
}

func newInternalError(err error) error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf reports the kind of err; errors that are not *Error count as internal.
func KindOf(err error) ErrorKind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}
