package domain

import (
	"errors"
	"fmt"
)

// Stable error kinds callers can branch on. Handlers put these in the
// "code" field of error payloads; they never change once published.
const (
	KindUnknownBus      = "unknown_bus"
	KindInvalidSeat     = "invalid_seat"
	KindInvalidName     = "invalid_name"
	KindSeatUnavailable = "seat_unavailable"
	KindNotFound        = "not_found"
	KindValidation      = "validation_error"
	KindInternal        = "internal_error"
)

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// SeatUnavailableError reports a lost seat race. It carries the current
// available-seat list so callers can offer an alternative without a
// second round trip. Expected under concurrent booking, not a fault.
type SeatUnavailableError struct {
	Bus       string
	Seat      string
	Available []string
}

func (e SeatUnavailableError) Error() string {
	return fmt.Sprintf("seat %s is not available on %s", e.Seat, e.Bus)
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsSeatUnavailable(err error) bool {
	var target SeatUnavailableError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// Kind maps an error to its stable kind string.
func Kind(err error) string {
	var nf NotFoundError
	if errors.As(err, &nf) {
		if nf.Resource == "bus" {
			return KindUnknownBus
		}
		return KindNotFound
	}
	var ve ValidationError
	if errors.As(err, &ve) {
		switch ve.Field {
		case "seat":
			return KindInvalidSeat
		case "name":
			return KindInvalidName
		}
		return KindValidation
	}
	if IsSeatUnavailable(err) {
		return KindSeatUnavailable
	}
	return KindInternal
}
