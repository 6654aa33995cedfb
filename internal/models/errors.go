package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for request validation.
var (
	ErrMissingGuestName = errors.New("guestName is required")
	ErrMissingHotelName = errors.New("hotelName is required")
	ErrMissingDates     = errors.New("check-in and check-out dates are required")
)

// Sentinel errors for reservation date and state rules.
var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
	ErrCheckInNotFuture        = errors.New("check-in must be in the future")
	ErrCheckOutNotFuture       = errors.New("check-out must be in the future")
	ErrReservationCanceled     = errors.New("cannot update a canceled reservation")
)

// ErrReservationNotFound is returned when a reservation ID does not exist.
var ErrReservationNotFound = errors.New("reservation not found")

// ValidationError marks a rejected input. Handlers map it to HTTP 400 and
// surface Error() to the caller verbatim.
type ValidationError struct {
	Err error
}

// NewValidationError wraps err as a ValidationError.
func NewValidationError(err error) *ValidationError {
	return &ValidationError{Err: err}
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
