package services

import (
	"errors"
	"fmt"
)

// Business outcomes reported synchronously to the caller. Controllers match
// these with errors.Is and pick the HTTP status; nothing here is retried
// automatically. Storage faults are wrapped with %w around the driver error
// instead and surface as plain 500s.
var (
	ErrRoomNotFound      = errors.New("room_not_found")
	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrOccupancyNotFound = errors.New("occupancy_not_found")
	ErrBillNotFound      = errors.New("bill_not_found")

	// ErrRoomUnavailable means the caller lost the race for the room, or the
	// room was manually marked Occupied. The front desk picks another room.
	ErrRoomUnavailable = errors.New("room_unavailable")

	ErrRoomTypeMismatch = errors.New("room_type_mismatch")

	ErrBookingAlreadyCompleted = errors.New("booking_already_completed")
	ErrAlreadyCheckedOut       = errors.New("already_checked_out")

	ErrRoomNumberTaken = errors.New("room_number_taken")

	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
)

// ErrValidation marks caller mistakes: malformed or missing input.
var ErrValidation = errors.New("validation")

// validationf builds a validation error with a human-readable reason that
// still matches errors.Is(err, ErrValidation).
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
