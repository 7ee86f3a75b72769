package scheduler

import "errors"

var (
	// ErrSlotUnavailable means the requested slot was taken between
	// listing and commit. The caller may re-list and pick another slot.
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrNotFound covers missing bookings and mentors with no matching
	// availability window.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the acting user is not allowed to perform the
	// requested status change.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition means the target status is not reachable from
	// the booking's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError reports malformed input: bad dates, bad clock strings,
// missing ids. Never retryable.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}
