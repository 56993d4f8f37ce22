package domain

import "errors"

// Typed failures the handlers translate into user-facing messages.
// Punch sequence anomalies are intentionally not errors: they are stored
// and surfaced on the event itself.
var (
	// ErrInvalidTimestamp is returned for future-dated punch events.
	ErrInvalidTimestamp = errors.New("punch timestamp is in the future")

	// ErrInvalidAction is returned for unknown punch actions, or for
	// out-of-sequence punches when strict sequencing is enabled.
	ErrInvalidAction = errors.New("invalid punch action")

	// ErrLeaveConflict is returned when a leave request overlaps an
	// already approved leave for the same user.
	ErrLeaveConflict = errors.New("leave overlaps an approved leave")

	// ErrLeaveNotCancellable is returned when cancelling a leave that
	// has already started.
	ErrLeaveNotCancellable = errors.New("leave already started and cannot be cancelled")

	// ErrNotFound is returned when a referenced user or record does not exist.
	ErrNotFound = errors.New("record not found")
)
