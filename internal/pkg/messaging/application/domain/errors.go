package messaging

import "errors"

// Domain-level errors for messaging behaviors
var (
	// ErrInvalidArity is returned when a direct conversation would not end up
	// with exactly two distinct participants.
	ErrInvalidArity = errors.New("messaging: direct conversation requires exactly 2 distinct participants")
	ErrEmptyContent   = errors.New("messaging: message content is empty")
	ErrContentTooLong = errors.New("messaging: message content exceeds the maximum length")
)
