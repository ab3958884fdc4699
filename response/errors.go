package response

import "github.com/ghettovoice/httphead/internal/errorutil"

const (
	// ErrIO is returned when the underlying connection fails to accept bytes, flush or half-close.
	// The original error is wrapped and can be inspected with errors.Is and errors.As.
	ErrIO errorutil.Error = "response i/o failure"
	// ErrInvalidStateTransition is returned when a response is used in a state that doesn't permit
	// the operation: modifying the head after it was sent, or writing after the response ended.
	ErrInvalidStateTransition errorutil.Error = "invalid response state transition"
)
