package header

import (
	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
)

// Header parsing errors.
// All of them satisfy errorutil.IsGrammarErr, so callers can tell a bad field value
// from a failed write or a misuse of a response.
const (
	// ErrMissingValue is returned when a field is present but carries no content.
	ErrMissingValue grammar.Error = "missing header value"
	// ErrMalformedDirective is returned when a directive list element violates the list grammar.
	ErrMalformedDirective grammar.Error = "malformed directive"
	// ErrConflictingDirective is returned when a directive that may appear only once repeats.
	ErrConflictingDirective grammar.Error = "conflicting directive"
	// ErrWrongLineCount is returned when a single-line field arrived on several lines.
	ErrWrongLineCount grammar.Error = "wrong header line count"
	// ErrMalformedValue is returned when a single-value field can't be converted to its type.
	ErrMalformedValue grammar.Error = "malformed header value"
	// ErrMalformedField is returned when a field line is not a "name: value" pair.
	ErrMalformedField grammar.Error = "malformed header field"
)

// ErrHeaderNotFound is returned when a requested field is absent from a collection.
const ErrHeaderNotFound errorutil.Error = "header not found"

var errNotHeaderJSON errorutil.Error = "not a header JSON"
