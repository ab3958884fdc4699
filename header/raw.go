package header

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
)

// Raw holds the physical lines of one logical header field in arrival order.
// A field repeated in a message contributes one line per occurrence.
type Raw []string

// NewRaw creates a Raw from the given lines.
func NewRaw[T ~string | ~[]byte](lines ...T) Raw {
	raw := make(Raw, len(lines))
	for i := range lines {
		raw[i] = string(lines[i])
	}
	return raw
}

// Len returns the number of physical lines.
func (raw Raw) Len() int { return len(raw) }

// One returns the only line of raw.
// It fails with [ErrWrongLineCount] unless raw has exactly one line.
func (raw Raw) One() (string, error) {
	if len(raw) != 1 {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrWrongLineCount, "got %d lines, want 1", len(raw)))
	}
	return raw[0], nil
}

// Join merges all lines into a single comma-separated list value.
func (raw Raw) Join() string { return strings.Join(raw, ", ") }

// Clone returns a copy of raw.
func (raw Raw) Clone() Raw { return slices.Clone(raw) }

// Equal compares raw with another Raw line by line.
func (raw Raw) Equal(val any) bool {
	var other Raw
	switch v := val.(type) {
	case Raw:
		other = v
	case *Raw:
		if v == nil {
			return false
		}
		other = *v
	case []string:
		other = v
	default:
		return false
	}
	return slices.Equal(raw, other)
}

// IsValid reports whether raw has at least one line and no line can break the message framing.
func (raw Raw) IsValid() bool {
	return len(raw) > 0 && !slices.ContainsFunc(raw, grammar.HasCtl[string])
}
