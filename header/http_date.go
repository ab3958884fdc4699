package header

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
)

// Accepted HTTP-date layouts (RFC 9110 Section 5.6.7), the preferred one goes first.
var httpDateLayouts = []string{
	http.TimeFormat,
	time.RFC850,
	time.ANSIC,
}

// ParseHTTPDate parses an HTTP-date in IMF-fixdate, RFC 850 or asctime format.
// The result is in UTC.
func ParseHTTPDate(s string) (time.Time, error) {
	s = grammar.TrimOWS(s)
	for _, layout := range httpDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedValue, "invalid HTTP-date %q", s))
}

// FormatHTTPDate formats t as an IMF-fixdate.
func FormatHTTPDate(t time.Time) string { return t.UTC().Format(http.TimeFormat) }

// parseDateRaw extracts the HTTP-date of a single-line field.
func parseDateRaw(raw Raw) (time.Time, error) {
	line, err := raw.One()
	if err != nil {
		return time.Time{}, errtrace.Wrap(err)
	}
	if grammar.TrimOWS(line) == "" {
		return time.Time{}, errtrace.Wrap(ErrMissingValue)
	}
	return errtrace.Wrap2(ParseHTTPDate(line))
}

type dateHeader interface {
	Header
	fmt.Stringer
}

func renderDateValue(w io.Writer, t time.Time) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, FormatHTTPDate(t)))
}

func formatDateHeader(hdr dateHeader, f fmt.State, verb rune) bool {
	switch verb {
	case 's':
		if f.Flag('+') {
			hdr.RenderTo(f) //nolint:errcheck
			return true
		}
		fmt.Fprint(f, hdr.String())
		return true
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Render()))
			return true
		}
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return true
	default:
		return false
	}
}

// equalDates compares second-resolution timestamps, since that is all the wire format keeps.
func equalDates(t1, t2 time.Time) bool {
	return t1.Truncate(time.Second).Equal(t2.Truncate(time.Second))
}
