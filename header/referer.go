package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/grammar"
)

// Referer represents the Referer request header field (RFC 9110 Section 10.1.3).
// The value is kept as an opaque URI reference.
type Referer string

// ParseReferer parses the Referer field. It must arrive on exactly one line.
func ParseReferer(raw Raw) (Referer, error) {
	line, err := raw.One()
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	line = grammar.TrimOWS(line)
	if line == "" {
		return "", errtrace.Wrap(ErrMissingValue)
	}
	return Referer(line), nil
}

// CanonicName returns the canonical name of the header.
func (Referer) CanonicName() Name { return "Referer" }

// RenderTo writes the header to the provided writer.
func (hdr Referer) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(fmt.Fprint(w, hdr.CanonicName(), ": ", hdr.RenderValue()))
}

// Render returns the string representation of the header.
func (hdr Referer) Render() string { return renderHeaderString(hdr) }

// RenderValue returns the header value without the name prefix.
func (hdr Referer) RenderValue() string { return string(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Referer) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			hdr.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, string(hdr))
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Render()))
			return
		}
		fmt.Fprint(f, strconv.Quote(string(hdr)))
		return
	default:
		type hideMethods Referer
		type Referer hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Referer(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr Referer) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr Referer) Equal(val any) bool {
	var other Referer
	switch v := val.(type) {
	case Referer:
		other = v
	case *Referer:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr == other
}

// IsValid checks whether the header is syntactically valid.
func (hdr Referer) IsValid() bool {
	return hdr != "" && grammar.TrimOWS(hdr) == hdr && !grammar.HasCtl(hdr)
}

func (hdr Referer) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Referer) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalHeaderJSON(data, hdr))
}
