package header

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/util"
)

const (
	hstsMaxAge            = "max-age"
	hstsIncludeSubdomains = "includeSubdomains"
)

// StrictTransportSecurity represents the Strict-Transport-Security header field (RFC 6797 Section 6.1).
type StrictTransportSecurity struct {
	MaxAge            uint64
	IncludeSubdomains bool
}

// ParseStrictTransportSecurity parses the Strict-Transport-Security field.
//
// The field must arrive on exactly one line. Directives are separated by ";" and
// matched case-insensitively, unknown ones are ignored. The max-age directive is required,
// a repeated max-age or includeSubdomains fails with [ErrConflictingDirective].
func ParseStrictTransportSecurity(raw Raw) (*StrictTransportSecurity, error) {
	line, err := raw.One()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if grammar.TrimOWS(line) == "" {
		return nil, errtrace.Wrap(ErrMissingValue)
	}

	var (
		hdr   StrictTransportSecurity
		slots = make(slotSet, 2)
	)
	for _, seg := range grammar.SplitList(line, ';') {
		if util.EqFold(seg, hstsIncludeSubdomains) {
			if err := slots.claim(hstsIncludeSubdomains); err != nil {
				return nil, errtrace.Wrap(err)
			}
			hdr.IncludeSubdomains = true
			continue
		}

		name, val, ok := strings.Cut(seg, "=")
		if !ok || !util.EqFold(grammar.TrimOWS(name), hstsMaxAge) {
			continue
		}
		if err := slots.claim(hstsMaxAge); err != nil {
			return nil, errtrace.Wrap(err)
		}
		val = grammar.Unquote(grammar.TrimOWS(val))
		if hdr.MaxAge, err = strconv.ParseUint(val, 10, 64); err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedDirective, "invalid max-age value %q: %v", val, err))
		}
	}

	if !slots.has(hstsMaxAge) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedDirective, "missing max-age"))
	}
	return &hdr, nil
}

// CanonicName returns the canonical name of the header.
func (*StrictTransportSecurity) CanonicName() Name { return "Strict-Transport-Security" }

// RenderTo writes the header to the provided writer.
func (hdr *StrictTransportSecurity) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHeader(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *StrictTransportSecurity) renderValueTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hstsMaxAge, "=", hdr.MaxAge)
	if hdr.IncludeSubdomains {
		cw.Fprint("; ", hstsIncludeSubdomains)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the header.
func (hdr *StrictTransportSecurity) Render() string {
	if hdr == nil {
		return ""
	}
	return renderHeaderString(hdr)
}

// RenderValue returns "max-age=N" optionally followed by "; includeSubdomains".
func (hdr *StrictTransportSecurity) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderValueString(hdr.renderValueTo)
}

// String returns the string representation of the header value.
func (hdr *StrictTransportSecurity) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *StrictTransportSecurity) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			hdr.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Render()))
			return
		}
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods StrictTransportSecurity
		type StrictTransportSecurity hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*StrictTransportSecurity)(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr *StrictTransportSecurity) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *StrictTransportSecurity) Equal(val any) bool {
	var other *StrictTransportSecurity
	switch v := val.(type) {
	case StrictTransportSecurity:
		other = &v
	case *StrictTransportSecurity:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return *hdr == *other
}

// IsValid checks whether the header is syntactically valid.
func (hdr *StrictTransportSecurity) IsValid() bool { return hdr != nil }

func (hdr *StrictTransportSecurity) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *StrictTransportSecurity) UnmarshalJSON(data []byte) error {
	var h *StrictTransportSecurity
	if err := unmarshalHeaderJSON(data, &h); err != nil || h == nil {
		*hdr = StrictTransportSecurity{}
		return errtrace.Wrap(err)
	}
	*hdr = *h
	return nil
}
