package header

import (
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"
)

// IfModifiedSince represents the If-Modified-Since request header field (RFC 9110 Section 13.1.3).
type IfModifiedSince struct {
	time.Time
}

// ParseIfModifiedSince parses the If-Modified-Since field. It must arrive on exactly one line.
func ParseIfModifiedSince(raw Raw) (*IfModifiedSince, error) {
	t, err := parseDateRaw(raw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &IfModifiedSince{t}, nil
}

func (*IfModifiedSince) CanonicName() Name { return "If-Modified-Since" }

func (hdr *IfModifiedSince) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHeader(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *IfModifiedSince) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderDateValue(w, hdr.Time))
}

func (hdr *IfModifiedSince) Render() string {
	if hdr == nil {
		return ""
	}
	return renderHeaderString(hdr)
}

func (hdr *IfModifiedSince) String() string { return hdr.RenderValue() }

func (hdr *IfModifiedSince) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderValueString(hdr.renderValueTo)
}

func (hdr *IfModifiedSince) Format(f fmt.State, verb rune) {
	if formatDateHeader(hdr, f, verb) {
		return
	}
	type hideMethods IfModifiedSince
	type IfModifiedSince hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*IfModifiedSince)(hdr))
}

func (hdr *IfModifiedSince) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

func (hdr *IfModifiedSince) Equal(val any) bool {
	var other *IfModifiedSince
	switch v := val.(type) {
	case IfModifiedSince:
		other = &v
	case *IfModifiedSince:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return equalDates(hdr.Time, other.Time)
}

func (hdr *IfModifiedSince) IsValid() bool { return hdr != nil && !hdr.IsZero() }

func (hdr *IfModifiedSince) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *IfModifiedSince) UnmarshalJSON(data []byte) error {
	var h *IfModifiedSince
	if err := unmarshalHeaderJSON(data, &h); err != nil {
		*hdr = IfModifiedSince{}
		return errtrace.Wrap(err)
	}
	if h == nil {
		*hdr = IfModifiedSince{}
		return nil
	}
	*hdr = *h
	return nil
}

// ModifiedSince reports whether a representation last modified at t has changed
// after the time given by the header. The comparison uses whole seconds, as the wire format does.
// A nil header reports true, so an unconditional request always gets the full response.
func (hdr *IfModifiedSince) ModifiedSince(t time.Time) bool {
	if hdr == nil {
		return true
	}
	return t.Truncate(time.Second).After(hdr.Truncate(time.Second))
}
