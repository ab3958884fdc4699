package header

import (
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"
)

// LastModified represents the Last-Modified header field (RFC 9110 Section 8.8.2).
type LastModified struct {
	time.Time
}

// ParseLastModified parses the Last-Modified field. It must arrive on exactly one line.
func ParseLastModified(raw Raw) (*LastModified, error) {
	t, err := parseDateRaw(raw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &LastModified{t}, nil
}

func (*LastModified) CanonicName() Name { return "Last-Modified" }

func (hdr *LastModified) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHeader(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *LastModified) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderDateValue(w, hdr.Time))
}

func (hdr *LastModified) Render() string {
	if hdr == nil {
		return ""
	}
	return renderHeaderString(hdr)
}

func (hdr *LastModified) String() string { return hdr.RenderValue() }

func (hdr *LastModified) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderValueString(hdr.renderValueTo)
}

func (hdr *LastModified) Format(f fmt.State, verb rune) {
	if formatDateHeader(hdr, f, verb) {
		return
	}
	type hideMethods LastModified
	type LastModified hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*LastModified)(hdr))
}

func (hdr *LastModified) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

func (hdr *LastModified) Equal(val any) bool {
	var other *LastModified
	switch v := val.(type) {
	case LastModified:
		other = &v
	case *LastModified:
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

func (hdr *LastModified) IsValid() bool { return hdr != nil && !hdr.IsZero() }

func (hdr *LastModified) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *LastModified) UnmarshalJSON(data []byte) error {
	var h *LastModified
	if err := unmarshalHeaderJSON(data, &h); err != nil {
		*hdr = LastModified{}
		return errtrace.Wrap(err)
	}
	if h == nil {
		*hdr = LastModified{}
		return nil
	}
	*hdr = *h
	return nil
}
