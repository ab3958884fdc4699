package header

import (
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"
)

// Expires represents the Expires header field (RFC 9111 Section 5.3).
type Expires struct {
	time.Time
}

// ParseExpires parses the Expires field. It must arrive on exactly one line.
func ParseExpires(raw Raw) (*Expires, error) {
	t, err := parseDateRaw(raw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Expires{t}, nil
}

func (*Expires) CanonicName() Name { return "Expires" }

func (hdr *Expires) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHeader(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *Expires) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderDateValue(w, hdr.Time))
}

func (hdr *Expires) Render() string {
	if hdr == nil {
		return ""
	}
	return renderHeaderString(hdr)
}

func (hdr *Expires) String() string { return hdr.RenderValue() }

func (hdr *Expires) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderValueString(hdr.renderValueTo)
}

func (hdr *Expires) Format(f fmt.State, verb rune) {
	if formatDateHeader(hdr, f, verb) {
		return
	}
	type hideMethods Expires
	type Expires hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*Expires)(hdr))
}

func (hdr *Expires) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

func (hdr *Expires) Equal(val any) bool {
	var other *Expires
	switch v := val.(type) {
	case Expires:
		other = &v
	case *Expires:
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

func (hdr *Expires) IsValid() bool { return hdr != nil && !hdr.IsZero() }

func (hdr *Expires) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Expires) UnmarshalJSON(data []byte) error {
	var h *Expires
	if err := unmarshalHeaderJSON(data, &h); err != nil {
		*hdr = Expires{}
		return errtrace.Wrap(err)
	}
	if h == nil {
		*hdr = Expires{}
		return nil
	}
	*hdr = *h
	return nil
}

// IsExpired reports whether the response is stale at now.
// A nil or zero header means the response is already expired.
func (hdr *Expires) IsExpired(now time.Time) bool {
	if !hdr.IsValid() {
		return true
	}
	return !now.Truncate(time.Second).Before(hdr.Truncate(time.Second))
}
