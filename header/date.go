package header

import (
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"
)

// Date represents the Date header field, the moment the message was originated.
type Date struct {
	time.Time
}

// ParseDate parses the Date field. It must arrive on exactly one line.
func ParseDate(raw Raw) (*Date, error) {
	t, err := parseDateRaw(raw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Date{t}, nil
}

func (*Date) CanonicName() Name { return "Date" }

func (hdr *Date) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHeader(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr *Date) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderDateValue(w, hdr.Time))
}

func (hdr *Date) Render() string {
	if hdr == nil {
		return ""
	}
	return renderHeaderString(hdr)
}

func (hdr *Date) String() string { return hdr.RenderValue() }

func (hdr *Date) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return renderValueString(hdr.renderValueTo)
}

func (hdr *Date) Format(f fmt.State, verb rune) {
	if formatDateHeader(hdr, f, verb) {
		return
	}
	type hideMethods Date
	type Date hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*Date)(hdr))
}

func (hdr *Date) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

func (hdr *Date) Equal(val any) bool {
	var other *Date
	switch v := val.(type) {
	case Date:
		other = &v
	case *Date:
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

func (hdr *Date) IsValid() bool { return hdr != nil && !hdr.IsZero() }

func (hdr *Date) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Date) UnmarshalJSON(data []byte) error {
	var h *Date
	if err := unmarshalHeaderJSON(data, &h); err != nil {
		*hdr = Date{}
		return errtrace.Wrap(err)
	}
	if h == nil {
		*hdr = Date{}
		return nil
	}
	*hdr = *h
	return nil
}
