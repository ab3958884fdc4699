package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/util"
)

// ConnectionOptionKind enumerates Connection header options.
type ConnectionOptionKind uint8

const (
	// ConnHeader is a hop-by-hop field name listed in the Connection header.
	ConnHeader ConnectionOptionKind = iota
	ConnKeepAlive
	ConnClose
)

// ConnectionOption is a single Connection header option.
type ConnectionOption struct {
	Kind ConnectionOptionKind
	Name string
}

func KeepAlive() ConnectionOption { return ConnectionOption{Kind: ConnKeepAlive, Name: "keep-alive"} }

func Close() ConnectionOption { return ConnectionOption{Kind: ConnClose, Name: "close"} }

// ConnectionHeader creates an option naming another field.
// The "keep-alive" and "close" names produce the corresponding options.
func ConnectionHeader(name string) ConnectionOption {
	switch {
	case util.EqFold(name, "keep-alive"):
		return KeepAlive()
	case util.EqFold(name, "close"):
		return Close()
	default:
		return ConnectionOption{Kind: ConnHeader, Name: name}
	}
}

func (o ConnectionOption) String() string { return o.Name }

// Equal compares options case-insensitively.
func (o ConnectionOption) Equal(val any) bool {
	var other ConnectionOption
	switch v := val.(type) {
	case ConnectionOption:
		other = v
	case *ConnectionOption:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return o.Kind == other.Kind && util.EqFold(o.Name, other.Name)
}

func (o ConnectionOption) IsValid() bool {
	return grammar.IsToken(o.Name) && ConnectionHeader(o.Name).Kind == o.Kind
}

// Connection represents the Connection header field (RFC 9110 Section 7.6.1).
type Connection []ConnectionOption

// ParseConnection parses the Connection field from its raw lines.
// Several lines are merged into one list.
func ParseConnection(raw Raw) (Connection, error) {
	if raw.Len() == 0 {
		return nil, errtrace.Wrap(ErrMissingValue)
	}
	s := raw.Join()
	if grammar.TrimOWS(s) == "" {
		return nil, errtrace.Wrap(ErrMissingValue)
	}

	elems := grammar.SplitList(s, ',')
	hdr := make(Connection, len(elems))
	for i, elem := range elems {
		if elem == "" {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedDirective, "list element #%d: empty element", i))
		}
		hdr[i] = ConnectionHeader(elem)
	}
	return hdr, nil
}

// CanonicName returns the canonical name of the header.
func (Connection) CanonicName() Name { return "Connection" }

// RenderTo writes the header to the provided writer.
func (hdr Connection) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHeader(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr Connection) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderList(w, hdr))
}

// Render returns the string representation of the header.
func (hdr Connection) Render() string {
	if hdr == nil {
		return ""
	}
	return renderHeaderString(hdr)
}

// RenderValue returns the string representation of the header value.
func (hdr Connection) RenderValue() string { return renderValueString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Connection) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Connection) Format(f fmt.State, verb rune) {
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
		type hideMethods Connection
		type Connection hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Connection(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr Connection) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Connection) Equal(val any) bool {
	var other Connection
	switch v := val.(type) {
	case Connection:
		other = v
	case *Connection:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(o1, o2 ConnectionOption) bool { return o1.Equal(o2) })
}

// IsValid checks whether the header is syntactically valid.
func (hdr Connection) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(o ConnectionOption) bool { return !o.IsValid() })
}

// Has reports whether the header lists the option.
func (hdr Connection) Has(opt ConnectionOption) bool {
	return slices.ContainsFunc(hdr, func(o ConnectionOption) bool { return o.Equal(opt) })
}

// IsClose reports whether the sender asked to close the connection after the message.
func (hdr Connection) IsClose() bool { return hdr.Has(Close()) }

// IsKeepAlive reports whether the sender asked to keep the connection open.
func (hdr Connection) IsKeepAlive() bool { return hdr.Has(KeepAlive()) }

func (hdr Connection) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Connection) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalHeaderJSON(data, hdr))
}
