package header

import (
	"io"
	"iter"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/util"
)

type field struct {
	name Name
	raw  Raw
}

// Headers is an ordered collection of header fields keyed by case-insensitive name.
// Fields keep the position of their first insertion, every field holds at least one line.
// The zero value is an empty collection ready to use.
type Headers struct {
	fields []field
}

// NewHeaders creates an empty collection.
func NewHeaders() *Headers { return &Headers{} }

func (hs *Headers) index(name string) int {
	if hs == nil {
		return -1
	}
	return slices.IndexFunc(hs.fields, func(f field) bool { return util.EqFold(f.name, name) })
}

// Len returns the number of distinct fields.
func (hs *Headers) Len() int {
	if hs == nil {
		return 0
	}
	return len(hs.fields)
}

// Has reports whether the named field is present.
func (hs *Headers) Has(name string) bool { return hs.index(name) >= 0 }

// Get returns a copy of the raw lines of the named field.
func (hs *Headers) Get(name string) (Raw, bool) {
	i := hs.index(name)
	if i < 0 {
		return nil, false
	}
	return hs.fields[i].raw.Clone(), true
}

// SetRaw replaces all lines of the named field.
// A new field is appended to the end, an existing one keeps its position.
func (hs *Headers) SetRaw(name string, lines ...string) error {
	if err := validateField(name, lines); err != nil {
		return errtrace.Wrap(err)
	}
	raw := NewRaw(lines...)
	if i := hs.index(name); i >= 0 {
		hs.fields[i].raw = raw
		return nil
	}
	hs.fields = append(hs.fields, field{CanonicName(name), raw})
	return nil
}

// Append adds a line to the named field, creating the field if needed.
func (hs *Headers) Append(name, line string) error {
	if err := validateField(name, []string{line}); err != nil {
		return errtrace.Wrap(err)
	}
	if i := hs.index(name); i >= 0 {
		hs.fields[i].raw = append(hs.fields[i].raw, line)
		return nil
	}
	hs.fields = append(hs.fields, field{CanonicName(name), Raw{line}})
	return nil
}

// AppendField parses a "name: value" field line and appends it.
// Surrounding whitespace of the value is removed.
func (hs *Headers) AppendField(line string) error {
	name, value, ok := strings.Cut(line, ":")
	if !ok || !grammar.IsToken(name) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedField, "%q", line))
	}
	return errtrace.Wrap(hs.Append(name, grammar.TrimOWS(value)))
}

// Set stores the formatted value of hdr as the only line of its field.
func (hs *Headers) Set(hdr Header) error {
	if hdr == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil header"))
	}
	return errtrace.Wrap(hs.SetRaw(string(hdr.CanonicName()), hdr.RenderValue()))
}

// Del removes the named field and reports whether it was present.
func (hs *Headers) Del(name string) bool {
	i := hs.index(name)
	if i < 0 {
		return false
	}
	hs.fields = slices.Delete(hs.fields, i, i+1)
	return true
}

// All iterates over fields in insertion order.
func (hs *Headers) All() iter.Seq2[Name, Raw] {
	return func(yield func(Name, Raw) bool) {
		if hs == nil {
			return
		}
		for _, f := range hs.fields {
			if !yield(f.name, f.raw.Clone()) {
				return
			}
		}
	}
}

// Parse converts the named field to its typed header.
// It fails with [ErrHeaderNotFound] if the field is absent.
func (hs *Headers) Parse(name string) (Header, error) {
	raw, ok := hs.Get(name)
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrHeaderNotFound, name))
	}
	return errtrace.Wrap2(Parse(name, raw))
}

// Clone returns a deep copy of the collection.
func (hs *Headers) Clone() *Headers {
	if hs == nil {
		return nil
	}
	hs2 := &Headers{fields: make([]field, len(hs.fields))}
	for i, f := range hs.fields {
		hs2.fields[i] = field{f.name, f.raw.Clone()}
	}
	return hs2
}

// RenderTo writes every physical line as "Name: line" followed by CRLF.
// Lines of one field are written one after another under the same name.
func (hs *Headers) RenderTo(w io.Writer) (num int, err error) {
	if hs == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, f := range hs.fields {
		for _, line := range f.raw {
			cw.Field(string(f.name), line)
			cw.WriteString(grammar.CRLF)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the collection as it's written on the wire.
func (hs *Headers) Render() string { return renderHeaderString(hs) }

// Equal compares collections field by field, field order and line order matter.
func (hs *Headers) Equal(val any) bool {
	var other *Headers
	switch v := val.(type) {
	case Headers:
		other = &v
	case *Headers:
		other = v
	default:
		return false
	}

	if hs.Len() != other.Len() {
		return false
	}
	for i := range hs.Len() {
		if !util.EqFold(hs.fields[i].name, other.fields[i].name) || !hs.fields[i].raw.Equal(other.fields[i].raw) {
			return false
		}
	}
	return true
}

func validateField(name string, lines []string) error {
	if !grammar.IsToken(name) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid header name %q", name))
	}
	if len(lines) == 0 {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("header %q has no lines", name))
	}
	for _, line := range lines {
		if grammar.HasCtl(line) {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("header %q line %q contains control characters", name, line))
		}
	}
	return nil
}
