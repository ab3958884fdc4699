package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/util"
)

// Directive is one element of a comma-separated directive list as it appeared on the wire:
//
//	directive = token [ "=" ( token / quoted-string ) ]
//
// Value holds the argument with one pair of surrounding quotes removed.
type Directive struct {
	Name     string
	Value    string
	HasValue bool
}

// String returns "name" or "name=value".
func (d Directive) String() string {
	if !d.HasValue {
		return d.Name
	}
	return d.Name + "=" + d.Value
}

// Equal compares directives, the names are compared case-insensitively.
func (d Directive) Equal(val any) bool {
	var other Directive
	switch v := val.(type) {
	case Directive:
		other = v
	case *Directive:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(d.Name, other.Name) && d.HasValue == other.HasValue && d.Value == other.Value
}

// IsValid reports whether d can be rendered and parsed back unchanged.
func (d Directive) IsValid() bool {
	if d.Name == "" || strings.ContainsAny(d.Name, ",=") || grammar.HasCtl(d.Name) ||
		grammar.TrimOWS(d.Name) != d.Name {
		return false
	}
	if !d.HasValue {
		return d.Value == ""
	}
	return d.Value != "" && !strings.Contains(d.Value, ",") && !grammar.HasCtl(d.Value) &&
		grammar.TrimOWS(d.Value) == d.Value && !grammar.IsQuoted(d.Value)
}

// ParseDirectives parses a comma-separated directive list.
//
// Elements are trimmed of surrounding whitespace, and so are the name and the value
// around "=". An empty source fails with [ErrMissingValue]. An empty element,
// an empty name or an empty value (also after unquoting) fails with [ErrMalformedDirective].
// No escape processing is done inside quoted values.
func ParseDirectives(s string) ([]Directive, error) {
	if grammar.TrimOWS(s) == "" {
		return nil, errtrace.Wrap(ErrMissingValue)
	}

	elems := grammar.SplitList(s, ',')
	ds := make([]Directive, 0, len(elems))
	for i, elem := range elems {
		d, err := parseDirective(elem)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("list element #%d: %w", i, err))
		}
		ds = append(ds, d)
	}
	return ds, nil
}

func parseDirective(s string) (Directive, error) {
	if s == "" {
		return Directive{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedDirective, "empty element"))
	}

	name, val, hasVal := strings.Cut(s, "=")
	name = grammar.TrimOWS(name)
	if name == "" {
		return Directive{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedDirective, "empty name in %q", s))
	}
	if !hasVal {
		return Directive{Name: name}, nil
	}

	val = grammar.Unquote(grammar.TrimOWS(val))
	if val == "" {
		return Directive{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedDirective, "missing value of %q", name))
	}
	return Directive{Name: name, Value: val, HasValue: true}, nil
}

func renderList[L ~[]E, E fmt.Stringer](w io.Writer, elems L) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range elems {
		if i > 0 {
			cw.WriteString(", ")
		}
		cw.WriteString(elems[i].String())
	}
	return errtrace.Wrap2(cw.Result())
}

// slotSet accumulates directives that may appear at most once in a field.
type slotSet map[string]bool

// claim marks the slot as taken, a second claim fails with [ErrConflictingDirective].
func (s slotSet) claim(name string) error {
	key := util.LCase(name)
	if s[key] {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrConflictingDirective, "duplicate %q", name))
	}
	s[key] = true
	return nil
}

func (s slotSet) has(name string) bool { return s[util.LCase(name)] }
