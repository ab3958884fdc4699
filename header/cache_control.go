package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
)

// CacheDirectiveKind enumerates Cache-Control directives.
type CacheDirectiveKind uint8

const (
	CacheExtension CacheDirectiveKind = iota
	CacheNoCache
	CacheNoStore
	CacheNoTransform
	CacheOnlyIfCached
	CacheMaxAge
	CacheMaxStale
	CacheMinFresh
	CacheMustRevalidate
	CachePublic
	CachePrivate
	CacheProxyRevalidate
	CacheSMaxAge
)

var cacheDirectiveNames = [...]string{
	CacheNoCache:         "no-cache",
	CacheNoStore:         "no-store",
	CacheNoTransform:     "no-transform",
	CacheOnlyIfCached:    "only-if-cached",
	CacheMaxAge:          "max-age",
	CacheMaxStale:        "max-stale",
	CacheMinFresh:        "min-fresh",
	CacheMustRevalidate:  "must-revalidate",
	CachePublic:          "public",
	CachePrivate:         "private",
	CacheProxyRevalidate: "proxy-revalidate",
	CacheSMaxAge:         "s-maxage",
}

// Directives recognized without an argument. Matching is exact.
var cacheKeywords = map[string]CacheDirectiveKind{
	"no-cache":         CacheNoCache,
	"no-store":         CacheNoStore,
	"no-transform":     CacheNoTransform,
	"only-if-cached":   CacheOnlyIfCached,
	"must-revalidate":  CacheMustRevalidate,
	"public":           CachePublic,
	"private":          CachePrivate,
	"proxy-revalidate": CacheProxyRevalidate,
}

// Directives recognized with a delta-seconds argument.
var cacheNumerics = map[string]CacheDirectiveKind{
	"max-age":   CacheMaxAge,
	"max-stale": CacheMaxStale,
	"min-fresh": CacheMinFresh,
	"s-maxage":  CacheSMaxAge,
}

// String returns the directive name, or "extension" for [CacheExtension].
func (k CacheDirectiveKind) String() string {
	if k == CacheExtension || int(k) >= len(cacheDirectiveNames) {
		return "extension"
	}
	return cacheDirectiveNames[k]
}

func (k CacheDirectiveKind) isNumeric() bool {
	return k == CacheMaxAge || k == CacheMaxStale || k == CacheMinFresh || k == CacheSMaxAge
}

// CacheDirective is a single Cache-Control directive.
// Seconds is meaningful for numeric kinds only, Ext for [CacheExtension] only.
type CacheDirective struct {
	Kind    CacheDirectiveKind
	Seconds uint32
	Ext     Directive
}

func NoCache() CacheDirective         { return CacheDirective{Kind: CacheNoCache} }
func NoStore() CacheDirective         { return CacheDirective{Kind: CacheNoStore} }
func NoTransform() CacheDirective     { return CacheDirective{Kind: CacheNoTransform} }
func OnlyIfCached() CacheDirective    { return CacheDirective{Kind: CacheOnlyIfCached} }
func MustRevalidate() CacheDirective  { return CacheDirective{Kind: CacheMustRevalidate} }
func Public() CacheDirective          { return CacheDirective{Kind: CachePublic} }
func Private() CacheDirective         { return CacheDirective{Kind: CachePrivate} }
func ProxyRevalidate() CacheDirective { return CacheDirective{Kind: CacheProxyRevalidate} }

func MaxAge(secs uint32) CacheDirective   { return CacheDirective{Kind: CacheMaxAge, Seconds: secs} }
func MaxStale(secs uint32) CacheDirective { return CacheDirective{Kind: CacheMaxStale, Seconds: secs} }
func MinFresh(secs uint32) CacheDirective { return CacheDirective{Kind: CacheMinFresh, Seconds: secs} }
func SMaxAge(secs uint32) CacheDirective  { return CacheDirective{Kind: CacheSMaxAge, Seconds: secs} }

// Extension creates a directive outside of the standard vocabulary.
// An empty value produces a directive without argument.
func Extension(name, value string) CacheDirective {
	return CacheDirective{
		Kind: CacheExtension,
		Ext:  Directive{Name: name, Value: value, HasValue: value != ""},
	}
}

// String returns the wire form of the directive.
func (d CacheDirective) String() string {
	switch {
	case d.Kind == CacheExtension:
		return d.Ext.String()
	case d.Kind.isNumeric():
		return d.Kind.String() + "=" + strconv.FormatUint(uint64(d.Seconds), 10)
	default:
		return d.Kind.String()
	}
}

// Equal compares directives of the same kind by their arguments.
func (d CacheDirective) Equal(val any) bool {
	var other CacheDirective
	switch v := val.(type) {
	case CacheDirective:
		other = v
	case *CacheDirective:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if d.Kind != other.Kind {
		return false
	}
	switch {
	case d.Kind == CacheExtension:
		return d.Ext.Equal(other.Ext)
	case d.Kind.isNumeric():
		return d.Seconds == other.Seconds
	default:
		return true
	}
}

// IsValid reports whether the directive survives a render and parse round trip.
func (d CacheDirective) IsValid() bool {
	if d.Kind != CacheExtension {
		return int(d.Kind) < len(cacheDirectiveNames)
	}
	if !d.Ext.IsValid() {
		return false
	}
	// A vocabulary name would be parsed back as a standard directive.
	if _, ok := cacheKeywords[d.Ext.Name]; ok && !d.Ext.HasValue {
		return false
	}
	if _, ok := cacheNumerics[d.Ext.Name]; ok && d.Ext.HasValue {
		return false
	}
	return true
}

func buildCacheDirective(d Directive) (CacheDirective, error) {
	if !d.HasValue {
		if kind, ok := cacheKeywords[d.Name]; ok {
			return CacheDirective{Kind: kind}, nil
		}
		return CacheDirective{Kind: CacheExtension, Ext: d}, nil
	}

	kind, ok := cacheNumerics[d.Name]
	if !ok {
		return CacheDirective{Kind: CacheExtension, Ext: d}, nil
	}
	secs, err := strconv.ParseUint(d.Value, 10, 32)
	if err != nil {
		return CacheDirective{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedDirective, "invalid %s value %q: %v", d.Name, d.Value, err))
	}
	return CacheDirective{Kind: kind, Seconds: uint32(secs)}, nil
}

// CacheControl represents the Cache-Control header field (RFC 9111 Section 5.2).
// Directives are kept in their wire order, duplicates are preserved.
type CacheControl []CacheDirective

// ParseCacheControl parses the Cache-Control field from its raw lines.
// Several lines are merged into one list.
func ParseCacheControl(raw Raw) (CacheControl, error) {
	if raw.Len() == 0 {
		return nil, errtrace.Wrap(ErrMissingValue)
	}
	ds, err := ParseDirectives(raw.Join())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	hdr := make(CacheControl, len(ds))
	for i := range ds {
		if hdr[i], err = buildCacheDirective(ds[i]); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return hdr, nil
}

// CanonicName returns the canonical name of the header.
func (CacheControl) CanonicName() Name { return "Cache-Control" }

// RenderTo writes the header to the provided writer.
func (hdr CacheControl) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHeader(w, hdr.CanonicName(), hdr.renderValueTo))
}

func (hdr CacheControl) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderList(w, hdr))
}

// Render returns the string representation of the header.
func (hdr CacheControl) Render() string {
	if hdr == nil {
		return ""
	}
	return renderHeaderString(hdr)
}

// RenderValue returns the directives joined with ", ".
func (hdr CacheControl) RenderValue() string { return renderValueString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr CacheControl) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr CacheControl) Format(f fmt.State, verb rune) {
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
		type hideMethods CacheControl
		type CacheControl hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), CacheControl(hdr))
		return
	}
}

// Clone returns a copy of the header.
func (hdr CacheControl) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality, directive order matters.
func (hdr CacheControl) Equal(val any) bool {
	var other CacheControl
	switch v := val.(type) {
	case CacheControl:
		other = v
	case *CacheControl:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(d1, d2 CacheDirective) bool { return d1.Equal(d2) })
}

// IsValid checks whether the header is non-empty and every directive is valid.
func (hdr CacheControl) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(d CacheDirective) bool { return !d.IsValid() })
}

// Lookup returns the first directive of the given kind.
func (hdr CacheControl) Lookup(kind CacheDirectiveKind) (CacheDirective, bool) {
	i := slices.IndexFunc(hdr, func(d CacheDirective) bool { return d.Kind == kind })
	if i < 0 {
		return CacheDirective{}, false
	}
	return hdr[i], true
}

// Has reports whether the header contains a directive of the given kind.
func (hdr CacheControl) Has(kind CacheDirectiveKind) bool {
	_, ok := hdr.Lookup(kind)
	return ok
}

func (hdr CacheControl) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *CacheControl) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalHeaderJSON(data, hdr))
}
