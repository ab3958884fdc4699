package header

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
	"github.com/ghettovoice/httphead/internal/ioutil"
	"github.com/ghettovoice/httphead/internal/util"
)

// Header represents a typed HTTP header field.
type Header interface {
	// CanonicName returns the wire name of the field.
	CanonicName() Name
	// RenderTo writes "Name: value" to w, without the line terminator.
	RenderTo(w io.Writer) (num int, err error)
	// Render returns "Name: value".
	Render() string
	// RenderValue returns the field value formatted as exactly one line.
	RenderValue() string
	Clone() Header
	Equal(val any) bool
	IsValid() bool
}

// Name represents an HTTP header field name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is a valid token.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another case-insensitively.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = Name(v)
	default:
		return false
	}
	return util.EqFold(n, other)
}

var hdrNames = map[string]Name{
	"Content-Md5":      "Content-MD5",
	"Dnt":              "DNT",
	"Etag":             "ETag",
	"Te":               "TE",
	"Www-Authenticate": "WWW-Authenticate",
	"X-Xss-Protection": "X-XSS-Protection",
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen to upper case;
// the rest are converted to lowercase. For example, the canonical name for "cache-control" is "Cache-Control".
// A few names with irregular capitalization, like "ETag" or "WWW-Authenticate", are mapped explicitly.
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}

	name = T(textproto.CanonicalMIMEHeaderKey(string(name)))
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}
	return Name(name)
}

// Parser parses the raw lines of a field into a typed header.
type Parser func(raw Raw) (Header, error)

func parserOf[H Header](parse func(Raw) (H, error)) Parser {
	return func(raw Raw) (Header, error) {
		hdr, err := parse(raw)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return hdr, nil
	}
}

var stdParsers = map[Name]Parser{
	"Cache-Control":             parserOf(ParseCacheControl),
	"Connection":                parserOf(ParseConnection),
	"Date":                      parserOf(ParseDate),
	"Expires":                   parserOf(ParseExpires),
	"If-Modified-Since":         parserOf(ParseIfModifiedSince),
	"Last-Modified":             parserOf(ParseLastModified),
	"Referer":                   parserOf(ParseReferer),
	"Strict-Transport-Security": parserOf(ParseStrictTransportSecurity),
}

var customParsers sync.Map // map[string]Parser

// RegisterParser registers a parser for a field that has no built-in type.
// Built-in field types take precedence over registered parsers.
func RegisterParser(name string, parser Parser) {
	customParsers.Store(util.LCase(name), parser)
}

// UnregisterParser unregisters a custom header parser.
func UnregisterParser(name string) {
	customParsers.Delete(util.LCase(name))
}

// Parse converts the raw lines of the named field into a typed header.
// The name is matched case-insensitively. Fields without a built-in type or
// registered parser are returned as [*Any] holding the joined value.
//
// Example usage:
//
//	hdr, err := header.Parse("cache-control", header.NewRaw("no-cache", "max-age=60"))
func Parse(name string, raw Raw) (Header, error) {
	cn := CanonicName(name)
	if prs, ok := stdParsers[cn]; ok {
		return errtrace.Wrap2(prs(raw))
	}
	if v, ok := customParsers.Load(util.LCase(name)); ok && v != nil {
		hdr, err := v.(Parser)(raw) //nolint:forcetypeassert
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if hdr != nil {
			return hdr, nil
		}
	}
	return &Any{Name: string(cn), Value: raw.Join()}, nil
}

// Typed parses the field named after T from hs.
// It fails with [ErrHeaderNotFound] if hs has no such field.
//
// Example usage:
//
//	ims, err := header.Typed[*header.IfModifiedSince](hs)
func Typed[T Header](hs *Headers) (T, error) {
	var zero T
	name := zero.CanonicName()
	raw, ok := hs.Get(string(name))
	if !ok {
		return zero, errtrace.Wrap(errorutil.NewWrapperError(ErrHeaderNotFound, string(name)))
	}
	hdr, err := Parse(string(name), raw)
	if err != nil {
		return zero, errtrace.Wrap(fmt.Errorf("parse %s header: %w", name, err))
	}
	h, ok := hdr.(T)
	if !ok {
		return zero, errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", hdr, zero))
	}
	return h, nil
}

func renderHeader(w io.Writer, name Name, renderValue func(io.Writer) (int, error)) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(name, ": ")
	cw.Call(renderValue)
	return errtrace.Wrap2(cw.Result())
}

func renderHeaderString(hdr interface{ RenderTo(io.Writer) (int, error) }) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func renderValueString(renderValue func(io.Writer) (int, error)) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderValue(sb) //nolint:errcheck
	return sb.String()
}

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func ToJSON(hdr Header) ([]byte, error) {
	var hd *headerData
	if hdr != nil {
		hd = &headerData{
			Name:  string(hdr.CanonicName()),
			Value: hdr.RenderValue(),
		}
	}
	return errtrace.Wrap2(json.Marshal(hd))
}

func FromJSON[T ~string | ~[]byte](data T) (Header, error) {
	var hd *headerData
	if err := json.Unmarshal([]byte(data), &hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if hd == nil {
		return nil, errtrace.Wrap(errNotHeaderJSON)
	}

	hdr, err := Parse(hd.Name, Raw{hd.Value})
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("parse header %q: %w", hd.Name, err))
	}
	return hdr, nil
}

func unmarshalHeaderJSON[H Header](data []byte, hdr *H) error {
	var zero H
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = zero
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(H)
	if !ok {
		*hdr = zero
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, zero))
	}

	*hdr = h
	return nil
}
