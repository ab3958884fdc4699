// Package header provides typed HTTP/1.x header fields and their wire codec.
//
// This package offers typed representations, parsing, validation, comparison,
// rendering, and cloning of header fields, plus an ordered collection holding
// the raw lines of all fields of a message.
//
// # Overview
//
// A field travels through three forms:
//
//	wire lines → [Raw] → typed value (e.g. [CacheControl])
//	typed value → [Header.RenderValue] → [Headers] → wire lines
//
// [Raw] keeps the physical lines of one field in arrival order. Typed values are
// produced by per-kind parse functions, like [ParseCacheControl], or by [Parse]
// which selects the parser by field name.
//
// # Field Families
//
// Single-value fields must arrive on exactly one line, otherwise parsing fails
// with [ErrWrongLineCount]:
//
//   - [Date], [Expires], [IfModifiedSince], [LastModified] hold an HTTP-date
//   - [Referer] holds an opaque URI reference
//
// List fields merge all their lines into one comma-separated list:
//
//   - [CacheControl] keeps unknown directives as extensions
//   - [Connection] keeps unknown options as hop-by-hop field names
//
// [StrictTransportSecurity] uses ";" separated directives where every directive
// may appear at most once; a repeated one fails with [ErrConflictingDirective].
//
// # Directive Lists
//
// [ParseDirectives] implements the list grammar shared by list fields:
//
//	directive = token [ "=" ( token / quoted-string ) ]
//
// Elements are split on "," and trimmed. A leading, trailing or doubled comma,
// an empty name, or an empty value fails with [ErrMalformedDirective].
// One pair of surrounding quotes is removed from a value, escapes are kept as is,
// so values containing a comma can't be represented.
//
// # Header Naming and Canonicalization
//
// Field names are matched case-insensitively and canonicalized using
// [textproto.CanonicalMIMEHeaderKey] combined with a mapping for irregular names:
//
//	"Etag" → "ETag"
//	"Te" → "TE"
//	"Www-Authenticate" → "WWW-Authenticate"
//
// # Custom Parsers
//
// Applications can register parsers for fields without a built-in type via [RegisterParser]:
//
//	func init() {
//		header.RegisterParser("x-request-id", func(raw header.Raw) (header.Header, error) {
//			v, err := raw.One()
//			if err != nil {
//				return nil, err
//			}
//			return &RequestID{Value: v}, nil
//		})
//	}
//
// Fields that have neither are parsed as the generic [Any] type.
//
// # Rendering
//
// Headers can be rendered to strings or written to [io.Writer]:
//
//	str := hdr.Render()       // returns "Name: Value"
//	val := hdr.RenderValue()  // returns "Value" without name
//	hdr.RenderTo(writer)      // writes "Name: Value" to io.Writer
//
// Rendering a parsed value gives the canonical form of the source, and parsing
// a rendered value gives an equal value back.
//
// # JSON Serialization
//
// Headers can be serialized to and from JSON using [ToJSON] and [FromJSON]:
//
//	{"name":"<CanonicName>","value":"<RenderValue>"}
//
// # Errors
//
// All parsing errors are grammar errors. They wrap one of [ErrMissingValue],
// [ErrMalformedDirective], [ErrMalformedValue], [ErrConflictingDirective],
// [ErrWrongLineCount] or [ErrMalformedField], test them with [errors.Is].
//
// # References
//
//   - RFC 9110 - HTTP Semantics
//   - RFC 9111 - HTTP Caching
//   - RFC 6797 - HTTP Strict Transport Security
package header
