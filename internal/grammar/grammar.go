// Package grammar provides lexical rules of HTTP/1.x header fields (RFC 9110 Section 5.6).
package grammar

//go:generate go tool errtrace -w .

import "strings"

// Error is a grammar error.
// All header parsing failures are reported with values of this type,
// so they can be told apart from I/O and state errors with [errorutil.IsGrammarErr].
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	SP   byte = ' '
	HTAB byte = '\t'
	DQ   byte = '"'
)

// CRLF is the HTTP/1.x line terminator.
const CRLF = "\r\n"

// IsTChar reports whether c is a token character.
func IsTChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// IsToken reports whether s is a non-empty token.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := range len(s) {
		if !IsTChar(s[i]) {
			return false
		}
	}
	return true
}

// IsOWS reports whether c is an optional whitespace character (SP or HTAB).
func IsOWS(c byte) bool { return c == SP || c == HTAB }

// TrimOWS removes leading and trailing SP and HTAB characters.
func TrimOWS[T ~string](s T) T {
	i, j := 0, len(s)
	for i < j && IsOWS(s[i]) {
		i++
	}
	for j > i && IsOWS(s[j-1]) {
		j--
	}
	return s[i:j]
}

// IsQuoted reports whether s is wrapped with a pair of double quotes.
func IsQuoted[T ~string](s T) bool {
	return len(s) >= 2 && s[0] == DQ && s[len(s)-1] == DQ
}

// Unquote strips one pair of surrounding double quotes.
// Escape sequences inside the quotes are kept as is.
func Unquote[T ~string](s T) T {
	if IsQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// SplitList splits s by sep and trims OWS around every element.
// Empty elements are kept, so callers decide how to treat them.
func SplitList[T ~string](s T, sep byte) []T {
	parts := strings.Split(string(s), string(sep))
	out := make([]T, len(parts))
	for i, p := range parts {
		out[i] = TrimOWS(T(p))
	}
	return out
}

// HasCtl reports whether s contains CR, LF or NUL, which can't appear inside a field line.
func HasCtl[T ~string](s T) bool {
	return strings.ContainsAny(string(s), "\r\n\x00")
}
