package response

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphead/internal/errorutil"
)

// Version is an HTTP version as [major, minor].
type Version [2]uint

// HTTP11 is the version used when none is configured.
var HTTP11 = Version{1, 1}

// ParseVersion parses an HTTP version text, e.g. "HTTP/1.1".
func ParseVersion(s string) (Version, error) {
	rest, ok := strings.CutPrefix(s, "HTTP/")
	if !ok {
		return Version{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("http version prefix not found in %q", s))
	}
	major, minor, ok := strings.Cut(rest, ".")
	if !ok {
		return Version{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("dot separator not found in %q", s))
	}
	maj, err1 := strconv.ParseUint(major, 10, 32)
	mnr, err2 := strconv.ParseUint(minor, 10, 32)
	if err1 != nil || err2 != nil {
		return Version{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid http version %q", s))
	}
	return Version{uint(maj), uint(mnr)}, nil
}

// String returns the version text, e.g. "HTTP/1.1".
func (v Version) String() string {
	return "HTTP/" + strconv.FormatUint(uint64(v[0]), 10) + "." + strconv.FormatUint(uint64(v[1]), 10)
}

// IsValid reports whether the version is an HTTP/1.x version.
func (v Version) IsValid() bool { return v[0] == 1 }
