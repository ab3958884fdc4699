package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/internal/grammar"
)

func TestIsToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want bool
	}{
		{"empty", "", false},
		{"simple", "no-cache", true},
		{"all specials", "!#$%&'*+-.^_`|~", true},
		{"space", "no cache", false},
		{"separator", "max-age=1", false},
		{"quote", `"abc"`, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsToken(c.str); got != c.want {
				t.Errorf("grammar.IsToken(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestTrimOWS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"only ows", " \t ", ""},
		{"both sides", " \tpublic\t ", "public"},
		{"inner kept", " a b ", "a b"},
		{"newline kept", "\na\n", "\na\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := grammar.TrimOWS(c.str); got != c.want {
				t.Errorf("grammar.TrimOWS(%q) = %q, want %q", c.str, got, c.want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"empty quote", `""`, ""},
		{"single quote char", `"`, `"`},
		{"no quote", "abc", "abc"},
		{"with quote", `"abc"`, "abc"},
		{"escapes kept", `"a\"b"`, `a\"b`},
		{"only leading", `"abc`, `"abc`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unquote(c.str), c.want; got != want {
				t.Errorf("grammar.Unquote(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		sep  byte
		want []string
	}{
		{"empty", "", ',', []string{""}},
		{"single", " a ", ',', []string{"a"}},
		{"comma list", "a, b,\tc", ',', []string{"a", "b", "c"}},
		{"empty elements", ",a,,", ',', []string{"", "a", "", ""}},
		{"semicolon list", "max-age=1 ; includeSubdomains", ';', []string{"max-age=1", "includeSubdomains"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.SplitList(c.str, c.sep)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.SplitList(%q, %q) = %q, want %q\ndiff (-got +want):\n%v", c.str, c.sep, got, c.want, diff)
			}
		})
	}
}

func TestError_Grammar(t *testing.T) {
	t.Parallel()

	var err error = grammar.Error("bad")
	if !errorutil.IsGrammarErr(err) {
		t.Errorf("errorutil.IsGrammarErr(%v) = false, want true", err)
	}
	if errorutil.IsGrammarErr(errorutil.Error("bad")) {
		t.Errorf("errorutil.IsGrammarErr(errorutil.Error) = true, want false")
	}
}
