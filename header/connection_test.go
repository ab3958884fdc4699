package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphead/header"
)

func TestParseConnection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     header.Raw
		want    header.Connection
		wantErr error
	}{
		{"no lines", nil, nil, header.ErrMissingValue},
		{"blank", header.NewRaw(" "), nil, header.ErrMissingValue},
		{"close", header.NewRaw("close"), header.Connection{header.Close()}, nil},
		{"keep-alive", header.NewRaw("Keep-Alive"), header.Connection{header.KeepAlive()}, nil},
		{
			"hop-by-hop",
			header.NewRaw("keep-alive, Upgrade", "X-Private"),
			header.Connection{header.KeepAlive(), header.ConnectionHeader("Upgrade"), header.ConnectionHeader("X-Private")},
			nil,
		},
		{"empty element", header.NewRaw("close,,upgrade"), nil, header.ErrMalformedDirective},
		{"trailing comma", header.NewRaw("close,"), nil, header.ErrMalformedDirective},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseConnection(c.raw)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.ParseConnection(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.raw, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("header.ParseConnection(%q) = %v, want %v\ndiff (-got +want):\n%v", c.raw, got, c.want, diff)
			}
		})
	}
}

func TestConnection_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Connection
		want string
	}{
		{"nil", nil, ""},
		{"close", header.Connection{header.Close()}, "Connection: close"},
		{"many", header.Connection{header.KeepAlive(), header.ConnectionHeader("Upgrade")}, "Connection: keep-alive, Upgrade"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Render(); got != c.want {
				t.Errorf("hdr.Render() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestConnection_Has(t *testing.T) {
	t.Parallel()

	hdr, err := header.ParseConnection(header.NewRaw("CLOSE, upgrade"))
	if err != nil {
		t.Fatalf("header.ParseConnection() error = %v, want nil", err)
	}
	if !hdr.IsClose() {
		t.Errorf("hdr.IsClose() = false, want true")
	}
	if hdr.IsKeepAlive() {
		t.Errorf("hdr.IsKeepAlive() = true, want false")
	}
	if !hdr.Has(header.ConnectionHeader("Upgrade")) {
		t.Errorf("hdr.Has(Upgrade) = false, want true")
	}
	if !hdr.IsValid() {
		t.Errorf("hdr.IsValid() = false, want true")
	}
}

func TestConnectionOption_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opt  header.ConnectionOption
		want bool
	}{
		{"close", header.Close(), true},
		{"field", header.ConnectionHeader("Upgrade"), true},
		{"empty", header.ConnectionOption{}, false},
		{"not token", header.ConnectionHeader("a b"), false},
		{"kind mismatch", header.ConnectionOption{Kind: header.ConnHeader, Name: "close"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.opt.IsValid(); got != c.want {
				t.Errorf("opt.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}
