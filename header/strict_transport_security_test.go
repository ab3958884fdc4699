package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphead/header"
)

func TestParseStrictTransportSecurity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     header.Raw
		want    *header.StrictTransportSecurity
		wantErr error
	}{
		{"max-age", header.NewRaw("max-age=31536000"), &header.StrictTransportSecurity{MaxAge: 31536000}, nil},
		{"quoted max-age", header.NewRaw(`max-age="31536000"`), &header.StrictTransportSecurity{MaxAge: 31536000}, nil},
		{"spaces", header.NewRaw("  max-age = 31536000  "), &header.StrictTransportSecurity{MaxAge: 31536000}, nil},
		{
			"include subdomains",
			header.NewRaw("max-age=15768000 ; includeSubDomains"),
			&header.StrictTransportSecurity{MaxAge: 15768000, IncludeSubdomains: true},
			nil,
		},
		{
			"unknown ignored",
			header.NewRaw("preload; MAX-AGE=10; foo=bar"),
			&header.StrictTransportSecurity{MaxAge: 10},
			nil,
		},
		{"no lines", nil, nil, header.ErrWrongLineCount},
		{"two lines", header.NewRaw("max-age=1", "max-age=2"), nil, header.ErrWrongLineCount},
		{"blank", header.NewRaw(""), nil, header.ErrMissingValue},
		{"max-age no value", header.NewRaw("max-age"), nil, header.ErrMalformedDirective},
		{"no max-age", header.NewRaw("includeSubDomains"), nil, header.ErrMalformedDirective},
		{"max-age nan", header.NewRaw("max-age=derp"), nil, header.ErrMalformedDirective},
		{"duplicate max-age", header.NewRaw("max-age=100; max-age=5; max-age=0"), nil, header.ErrConflictingDirective},
		{"duplicate include subdomains", header.NewRaw("max-age=1; includeSubdomains; includesubdomains"), nil, header.ErrConflictingDirective},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseStrictTransportSecurity(c.raw)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.ParseStrictTransportSecurity(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.raw, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("header.ParseStrictTransportSecurity(%q) = %v, want %v\ndiff (-got +want):\n%v", c.raw, got, c.want, diff)
			}
		})
	}
}

func TestStrictTransportSecurity_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.StrictTransportSecurity
		want string
	}{
		{"nil", nil, ""},
		{"excluding subdomains", &header.StrictTransportSecurity{MaxAge: 60}, "Strict-Transport-Security: max-age=60"},
		{
			"including subdomains",
			&header.StrictTransportSecurity{MaxAge: 31536000, IncludeSubdomains: true},
			"Strict-Transport-Security: max-age=31536000; includeSubdomains",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Render(); got != c.want {
				t.Errorf("hdr.Render() = %q, want %q", got, c.want)
			}
			if c.hdr == nil {
				return
			}

			got, err := header.ParseStrictTransportSecurity(header.NewRaw(c.hdr.RenderValue()))
			if err != nil {
				t.Fatalf("header.ParseStrictTransportSecurity(%q) error = %v, want nil", c.hdr.RenderValue(), err)
			}
			if !got.Equal(c.hdr) {
				t.Errorf("round-trip mismatch: got = %v, want %v", got, c.hdr)
			}
		})
	}
}
