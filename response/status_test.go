package response_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/httphead/internal/errorutil"
	"github.com/ghettovoice/httphead/response"
)

func TestStatus_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status response.Status
		want   string
	}{
		{response.StatusOK, "200 OK"},
		{response.StatusNotModified, "304 Not Modified"},
		{response.StatusProxyAuthRequired, "407 Proxy Authentication Required"},
		{response.StatusHTTPVersionNotSupported, "505 HTTP Version Not Supported"},
		{799, "799 "},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			t.Parallel()

			if got := c.status.String(); got != c.want {
				t.Errorf("status.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestStatus_Class(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status                                 response.Status
		info, success, redirect, client, server bool
	}{
		{response.StatusContinue, true, false, false, false, false},
		{response.StatusNoContent, false, true, false, false, false},
		{response.StatusNotModified, false, false, true, false, false},
		{response.StatusGone, false, false, false, true, false},
		{response.StatusBadGateway, false, false, false, false, true},
	}

	for _, c := range cases {
		t.Run(c.status.String(), func(t *testing.T) {
			t.Parallel()

			got := [...]bool{
				c.status.IsInformational(),
				c.status.IsSuccessful(),
				c.status.IsRedirection(),
				c.status.IsClientError(),
				c.status.IsServerError(),
			}
			want := [...]bool{c.info, c.success, c.redirect, c.client, c.server}
			if got != want {
				t.Errorf("status class = %v, want %v", got, want)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    response.Version
		wantErr bool
	}{
		{"HTTP/1.1", response.Version{1, 1}, false},
		{"HTTP/1.0", response.Version{1, 0}, false},
		{"HTTP/2.0", response.Version{2, 0}, false},
		{"http/1.1", response.Version{}, true},
		{"HTTP/11", response.Version{}, true},
		{"HTTP/1.x", response.Version{}, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := response.ParseVersion(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("response.ParseVersion(%q) error = %v, want error %v", c.in, err, c.wantErr)
			}
			if err != nil && !errors.Is(err, errorutil.ErrInvalidArgument) {
				t.Errorf("response.ParseVersion(%q) error = %v, want %v", c.in, err, errorutil.ErrInvalidArgument)
			}
			if got != c.want {
				t.Errorf("response.ParseVersion(%q) = %v, want %v", c.in, got, c.want)
			}
			if err == nil && got.String() != c.in {
				t.Errorf("ver.String() = %q, want %q", got.String(), c.in)
			}
		})
	}
}
