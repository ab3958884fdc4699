package errorutil_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphead/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", errSentinel)

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{errSentinel}},
		{"message", []any{"bad thing"}, "sentinel: bad thing", []error{errSentinel}},
		{"format", []any{"bad %q at %d", "x", 3}, `sentinel: bad "x" at 3`, []error{errSentinel}},
		{"error", []any{io.EOF}, "sentinel: EOF", []error{errSentinel, io.EOF}},
		{"already wrapped", []any{wrapped}, "outer: sentinel", []error{errSentinel}},
		{"unknown arg", []any{42}, "sentinel", []error{errSentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			for _, want := range c.wantIs {
				if diff := cmp.Diff(err, want, cmpopts.EquateErrors()); diff != "" {
					t.Errorf("err = %v, want %v\ndiff (-got +want):\n%v", err, want, diff)
				}
			}
		})
	}
}

func TestIsPeerGone(t *testing.T) {
	t.Parallel()

	if !errorutil.IsPeerGone(fmt.Errorf("read: %w", io.EOF)) {
		t.Error("errorutil.IsPeerGone(wrapped EOF) = false, want true")
	}
	if errorutil.IsPeerGone(errors.New("boom")) {
		t.Error("errorutil.IsPeerGone(boom) = true, want false")
	}
}
