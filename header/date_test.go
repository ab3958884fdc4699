package header_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphead/header"
)

func TestDate_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.Date
		want string
	}{
		{"nil", (*header.Date)(nil), ""},
		{"zero", &header.Date{}, "Date: Mon, 01 Jan 0001 00:00:00 GMT"},
		{
			"full",
			&header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)},
			"Date: Sat, 13 Nov 2010 23:29:00 GMT",
		},
		{
			"non utc",
			&header.Date{Time: time.Date(2010, 11, 14, 2, 29, 0, 0, time.FixedZone("MSK", 3*3600))},
			"Date: Sat, 13 Nov 2010 23:29:00 GMT",
		},
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

func TestDate_RenderTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hdr     *header.Date
		wantRes string
	}{
		{"nil", (*header.Date)(nil), ""},
		{
			"full",
			&header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)},
			"Date: Sat, 13 Nov 2010 23:29:00 GMT",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder
			num, err := c.hdr.RenderTo(&sb)
			if err != nil {
				t.Errorf("hdr.RenderTo(sb) error = %v, want nil", err)
			}
			if got := sb.String(); got != c.wantRes {
				t.Errorf("sb.String() = %q, want %q", got, c.wantRes)
			}
			if num != len(c.wantRes) {
				t.Errorf("hdr.RenderTo(sb) = %d, want %d", num, len(c.wantRes))
			}
		})
	}
}

func TestDate_Format(t *testing.T) {
	t.Parallel()

	hdr := &header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)}
	cases := []struct {
		format string
		want   string
	}{
		{"%s", "Sat, 13 Nov 2010 23:29:00 GMT"},
		{"%+s", "Date: Sat, 13 Nov 2010 23:29:00 GMT"},
		{"%q", `"Sat, 13 Nov 2010 23:29:00 GMT"`},
		{"%+q", `"Date: Sat, 13 Nov 2010 23:29:00 GMT"`},
	}

	for _, c := range cases {
		t.Run(c.format, func(t *testing.T) {
			t.Parallel()

			if got := fmt.Sprintf(c.format, hdr); got != c.want {
				t.Errorf("fmt.Sprintf(%q, hdr) = %q, want %q", c.format, got, c.want)
			}
		})
	}
}

func TestDate_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.Date
		val  any
		want bool
	}{
		{"nil ptr to nil", (*header.Date)(nil), nil, false},
		{"nil ptr to nil ptr", (*header.Date)(nil), (*header.Date)(nil), true},
		{"zero ptr to nil ptr", &header.Date{}, (*header.Date)(nil), false},
		{"zero ptr to zero val", &header.Date{}, header.Date{}, true},
		{
			"not match",
			&header.Date{Time: time.Date(2019, 4, 13, 23, 29, 0, 0, time.UTC)},
			&header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)},
			false,
		},
		{
			"other type",
			&header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)},
			&header.Expires{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)},
			false,
		},
		{
			"match",
			&header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)},
			header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)},
			true,
		},
		{
			"match sub second",
			&header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)},
			&header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 999, time.UTC)},
			true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDate_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.Date
		want bool
	}{
		{"nil", (*header.Date)(nil), false},
		{"zero", &header.Date{}, false},
		{"valid", &header.Date{Time: time.Now()}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.IsValid(); got != c.want {
				t.Errorf("hdr.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDate_Clone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.Date
	}{
		{"nil", nil},
		{"zero", &header.Date{}},
		{"full", &header.Date{Time: time.Now()}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := c.hdr.Clone()
			if c.hdr == nil {
				if got != nil {
					t.Errorf("hdr.Clone() = %+v, want nil", got)
				}
				return
			}
			if diff := cmp.Diff(got, c.hdr); diff != "" {
				t.Errorf("hdr.Clone() = %+v, want %+v\ndiff (-got +want):\n%v", got, c.hdr, diff)
			}
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		data    string
		want    *header.Date
		wantErr bool
	}{
		{name: "null", data: "null", want: &header.Date{}},
		{
			name: "custom",
			data: `{"name":"Date","value":"Sat, 13 Nov 2010 23:29:00 GMT"}`,
			want: &header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)},
		},
		{
			name:    "invalid_json",
			data:    `{"name":"Date","value":`,
			want:    &header.Date{},
			wantErr: true,
		},
		{
			name:    "wrong_header",
			data:    `{"name":"Referer","value":"/index.html"}`,
			want:    &header.Date{},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var got header.Date
			err := json.Unmarshal([]byte(c.data), &got)
			if (err != nil) != c.wantErr {
				t.Errorf("json.Unmarshal(data, got) error = %v, want %v", err, c.wantErr)
				return
			}
			if err != nil {
				return
			}

			if diff := cmp.Diff(&got, c.want); diff != "" {
				t.Errorf("unmarshal mismatch: got = %+v, want %+v\ndiff (-got +want):\n%v", &got, c.want, diff)
			}
		})
	}
}

func TestDate_RoundTripJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *header.Date
	}{
		{name: "nil", hdr: (*header.Date)(nil)},
		{name: "zero", hdr: &header.Date{}},
		{name: "custom", hdr: &header.Date{Time: time.Date(2010, 11, 13, 23, 29, 0, 0, time.UTC)}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(c.hdr)
			if err != nil {
				t.Fatalf("json.Marshal(hdr) error = %v, want nil", err)
			}

			var got header.Date
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("json.Unmarshal(data, got) error = %v, want nil", err)
			}

			want := c.hdr
			if want == nil {
				want = &header.Date{}
			}
			if diff := cmp.Diff(&got, want); diff != "" {
				t.Errorf("round-trip mismatch: got = %+v, want %+v\ndiff (-got +want):\n%v", &got, want, diff)
			}
		})
	}
}
