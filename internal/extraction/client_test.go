package extraction

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "ok", 10, "ok"},
		{"exactly at limit", "abcd", 4, "abcd"},
		{"ascii cut", "abcdef", 4, "abc…"},
		{"cut lands on rune start", "résumé", 4, "ré…"},
		{"cut lands mid-rune", "résumé", 3, "r…"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.in, tc.n)
			if got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tc.in, tc.n, got)
			}
		})
	}
}
