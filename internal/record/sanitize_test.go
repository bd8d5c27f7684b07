package record_test

import (
	"testing"

	"matchreel/internal/record"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Reds", "Reds"},
		{"St. Mary's", "St. Marys"},
		{"Score: United", `Score\: United`},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := record.SanitizeName(tc.in); got != tc.want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{"Reds", "Score: United", "a:b:c", "O'Neill's: XI"}
	for _, in := range inputs {
		once := record.SanitizeName(in)
		twice := record.SanitizeName(once)
		if once != twice {
			t.Fatalf("sanitize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
