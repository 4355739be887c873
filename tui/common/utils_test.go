package common

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly5!", 9, "exactly5!"},
		{"this is too long", 8, "this is…"},
		{"x", 0, ""},
		{"xy", 1, "…"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-48 * time.Hour), "2d"},
		{now.Add(-30 * 24 * time.Hour), "May 2, 2025"},
		{time.Time{}, ""},
	}
	for _, tc := range cases {
		if got := RelativeTime(tc.t, now); got != tc.want {
			t.Fatalf("RelativeTime(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestEstimateWrappedLines(t *testing.T) {
	if got := EstimateWrappedLines("abcdef", 3); got != 2 {
		t.Fatalf("expected 2 wrapped lines, got %d", got)
	}
	if got := EstimateWrappedLines("a\n\nb", 10); got != 3 {
		t.Fatalf("expected 3 lines with blank kept, got %d", got)
	}
	if got := EstimateWrappedLines("", 10); got != 1 {
		t.Fatalf("empty text still occupies one line, got %d", got)
	}
}
