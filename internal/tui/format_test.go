package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/testutil"
)

func TestTruncate(t *testing.T) {
	if got := truncate("Improve physical fitness", 10); got != "Improve..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("short strings should pass through, got %q", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("zero width should be empty, got %q", got)
	}
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("unexpected padding %q", got)
	}
}

func TestFormatDay(t *testing.T) {
	now := testutil.Epoch
	cases := []struct {
		day  time.Time
		want string
	}{
		{now, "Today, Mon 2024-01-01"},
		{now.AddDate(0, 0, -1), "Yesterday, Sun 2023-12-31"},
		{now.AddDate(0, 0, 1), "Tomorrow, Tue 2024-01-02"},
		{now.AddDate(0, 0, 5), "Sat 2024-01-06"},
	}
	for _, tc := range cases {
		if got := FormatDay(tc.day, now); got != tc.want {
			t.Fatalf("FormatDay(%v) = %q, want %q", tc.day, got, tc.want)
		}
	}
}

func TestFormatTaskCount(t *testing.T) {
	if got := FormatTaskCount(0, 0); got != "No tasks" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatTaskCount(2, 5); got != "2/5 tasks" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestSparkline(t *testing.T) {
	points := []models.DatePoint{{Value: 0}, {Value: 0.5}, {Value: 1}, {Value: 2}}
	if got := Sparkline(points, 10); got != "▁▄██" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline(points, 2); got != "██" {
		t.Fatalf("expected the newest points when narrow, got %q", got)
	}
	if Sparkline(nil, 10) != "" {
		t.Fatalf("expected empty sparkline")
	}
}
