package models

import (
	"math"
	"slices"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestProgressHistoryEmpty(t *testing.T) {
	o := Objective{StartDate: day(0), DueDate: day(30)}
	points := slices.Collect(o.ProgressHistoryAt(day(10)))
	if len(points) != 2 {
		t.Fatalf("expected seed and trailing point, got %d", len(points))
	}
	if points[0].Value != 0 || !points[0].Date.Equal(day(0)) {
		t.Fatalf("unexpected seed %+v", points[0])
	}
	if !points[1].Date.Equal(day(10)) {
		t.Fatalf("unexpected trailing point %+v", points[1])
	}
}

func TestProgressHistoryReconstruction(t *testing.T) {
	a := KeyResult{TargetValue: 4, Weight: 100, CurrentValue: 4, Logs: []ActivityLog{
		{Date: day(5), NewValue: 4},
		{Date: day(2), NewValue: 2},
	}}
	b := KeyResult{TargetValue: 10, Weight: 100, CurrentValue: 5, Logs: []ActivityLog{
		{Date: day(3), NewValue: 5},
	}}
	o := Objective{StartDate: day(0), DueDate: day(30), KeyResults: []KeyResult{a, b}}

	points := slices.Collect(o.ProgressHistoryAt(day(20)))
	want := []float64{0, 0.25, 0.5, 0.75, 0.75}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d: %+v", len(want), len(points), points)
	}
	for i, p := range points {
		if math.Abs(p.Value-want[i]) > 1e-9 {
			t.Fatalf("point %d value = %v, want %v", i, p.Value, want[i])
		}
		if i > 0 && p.Date.Before(points[i-1].Date) {
			t.Fatalf("history not sorted at %d", i)
		}
	}
}

func TestProgressHistoryTieBreakUsesNewestInsert(t *testing.T) {
	kr := KeyResult{TargetValue: 10, Weight: 1, Logs: []ActivityLog{
		{Date: day(1), NewValue: 7},
		{Date: day(1), NewValue: 3},
	}}
	o := Objective{StartDate: day(0), KeyResults: []KeyResult{kr}}
	if got := o.ProgressAt(day(1)); math.Abs(got-0.7) > 1e-9 {
		t.Fatalf("ProgressAt() = %v, want 0.7", got)
	}
}

func TestProgressHistoryZeroWeightFallback(t *testing.T) {
	a := KeyResult{TargetValue: 10, Weight: 0, Logs: []ActivityLog{{Date: day(1), NewValue: 2}}}
	b := KeyResult{TargetValue: 10, Weight: 0, Logs: []ActivityLog{{Date: day(1), NewValue: 8}}}
	o := Objective{StartDate: day(0), KeyResults: []KeyResult{a, b}}
	if got := o.ProgressAt(day(1)); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("ProgressAt() = %v, want 0.5", got)
	}
}

func TestProgressHistorySkipsTrailingPointForFreshLog(t *testing.T) {
	now := day(4)
	kr := KeyResult{TargetValue: 2, Weight: 1, CurrentValue: 1, Logs: []ActivityLog{
		{Date: now.Add(-30 * time.Second), NewValue: 1},
	}}
	o := Objective{StartDate: day(0), KeyResults: []KeyResult{kr}}
	points := slices.Collect(o.ProgressHistoryAt(now))
	if len(points) != 2 {
		t.Fatalf("expected no trailing point, got %+v", points)
	}
}

func TestProgressHistoryFirstPointIsZero(t *testing.T) {
	kr := KeyResult{TargetValue: 2, Weight: 1, CurrentValue: 2, Logs: []ActivityLog{
		{Date: day(3), NewValue: 2},
		{Date: day(-5), NewValue: 1},
	}}
	o := Objective{StartDate: day(0), KeyResults: []KeyResult{kr}}
	points := slices.Collect(o.ProgressHistoryAt(day(10)))
	if points[0].Value != 0 || !points[0].Date.Equal(day(0)) {
		t.Fatalf("first point = %+v, want zero seed", points[0])
	}
}

func TestProgressHistoryIsRestartable(t *testing.T) {
	kr := KeyResult{TargetValue: 2, Weight: 1, Logs: []ActivityLog{{Date: day(1), NewValue: 1}}}
	o := Objective{StartDate: day(0), KeyResults: []KeyResult{kr}}
	seq := o.ProgressHistoryAt(day(5))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if len(first) != len(second) {
		t.Fatalf("sequence changed between ranges: %d vs %d", len(first), len(second))
	}
	for range seq {
		break
	}
}

func TestProgressLogProgressionReachesCompletion(t *testing.T) {
	kr := KeyResult{TargetValue: 5, Weight: 100, CurrentValue: 5, Logs: []ActivityLog{
		{Date: day(3), PreviousValue: 2, NewValue: 5},
		{Date: day(2), PreviousValue: 0, NewValue: 2},
		{Date: day(1), PreviousValue: 0, NewValue: 0},
	}}
	o := Objective{StartDate: day(0), DueDate: day(30), KeyResults: []KeyResult{kr}}
	if got := o.Progress(); got != 1 {
		t.Fatalf("Progress() = %v, want 1", got)
	}
	points := slices.Collect(o.ProgressHistoryAt(day(3).Add(time.Second)))
	want := []float64{0, 0, 0.4, 1}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %+v", len(want), points)
	}
	for i := range want {
		if math.Abs(points[i].Value-want[i]) > 1e-9 {
			t.Fatalf("point %d = %v, want %v", i, points[i].Value, want[i])
		}
	}
}

func TestProgressHistoryLogBeforeStartHasNoPoint(t *testing.T) {
	early := KeyResult{TargetValue: 10, Weight: 100, CurrentValue: 4, Logs: []ActivityLog{
		{Date: day(0).Add(-time.Hour), NewValue: 4},
	}}
	o := Objective{StartDate: day(0), KeyResults: []KeyResult{early}}
	points := slices.Collect(o.ProgressHistoryAt(day(10)))
	if len(points) != 2 {
		t.Fatalf("expected seed and trailing point only, got %+v", points)
	}
	if points[0].Value != 0 || !points[0].Date.Equal(day(0)) {
		t.Fatalf("first point = %+v, want zero seed", points[0])
	}
	if !points[1].Date.Equal(day(10)) || math.Abs(points[1].Value-0.4) > 1e-9 {
		t.Fatalf("trailing point = %+v, want 0.4 at day 10", points[1])
	}

	// the early log still feeds reconstructions at later log dates
	early.Logs = append([]ActivityLog{{Date: day(2), NewValue: 6}}, early.Logs...)
	o.KeyResults = []KeyResult{early}
	points = slices.Collect(o.ProgressHistoryAt(day(2)))
	if len(points) != 2 || math.Abs(points[1].Value-0.6) > 1e-9 {
		t.Fatalf("expected a 0.6 point at day 2, got %+v", points)
	}
}

func TestProgressHistoryWallClock(t *testing.T) {
	start := time.Now().Add(-48 * time.Hour)
	kr := KeyResult{TargetValue: 4, Weight: 100, CurrentValue: 2, Logs: []ActivityLog{
		{Date: start.Add(time.Hour), NewValue: 2},
	}}
	o := Objective{StartDate: start, DueDate: start.Add(96 * time.Hour), KeyResults: []KeyResult{kr}}

	seq := o.ProgressHistory()
	for pass := range 2 {
		points := slices.Collect(seq)
		if len(points) != 3 {
			t.Fatalf("pass %d: expected seed, log and trailing point, got %+v", pass, points)
		}
		last := points[len(points)-1]
		if time.Since(last.Date) > time.Minute || last.Value != 0.5 {
			t.Fatalf("pass %d: trailing point = %+v, want 0.5 near now", pass, last)
		}
	}
}
