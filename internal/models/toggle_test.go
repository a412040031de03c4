package models

import (
	"math"
	"testing"
	"time"
)

func toggleFixture(weight float64) (KeyResult, string) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	task := NewTask("Write", now.AddDate(0, 0, -5), RecurDaily, weight, now)
	kr := KeyResult{ID: "kr", TargetValue: 10, CurrentValue: 3, Weight: 100, Tasks: []Task{task}}
	return kr, task.ID
}

func TestToggleTaskRoundTrip(t *testing.T) {
	kr, id := toggleFixture(2)
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	occurrence := now.AddDate(0, 0, -2)

	done, ok := kr.ToggleTask(id, occurrence, now)
	if !ok || !done {
		t.Fatalf("ToggleTask() = %v, %v; want completed", done, ok)
	}
	if kr.CurrentValue != 5 {
		t.Fatalf("CurrentValue = %v, want 5", kr.CurrentValue)
	}
	if len(kr.Logs) != 1 || kr.Logs[0].Message != "Task completed: Write" {
		t.Fatalf("expected completion log, got %+v", kr.Logs)
	}
	if kr.Logs[0].PreviousValue != 3 || kr.Logs[0].NewValue != 5 {
		t.Fatalf("unexpected log values %+v", kr.Logs[0])
	}
	if !kr.Tasks[0].CompletedOn(occurrence) {
		t.Fatalf("expected occurrence to be completed")
	}

	done, ok = kr.ToggleTask(id, occurrence, now.Add(time.Hour))
	if !ok || done {
		t.Fatalf("ToggleTask() = %v, %v; want un-completed", done, ok)
	}
	if math.Abs(kr.CurrentValue-3) > 1e-9 {
		t.Fatalf("CurrentValue = %v, want 3 after round trip", kr.CurrentValue)
	}
	if len(kr.Logs) != 0 {
		t.Fatalf("expected rollback to remove the completion log, got %+v", kr.Logs)
	}
	if len(kr.Tasks[0].CompletedDates) != 0 {
		t.Fatalf("expected completion removed, got %v", kr.Tasks[0].CompletedDates)
	}
}

func TestToggleTaskCapsAtTarget(t *testing.T) {
	kr, id := toggleFixture(20)
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	kr.ToggleTask(id, now, now)
	if kr.CurrentValue != 10 {
		t.Fatalf("CurrentValue = %v, want capped 10", kr.CurrentValue)
	}
	kr.ToggleTask(id, now, now)
	if kr.CurrentValue != 0 {
		t.Fatalf("CurrentValue = %v, want floored 0", kr.CurrentValue)
	}
}

func TestToggleTaskRollbackOnlyMatchesToday(t *testing.T) {
	kr, id := toggleFixture(1)
	completedAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	kr.ToggleTask(id, completedAt, completedAt)

	nextDay := completedAt.AddDate(0, 0, 1)
	kr.ToggleTask(id, completedAt, nextDay)
	if kr.CurrentValue != 3 {
		t.Fatalf("CurrentValue = %v, want 3", kr.CurrentValue)
	}
	if len(kr.Logs) != 1 {
		t.Fatalf("expected yesterday's log to stay, got %d logs", len(kr.Logs))
	}
}

func TestToggleTaskRollbackRemovesNewestMatch(t *testing.T) {
	kr, id := toggleFixture(1)
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	kr.ToggleTask(id, now.AddDate(0, 0, -1), now)
	kr.ToggleTask(id, now, now.Add(time.Minute))
	newest := kr.Logs[0].ID

	kr.ToggleTask(id, now.AddDate(0, 0, -1), now.Add(2*time.Minute))
	if len(kr.Logs) != 1 {
		t.Fatalf("expected one log left, got %d", len(kr.Logs))
	}
	if kr.Logs[0].ID == newest {
		t.Fatalf("expected the newest matching log to be removed")
	}
}

func TestToggleTaskZeroWeight(t *testing.T) {
	kr, id := toggleFixture(0)
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	kr.ToggleTask(id, now, now)
	if kr.CurrentValue != 3 || len(kr.Logs) != 0 {
		t.Fatalf("weightless task changed key result: %v, %d logs", kr.CurrentValue, len(kr.Logs))
	}
	if !kr.Tasks[0].CompletedOn(now) {
		t.Fatalf("expected completion recorded")
	}
}

func TestToggleTaskUnknown(t *testing.T) {
	kr, _ := toggleFixture(1)
	if _, ok := kr.ToggleTask("missing", time.Now(), time.Now()); ok {
		t.Fatalf("expected unknown task to report not found")
	}
}
