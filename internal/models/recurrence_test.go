package models

import (
	"testing"
	"time"
)

var monday = time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)

func TestOccursOnNone(t *testing.T) {
	task := Task{Date: monday, Recurrence: RecurNone}
	if !task.OccursOn(monday.Add(10 * time.Hour)) {
		t.Fatalf("expected occurrence later on the anchor day")
	}
	if task.OccursOn(monday.AddDate(0, 0, 1)) || task.OccursOn(monday.AddDate(0, 0, -1)) {
		t.Fatalf("one-off task must only occur on its anchor day")
	}
}

func TestOccursOnDaily(t *testing.T) {
	task := Task{Date: monday, Recurrence: RecurDaily}
	if task.OccursOn(monday.AddDate(0, 0, -1)) {
		t.Fatalf("daily task must not occur before its anchor")
	}
	for i := 0; i < 10; i++ {
		if !task.OccursOn(monday.AddDate(0, 0, i)) {
			t.Fatalf("expected daily occurrence on day %d", i)
		}
	}
	if !task.OccursOn(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected occurrence at midnight of the anchor day")
	}
}

func TestOccursOnWeeklyMonday(t *testing.T) {
	task := Task{Date: monday, Recurrence: RecurWeekly}
	for i := 0; i < 28; i++ {
		d := monday.AddDate(0, 0, i)
		want := d.Weekday() == time.Monday
		if got := task.OccursOn(d); got != want {
			t.Fatalf("OccursOn(%s %s) = %v, want %v", d.Format("2006-01-02"), d.Weekday(), got, want)
		}
	}
	if task.OccursOn(monday.AddDate(0, 0, -7)) {
		t.Fatalf("weekly task must not occur before its anchor")
	}
}

func TestOccursOnWeekdays(t *testing.T) {
	task := Task{Date: monday, Recurrence: RecurWeekdays}
	for i := 0; i < 21; i++ {
		d := monday.AddDate(0, 0, i)
		got := task.OccursOn(d)
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			if got {
				t.Fatalf("weekdays task occurred on %s", d.Weekday())
			}
			continue
		}
		if !got {
			t.Fatalf("expected weekdays task on %s", d.Weekday())
		}
	}
}

func TestCompletedOnIgnoresTimeOfDay(t *testing.T) {
	task := Task{Date: monday, Recurrence: RecurDaily, CompletedDates: []time.Time{
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}}
	if !task.CompletedOn(time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected completion on 2024-01-03")
	}
	if task.CompletedOn(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected completion on 2024-01-04")
	}
}

func TestOccurrencesRange(t *testing.T) {
	task := Task{Date: monday, Recurrence: RecurWeekly}
	got := task.Occurrences(monday.AddDate(0, 0, -3), monday.AddDate(0, 0, 20))
	if len(got) != 3 {
		t.Fatalf("expected 3 weekly occurrences, got %d", len(got))
	}
}
