package models

import (
	"slices"
	"time"

	"github.com/akyairhashvil/okrt/internal/util"
)

// OccursOn reports whether the task has an occurrence on day's calendar day.
func (t Task) OccursOn(day time.Time) bool {
	anchor := t.Date.In(day.Location())
	if t.Recurrence == RecurNone || t.Recurrence == "" {
		return util.SameDay(day, anchor)
	}
	if !util.DayOnOrBefore(anchor, day) {
		return false
	}
	switch t.Recurrence {
	case RecurDaily:
		return true
	case RecurWeekly:
		return day.Weekday() == anchor.Weekday()
	case RecurWeekdays:
		return util.IsWeekday(day)
	default:
		return false
	}
}

func (t Task) completedIndex(day time.Time) int {
	return slices.IndexFunc(t.CompletedDates, func(d time.Time) bool { return util.SameDay(day, d) })
}

// CompletedOn reports whether the occurrence on day was marked complete.
func (t Task) CompletedOn(day time.Time) bool {
	return t.completedIndex(day) >= 0
}

// Occurrences lists the days in [from, to] on which the task occurs.
func (t Task) Occurrences(from, to time.Time) []time.Time {
	var out []time.Time
	for d := util.StartOfDay(from); !d.After(to); d = util.AddDays(d, 1) {
		if t.OccursOn(d) {
			out = append(out, d)
		}
	}
	return out
}
