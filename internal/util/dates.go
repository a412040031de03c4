package util

import "time"

// DayLayout is the calendar-day format used on the command line and in reports.
const DayLayout = "2006-01-02"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day, with b
// viewed in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// DayOnOrBefore reports whether day(a) <= day(b).
func DayOnOrBefore(a, b time.Time) bool {
	return !StartOfDay(a).After(StartOfDay(b.In(a.Location())))
}

// AddDays moves t by n calendar days, keeping the wall clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// ParseDay parses a YYYY-MM-DD string as local midnight. An empty string
// yields today.
func ParseDay(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return StartOfDay(now), nil
	}
	return time.ParseInLocation(DayLayout, s, now.Location())
}

// IsWeekday reports whether t falls Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}
