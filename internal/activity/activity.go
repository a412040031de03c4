// Package activity aggregates task completions and value logs into per-day
// intensity levels for the heatmap, and builds the dashboard progress curve.
package activity

import (
	"slices"
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/util"
)

// Default trailing windows.
const (
	DefaultWindowDays     = 140
	DefaultWeekWindowDays = 180
)

// MaxLevel is the highest intensity level.
const MaxLevel = 4

// Day is one heatmap cell.
type Day struct {
	Date  time.Time
	Count int
	Level int
}

// Intensity maps an activity count to a level in [0, MaxLevel].
func Intensity(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return 3
	default:
		return MaxLevel
	}
}

// CountOn counts task completions on day plus logs dated on day.
func CountOn(objs []models.Objective, day time.Time) int {
	n := 0
	for _, o := range objs {
		for _, kr := range o.KeyResults {
			for _, t := range kr.Tasks {
				if t.CompletedOn(day) {
					n++
				}
			}
			for _, l := range kr.Logs {
				if util.SameDay(day, l.Date) {
					n++
				}
			}
		}
	}
	return n
}

// IntensityOn is Intensity(CountOn(objs, day)).
func IntensityOn(objs []models.Objective, day time.Time) int {
	return Intensity(CountOn(objs, day))
}

// Filter narrows objs to the objective with id. An empty id keeps everything.
func Filter(objs []models.Objective, id string) []models.Objective {
	if id == "" {
		return objs
	}
	for _, o := range objs {
		if o.ID == id {
			return []models.Objective{o}
		}
	}
	return nil
}

// Window returns one cell per day from today-days through today.
func Window(objs []models.Objective, today time.Time, days int) []Day {
	end := util.StartOfDay(today)
	return span(objs, util.AddDays(end, -days), end)
}

// WeekWindow is Window started on the Sunday of the week containing
// today-days, so the cells fill a seven-row grid column by column.
func WeekWindow(objs []models.Objective, today time.Time, days int) []Day {
	end := util.StartOfDay(today)
	start := util.AddDays(end, -days)
	start = util.AddDays(start, -int(start.Weekday()))
	return span(objs, start, end)
}

func span(objs []models.Objective, start, end time.Time) []Day {
	var out []Day
	for d := start; !d.After(end); d = util.AddDays(d, 1) {
		n := CountOn(objs, d)
		out = append(out, Day{Date: d, Count: n, Level: Intensity(n)})
	}
	return out
}

// Weeks splits cells into columns of seven. The last column may be short.
func Weeks(days []Day) [][]Day {
	return slices.Collect(slices.Chunk(days, 7))
}

// OverallProgress is the dashboard curve. For each distinct calendar day
// found in any objective's history it averages, over objectives started by
// that day, the last history value on or before the end of that day.
func OverallProgress(objs []models.Objective, now time.Time) []models.DatePoint {
	histories := make([][]models.DatePoint, len(objs))
	var days []time.Time
	for i, o := range objs {
		histories[i] = slices.Collect(o.ProgressHistoryAt(now))
		for _, p := range histories[i] {
			days = append(days, util.StartOfDay(p.Date.In(now.Location())))
		}
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	days = slices.CompactFunc(days, time.Time.Equal)

	var out []models.DatePoint
	for _, d := range days {
		endOfDay := d.Add(24*time.Hour - time.Second)
		total, n := 0.0, 0
		for i, o := range objs {
			if !util.DayOnOrBefore(o.StartDate.In(d.Location()), d) {
				continue
			}
			n++
			total += lastOnOrBefore(histories[i], endOfDay)
		}
		if n > 0 {
			out = append(out, models.DatePoint{Date: d, Value: total / float64(n)})
		}
	}
	return out
}

func lastOnOrBefore(points []models.DatePoint, at time.Time) float64 {
	v := 0.0
	for _, p := range points {
		if !p.Date.After(at) {
			v = p.Value
		}
	}
	return v
}
