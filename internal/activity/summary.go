package activity

import (
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/util"
)

// Summary holds the dashboard counters for one day.
type Summary struct {
	Active    int
	Archived  int
	TasksDue  int
	TasksDone int
	LogsToday int
	Level     int
}

// Summarize counts objectives and today's activity. Task counts only
// consider non-archived objectives, matching the daily agenda.
func Summarize(objs []models.Objective, today time.Time) Summary {
	var s Summary
	for _, o := range objs {
		switch {
		case o.IsArchived:
			s.Archived++
		case !o.IsCompleted:
			s.Active++
		}
		for _, kr := range o.KeyResults {
			for _, l := range kr.Logs {
				if util.SameDay(today, l.Date) {
					s.LogsToday++
				}
			}
			if o.IsArchived {
				continue
			}
			for _, t := range kr.Tasks {
				if !t.OccursOn(today) {
					continue
				}
				s.TasksDue++
				if t.CompletedOn(today) {
					s.TasksDone++
				}
			}
		}
	}
	s.Level = IntensityOn(objs, today)
	return s
}
