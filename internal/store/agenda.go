package store

import (
	"slices"
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
)

// AgendaItem is one task occurrence on a given day.
type AgendaItem struct {
	ObjectiveID    string
	ObjectiveTitle string
	KeyResultID    string
	KeyResultTitle string
	Health         models.Health
	Task           models.Task
	Completed      bool
}

// Agenda lists the task occurrences on day across non-archived objectives,
// pending items first and otherwise in document order.
func Agenda(objs []models.Objective, day, now time.Time) []AgendaItem {
	var items []AgendaItem
	for _, o := range objs {
		if o.IsArchived {
			continue
		}
		health := o.HealthAt(now)
		for _, kr := range o.KeyResults {
			for _, t := range kr.Tasks {
				if !t.OccursOn(day) {
					continue
				}
				items = append(items, AgendaItem{
					ObjectiveID:    o.ID,
					ObjectiveTitle: o.Title,
					KeyResultID:    kr.ID,
					KeyResultTitle: kr.Title,
					Health:         health,
					Task:           t,
					Completed:      t.CompletedOn(day),
				})
			}
		}
	}
	slices.SortStableFunc(items, func(a, b AgendaItem) int {
		switch {
		case a.Completed == b.Completed:
			return 0
		case !a.Completed:
			return -1
		default:
			return 1
		}
	})
	return items
}

// TasksForDate is Agenda over the store's objectives.
func (s *Store) TasksForDate(day time.Time) []AgendaItem {
	return Agenda(s.Objectives(), day, s.now())
}
