package store

import (
	"context"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
)

// UpdateProgressMessage is logged for value changes made without a message.
const UpdateProgressMessage = "Update progress"

// valueEpsilon is the smallest change that earns an automatic log entry.
const valueEpsilon = 0.001

// Add appends an objective.
func (s *Store) Add(ctx context.Context, o models.Objective) {
	s.mutate(ctx, func() bool {
		s.objectives = append(s.objectives, o.Clone())
		return true
	})
}

// Delete removes the objectives with the given ids together with everything they own.
func (s *Store) Delete(ctx context.Context, ids ...string) bool {
	return s.mutate(ctx, func() bool {
		before := len(s.objectives)
		s.objectives = slices.DeleteFunc(s.objectives, func(o models.Objective) bool {
			return slices.Contains(ids, o.ID)
		})
		return len(s.objectives) != before
	})
}

// DeleteAt removes objectives by display position. Out of range positions are ignored.
func (s *Store) DeleteAt(ctx context.Context, positions ...int) bool {
	return s.mutate(ctx, func() bool {
		idx := slices.Clone(positions)
		sort.Sort(sort.Reverse(sort.IntSlice(idx)))
		idx = slices.Compact(idx)
		removed := false
		for _, i := range idx {
			if i < 0 || i >= len(s.objectives) {
				continue
			}
			s.objectives = slices.Delete(s.objectives, i, i+1)
			removed = true
		}
		return removed
	})
}

// Edit applies fn to the objective with id. Use it for direct field edits
// such as title, description, icon and dates.
func (s *Store) Edit(ctx context.Context, id string, fn func(*models.Objective)) bool {
	return s.mutate(ctx, func() bool {
		i := s.find(id)
		if i < 0 {
			return false
		}
		fn(&s.objectives[i])
		return true
	})
}

// SetArchived sets the archived flag by hand. The archive pass may
// immediately re-archive an objective that is still at full progress.
func (s *Store) SetArchived(ctx context.Context, id string, archived bool) bool {
	return s.Edit(ctx, id, func(o *models.Objective) { o.IsArchived = archived })
}

// SetCompleted sets the manual completion flag.
func (s *Store) SetCompleted(ctx context.Context, id string, completed bool) bool {
	return s.Edit(ctx, id, func(o *models.Objective) { o.IsCompleted = completed })
}

// UpdateKeyResultValue sets a key result's current value. A non-empty
// message is always logged; otherwise only changes larger than valueEpsilon
// are logged, as UpdateProgressMessage.
func (s *Store) UpdateKeyResultValue(ctx context.Context, objectiveID, keyResultID string, value float64, message string) bool {
	return s.mutate(ctx, func() bool {
		kr := s.keyResult(objectiveID, keyResultID)
		if kr == nil {
			return false
		}
		old := kr.CurrentValue
		kr.CurrentValue = value
		switch {
		case message != "":
			kr.PrependLog(models.NewLog(message, old, value, s.now()))
		case math.Abs(value-old) > valueEpsilon:
			kr.PrependLog(models.NewLog(UpdateProgressMessage, old, value, s.now()))
		}
		return true
	})
}

// ToggleTask flips the completion of a task occurrence on day and applies
// the task weight to its key result.
func (s *Store) ToggleTask(ctx context.Context, objectiveID, keyResultID, taskID string, day time.Time) bool {
	return s.mutate(ctx, func() bool {
		kr := s.keyResult(objectiveID, keyResultID)
		if kr == nil {
			return false
		}
		_, ok := kr.ToggleTask(taskID, day, s.now())
		return ok
	})
}

// AddKeyResult appends a key result to an objective.
func (s *Store) AddKeyResult(ctx context.Context, objectiveID string, kr models.KeyResult) bool {
	return s.Edit(ctx, objectiveID, func(o *models.Objective) {
		o.KeyResults = append(o.KeyResults, kr.Clone())
	})
}

// RemoveKeyResult deletes a key result with its tasks and logs.
func (s *Store) RemoveKeyResult(ctx context.Context, objectiveID, keyResultID string) bool {
	return s.mutate(ctx, func() bool {
		oi := s.find(objectiveID)
		if oi < 0 {
			return false
		}
		ki := s.objectives[oi].KeyResultIndex(keyResultID)
		if ki < 0 {
			return false
		}
		s.objectives[oi].KeyResults = slices.Delete(s.objectives[oi].KeyResults, ki, ki+1)
		return true
	})
}

// AddTask appends a task to a key result.
func (s *Store) AddTask(ctx context.Context, objectiveID, keyResultID string, t models.Task) bool {
	return s.mutate(ctx, func() bool {
		kr := s.keyResult(objectiveID, keyResultID)
		if kr == nil {
			return false
		}
		t.CompletedDates = slices.Clone(t.CompletedDates)
		kr.Tasks = append(kr.Tasks, t)
		return true
	})
}

// UpdateTask edits a task's title, anchor date, recurrence or weight in place.
func (s *Store) UpdateTask(ctx context.Context, objectiveID, keyResultID, taskID string, fn func(*models.Task)) bool {
	return s.mutate(ctx, func() bool {
		kr := s.keyResult(objectiveID, keyResultID)
		if kr == nil {
			return false
		}
		ti := kr.TaskIndex(taskID)
		if ti < 0 {
			return false
		}
		fn(&kr.Tasks[ti])
		return true
	})
}

// RemoveTask deletes a task. Values it contributed stay on the key result.
func (s *Store) RemoveTask(ctx context.Context, objectiveID, keyResultID, taskID string) bool {
	return s.mutate(ctx, func() bool {
		kr := s.keyResult(objectiveID, keyResultID)
		if kr == nil {
			return false
		}
		ti := kr.TaskIndex(taskID)
		if ti < 0 {
			return false
		}
		kr.Tasks = slices.Delete(kr.Tasks, ti, ti+1)
		return true
	})
}
