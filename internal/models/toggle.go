package models

import (
	"math"
	"slices"
	"time"

	"github.com/akyairhashvil/okrt/internal/util"
)

// TaskCompletedMessage is the log message written when a task completion
// moves its key result.
func TaskCompletedMessage(title string) string {
	return "Task completed: " + title
}

// ToggleTask flips the completion of task taskID on day and applies the
// weight to the key result. It reports the new completion state and whether
// the task exists.
//
// Un-completing removes the first log (newest first) carrying the task's
// completion message and dated today, where today is taken from now rather
// than from day. When no such log exists only the value changes.
func (kr *KeyResult) ToggleTask(taskID string, day, now time.Time) (completed, ok bool) {
	idx := kr.TaskIndex(taskID)
	if idx < 0 {
		return false, false
	}
	task := &kr.Tasks[idx]
	day = util.StartOfDay(day)

	if ci := task.completedIndex(day); ci >= 0 {
		// TODO: match the log by task reference once logs carry one.
		task.CompletedDates = slices.Delete(task.CompletedDates, ci, ci+1)
		if task.Weight > 0 {
			kr.CurrentValue = math.Max(0, kr.CurrentValue-task.Weight)
			msg := TaskCompletedMessage(task.Title)
			li := slices.IndexFunc(kr.Logs, func(l ActivityLog) bool {
				return l.Message == msg && util.SameDay(now, l.Date)
			})
			if li >= 0 {
				kr.Logs = slices.Delete(kr.Logs, li, li+1)
			}
		}
		return false, true
	}

	task.CompletedDates = append(task.CompletedDates, day)
	if task.Weight > 0 {
		prev := kr.CurrentValue
		kr.CurrentValue = math.Min(kr.TargetValue, prev+task.Weight)
		kr.PrependLog(NewLog(TaskCompletedMessage(task.Title), prev, kr.CurrentValue, now))
	}
	return true, true
}
