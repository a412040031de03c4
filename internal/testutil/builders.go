package testutil

import (
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
)

// Epoch is a fixed Monday morning used as "now" across tests.
var Epoch = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// Clock returns a func reporting *t, so tests can move time.
func Clock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

// ObjectiveBuilder provides fluent API for creating test objectives.
type ObjectiveBuilder struct {
	objective models.Objective
}

func NewObjective() *ObjectiveBuilder {
	return &ObjectiveBuilder{
		objective: models.Objective{
			ID:        models.NewID(),
			Title:     "Test Objective",
			Icon:      models.DefaultIcon,
			StartDate: Epoch,
			DueDate:   Epoch.AddDate(0, 0, 30),
		},
	}
}

func (b *ObjectiveBuilder) WithID(id string) *ObjectiveBuilder {
	b.objective.ID = id
	return b
}

func (b *ObjectiveBuilder) WithTitle(title string) *ObjectiveBuilder {
	b.objective.Title = title
	return b
}

func (b *ObjectiveBuilder) WithSpan(start, due time.Time) *ObjectiveBuilder {
	b.objective.StartDate = start
	b.objective.DueDate = due
	return b
}

func (b *ObjectiveBuilder) WithKeyResults(krs ...models.KeyResult) *ObjectiveBuilder {
	b.objective.KeyResults = append(b.objective.KeyResults, krs...)
	return b
}

func (b *ObjectiveBuilder) Archived() *ObjectiveBuilder {
	b.objective.IsArchived = true
	return b
}

func (b *ObjectiveBuilder) Build() models.Objective {
	return b.objective.Clone()
}

// KeyResultBuilder provides fluent API for creating test key results.
type KeyResultBuilder struct {
	kr models.KeyResult
}

func NewKeyResult() *KeyResultBuilder {
	return &KeyResultBuilder{
		kr: models.KeyResult{
			ID:          models.NewID(),
			Title:       "Test Key Result",
			Type:        models.TypeNumber,
			TargetValue: 10,
			Unit:        "times",
			Weight:      models.DefaultKeyResultWeight,
		},
	}
}

func (b *KeyResultBuilder) WithID(id string) *KeyResultBuilder {
	b.kr.ID = id
	return b
}

func (b *KeyResultBuilder) WithTitle(title string) *KeyResultBuilder {
	b.kr.Title = title
	return b
}

func (b *KeyResultBuilder) WithValues(current, target float64) *KeyResultBuilder {
	b.kr.CurrentValue = current
	b.kr.TargetValue = target
	return b
}

func (b *KeyResultBuilder) WithWeight(w float64) *KeyResultBuilder {
	b.kr.Weight = w
	return b
}

func (b *KeyResultBuilder) WithLog(at time.Time, prev, next float64) *KeyResultBuilder {
	b.kr.Logs = append(b.kr.Logs, models.NewLog("log", prev, next, at))
	return b
}

func (b *KeyResultBuilder) WithTasks(tasks ...models.Task) *KeyResultBuilder {
	b.kr.Tasks = append(b.kr.Tasks, tasks...)
	return b
}

func (b *KeyResultBuilder) Build() models.KeyResult {
	return b.kr.Clone()
}

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:         models.NewID(),
			Title:      "Test Task",
			Date:       Epoch,
			Recurrence: models.RecurNone,
			CreatedAt:  Epoch,
		},
	}
}

func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithDate(d time.Time) *TaskBuilder {
	b.task.Date = d
	return b
}

func (b *TaskBuilder) WithRecurrence(r models.Recurrence) *TaskBuilder {
	b.task.Recurrence = r
	return b
}

func (b *TaskBuilder) WithWeight(w float64) *TaskBuilder {
	b.task.Weight = w
	return b
}

func (b *TaskBuilder) CompletedOn(days ...time.Time) *TaskBuilder {
	b.task.CompletedDates = append(b.task.CompletedDates, days...)
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}
