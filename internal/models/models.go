package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// KeyResultType describes how a key result's value is measured and displayed.
type KeyResultType string

const (
	TypeNumber     KeyResultType = "number"
	TypePercentage KeyResultType = "percentage"
	TypeCurrency   KeyResultType = "currency"
	TypeBoolean    KeyResultType = "boolean"
)

// Recurrence enumerates how a task repeats after its anchor date.
type Recurrence string

const (
	RecurNone     Recurrence = "none"
	RecurDaily    Recurrence = "daily"
	RecurWeekly   Recurrence = "weekly"
	RecurWeekdays Recurrence = "weekdays"
)

// KeyResultTypes lists every key result type in display order.
var KeyResultTypes = []KeyResultType{TypeNumber, TypePercentage, TypeCurrency, TypeBoolean}

// Recurrences lists every recurrence in display order.
var Recurrences = []Recurrence{RecurNone, RecurDaily, RecurWeekly, RecurWeekdays}

// ParseKeyResultType resolves a case-insensitive type name. Empty means number.
func ParseKeyResultType(s string) (KeyResultType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeNumber, nil
	}
	for _, t := range KeyResultTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown key result type %q", s)
}

// ParseRecurrence resolves a case-insensitive recurrence name. Empty means none.
func ParseRecurrence(s string) (Recurrence, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "once" {
		return RecurNone, nil
	}
	for _, r := range Recurrences {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown recurrence %q", s)
}

// DefaultIcon is used when an objective is created without an icon.
const DefaultIcon = "target"

// DefaultKeyResultWeight is the relative weight of a new key result.
const DefaultKeyResultWeight = 100.0

// ActivityLog records a single value change on a key result.
type ActivityLog struct {
	ID            string    `json:"id" yaml:"id"`
	Date          time.Time `json:"date" yaml:"date"`
	Message       string    `json:"message" yaml:"message"`
	PreviousValue float64   `json:"previousValue" yaml:"previousValue"`
	NewValue      float64   `json:"newValue" yaml:"newValue"`
}

// Task is a planned, optionally recurring action that feeds a key result.
type Task struct {
	ID             string      `json:"id" yaml:"id"`
	Title          string      `json:"title" yaml:"title"`
	Date           time.Time   `json:"date" yaml:"date"` // anchor; first occurrence when recurring
	Recurrence     Recurrence  `json:"recurrence" yaml:"recurrence"`
	Weight         float64     `json:"weight" yaml:"weight"`
	CompletedDates []time.Time `json:"completedDates" yaml:"completedDates"` // day-normalised, no duplicates
	CreatedAt      time.Time   `json:"createdAt" yaml:"createdAt"`
}

// KeyResult is a measurable sub-goal owned by one objective.
type KeyResult struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Type         KeyResultType `json:"type"`
	CurrentValue float64       `json:"currentValue"`
	TargetValue  float64       `json:"targetValue"`
	Unit         string        `json:"unit"`
	Weight       float64       `json:"weight"`
	Logs         []ActivityLog `json:"logs"` // newest first
	Tasks        []Task        `json:"tasks"`
}

// Objective is a goal measured by its key results.
type Objective struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	KeyResults  []KeyResult `json:"keyResults"`
	StartDate   time.Time   `json:"startDate"`
	DueDate     time.Time   `json:"dueDate"`
	IsCompleted bool        `json:"isCompleted"`
	IsArchived  bool        `json:"isArchived"`
}

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// NewObjective creates an objective starting at now.
func NewObjective(title string, due, now time.Time) Objective {
	return Objective{
		ID:        NewID(),
		Title:     title,
		Icon:      DefaultIcon,
		StartDate: now,
		DueDate:   due,
	}
}

// TypeDefaults returns the unit and target suggested for a new key result of type t.
func TypeDefaults(t KeyResultType) (unit string, target float64) {
	switch t {
	case TypePercentage:
		return "%", 100
	case TypeCurrency:
		return "$", 1000
	case TypeBoolean:
		return "Done", 1
	default:
		return "times", 10
	}
}

// NewKeyResult creates a key result with a zero current value and default weight.
// An empty unit or non-positive target falls back to TypeDefaults; boolean
// key results always target 1.
func NewKeyResult(title string, t KeyResultType, target float64, unit string) KeyResult {
	if t == "" {
		t = TypeNumber
	}
	defUnit, defTarget := TypeDefaults(t)
	if unit == "" {
		unit = defUnit
	}
	if target <= 0 || t == TypeBoolean {
		target = defTarget
	}
	return KeyResult{
		ID:          NewID(),
		Title:       title,
		Type:        t,
		TargetValue: target,
		Unit:        unit,
		Weight:      DefaultKeyResultWeight,
	}
}

// NewTask creates a task anchored on date.
func NewTask(title string, date time.Time, rec Recurrence, weight float64, now time.Time) Task {
	if rec == "" {
		rec = RecurNone
	}
	return Task{
		ID:         NewID(),
		Title:      title,
		Date:       date,
		Recurrence: rec,
		Weight:     weight,
		CreatedAt:  now,
	}
}

// NewLog creates an activity log entry.
func NewLog(message string, prev, next float64, at time.Time) ActivityLog {
	return ActivityLog{
		ID:            NewID(),
		Date:          at,
		Message:       message,
		PreviousValue: prev,
		NewValue:      next,
	}
}

// IsCompleted reports whether the key result reached its target.
func (kr KeyResult) IsCompleted() bool {
	return kr.CurrentValue >= kr.TargetValue
}

// PrependLog inserts l as the most recent entry.
func (kr *KeyResult) PrependLog(l ActivityLog) {
	kr.Logs = slices.Insert(kr.Logs, 0, l)
}

// TaskIndex returns the position of the task with id, or -1.
func (kr KeyResult) TaskIndex(id string) int {
	return slices.IndexFunc(kr.Tasks, func(t Task) bool { return t.ID == id })
}

// KeyResultIndex returns the position of the key result with id, or -1.
func (o Objective) KeyResultIndex(id string) int {
	return slices.IndexFunc(o.KeyResults, func(kr KeyResult) bool { return kr.ID == id })
}

// Clone returns a deep copy so callers cannot alias the store's slices.
func (o Objective) Clone() Objective {
	out := o
	if o.KeyResults != nil {
		out.KeyResults = make([]KeyResult, len(o.KeyResults))
		for i, kr := range o.KeyResults {
			out.KeyResults[i] = kr.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the key result.
func (kr KeyResult) Clone() KeyResult {
	out := kr
	out.Logs = slices.Clone(kr.Logs)
	if kr.Tasks != nil {
		out.Tasks = make([]Task, len(kr.Tasks))
		for i, t := range kr.Tasks {
			out.Tasks[i] = t
			out.Tasks[i].CompletedDates = slices.Clone(t.CompletedDates)
		}
	}
	return out
}

// CloneAll deep-copies a list of objectives.
func CloneAll(objs []Objective) []Objective {
	if objs == nil {
		return nil
	}
	out := make([]Objective, len(objs))
	for i, o := range objs {
		out[i] = o.Clone()
	}
	return out
}
