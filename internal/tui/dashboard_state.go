package tui

import (
	"github.com/akyairhashvil/okrt/internal/config"
	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// View identifies the active screen.
type View int

const (
	ViewObjectives View = iota
	ViewTasks
	ViewHeatmap
	ViewDetail
)

var viewTitles = map[View]string{
	ViewObjectives: "Objectives",
	ViewTasks:      "Today",
	ViewHeatmap:    "Activity",
	ViewDetail:     "Detail",
}

// tabViews are reachable with tab and the number keys.
var tabViews = []View{ViewObjectives, ViewTasks, ViewHeatmap}

// ViewState tracks cursor positions.
type ViewState struct {
	objectiveIdx int
	keyResultIdx int
	taskIdx      int
	scrollOffset int
}

func (v *ViewState) clampObjective(n int) {
	v.objectiveIdx = clampIndex(v.objectiveIdx, n)
	if v.objectiveIdx < v.scrollOffset {
		v.scrollOffset = v.objectiveIdx
	}
	if v.objectiveIdx >= v.scrollOffset+config.MaxVisibleObjectives {
		v.scrollOffset = v.objectiveIdx - config.MaxVisibleObjectives + 1
	}
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// InputKind names what the text input is collecting.
type InputKind int

const (
	InputNone InputKind = iota
	InputValue
	InputMessage
	InputTitle
	InputDue
	InputKRTitle
	InputKRType
	InputKRTarget
	InputTaskTitle
	InputTaskRecurrence
	InputTaskWeight
	InputEditTitle
	InputEditDescription
	InputEditDue
)

// InputState holds the text input and the values collected by earlier steps.
type InputState struct {
	kind        InputKind
	field       textinput.Model
	objectiveID string
	keyResultID string
	value       float64
	title       string
	description string
	krType      models.KeyResultType
	recurrence  models.Recurrence
}

func newInputState() InputState {
	ti := textinput.New()
	ti.CharLimit = config.MaxTitleLength
	ti.Width = 40
	return InputState{field: ti}
}

func (s *InputState) begin(kind InputKind, placeholder string) {
	s.kind = kind
	s.field.Reset()
	s.field.Placeholder = placeholder
	s.field.CharLimit = config.MaxTitleLength
	if kind == InputMessage || kind == InputEditDescription {
		s.field.CharLimit = config.MaxMessageLength
	}
	s.field.Focus()
}

// beginWith starts an input step prefilled with value.
func (s *InputState) beginWith(kind InputKind, placeholder, value string) {
	s.begin(kind, placeholder)
	s.field.SetValue(value)
	s.field.CursorEnd()
}

func (s *InputState) cancel() {
	s.kind = InputNone
	s.field.Blur()
	s.field.Reset()
	s.objectiveID, s.keyResultID, s.title, s.description = "", "", "", ""
	s.krType, s.recurrence = "", ""
	s.value = 0
}

func (s InputState) active() bool {
	return s.kind != InputNone
}

func (s InputState) prompt() string {
	switch s.kind {
	case InputValue:
		return "New value"
	case InputMessage:
		return "Note (optional)"
	case InputTitle:
		return "Objective title"
	case InputDue:
		return "Due date"
	case InputKRTitle:
		return "Key result title"
	case InputKRType:
		return "Type (number, percentage, currency, boolean)"
	case InputKRTarget:
		return "Target (empty: type default)"
	case InputTaskTitle:
		return "Task title"
	case InputTaskRecurrence:
		return "Repeat (none, daily, weekly, weekdays)"
	case InputTaskWeight:
		return "Weight added on completion"
	case InputEditTitle:
		return "Title"
	case InputEditDescription:
		return "Description"
	case InputEditDue:
		return "Due date"
	default:
		return ""
	}
}
