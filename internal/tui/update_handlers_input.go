package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// defaultObjectiveSpan is used when a new objective is given no due date.
const defaultObjectiveSpan = 30 * 24 * time.Hour

func (m DashboardModel) handleInputMode(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.cancel()
		m.Message = ""
		return m, nil
	case tea.KeyEnter:
		return m.submitInput()
	}
	var cmd tea.Cmd
	m.input.field, cmd = m.input.field.Update(msg)
	return m, cmd
}

func (m DashboardModel) submitInput() (DashboardModel, tea.Cmd) {
	text := strings.TrimSpace(m.input.field.Value())
	switch m.input.kind {
	case InputValue:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			m.Message = "Not a number: " + text
			return m, nil
		}
		m.input.value = v
		m.input.begin(InputMessage, "What changed?")
	case InputMessage:
		m.store.UpdateKeyResultValue(m.ctx, m.input.objectiveID, m.input.keyResultID, m.input.value, text)
		m.Message = "Value updated"
		m.input.cancel()
	case InputTitle:
		if text == "" {
			m.input.cancel()
			return m, nil
		}
		m.input.title = text
		m.input.begin(InputDue, util.DayLayout+" (empty: 30 days)")
	case InputDue:
		now := m.store.Now()
		due := now.Add(defaultObjectiveSpan)
		if text != "" {
			d, err := util.ParseDay(text, now)
			if err != nil {
				m.Message = "Use " + util.DayLayout
				return m, nil
			}
			due = d
		}
		title := m.input.title
		m.store.Add(m.ctx, models.NewObjective(title, due, now))
		m.Message = "Created " + title
		m.input.cancel()
	default:
		return m.submitDetailInput(text)
	}
	return m, nil
}

// submitDetailInput advances the key result, task and edit flows started
// from the detail view.
func (m DashboardModel) submitDetailInput(text string) (DashboardModel, tea.Cmd) {
	switch m.input.kind {
	case InputKRTitle:
		if text == "" {
			m.input.cancel()
			return m, nil
		}
		m.input.title = text
		m.input.begin(InputKRType, string(models.TypeNumber))
	case InputKRType:
		t, err := models.ParseKeyResultType(text)
		if err != nil {
			m.Message = "Unknown type: " + text
			return m, nil
		}
		m.input.krType = t
		_, target := models.TypeDefaults(t)
		if t == models.TypeBoolean {
			m.addKeyResult(target)
			return m, nil
		}
		m.input.begin(InputKRTarget, strconv.FormatFloat(target, 'f', -1, 64))
	case InputKRTarget:
		target := 0.0
		if text != "" {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil || v <= 0 {
				m.Message = "Target must be a positive number"
				return m, nil
			}
			target = v
		}
		m.addKeyResult(target)
	case InputTaskTitle:
		if text == "" {
			m.input.cancel()
			return m, nil
		}
		m.input.title = text
		m.input.begin(InputTaskRecurrence, string(models.RecurNone))
	case InputTaskRecurrence:
		r, err := models.ParseRecurrence(text)
		if err != nil {
			m.Message = "Unknown repeat: " + text
			return m, nil
		}
		m.input.recurrence = r
		m.input.begin(InputTaskWeight, "0")
	case InputTaskWeight:
		weight := 0.0
		if text != "" {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil || v < 0 {
				m.Message = "Weight must be zero or more"
				return m, nil
			}
			weight = v
		}
		title := m.input.title
		task := models.NewTask(title, m.day, m.input.recurrence, weight, m.store.Now())
		if m.store.AddTask(m.ctx, m.input.objectiveID, m.input.keyResultID, task) {
			m.Message = "Planned " + title + " from " + m.day.Format(util.DayLayout)
		}
		m.input.cancel()
	case InputEditTitle:
		if text == "" {
			m.Message = "Title must not be empty"
			return m, nil
		}
		m.input.title = text
		o, _ := m.store.Objective(m.input.objectiveID)
		m.input.beginWith(InputEditDescription, "optional", o.Description)
	case InputEditDescription:
		m.input.description = text
		o, _ := m.store.Objective(m.input.objectiveID)
		m.input.beginWith(InputEditDue, util.DayLayout, o.DueDate.Format(util.DayLayout))
	case InputEditDue:
		due, err := util.ParseDay(text, m.store.Now())
		if err != nil || text == "" {
			m.Message = "Use " + util.DayLayout
			return m, nil
		}
		title, description := m.input.title, m.input.description
		ok := m.store.Edit(m.ctx, m.input.objectiveID, func(o *models.Objective) {
			o.Title = title
			o.Description = description
			o.DueDate = due
		})
		if ok {
			m.Message = "Saved " + title
		}
		m.input.cancel()
	}
	return m, nil
}

func (m *DashboardModel) addKeyResult(target float64) {
	kr := models.NewKeyResult(m.input.title, m.input.krType, target, "")
	if m.store.AddKeyResult(m.ctx, m.input.objectiveID, kr) {
		m.Message = "Added " + kr.Title
		if o, ok := m.store.Objective(m.input.objectiveID); ok {
			m.cursor.keyResultIdx = len(o.KeyResults) - 1
		}
	}
	m.input.cancel()
}
