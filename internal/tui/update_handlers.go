package tui

import (
	"github.com/akyairhashvil/okrt/internal/config"
	"github.com/akyairhashvil/okrt/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleWindowSize(msg tea.WindowSizeMsg) (DashboardModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressBarWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 4
		}
		m.progress.Width = max(target, config.MinTitleWidth)
	}
	return m, nil
}

// handleTick follows the clock. The selected day moves with it only when it
// was showing today.
func (m DashboardModel) handleTick(TickMsg) (DashboardModel, tea.Cmd) {
	prev := m.now
	m.now = m.store.Now()
	if util.SameDay(prev, m.day) && !util.SameDay(m.now, m.day) {
		m.day = util.StartOfDay(m.now)
	}
	return m, tickCmd()
}

func (m DashboardModel) handleNormalMode(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	m.Message = ""
	next, cmd, _ := m.keys.Handle(m, msg.String())
	return next, cmd
}

func (m DashboardModel) handleDeleteConfirm(key string) (DashboardModel, tea.Cmd) {
	m.confirmingDelete = false
	if key != "y" {
		m.Message = "Delete cancelled"
		return m, nil
	}
	o, ok := m.selectedObjective()
	if !ok {
		return m, nil
	}
	if m.store.Delete(m.ctx, o.ID) {
		m.Message = "Deleted " + o.Title
	}
	m.cursor.clampObjective(len(m.visibleObjectives()))
	return m, nil
}

func defaultKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	list := []View{ViewObjectives}
	detail := []View{ViewDetail}
	tasks := []View{ViewTasks}
	heat := []View{ViewHeatmap}

	r.Register(KeyBinding{Keys: []string{"q"}, Description: "quit", Handler: handleQuit})
	r.Register(KeyBinding{Keys: []string{"tab"}, Description: "view", Handler: handleNextView})
	r.Register(KeyBinding{Keys: []string{"1", "2", "3"}, Handler: handleJumpView})
	r.Register(KeyBinding{Keys: []string{"t"}, Description: "theme", Handler: handleThemeCycle})

	r.Register(KeyBinding{Keys: []string{"j", "down"}, Description: "down", Views: list, Handler: handleObjectiveDown})
	r.Register(KeyBinding{Keys: []string{"k", "up"}, Description: "up", Views: list, Handler: handleObjectiveUp})
	r.Register(KeyBinding{Keys: []string{"enter"}, Description: "open", Views: list, Handler: handleOpenDetail})
	r.Register(KeyBinding{Keys: []string{"n"}, Description: "new", Views: list, Handler: handleNewObjective})
	r.Register(KeyBinding{Keys: []string{"x"}, Description: "archive", Views: list, Handler: handleToggleArchived})
	r.Register(KeyBinding{Keys: []string{"c"}, Description: "complete", Views: list, Handler: handleToggleCompleted})
	r.Register(KeyBinding{Keys: []string{"d"}, Description: "delete", Views: list, Handler: handleDelete})
	r.Register(KeyBinding{Keys: []string{"a"}, Description: "archived", Views: list, Handler: handleShowArchived})

	r.Register(KeyBinding{Keys: []string{"j", "down"}, Description: "down", Views: detail, Handler: handleKeyResultDown})
	r.Register(KeyBinding{Keys: []string{"k", "up"}, Description: "up", Views: detail, Handler: handleKeyResultUp})
	r.Register(KeyBinding{Keys: []string{"u", "enter"}, Description: "update", Views: detail, Handler: handleUpdateValue})
	r.Register(KeyBinding{Keys: []string{"a"}, Description: "add kr", Views: detail, Handler: handleAddKeyResult})
	r.Register(KeyBinding{Keys: []string{"n"}, Description: "add task", Views: detail, Handler: handleAddTask})
	r.Register(KeyBinding{Keys: []string{"e"}, Description: "edit", Views: detail, Handler: handleEditObjective})
	r.Register(KeyBinding{Keys: []string{"esc", "backspace"}, Description: "back", Views: detail, Handler: handleBack})

	r.Register(KeyBinding{Keys: []string{"j", "down"}, Description: "down", Views: tasks, Handler: handleTaskDown})
	r.Register(KeyBinding{Keys: []string{"k", "up"}, Description: "up", Views: tasks, Handler: handleTaskUp})
	r.Register(KeyBinding{Keys: []string{" ", "enter"}, Description: "toggle", Views: tasks, Handler: handleToggleTask})
	r.Register(KeyBinding{Keys: []string{"h", "left"}, Description: "prev day", Views: tasks, Handler: handlePrevDay})
	r.Register(KeyBinding{Keys: []string{"l", "right"}, Description: "next day", Views: tasks, Handler: handleNextDay})
	r.Register(KeyBinding{Keys: []string{"T"}, Description: "today", Views: tasks, Handler: handleToday})

	r.Register(KeyBinding{Keys: []string{"f"}, Description: "filter", Views: heat, Handler: handleHeatmapFilter})
	return r
}

func handleQuit(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleNextView(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	for i, v := range tabViews {
		if v == m.view {
			m.view = tabViews[(i+1)%len(tabViews)]
			return m, nil, true
		}
	}
	m.view = ViewObjectives
	return m, nil, true
}

func handleJumpView(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	i := int(key[0] - '1')
	if i < 0 || i >= len(tabViews) {
		return m, nil, false
	}
	m.view = tabViews[i]
	return m, nil, true
}

func handleThemeCycle(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.applyTheme(nextTheme(m.themeName))
	if m.settings != nil {
		if err := m.settings.SetSetting(m.ctx, settingTheme, m.themeName); err != nil {
			util.LogError("save theme", err)
		}
	}
	m.Message = "Theme: " + m.theme.Name
	return m, nil, true
}
