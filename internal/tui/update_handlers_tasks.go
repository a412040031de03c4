package tui

import (
	"github.com/akyairhashvil/okrt/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func handleTaskDown(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cursor.taskIdx = clampIndex(m.cursor.taskIdx+1, len(m.agenda()))
	return m, nil, true
}

func handleTaskUp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cursor.taskIdx = clampIndex(m.cursor.taskIdx-1, len(m.agenda()))
	return m, nil, true
}

// handleToggleTask keeps the cursor on the toggled task, which may move
// because pending tasks sort first.
func handleToggleTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	items := m.agenda()
	if len(items) == 0 {
		return m, nil, true
	}
	it := items[clampIndex(m.cursor.taskIdx, len(items))]
	if !m.store.ToggleTask(m.ctx, it.ObjectiveID, it.KeyResultID, it.Task.ID, m.day) {
		return m, nil, true
	}
	for i, next := range m.agenda() {
		if next.Task.ID == it.Task.ID && next.KeyResultID == it.KeyResultID {
			m.cursor.taskIdx = i
			break
		}
	}
	if it.Completed {
		m.Message = "Reopened " + it.Task.Title
	} else {
		m.Message = "Completed " + it.Task.Title
	}
	return m, nil, true
}

func handlePrevDay(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.day = util.AddDays(m.day, -1)
	m.cursor.taskIdx = 0
	return m, nil, true
}

func handleNextDay(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.day = util.AddDays(m.day, 1)
	m.cursor.taskIdx = 0
	return m, nil, true
}

func handleToday(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.day = util.StartOfDay(m.now)
	m.cursor.taskIdx = 0
	return m, nil, true
}

func handleHeatmapFilter(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.heatmapFilter = (m.heatmapFilter + 1) % (len(m.store.Objectives()) + 1)
	return m, nil, true
}
