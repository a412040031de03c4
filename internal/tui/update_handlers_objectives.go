package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func handleObjectiveDown(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cursor.objectiveIdx++
	m.cursor.clampObjective(len(m.visibleObjectives()))
	return m, nil, true
}

func handleObjectiveUp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cursor.objectiveIdx--
	m.cursor.clampObjective(len(m.visibleObjectives()))
	return m, nil, true
}

func handleOpenDetail(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if _, ok := m.selectedObjective(); !ok {
		return m, nil, true
	}
	m.view = ViewDetail
	m.cursor.keyResultIdx = 0
	return m, nil, true
}

func handleBack(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.view = ViewObjectives
	return m, nil, true
}

func handleNewObjective(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.input.begin(InputTitle, "Ship the thing...")
	return m, nil, true
}

func handleToggleArchived(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	o, ok := m.selectedObjective()
	if !ok {
		return m, nil, true
	}
	m.store.SetArchived(m.ctx, o.ID, !o.IsArchived)
	if latest, ok := m.store.Objective(o.ID); ok && latest.IsArchived == o.IsArchived {
		m.Message = o.Title + " is complete and stays archived"
	} else if o.IsArchived {
		m.Message = "Restored " + o.Title
	} else {
		m.Message = "Archived " + o.Title
	}
	m.cursor.clampObjective(len(m.visibleObjectives()))
	return m, nil, true
}

func handleToggleCompleted(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	o, ok := m.selectedObjective()
	if !ok {
		return m, nil, true
	}
	m.store.SetCompleted(m.ctx, o.ID, !o.IsCompleted)
	return m, nil, true
}

func handleDelete(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	o, ok := m.selectedObjective()
	if !ok {
		return m, nil, true
	}
	m.confirmingDelete = true
	m.Message = "Delete " + o.Title + "? [y/N]"
	return m, nil, true
}

func handleShowArchived(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.showArchived = !m.showArchived
	m.cursor = ViewState{}
	return m, nil, true
}

func handleKeyResultDown(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	o, ok := m.selectedObjective()
	if ok {
		m.cursor.keyResultIdx = clampIndex(m.cursor.keyResultIdx+1, len(o.KeyResults))
	}
	return m, nil, true
}

func handleKeyResultUp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	o, ok := m.selectedObjective()
	if ok {
		m.cursor.keyResultIdx = clampIndex(m.cursor.keyResultIdx-1, len(o.KeyResults))
	}
	return m, nil, true
}

func handleUpdateValue(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	o, kr, ok := m.selectedKeyResult()
	if !ok {
		m.Message = "No key results"
		return m, nil, true
	}
	m.input.begin(InputValue, "e.g. 42")
	m.input.objectiveID = o.ID
	m.input.keyResultID = kr.ID
	return m, nil, true
}

func handleAddKeyResult(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	o, ok := m.selectedObjective()
	if !ok {
		return m, nil, true
	}
	m.input.begin(InputKRTitle, "Read 12 books...")
	m.input.objectiveID = o.ID
	return m, nil, true
}

func handleAddTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	o, kr, ok := m.selectedKeyResult()
	if !ok {
		m.Message = "Add a key result first"
		return m, nil, true
	}
	m.input.begin(InputTaskTitle, "Read 20 pages...")
	m.input.objectiveID = o.ID
	m.input.keyResultID = kr.ID
	return m, nil, true
}

func handleEditObjective(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	o, ok := m.selectedObjective()
	if !ok {
		return m, nil, true
	}
	m.input.beginWith(InputEditTitle, "", o.Title)
	m.input.objectiveID = o.ID
	return m, nil, true
}
