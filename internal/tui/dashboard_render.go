package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/okrt/internal/activity"
	"github.com/akyairhashvil/okrt/internal/config"
	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/report"
	"github.com/akyairhashvil/okrt/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) View() string {
	var body string
	switch m.view {
	case ViewTasks:
		body = m.renderTasks()
	case ViewHeatmap:
		body = m.renderHeatmap()
	case ViewDetail:
		body = m.renderDetail()
	default:
		body = m.renderObjectives()
	}
	sections := []string{m.renderHeader(), body, m.renderFooter()}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) titleWidth() int {
	w := config.TargetTitleWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		w = m.width / 3
	}
	return max(w, config.MinTitleWidth)
}

func (m DashboardModel) renderObjectives() string {
	all := m.store.Objectives()
	sum := activity.Summarize(all, m.now)
	var lines []string
	lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("%d active  %d archived  %s today",
		sum.Active, sum.Archived, FormatTaskCount(sum.TasksDone, sum.TasksDue))))

	if curve := activity.OverallProgress(all, m.now); len(curve) > 0 {
		last := curve[len(curve)-1].Value
		lines = append(lines, fmt.Sprintf("Overall %s %s", report.Percent(last),
			m.theme.Highlight.Render(Sparkline(curve, 40))))
	}
	lines = append(lines, "")

	objs := m.visibleObjectives()
	if len(objs) == 0 {
		empty := "No objectives yet. Press n to add one."
		if m.showArchived {
			empty = "Nothing archived."
		}
		return strings.Join(append(lines, m.theme.Dim.Render(empty)), "\n")
	}
	if m.showArchived {
		lines = append(lines, m.theme.Header.Render("Archived"))
	}
	start := m.cursor.scrollOffset
	end := min(len(objs), start+config.MaxVisibleObjectives)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderObjectiveRow(objs[i], i == m.cursor.objectiveIdx))
	}
	if end < len(objs) {
		lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("  ... %d more", len(objs)-end)))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderObjectiveRow(o models.Objective, focused bool) string {
	health := o.HealthAt(m.now)
	marker := "  "
	titleStyle := m.theme.Title
	if focused {
		marker = "> "
		titleStyle = m.theme.Focused
	}
	if o.IsCompleted {
		titleStyle = m.theme.Completed
	}
	title := titleStyle.Render(padRight(truncate(o.Title, m.titleWidth()), m.titleWidth()))
	p := o.Progress()
	return fmt.Sprintf("%s%s %s %4s  %s  %s", marker, title, m.progress.ViewAs(p), report.Percent(p),
		m.theme.HealthStyle(health).Render(padRight(health.Label(), 9)),
		m.theme.Dim.Render("due "+o.DueDate.Format(util.DayLayout)))
}

func (m DashboardModel) renderDetail() string {
	o, ok := m.selectedObjective()
	if !ok {
		return m.theme.Dim.Render("No objective selected.")
	}
	health := o.HealthAt(m.now)
	lines := []string{
		m.theme.Header.Render(o.Title) + "  " + m.theme.HealthStyle(health).Render(health.Label()),
	}
	if o.Description != "" {
		lines = append(lines, m.theme.Dim.Render(o.Description))
	}
	lines = append(lines,
		fmt.Sprintf("Progress %s %s   Time %s   %s .. %s", m.progress.ViewAs(o.Progress()), report.Percent(o.Progress()),
			report.Percent(o.TimeProgressAt(m.now)), o.StartDate.Format(util.DayLayout), o.DueDate.Format(util.DayLayout)),
		"")
	if len(o.KeyResults) == 0 {
		lines = append(lines, m.theme.Dim.Render("No key results."))
	}
	selected := clampIndex(m.cursor.keyResultIdx, len(o.KeyResults))
	for i, kr := range o.KeyResults {
		marker, style := "  ", m.theme.Title
		if i == selected {
			marker, style = "> ", m.theme.Focused
		}
		lines = append(lines, fmt.Sprintf("%s%s %s %s", marker,
			style.Render(padRight(truncate(kr.Title, m.titleWidth()), m.titleWidth())),
			m.progress.ViewAs(kr.Progress()), report.Value(kr)))
		for _, t := range kr.Tasks {
			check := "[ ]"
			if t.CompletedOn(m.now) {
				check = "[x]"
			}
			lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("      %s %s (%s)", check, t.Title, recurrenceLabel(t.Recurrence))))
		}
	}
	if len(o.KeyResults) > 0 {
		kr := o.KeyResults[selected]
		lines = append(lines, "", m.theme.Header.Render("Recent activity"))
		if len(kr.Logs) == 0 {
			lines = append(lines, m.theme.Dim.Render("  none"))
		}
		for _, l := range kr.Logs[:min(len(kr.Logs), config.MaxVisibleLogs)] {
			lines = append(lines, fmt.Sprintf("  %s  %s  %s -> %s", m.theme.Dim.Render(l.Date.Format("2006-01-02 15:04")),
				truncate(l.Message, 40), report.Number(l.PreviousValue), report.Number(l.NewValue)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderTasks() string {
	lines := []string{m.theme.Header.Render(FormatDay(m.day, m.now)), ""}
	items := m.agenda()
	if len(items) == 0 {
		return strings.Join(append(lines, m.theme.Dim.Render("No tasks scheduled.")), "\n")
	}
	done := 0
	for i, it := range items {
		marker := "  "
		if i == m.cursor.taskIdx {
			marker = "> "
		}
		check, style := "[ ]", m.theme.Title
		if it.Completed {
			check, style = "[x]", m.theme.Completed
			done++
		}
		if i == m.cursor.taskIdx && !it.Completed {
			style = m.theme.Focused
		}
		owner := m.theme.HealthStyle(it.Health).Render(truncate(it.ObjectiveTitle+" / "+it.KeyResultTitle, 40))
		lines = append(lines, fmt.Sprintf("%s%s %s  %s", marker, check,
			style.Render(padRight(truncate(it.Task.Title, m.titleWidth()), m.titleWidth())), owner))
	}
	lines = append(lines, "", m.theme.Dim.Render(FormatTaskCount(done, len(items))))
	return strings.Join(lines, "\n")
}

func (m DashboardModel) heatmapObjectives() ([]models.Objective, string) {
	all := m.store.Objectives()
	if m.heatmapFilter <= 0 || m.heatmapFilter > len(all) {
		return all, "All objectives"
	}
	o := all[m.heatmapFilter-1]
	return activity.Filter(all, o.ID), o.Title
}

func (m DashboardModel) renderHeatmap() string {
	objs, label := m.heatmapObjectives()
	days := activity.WeekWindow(objs, m.now, m.heatmapDays)
	lines := []string{m.theme.Header.Render("Activity: " + label), ""}
	lines = append(lines, m.renderHeatGrid(days)...)

	legend := []string{"less"}
	for level := range activity.MaxLevel + 1 {
		legend = append(legend, m.theme.Heat[level].Render("■"))
	}
	legend = append(legend, "more")
	lines = append(lines, "", m.theme.Dim.Render(strings.Join(legend, " ")))
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderHeatGrid(days []activity.Day) []string {
	weeks := activity.Weeks(days)
	labels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	rows := make([]string, 7)
	for row := range 7 {
		var b strings.Builder
		b.WriteString(m.theme.Dim.Render(labels[row]) + " ")
		for _, week := range weeks {
			cell := " "
			for _, d := range week {
				if int(d.Date.Weekday()) == row {
					cell = m.theme.Heat[d.Level].Render("■")
				}
			}
			b.WriteString(cell)
		}
		rows[row] = b.String()
	}
	return rows
}

func (m DashboardModel) renderHeader() string {
	var tabs []string
	for i, v := range tabViews {
		label := fmt.Sprintf("%d %s", i+1, viewTitles[v])
		if v == m.view || (m.view == ViewDetail && v == ViewObjectives) {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}
	title := m.theme.Header.Render("OKR Tracker") + m.theme.Dim.Render(" v"+AppVersion)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(tabs, "")) + "\n"
}

func (m DashboardModel) renderFooter() string {
	var lines []string
	lines = append(lines, "")
	if m.input.active() {
		lines = append(lines, m.input.prompt()+":", m.theme.Input.Render(m.input.field.View()),
			m.theme.Dim.Render("[enter]confirm|[esc]cancel"))
	} else {
		lines = append(lines, m.theme.Dim.Render(m.keys.HelpForView(m.view)))
	}
	if m.Message != "" {
		lines = append(lines, m.theme.Highlight.Render(m.Message))
	}
	return strings.Join(lines, "\n")
}
