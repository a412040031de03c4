package report

import (
	"io"
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/store"
	"github.com/akyairhashvil/okrt/internal/util"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteObjectives renders the objective listing.
func WriteObjectives(w io.Writer, objs []models.Objective, now time.Time) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Objective", "Progress", "Health", "Time", "Due"})
	for _, o := range objs {
		title := o.Title
		if o.IsArchived {
			title += " (archived)"
		}
		tw.AppendRow(table.Row{
			o.ID,
			title,
			Percent(o.Progress()),
			o.HealthAt(now).Label(),
			Percent(o.TimeProgressAt(now)),
			o.DueDate.Format(util.DayLayout),
		})
	}
	tw.Render()
}

// WriteObjective renders one objective with its key results and tasks.
func WriteObjective(w io.Writer, o models.Objective, now time.Time) {
	head := table.NewWriter()
	head.SetOutputMirror(w)
	head.SetTitle(o.Title)
	head.AppendRows([]table.Row{
		{"ID", o.ID},
		{"Description", o.Description},
		{"Span", o.StartDate.Format(util.DayLayout) + " .. " + o.DueDate.Format(util.DayLayout)},
		{"Progress", Percent(o.Progress())},
		{"Health", o.HealthAt(now).Label()},
	})
	head.Render()

	krs := table.NewWriter()
	krs.SetOutputMirror(w)
	krs.AppendHeader(table.Row{"Key Result", "ID", "Value", "Progress", "Weight"})
	for _, kr := range o.KeyResults {
		krs.AppendRow(table.Row{kr.Title, kr.ID, Value(kr), Percent(kr.Progress()), Number(kr.Weight)})
	}
	krs.Render()

	tasks := table.NewWriter()
	tasks.SetOutputMirror(w)
	tasks.AppendHeader(table.Row{"Task", "ID", "Key Result", "Recurrence", "Weight"})
	for _, kr := range o.KeyResults {
		for _, t := range kr.Tasks {
			tasks.AppendRow(table.Row{t.Title, t.ID, kr.Title, string(t.Recurrence), Number(t.Weight)})
		}
	}
	if tasks.Length() > 0 {
		tasks.Render()
	}
}

// WriteAgenda renders the daily task list.
func WriteAgenda(w io.Writer, day time.Time, items []store.AgendaItem) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Tasks for " + day.Format(util.DayLayout))
	tw.AppendHeader(table.Row{"", "Task", "Objective", "Key Result", "Task ID"})
	for _, it := range items {
		mark := "[ ]"
		if it.Completed {
			mark = "[x]"
		}
		tw.AppendRow(table.Row{mark, it.Task.Title, it.ObjectiveTitle, it.KeyResultTitle, it.Task.ID})
	}
	tw.Render()
}
