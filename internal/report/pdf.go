package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/okrt/internal/activity"
	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/store"
	"github.com/akyairhashvil/okrt/internal/util"
	"github.com/go-pdf/fpdf"
)

// healthColors are RGB fills for the health badge.
var healthColors = map[models.Health][3]int{
	models.HealthOnTrack:   {46, 160, 67},
	models.HealthAtRisk:    {214, 158, 46},
	models.HealthOffTrack:  {207, 34, 46},
	models.HealthCompleted: {9, 105, 218},
}

// WritePDF renders a progress report for objs to path and returns the
// absolute path written.
func WritePDF(path string, objs []models.Objective, now time.Time) (string, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create report dir: %w", err)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("OKR Report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("OKR Report: %s", now.Format(util.DayLayout)))
	pdf.Ln(12)

	summary := activity.Summarize(objs, now)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Active objectives: %d   Archived: %d", summary.Active, summary.Archived))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Tasks today: %d/%d   Updates today: %d", summary.TasksDone, summary.TasksDue, summary.LogsToday))
	pdf.Ln(10)

	for _, o := range objs {
		if o.IsArchived {
			continue
		}
		writeObjective(pdf, o, now)
	}

	archived := false
	for _, o := range objs {
		if !o.IsArchived {
			continue
		}
		if !archived {
			pdf.SetFont("Arial", "B", 14)
			pdf.Cell(0, 10, "Archived")
			pdf.Ln(8)
			archived = true
		}
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("  %s  (%s, due %s)", o.Title, Percent(o.Progress()), o.DueDate.Format(util.DayLayout)))
		pdf.Ln(6)
	}

	agenda := store.Agenda(objs, now, now)
	if len(agenda) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Today")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, it := range agenda {
			mark := "[ ]"
			if it.Completed {
				mark = "[x]"
			}
			pdf.Cell(0, 6, fmt.Sprintf("  %s %s  -  %s", mark, it.Task.Title, it.ObjectiveTitle))
			pdf.Ln(6)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

func writeObjective(pdf *fpdf.Fpdf, o models.Objective, now time.Time) {
	health := o.HealthAt(now)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(130, 8, o.Title)
	c := healthColors[health]
	pdf.SetFillColor(c[0], c[1], c[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(30, 6, health.Label(), "", 0, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(9)

	pdf.SetFont("Arial", "", 10)
	if o.Description != "" {
		pdf.MultiCell(0, 5, o.Description, "", "", false)
	}
	pdf.Cell(0, 5, fmt.Sprintf("Progress %s   Time elapsed %s   %s .. %s",
		Percent(o.Progress()), Percent(o.TimeProgressAt(now)),
		o.StartDate.Format(util.DayLayout), o.DueDate.Format(util.DayLayout)))
	pdf.Ln(7)

	for _, kr := range o.KeyResults {
		pdf.Cell(90, 6, "  "+kr.Title)
		pdf.Cell(50, 6, Value(kr))
		progressBar(pdf, kr.Progress())
		pdf.Ln(7)
	}
	pdf.Ln(4)
}

func progressBar(pdf *fpdf.Fpdf, p float64) {
	const width, height = 40.0, 4.0
	x, y := pdf.GetXY()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Rect(x, y+1, width, height, "D")
	if p > 0 {
		pdf.SetFillColor(9, 105, 218)
		pdf.Rect(x, y+1, width*util.Clamp(p, 0, 1), height, "F")
	}
}
