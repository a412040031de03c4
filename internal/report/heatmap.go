package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/akyairhashvil/okrt/internal/activity"
)

// HeatmapGlyphs maps intensity levels to cells.
var HeatmapGlyphs = [activity.MaxLevel + 1]string{"·", "░", "▒", "▓", "█"}

// WriteHeatmap renders cells as a seven-row grid, one column per week,
// Sunday on top.
func WriteHeatmap(w io.Writer, days []activity.Day) {
	weeks := activity.Weeks(days)
	labels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for row := range 7 {
		var b strings.Builder
		b.WriteString(labels[row])
		b.WriteByte(' ')
		for _, week := range weeks {
			cell := " "
			for _, d := range week {
				if int(d.Date.Weekday()) == row {
					cell = HeatmapGlyphs[d.Level]
				}
			}
			b.WriteString(cell)
		}
		fmt.Fprintln(w, b.String())
	}
	total := 0
	for _, d := range days {
		total += d.Count
	}
	if len(days) > 0 {
		fmt.Fprintf(w, "%d events from %s to %s\n", total,
			days[0].Date.Format(time.DateOnly), days[len(days)-1].Date.Format(time.DateOnly))
	}
}
