package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/okrt/internal/config"
	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/util"
	"github.com/charmbracelet/x/ansi"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// truncate shortens s to width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// FormatDay renders a day heading, naming today and its neighbours.
func FormatDay(day, now time.Time) string {
	label := day.Format("Mon " + util.DayLayout)
	switch {
	case util.SameDay(now, day):
		return "Today, " + label
	case util.SameDay(util.AddDays(now, -1), day):
		return "Yesterday, " + label
	case util.SameDay(util.AddDays(now, 1), day):
		return "Tomorrow, " + label
	}
	return label
}

// FormatTaskCount formats a done/total pair.
func FormatTaskCount(done, total int) string {
	if total == 0 {
		return "No tasks"
	}
	return fmt.Sprintf("%d/%d tasks", done, total)
}

// Sparkline draws one rune per point, scaled to [0,1].
func Sparkline(points []models.DatePoint, width int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}
	var b strings.Builder
	top := len(sparkRunes) - 1
	for _, p := range points {
		i := int(util.Clamp(p.Value, 0, 1) * float64(top))
		b.WriteRune(sparkRunes[i])
	}
	return b.String()
}

func recurrenceLabel(r models.Recurrence) string {
	switch r {
	case models.RecurDaily:
		return "daily"
	case models.RecurWeekly:
		return "weekly"
	case models.RecurWeekdays:
		return "weekdays"
	default:
		return "once"
	}
}
