// Package report renders objectives for output outside the terminal UI:
// tables, PDF reports and document exports.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/okrt/internal/models"
)

// Percent formats a [0,1] ratio as a whole percentage.
func Percent(p float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(p*100)))
}

// Number formats v without a trailing fraction when it is whole.
func Number(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Value formats a key result's value against its target in its unit.
func Value(kr models.KeyResult) string {
	switch kr.Type {
	case models.TypeBoolean:
		if kr.IsCompleted() {
			return "Done"
		}
		return "Not done"
	case models.TypeCurrency:
		return fmt.Sprintf("%s%s / %s%s", kr.Unit, Number(kr.CurrentValue), kr.Unit, Number(kr.TargetValue))
	case models.TypePercentage:
		return fmt.Sprintf("%s%s / %s%s", Number(kr.CurrentValue), kr.Unit, Number(kr.TargetValue), kr.Unit)
	default:
		return strings.TrimSpace(fmt.Sprintf("%s / %s %s", Number(kr.CurrentValue), Number(kr.TargetValue), kr.Unit))
	}
}

// Bar draws a textual progress bar of width cells.
func Bar(p float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(p * float64(width)))
	filled = max(0, min(width, filled))
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}
