package tui

import (
	"github.com/akyairhashvil/okrt/internal/activity"
	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Title     lipgloss.Style
	Completed lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	OnTrack   lipgloss.Style
	AtRisk    lipgloss.Style
	OffTrack  lipgloss.Style
	Done      lipgloss.Style
	Heat      [activity.MaxLevel + 1]lipgloss.Style
	BarStart  string
	BarEnd    string
}

func heatScale(colors ...string) [activity.MaxLevel + 1]lipgloss.Style {
	var out [activity.MaxLevel + 1]lipgloss.Style
	for i, c := range colors {
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return out
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true).Padding(0, 1),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		OnTrack:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		AtRisk:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		OffTrack:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Heat:      heatScale("238", "22", "28", "34", "46"),
		BarStart:  "#5A56E0",
		BarEnd:    "#EE6FF8",
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true).Padding(0, 1),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		OnTrack:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		AtRisk:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		OffTrack:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Heat:      heatScale("237", "54", "91", "141", "212"),
		BarStart:  "#BD93F9",
		BarEnd:    "#FF79C6",
	},
	"mono": {
		Name:      "Monochrome",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("245"),
		Header:    lipgloss.NewStyle().Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1),
		Title:     lipgloss.NewStyle(),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Strikethrough(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Bold(true).Reverse(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Highlight: lipgloss.NewStyle().Bold(true),
		OnTrack:   lipgloss.NewStyle(),
		AtRisk:    lipgloss.NewStyle().Underline(true),
		OffTrack:  lipgloss.NewStyle().Bold(true).Underline(true),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Heat:      heatScale("236", "240", "245", "250", "255"),
		BarStart:  "#888888",
		BarEnd:    "#FFFFFF",
	},
}

// ThemeOrder is the cycling order for the theme key.
var ThemeOrder = []string{"default", "dracula", "mono"}

// ResolveTheme returns the named theme, or the default one.
func ResolveTheme(name string) (string, Theme) {
	if t, ok := Themes[name]; ok {
		return name, t
	}
	return "default", Themes["default"]
}

func nextTheme(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}

// HealthStyle picks the style for a health badge.
func (t Theme) HealthStyle(h models.Health) lipgloss.Style {
	switch h {
	case models.HealthAtRisk:
		return t.AtRisk
	case models.HealthOffTrack:
		return t.OffTrack
	case models.HealthCompleted:
		return t.Done
	default:
		return t.OnTrack
	}
}
