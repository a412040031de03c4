package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/okrt/internal/config"
	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/store"
	"github.com/akyairhashvil/okrt/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a dashboard.
type Options struct {
	Theme       string
	HeatmapDays int
}

// DashboardModel is the root bubbletea model.
type DashboardModel struct {
	ctx      context.Context
	store    *store.Store
	settings Settings
	keys     *HandlerRegistry

	view         View
	cursor       ViewState
	day          time.Time
	now          time.Time
	showArchived bool

	heatmapDays   int
	heatmapFilter int // 0 = all objectives, i = objectives[i-1]

	input            InputState
	confirmingDelete bool

	themeName string
	theme     Theme
	progress  progress.Model

	Message       string
	width, height int
}

func NewDashboardModel(ctx context.Context, s *store.Store, settings Settings, opts Options) DashboardModel {
	if ctx == nil {
		ctx = context.Background()
	}
	name := opts.Theme
	if settings != nil && (name == "" || name == config.DefaultTheme) {
		if stored, ok := settings.GetSetting(ctx, settingTheme); ok {
			name = stored
		}
	}
	days := opts.HeatmapDays
	if days <= 0 {
		days = config.DefaultHeatmapDays
	}
	now := s.Now()
	m := DashboardModel{
		ctx:         ctx,
		store:       s,
		settings:    settings,
		keys:        defaultKeyRegistry(),
		view:        ViewObjectives,
		day:         util.StartOfDay(now),
		now:         now,
		heatmapDays: days,
		input:       newInputState(),
	}
	m.applyTheme(name)
	return m
}

func (m *DashboardModel) applyTheme(name string) {
	m.themeName, m.theme = ResolveTheme(name)
	m.progress = progress.New(progress.WithGradient(m.theme.BarStart, m.theme.BarEnd), progress.WithoutPercentage())
	m.progress.Width = config.ProgressBarWidth
}

// ThemeName reports the active theme key.
func (m DashboardModel) ThemeName() string {
	return m.themeName
}

func (m DashboardModel) Init() tea.Cmd {
	return tickCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.input.active() {
			return m.handleInputMode(msg)
		}
		if m.confirmingDelete {
			return m.handleDeleteConfirm(msg.String())
		}
		return m.handleNormalMode(msg)
	}
	return m, nil
}

// visibleObjectives lists the objectives on the objectives screen.
func (m DashboardModel) visibleObjectives() []models.Objective {
	if m.showArchived {
		return m.store.Archived()
	}
	var out []models.Objective
	for _, o := range m.store.Objectives() {
		if !o.IsArchived {
			out = append(out, o)
		}
	}
	return out
}

func (m DashboardModel) selectedObjective() (models.Objective, bool) {
	objs := m.visibleObjectives()
	if len(objs) == 0 {
		return models.Objective{}, false
	}
	return objs[clampIndex(m.cursor.objectiveIdx, len(objs))], true
}

func (m DashboardModel) selectedKeyResult() (models.Objective, models.KeyResult, bool) {
	o, ok := m.selectedObjective()
	if !ok || len(o.KeyResults) == 0 {
		return o, models.KeyResult{}, false
	}
	return o, o.KeyResults[clampIndex(m.cursor.keyResultIdx, len(o.KeyResults))], true
}

func (m DashboardModel) agenda() []store.AgendaItem {
	return store.Agenda(m.store.Objectives(), m.day, m.now)
}
