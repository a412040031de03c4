package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akyairhashvil/okrt/internal/config"
	"github.com/akyairhashvil/okrt/internal/database"
	"github.com/akyairhashvil/okrt/internal/store"
	"github.com/akyairhashvil/okrt/internal/tui"
	"github.com/akyairhashvil/okrt/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// isTerminal reports whether stdout is interactive.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// app bundles the resolved configuration with an open store.
type app struct {
	cfg      config.Config
	store    *store.Store
	settings tui.Settings
}

func openApp(ctx context.Context, v *viper.Viper) (*app, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	a := &app{cfg: cfg}
	var backend store.Backend
	switch cfg.Backend {
	case config.BackendFile:
		backend = store.NewFileBackend(cfg.JSONPath())
	case config.BackendMemory:
		backend = store.NewMemoryBackend(nil)
	default:
		ds, err := database.OpenDocumentStore(ctx, cfg.DBPath())
		if err != nil {
			return nil, err
		}
		backend = ds
		a.settings = ds.Database()
	}
	var opts []store.Option
	if cfg.NoSeed {
		opts = append(opts, store.WithSeed(nil))
	}
	a.store = store.Open(ctx, backend, opts...)
	return a, nil
}

func (a *app) Close() {
	util.LogError("close store", a.store.Close())
}

// runTUI hands the terminal to the dashboard. Logging goes to the log file
// while the program runs.
func (a *app) runTUI(ctx context.Context) error {
	if closer, err := util.SetupLogFile(a.cfg.LogFile); err == nil {
		defer closer.Close()
	} else {
		util.LogError("open log file", err)
	}
	model := tui.NewDashboardModel(ctx, a.store, a.settings, tui.Options{
		Theme:       a.cfg.Theme,
		HeatmapDays: a.cfg.HeatmapDays,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
