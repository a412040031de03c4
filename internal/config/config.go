package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/okrt/internal/util"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyDataDir     = "data-dir"
	KeyBackend     = "backend"
	KeyTheme       = "theme"
	KeyHeatmapDays = "heatmap-days"
	KeyNoSeed      = "no-seed"
	KeyLogFile     = "log-file"
)

// Config is the resolved runtime configuration.
type Config struct {
	DataDir     string
	Backend     string
	Theme       string
	HeatmapDays int
	NoSeed      bool
	LogFile     string
}

// SetDefaults registers defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataDir, util.DataDir(AppName))
	v.SetDefault(KeyBackend, BackendSQLite)
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyHeatmapDays, DefaultHeatmapDays)
	v.SetDefault(KeyNoSeed, false)
	v.SetDefault(KeyLogFile, "")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load resolves v into a Config, merging config.yaml from the data directory
// when present.
func Load(v *viper.Viper) (Config, error) {
	dataDir := v.GetString(KeyDataDir)
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	cfg := Config{
		DataDir:     v.GetString(KeyDataDir),
		Backend:     strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		Theme:       v.GetString(KeyTheme),
		HeatmapDays: v.GetInt(KeyHeatmapDays),
		NoSeed:      v.GetBool(KeyNoSeed),
		LogFile:     v.GetString(KeyLogFile),
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, LogFileName)
	}
	if cfg.HeatmapDays <= 0 {
		cfg.HeatmapDays = DefaultHeatmapDays
	}
	switch cfg.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unknown backend %q (want %s, %s or %s)", cfg.Backend, BackendSQLite, BackendFile, BackendMemory)
	}
	return cfg, nil
}

// DBPath is the SQLite file inside the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}

// JSONPath is the plain document file inside the data directory.
func (c Config) JSONPath() string {
	return filepath.Join(c.DataDir, JSONFileName)
}
