package config

// Application settings.
const (
	AppName        = "okrt"
	EnvPrefix      = "OKRT"
	DBFileName     = "okrt.db"
	JSONFileName   = "objectives.json"
	ConfigFileName = "config"
	LogFileName    = "okrt.log"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Heatmap windows, in days.
const (
	DefaultHeatmapDays     = 140
	DefaultHeatmapWeekDays = 180
)

// DefaultTheme names the theme used when none is configured.
const DefaultTheme = "default"
