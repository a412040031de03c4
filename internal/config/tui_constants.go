package config

// Layout constants.
const (
	// MinColumnWidth is the minimum width for the objective list.
	MinColumnWidth = 24

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetTitleWidth is the preferred width for objective titles.
	TargetTitleWidth = 30

	// MinTitleWidth is the minimum width for objective titles.
	MinTitleWidth = 10

	// ProgressBarWidth is the width of inline progress bars.
	ProgressBarWidth = 20
)

// Display limits.
const (
	// MaxVisibleObjectives limits objectives shown before scrolling.
	MaxVisibleObjectives = 15

	// MaxVisibleLogs limits activity entries shown in the detail view.
	MaxVisibleLogs = 5

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxTitleLength is the maximum objective title length.
	MaxTitleLength = 100

	// MaxMessageLength is the maximum log message length.
	MaxMessageLength = 200
)
