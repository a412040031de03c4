package tui

import "context"

// Settings persists UI preferences. database.Database satisfies it; a nil
// Settings keeps preferences for the session only.
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

const settingTheme = "theme"
