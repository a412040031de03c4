package database

import (
	"context"
	"database/sql"
	"errors"
)

// Setting keys.
const (
	SettingTheme = "theme"
)

// GetSetting reads a setting. Missing or NULL values report false.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, err := withDBContextResult(d, ctx, func(ctx context.Context) (sql.NullString, error) {
		var v sql.NullString
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&v)
		return v, err
	})
	if err != nil {
		return "", false
	}
	return value.String, value.Valid
}

// SetSetting stores a setting. An empty value clears it.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, nullableString(value))
		return wrapErr(EntitySetting, "set", key, err)
	})
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
