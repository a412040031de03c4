package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite handle that stores the objective document and
// user settings.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open creates or opens the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, wrapErr(EntityDatabase, "create dir", dir, err)
		}
	}
	sqlDB, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, wrapErr(EntityDatabase, "open", path, err)
	}
	// A single connection keeps writes serialised on the file.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, wrapErr(EntityDatabase, "ping", path, err)
	}
	d := &Database{DB: sqlDB, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return d, nil
}

// Path reports the database file.
func (d *Database) Path() string {
	return d.dbFile
}

// Close releases the underlying handle.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			name TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			checksum TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return wrapErr(EntityDatabase, "create tables", "", fmt.Errorf("%w: %s", err, query))
		}
	}
	return d.migrate(ctx)
}

// migrate applies additive schema changes to databases created by older builds.
func (d *Database) migrate(ctx context.Context) error {
	exists, err := d.columnExists(ctx, "documents", "updated_at")
	if err != nil {
		return err
	}
	if !exists {
		if _, err := d.DB.ExecContext(ctx, "ALTER TABLE documents ADD COLUMN updated_at DATETIME"); err != nil {
			return wrapErr(EntityDatabase, "migrate", "documents.updated_at", err)
		}
	}
	return nil
}

func (d *Database) columnExists(ctx context.Context, table, column string) (bool, error) {
	rows, err := d.DB.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, wrapErr(EntityDatabase, "table info", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid      int
			name     string
			ctype    string
			notNull  int
			defValue sql.NullString
			pk       int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defValue, &pk); err != nil {
			return false, wrapErr(EntityDatabase, "table info", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	if d == nil || d.DB == nil {
		return ErrDatabaseClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var result T
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	return result, err
}
