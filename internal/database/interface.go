package database

import (
	"context"

	"github.com/akyairhashvil/okrt/internal/store"
)

// DocumentRepository defines document storage operations.
type DocumentRepository interface {
	LoadDocument(ctx context.Context, name string) (*Document, error)
	SaveDocument(ctx context.Context, name string, payload []byte) error
	DeleteDocument(ctx context.Context, name string) error
}

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	DocumentRepository
	SettingsRepository
	Close() error
}

var (
	_ Repository    = (*Database)(nil)
	_ store.Backend = (*DocumentStore)(nil)
)
