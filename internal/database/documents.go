package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/okrt/internal/util"
)

// DefaultDocument is the document name holding the objective list.
const DefaultDocument = "objectives"

// Document is a stored payload with its metadata.
type Document struct {
	Name      string
	Payload   []byte
	Checksum  string
	UpdatedAt time.Time
}

// LoadDocument reads the named document. A missing document returns nil, nil.
// A payload that no longer matches its checksum returns ErrDocumentCorrupted.
func (d *Database) LoadDocument(ctx context.Context, name string) (*Document, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (*Document, error) {
		doc := Document{Name: name}
		var updated sql.NullTime
		err := d.DB.QueryRowContext(ctx,
			"SELECT payload, checksum, updated_at FROM documents WHERE name = ?", name,
		).Scan(&doc.Payload, &doc.Checksum, &updated)
		if isNoRows(err) {
			return nil, nil
		}
		if err != nil {
			return nil, wrapErr(EntityDocument, "load", name, err)
		}
		if !util.VerifyChecksum(doc.Payload, doc.Checksum) {
			return nil, wrapErr(EntityDocument, "load", name, ErrDocumentCorrupted)
		}
		if updated.Valid {
			doc.UpdatedAt = updated.Time
		}
		return &doc, nil
	})
}

// SaveDocument replaces the named document.
func (d *Database) SaveDocument(ctx context.Context, name string, payload []byte) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, `INSERT INTO documents (name, payload, checksum, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				payload = excluded.payload,
				checksum = excluded.checksum,
				updated_at = excluded.updated_at`,
			name, payload, util.Checksum(payload), time.Now().UTC())
		return wrapErr(EntityDocument, "save", name, err)
	})
}

// DeleteDocument removes the named document. Deleting a missing document is not an error.
func (d *Database) DeleteDocument(ctx context.Context, name string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM documents WHERE name = ?", name)
		return wrapErr(EntityDocument, "delete", name, err)
	})
}

// DocumentStore adapts one named document to the store's persistence backend.
type DocumentStore struct {
	db   *Database
	name string
}

// NewDocumentStore binds name inside db. An empty name selects DefaultDocument.
func NewDocumentStore(db *Database, name string) *DocumentStore {
	if name == "" {
		name = DefaultDocument
	}
	return &DocumentStore{db: db, name: name}
}

// OpenDocumentStore opens the database at path and binds the default document.
func OpenDocumentStore(ctx context.Context, path string) (*DocumentStore, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewDocumentStore(db, DefaultDocument), nil
}

// Database exposes the underlying handle, for settings access.
func (s *DocumentStore) Database() *Database {
	return s.db
}

func (s *DocumentStore) Load(ctx context.Context) ([]byte, error) {
	doc, err := s.db.LoadDocument(ctx, s.name)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.Payload, nil
}

func (s *DocumentStore) Save(ctx context.Context, data []byte) error {
	return s.db.SaveDocument(ctx, s.name, data)
}

func (s *DocumentStore) Close() error {
	return s.db.Close()
}
