// Package store owns the objective list. It is the only writer: every
// mutation runs the archive pass and persists the whole document through a
// Backend. Persistence failures are logged and never returned.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/util"
)

// Store is the mutation service for objectives.
type Store struct {
	mu         sync.Mutex
	backend    Backend
	now        func() time.Time
	seed       SeedFunc
	objectives []models.Objective
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSeed replaces the sample data used when no document can be read. A nil
// seed starts with an empty list.
func WithSeed(seed SeedFunc) Option {
	return func(s *Store) { s.seed = seed }
}

// Open loads the document from backend. A missing, unreadable or
// undecodable document is replaced by seed data.
func Open(ctx context.Context, backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
		seed:    SampleObjectives,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objectives = s.load(ctx)
	s.commit(ctx)
	return s
}

// Close releases the backend when it holds resources.
func (s *Store) Close() error {
	if c, ok := s.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Now reads the store's clock.
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) load(ctx context.Context) []models.Objective {
	data, err := s.backend.Load(ctx)
	if err != nil {
		util.LogError("load objectives", err)
		return s.seedData()
	}
	if len(data) == 0 {
		return s.seedData()
	}
	var objs []models.Objective
	if err := json.Unmarshal(data, &objs); err != nil {
		util.LogError("decode objectives", err)
		return s.seedData()
	}
	return objs
}

func (s *Store) seedData() []models.Objective {
	if s.seed == nil {
		return []models.Objective{}
	}
	return s.seed(s.now())
}

// commit runs the archive pass and writes the document. Callers hold mu.
func (s *Store) commit(ctx context.Context) {
	s.objectives = ArchiveCompleted(s.objectives)
	data, err := json.Marshal(s.objectives)
	if err != nil {
		util.LogError("encode objectives", err)
		return
	}
	if err := s.backend.Save(ctx, data); err != nil {
		util.LogError("save objectives", fmt.Errorf("%d bytes: %w", len(data), err))
	}
}

// mutate applies fn under the lock and commits when fn reports a change.
func (s *Store) mutate(ctx context.Context, fn func() bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !fn() {
		return false
	}
	s.commit(ctx)
	return true
}

// find resolves an objective id to its index, or -1.
func (s *Store) find(id string) int {
	for i := range s.objectives {
		if s.objectives[i].ID == id {
			return i
		}
	}
	return -1
}

// keyResult resolves an objective/key result id pair to a pointer into the list.
func (s *Store) keyResult(objectiveID, keyResultID string) *models.KeyResult {
	oi := s.find(objectiveID)
	if oi < 0 {
		return nil
	}
	ki := s.objectives[oi].KeyResultIndex(keyResultID)
	if ki < 0 {
		return nil
	}
	return &s.objectives[oi].KeyResults[ki]
}

// Objectives returns a deep copy of every objective in display order.
func (s *Store) Objectives() []models.Objective {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneAll(s.objectives)
}

// Objective returns a copy of the objective with id.
func (s *Store) Objective(id string) (models.Objective, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(id)
	if i < 0 {
		return models.Objective{}, false
	}
	return s.objectives[i].Clone(), true
}

// Active returns objectives that are neither archived nor manually completed.
func (s *Store) Active() []models.Objective {
	return s.filter(func(o models.Objective) bool { return !o.IsArchived && !o.IsCompleted })
}

// Archived returns archived objectives.
func (s *Store) Archived() []models.Objective {
	return s.filter(func(o models.Objective) bool { return o.IsArchived })
}

func (s *Store) filter(keep func(models.Objective) bool) []models.Objective {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Objective
	for _, o := range s.objectives {
		if keep(o) {
			out = append(out, o.Clone())
		}
	}
	return out
}
