// Package store implements the travel store: the single source of truth for
// trips, expenses, and bookmarks. It owns the three in-memory collections,
// enforces cross-collection consistency on delete, and writes the whole
// state through to a kv.Store after every mutation.
//
// The store trusts its callers: business validation (date ordering, required
// fields) happens in the authoring layer before a mutation is attempted.
// See internal/tripform and internal/handler.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/wayfarer-app/backend/internal/domain"
	"github.com/wayfarer-app/backend/internal/kv"
)

// Storage keys. Each holds one JSON array covering the whole collection;
// there is no per-record or incremental storage.
const (
	tripsKey     = "trips"
	expensesKey  = "expenses"
	bookmarksKey = "bookmarks"
)

// deletedTrip is the single-level restore buffer recorded by DeleteTrip.
// unlinked holds the IDs of bookmarks whose trip reference was cleared by
// that delete, so RestoreTrip can re-establish exactly those associations.
type deletedTrip struct {
	trip     domain.Trip
	unlinked []uuid.UUID
}

// Store holds the three entity collections and synchronizes them with a
// kv.Store backend. Create with New, then call Load once before any other
// operation. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	backend kv.Store

	trips     []domain.Trip
	expenses  []domain.Expense
	bookmarks []domain.Bookmark

	// loaded gates persistence: until Load has run, a mutation could write
	// empty collections over existing persisted data.
	loaded bool

	lastDeleted *deletedTrip
}

// New constructs an empty, unloaded Store over the given backend.
func New(backend kv.Store) *Store {
	return &Store{backend: backend}
}

// Load reads the three collections from the backend. A missing key leaves
// that collection empty; a key that fails to decode also degrades to an
// empty collection (logged, not surfaced) without affecting the other two.
// Only a backend read error aborts the load.
//
// Load must complete before any mutation or query; other methods panic
// otherwise.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadCollection(ctx, s.backend, tripsKey, &s.trips); err != nil {
		return fmt.Errorf("store.Store.Load: %w", err)
	}
	if err := loadCollection(ctx, s.backend, expensesKey, &s.expenses); err != nil {
		return fmt.Errorf("store.Store.Load: %w", err)
	}
	if err := loadCollection(ctx, s.backend, bookmarksKey, &s.bookmarks); err != nil {
		return fmt.Errorf("store.Store.Load: %w", err)
	}

	s.loaded = true
	return nil
}

// loadCollection reads and decodes one collection. Decode failures reset the
// collection to empty and are swallowed so one corrupt blob cannot take the
// other collections down with it.
func loadCollection[T any](ctx context.Context, backend kv.Store, key string, out *[]T) error {
	raw, ok, err := backend.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn("discarding undecodable collection", "key", key, "error", err)
		*out = nil
	}
	return nil
}

// persistLocked re-encodes all three collections and writes them back.
// Called after every successful mutation; callers hold s.mu. The contract is
// only that storage reflects the latest in-memory state once a mutation
// returns, so the write is non-incremental.
func (s *Store) persistLocked(ctx context.Context) error {
	for _, c := range []struct {
		key   string
		value any
	}{
		{tripsKey, s.trips},
		{expensesKey, s.expenses},
		{bookmarksKey, s.bookmarks},
	} {
		data, err := json.Marshal(c.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.key, err)
		}
		if err := s.backend.Set(ctx, c.key, string(data)); err != nil {
			return fmt.Errorf("write %s: %w", c.key, err)
		}
	}
	return nil
}

// mustLoadedLocked enforces the lifetime contract: using the store before
// Load is a programming error, not a runtime condition, so it fails loudly.
func (s *Store) mustLoadedLocked() {
	if !s.loaded {
		panic("store: operation before Load; call Load first")
	}
}

// Trips returns a copy of the trip collection in insertion order.
func (s *Store) Trips() []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()
	return append([]domain.Trip(nil), s.trips...)
}

// Expenses returns a copy of the expense collection in insertion order.
func (s *Store) Expenses() []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()
	return append([]domain.Expense(nil), s.expenses...)
}

// Bookmarks returns a copy of the bookmark collection in insertion order.
func (s *Store) Bookmarks() []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()
	return append([]domain.Bookmark(nil), s.bookmarks...)
}
