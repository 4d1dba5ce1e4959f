package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wayfarer-app/backend/internal/domain"
)

// AddBookmark assigns a fresh ID, appends the bookmark, and persists.
func (s *Store) AddBookmark(ctx context.Context, in domain.NewBookmark) (domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	bookmark := domain.Bookmark{
		ID:        uuid.New(),
		Name:      in.Name,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Notes:     in.Notes,
		Category:  in.Category,
	}
	if in.TripID != nil {
		id := *in.TripID
		bookmark.TripID = &id
	}
	s.bookmarks = append(s.bookmarks, bookmark)

	if err := s.persistLocked(ctx); err != nil {
		return domain.Bookmark{}, fmt.Errorf("store.Store.AddBookmark: %w", err)
	}
	return bookmark, nil
}

// UpdateBookmark merges the non-nil patch fields onto the bookmark with the
// given ID. A miss is a silent no-op.
func (s *Store) UpdateBookmark(ctx context.Context, id uuid.UUID, patch domain.BookmarkPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	for i := range s.bookmarks {
		if s.bookmarks[i].ID != id {
			continue
		}
		patch.Apply(&s.bookmarks[i])
		if err := s.persistLocked(ctx); err != nil {
			return fmt.Errorf("store.Store.UpdateBookmark: %w", err)
		}
		return nil
	}
	return nil
}

// DeleteBookmark removes the bookmark with the given ID. Idempotent: deleting
// an unknown ID is a no-op and does not touch storage.
func (s *Store) DeleteBookmark(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	for i := range s.bookmarks {
		if s.bookmarks[i].ID != id {
			continue
		}
		s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
		if err := s.persistLocked(ctx); err != nil {
			return fmt.Errorf("store.Store.DeleteBookmark: %w", err)
		}
		return nil
	}
	return nil
}

// BookmarksByTripID returns all bookmarks assigned to the trip, in collection
// order. Unassigned bookmarks never match. Always returns a non-nil slice.
func (s *Store) BookmarksByTripID(tripID uuid.UUID) []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	out := []domain.Bookmark{}
	for _, b := range s.bookmarks {
		if b.TripID != nil && *b.TripID == tripID {
			out = append(out, b)
		}
	}
	return out
}
