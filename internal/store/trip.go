package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wayfarer-app/backend/internal/domain"
)

// AddTrip assigns a fresh ID, appends the trip, and persists.
// The store performs no validation; callers run the authoring-layer checks
// (see tripform) before calling.
func (s *Store) AddTrip(ctx context.Context, in domain.NewTrip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	trip := domain.Trip{
		ID:           uuid.New(),
		Title:        in.Title,
		Description:  in.Description,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Destinations: in.Destinations,
	}
	s.trips = append(s.trips, trip)

	if err := s.persistLocked(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("store.Store.AddTrip: %w", err)
	}
	return trip, nil
}

// UpdateTrip merges the non-nil patch fields onto the trip with the given ID.
// A miss is a silent no-op, not an error.
func (s *Store) UpdateTrip(ctx context.Context, id uuid.UUID, patch domain.TripPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	for i := range s.trips {
		if s.trips[i].ID != id {
			continue
		}
		patch.Apply(&s.trips[i])
		if err := s.persistLocked(ctx); err != nil {
			return fmt.Errorf("store.Store.UpdateTrip: %w", err)
		}
		return nil
	}
	return nil
}

// DeleteTrip removes the trip with the given ID and cascades: expenses
// referencing the trip are deleted, bookmarks referencing it are unassigned
// (kept, with TripID cleared). The removed trip is returned so the caller
// can offer a one-shot undo via RestoreTrip.
// Returns domain.ErrNotFound when no trip matches; nothing is persisted then,
// so a repeated delete is a no-op.
func (s *Store) DeleteTrip(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	idx := -1
	for i := range s.trips {
		if s.trips[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Trip{}, fmt.Errorf("store.Store.DeleteTrip: %w", domain.ErrNotFound)
	}

	removed := s.trips[idx]
	s.trips = append(s.trips[:idx], s.trips[idx+1:]...)

	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if e.TripID != id {
			kept = append(kept, e)
		}
	}
	s.expenses = kept

	var unlinked []uuid.UUID
	for i := range s.bookmarks {
		if s.bookmarks[i].TripID != nil && *s.bookmarks[i].TripID == id {
			s.bookmarks[i].TripID = nil
			unlinked = append(unlinked, s.bookmarks[i].ID)
		}
	}

	s.lastDeleted = &deletedTrip{trip: removed, unlinked: unlinked}

	if err := s.persistLocked(ctx); err != nil {
		return domain.Trip{}, fmt.Errorf("store.Store.DeleteTrip: %w", err)
	}
	return removed, nil
}

// RestoreTrip re-inserts a previously deleted trip verbatim (same ID) and,
// when it matches the most recent delete, re-links the bookmarks that delete
// unassigned, but only those still unassigned now. This is a best-effort
// undo for exactly one prior deletion, not a general undo stack.
// Restoring a trip whose ID already exists is a no-op.
func (s *Store) RestoreTrip(ctx context.Context, trip domain.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	for i := range s.trips {
		if s.trips[i].ID == trip.ID {
			return nil
		}
	}
	s.trips = append(s.trips, trip)

	if s.lastDeleted != nil && s.lastDeleted.trip.ID == trip.ID {
		for _, bid := range s.lastDeleted.unlinked {
			for i := range s.bookmarks {
				if s.bookmarks[i].ID == bid && s.bookmarks[i].TripID == nil {
					id := trip.ID
					s.bookmarks[i].TripID = &id
				}
			}
		}
		s.lastDeleted = nil
	}

	if err := s.persistLocked(ctx); err != nil {
		return fmt.Errorf("store.Store.RestoreTrip: %w", err)
	}
	return nil
}

// TripByID returns the trip with the given ID, if present.
func (s *Store) TripByID(id uuid.UUID) (domain.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	for _, t := range s.trips {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Trip{}, false
}
