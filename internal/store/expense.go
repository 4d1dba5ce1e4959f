package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wayfarer-app/backend/internal/domain"
)

// AddExpense assigns a fresh ID, appends the expense, and persists.
// The store does not verify that TripID refers to an existing trip; the
// authoring layer is responsible for offering only valid trips.
func (s *Store) AddExpense(ctx context.Context, in domain.NewExpense) (domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	expense := domain.Expense{
		ID:          uuid.New(),
		TripID:      in.TripID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		Currency:    in.Currency,
	}
	s.expenses = append(s.expenses, expense)

	if err := s.persistLocked(ctx); err != nil {
		return domain.Expense{}, fmt.Errorf("store.Store.AddExpense: %w", err)
	}
	return expense, nil
}

// UpdateExpense merges the non-nil patch fields onto the expense with the
// given ID. A miss is a silent no-op.
func (s *Store) UpdateExpense(ctx context.Context, id uuid.UUID, patch domain.ExpensePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		patch.Apply(&s.expenses[i])
		if err := s.persistLocked(ctx); err != nil {
			return fmt.Errorf("store.Store.UpdateExpense: %w", err)
		}
		return nil
	}
	return nil
}

// DeleteExpense removes the expense with the given ID. Idempotent: deleting
// an unknown ID is a no-op and does not touch storage.
func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
		if err := s.persistLocked(ctx); err != nil {
			return fmt.Errorf("store.Store.DeleteExpense: %w", err)
		}
		return nil
	}
	return nil
}

// ExpensesByTripID returns all expenses referencing the trip, in collection
// order. Callers sort for display. Always returns a non-nil slice.
func (s *Store) ExpensesByTripID(tripID uuid.UUID) []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLoadedLocked()

	out := []domain.Expense{}
	for _, e := range s.expenses {
		if e.TripID == tripID {
			out = append(out, e)
		}
	}
	return out
}
