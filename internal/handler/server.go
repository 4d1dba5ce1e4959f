// Package handler implements the HTTP handlers for the Wayfarer API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, expense.go, bookmark.go) but all share the same Server
// struct so they can access its dependencies.
//
// This layer is also the authoring flow: it runs the validation the store
// deliberately does not (tripform date checks, required fields) before any
// mutation reaches the store.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayfarer-app/backend/internal/domain"
)

// TravelStore defines the store operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a lightweight store without touching real persistence.
type TravelStore interface {
	Trips() []domain.Trip
	AddTrip(ctx context.Context, in domain.NewTrip) (domain.Trip, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, patch domain.TripPatch) error
	DeleteTrip(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	RestoreTrip(ctx context.Context, trip domain.Trip) error
	TripByID(id uuid.UUID) (domain.Trip, bool)

	Expenses() []domain.Expense
	AddExpense(ctx context.Context, in domain.NewExpense) (domain.Expense, error)
	UpdateExpense(ctx context.Context, id uuid.UUID, patch domain.ExpensePatch) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ExpensesByTripID(tripID uuid.UUID) []domain.Expense

	Bookmarks() []domain.Bookmark
	AddBookmark(ctx context.Context, in domain.NewBookmark) (domain.Bookmark, error)
	UpdateBookmark(ctx context.Context, id uuid.UUID, patch domain.BookmarkPatch) error
	DeleteBookmark(ctx context.Context, id uuid.UUID) error
	BookmarksByTripID(tripID uuid.UUID) []domain.Bookmark
}

// Server holds the handler dependencies. Wire it in main.go via Routes.
type Server struct {
	store TravelStore
}

// NewServer constructs the Server with all its dependencies.
func NewServer(store TravelStore) *Server {
	return &Server{store: store}
}

// Routes returns the chi router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.Health)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/restore", s.RestoreTrip)
			r.Get("/expenses", s.ListTripExpenses)
			r.Get("/bookmarks", s.ListTripBookmarks)
			r.Get("/summary", s.TripExpenseSummary)
		})
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", s.ListExpenses)
		r.Post("/", s.CreateExpense)
		r.Put("/{id}", s.UpdateExpense)
		r.Delete("/{id}", s.DeleteExpense)
	})

	r.Route("/bookmarks", func(r chi.Router) {
		r.Get("/", s.ListBookmarks)
		r.Post("/", s.CreateBookmark)
		r.Put("/{id}", s.UpdateBookmark)
		r.Delete("/{id}", s.DeleteBookmark)
	})

	r.Get("/currencies", s.ListCurrencies)
	r.Get("/categories", s.ListCategories)

	return r
}
