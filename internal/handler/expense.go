package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wayfarer-app/backend/internal/display"
	"github.com/wayfarer-app/backend/internal/domain"
)

// expenseRequest is the JSON body for creating an expense.
type expenseRequest struct {
	TripID      uuid.UUID          `json:"tripId"`
	Amount      float64            `json:"amount"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Date        openapi_types.Date `json:"date"`
	Currency    string             `json:"currency"`
}

// expensePatchRequest is the JSON body for a partial expense update.
type expensePatchRequest struct {
	TripID      *uuid.UUID          `json:"tripId"`
	Amount      *float64            `json:"amount"`
	Category    *string             `json:"category"`
	Description *string             `json:"description"`
	Date        *openapi_types.Date `json:"date"`
	Currency    *string             `json:"currency"`
}

// CreateExpense handles POST /expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w, err)
		return
	}

	if req.TripID == (uuid.UUID{}) {
		writeValidation(w, "tripId is required")
		return
	}
	if req.Amount < 0 {
		writeValidation(w, "amount must not be negative")
		return
	}

	created, err := s.store.AddExpense(r.Context(), domain.NewExpense{
		TripID:      req.TripID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		Currency:    req.Currency,
	})
	if err != nil {
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListExpenses handles GET /expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Expenses())
}

// UpdateExpense handles PUT /expenses/{id}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "expense not found")
	if !ok {
		return
	}
	if !s.expenseExists(id) {
		writeNotFound(w, "expense not found")
		return
	}

	var req expensePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w, err)
		return
	}
	if req.Amount != nil && *req.Amount < 0 {
		writeValidation(w, "amount must not be negative")
		return
	}

	err := s.store.UpdateExpense(r.Context(), id, domain.ExpensePatch{
		TripID:      req.TripID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		Currency:    req.Currency,
	})
	if err != nil {
		writeInternal(w, err)
		return
	}

	for _, e := range s.store.Expenses() {
		if e.ID == id {
			writeJSON(w, http.StatusOK, e)
			return
		}
	}
	writeNotFound(w, "expense not found")
}

// DeleteExpense handles DELETE /expenses/{id}. Deletion is idempotent, so an
// unknown ID still answers 204.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "expense not found")
	if !ok {
		return
	}
	if err := s.store.DeleteExpense(r.Context(), id); err != nil {
		writeInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TripExpenseSummary handles GET /trips/{id}/summary: the expense total and
// per-category breakdown for one trip.
func (s *Server) TripExpenseSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "trip not found")
	if !ok {
		return
	}
	if _, found := s.store.TripByID(id); !found {
		writeNotFound(w, "trip not found")
		return
	}

	expenses := s.store.ExpensesByTripID(id)
	writeJSON(w, http.StatusOK, struct {
		Total      float64                   `json:"total"`
		Categories []display.CategorySummary `json:"categories"`
	}{
		Total:      display.Total(expenses),
		Categories: display.CategoryBreakdown(expenses),
	})
}

// ListCurrencies handles GET /currencies: the fixed currency table.
func (s *Server) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Currencies)
}

// ListCategories handles GET /categories: the fixed category sets the expense
// and bookmark forms offer.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Expense  []string `json:"expense"`
		Bookmark []string `json:"bookmark"`
	}{
		Expense:  domain.ExpenseCategories,
		Bookmark: domain.BookmarkCategories,
	})
}

// expenseExists reports whether an expense with the given ID is in the store.
func (s *Server) expenseExists(id uuid.UUID) bool {
	for _, e := range s.store.Expenses() {
		if e.ID == id {
			return true
		}
	}
	return false
}
