package domain

import (
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Expense is a monetary record attached to a trip. TripID is required; an
// expense has no meaning on its own and is hard-deleted when its trip is.
type Expense struct {
	ID          uuid.UUID          `json:"id"`
	TripID      uuid.UUID          `json:"tripId"`
	Amount      float64            `json:"amount"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Date        openapi_types.Date `json:"date"`
	Currency    string             `json:"currency"`
}

// ExpenseCategories is the fixed set offered by the expense form.
// The store accepts free text as well; the list is a UI convention.
var ExpenseCategories = []string{
	"Accommodation",
	"Transportation",
	"Food",
	"Activities",
	"Shopping",
	"Other",
}

// Currency describes one entry of the supported currency table.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Currencies is the fixed currency table expenses choose from.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "$", Name: "Australian Dollar"},
}

// NewExpense carries the caller-supplied fields for creating an expense.
type NewExpense struct {
	TripID      uuid.UUID
	Amount      float64
	Category    string
	Description string
	Date        openapi_types.Date
	Currency    string
}

// ExpensePatch is a partial update for an expense. Nil fields are left unchanged.
type ExpensePatch struct {
	TripID      *uuid.UUID
	Amount      *float64
	Category    *string
	Description *string
	Date        *openapi_types.Date
	Currency    *string
}

// Apply merges the non-nil fields of the patch onto e.
func (p ExpensePatch) Apply(e *Expense) {
	if p.TripID != nil {
		e.TripID = *p.TripID
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Currency != nil {
		e.Currency = *p.Currency
	}
}
