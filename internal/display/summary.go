// Package display holds the pure transforms the presentation layer applies
// to store query results: expense totals and category breakdowns, currency
// symbols, and date formatting. Nothing here carries state and nothing here
// belongs in the store.
package display

import (
	"sort"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wayfarer-app/backend/internal/domain"
)

// CategorySummary is one row of an expense breakdown: the spend in one
// category and its share of the overall total.
type CategorySummary struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Total sums the amounts of the given expenses.
func Total(expenses []domain.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// CategoryBreakdown groups expenses by category and returns one row per
// category, ordered by amount descending. Percentage is of the grand total;
// an empty input yields an empty (non-nil) slice. Ties keep a stable order
// by category name so output is deterministic.
func CategoryBreakdown(expenses []domain.Expense) []CategorySummary {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}

	rows := make([]CategorySummary, 0, len(totals))
	for category, amount := range totals {
		rows = append(rows, CategorySummary{Category: category, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Category < rows[j].Category
	})

	if grand := Total(expenses); grand > 0 {
		for i := range rows {
			rows[i].Percentage = rows[i].Amount / grand * 100
		}
	}
	return rows
}

// CurrencySymbol returns the display symbol for a currency code from the
// fixed table, falling back to the code itself for anything unknown.
func CurrencySymbol(code string) string {
	for _, c := range domain.Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return code
}

// FormatDate renders a calendar date for display, e.g. "Apr 2, 2025".
func FormatDate(d openapi_types.Date) string {
	return d.Time.Format("Jan 2, 2006")
}
