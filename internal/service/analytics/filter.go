package analytics

import (
	"time"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// inRange reports whether day falls inside the inclusive [start, end] window.
// An inverted window matches nothing.
func inRange(day, start, end time.Time) bool {
	if start.After(end) {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

// FilterSalesByRange keeps the sales whose sale date falls inside the
// inclusive window. Order is preserved.
func FilterSalesByRange(sales []models.Sale, r models.DateRange) []models.Sale {
	out := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if inRange(s.SaleDate, r.Start, r.End) {
			out = append(out, s)
		}
	}
	return out
}

// FilterSuppliesByRange keeps the supplies whose supply date falls inside
// the inclusive window.
func FilterSuppliesByRange(supplies []models.Supply, r models.DateRange) []models.Supply {
	out := make([]models.Supply, 0, len(supplies))
	for _, s := range supplies {
		if inRange(s.SupplyDate, r.Start, r.End) {
			out = append(out, s)
		}
	}
	return out
}

// FilterReturnsByRange keeps the returns whose return date falls inside the
// inclusive window.
func FilterReturnsByRange(returns []models.Return, r models.DateRange) []models.Return {
	out := make([]models.Return, 0, len(returns))
	for _, ret := range returns {
		if inRange(ret.ReturnDate, r.Start, r.End) {
			out = append(out, ret)
		}
	}
	return out
}

// FilterExpensesByRange keeps the expenses whose date falls inside the
// inclusive window.
func FilterExpensesByRange(expenses []models.Expense, r models.DateRange) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if inRange(e.ExpenseDate, r.Start, r.End) {
			out = append(out, e)
		}
	}
	return out
}
