package backend

import (
	"context"
	"fmt"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// ExpenseCreateRequest is the POST /expenses/ body.
type ExpenseCreateRequest struct {
	Category    string `json:"category" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	ExpenseDate string `json:"expense_date" validate:"required"`
	Description string `json:"description,omitempty"`
}

// ListExpenses fetches all expense records.
func (c *Client) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var rows []expenseRow
	if err := c.get(ctx, "/expenses/", &rows); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return c.toExpenses(rows), nil
}

// ExpensesByDate fetches expense records for one calendar date.
func (c *Client) ExpensesByDate(ctx context.Context, date string) ([]models.Expense, error) {
	var rows []expenseRow
	if err := c.get(ctx, "/expenses/date/"+date, &rows); err != nil {
		return nil, fmt.Errorf("expenses for %s: %w", date, err)
	}
	return c.toExpenses(rows), nil
}

// ExpensesByMonth fetches expense records for one calendar month.
func (c *Client) ExpensesByMonth(ctx context.Context, year, month int) ([]models.Expense, error) {
	var rows []expenseRow
	if err := c.get(ctx, fmt.Sprintf("/expenses/month/%d/%d", year, month), &rows); err != nil {
		return nil, fmt.Errorf("expenses for %d-%02d: %w", year, month, err)
	}
	return c.toExpenses(rows), nil
}

// CreateExpense records an operating expense.
func (c *Client) CreateExpense(ctx context.Context, req ExpenseCreateRequest) (models.Expense, error) {
	if err := c.validate.Struct(req); err != nil {
		return models.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	var row expenseRow
	if err := c.post(ctx, "/expenses/", req, &row); err != nil {
		return models.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	e, ok := c.toExpense(row)
	if !ok {
		return models.Expense{}, fmt.Errorf("create expense: %w", ErrMalformedRow)
	}
	return e, nil
}

// DeleteExpense removes an expense record by id.
func (c *Client) DeleteExpense(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/expenses/%d", id)); err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	return nil
}

// ExpenseSummary fetches the expense rollup for one date.
func (c *Client) ExpenseSummary(ctx context.Context, date string) (models.ExpenseSummary, error) {
	var out models.ExpenseSummary
	if err := c.get(ctx, "/expenses/summary/"+date, &out); err != nil {
		return models.ExpenseSummary{}, fmt.Errorf("expense summary for %s: %w", date, err)
	}
	return out, nil
}

// FinancialReport fetches the monthly financial rollup.
func (c *Client) FinancialReport(ctx context.Context, year, month int) (models.FinancialReport, error) {
	var out models.FinancialReport
	if err := c.get(ctx, fmt.Sprintf("/expenses/financial-report/%d/%d", year, month), &out); err != nil {
		return models.FinancialReport{}, fmt.Errorf("financial report for %d-%02d: %w", year, month, err)
	}
	return out, nil
}
