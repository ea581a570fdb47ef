package backend

import (
	"context"
	"fmt"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// DailyReport fetches the combined supplier and sales rollup for one date.
func (c *Client) DailyReport(ctx context.Context, date string) (models.DailyReport, error) {
	var out models.DailyReport
	if err := c.get(ctx, "/reports/daily/"+date, &out); err != nil {
		return models.DailyReport{}, fmt.Errorf("daily report for %s: %w", date, err)
	}
	return out, nil
}

// ProfitReport fetches the per-variety and per-salesperson profit breakdown
// for one date.
func (c *Client) ProfitReport(ctx context.Context, date string) (models.ProfitReport, error) {
	var out models.ProfitReport
	if err := c.get(ctx, "/reports/profit/"+date, &out); err != nil {
		return models.ProfitReport{}, fmt.Errorf("profit report for %s: %w", date, err)
	}
	return out, nil
}
