package backend

import (
	"context"
	"fmt"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// SaleCreateRequest is the POST /sales/ body. Profit is computed server-side
// from the price pair; it never appears in the request.
type SaleCreateRequest struct {
	SalespersonName string `json:"salesperson_name" validate:"required"`
	VarietyID       int    `json:"variety_id" validate:"required"`
	Quantity        string `json:"quantity" validate:"required"`
	SellingPrice    string `json:"selling_price" validate:"required"`
	CostPrice       string `json:"cost_price" validate:"required"`
	SaleDate        string `json:"sale_date" validate:"required"`
}

// ListSales fetches all sales records.
func (c *Client) ListSales(ctx context.Context) ([]models.Sale, error) {
	var rows []saleRow
	if err := c.get(ctx, "/sales/", &rows); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return c.toSales(rows), nil
}

// SalesByDate fetches sales records for one calendar date.
func (c *Client) SalesByDate(ctx context.Context, date string) ([]models.Sale, error) {
	var rows []saleRow
	if err := c.get(ctx, "/sales/date/"+date, &rows); err != nil {
		return nil, fmt.Errorf("sales for %s: %w", date, err)
	}
	return c.toSales(rows), nil
}

// CreateSale records a sales transaction.
func (c *Client) CreateSale(ctx context.Context, req SaleCreateRequest) (models.Sale, error) {
	if err := c.validate.Struct(req); err != nil {
		return models.Sale{}, fmt.Errorf("create sale: %w", err)
	}

	var row saleRow
	if err := c.post(ctx, "/sales/", req, &row); err != nil {
		return models.Sale{}, fmt.Errorf("create sale: %w", err)
	}
	s, ok := c.toSale(row)
	if !ok {
		return models.Sale{}, fmt.Errorf("create sale: %w", ErrMalformedRow)
	}
	return s, nil
}

// DeleteSale removes a sales record by id.
func (c *Client) DeleteSale(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/sales/%d", id)); err != nil {
		return fmt.Errorf("delete sale %d: %w", id, err)
	}
	return nil
}

// SalesDailySummary fetches the backend's sales rollup for one date.
func (c *Client) SalesDailySummary(ctx context.Context, date string) (models.DailySalesSummary, error) {
	var out models.DailySalesSummary
	if err := c.get(ctx, "/sales/daily-summary/"+date, &out); err != nil {
		return models.DailySalesSummary{}, fmt.Errorf("sales daily summary for %s: %w", date, err)
	}
	return out, nil
}

// SalespersonSummary fetches one salesperson's rollup for one date.
func (c *Client) SalespersonSummary(ctx context.Context, name, date string) (models.SalespersonSummary, error) {
	var out models.SalespersonSummary
	if err := c.get(ctx, "/sales/salesperson-summary/"+name+"/"+date, &out); err != nil {
		return models.SalespersonSummary{}, fmt.Errorf("salesperson summary for %s on %s: %w", name, date, err)
	}
	return out, nil
}
