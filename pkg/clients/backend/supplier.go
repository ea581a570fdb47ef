package backend

import (
	"context"
	"fmt"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// SupplyCreateRequest is the POST /supplier/inventory body.
type SupplyCreateRequest struct {
	SupplierName string `json:"supplier_name" validate:"required"`
	VarietyID    int    `json:"variety_id" validate:"required"`
	Quantity     string `json:"quantity" validate:"required"`
	PricePerItem string `json:"price_per_item" validate:"required"`
	SupplyDate   string `json:"supply_date" validate:"required"`
}

// ReturnCreateRequest is the POST /supplier/returns body.
type ReturnCreateRequest struct {
	SupplierName string `json:"supplier_name" validate:"required"`
	VarietyID    int    `json:"variety_id" validate:"required"`
	Quantity     string `json:"quantity" validate:"required"`
	PricePerItem string `json:"price_per_item" validate:"required"`
	ReturnDate   string `json:"return_date" validate:"required"`
	Reason       string `json:"reason,omitempty"`
}

// ListSupplies fetches all supplier inventory records.
func (c *Client) ListSupplies(ctx context.Context) ([]models.Supply, error) {
	var rows []supplyRow
	if err := c.get(ctx, "/supplier/inventory", &rows); err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	return c.toSupplies(rows), nil
}

// SuppliesByDate fetches supplier inventory records for one calendar date.
func (c *Client) SuppliesByDate(ctx context.Context, date string) ([]models.Supply, error) {
	var rows []supplyRow
	if err := c.get(ctx, "/supplier/inventory/date/"+date, &rows); err != nil {
		return nil, fmt.Errorf("supplies for %s: %w", date, err)
	}
	return c.toSupplies(rows), nil
}

// CreateSupply records stock received from a supplier.
func (c *Client) CreateSupply(ctx context.Context, req SupplyCreateRequest) (models.Supply, error) {
	if err := c.validate.Struct(req); err != nil {
		return models.Supply{}, fmt.Errorf("create supply: %w", err)
	}

	var row supplyRow
	if err := c.post(ctx, "/supplier/inventory", req, &row); err != nil {
		return models.Supply{}, fmt.Errorf("create supply: %w", err)
	}
	s, ok := c.toSupply(row)
	if !ok {
		return models.Supply{}, fmt.Errorf("create supply: %w", ErrMalformedRow)
	}
	return s, nil
}

// DeleteSupply removes a supplier inventory record by id.
func (c *Client) DeleteSupply(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/supplier/inventory/%d", id)); err != nil {
		return fmt.Errorf("delete supply %d: %w", id, err)
	}
	return nil
}

// ListReturns fetches all supplier return records.
func (c *Client) ListReturns(ctx context.Context) ([]models.Return, error) {
	var rows []returnRow
	if err := c.get(ctx, "/supplier/returns", &rows); err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	return c.toReturns(rows), nil
}

// ReturnsByDate fetches supplier return records for one calendar date.
func (c *Client) ReturnsByDate(ctx context.Context, date string) ([]models.Return, error) {
	var rows []returnRow
	if err := c.get(ctx, "/supplier/returns/date/"+date, &rows); err != nil {
		return nil, fmt.Errorf("returns for %s: %w", date, err)
	}
	return c.toReturns(rows), nil
}

// CreateReturn records stock sent back to a supplier.
func (c *Client) CreateReturn(ctx context.Context, req ReturnCreateRequest) (models.Return, error) {
	if err := c.validate.Struct(req); err != nil {
		return models.Return{}, fmt.Errorf("create return: %w", err)
	}

	var row returnRow
	if err := c.post(ctx, "/supplier/returns", req, &row); err != nil {
		return models.Return{}, fmt.Errorf("create return: %w", err)
	}
	r, ok := c.toReturn(row)
	if !ok {
		return models.Return{}, fmt.Errorf("create return: %w", ErrMalformedRow)
	}
	return r, nil
}

// DeleteReturn removes a supplier return record by id.
func (c *Client) DeleteReturn(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/supplier/returns/%d", id)); err != nil {
		return fmt.Errorf("delete return %d: %w", id, err)
	}
	return nil
}

// SupplierDailySummary fetches the backend's supplier rollup for one date.
func (c *Client) SupplierDailySummary(ctx context.Context, date string) (models.DailySupplierSummary, error) {
	var out models.DailySupplierSummary
	if err := c.get(ctx, "/supplier/daily-summary/"+date, &out); err != nil {
		return models.DailySupplierSummary{}, fmt.Errorf("supplier daily summary for %s: %w", date, err)
	}
	return out, nil
}

// SupplierWiseSummary fetches the per-supplier breakdown for one date.
func (c *Client) SupplierWiseSummary(ctx context.Context, date string) (models.SupplierWiseSummary, error) {
	var out models.SupplierWiseSummary
	if err := c.get(ctx, "/supplier/supplier-summary/"+date, &out); err != nil {
		return models.SupplierWiseSummary{}, fmt.Errorf("supplier-wise summary for %s: %w", date, err)
	}
	return out, nil
}
