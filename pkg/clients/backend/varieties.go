package backend

import (
	"context"
	"fmt"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// VarietyCreateRequest is the POST /varieties/ body.
type VarietyCreateRequest struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description,omitempty"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,oneof=pieces meters yards"`
	StandardLength  string `json:"standard_length,omitempty"`
}

// ListVarieties fetches the full cloth variety catalog.
func (c *Client) ListVarieties(ctx context.Context) ([]models.Variety, error) {
	var rows []varietyRow
	if err := c.get(ctx, "/varieties/", &rows); err != nil {
		return nil, fmt.Errorf("list varieties: %w", err)
	}
	return c.toVarieties(rows), nil
}

// CreateVariety registers a new cloth variety.
func (c *Client) CreateVariety(ctx context.Context, req VarietyCreateRequest) (models.Variety, error) {
	if err := c.validate.Struct(req); err != nil {
		return models.Variety{}, fmt.Errorf("create variety: %w", err)
	}

	var row varietyRow
	if err := c.post(ctx, "/varieties/", req, &row); err != nil {
		return models.Variety{}, fmt.Errorf("create variety: %w", err)
	}
	v, ok := c.toVariety(row)
	if !ok {
		return models.Variety{}, fmt.Errorf("create variety: %w", ErrMalformedRow)
	}
	return v, nil
}

// UpdateVariety replaces an existing variety's attributes.
func (c *Client) UpdateVariety(ctx context.Context, id int, req VarietyCreateRequest) (models.Variety, error) {
	if err := c.validate.Struct(req); err != nil {
		return models.Variety{}, fmt.Errorf("update variety %d: %w", id, err)
	}

	var row varietyRow
	if err := c.put(ctx, fmt.Sprintf("/varieties/%d", id), req, &row); err != nil {
		return models.Variety{}, fmt.Errorf("update variety %d: %w", id, err)
	}
	v, ok := c.toVariety(row)
	if !ok {
		return models.Variety{}, fmt.Errorf("update variety %d: %w", id, ErrMalformedRow)
	}
	return v, nil
}

// DeleteVariety removes a variety by id.
func (c *Client) DeleteVariety(ctx context.Context, id int) error {
	if err := c.delete(ctx, fmt.Sprintf("/varieties/%d", id)); err != nil {
		return fmt.Errorf("delete variety %d: %w", id, err)
	}
	return nil
}
