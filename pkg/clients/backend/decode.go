package backend

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// The fetch boundary: raw rows decode into loose DTOs, get validated, and
// convert into domain records. Malformed rows (missing required fields,
// unparseable dates, non-positive quantities) are quarantined: dropped,
// counted and debug-logged, so they never reach aggregation. A bad row
// never fails the whole fetch.

// ErrMalformedRow is returned when a single-row response fails validation.
var ErrMalformedRow = errors.New("malformed row in backend response")

type varietyRow struct {
	ID              int           `json:"id" validate:"required"`
	Name            string        `json:"name" validate:"required"`
	Description     string        `json:"description"`
	MeasurementUnit string        `json:"measurement_unit" validate:"required"`
	StandardLength  models.Amount `json:"standard_length"`
	DefaultCost     models.Amount `json:"default_cost_price"`
	CreatedAt       string        `json:"created_at"`
}

type saleRow struct {
	ID              int           `json:"id" validate:"required"`
	SalespersonName string        `json:"salesperson_name" validate:"required"`
	VarietyID       int           `json:"variety_id" validate:"required"`
	Quantity        models.Amount `json:"quantity"`
	SellingPrice    models.Amount `json:"selling_price"`
	CostPrice       models.Amount `json:"cost_price"`
	Profit          models.Amount `json:"profit"`
	SaleDate        string        `json:"sale_date" validate:"required"`
	SaleTimestamp   string        `json:"sale_timestamp"`
	Variety         *varietyRow   `json:"variety"`
}

type supplyRow struct {
	ID           int           `json:"id" validate:"required"`
	SupplierName string        `json:"supplier_name" validate:"required"`
	VarietyID    int           `json:"variety_id" validate:"required"`
	Quantity     models.Amount `json:"quantity"`
	PricePerItem models.Amount `json:"price_per_item"`
	TotalAmount  models.Amount `json:"total_amount"`
	SupplyDate   string        `json:"supply_date" validate:"required"`
	Variety      *varietyRow   `json:"variety"`
}

type returnRow struct {
	ID           int           `json:"id" validate:"required"`
	SupplierName string        `json:"supplier_name" validate:"required"`
	VarietyID    int           `json:"variety_id" validate:"required"`
	Quantity     models.Amount `json:"quantity"`
	PricePerItem models.Amount `json:"price_per_item"`
	TotalAmount  models.Amount `json:"total_amount"`
	ReturnDate   string        `json:"return_date" validate:"required"`
	Reason       string        `json:"reason"`
	Variety      *varietyRow   `json:"variety"`
}

type expenseRow struct {
	ID          int           `json:"id" validate:"required"`
	Category    string        `json:"category" validate:"required"`
	Amount      models.Amount `json:"amount"`
	ExpenseDate string        `json:"expense_date" validate:"required"`
	Description string        `json:"description"`
}

func (c *Client) toVariety(r varietyRow) (models.Variety, bool) {
	if err := c.validate.Struct(r); err != nil {
		return models.Variety{}, false
	}
	unit := models.MeasurementUnit(r.MeasurementUnit)
	if !unit.Valid() {
		return models.Variety{}, false
	}

	created, _ := parseTimestamp(r.CreatedAt)
	return models.Variety{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		MeasurementUnit: unit,
		StandardLength:  r.StandardLength.Decimal,
		DefaultCost:     r.DefaultCost.Decimal,
		CreatedAt:       created,
	}, true
}

func (c *Client) toVarieties(rows []varietyRow) []models.Variety {
	out := make([]models.Variety, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		v, ok := c.toVariety(r)
		if !ok {
			dropped++
			continue
		}
		out = append(out, v)
	}
	c.logQuarantine("varieties", dropped)
	return out
}

func (c *Client) toSale(r saleRow) (models.Sale, bool) {
	if err := c.validate.Struct(r); err != nil {
		return models.Sale{}, false
	}
	day, ok := models.ParseDay(r.SaleDate)
	if !ok {
		return models.Sale{}, false
	}
	if !r.Quantity.IsPositive() {
		return models.Sale{}, false
	}

	ts, _ := parseTimestamp(r.SaleTimestamp)
	sale := models.Sale{
		ID:              r.ID,
		SalespersonName: r.SalespersonName,
		VarietyID:       r.VarietyID,
		Quantity:        r.Quantity.Decimal,
		SellingPrice:    r.SellingPrice.Decimal,
		CostPrice:       r.CostPrice.Decimal,
		Profit:          r.Profit.Decimal,
		SaleDate:        day,
		SaleTimestamp:   ts,
	}
	if r.Variety != nil {
		if v, ok := c.toVariety(*r.Variety); ok {
			sale.Variety = &v
		}
	}
	return sale, true
}

func (c *Client) toSales(rows []saleRow) []models.Sale {
	out := make([]models.Sale, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		s, ok := c.toSale(r)
		if !ok {
			dropped++
			continue
		}
		out = append(out, s)
	}
	c.logQuarantine("sales", dropped)
	return out
}

func (c *Client) toSupply(r supplyRow) (models.Supply, bool) {
	if err := c.validate.Struct(r); err != nil {
		return models.Supply{}, false
	}
	day, ok := models.ParseDay(r.SupplyDate)
	if !ok {
		return models.Supply{}, false
	}
	if !r.Quantity.IsPositive() {
		return models.Supply{}, false
	}

	supply := models.Supply{
		ID:           r.ID,
		SupplierName: r.SupplierName,
		VarietyID:    r.VarietyID,
		Quantity:     r.Quantity.Decimal,
		PricePerItem: r.PricePerItem.Decimal,
		TotalAmount:  r.TotalAmount.Decimal,
		SupplyDate:   day,
	}
	if r.Variety != nil {
		if v, ok := c.toVariety(*r.Variety); ok {
			supply.Variety = &v
		}
	}
	return supply, true
}

func (c *Client) toSupplies(rows []supplyRow) []models.Supply {
	out := make([]models.Supply, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		s, ok := c.toSupply(r)
		if !ok {
			dropped++
			continue
		}
		out = append(out, s)
	}
	c.logQuarantine("supplier inventory", dropped)
	return out
}

func (c *Client) toReturn(r returnRow) (models.Return, bool) {
	if err := c.validate.Struct(r); err != nil {
		return models.Return{}, false
	}
	day, ok := models.ParseDay(r.ReturnDate)
	if !ok {
		return models.Return{}, false
	}
	if !r.Quantity.IsPositive() {
		return models.Return{}, false
	}

	ret := models.Return{
		ID:           r.ID,
		SupplierName: r.SupplierName,
		VarietyID:    r.VarietyID,
		Quantity:     r.Quantity.Decimal,
		PricePerItem: r.PricePerItem.Decimal,
		TotalAmount:  r.TotalAmount.Decimal,
		ReturnDate:   day,
		Reason:       r.Reason,
	}
	if r.Variety != nil {
		if v, ok := c.toVariety(*r.Variety); ok {
			ret.Variety = &v
		}
	}
	return ret, true
}

func (c *Client) toReturns(rows []returnRow) []models.Return {
	out := make([]models.Return, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		ret, ok := c.toReturn(r)
		if !ok {
			dropped++
			continue
		}
		out = append(out, ret)
	}
	c.logQuarantine("supplier returns", dropped)
	return out
}

func (c *Client) toExpense(r expenseRow) (models.Expense, bool) {
	if err := c.validate.Struct(r); err != nil {
		return models.Expense{}, false
	}
	day, ok := models.ParseDay(r.ExpenseDate)
	if !ok {
		return models.Expense{}, false
	}

	return models.Expense{
		ID:          r.ID,
		Category:    r.Category,
		Amount:      r.Amount.Decimal,
		ExpenseDate: day,
		Description: r.Description,
	}, true
}

func (c *Client) toExpenses(rows []expenseRow) []models.Expense {
	out := make([]models.Expense, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		e, ok := c.toExpense(r)
		if !ok {
			dropped++
			continue
		}
		out = append(out, e)
	}
	c.logQuarantine("expenses", dropped)
	return out
}

func (c *Client) logQuarantine(collection string, dropped int) {
	if dropped == 0 {
		return
	}
	c.logger.Debug("quarantined malformed rows",
		zap.String("collection", collection),
		zap.Int("dropped", dropped))
}

func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
