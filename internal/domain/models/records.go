package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale captures one sales transaction. Profit is computed by the backend at
// creation time and carried verbatim; the aggregator never re-derives it.
type Sale struct {
	ID              int
	SalespersonName string
	VarietyID       int
	Quantity        decimal.Decimal
	SellingPrice    decimal.Decimal // per unit
	CostPrice       decimal.Decimal
	Profit          decimal.Decimal
	SaleDate        time.Time
	SaleTimestamp   time.Time
	Variety         *Variety
}

// Revenue returns selling price times quantity for this sale.
func (s Sale) Revenue() decimal.Decimal {
	return s.SellingPrice.Mul(s.Quantity)
}

// Supply captures stock received from a supplier on a given date.
type Supply struct {
	ID           int
	SupplierName string
	VarietyID    int
	Quantity     decimal.Decimal
	PricePerItem decimal.Decimal
	TotalAmount  decimal.Decimal
	SupplyDate   time.Time
	Variety      *Variety
}

// Return captures stock sent back to a supplier, a negative adjustment to
// the supplier's net balance.
type Return struct {
	ID           int
	SupplierName string
	VarietyID    int
	Quantity     decimal.Decimal
	PricePerItem decimal.Decimal
	TotalAmount  decimal.Decimal
	ReturnDate   time.Time
	Reason       string
	Variety      *Variety
}

// Expense captures an operating expense.
type Expense struct {
	ID          int
	Category    string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	Description string
}
