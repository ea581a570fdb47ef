package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Derived reporting structures produced by the analytics aggregator. They
// are rebuilt from scratch on every computation and never persisted.

// DateRange is an inclusive calendar-date window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the length of the range in whole days.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// PeriodMetric accumulates one calendar date's sales activity.
type PeriodMetric struct {
	Date         string
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
	Transactions int
}

// ProductMetric accumulates one variety's sales activity. Quantity is the
// raw sold quantity; Margin is profit over revenue as a percentage.
type ProductMetric struct {
	Name     string
	Revenue  decimal.Decimal
	Profit   decimal.Decimal
	Quantity decimal.Decimal
	Margin   decimal.Decimal
}

// SupplierMetric accumulates one supplier's supply and return totals.
// NetAmount and Reliability are filled in by a post-pass once the totals
// are final.
type SupplierMetric struct {
	Name         string
	TotalSupply  decimal.Decimal
	TotalReturns decimal.Decimal
	NetAmount    decimal.Decimal
	Reliability  decimal.Decimal
}

// SalespersonMetric accumulates one salesperson's activity. ItemsSold is
// unit-normalized: length-based sales count as one item each.
type SalespersonMetric struct {
	Name         string
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
	Transactions int
	ItemsSold    decimal.Decimal
}

// MixSlice is one product's share of the ranked products' revenue.
type MixSlice struct {
	Name   string
	Share  decimal.Decimal // percent of ranked revenue
	Amount decimal.Decimal
}

// KPISet holds the headline figures for a period.
type KPISet struct {
	TotalRevenue    decimal.Decimal
	TotalProfit     decimal.Decimal
	TotalSales      int
	AvgOrderValue   decimal.Decimal
	ProfitMargin    decimal.Decimal // percent
	GrowthRate      decimal.Decimal // percent, two-bucket estimator
	TopProduct      string
	TopProductShare decimal.Decimal // percent of total revenue
}

// AnalyticsReport is the full derived output for a date range.
type AnalyticsReport struct {
	Range       DateRange
	KPIs        KPISet
	Trend       []PeriodMetric
	TopProducts []ProductMetric
	Suppliers   []SupplierMetric
	Salespeople []SalespersonMetric
	ProductMix  []MixSlice
}
