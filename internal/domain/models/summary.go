package models

// Server-computed summary shapes, decoded as-is from the backend. Amount
// fields tolerate both numeric and string JSON encodings.

// DailySalesSummary is the backend's sales rollup for a single date.
type DailySalesSummary struct {
	Date             string `json:"date"`
	TotalSalesAmount Amount `json:"total_sales_amount"`
	TotalProfit      Amount `json:"total_profit"`
	TotalQuantity    Amount `json:"total_quantity_sold"`
	SalesCount       int    `json:"sales_count"`
}

// DailySupplierSummary is the backend's supplier rollup for a single date.
type DailySupplierSummary struct {
	Date         string `json:"date"`
	TotalSupply  Amount `json:"total_supply"`
	TotalReturns Amount `json:"total_returns"`
	NetAmount    Amount `json:"net_amount"`
	SupplyCount  int    `json:"supply_count"`
	ReturnCount  int    `json:"return_count"`
}

// DailyReport combines both rollups for the dashboard view.
type DailyReport struct {
	Date              string               `json:"date"`
	SupplierSummary   DailySupplierSummary `json:"supplier_summary"`
	SalesSummary      DailySalesSummary    `json:"sales_summary"`
	NetInventoryValue Amount               `json:"net_inventory_value"`
}

// SalespersonSummary is one salesperson's rollup for a single date.
type SalespersonSummary struct {
	SalespersonName string `json:"salesperson_name"`
	Date            string `json:"date"`
	TotalSales      Amount `json:"total_sales"`
	TotalProfit     Amount `json:"total_profit"`
	TotalItemsSold  int    `json:"total_items_sold"`
	SalesCount      int    `json:"sales_count"`
}

// SupplierWiseEntry is one supplier's line in the per-supplier breakdown.
type SupplierWiseEntry struct {
	SupplierName   string `json:"supplier_name"`
	TotalSupply    Amount `json:"total_supply"`
	SupplyQuantity Amount `json:"supply_quantity"`
	SupplyRecords  int    `json:"supply_records"`
	TotalReturns   Amount `json:"total_returns"`
	ReturnQuantity Amount `json:"return_quantity"`
	ReturnRecords  int    `json:"return_records"`
	NetAmount      Amount `json:"net_amount"`
}

// SupplierWiseSummary groups a date's supplies and returns by supplier.
type SupplierWiseSummary struct {
	Date      string              `json:"date"`
	Suppliers []SupplierWiseEntry `json:"suppliers"`
}

// ProfitByVariety is a per-variety profit line of the profit report.
type ProfitByVariety struct {
	VarietyID     int    `json:"variety_id"`
	TotalQuantity Amount `json:"total_quantity"`
	TotalProfit   Amount `json:"total_profit"`
}

// ProfitBySalesperson is a per-salesperson profit line of the profit report.
type ProfitBySalesperson struct {
	SalespersonName string `json:"salesperson_name"`
	TotalQuantity   Amount `json:"total_quantity"`
	TotalProfit     Amount `json:"total_profit"`
}

// ProfitReport is the backend's profit breakdown for a single date.
type ProfitReport struct {
	Date                string                `json:"date"`
	ProfitByVariety     []ProfitByVariety     `json:"profit_by_variety"`
	ProfitBySalesperson []ProfitBySalesperson `json:"profit_by_salesperson"`
}

// ExpenseSummary is the backend's expense rollup for a single date.
type ExpenseSummary struct {
	TotalExpenses     Amount            `json:"total_expenses"`
	CategoryBreakdown map[string]Amount `json:"category_breakdown"`
	ExpenseCount      int               `json:"expense_count"`
}

// FinancialReport is the backend's monthly financial rollup.
type FinancialReport struct {
	Date          string  `json:"date"`
	TotalRevenue  Amount  `json:"total_revenue"`
	TotalProfit   Amount  `json:"total_profit"`
	TotalExpenses Amount  `json:"total_expenses"`
	NetIncome     Amount  `json:"net_income"`
	ProfitMargin  float64 `json:"profit_margin"`
	ExpenseRatio  float64 `json:"expense_ratio"`
}

// QuickStatsBucket is one time bucket of the chatbot quick stats.
type QuickStatsBucket struct {
	Revenue Amount `json:"revenue"`
	Profit  Amount `json:"profit"`
	Sales   int    `json:"sales"`
}

// QuickStats is the headline numbers shown next to the chat prompt.
type QuickStats struct {
	Today    QuickStatsBucket `json:"today"`
	ThisWeek QuickStatsBucket `json:"this_week"`
}
