package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// money renders a decimal as a rupee amount with two digits.
func money(d decimal.Decimal) string {
	return "Rs " + d.StringFixed(2)
}

func pct(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

func header(b *strings.Builder, width int, title string) {
	b.WriteString(strings.Repeat("=", width) + "\n")
	fmt.Fprintf(b, "  %s\n", title)
	b.WriteString(strings.Repeat("=", width) + "\n")
}

func rule(b *strings.Builder, width int) {
	b.WriteString(strings.Repeat("-", width) + "\n")
}

// sortedCategories returns the breakdown's category names in alphabetical
// order so repeated renders of the same summary print identically.
func sortedCategories(breakdown map[string]models.Amount) []string {
	categories := make([]string, 0, len(breakdown))
	for category := range breakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func formatDailyOverview(report models.DailyReport, expenses models.ExpenseSummary) string {
	var b strings.Builder
	header(&b, 62, "DAILY REPORT — "+report.Date)

	fmt.Fprintf(&b, "  %-28s %s\n", "Sales total:", money(report.SalesSummary.TotalSalesAmount.Decimal))
	fmt.Fprintf(&b, "  %-28s %s\n", "Sales profit:", money(report.SalesSummary.TotalProfit.Decimal))
	fmt.Fprintf(&b, "  %-28s %s\n", "Quantity sold:", report.SalesSummary.TotalQuantity.String())
	fmt.Fprintf(&b, "  %-28s %d\n", "Sales count:", report.SalesSummary.SalesCount)
	rule(&b, 62)
	fmt.Fprintf(&b, "  %-28s %s\n", "Supply received:", money(report.SupplierSummary.TotalSupply.Decimal))
	fmt.Fprintf(&b, "  %-28s %s\n", "Returns sent back:", money(report.SupplierSummary.TotalReturns.Decimal))
	fmt.Fprintf(&b, "  %-28s %s\n", "Net supplier amount:", money(report.SupplierSummary.NetAmount.Decimal))
	fmt.Fprintf(&b, "  %-28s %d supplies / %d returns\n", "Record counts:",
		report.SupplierSummary.SupplyCount, report.SupplierSummary.ReturnCount)
	rule(&b, 62)
	fmt.Fprintf(&b, "  %-28s %s (%d records)\n", "Expenses:", money(expenses.TotalExpenses.Decimal), expenses.ExpenseCount)
	for _, category := range sortedCategories(expenses.CategoryBreakdown) {
		fmt.Fprintf(&b, "    %-26s %s\n", category+":", money(expenses.CategoryBreakdown[category].Decimal))
	}
	rule(&b, 62)
	fmt.Fprintf(&b, "  %-28s %s\n", "Net inventory value:", money(report.NetInventoryValue.Decimal))
	b.WriteString(strings.Repeat("=", 62) + "\n")
	return b.String()
}

func formatAnalytics(report *models.AnalyticsReport) string {
	var b strings.Builder
	title := fmt.Sprintf("ANALYTICS — %s to %s",
		report.Range.Start.Format(models.DayLayout), report.Range.End.Format(models.DayLayout))
	header(&b, 72, title)

	k := report.KPIs
	fmt.Fprintf(&b, "  %-22s %s\n", "Total revenue:", money(k.TotalRevenue))
	fmt.Fprintf(&b, "  %-22s %s\n", "Total profit:", money(k.TotalProfit))
	fmt.Fprintf(&b, "  %-22s %d\n", "Transactions:", k.TotalSales)
	fmt.Fprintf(&b, "  %-22s %s\n", "Avg order value:", money(k.AvgOrderValue))
	fmt.Fprintf(&b, "  %-22s %s\n", "Profit margin:", pct(k.ProfitMargin))
	fmt.Fprintf(&b, "  %-22s %s\n", "Growth rate:", pct(k.GrowthRate))
	if k.TopProduct != "" {
		fmt.Fprintf(&b, "  %-22s %s (%s of revenue)\n", "Top product:", k.TopProduct, pct(k.TopProductShare))
	}

	if len(report.TopProducts) > 0 {
		b.WriteString("\n  TOP PRODUCTS\n")
		rule(&b, 72)
		fmt.Fprintf(&b, "  %-24s %14s %14s %8s %8s\n", "VARIETY", "REVENUE", "PROFIT", "QTY", "MARGIN")
		for _, p := range report.TopProducts {
			fmt.Fprintf(&b, "  %-24s %14s %14s %8s %8s\n",
				p.Name, p.Revenue.StringFixed(2), p.Profit.StringFixed(2), p.Quantity.String(), pct(p.Margin))
		}
	}

	if len(report.ProductMix) > 0 {
		b.WriteString("\n  PRODUCT MIX\n")
		rule(&b, 72)
		for _, m := range report.ProductMix {
			fmt.Fprintf(&b, "  %-24s %7s  %s\n", m.Name, pct(m.Share), money(m.Amount))
		}
	}

	if len(report.Suppliers) > 0 {
		b.WriteString("\n  SUPPLIERS\n")
		rule(&b, 72)
		fmt.Fprintf(&b, "  %-24s %12s %12s %12s %7s\n", "SUPPLIER", "SUPPLY", "RETURNS", "NET", "REL.")
		for _, s := range report.Suppliers {
			fmt.Fprintf(&b, "  %-24s %12s %12s %12s %7s\n",
				s.Name, s.TotalSupply.StringFixed(2), s.TotalReturns.StringFixed(2),
				s.NetAmount.StringFixed(2), pct(s.Reliability))
		}
	}

	if len(report.Salespeople) > 0 {
		b.WriteString("\n  SALES TEAM\n")
		rule(&b, 72)
		fmt.Fprintf(&b, "  %-24s %14s %14s %6s %7s\n", "NAME", "REVENUE", "PROFIT", "TXNS", "ITEMS")
		for _, p := range report.Salespeople {
			fmt.Fprintf(&b, "  %-24s %14s %14s %6d %7s\n",
				p.Name, p.Revenue.StringFixed(2), p.Profit.StringFixed(2), p.Transactions, p.ItemsSold.String())
		}
	}

	b.WriteString(strings.Repeat("=", 72) + "\n")
	return b.String()
}

func formatRangeReport(report *models.AnalyticsReport) string {
	var b strings.Builder
	title := fmt.Sprintf("SALES REPORT — %s to %s",
		report.Range.Start.Format(models.DayLayout), report.Range.End.Format(models.DayLayout))
	header(&b, 72, title)

	k := report.KPIs
	fmt.Fprintf(&b, "  %-22s %s\n", "Total revenue:", money(k.TotalRevenue))
	fmt.Fprintf(&b, "  %-22s %s\n", "Total profit:", money(k.TotalProfit))
	fmt.Fprintf(&b, "  %-22s %d\n", "Transactions:", k.TotalSales)
	fmt.Fprintf(&b, "  %-22s %s\n", "Profit margin:", pct(k.ProfitMargin))

	b.WriteString("\n  DAILY BREAKDOWN\n")
	rule(&b, 72)
	fmt.Fprintf(&b, "  %-14s %16s %16s %8s\n", "DATE", "REVENUE", "PROFIT", "TXNS")
	for _, day := range report.Trend {
		fmt.Fprintf(&b, "  %-14s %16s %16s %8d\n",
			day.Date, day.Revenue.StringFixed(2), day.Profit.StringFixed(2), day.Transactions)
	}

	if len(report.TopProducts) > 0 {
		b.WriteString("\n  TOP PRODUCTS\n")
		rule(&b, 72)
		fmt.Fprintf(&b, "  %-24s %14s %14s %8s\n", "VARIETY", "REVENUE", "PROFIT", "QTY")
		for _, p := range report.TopProducts {
			fmt.Fprintf(&b, "  %-24s %14s %14s %8s\n",
				p.Name, p.Revenue.StringFixed(2), p.Profit.StringFixed(2), p.Quantity.String())
		}
	}

	b.WriteString(strings.Repeat("=", 72) + "\n")
	return b.String()
}

func formatProfitReport(report models.ProfitReport) string {
	var b strings.Builder
	header(&b, 62, "PROFIT REPORT — "+report.Date)

	b.WriteString("  BY VARIETY\n")
	rule(&b, 62)
	fmt.Fprintf(&b, "  %-14s %14s %16s\n", "VARIETY ID", "QUANTITY", "PROFIT")
	for _, v := range report.ProfitByVariety {
		fmt.Fprintf(&b, "  %-14d %14s %16s\n", v.VarietyID, v.TotalQuantity.String(), v.TotalProfit.StringFixed(2))
	}

	b.WriteString("\n  BY SALESPERSON\n")
	rule(&b, 62)
	fmt.Fprintf(&b, "  %-24s %14s %16s\n", "NAME", "QUANTITY", "PROFIT")
	for _, p := range report.ProfitBySalesperson {
		fmt.Fprintf(&b, "  %-24s %14s %16s\n", p.SalespersonName, p.TotalQuantity.String(), p.TotalProfit.StringFixed(2))
	}

	b.WriteString(strings.Repeat("=", 62) + "\n")
	return b.String()
}

func formatSalespersonSummary(summary models.SalespersonSummary) string {
	var b strings.Builder
	header(&b, 62, fmt.Sprintf("SALESPERSON — %s (%s)", summary.SalespersonName, summary.Date))
	fmt.Fprintf(&b, "  %-22s %s\n", "Total sales:", money(summary.TotalSales.Decimal))
	fmt.Fprintf(&b, "  %-22s %s\n", "Total profit:", money(summary.TotalProfit.Decimal))
	fmt.Fprintf(&b, "  %-22s %d\n", "Items sold:", summary.TotalItemsSold)
	fmt.Fprintf(&b, "  %-22s %d\n", "Transactions:", summary.SalesCount)
	b.WriteString(strings.Repeat("=", 62) + "\n")
	return b.String()
}

func formatSupplierWise(summary models.SupplierWiseSummary) string {
	var b strings.Builder
	header(&b, 80, "SUPPLIERS — "+summary.Date)
	if len(summary.Suppliers) == 0 {
		b.WriteString("  No supplier activity.\n")
		b.WriteString(strings.Repeat("=", 80) + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-22s %12s %6s %12s %6s %12s\n", "SUPPLIER", "SUPPLY", "RECS", "RETURNS", "RECS", "NET")
	rule(&b, 80)
	for _, s := range summary.Suppliers {
		fmt.Fprintf(&b, "  %-22s %12s %6d %12s %6d %12s\n",
			s.SupplierName, s.TotalSupply.StringFixed(2), s.SupplyRecords,
			s.TotalReturns.StringFixed(2), s.ReturnRecords, s.NetAmount.StringFixed(2))
	}
	b.WriteString(strings.Repeat("=", 80) + "\n")
	return b.String()
}

func formatExpenseSummary(date string, summary models.ExpenseSummary) string {
	var b strings.Builder
	header(&b, 62, "EXPENSES — "+date)
	fmt.Fprintf(&b, "  %-22s %s (%d records)\n", "Total:", money(summary.TotalExpenses.Decimal), summary.ExpenseCount)
	for _, category := range sortedCategories(summary.CategoryBreakdown) {
		fmt.Fprintf(&b, "  %-22s %s\n", category+":", money(summary.CategoryBreakdown[category].Decimal))
	}
	b.WriteString(strings.Repeat("=", 62) + "\n")
	return b.String()
}

func formatFinancialReport(report models.FinancialReport) string {
	var b strings.Builder
	header(&b, 62, "FINANCIAL REPORT — "+report.Date)
	fmt.Fprintf(&b, "  %-22s %s\n", "Revenue:", money(report.TotalRevenue.Decimal))
	fmt.Fprintf(&b, "  %-22s %s\n", "Profit:", money(report.TotalProfit.Decimal))
	fmt.Fprintf(&b, "  %-22s %s\n", "Expenses:", money(report.TotalExpenses.Decimal))
	fmt.Fprintf(&b, "  %-22s %s\n", "Net income:", money(report.NetIncome.Decimal))
	fmt.Fprintf(&b, "  %-22s %.1f%%\n", "Profit margin:", report.ProfitMargin)
	fmt.Fprintf(&b, "  %-22s %.1f%%\n", "Expense ratio:", report.ExpenseRatio)
	b.WriteString(strings.Repeat("=", 62) + "\n")
	return b.String()
}

func formatQuickStats(stats models.QuickStats) string {
	var b strings.Builder
	header(&b, 62, "QUICK STATS")
	fmt.Fprintf(&b, "  Today:     revenue %s, profit %s\n",
		money(stats.Today.Revenue.Decimal), money(stats.Today.Profit.Decimal))
	fmt.Fprintf(&b, "  This week: revenue %s\n", money(stats.ThisWeek.Revenue.Decimal))
	b.WriteString(strings.Repeat("=", 62) + "\n")
	return b.String()
}
