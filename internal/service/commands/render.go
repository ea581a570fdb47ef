package commands

import (
	"fmt"
	"strings"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

const helpText = `Available commands:
  dashboard [date]                                 daily report for a date (default today)
  analytics [days]                                 KPI block for the trailing window (default 30)
  report <start> <end>                             extended report for a date range
  report profit [date]                             profit breakdown by variety and salesperson
  sales [date]                                     list sales for a date
  sales add <name> <variety_id> <qty> <price> <cost> [date]
  sales del <id> | sales summary [date]
  supply [date] | supply add <supplier> <variety_id> <qty> <price> [date] | supply del <id>
  returns [date] | returns add <supplier> <variety_id> <qty> <price> [reason] | returns del <id>
  varieties | varieties add <name> <unit> [length] [desc] | varieties edit <id> ... | varieties del <id>
  expenses [date] | expenses add <category> <amount> [date] [desc] | expenses del <id>
  expenses month <year> <month> | expenses report <year> <month> | expenses summary [date]
  salesperson <name> [date]                        one salesperson's daily summary
  suppliers [date]                                 per-supplier breakdown for a date
  suppliers summary [date]                         supplier totals for a date
  stats                                            today / this-week headline numbers
  chat <message>                                   ask the shop assistant
  help, exit`

func renderSalesSummary(s models.DailySalesSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SALES SUMMARY — %s\n", s.Date)
	fmt.Fprintf(&b, "  %-20s %s\n", "Total amount:", s.TotalSalesAmount.StringFixed(2))
	fmt.Fprintf(&b, "  %-20s %s\n", "Total profit:", s.TotalProfit.StringFixed(2))
	fmt.Fprintf(&b, "  %-20s %s\n", "Quantity sold:", s.TotalQuantity.String())
	fmt.Fprintf(&b, "  %-20s %d\n", "Sales count:", s.SalesCount)
	return b.String()
}

func renderSupplierSummary(s models.DailySupplierSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SUPPLIER SUMMARY — %s\n", s.Date)
	fmt.Fprintf(&b, "  %-20s %s\n", "Total supply:", s.TotalSupply.StringFixed(2))
	fmt.Fprintf(&b, "  %-20s %s\n", "Total returns:", s.TotalReturns.StringFixed(2))
	fmt.Fprintf(&b, "  %-20s %s\n", "Net amount:", s.NetAmount.StringFixed(2))
	fmt.Fprintf(&b, "  %-20s %d supplies / %d returns\n", "Records:", s.SupplyCount, s.ReturnCount)
	return b.String()
}

func renderSales(date string, sales []models.Sale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SALES — %s\n", date)
	if len(sales) == 0 {
		b.WriteString("  No sales recorded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-5s %-20s %-20s %8s %12s %12s\n", "ID", "SALESPERSON", "VARIETY", "QTY", "PRICE", "PROFIT")
	b.WriteString(strings.Repeat("-", 84) + "\n")
	for _, s := range sales {
		variety := fmt.Sprintf("#%d", s.VarietyID)
		if s.Variety != nil {
			variety = s.Variety.Name
		}
		fmt.Fprintf(&b, "  %-5d %-20s %-20s %8s %12s %12s\n",
			s.ID, s.SalespersonName, variety, s.Quantity.String(),
			s.SellingPrice.StringFixed(2), s.Profit.StringFixed(2))
	}
	return b.String()
}

func renderSupplies(date string, supplies []models.Supply) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SUPPLIES — %s\n", date)
	if len(supplies) == 0 {
		b.WriteString("  No supplies recorded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-5s %-22s %-18s %8s %12s %12s\n", "ID", "SUPPLIER", "VARIETY", "QTY", "PRICE", "TOTAL")
	b.WriteString(strings.Repeat("-", 84) + "\n")
	for _, s := range supplies {
		variety := fmt.Sprintf("#%d", s.VarietyID)
		if s.Variety != nil {
			variety = s.Variety.Name
		}
		fmt.Fprintf(&b, "  %-5d %-22s %-18s %8s %12s %12s\n",
			s.ID, s.SupplierName, variety, s.Quantity.String(),
			s.PricePerItem.StringFixed(2), s.TotalAmount.StringFixed(2))
	}
	return b.String()
}

func renderReturns(date string, returns []models.Return) string {
	var b strings.Builder
	fmt.Fprintf(&b, "RETURNS — %s\n", date)
	if len(returns) == 0 {
		b.WriteString("  No returns recorded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-5s %-22s %-18s %8s %12s %s\n", "ID", "SUPPLIER", "VARIETY", "QTY", "TOTAL", "REASON")
	b.WriteString(strings.Repeat("-", 84) + "\n")
	for _, r := range returns {
		variety := fmt.Sprintf("#%d", r.VarietyID)
		if r.Variety != nil {
			variety = r.Variety.Name
		}
		fmt.Fprintf(&b, "  %-5d %-22s %-18s %8s %12s %s\n",
			r.ID, r.SupplierName, variety, r.Quantity.String(),
			r.TotalAmount.StringFixed(2), r.Reason)
	}
	return b.String()
}

func renderVarieties(varieties []models.Variety) string {
	var b strings.Builder
	b.WriteString("VARIETIES\n")
	if len(varieties) == 0 {
		b.WriteString("  Catalog is empty.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-5s %-24s %-8s %10s %12s\n", "ID", "NAME", "UNIT", "STD LEN", "DEF COST")
	b.WriteString(strings.Repeat("-", 66) + "\n")
	for _, v := range varieties {
		fmt.Fprintf(&b, "  %-5d %-24s %-8s %10s %12s\n",
			v.ID, v.Name, v.MeasurementUnit, v.StandardLength.String(), v.DefaultCost.StringFixed(2))
	}
	return b.String()
}

func renderExpenses(period string, expenses []models.Expense) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EXPENSES — %s\n", period)
	if len(expenses) == 0 {
		b.WriteString("  No expenses recorded.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-5s %-18s %12s %-12s %s\n", "ID", "CATEGORY", "AMOUNT", "DATE", "DESCRIPTION")
	b.WriteString(strings.Repeat("-", 72) + "\n")
	for _, e := range expenses {
		fmt.Fprintf(&b, "  %-5d %-18s %12s %-12s %s\n",
			e.ID, e.Category, e.Amount.StringFixed(2),
			e.ExpenseDate.Format(models.DayLayout), e.Description)
	}
	return b.String()
}
