package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

var hundred = decimal.NewFromInt(100)

// percent returns part/whole as a percentage, or zero when whole is zero.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Decimal{}
	}
	return part.Div(whole).Mul(hundred)
}

// GroupSalesByDate folds sales into per-date metrics, preserving first-seen
// date order. Revenue per row is selling price times quantity; profit is the
// row's stored profit.
func GroupSalesByDate(sales []models.Sale) []models.PeriodMetric {
	index := make(map[string]int, len(sales))
	out := make([]models.PeriodMetric, 0, len(sales))

	for _, s := range sales {
		key := s.SaleDate.Format(models.DayLayout)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, models.PeriodMetric{Date: key})
		}
		out[i].Revenue = out[i].Revenue.Add(s.Revenue())
		out[i].Profit = out[i].Profit.Add(s.Profit)
		out[i].Transactions++
	}
	return out
}

// GroupSalesByProduct folds sales into per-variety metrics, preserving
// first-seen order. Quantity stays in the variety's native unit; Margin is
// profit over revenue as a percentage, zero when revenue is zero.
func GroupSalesByProduct(sales []models.Sale, varieties map[int]models.Variety) []models.ProductMetric {
	index := make(map[string]int, len(sales))
	out := make([]models.ProductMetric, 0, len(sales))

	for _, s := range sales {
		key := saleVarietyName(s, varieties)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, models.ProductMetric{Name: key})
		}
		out[i].Revenue = out[i].Revenue.Add(s.Revenue())
		out[i].Profit = out[i].Profit.Add(s.Profit)
		out[i].Quantity = out[i].Quantity.Add(s.Quantity)
	}

	for i := range out {
		out[i].Margin = percent(out[i].Profit, out[i].Revenue)
	}
	return out
}

// GroupSalesBySalesperson folds sales into per-salesperson metrics,
// preserving first-seen order. ItemsSold is unit-normalized.
func GroupSalesBySalesperson(sales []models.Sale, varieties map[int]models.Variety) []models.SalespersonMetric {
	index := make(map[string]int, len(sales))
	out := make([]models.SalespersonMetric, 0, len(sales))

	for _, s := range sales {
		i, ok := index[s.SalespersonName]
		if !ok {
			i = len(out)
			index[s.SalespersonName] = i
			out = append(out, models.SalespersonMetric{Name: s.SalespersonName})
		}
		out[i].Revenue = out[i].Revenue.Add(s.Revenue())
		out[i].Profit = out[i].Profit.Add(s.Profit)
		out[i].Transactions++
		out[i].ItemsSold = out[i].ItemsSold.Add(ItemCount(s.Quantity, saleUnit(s, varieties)))
	}
	return out
}

// GroupBySupplier folds supplies and returns into per-supplier metrics,
// preserving first-seen order across both collections, then fills NetAmount
// and Reliability in a post-pass. A supplier with zero supply keeps the
// historical reliability convention of 100.
func GroupBySupplier(supplies []models.Supply, returns []models.Return) []models.SupplierMetric {
	index := make(map[string]int, len(supplies))
	out := make([]models.SupplierMetric, 0, len(supplies))

	at := func(name string) int {
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, models.SupplierMetric{Name: name})
		}
		return i
	}

	for _, s := range supplies {
		i := at(s.SupplierName)
		out[i].TotalSupply = out[i].TotalSupply.Add(s.TotalAmount)
	}
	for _, r := range returns {
		i := at(r.SupplierName)
		out[i].TotalReturns = out[i].TotalReturns.Add(r.TotalAmount)
	}

	for i := range out {
		out[i].NetAmount = out[i].TotalSupply.Sub(out[i].TotalReturns)
		if out[i].TotalSupply.IsZero() {
			out[i].Reliability = hundred
			continue
		}
		out[i].Reliability = percent(out[i].NetAmount, out[i].TotalSupply)
	}
	return out
}
