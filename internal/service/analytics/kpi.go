package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// ComputeKPIs derives the headline figures for a filtered sales window.
// Every ratio with a zero denominator yields exactly zero. The growth rate
// is a two-bucket estimator: the window splits at start plus half the
// inclusive day count, with the first half strictly before the midpoint.
func ComputeKPIs(sales []models.Sale, r models.DateRange, varieties map[int]models.Variety) models.KPISet {
	kpi := models.KPISet{TotalSales: len(sales)}

	for _, s := range sales {
		kpi.TotalRevenue = kpi.TotalRevenue.Add(s.Revenue())
		kpi.TotalProfit = kpi.TotalProfit.Add(s.Profit)
	}

	if kpi.TotalSales > 0 {
		kpi.AvgOrderValue = kpi.TotalRevenue.Div(decimal.NewFromInt(int64(kpi.TotalSales)))
	}
	kpi.ProfitMargin = percent(kpi.TotalProfit, kpi.TotalRevenue)
	kpi.GrowthRate = growthRate(sales, r)

	products := RankProducts(GroupSalesByProduct(sales, varieties))
	if len(products) > 0 {
		kpi.TopProduct = products[0].Name
		kpi.TopProductShare = percent(products[0].Revenue, kpi.TotalRevenue)
	}

	return kpi
}

func growthRate(sales []models.Sale, r models.DateRange) decimal.Decimal {
	// Days() is the span; the window covers Days()+1 calendar dates.
	mid := r.Start.AddDate(0, 0, (r.Days()+1)/2)

	var first, second decimal.Decimal
	for _, s := range sales {
		if s.SaleDate.Before(mid) {
			first = first.Add(s.Revenue())
		} else {
			second = second.Add(s.Revenue())
		}
	}

	if first.IsZero() {
		return decimal.Decimal{}
	}
	return second.Sub(first).Div(first).Mul(hundred)
}

// ProductMix computes each ranked product's share of the ranked set's
// combined revenue. Shares are relative to the ranked products only, not to
// the window's total revenue.
func ProductMix(ranked []models.ProductMetric) []models.MixSlice {
	var total decimal.Decimal
	for _, p := range ranked {
		total = total.Add(p.Revenue)
	}

	out := make([]models.MixSlice, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, models.MixSlice{
			Name:   p.Name,
			Share:  percent(p.Revenue, total),
			Amount: p.Revenue,
		})
	}
	return out
}
