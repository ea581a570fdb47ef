package analytics

import (
	"sort"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// RankProducts sorts product metrics by revenue, descending. The sort is
// stable, so ties keep their first-seen order and re-ranking an already
// ranked slice is a no-op.
func RankProducts(products []models.ProductMetric) []models.ProductMetric {
	out := make([]models.ProductMetric, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

// RankSalespeople sorts salesperson metrics by revenue, descending, stable.
func RankSalespeople(people []models.SalespersonMetric) []models.SalespersonMetric {
	out := make([]models.SalespersonMetric, len(people))
	copy(out, people)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

// RankSuppliers sorts supplier metrics by net amount, descending, stable.
// Net, not gross: a supplier with heavy returns ranks below a smaller but
// cleaner one.
func RankSuppliers(suppliers []models.SupplierMetric) []models.SupplierMetric {
	out := make([]models.SupplierMetric, len(suppliers))
	copy(out, suppliers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NetAmount.GreaterThan(out[j].NetAmount)
	})
	return out
}

// TopN truncates a ranked slice to at most n entries. n <= 0 means
// unlimited.
func TopN[T any](ranked []T, n int) []T {
	if n <= 0 || len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}
