package analytics_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/domain/models"
	"github.com/shahzadali/clothshop/internal/service/analytics"
)

func metric(name string, revenue int64) models.ProductMetric {
	return models.ProductMetric{Name: name, Revenue: decimal.NewFromInt(revenue)}
}

func names(products []models.ProductMetric) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestRankProducts(t *testing.T) {
	products := []models.ProductMetric{
		metric("Cotton", 300),
		metric("Silk", 900),
		metric("Linen", 300),
		metric("Wool", 500),
	}

	ranked := analytics.RankProducts(products)
	want := []string{"Silk", "Wool", "Cotton", "Linen"}
	if got := names(ranked); !reflect.DeepEqual(got, want) {
		t.Fatalf("ranked order = %v, want %v", got, want)
	}

	// Ties keep first-seen order and the input is untouched.
	if products[0].Name != "Cotton" {
		t.Errorf("input slice reordered: first = %s", products[0].Name)
	}
}

func TestRankProductsIdempotent(t *testing.T) {
	products := []models.ProductMetric{
		metric("Silk", 900),
		metric("Cotton", 300),
		metric("Linen", 300),
	}

	once := analytics.RankProducts(products)
	twice := analytics.RankProducts(once)
	if !reflect.DeepEqual(names(once), names(twice)) {
		t.Errorf("re-ranking changed order: %v vs %v", names(once), names(twice))
	}
}

func TestRankSuppliersByNetAmount(t *testing.T) {
	suppliers := analytics.GroupBySupplier(
		[]models.Supply{
			{SupplierName: "BigGross", TotalAmount: decimal.NewFromInt(1000)},
			{SupplierName: "BigNet", TotalAmount: decimal.NewFromInt(500)},
		},
		[]models.Return{
			{SupplierName: "BigGross", TotalAmount: decimal.NewFromInt(900)},
		},
	)

	ranked := analytics.RankSuppliers(suppliers)
	// BigGross supplies more gross but nets only 100; BigNet nets 500.
	if ranked[0].Name != "BigNet" {
		t.Errorf("top supplier = %s (net %s), want BigNet", ranked[0].Name, ranked[0].NetAmount)
	}
	if ranked[1].Name != "BigGross" {
		t.Errorf("second supplier = %s, want BigGross", ranked[1].Name)
	}
}

func TestTopN(t *testing.T) {
	ranked := []models.ProductMetric{
		metric("A", 5), metric("B", 4), metric("C", 3), metric("D", 2), metric("E", 1),
		metric("F", 1), metric("G", 1),
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "dashboard five", n: 5, want: 5},
		{name: "larger than input", n: 10, want: 7},
		{name: "unlimited", n: 0, want: 7},
		{name: "negative means unlimited", n: -1, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analytics.TopN(ranked, tt.n); len(got) != tt.want {
				t.Errorf("TopN(%d) kept %d, want %d", tt.n, len(got), tt.want)
			}
		})
	}
}
