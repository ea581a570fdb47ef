package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/domain/models"
	"github.com/shahzadali/clothshop/internal/service/analytics"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, ok := models.ParseDay(value)
	if !ok {
		t.Fatalf("bad test date %q", value)
	}
	return parsed
}

func sale(t *testing.T, date string, qty, price, profit int64) models.Sale {
	t.Helper()
	return models.Sale{
		SaleDate:     day(t, date),
		Quantity:     decimal.NewFromInt(qty),
		SellingPrice: decimal.NewFromInt(price),
		Profit:       decimal.NewFromInt(profit),
	}
}

func TestFilterSalesByRange(t *testing.T) {
	sales := []models.Sale{
		sale(t, "2025-03-10", 1, 100, 10),
		sale(t, "2025-03-15", 1, 200, 20),
		sale(t, "2025-03-20", 1, 300, 30),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "covers all", start: "2025-03-01", end: "2025-03-31", want: 3},
		{name: "middle only", start: "2025-03-12", end: "2025-03-18", want: 1},
		{name: "single date inclusive both ends", start: "2025-03-15", end: "2025-03-15", want: 1},
		{name: "boundary start", start: "2025-03-10", end: "2025-03-11", want: 1},
		{name: "boundary end", start: "2025-03-19", end: "2025-03-20", want: 1},
		{name: "inverted range yields empty", start: "2025-03-20", end: "2025-03-10", want: 0},
		{name: "outside", start: "2025-04-01", end: "2025-04-30", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.DateRange{Start: day(t, tt.start), End: day(t, tt.end)}
			got := analytics.FilterSalesByRange(sales, r)
			if len(got) != tt.want {
				t.Errorf("filtered %d sales, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterSuppliesAndReturnsByRange(t *testing.T) {
	r := models.DateRange{Start: day(t, "2025-03-15"), End: day(t, "2025-03-15")}

	supplies := []models.Supply{
		{SupplyDate: day(t, "2025-03-15")},
		{SupplyDate: day(t, "2025-03-16")},
	}
	if got := analytics.FilterSuppliesByRange(supplies, r); len(got) != 1 {
		t.Errorf("filtered %d supplies, want 1", len(got))
	}

	returns := []models.Return{
		{ReturnDate: day(t, "2025-03-14")},
		{ReturnDate: day(t, "2025-03-15")},
	}
	if got := analytics.FilterReturnsByRange(returns, r); len(got) != 1 {
		t.Errorf("filtered %d returns, want 1", len(got))
	}
}
