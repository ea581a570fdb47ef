package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/domain/models"
	"github.com/shahzadali/clothshop/internal/service/analytics"
)

func TestItemCount(t *testing.T) {
	tests := []struct {
		name string
		qty  string
		unit models.MeasurementUnit
		want string
	}{
		{name: "meters count as one item", qty: "2.5", unit: models.UnitMeters, want: "1"},
		{name: "yards count as one item", qty: "10", unit: models.UnitYards, want: "1"},
		{name: "pieces keep the quantity", qty: "7", unit: models.UnitPieces, want: "7"},
		{name: "fractional pieces keep the quantity", qty: "1.5", unit: models.UnitPieces, want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, err := decimal.NewFromString(tt.qty)
			if err != nil {
				t.Fatal(err)
			}
			got := analytics.ItemCount(qty, tt.unit)
			if got.String() != tt.want {
				t.Errorf("ItemCount(%s, %s) = %s, want %s", tt.qty, tt.unit, got, tt.want)
			}
		})
	}
}

func TestItemCountAcrossMeterSales(t *testing.T) {
	// Three length-based sales of 2.5, 4.0 and 1.25 meters are three items,
	// not 7.75.
	quantities := []string{"2.5", "4.0", "1.25"}

	var total decimal.Decimal
	for _, q := range quantities {
		qty, err := decimal.NewFromString(q)
		if err != nil {
			t.Fatal(err)
		}
		total = total.Add(analytics.ItemCount(qty, models.UnitMeters))
	}

	if !total.Equal(decimal.NewFromInt(3)) {
		t.Errorf("item total = %s, want 3", total)
	}
}
