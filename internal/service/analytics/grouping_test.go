package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/domain/models"
	"github.com/shahzadali/clothshop/internal/service/analytics"
)

func variety(id int, name string, unit models.MeasurementUnit) models.Variety {
	return models.Variety{ID: id, Name: name, MeasurementUnit: unit}
}

func TestGroupSalesByDate(t *testing.T) {
	sales := []models.Sale{
		sale(t, "2025-03-10", 2, 100, 20),
		sale(t, "2025-03-11", 1, 50, 5),
		sale(t, "2025-03-10", 1, 300, 30),
	}

	trend := analytics.GroupSalesByDate(sales)
	if len(trend) != 2 {
		t.Fatalf("got %d trend buckets, want 2", len(trend))
	}

	// First-seen order, not chronological re-sort.
	if trend[0].Date != "2025-03-10" || trend[1].Date != "2025-03-11" {
		t.Fatalf("bucket order = %s, %s", trend[0].Date, trend[1].Date)
	}
	if !trend[0].Revenue.Equal(decimal.NewFromInt(500)) {
		t.Errorf("day one revenue = %s, want 500", trend[0].Revenue)
	}
	if !trend[0].Profit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("day one profit = %s, want 50", trend[0].Profit)
	}
	if trend[0].Transactions != 2 || trend[1].Transactions != 1 {
		t.Errorf("transactions = %d, %d", trend[0].Transactions, trend[1].Transactions)
	}
}

func TestGroupSalesByProductRevenueConservation(t *testing.T) {
	varieties := models.VarietyIndex([]models.Variety{
		variety(1, "Silk", models.UnitMeters),
		variety(2, "Buttons", models.UnitPieces),
	})

	sales := []models.Sale{
		sale(t, "2025-03-10", 2, 500, 100),
		sale(t, "2025-03-10", 3, 100, 30),
		sale(t, "2025-03-11", 1, 250, 25),
	}
	sales[0].VarietyID = 1
	sales[1].VarietyID = 2
	sales[2].VarietyID = 1

	products := analytics.GroupSalesByProduct(sales, varieties)
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}

	var total, productSum decimal.Decimal
	for _, s := range sales {
		total = total.Add(s.Revenue())
	}
	for _, p := range products {
		productSum = productSum.Add(p.Revenue)
	}
	if !productSum.Equal(total) {
		t.Errorf("product revenue sum %s != total revenue %s", productSum, total)
	}

	silk := products[0]
	if silk.Name != "Silk" {
		t.Fatalf("first product = %s, want Silk", silk.Name)
	}
	if !silk.Quantity.Equal(decimal.NewFromInt(3)) {
		t.Errorf("silk quantity stays raw: got %s, want 3", silk.Quantity)
	}
	// 125 profit over 1250 revenue.
	if !silk.Margin.Equal(decimal.NewFromInt(10)) {
		t.Errorf("silk margin = %s, want 10", silk.Margin)
	}
}

func TestGroupSalesByProductZeroRevenueMargin(t *testing.T) {
	sales := []models.Sale{sale(t, "2025-03-10", 1, 0, 0)}
	products := analytics.GroupSalesByProduct(sales, nil)
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if !products[0].Margin.IsZero() {
		t.Errorf("margin with zero revenue = %s, want 0", products[0].Margin)
	}
}

func TestGroupSalesBySalespersonItemNormalization(t *testing.T) {
	varieties := models.VarietyIndex([]models.Variety{
		variety(1, "Silk", models.UnitMeters),
		variety(2, "Buttons", models.UnitPieces),
	})

	lengthSale := sale(t, "2025-03-10", 4, 100, 10)
	lengthSale.VarietyID = 1
	lengthSale.SalespersonName = "Ali"

	pieceSale := sale(t, "2025-03-10", 3, 50, 5)
	pieceSale.VarietyID = 2
	pieceSale.SalespersonName = "Ali"

	people := analytics.GroupSalesBySalesperson([]models.Sale{lengthSale, pieceSale}, varieties)
	if len(people) != 1 {
		t.Fatalf("got %d salespeople, want 1", len(people))
	}
	// 1 item for the length-based sale plus 3 pieces.
	if !people[0].ItemsSold.Equal(decimal.NewFromInt(4)) {
		t.Errorf("items sold = %s, want 4", people[0].ItemsSold)
	}
	if people[0].Transactions != 2 {
		t.Errorf("transactions = %d, want 2", people[0].Transactions)
	}
}

func TestGroupBySupplier(t *testing.T) {
	supplies := []models.Supply{
		{SupplierName: "Karim", TotalAmount: decimal.NewFromInt(1000)},
		{SupplierName: "Karim", TotalAmount: decimal.NewFromInt(500)},
		{SupplierName: "Noor", TotalAmount: decimal.NewFromInt(200)},
	}
	returns := []models.Return{
		{SupplierName: "Karim", TotalAmount: decimal.NewFromInt(300)},
		{SupplierName: "Zafar", TotalAmount: decimal.NewFromInt(50)},
	}

	suppliers := analytics.GroupBySupplier(supplies, returns)
	if len(suppliers) != 3 {
		t.Fatalf("got %d suppliers, want 3", len(suppliers))
	}

	karim := suppliers[0]
	if karim.Name != "Karim" {
		t.Fatalf("first supplier = %s, want Karim", karim.Name)
	}
	if !karim.NetAmount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("karim net = %s, want 1200", karim.NetAmount)
	}
	if !karim.Reliability.Equal(decimal.NewFromInt(80)) {
		t.Errorf("karim reliability = %s, want 80", karim.Reliability)
	}

	noor := suppliers[1]
	if !noor.Reliability.Equal(decimal.NewFromInt(100)) {
		t.Errorf("noor reliability = %s, want 100", noor.Reliability)
	}
}

func TestGroupBySupplierZeroSupplyReliability(t *testing.T) {
	// Returns-only supplier: zero supply keeps the reliability convention of 100.
	returns := []models.Return{{SupplierName: "Ghost", TotalAmount: decimal.NewFromInt(0)}}
	suppliers := analytics.GroupBySupplier(nil, returns)
	if len(suppliers) != 1 {
		t.Fatalf("got %d suppliers, want 1", len(suppliers))
	}
	if !suppliers[0].Reliability.Equal(decimal.NewFromInt(100)) {
		t.Errorf("reliability with zero supply = %s, want 100", suppliers[0].Reliability)
	}
}
