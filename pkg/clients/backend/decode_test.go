package backend

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/config"
	"github.com/shahzadali/clothshop/internal/domain/models"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	return New(config.BackendConfig{BaseURL: "http://127.0.0.1:8000", Timeout: 5 * time.Second}, nil)
}

func TestToSalesQuarantinesMalformedRows(t *testing.T) {
	c := testClient(t)

	body := `[
		{"id": 1, "salesperson_name": "Ali", "variety_id": 2, "quantity": 2, "selling_price": 500, "profit": 100, "sale_date": "2025-03-10"},
		{"id": 2, "salesperson_name": "", "variety_id": 2, "quantity": 1, "selling_price": 100, "profit": 10, "sale_date": "2025-03-10"},
		{"id": 3, "salesperson_name": "Sara", "variety_id": 2, "quantity": 1, "selling_price": 100, "profit": 10, "sale_date": "not-a-date"},
		{"id": 4, "salesperson_name": "Sara", "variety_id": 2, "quantity": "garbage", "selling_price": 100, "profit": 10, "sale_date": "2025-03-10"},
		{"id": 5, "salesperson_name": "Sara", "variety_id": 2, "quantity": -1, "selling_price": 100, "profit": 10, "sale_date": "2025-03-10"}
	]`

	var rows []saleRow
	if err := sonic.Unmarshal([]byte(body), &rows); err != nil {
		t.Fatal(err)
	}

	sales := c.toSales(rows)
	if len(sales) != 1 {
		t.Fatalf("kept %d sales, want 1", len(sales))
	}
	if sales[0].ID != 1 {
		t.Errorf("kept sale id = %d, want 1", sales[0].ID)
	}
	if sales[0].Revenue().String() != "1000" {
		t.Errorf("revenue = %s, want 1000", sales[0].Revenue())
	}
}

func TestToSaleTruncatesTimestampDate(t *testing.T) {
	c := testClient(t)

	row := saleRow{ID: 1, SalespersonName: "Ali", VarietyID: 2, SaleDate: "2025-03-10T14:22:00"}
	row.Quantity.Decimal = one(t)

	s, ok := c.toSale(row)
	if !ok {
		t.Fatal("row rejected")
	}
	if got := s.SaleDate.Format(models.DayLayout); got != "2025-03-10" {
		t.Errorf("sale date = %s, want 2025-03-10", got)
	}
}

func TestToVarietyRejectsUnknownUnit(t *testing.T) {
	c := testClient(t)

	rows := []varietyRow{
		{ID: 1, Name: "Silk", MeasurementUnit: "meters"},
		{ID: 2, Name: "Odd", MeasurementUnit: "furlongs"},
	}

	varieties := c.toVarieties(rows)
	if len(varieties) != 1 {
		t.Fatalf("kept %d varieties, want 1", len(varieties))
	}
	if varieties[0].MeasurementUnit != models.UnitMeters {
		t.Errorf("unit = %s, want meters", varieties[0].MeasurementUnit)
	}
}

func TestToReturnsUsesReturnDate(t *testing.T) {
	c := testClient(t)

	row := returnRow{ID: 1, SupplierName: "Karim", VarietyID: 2, ReturnDate: "2025-03-12", Reason: "damaged"}
	row.Quantity.Decimal = one(t)

	ret, ok := c.toReturn(row)
	if !ok {
		t.Fatal("row rejected")
	}
	if got := ret.ReturnDate.Format(models.DayLayout); got != "2025-03-12" {
		t.Errorf("return date = %s, want 2025-03-12", got)
	}
	if ret.Reason != "damaged" {
		t.Errorf("reason = %q", ret.Reason)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "rfc3339", raw: "2025-03-10T14:22:00Z", valid: true},
		{name: "naive datetime", raw: "2025-03-10T14:22:00", valid: true},
		{name: "empty", raw: "", valid: false},
		{name: "garbage", raw: "midnight", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := parseTimestamp(tt.raw); ok != tt.valid {
				t.Errorf("parseTimestamp(%q) ok = %v, want %v", tt.raw, ok, tt.valid)
			}
		})
	}
}

func one(t *testing.T) decimal.Decimal {
	t.Helper()
	v, ok := models.ParseAmount("1")
	if !ok {
		t.Fatal("ParseAmount(1) failed")
	}
	return v
}
