package analytics_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shahzadali/clothshop/internal/domain/models"
	"github.com/shahzadali/clothshop/internal/service/analytics"
)

type fakeSource struct {
	sales     []models.Sale
	supplies  []models.Supply
	returns   []models.Return
	varieties []models.Variety

	salesErr     error
	suppliesErr  error
	returnsErr   error
	varietiesErr error
}

func (f *fakeSource) ListSales(context.Context) ([]models.Sale, error) {
	return f.sales, f.salesErr
}

func (f *fakeSource) ListSupplies(context.Context) ([]models.Supply, error) {
	return f.supplies, f.suppliesErr
}

func (f *fakeSource) ListReturns(context.Context) ([]models.Return, error) {
	return f.returns, f.returnsErr
}

func (f *fakeSource) ListVarieties(context.Context) ([]models.Variety, error) {
	return f.varieties, f.varietiesErr
}

func TestServiceComputeRange(t *testing.T) {
	silkSale := sale(t, "2025-03-10", 2, 500, 100)
	silkSale.VarietyID = 1
	silkSale.SalespersonName = "Ali"
	outOfRange := sale(t, "2025-02-01", 1, 9999, 999)
	outOfRange.VarietyID = 1

	source := &fakeSource{
		sales: []models.Sale{silkSale, outOfRange},
		supplies: []models.Supply{
			{SupplierName: "Karim", SupplyDate: day(t, "2025-03-10"), TotalAmount: decimal.NewFromInt(400)},
		},
		varieties: []models.Variety{variety(1, "Silk", models.UnitMeters)},
	}

	svc := analytics.NewService(source, nil)
	r := models.DateRange{Start: day(t, "2025-03-01"), End: day(t, "2025-03-31")}

	report, err := svc.ComputeRange(context.Background(), r, 5)
	if err != nil {
		t.Fatal(err)
	}

	if report.KPIs.TotalSales != 1 {
		t.Errorf("sales in range = %d, want 1", report.KPIs.TotalSales)
	}
	if !report.KPIs.TotalRevenue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("revenue = %s, want 1000", report.KPIs.TotalRevenue)
	}
	if len(report.TopProducts) != 1 || report.TopProducts[0].Name != "Silk" {
		t.Errorf("top products = %+v", report.TopProducts)
	}
	if len(report.Suppliers) != 1 || report.Suppliers[0].Name != "Karim" {
		t.Errorf("suppliers = %+v", report.Suppliers)
	}
	if len(report.Salespeople) != 1 || report.Salespeople[0].Name != "Ali" {
		t.Errorf("salespeople = %+v", report.Salespeople)
	}
	if len(report.ProductMix) != 1 || !report.ProductMix[0].Share.Equal(decimal.NewFromInt(100)) {
		t.Errorf("product mix = %+v", report.ProductMix)
	}
}

func TestServiceComputeRangeFailsWhole(t *testing.T) {
	wantErr := errors.New("backend down")

	tests := []struct {
		name   string
		source *fakeSource
	}{
		{name: "sales fetch fails", source: &fakeSource{salesErr: wantErr}},
		{name: "supplies fetch fails", source: &fakeSource{suppliesErr: wantErr}},
		{name: "returns fetch fails", source: &fakeSource{returnsErr: wantErr}},
		{name: "varieties fetch fails", source: &fakeSource{varietiesErr: wantErr}},
	}

	r := models.DateRange{Start: day(t, "2025-03-01"), End: day(t, "2025-03-31")}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := analytics.NewService(tt.source, nil)
			report, err := svc.ComputeRange(context.Background(), r, 5)
			if !errors.Is(err, wantErr) {
				t.Fatalf("err = %v, want wrapped %v", err, wantErr)
			}
			if report != nil {
				t.Errorf("partial report returned: %+v", report)
			}
		})
	}
}

// blockingSource stalls the first sales fetch until released so a second
// computation can overtake it.
type blockingSource struct {
	fakeSource
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (b *blockingSource) ListSales(ctx context.Context) ([]models.Sale, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
		<-b.release
	}
	return b.sales, nil
}

func TestComputeRangeDiscardsOvertakenResult(t *testing.T) {
	source := &blockingSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := analytics.NewService(source, nil)
	r := models.DateRange{Start: day(t, "2025-03-01"), End: day(t, "2025-03-31")}

	type result struct {
		report *models.AnalyticsReport
		err    error
	}
	firstDone := make(chan result)

	go func() {
		report, err := svc.ComputeRange(context.Background(), r, 5)
		firstDone <- result{report, err}
	}()

	// Wait until the first computation is stuck fetching, then let a newer
	// one run to completion.
	<-source.started
	if _, err := svc.ComputeRange(context.Background(), r, 5); err != nil {
		t.Fatalf("second computation failed: %v", err)
	}

	close(source.release)
	first := <-firstDone
	if !errors.Is(first.err, analytics.ErrStale) {
		t.Fatalf("first computation err = %v, want ErrStale", first.err)
	}
	if first.report != nil {
		t.Errorf("stale computation returned a report: %+v", first.report)
	}
}

func TestBuildReportEmptySnapshot(t *testing.T) {
	r := models.DateRange{Start: day(t, "2025-03-01"), End: day(t, "2025-03-31")}
	report := analytics.BuildReport(&analytics.Snapshot{}, r, 5)

	if report.KPIs.TotalSales != 0 {
		t.Errorf("total sales = %d, want 0", report.KPIs.TotalSales)
	}
	if len(report.Trend) != 0 || len(report.TopProducts) != 0 || len(report.Suppliers) != 0 {
		t.Errorf("empty snapshot produced non-empty groupings: %+v", report)
	}
}
