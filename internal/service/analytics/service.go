package analytics

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// ErrStale is returned when a newer computation started while this one was
// still fetching. The caller discards the result and keeps whatever the
// newer computation produces.
var ErrStale = errors.New("analytics result superseded by a newer request")

// DataSource provides the four raw collections the aggregator consumes.
type DataSource interface {
	ListSales(ctx context.Context) ([]models.Sale, error)
	ListSupplies(ctx context.Context) ([]models.Supply, error)
	ListReturns(ctx context.Context) ([]models.Return, error)
	ListVarieties(ctx context.Context) ([]models.Variety, error)
}

// Snapshot is one consistent fetch of all four collections.
type Snapshot struct {
	Sales     []models.Sale
	Supplies  []models.Supply
	Returns   []models.Return
	Varieties []models.Variety
}

// Service fetches snapshots and derives analytics reports from them.
type Service struct {
	source     DataSource
	logger     *zap.Logger
	now        func() time.Time
	generation atomic.Uint64
}

// NewService creates an analytics service over the given data source.
func NewService(source DataSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source: source,
		logger: logger.Named("svc.analytics"),
		now:    time.Now,
	}
}

// Fetch pulls the four collections concurrently. Any single failure abandons
// the whole snapshot; partial data never reaches aggregation.
func (s *Service) Fetch(ctx context.Context) (*Snapshot, error) {
	snap := new(Snapshot)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.source.ListSales(gctx)
		if err != nil {
			return fmt.Errorf("fetching sales: %w", err)
		}
		snap.Sales = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.source.ListSupplies(gctx)
		if err != nil {
			return fmt.Errorf("fetching supplies: %w", err)
		}
		snap.Supplies = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.source.ListReturns(gctx)
		if err != nil {
			return fmt.Errorf("fetching returns: %w", err)
		}
		snap.Returns = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.source.ListVarieties(gctx)
		if err != nil {
			return fmt.Errorf("fetching varieties: %w", err)
		}
		snap.Varieties = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// ComputeWindow derives the analytics report for the trailing window of the
// given length in days, ending today. Today is the wall-clock calendar date,
// not the UTC one; an early-morning run must not shift the window back a day.
func (s *Service) ComputeWindow(ctx context.Context, days, topN int) (*models.AnalyticsReport, error) {
	year, month, dayOfMonth := s.now().Date()
	end := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
	r := models.DateRange{Start: end.AddDate(0, 0, -days), End: end}
	return s.ComputeRange(ctx, r, topN)
}

// ComputeRange derives the analytics report for an explicit date range. A
// generation counter tags each request; if a newer request starts before the
// fetch completes, the stale result is discarded with ErrStale.
func (s *Service) ComputeRange(ctx context.Context, r models.DateRange, topN int) (*models.AnalyticsReport, error) {
	gen := s.generation.Add(1)

	snap, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if s.generation.Load() != gen {
		s.logger.Debug("discarding stale analytics result", zap.Uint64("generation", gen))
		return nil, ErrStale
	}

	report := BuildReport(snap, r, topN)
	s.logger.Debug("analytics computed",
		zap.String("start", r.Start.Format(models.DayLayout)),
		zap.String("end", r.End.Format(models.DayLayout)),
		zap.Int("sales_in_range", report.KPIs.TotalSales))
	return report, nil
}

// BuildReport runs the pure aggregation pipeline over a snapshot: filter to
// the range, group, derive KPIs, rank, and compute the product mix.
func BuildReport(snap *Snapshot, r models.DateRange, topN int) *models.AnalyticsReport {
	varieties := models.VarietyIndex(snap.Varieties)

	sales := FilterSalesByRange(snap.Sales, r)
	supplies := FilterSuppliesByRange(snap.Supplies, r)
	returns := FilterReturnsByRange(snap.Returns, r)

	ranked := TopN(RankProducts(GroupSalesByProduct(sales, varieties)), topN)

	return &models.AnalyticsReport{
		Range:       r,
		KPIs:        ComputeKPIs(sales, r, varieties),
		Trend:       GroupSalesByDate(sales),
		TopProducts: ranked,
		Suppliers:   RankSuppliers(GroupBySupplier(supplies, returns)),
		Salespeople: RankSalespeople(GroupSalesBySalesperson(sales, varieties)),
		ProductMix:  ProductMix(ranked),
	}
}
