package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// ReportingGateway is the slice of the backend API the reporting service
// depends on. Server-computed rollups come back pre-aggregated.
type ReportingGateway interface {
	DailyReport(ctx context.Context, date string) (models.DailyReport, error)
	ProfitReport(ctx context.Context, date string) (models.ProfitReport, error)
	ExpenseSummary(ctx context.Context, date string) (models.ExpenseSummary, error)
	FinancialReport(ctx context.Context, year, month int) (models.FinancialReport, error)
	SalespersonSummary(ctx context.Context, name, date string) (models.SalespersonSummary, error)
	SupplierWiseSummary(ctx context.Context, date string) (models.SupplierWiseSummary, error)
	QuickStats(ctx context.Context) (models.QuickStats, error)
}

// Aggregator computes client-side analytics from raw collections.
type Aggregator interface {
	ComputeWindow(ctx context.Context, days, topN int) (*models.AnalyticsReport, error)
	ComputeRange(ctx context.Context, r models.DateRange, topN int) (*models.AnalyticsReport, error)
}

// Service turns backend rollups and aggregated analytics into formatted
// console text blocks.
type Service struct {
	gateway       ReportingGateway
	aggregator    Aggregator
	dashboardTopN int
	reportTopN    int
	logger        *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(gateway ReportingGateway, aggregator Aggregator, dashboardTopN, reportTopN int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gateway:       gateway,
		aggregator:    aggregator,
		dashboardTopN: dashboardTopN,
		reportTopN:    reportTopN,
		logger:        logger.Named("svc.reporting"),
	}
}

// DailyOverview combines the day's sales/supplier rollup with the expense
// rollup into one block. Both fetches run concurrently.
func (s *Service) DailyOverview(ctx context.Context, date string) (string, error) {
	var (
		report   models.DailyReport
		expenses models.ExpenseSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report, err = s.gateway.DailyReport(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.gateway.ExpenseSummary(gctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("daily overview for %s: %w", date, err)
	}

	return formatDailyOverview(report, expenses), nil
}

// AnalyticsOverview renders the full analytics block for a trailing window.
func (s *Service) AnalyticsOverview(ctx context.Context, days int) (string, error) {
	report, err := s.aggregator.ComputeWindow(ctx, days, s.dashboardTopN)
	if err != nil {
		return "", fmt.Errorf("analytics for last %d days: %w", days, err)
	}
	return formatAnalytics(report), nil
}

// RangeReport renders the extended report for an explicit date range: wider
// product ranking and an unlimited per-day breakdown.
func (s *Service) RangeReport(ctx context.Context, start, end time.Time) (string, error) {
	r := models.DateRange{Start: start, End: end}
	report, err := s.aggregator.ComputeRange(ctx, r, s.reportTopN)
	if err != nil {
		return "", fmt.Errorf("range report: %w", err)
	}
	return formatRangeReport(report), nil
}

// ProfitBreakdown renders the backend's per-variety and per-salesperson
// profit report for one date.
func (s *Service) ProfitBreakdown(ctx context.Context, date string) (string, error) {
	report, err := s.gateway.ProfitReport(ctx, date)
	if err != nil {
		return "", fmt.Errorf("profit breakdown for %s: %w", date, err)
	}
	return formatProfitReport(report), nil
}

// SalespersonReport renders one salesperson's daily rollup.
func (s *Service) SalespersonReport(ctx context.Context, name, date string) (string, error) {
	summary, err := s.gateway.SalespersonSummary(ctx, name, date)
	if err != nil {
		return "", fmt.Errorf("salesperson report for %s: %w", name, err)
	}
	return formatSalespersonSummary(summary), nil
}

// SupplierWise renders the per-supplier breakdown for one date.
func (s *Service) SupplierWise(ctx context.Context, date string) (string, error) {
	summary, err := s.gateway.SupplierWiseSummary(ctx, date)
	if err != nil {
		return "", fmt.Errorf("supplier breakdown for %s: %w", date, err)
	}
	return formatSupplierWise(summary), nil
}

// ExpenseOverview renders the expense rollup for one date.
func (s *Service) ExpenseOverview(ctx context.Context, date string) (string, error) {
	summary, err := s.gateway.ExpenseSummary(ctx, date)
	if err != nil {
		return "", fmt.Errorf("expense overview for %s: %w", date, err)
	}
	return formatExpenseSummary(date, summary), nil
}

// Financial renders the monthly financial rollup.
func (s *Service) Financial(ctx context.Context, year, month int) (string, error) {
	report, err := s.gateway.FinancialReport(ctx, year, month)
	if err != nil {
		return "", fmt.Errorf("financial report for %d-%02d: %w", year, month, err)
	}
	return formatFinancialReport(report), nil
}

// Stats renders the headline quick stats.
func (s *Service) Stats(ctx context.Context) (string, error) {
	stats, err := s.gateway.QuickStats(ctx)
	if err != nil {
		return "", fmt.Errorf("quick stats: %w", err)
	}
	return formatQuickStats(stats), nil
}
