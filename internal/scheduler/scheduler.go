package scheduler

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/shahzadali/clothshop/internal/config"
	"github.com/shahzadali/clothshop/internal/domain/models"
	"github.com/shahzadali/clothshop/internal/service/reporting"
)

// Scheduler prints the daily report on a cron schedule while the console
// runs in watch mode.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	cfg          config.ReportingConfig
	out          io.Writer
	logger       *zap.Logger
}

// NewScheduler creates a scheduler in the configured timezone. An unknown
// timezone falls back to the local one.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, out io.Writer, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, using local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		cfg:          cfg,
		out:          out,
		logger:       logger.Named("scheduler"),
	}
}

// Start registers the daily report job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.printDailyReport); err != nil {
		return fmt.Errorf("scheduling daily report: %w", err)
	}

	s.logger.Info("scheduler started", zap.String("schedule", s.cfg.CronSchedule))
	s.cron.Start()
	return nil
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) printDailyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	date := time.Now().Format(models.DayLayout)
	report, err := s.reportingSvc.DailyOverview(ctx, date)
	if err != nil {
		s.logger.Error("failed to generate daily report", zap.Error(err))
		return
	}

	fmt.Fprintln(s.out, report)
}
