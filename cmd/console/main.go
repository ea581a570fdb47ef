package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shahzadali/clothshop/internal/config"
	"github.com/shahzadali/clothshop/internal/console"
	"github.com/shahzadali/clothshop/internal/scheduler"
	analyticssvc "github.com/shahzadali/clothshop/internal/service/analytics"
	commandsvc "github.com/shahzadali/clothshop/internal/service/commands"
	reportingsvc "github.com/shahzadali/clothshop/internal/service/reporting"
	"github.com/shahzadali/clothshop/pkg/clients/backend"
	"github.com/shahzadali/clothshop/pkg/logger"
)

func main() {
	watch := flag.Bool("watch", false, "run headless and print the daily report on schedule")
	envFile := flag.String("env", "", "path to an env file (defaults to .env if present)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Console.Debug))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	client := backend.New(cfg.Backend, baseLogger.Named("client.backend"))

	pingCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = client.Ping(pingCtx)
	cancel()
	if err != nil {
		if *watch {
			baseLogger.Fatal("backend unreachable", zap.Error(err))
		}
		baseLogger.Warn("backend unreachable, commands will fail until it comes back", zap.Error(err))
	}

	analyticsSvc := analyticssvc.NewService(client, baseLogger)
	reportingSvc := reportingsvc.NewService(client, analyticsSvc,
		cfg.Reporting.DashboardTopN, cfg.Reporting.ReportTopN, baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *watch {
		sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, os.Stdout, baseLogger)
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()

		baseLogger.Info("watch mode running", zap.String("schedule", cfg.Reporting.CronSchedule))
		<-ctx.Done()
		baseLogger.Info("shutdown signal received")
		return
	}

	session := console.NewSessionManager()
	dispatcher := commandsvc.NewService(client, reportingSvc, session, baseLogger)
	repl := console.New(dispatcher, os.Stdin, os.Stdout, baseLogger)

	if err := repl.Run(ctx); err != nil && ctx.Err() == nil {
		baseLogger.Fatal("console terminated", zap.Error(err))
	}
}
