package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	app "github.com/IOVASCON/projeto-csv-super/internal/app"
	"github.com/IOVASCON/projeto-csv-super/internal/config"
	"github.com/IOVASCON/projeto-csv-super/pkg/logger"
	"github.com/IOVASCON/projeto-csv-super/pkg/metrics"
)

// Process exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Initialize logging
	if err := logger.Init(logger.WithWriter(stderr)); err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		fmt.Fprintln(stderr, "failed to initialize logging: "+err.Error())
		return exitError
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env -> flags)
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "failed to load config: "+err.Error())
		return exitError
	}
	if err := parseFlags(args, cfg, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if cfg.LogFormat == config.LogFormatJSON {
		if err := logger.Init(logger.WithWriter(stderr), logger.WithJSON(true)); err != nil {
			fmt.Fprintln(stderr, "failed to initialize logging: "+err.Error())
			return exitError
		}
	}
	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	metrics.Init(metricsOptions(cfg)...)

	sum, err := app.Run(ctx, cfg, app.WithLogger(loggerInstance.Named("runner")))
	if err != nil {
		loggerInstance.Error(ctx, "run failed", logger.Error(err))
		return exitError
	}

	fmt.Fprintf(stdout, "Arquivo '%s' criado no modo %s com %d registros.\n", sum.Output, modeLabel(sum.Mode), sum.Rows)
	return exitOK
}

func metricsOptions(cfg *config.Config) []metrics.Option {
	return []metrics.Option{
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithSubsystem(cfg.MetricsSubsystem),
		metrics.WithHistogramBuckets(cfg.MetricsBuckets),
		metrics.WithConstLabels(cfg.MetricsLabels),
	}
}

func modeLabel(mode string) string {
	if mode == config.ModeHotel {
		return "hotel único"
	}
	return "original"
}
