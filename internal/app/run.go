package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/IOVASCON/projeto-csv-super/internal/adapters/csvout"
	"github.com/IOVASCON/projeto-csv-super/internal/config"
	"github.com/IOVASCON/projeto-csv-super/pkg/logger"
	"github.com/IOVASCON/projeto-csv-super/pkg/metrics"
	"github.com/google/uuid"
)

// Summary reports what a run produced.
type Summary struct {
	RunID    string
	Mode     string
	Rows     int
	Output   string
	Duration time.Duration
}

// Run validates cfg, builds a Runner from it and executes the configured
// mode. opts are applied after the config-derived options and win.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	base := []Option{
		WithSeed(cfg.Seed),
		WithOutlierProbability(cfg.OutlierProbability),
		WithDriftScale(cfg.DriftScale),
		WithChainMode(cfg.ChainMode),
		WithWorkers(cfg.Workers),
	}
	if cfg.Progress {
		base = append(base, WithProgress(os.Stderr))
	}

	return New(append(base, opts...)...).Run(ctx, cfg)
}

// Run generates the dataset selected by cfg.Mode and writes it to
// cfg.Output. Nothing is written when generation fails or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (Summary, error) {
	sum := Summary{RunID: uuid.NewString(), Mode: cfg.Mode, Output: cfg.Output}
	log := r.logger.With(logger.String("run_id", sum.RunID), logger.String("mode", cfg.Mode))
	began := time.Now()

	header, rows, err := r.rows(ctx, cfg)
	if err != nil {
		log.Error(ctx, "generation failed", logger.Error(err))
		return sum, err
	}

	if err := csvout.WriteFile(cfg.Output, header, rows); err != nil {
		log.Error(ctx, "write failed", logger.String("output", cfg.Output), logger.Error(err))
		return sum, err
	}
	metrics.RecordRowsWritten(cfg.Mode, len(rows))

	sum.Rows = len(rows)
	sum.Duration = time.Since(began)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn(ctx, "metrics snapshot failed", logger.Error(err))
		}
	}

	log.Info(ctx, "dataset written",
		logger.String("output", cfg.Output),
		logger.Int("rows", sum.Rows),
		logger.Duration("elapsed", sum.Duration),
	)
	return sum, nil
}

func (r *Runner) rows(ctx context.Context, cfg *config.Config) ([]string, [][]string, error) {
	start, err := cfg.Start()
	if err != nil {
		return nil, nil, err
	}
	end, err := cfg.End()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Mode {
	case config.ModeGeneral:
		recs, err := r.GenerateKPI(ctx, KPIParams{
			Records:  cfg.Records,
			Segments: cfg.Segments,
			Start:    start,
			End:      end,
		})
		if err != nil {
			return nil, nil, err
		}
		return csvout.KPIHeader, csvout.KPIRows(recs), nil

	case config.ModeHotel:
		stays, err := r.GenerateHotel(ctx, HotelParams{
			HotelName:          cfg.HotelName,
			TotalRooms:         cfg.TotalRooms,
			Start:              start,
			End:                end,
			MaxCustomersPerDay: cfg.MaxCustomersPerDay,
		})
		if err != nil {
			return nil, nil, err
		}
		return csvout.HotelHeader, csvout.HotelRows(stays), nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
}
