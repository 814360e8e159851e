// Package service orchestrates dataset generation: it drives the record
// synthesizer and outlier injector (general mode) or the hotel simulator
// (hotel mode), reports progress and metrics, and writes the CSV output.
package service

import (
	"io"
	"runtime"

	"github.com/IOVASCON/projeto-csv-super/internal/config"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/drift"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/outlier"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/synth"
	"github.com/IOVASCON/projeto-csv-super/internal/fakedata"
	"github.com/IOVASCON/projeto-csv-super/pkg/logger"
	"github.com/IOVASCON/projeto-csv-super/pkg/metrics"
	"github.com/schollz/progressbar/v3"
)

// ProviderFactory builds the fake data provider for a chain. The provider
// should draw from src so seeded runs stay reproducible.
type ProviderFactory func(src *drift.Source) fakedata.Provider

// Runner generates datasets. A Runner holds no per-run state and may be
// reused; every run builds its own random sources.
type Runner struct {
	// Generation
	seed               int64
	outlierProbability float64
	driftScale         float64
	chainMode          string
	workers            int
	providers          ProviderFactory

	// Output
	progress io.Writer

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSeed makes runs reproducible. 0 seeds from the clock.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithOutlierProbability sets the per-record outlier chance. Values outside
// [0, 1] are ignored.
func WithOutlierProbability(p float64) Option {
	return func(r *Runner) {
		if p >= 0 && p <= 1 {
			r.outlierProbability = p
		}
	}
}

// WithDriftScale multiplies every drift step.
func WithDriftScale(f float64) Option {
	return func(r *Runner) {
		if f >= 0 {
			r.driftScale = f
		}
	}
}

// WithChainMode selects config.ChainGlobal or config.ChainSegment.
func WithChainMode(mode string) Option {
	return func(r *Runner) {
		if mode == config.ChainGlobal || mode == config.ChainSegment {
			r.chainMode = mode
		}
	}
}

// WithWorkers bounds concurrent chains in segment chain mode.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithProgress renders a progress bar on w. nil disables it.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		r.progress = w
	}
}

// WithProviderFactory replaces the pt_BR fake data provider.
func WithProviderFactory(f ProviderFactory) Option {
	return func(r *Runner) {
		if f != nil {
			r.providers = f
		}
	}
}

// New constructs a Runner with default configuration.
func New(opts ...Option) *Runner {
	r := &Runner{
		outlierProbability: outlier.DefaultProbability,
		driftScale:         1,
		chainMode:          config.ChainGlobal,
		workers:            runtime.NumCPU(),
		providers: func(src *drift.Source) fakedata.Provider {
			return fakedata.NewBrazil(src)
		},
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = logger.Get().Named("runner")
	}

	return r
}

func (r *Runner) source() *drift.Source {
	if r.seed == 0 {
		return drift.NewUnseeded()
	}
	return drift.New(r.seed)
}

func (r *Runner) synthesizer(src *drift.Source) *synth.Synthesizer {
	return synth.New(src, r.providers(src),
		synth.WithDriftScale(r.driftScale),
		synth.WithFallbackObserver(metrics.RecordDriftFallback),
	)
}

func (r *Runner) newBar(total int, description string) *progressbar.ProgressBar {
	if r.progress == nil || total <= 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(r.progress, "\n")
		}),
	)
}

func tick(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Add(1)
	}
}
