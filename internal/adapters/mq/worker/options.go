package worker

import (
	"github.com/IOVASCON/projeto-csv-super/pkg/logger"
)

type settings struct {
	name   string
	logger logger.Logger
	onBusy func(delta int)
}

// Option applies a configuration option to a Pool.
type Option func(*settings)

// WithName sets the pool name used for worker identification and logging.
func WithName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithLogger sets a custom logger for the pool.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBusyObserver is called with +1 when a worker picks up a job and -1
// when it finishes.
func WithBusyObserver(fn func(delta int)) Option {
	return func(s *settings) {
		s.onBusy = fn
	}
}
