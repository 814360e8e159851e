// Package worker runs queued jobs on a bounded set of goroutines.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/IOVASCON/projeto-csv-super/pkg/logger"
)

// Handler processes one job. A returned error stops the pool.
type Handler[T any] func(ctx context.Context, job T) error

// Source defines how workers receive jobs.
type Source[T any] interface {
	Dequeue(ctx context.Context) <-chan T
}

// Pool manages a fixed number of workers sharing one Source.
type Pool[T any] struct {
	size    int
	handler Handler[T]
	name    string
	onBusy  func(delta int)

	// Logging
	logger logger.Logger
}

// NewPool creates a pool of size workers. A size below 1 uses one worker
// per CPU.
func NewPool[T any](size int, handler Handler[T], opts ...Option) *Pool[T] {
	s := settings{name: "worker-pool"}
	for _, opt := range opts {
		opt(&s)
	}
	if size < 1 {
		size = runtime.NumCPU()
	}
	if s.logger == nil {
		s.logger = logger.Get().Named(s.name)
	}
	return &Pool[T]{
		size:    size,
		handler: handler,
		name:    s.name,
		onBusy:  s.onBusy,
		logger:  s.logger,
	}
}

// Size returns the number of workers.
func (p *Pool[T]) Size() int { return p.size }

// Run drains src and blocks until every worker has stopped. The first
// handler error cancels the remaining workers and is returned. Parent
// cancellation returns ctx.Err().
func (p *Pool[T]) Run(ctx context.Context, src Source[T]) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for i := 0; i < p.size; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			name := p.name + "-" + strconv.Itoa(id)
			for job := range src.Dequeue(runCtx) {
				if err := p.process(runCtx, job); err != nil {
					p.logger.Error(runCtx, "job failed", logger.String("worker", name), logger.Error(err))
					once.Do(func() {
						firstErr = fmt.Errorf("%s: %w", name, err)
						cancel()
					})
					return
				}
			}
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

func (p *Pool[T]) process(ctx context.Context, job T) error {
	if p.onBusy != nil {
		p.onBusy(1)
		defer p.onBusy(-1)
	}
	return p.handler(ctx, job)
}
