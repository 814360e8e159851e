package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/IOVASCON/projeto-csv-super/internal/adapters/mq/queue"
	"github.com/IOVASCON/projeto-csv-super/internal/adapters/mq/worker"
	"github.com/IOVASCON/projeto-csv-super/internal/config"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/drift"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/outlier"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/segment"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/synth"
	"github.com/IOVASCON/projeto-csv-super/pkg/logger"
	"github.com/IOVASCON/projeto-csv-super/pkg/metrics"
	"github.com/schollz/progressbar/v3"
)

// KPIParams describes a general-mode run.
type KPIParams struct {
	Records    int
	Segments   []string
	Start, End time.Time
}

// GenerateKPI produces p.Records records numbered 1..N in generation order
// and returns them stably sorted by date. Each record drifts from the one
// generated before it in its chain; the prior handed on is the record as
// emitted, outlier included.
func (r *Runner) GenerateKPI(ctx context.Context, p KPIParams) ([]*model.KPIRecord, error) {
	if p.Records <= 0 {
		return nil, nil
	}
	if len(p.Segments) == 0 {
		return nil, ErrNoSegments
	}
	if p.End.Before(p.Start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			p.Start.Format(model.DateLayout), p.End.Format(model.DateLayout))
	}

	start := time.Now()
	bar := r.newBar(p.Records, "records")

	var (
		recs []*model.KPIRecord
		err  error
	)
	if r.chainMode == config.ChainSegment {
		recs, err = r.segmentChains(ctx, p, bar)
	} else {
		recs, err = r.globalChain(ctx, p, bar)
	}
	if err != nil {
		return nil, err
	}

	sortByDate(recs)
	metrics.ObserveGenerationDuration(config.ModeGeneral, time.Since(start))
	return recs, nil
}

// globalChain is the sequential path: one source, and every record's prior
// is simply the previous record regardless of segment.
func (r *Runner) globalChain(ctx context.Context, p KPIParams, bar *progressbar.ProgressBar) ([]*model.KPIRecord, error) {
	src := r.source()
	syn := r.synthesizer(src)
	inj := outlier.New(src, r.outlierProbability)

	recs := make([]*model.KPIRecord, 0, p.Records)
	var prior *model.KPIRecord
	for i := 1; i <= p.Records; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		date := src.DateBetween(p.Start, p.End)
		seg := src.Pick(p.Segments)
		rec := r.emit(syn, inj, seg, date, prior, i)
		recs = append(recs, rec)
		prior = rec
		tick(bar)
	}
	return recs, nil
}

// slot is one position of the output sequence assigned to a chain.
type slot struct {
	index int
	date  time.Time
}

// chain is the ordered work of one segment in segment chain mode.
type chain struct {
	segment string
	seed    int64
	slots   []slot
}

// segmentChains draws the whole date/segment sequence from a master source
// first, then runs one independent chain per segment on the worker pool.
// IDs follow the drawn sequence, so the output does not depend on
// scheduling.
func (r *Runner) segmentChains(ctx context.Context, p KPIParams, bar *progressbar.ProgressBar) ([]*model.KPIRecord, error) {
	master := r.source()

	var chains []*chain
	bySegment := make(map[string]*chain)
	for i := 0; i < p.Records; i++ {
		date := master.DateBetween(p.Start, p.End)
		seg := master.Pick(p.Segments)
		c, ok := bySegment[seg]
		if !ok {
			c = &chain{segment: seg}
			bySegment[seg] = c
			chains = append(chains, c)
		}
		c.slots = append(c.slots, slot{index: i, date: date})
	}
	for _, c := range chains {
		c.seed = master.Int63()
	}

	q := queue.NewInMemoryQueue[*chain](queue.WithCapacity(len(chains)))
	if err := enqueueChains(ctx, q, chains); err != nil {
		return nil, err
	}

	out := make([]*model.KPIRecord, p.Records)
	pool := worker.NewPool[*chain](min(r.workers, len(chains)),
		func(ctx context.Context, c *chain) error {
			return r.runChain(ctx, c, out, bar)
		},
		worker.WithName("chain"),
		worker.WithLogger(r.logger),
		worker.WithBusyObserver(metrics.AddChainsActive),
	)

	r.logger.Debug(ctx, "running segment chains",
		logger.Int("chains", len(chains)),
		logger.Int("workers", pool.Size()),
	)
	if err := pool.Run(ctx, q); err != nil {
		return nil, err
	}
	return out, nil
}

// enqueueChains queues every chain and closes q. A chain that cannot be
// queued would leave its slots empty, so it fails the run.
func enqueueChains(ctx context.Context, q queue.Queue[*chain], chains []*chain) error {
	defer func() { _ = q.Close() }()
	for _, c := range chains {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !q.Enqueue(ctx, c) {
			return fmt.Errorf("%w: segment %q", ErrEnqueue, c.segment)
		}
	}
	return nil
}

// runChain fills the chain's slots in out. Slots never overlap between
// chains.
func (r *Runner) runChain(ctx context.Context, c *chain, out []*model.KPIRecord, bar *progressbar.ProgressBar) error {
	src := drift.New(c.seed)
	syn := r.synthesizer(src)
	inj := outlier.New(src, r.outlierProbability)

	r.logger.Debug(ctx, "chain started",
		logger.String("segment", c.segment),
		logger.Int("records", len(c.slots)),
		logger.Any("groups", groupNames(c.segment)),
	)

	var prior *model.KPIRecord
	for _, s := range c.slots {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec := r.emit(syn, inj, c.segment, s.date, prior, s.index+1)
		out[s.index] = rec
		prior = rec
		tick(bar)
	}
	return nil
}

func (r *Runner) emit(syn *synth.Synthesizer, inj *outlier.Injector, seg string, date time.Time, prior *model.KPIRecord, id int) *model.KPIRecord {
	rec := syn.Synthesize(seg, date, prior)
	if field, ok := inj.Inject(rec); ok {
		metrics.RecordOutlier(field)
	}
	rec.ID = id
	metrics.RecordGenerated(config.ModeGeneral, seg)
	return rec
}

func sortByDate(recs []*model.KPIRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].DateString() < recs[j].DateString()
	})
}

func groupNames(seg string) []string {
	groups := segment.Groups(seg)
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.String()
	}
	return out
}
