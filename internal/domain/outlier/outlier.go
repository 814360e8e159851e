// Package outlier corrupts at most one metric of a finished record to
// simulate anomalous observations, then repairs the value back into the
// field's valid domain.
package outlier

import (
	"math"

	"github.com/IOVASCON/projeto-csv-super/internal/domain/drift"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
)

// DefaultProbability is the per-record outlier chance used when none is
// configured.
const DefaultProbability = 0.01

const (
	minFactor = 0.5
	maxFactor = 2.0
)

// Injector applies outliers with a fixed probability. Not safe for
// concurrent use.
type Injector struct {
	src         *drift.Source
	probability float64
}

// New returns an Injector that fires with the given probability.
func New(src *drift.Source, probability float64) *Injector {
	return &Injector{src: src, probability: probability}
}

// Inject mutates one present allow-listed field of r in place, with the
// configured probability. It returns the field name and whether a mutation
// happened.
func (in *Injector) Inject(r *model.KPIRecord) (string, bool) {
	if !in.src.Bernoulli(in.probability) {
		return "", false
	}

	candidates := make([]field, 0, len(allowList))
	for _, f := range allowList {
		if f.present(r) {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	f := candidates[in.src.Intn(len(candidates))]
	factor := in.src.Uniform(minFactor, maxFactor)

	f.apply(r, factor)
	return f.name, true
}

// apply scales the field by factor and repairs it into its domain.
func (f field) apply(r *model.KPIRecord, factor float64) {
	if f.fv != nil {
		p := f.fv(r)
		*p = drift.Clamp(drift.Round2(*p*factor), f.domain.Min, f.domain.Max)
		return
	}
	p := f.iv(r)
	*p = int(drift.Clamp(math.Round(float64(*p)*factor), f.domain.Min, f.domain.Max))
}
