package synth

import (
	"math"

	"github.com/IOVASCON/projeto-csv-super/internal/domain/drift"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
)

const noIntCeil = math.MaxInt32

//nolint:gochecknoglobals // open bounds for walks
var (
	noFloor = math.Inf(-1)
	noCeil  = math.Inf(1)
)

// history exposes the prior record to the walks. In fresh mode every
// accessor returns nil so each metric falls back to its fresh distribution.
type history struct {
	last    *model.KPIRecord
	ok      bool
	observe func(field string)
}

func newHistory(prior *model.KPIRecord, observe func(string)) history {
	if prior == nil {
		return history{last: &model.KPIRecord{}, observe: observe}
	}
	return history{last: prior, ok: true, observe: observe}
}

func (h history) f(v float64) *float64 {
	if !h.ok {
		return nil
	}
	return &v
}

func (h history) i(v int) *int {
	if !h.ok {
		return nil
	}
	return &v
}

// gf returns a gated prior value, reporting a fallback when the prior
// record exists but does not carry the field.
func (h history) gf(field string, p *float64) *float64 {
	if !h.ok {
		return nil
	}
	if p == nil && h.observe != nil {
		h.observe(field)
	}
	return p
}

func (h history) gi(field string, p *int) *int {
	if !h.ok {
		return nil
	}
	if p == nil && h.observe != nil {
		h.observe(field)
	}
	return p
}

// normalWalk draws fresh from w.Fresh, or from N(prev, step) once a prior
// value exists. The result is rounded to cents and clamped to [lo, hi].
func (s *Synthesizer) normalWalk(prev *float64, w Walk, lo, hi float64) float64 {
	if prev == nil {
		return drift.Clamp(drift.Round2(s.src.Uniform(w.Fresh.Min, w.Fresh.Max)), lo, hi)
	}
	return drift.Clamp(drift.Round2(s.src.Normal(*prev, w.Step*s.driftScale)), lo, hi)
}

// uniformWalk draws fresh from w.Fresh, or uniformly within step of prev
// with the window cut to [lo, hi].
func (s *Synthesizer) uniformWalk(prev *float64, w Walk, lo, hi float64) float64 {
	if prev == nil {
		return drift.Clamp(drift.Round2(s.src.Uniform(w.Fresh.Min, w.Fresh.Max)), lo, hi)
	}
	d := w.Step * s.driftScale
	v := s.src.Uniform(math.Max(lo, *prev-d), math.Min(hi, *prev+d))
	return drift.Clamp(drift.Round2(v), lo, hi)
}

// intWalk is uniformWalk over integers.
func (s *Synthesizer) intWalk(prev *int, w IntWalk, lo, hi int) int {
	if prev == nil {
		return drift.ClampInt(s.src.SafeRangeInt(float64(w.Fresh.Min), float64(w.Fresh.Max)), lo, hi)
	}
	d := int(math.Round(float64(w.Step) * s.driftScale))
	a, b := max(lo, *prev-d), min(hi, *prev+d)
	return drift.ClampInt(s.src.SafeRangeInt(float64(a), float64(b)), lo, hi)
}

func (s *Synthesizer) uniform(u Uniform) float64 {
	return s.src.Uniform(u.Min, u.Max)
}
