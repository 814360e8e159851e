package synth

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithProfile replaces the default distributions.
func WithProfile(p Profile) Option {
	return func(s *Synthesizer) {
		s.profile = p
	}
}

// WithDriftScale multiplies every drift step. 1 keeps the profile as is,
// 0 freezes drifted metrics at their prior values.
func WithDriftScale(f float64) Option {
	return func(s *Synthesizer) {
		if f >= 0 {
			s.driftScale = f
		}
	}
}

// WithFallbackObserver registers a callback invoked with the field name each
// time drift mode finds no prior value for a segment-gated metric and draws
// it fresh instead.
func WithFallbackObserver(fn func(field string)) Option {
	return func(s *Synthesizer) {
		s.onFallback = fn
	}
}
