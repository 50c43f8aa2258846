// Package smooth provides control-signal smoothing to prevent zipper
// noise when gains change between blocks.
package smooth

// OnePole smooths a value toward a moving target with exponential
// convergence. The speed argument is a time-constant scaler normalized by
// the sample rate, not a literal filter coefficient: higher speed means
// faster convergence. No upper bound is enforced, so pathological speeds
// can overshoot; callers own the parameter range.
type OnePole struct {
	value      float64
	sampleRate float64
}

// NewOnePole creates a smoother starting at the given value.
func NewOnePole(initial, sampleRate float64) *OnePole {
	return &OnePole{
		value:      initial,
		sampleRate: sampleRate,
	}
}

// Step advances the smoother one step toward target and returns the new
// value. One step is one sample for per-sample smoothing or one block for
// per-block smoothing; the caller decides the cadence.
func (s *OnePole) Step(target, speed float64) float64 {
	s.value += (target - s.value) * speed / s.sampleRate
	return s.value
}

// Value returns the current smoothed value without advancing.
func (s *OnePole) Value() float64 {
	return s.value
}

// Reset forces the smoother to a value.
func (s *OnePole) Reset(value float64) {
	s.value = value
}
