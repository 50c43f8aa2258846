package dynamics

import (
	"math"

	"github.com/justyntemme/spatialmix/pkg/dsp/delay"
	"github.com/justyntemme/spatialmix/pkg/dsp/smooth"
)

// Limiter reference constants.
const (
	// DefaultLookahead is the delay line depth in samples. The limiter
	// trades this many samples of latency for the ability to start
	// reducing gain before an offending sample is emitted.
	DefaultLookahead = 48

	// DefaultCeiling is the linear output ceiling.
	DefaultCeiling = 0.999
)

// LookaheadLimiter prevents the output from exceeding a ceiling. Each
// sample is delayed by the lookahead depth while the gain smoother reacts
// to the incoming (future) signal, so transients begin pulling the gain
// down before they reach the output.
//
// Attack and release share a single smoothing coefficient. That is a
// deliberate simplification; a separate fast-attack path is a known
// tunable, not a bug.
type LookaheadLimiter struct {
	line    *delay.Ring
	gain    *smooth.OnePole
	ceiling float64
}

// NewLookaheadLimiter creates a limiter with the reference lookahead
// depth and ceiling.
func NewLookaheadLimiter(sampleRate float64) *LookaheadLimiter {
	return &LookaheadLimiter{
		line:    delay.NewRing(DefaultLookahead),
		gain:    smooth.NewOnePole(1.0, sampleRate),
		ceiling: DefaultCeiling,
	}
}

// SetCeiling sets the linear output ceiling. Non-positive ceilings are
// clamped to the default.
func (l *LookaheadLimiter) SetCeiling(ceiling float64) {
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	l.ceiling = ceiling
}

// Process runs one sample through the limiter and returns the delayed,
// gain-reduced output. release is the smoothing speed for the persistent
// gain (same one-pole scheme as the ducker).
func (l *LookaheadLimiter) Process(sample float32, release float64) float32 {
	delayed := l.line.Exchange(sample)

	peak := math.Max(math.Abs(float64(sample)), math.Abs(float64(delayed)))
	target := 1.0
	if peak > l.ceiling {
		target = l.ceiling / peak
	}
	g := l.gain.Step(target, release)

	return delayed * float32(g)
}

// Gain returns the current smoothed limiter gain (1.0 = no reduction).
func (l *LookaheadLimiter) Gain() float64 {
	return l.gain.Value()
}

// Latency returns the lookahead depth in samples.
func (l *LookaheadLimiter) Latency() int {
	return l.line.Depth()
}

// Reset clears the delay line and returns the gain to unity.
func (l *LookaheadLimiter) Reset() {
	l.line.Reset()
	l.gain.Reset(1.0)
}
