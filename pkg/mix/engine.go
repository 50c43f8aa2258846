package mix

import (
	"math"
	"sync/atomic"

	"github.com/justyntemme/spatialmix/pkg/dsp/analysis"
	"github.com/justyntemme/spatialmix/pkg/dsp/dynamics"
	"github.com/justyntemme/spatialmix/pkg/dsp/gain"
	"github.com/justyntemme/spatialmix/pkg/dsp/spatial"
)

// Engine is the mixing and mastering engine. Play, Stop, Update and
// Configure may be called from any thread at any time; Process must be
// called exactly once per audio block from the realtime thread, with a
// consistent block length, immediately before the buffer goes to the
// device.
type Engine struct {
	registry *Registry
	settings atomic.Pointer[Settings]

	// Realtime-thread state: only Process touches these.
	ducker  *dynamics.Ducker
	limiter *dynamics.LookaheadLimiter
	meter   *analysis.LoudnessMeter
	blocks  uint64

	stats statsCell
}

// NewEngine creates an engine for the given device sample rate with
// default settings and the reference voice capacity.
func NewEngine(sampleRate float64) *Engine {
	e := &Engine{
		registry: NewRegistry(VoiceCapacity),
		ducker:   dynamics.NewDucker(sampleRate),
		limiter:  dynamics.NewLookaheadLimiter(sampleRate),
		meter:    analysis.NewLoudnessMeter(),
	}
	s := DefaultSettings()
	e.settings.Store(&s)
	return e
}

// Play starts a voice and returns its id. Always succeeds; if the pool
// is full the least important voice (possibly this one) is stolen.
func (e *Engine) Play(params VoiceParams) VoiceID {
	return e.registry.Play(params)
}

// Stop removes a voice. Unknown ids are a no-op.
func (e *Engine) Stop(id VoiceID) {
	e.registry.Stop(id)
}

// Update replaces a voice's params. Unknown ids are a no-op.
func (e *Engine) Update(id VoiceID, params VoiceParams) {
	e.registry.Update(id, params)
}

// VoiceGain returns the voice's cached gain from the last processed
// block, or false if the voice is gone.
func (e *Engine) VoiceGain(id VoiceID) (float64, bool) {
	return e.registry.Gain(id)
}

// Configure atomically replaces all mastering settings, effective from
// the next block.
func (e *Engine) Configure(s Settings) {
	e.settings.Store(&s)
}

// Settings returns the current settings snapshot.
func (e *Engine) Settings() Settings {
	return *e.settings.Load()
}

// Stats returns the statistics published after the last block.
func (e *Engine) Stats() Stats {
	return e.stats.snapshot()
}

// Process masters one block in place. Sequence: recompute voice gains
// under the registry lock, release it, then run the per-sample master
// gain, ducking and limiting chain, and finally fold the block into the
// loudness estimate and publish stats. Does not allocate and blocks only
// on the bounded registry lock.
func (e *Engine) Process(listener spatial.Vec3, buffer []float32) {
	e.blocks++
	s := *e.settings.Load()

	_, sidechain, count := e.registry.RecomputeGains(listener, e.blocks)

	duck := e.ducker.Update(sidechain, s.DuckingAmount, s.DuckingSpeed)
	master := gain.FromTargetLoudness(s.TargetLoudness) * duck

	var peak, sumSquares float64
	for i := range buffer {
		out := e.limiter.Process(gain.Apply(buffer[i], master), s.LimiterRelease)
		buffer[i] = out

		a := math.Abs(float64(out))
		if a > peak {
			peak = a
		}
		sumSquares += float64(out) * float64(out)
	}

	var rms float64
	if len(buffer) > 0 {
		rms = math.Sqrt(sumSquares / float64(len(buffer)))
	}
	integrated := e.meter.Update(rms)

	e.stats.publish(count, e.registry.Stolen(), peak, integrated)
}

// Reset stops all voices and clears the mastering chain state and
// statistics. Voice ids keep incrementing across a reset.
func (e *Engine) Reset() {
	e.registry.Clear()
	e.ducker.Reset()
	e.limiter.Reset()
	e.meter.Reset()
	e.blocks = 0
	e.stats.publish(0, 0, 0, e.meter.Integrated())
}
