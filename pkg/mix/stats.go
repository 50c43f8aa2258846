package mix

import (
	"math"
	"sync/atomic"
)

// Stats is a read-only snapshot of the engine's published counters,
// intended for monitoring collaborators.
type Stats struct {
	// ActiveVoices is the registry size at the last block's snapshot.
	ActiveVoices int

	// StolenVoices is the cumulative number of voices evicted to make
	// room since the engine was created (or last reset).
	StolenVoices uint64

	// LastPeak is the largest absolute sample magnitude emitted in the
	// last block.
	LastPeak float64

	// IntegratedLoudness is the current rolling loudness estimate in the
	// engine's uncalibrated unit.
	IntegratedLoudness float64
}

// statsCell publishes stats from the realtime thread without blocking
// it: each field is an independent atomic, written once per block and
// read by observers at any time.
type statsCell struct {
	active   atomic.Int64
	stolen   atomic.Uint64
	peak     atomic.Uint64 // float64 bits
	loudness atomic.Uint64 // float64 bits
}

func (c *statsCell) publish(active int, stolen uint64, peak, loudness float64) {
	c.active.Store(int64(active))
	c.stolen.Store(stolen)
	c.peak.Store(math.Float64bits(peak))
	c.loudness.Store(math.Float64bits(loudness))
}

func (c *statsCell) snapshot() Stats {
	return Stats{
		ActiveVoices:       int(c.active.Load()),
		StolenVoices:       c.stolen.Load(),
		LastPeak:           math.Float64frombits(c.peak.Load()),
		IntegratedLoudness: math.Float64frombits(c.loudness.Load()),
	}
}
