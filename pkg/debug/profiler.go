package debug

import (
	"sync/atomic"
	"time"
)

// BlockProfiler tracks how much of the block time budget each Process
// call consumes. It is written by the realtime thread and read by
// observers, so all fields are atomics and Measure never allocates.
type BlockProfiler struct {
	budget time.Duration

	count    atomic.Uint64
	totalNs  atomic.Int64
	maxNs    atomic.Int64
	overruns atomic.Uint64
}

// BlockTiming is a snapshot of profiler counters.
type BlockTiming struct {
	Blocks   uint64
	Average  time.Duration
	Max      time.Duration
	Overruns uint64
}

// NewBlockProfiler creates a profiler for the given block length.
func NewBlockProfiler(blockSize int, sampleRate float64) *BlockProfiler {
	return &BlockProfiler{
		budget: time.Duration(float64(blockSize) / sampleRate * float64(time.Second)),
	}
}

// Budget returns the realtime budget for one block.
func (p *BlockProfiler) Budget() time.Duration {
	return p.budget
}

// Measure times fn as one block's work.
func (p *BlockProfiler) Measure(fn func()) {
	start := time.Now()
	fn()
	p.Record(time.Since(start))
}

// Record folds one block's elapsed time into the counters.
func (p *BlockProfiler) Record(elapsed time.Duration) {
	ns := elapsed.Nanoseconds()
	p.count.Add(1)
	p.totalNs.Add(ns)
	for {
		old := p.maxNs.Load()
		if ns <= old || p.maxNs.CompareAndSwap(old, ns) {
			break
		}
	}
	if elapsed > p.budget {
		p.overruns.Add(1)
	}
}

// Snapshot returns the counters gathered so far.
func (p *BlockProfiler) Snapshot() BlockTiming {
	n := p.count.Load()
	t := BlockTiming{
		Blocks:   n,
		Max:      time.Duration(p.maxNs.Load()),
		Overruns: p.overruns.Load(),
	}
	if n > 0 {
		t.Average = time.Duration(p.totalNs.Load() / int64(n))
	}
	return t
}

// Reset clears all counters.
func (p *BlockProfiler) Reset() {
	p.count.Store(0)
	p.totalNs.Store(0)
	p.maxNs.Store(0)
	p.overruns.Store(0)
}
