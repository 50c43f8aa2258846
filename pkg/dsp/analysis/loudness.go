// Package analysis provides level measurement for the mastering chain.
package analysis

import (
	"math"

	"github.com/justyntemme/spatialmix/pkg/dsp/gain"
)

// Loudness EMA weights. The integrated estimate moves 0.1% of the way to
// each new block, a long-window smoothing over many seconds of blocks.
const (
	integratedKeep = 0.999
	integratedMix  = 0.001
)

// LoudnessMeter keeps a rolling integrated-loudness estimate from
// per-block RMS values.
//
// The block conversion is -0.691 + 10*ln(rms)/ln(10), which is not the
// BS.1770 LUFS formula (that one gates and uses mean square, not RMS).
// The engine has always used this proxy and downstream tuning depends on
// it, so it is preserved as-is: treat the output as an uncalibrated
// internal unit, not calibrated LUFS.
type LoudnessMeter struct {
	integrated float64
}

// NewLoudnessMeter creates a meter with the estimate at the silence floor.
func NewLoudnessMeter() *LoudnessMeter {
	return &LoudnessMeter{integrated: gain.MinDB}
}

// BlockLoudness converts a block RMS level to the proxy loudness unit.
// Silent blocks report the floor instead of negative infinity.
func BlockLoudness(rms float64) float64 {
	if rms <= 0 {
		return gain.MinDB
	}
	return -0.691 + 10.0*math.Log(rms)/math.Ln10
}

// Update folds one block's RMS into the integrated estimate and returns
// the new estimate.
func (m *LoudnessMeter) Update(rms float64) float64 {
	m.integrated = m.integrated*integratedKeep + BlockLoudness(rms)*integratedMix
	return m.integrated
}

// Integrated returns the current integrated loudness estimate.
func (m *LoudnessMeter) Integrated() float64 {
	return m.integrated
}

// Reset drops the estimate back to the silence floor.
func (m *LoudnessMeter) Reset() {
	m.integrated = gain.MinDB
}

// RMS returns the root mean square level of a buffer. Empty buffers
// report zero.
func RMS(buffer []float32) float64 {
	if len(buffer) == 0 {
		return 0
	}
	var sum float64
	for _, s := range buffer {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(buffer)))
}

// Peak returns the largest absolute sample magnitude in a buffer.
func Peak(buffer []float32) float64 {
	var peak float64
	for _, s := range buffer {
		a := math.Abs(float64(s))
		if a > peak {
			peak = a
		}
	}
	return peak
}
