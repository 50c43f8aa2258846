package debug

import (
	"math"

	"github.com/justyntemme/spatialmix/pkg/dsp/analysis"
)

// BlockReport summarizes the health of one processed block.
type BlockReport struct {
	Peak           float64
	RMS            float64
	NaNCount       int
	ClippedSamples int
	Silent         bool
}

const (
	clipThreshold    = 0.999
	silenceThreshold = 0.0001
)

// CheckBlock scans a processed block for NaN/Inf samples and clipping.
// Used by tests and diagnostic loops; not part of the realtime path.
func CheckBlock(buffer []float32) BlockReport {
	report := BlockReport{
		Peak: analysis.Peak(buffer),
		RMS:  analysis.RMS(buffer),
	}

	for _, s := range buffer {
		f := float64(s)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			report.NaNCount++
			continue
		}
		if math.Abs(f) > clipThreshold {
			report.ClippedSamples++
		}
	}

	report.Silent = report.Peak < silenceThreshold
	return report
}

// Clean reports whether the block is numerically sound and unclipped.
func (r BlockReport) Clean() bool {
	return r.NaNCount == 0 && r.ClippedSamples == 0
}
