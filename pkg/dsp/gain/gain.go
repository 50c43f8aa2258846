// Package gain provides amplitude and gain-related DSP operations.
package gain

import (
	"math"
)

// Constants for dB conversion
const (
	// MinDB is the minimum dB value (effectively -infinity)
	MinDB = -200.0
)

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math.Log10(linear)
}

// DbToLinear converts a decibel value to linear amplitude.
// Values <= MinDB return 0.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// FromTargetLoudness converts a target integrated loudness (LUFS-like,
// where -23 is the broadcast reference level) to the linear master gain
// applied before the mastering chain. A target of -23 yields unity gain.
func FromTargetLoudness(targetLUFS float64) float64 {
	return math.Pow(10.0, (targetLUFS+23.0)/20.0)
}

// Apply applies a gain factor to a sample.
func Apply(sample float32, gain float64) float32 {
	return sample * float32(gain)
}

// ApplyBuffer applies gain to an entire buffer in-place.
func ApplyBuffer(buffer []float32, gain float64) {
	g := float32(gain)
	for i := range buffer {
		buffer[i] *= g
	}
}
