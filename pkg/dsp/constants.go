// Package dsp provides digital signal processing primitives for the
// spatial mixing and mastering chain.
package dsp

// Common audio constants used throughout the DSP packages and the engine.
const (
	// Gain/Level constants
	MinDB     = -200.0 // Minimum dB value (effectively silence)
	UnityGain = 1.0    // Unity gain (0 dB)

	// SampleRate48k is the fixed device sample rate the engine is designed
	// for. Smoothing speeds and the lookahead depth are normalized against
	// the device rate, not recomputed per rate.
	SampleRate48k = 48000.0

	// Block sizes
	MinBlockSize     = 32
	DefaultBlockSize = 512
	MaxBlockSize     = 8192

	// Channel counts
	Mono   = 1
	Stereo = 2
)
