package render

// Clip is a fully decoded, mono, float32 sample buffer. Clips are
// immutable after loading and may be shared by any number of voices.
type Clip struct {
	// Data holds normalized samples in [-1, 1].
	Data []float32

	// SampleRate is the source file's rate. The renderer plays clips at
	// the device rate without resampling; mismatched clips shift pitch.
	SampleRate int
}

// Duration returns the clip length in samples.
func (c *Clip) Duration() int {
	return len(c.Data)
}

// downmixMono folds interleaved multichannel int samples into mono
// float32, normalizing by the bit depth.
func downmixMono(data []int, channels, bitDepth int) []float32 {
	if channels < 1 {
		channels = 1
	}

	var maxVal float32
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	frames := len(data) / channels
	out := make([]float32, frames)
	inv := 1.0 / (maxVal * float32(channels))
	for f := 0; f < frames; f++ {
		sum := float32(0)
		base := f * channels
		for c := 0; c < channels; c++ {
			sum += float32(data[base+c])
		}
		out[f] = sum * inv
	}
	return out
}
