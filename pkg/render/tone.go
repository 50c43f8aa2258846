package render

import "math"

// ToneClip synthesizes a sine clip of the given frequency and length.
// A short linear fade at both ends keeps looped playback click-free.
func ToneClip(freq, seconds float64, sampleRate int) *Clip {
	n := int(seconds * float64(sampleRate))
	if n < 1 {
		n = 1
	}

	data := make([]float32, n)
	phase := 0.0
	inc := freq / float64(sampleRate)
	for i := range data {
		data[i] = float32(math.Sin(2.0 * math.Pi * phase))
		phase += inc
		if phase >= 1.0 {
			phase -= math.Floor(phase)
		}
	}

	fade := sampleRate / 100
	if fade > n/2 {
		fade = n / 2
	}
	for i := 0; i < fade; i++ {
		g := float32(i) / float32(fade)
		data[i] *= g
		data[n-1-i] *= g
	}

	return &Clip{Data: data, SampleRate: sampleRate}
}
