// Package delay provides delay line implementations for the mastering chain.
package delay

// Ring is a fixed-depth circular delay line used for limiter lookahead.
// The write cursor always stays within [0, depth).
type Ring struct {
	buffer []float32
	depth  int
	pos    int
}

// NewRing creates a delay line of the given depth in samples.
func NewRing(depth int) *Ring {
	if depth < 1 {
		depth = 1
	}
	return &Ring{
		buffer: make([]float32, depth),
		depth:  depth,
	}
}

// Exchange writes the current sample into the line and returns the sample
// written depth positions ago.
func (r *Ring) Exchange(sample float32) float32 {
	out := r.buffer[r.pos]
	r.buffer[r.pos] = sample
	r.pos++
	if r.pos >= r.depth {
		r.pos = 0
	}
	return out
}

// Depth returns the delay depth in samples.
func (r *Ring) Depth() int {
	return r.depth
}

// Reset clears the delay buffer.
func (r *Ring) Reset() {
	for i := range r.buffer {
		r.buffer[i] = 0
	}
	r.pos = 0
}
