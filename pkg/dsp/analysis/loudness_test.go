package analysis

import (
	"math"
	"testing"

	"github.com/justyntemme/spatialmix/pkg/dsp/gain"
)

func TestBlockLoudnessFormula(t *testing.T) {
	testCases := []struct {
		rms       float64
		expected  float64
		tolerance float64
	}{
		{1.0, -0.691, 1e-9},
		{0.1, -10.691, 1e-9},
		{0.5, -0.691 + 10.0*math.Log10(0.5), 1e-9},
		{0.0, gain.MinDB, 0},
		{-1.0, gain.MinDB, 0},
	}

	for _, tc := range testCases {
		got := BlockLoudness(tc.rms)
		if math.Abs(got-tc.expected) > tc.tolerance {
			t.Errorf("BlockLoudness(%f) = %f, want %f", tc.rms, got, tc.expected)
		}
	}
}

func TestLoudnessMeterConverges(t *testing.T) {
	m := NewLoudnessMeter()

	// A constant block level pulls the integrated estimate toward that
	// block's loudness over many blocks.
	rms := 0.5
	want := BlockLoudness(rms)
	for i := 0; i < 20000; i++ {
		m.Update(rms)
	}

	if math.Abs(m.Integrated()-want) > 0.1 {
		t.Errorf("integrated = %f, want close to %f", m.Integrated(), want)
	}
}

func TestLoudnessMeterSlowMovement(t *testing.T) {
	m := NewLoudnessMeter()
	m.Update(1.0)
	first := m.Integrated()

	// One block moves the estimate by exactly 0.1% of the distance
	want := gain.MinDB*0.999 + BlockLoudness(1.0)*0.001
	if math.Abs(first-want) > 1e-9 {
		t.Errorf("single update = %f, want %f", first, want)
	}
}

func TestLoudnessMeterSilence(t *testing.T) {
	m := NewLoudnessMeter()
	for i := 0; i < 100; i++ {
		m.Update(0.0)
	}
	if m.Integrated() != gain.MinDB {
		t.Errorf("silence should keep the estimate at the floor, got %f", m.Integrated())
	}
}

func TestLoudnessMeterReset(t *testing.T) {
	m := NewLoudnessMeter()
	for i := 0; i < 1000; i++ {
		m.Update(1.0)
	}
	m.Reset()
	if m.Integrated() != gain.MinDB {
		t.Errorf("Reset should restore the floor, got %f", m.Integrated())
	}
}

func TestRMS(t *testing.T) {
	testCases := []struct {
		name      string
		buffer    []float32
		expected  float64
		tolerance float64
	}{
		{"empty", nil, 0.0, 0},
		{"silence", []float32{0, 0, 0, 0}, 0.0, 0},
		{"dc", []float32{0.5, 0.5, 0.5, 0.5}, 0.5, 1e-9},
		{"square", []float32{1, -1, 1, -1}, 1.0, 1e-9},
		{"mixed", []float32{0.6, -0.8}, math.Sqrt((0.36 + 0.64) / 2), 1e-6},
	}

	for _, tc := range testCases {
		if got := RMS(tc.buffer); math.Abs(got-tc.expected) > tc.tolerance {
			t.Errorf("%s: RMS = %f, want %f", tc.name, got, tc.expected)
		}
	}
}

func TestPeak(t *testing.T) {
	if got := Peak([]float32{0.1, -0.9, 0.5}); math.Abs(got-0.9) > 1e-7 {
		t.Errorf("Peak = %f, want 0.9", got)
	}
	if got := Peak(nil); got != 0 {
		t.Errorf("Peak of empty = %f, want 0", got)
	}
}
