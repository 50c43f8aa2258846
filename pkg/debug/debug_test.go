package debug

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test")
	l.SetLevel(LogLevelWarn)

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("visible warn")
	l.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("expected messages missing: %q", out)
	}
	if !strings.Contains(out, "[WARN] [test]") {
		t.Errorf("missing level/prefix tags: %q", out)
	}
}

func TestLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "")
	l.SetLevel(LogLevelOff)

	l.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("LogLevelOff still wrote: %q", buf.String())
	}
}

func TestBlockProfiler(t *testing.T) {
	p := NewBlockProfiler(512, 48000.0)

	blockSeconds := float64(512) / 48000.0
	wantBudget := time.Duration(blockSeconds * float64(time.Second))
	if p.Budget() != wantBudget {
		t.Errorf("budget = %v, want %v", p.Budget(), wantBudget)
	}

	p.Record(1 * time.Millisecond)
	p.Record(3 * time.Millisecond)
	p.Record(20 * time.Millisecond) // over the ~10.7ms budget

	s := p.Snapshot()
	if s.Blocks != 3 {
		t.Errorf("blocks = %d, want 3", s.Blocks)
	}
	if s.Max != 20*time.Millisecond {
		t.Errorf("max = %v, want 20ms", s.Max)
	}
	if s.Average != 8*time.Millisecond {
		t.Errorf("average = %v, want 8ms", s.Average)
	}
	if s.Overruns != 1 {
		t.Errorf("overruns = %d, want 1", s.Overruns)
	}

	p.Reset()
	if s := p.Snapshot(); s.Blocks != 0 || s.Max != 0 || s.Overruns != 0 {
		t.Errorf("Reset left counters: %+v", s)
	}
}

func TestCheckBlockClean(t *testing.T) {
	r := CheckBlock([]float32{0.1, -0.5, 0.3})
	if !r.Clean() {
		t.Errorf("clean block flagged: %+v", r)
	}
	if r.Silent {
		t.Error("non-silent block flagged silent")
	}
}

func TestCheckBlockFlagsProblems(t *testing.T) {
	nan := float32(math.NaN())
	r := CheckBlock([]float32{1.5, -1.2, nan, 0.2})

	if r.NaNCount != 1 {
		t.Errorf("NaNCount = %d, want 1", r.NaNCount)
	}
	if r.ClippedSamples != 2 {
		t.Errorf("ClippedSamples = %d, want 2", r.ClippedSamples)
	}
	if r.Clean() {
		t.Error("dirty block reported clean")
	}
}

func TestCheckBlockSilence(t *testing.T) {
	r := CheckBlock([]float32{0, 0, 0})
	if !r.Silent {
		t.Error("silent block not flagged")
	}
}
