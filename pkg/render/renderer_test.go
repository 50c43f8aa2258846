package render

import (
	"math"
	"testing"

	"github.com/justyntemme/spatialmix/pkg/dsp/spatial"
	"github.com/justyntemme/spatialmix/pkg/mix"
)

func nearParams(priority uint8) mix.VoiceParams {
	return mix.VoiceParams{
		Volume:      1.0,
		Priority:    priority,
		MinDistance: 1.0,
		MaxDistance: 100.0,
	}
}

func rampClip(n int) *Clip {
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(i+1) / float32(n)
	}
	return &Clip{Data: data, SampleRate: 48000}
}

func TestRenderBlockAppliesVoiceGain(t *testing.T) {
	e := mix.NewEngine(48000.0)
	r := NewRenderer(e)

	clip := rampClip(1024)
	r.PlayClip(clip, nearParams(100))

	// One Process pass caches the voice gain (1.0 at distance zero).
	scratch := make([]float32, 256)
	e.Process(spatial.Vec3{}, scratch)

	out := make([]float32, 256)
	r.RenderBlock(out)

	for i := range out {
		if math.Abs(float64(out[i]-clip.Data[i])) > 1e-6 {
			t.Fatalf("sample %d: got %f, want %f", i, out[i], clip.Data[i])
		}
	}
}

func TestRenderBlockBeforeFirstProcessIsSilent(t *testing.T) {
	e := mix.NewEngine(48000.0)
	r := NewRenderer(e)
	r.PlayClip(rampClip(512), nearParams(100))

	// No gain pass yet: cached gain is zero.
	out := make([]float32, 128)
	r.RenderBlock(out)

	for i, s := range out {
		if s != 0 {
			t.Fatalf("sample %d: got %f before first gain pass", i, s)
		}
	}
}

func TestRenderBlockSumsVoices(t *testing.T) {
	e := mix.NewEngine(48000.0)
	r := NewRenderer(e)

	clip := &Clip{Data: []float32{0.25, 0.25, 0.25, 0.25}, SampleRate: 48000}
	r.PlayClip(clip, mix.VoiceParams{
		Volume: 1, Priority: 10, Looped: true, MinDistance: 1, MaxDistance: 100,
	})
	r.PlayClip(clip, mix.VoiceParams{
		Volume: 1, Priority: 20, Looped: true, MinDistance: 1, MaxDistance: 100,
	})

	scratch := make([]float32, 64)
	e.Process(spatial.Vec3{}, scratch)

	out := make([]float32, 8)
	r.RenderBlock(out)

	for i, s := range out {
		if math.Abs(float64(s)-0.5) > 1e-6 {
			t.Fatalf("sample %d: got %f, want 0.5", i, s)
		}
	}
}

func TestRenderBlockLoops(t *testing.T) {
	e := mix.NewEngine(48000.0)
	r := NewRenderer(e)

	clip := &Clip{Data: []float32{0.1, 0.2}, SampleRate: 48000}
	p := nearParams(100)
	p.Looped = true
	r.PlayClip(clip, p)

	scratch := make([]float32, 32)
	e.Process(spatial.Vec3{}, scratch)

	out := make([]float32, 6)
	r.RenderBlock(out)

	want := []float32{0.1, 0.2, 0.1, 0.2, 0.1, 0.2}
	for i := range out {
		if math.Abs(float64(out[i]-want[i])) > 1e-6 {
			t.Fatalf("sample %d: got %f, want %f", i, out[i], want[i])
		}
	}
	if r.Playing() != 1 {
		t.Errorf("looped voice should keep playing, got %d playheads", r.Playing())
	}
}

func TestRenderBlockStopsFinishedClip(t *testing.T) {
	e := mix.NewEngine(48000.0)
	r := NewRenderer(e)

	clip := &Clip{Data: []float32{0.5, 0.5}, SampleRate: 48000}
	id := r.PlayClip(clip, nearParams(100))

	scratch := make([]float32, 32)
	e.Process(spatial.Vec3{}, scratch)

	out := make([]float32, 8)
	r.RenderBlock(out)

	if r.Playing() != 0 {
		t.Errorf("finished voice should be dropped, got %d playheads", r.Playing())
	}
	if _, alive := e.VoiceGain(id); alive {
		t.Error("finished voice should be stopped in the engine")
	}
}

func TestRenderBlockDropsEmptyClip(t *testing.T) {
	e := mix.NewEngine(48000.0)
	r := NewRenderer(e)

	p := nearParams(100)
	p.Looped = true
	id := r.PlayClip(&Clip{SampleRate: 48000}, p)

	scratch := make([]float32, 32)
	e.Process(spatial.Vec3{}, scratch)

	out := make([]float32, 16)
	r.RenderBlock(out)

	for i, s := range out {
		if s != 0 {
			t.Fatalf("sample %d: got %f from an empty clip", i, s)
		}
	}
	if r.Playing() != 0 {
		t.Errorf("empty clip should be dropped, got %d playheads", r.Playing())
	}
	if _, alive := e.VoiceGain(id); alive {
		t.Error("empty clip's voice should be stopped")
	}
}

func TestRenderBlockDropsStolenVoices(t *testing.T) {
	e := mix.NewEngine(48000.0)
	r := NewRenderer(e)

	clip := rampClip(1024)
	id := r.PlayClip(clip, mix.VoiceParams{
		Volume: 1, Priority: 10, Looped: true, MinDistance: 1, MaxDistance: 100,
	})

	// Stop behind the renderer's back, standing in for a steal.
	e.Stop(id)

	out := make([]float32, 64)
	r.RenderBlock(out)

	if r.Playing() != 0 {
		t.Errorf("dead voice should be dropped, got %d playheads", r.Playing())
	}
}

func TestStopClip(t *testing.T) {
	e := mix.NewEngine(48000.0)
	r := NewRenderer(e)

	id := r.PlayClip(rampClip(64), nearParams(100))
	r.StopClip(id)

	if r.Playing() != 0 {
		t.Errorf("StopClip left %d playheads", r.Playing())
	}
	if _, alive := e.VoiceGain(id); alive {
		t.Error("StopClip should remove the engine voice")
	}
}
