package render

import (
	"sync"

	"github.com/justyntemme/spatialmix/pkg/mix"
)

// playhead tracks one voice's position inside its clip.
type playhead struct {
	id   mix.VoiceID
	clip *Clip
	pos  int
	loop bool
}

// Renderer ties clips to engine voices. PlayClip registers the voice
// with the engine and keeps a playhead; RenderBlock mixes clip samples,
// scaled by the gains the engine cached on its previous block, into the
// output buffer. Gains therefore lag the render by one block, the price
// of keeping the registry lock out of the sample loop.
type Renderer struct {
	engine *mix.Engine

	mu      sync.Mutex
	playing []playhead
}

// NewRenderer creates a renderer for the given engine.
func NewRenderer(engine *mix.Engine) *Renderer {
	return &Renderer{
		engine:  engine,
		playing: make([]playhead, 0, mix.VoiceCapacity),
	}
}

// PlayClip starts a voice for the clip and returns its id. Looping
// follows params.Looped.
func (r *Renderer) PlayClip(clip *Clip, params mix.VoiceParams) mix.VoiceID {
	id := r.engine.Play(params)

	r.mu.Lock()
	r.playing = append(r.playing, playhead{
		id:   id,
		clip: clip,
		loop: params.Looped,
	})
	r.mu.Unlock()

	return id
}

// StopClip stops the voice and drops its playhead.
func (r *Renderer) StopClip(id mix.VoiceID) {
	r.engine.Stop(id)

	r.mu.Lock()
	r.dropLocked(id)
	r.mu.Unlock()
}

func (r *Renderer) dropLocked(id mix.VoiceID) {
	for i := range r.playing {
		if r.playing[i].id == id {
			r.playing = append(r.playing[:i], r.playing[i+1:]...)
			return
		}
	}
}

// Playing returns the number of live playheads.
func (r *Renderer) Playing() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.playing)
}

// RenderBlock overwrites out with the sum of all playing clips, each
// scaled by its voice's cached gain. Voices whose engine entry vanished
// (stolen) are dropped; non-looping voices that reach the end of their
// clip are stopped and dropped.
func (r *Renderer) RenderBlock(out []float32) {
	for i := range out {
		out[i] = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < len(r.playing); {
		p := &r.playing[i]

		g, alive := r.engine.VoiceGain(p.id)
		if !alive {
			r.playing = append(r.playing[:i], r.playing[i+1:]...)
			continue
		}

		finished := p.mixInto(out, float32(g))
		if finished {
			r.engine.Stop(p.id)
			r.playing = append(r.playing[:i], r.playing[i+1:]...)
			continue
		}
		i++
	}
}

// mixInto adds the next len(out) samples of the clip into out and
// advances the playhead. Returns true when the clip ran out; an empty
// clip is always out, looping or not.
func (p *playhead) mixInto(out []float32, g float32) bool {
	data := p.clip.Data
	if len(data) == 0 {
		return true
	}
	for i := range out {
		if p.pos >= len(data) {
			if !p.loop {
				return true
			}
			p.pos = 0
		}
		out[i] += data[p.pos] * g
		p.pos++
	}
	return false
}
