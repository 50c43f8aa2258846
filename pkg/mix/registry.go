package mix

import (
	"sync"
	"sync/atomic"

	"github.com/justyntemme/spatialmix/pkg/dsp/spatial"
)

const (
	// VoiceCapacity is the hard bound on concurrently active voices.
	// Playing past it steals the least important voice; excess demand is
	// dropped, never queued.
	VoiceCapacity = 96

	// SidechainPriority is the priority at or above which a voice drives
	// the sidechain ducker.
	SidechainPriority = 240
)

// Registry is the bounded pool of active voices. Control threads mutate
// it through Play/Stop/Update at any time; the realtime thread runs the
// once-per-block gain recomputation. All critical sections are short and
// bounded: a linear pass over at most capacity entries.
type Registry struct {
	mu       sync.Mutex
	voices   []activeVoice
	nextID   VoiceID
	capacity int

	// blocks mirrors the engine's block counter so Play/Update can stamp
	// lastTouched without reaching into the realtime state.
	blocks uint64

	// stolen counts evictions; atomic so the stats publisher reads it
	// without taking the registry lock.
	stolen atomic.Uint64
}

// NewRegistry creates a registry with the given capacity. Non-positive
// capacities fall back to VoiceCapacity.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = VoiceCapacity
	}
	return &Registry{
		// One extra slot so an over-capacity Play never reallocates.
		voices:   make([]activeVoice, 0, capacity+1),
		capacity: capacity,
	}
}

// Play inserts a new voice with zero initial gain and returns its id.
// If the insertion pushes the pool over capacity, the least important
// voice is stolen immediately; that can be the new voice itself, in
// which case the returned id is already dead and is a valid no-op target
// for Stop and Update.
func (r *Registry) Play(params VoiceParams) VoiceID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.allocID()
	r.voices = append(r.voices, activeVoice{
		params:      params,
		id:          id,
		lastTouched: r.blocks,
	})

	for len(r.voices) > r.capacity {
		r.evictLeastImportant()
	}

	return id
}

// allocID returns the next monotonic id, skipping 0 on wraparound.
func (r *Registry) allocID() VoiceID {
	r.nextID++
	if r.nextID == 0 {
		r.nextID = 1
	}
	return r.nextID
}

// evictLeastImportant removes one voice: lowest priority first, then
// lowest cached gain, then oldest lastTouched. Caller holds the lock.
func (r *Registry) evictLeastImportant() {
	victim := 0
	for i := 1; i < len(r.voices); i++ {
		if lessImportant(&r.voices[i], &r.voices[victim]) {
			victim = i
		}
	}
	r.removeAt(victim)
	r.stolen.Add(1)
}

// lessImportant reports whether a should be stolen before b.
func lessImportant(a, b *activeVoice) bool {
	if a.params.Priority != b.params.Priority {
		return a.params.Priority < b.params.Priority
	}
	if a.gain != b.gain {
		return a.gain < b.gain
	}
	return a.lastTouched < b.lastTouched
}

// removeAt deletes the voice at index i preserving insertion order, so
// stealing tie-breaks stay deterministic for a given input order.
func (r *Registry) removeAt(i int) {
	copy(r.voices[i:], r.voices[i+1:])
	r.voices = r.voices[:len(r.voices)-1]
}

// Stop removes the voice with the given id. Unknown ids are ignored; the
// caller may legitimately race a Stop against a steal.
func (r *Registry) Stop(id VoiceID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.voices {
		if r.voices[i].id == id {
			r.removeAt(i)
			return
		}
	}
}

// Update replaces the stored params and refreshes lastTouched for the
// voice with the given id. Unknown ids are ignored.
func (r *Registry) Update(id VoiceID, params VoiceParams) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.voices {
		if r.voices[i].id == id {
			r.voices[i].params = params
			r.voices[i].lastTouched = r.blocks
			return
		}
	}
}

// Gain returns the cached gain of a voice from the most recent
// recomputation pass, or false if the voice is gone.
func (r *Registry) Gain(id VoiceID) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.voices {
		if r.voices[i].id == id {
			return r.voices[i].gain, true
		}
	}
	return 0, false
}

// Len returns the number of active voices.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.voices)
}

// Stolen returns the cumulative stolen-voice count.
func (r *Registry) Stolen() uint64 {
	return r.stolen.Load()
}

// RecomputeGains runs the once-per-block gain pass: for every voice,
// attenuation times volume times the fixed air-absorption rolloff,
// cached on the voice. Returns the maximum gain over all voices, the
// maximum over sidechain-triggering voices, and the active count.
// This is the only operation that touches every voice per block.
func (r *Registry) RecomputeGains(listener spatial.Vec3, block uint64) (maxGain, sidechainGain float64, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blocks = block

	for i := range r.voices {
		v := &r.voices[i]
		d := spatial.Distance(listener, v.params.Position)
		g := spatial.Attenuate(d, v.params.MinDistance, v.params.MaxDistance) *
			spatial.AirAbsorption(d, spatial.AirAbsorptionCoeff) *
			v.params.Volume
		v.gain = g

		if g > maxGain {
			maxGain = g
		}
		if v.params.Priority >= SidechainPriority && g > sidechainGain {
			sidechainGain = g
		}
	}

	return maxGain, sidechainGain, len(r.voices)
}

// Clear removes every voice. The id counter keeps running so ids stay
// unique across a reset.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.voices = r.voices[:0]
	r.stolen.Store(0)
}
