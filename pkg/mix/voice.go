package mix

import (
	"github.com/justyntemme/spatialmix/pkg/dsp/spatial"
)

// VoiceID identifies an active voice. IDs are assigned monotonically and
// never reused while the original voice is alive; 0 is never issued.
type VoiceID uint64

// VoiceParams are the caller-supplied spatial parameters of a voice.
// Copy semantics: the registry snapshots them on Play and replaces them
// wholesale on Update.
type VoiceParams struct {
	// Position of the source in world space.
	Position spatial.Vec3

	// Volume is the linear volume scalar applied after attenuation.
	Volume float64

	// Priority orders voices for stealing and marks sidechain triggers
	// (dialogue/UI) at or above SidechainPriority.
	Priority uint8

	// Looped marks the voice as looping. The registry carries the flag
	// for collaborators (the renderer loops the source); it does not
	// change mixing behavior.
	Looped bool

	// MinDistance and MaxDistance bound the audible range. MinDistance
	// must not exceed MaxDistance; a violated range degrades to full
	// gain rather than failing.
	MinDistance float64
	MaxDistance float64

	// AirAbsorption is the per-voice absorption weight in [0, 1]
	// (0 = full range, 1 = fully muted). The attenuation math currently
	// applies a fixed distance rolloff independent of this value; the
	// field is carried for forward compatibility.
	AirAbsorption float64
}

// activeVoice is a live registry entry. Owned exclusively by the
// registry; never aliased outside a locked scope.
type activeVoice struct {
	params VoiceParams

	// gain is the cached post-attenuation gain, recomputed once per
	// block while the registry lock is held.
	gain float64

	id VoiceID

	// lastTouched is the block counter at Play/Update time, used as the
	// final stealing tie-break (oldest goes first).
	lastTouched uint64
}
