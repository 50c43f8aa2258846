// Package dynamics provides the gain-reduction stages of the mastering
// chain: sidechain ducking and lookahead peak limiting.
package dynamics

import (
	"github.com/justyntemme/spatialmix/pkg/dsp/smooth"
)

// Ducker tracks a smoothed mix-gain reduction driven by the loudest
// sidechain voice each block. The reduction target is 1 - gain*amount,
// so a full-gain sidechain voice with amount 1 ducks the mix to silence.
type Ducker struct {
	gain *smooth.OnePole
}

// NewDucker creates a ducker at unity gain.
func NewDucker(sampleRate float64) *Ducker {
	return &Ducker{
		gain: smooth.NewOnePole(1.0, sampleRate),
	}
}

// Update advances the smoothed ducking gain one block toward the target
// derived from the sidechain level and returns the new gain. The speed is
// a time-constant scaler (see smooth.OnePole); the same coefficient is
// used whether the gain is falling or recovering.
func (d *Ducker) Update(sidechainGain, amount, speed float64) float64 {
	target := 1.0 - sidechainGain*amount
	return d.gain.Step(target, speed)
}

// Gain returns the current smoothed ducking gain.
func (d *Ducker) Gain() float64 {
	return d.gain.Value()
}

// Reset returns the ducker to unity gain.
func (d *Ducker) Reset() {
	d.gain.Reset(1.0)
}
