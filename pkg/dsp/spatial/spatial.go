// Package spatial provides distance-based attenuation for positional
// sound sources.
package spatial

import "math"

// AirAbsorptionCoeff is the fixed high-frequency rolloff coefficient
// applied to every voice regardless of its own air-absorption weight.
const AirAbsorptionCoeff = 0.02

// Vec3 is a position in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Length returns the euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// Attenuate maps a listener distance to a gain in [0, 1] using quadratic
// falloff between minDist and maxDist: steeper near the far edge,
// smoothed so there is no hard step at maxDist.
//
// Malformed ranges (minDist > maxDist) never panic; the voice degrades
// to full gain as if inside minDist.
func Attenuate(distance, minDist, maxDist float64) float64 {
	if minDist > maxDist {
		return 1.0
	}
	if distance <= minDist {
		return 1.0
	}
	if distance >= maxDist {
		return 0.0
	}
	t := (distance - minDist) / (maxDist - minDist)
	return 1.0 - t*t
}

// AirAbsorption returns the multiplicative distance rolloff 1/(1+d*k)
// modeling high-frequency loss over distance.
func AirAbsorption(distance, coefficient float64) float64 {
	return 1.0 / (1.0 + distance*coefficient)
}
