// Package render feeds sample data into the mixing engine: it loads
// audio files into in-memory mono clips and renders the active voices'
// samples, scaled by the engine's cached spatial gains, into the block
// buffer that the engine then masters.
package render
