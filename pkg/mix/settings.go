package mix

// Settings are the mastering-chain controls. Configure replaces them
// wholesale; there is no partial update, so the realtime thread always
// observes a consistent set.
type Settings struct {
	// TargetLoudness is the target integrated loudness in the engine's
	// LUFS-like unit. -23 maps to unity master gain.
	TargetLoudness float64

	// Compression in [0, 1]. Reserved: stored and snapshotted but not
	// applied beyond the limiter.
	Compression float64

	// DuckingAmount in [0, 1] scales how hard sidechain voices duck the
	// mix; DuckingSpeed is the one-pole convergence speed (per block).
	DuckingAmount float64
	DuckingSpeed  float64

	// LimiterRelease is the one-pole smoothing speed of the limiter
	// gain (per sample). The same coefficient serves attack and release.
	LimiterRelease float64
}

// DefaultSettings returns the engine defaults: unity master gain, gentle
// ducking, and a limiter release that settles in about a millisecond.
func DefaultSettings() Settings {
	return Settings{
		TargetLoudness: -23.0,
		Compression:    0.0,
		DuckingAmount:  0.6,
		DuckingSpeed:   2400.0,
		LimiterRelease: 4800.0,
	}
}
