// Package mix implements a realtime spatial-audio mixing and mastering
// engine: a bounded pool of positional voices with priority-based
// stealing, per-block spatial gain computation, and a mastering chain of
// sidechain ducking, lookahead peak limiting and rolling loudness
// measurement.
//
// Threading model: any number of control threads may call Play, Stop,
// Update and Configure concurrently with each other and with the
// realtime thread's once-per-block Process call. The voice pool is the
// only shared mutable structure; it is guarded by a lock held only for
// bounded registry mutations and the per-block gain pass, never during
// the per-sample mastering loop. Settings are snapshotted atomically per
// block and statistics are published through atomics, so neither path
// can block the audio callback.
package mix
