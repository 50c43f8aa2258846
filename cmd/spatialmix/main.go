// Command spatialmix is a playback demo for the mixing engine: it loads
// audio clips, orbits them around a stationary listener, and masters the
// mix through the ducking/limiting chain while logging engine stats.
package main

import (
	"encoding/binary"
	"flag"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/justyntemme/spatialmix/pkg/debug"
	"github.com/justyntemme/spatialmix/pkg/dsp"
	"github.com/justyntemme/spatialmix/pkg/dsp/spatial"
	"github.com/justyntemme/spatialmix/pkg/mix"
	"github.com/justyntemme/spatialmix/pkg/render"
)

func main() {
	var (
		blockSize  = flag.Int("block", dsp.DefaultBlockSize, "samples per block")
		target     = flag.Float64("target", -23.0, "target loudness (LUFS-like)")
		duckAmount = flag.Float64("duck", 0.6, "ducking amount [0,1]")
		duckSpeed  = flag.Float64("duck-speed", 2400.0, "ducking convergence speed")
		release    = flag.Float64("release", 4800.0, "limiter release speed")
		radius     = flag.Float64("radius", 20.0, "orbit radius of the sources")
		duration   = flag.Duration("duration", 30*time.Second, "how long to play")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		debug.SetLevel(debug.LogLevelDebug)
	}

	engine := mix.NewEngine(dsp.SampleRate48k)
	engine.Configure(mix.Settings{
		TargetLoudness: *target,
		DuckingAmount:  *duckAmount,
		DuckingSpeed:   *duckSpeed,
		LimiterRelease: *release,
	})
	renderer := render.NewRenderer(engine)
	profiler := debug.NewBlockProfiler(*blockSize, dsp.SampleRate48k)

	var voices []*orbitVoice
	if flag.NArg() > 0 {
		voices = startClips(renderer, flag.Args(), *radius)
		if len(voices) == 0 {
			debug.Error("no playable clips")
			os.Exit(1)
		}
	} else {
		voices = startTones(renderer, *radius)
	}

	stream := &blockStream{
		engine:   engine,
		renderer: renderer,
		profiler: profiler,
		block:    make([]float32, *blockSize),
		pcm:      make([]byte, *blockSize*4),
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(dsp.SampleRate48k),
		ChannelCount: dsp.Mono,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		debug.Error("opening audio device: %v", err)
		os.Exit(1)
	}
	<-ready

	player := ctx.NewPlayer(stream)
	player.Play()
	defer player.Close()

	debug.Info("playing %d voices for %s", len(voices), *duration)

	stop := make(chan struct{})
	go orbit(engine, voices, *radius, stop)

	deadline := time.After(*duration)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := engine.Stats()
			t := profiler.Snapshot()
			debug.Info("voices=%d stolen=%d peak=%.3f loudness=%.1f block avg=%s max=%s overruns=%d",
				s.ActiveVoices, s.StolenVoices, s.LastPeak, s.IntegratedLoudness,
				t.Average, t.Max, t.Overruns)
		case <-deadline:
			close(stop)
			debug.Info("done")
			return
		}
	}
}

// blockStream adapts the render+master loop to oto's pull model: each
// Read renders whole blocks and hands out float32 little-endian bytes.
type blockStream struct {
	engine   *mix.Engine
	renderer *render.Renderer
	profiler *debug.BlockProfiler

	block   []float32
	pcm     []byte
	pending []byte
}

func (s *blockStream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.pending) == 0 {
			s.profiler.Measure(func() {
				s.renderer.RenderBlock(s.block)
				s.engine.Process(spatial.Vec3{}, s.block)
			})
			for i, v := range s.block {
				binary.LittleEndian.PutUint32(s.pcm[i*4:], math.Float32bits(v))
			}
			s.pending = s.pcm
		}
		c := copy(p[n:], s.pending)
		n += c
		s.pending = s.pending[c:]
	}
	return n, nil
}

// orbitVoice is one looping clip circling the listener.
type orbitVoice struct {
	id     mix.VoiceID
	params mix.VoiceParams
	angle  float64
	rate   float64
}

func startClips(renderer *render.Renderer, paths []string, radius float64) []*orbitVoice {
	voices := make([]*orbitVoice, 0, len(paths))
	for i, path := range paths {
		clip, err := render.LoadFile(path)
		if err != nil {
			debug.Warn("skipping %s: %v", path, err)
			continue
		}

		params := mix.VoiceParams{
			Position:    spatial.Vec3{X: radius},
			Volume:      0.8,
			Priority:    uint8(40 + i*20),
			Looped:      true,
			MinDistance: 2.0,
			MaxDistance: radius * 4,
		}
		id := renderer.PlayClip(clip, params)

		voices = append(voices, &orbitVoice{
			id:     id,
			params: params,
			angle:  float64(i) * 2.0 * math.Pi / float64(len(paths)),
			rate:   0.3 + 0.1*float64(i),
		})
		debug.Debug("loaded %s: %d samples at %d Hz", path, clip.Duration(), clip.SampleRate)
	}
	return voices
}

// startTones synthesizes a small chord of looping test tones so the
// demo can run with no clip files at all.
func startTones(renderer *render.Renderer, radius float64) []*orbitVoice {
	freqs := []float64{220.0, 330.0, 440.0}
	voices := make([]*orbitVoice, 0, len(freqs))
	for i, freq := range freqs {
		clip := render.ToneClip(freq, 2.0, int(dsp.SampleRate48k))
		params := mix.VoiceParams{
			Position:    spatial.Vec3{X: radius},
			Volume:      0.5,
			Priority:    uint8(40 + i*20),
			Looped:      true,
			MinDistance: 2.0,
			MaxDistance: radius * 4,
		}
		id := renderer.PlayClip(clip, params)
		voices = append(voices, &orbitVoice{
			id:     id,
			params: params,
			angle:  float64(i) * 2.0 * math.Pi / float64(len(freqs)),
			rate:   0.3 + 0.1*float64(i),
		})
	}
	debug.Info("no clips given, playing %d test tones", len(voices))
	return voices
}

// orbit moves each voice along a circle around the listener, feeding
// position updates to the engine from a control goroutine.
func orbit(engine *mix.Engine, voices []*orbitVoice, radius float64, stop <-chan struct{}) {
	const step = 50 * time.Millisecond
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			for _, v := range voices {
				v.angle += v.rate * step.Seconds()
				v.params.Position = spatial.Vec3{
					X: radius * math.Cos(v.angle),
					Z: radius * math.Sin(v.angle),
				}
				engine.Update(v.id, v.params)
			}
		}
	}
}
