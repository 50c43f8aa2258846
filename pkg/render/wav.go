package render

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// LoadWAV decodes a PCM WAV stream into a mono clip. Multichannel files
// are downmixed by averaging.
func LoadWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("render: decoding wav: %w", err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, ErrEmptyClip
	}

	data := downmixBuffer(buf, int(dec.BitDepth))
	if len(data) == 0 {
		return nil, ErrEmptyClip
	}

	return &Clip{
		Data:       data,
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// downmixBuffer folds a decoded PCM buffer to mono float32.
func downmixBuffer(buf *audio.IntBuffer, bitDepth int) []float32 {
	return downmixMono(buf.Data, buf.Format.NumChannels, bitDepth)
}
