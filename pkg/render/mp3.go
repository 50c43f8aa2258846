package render

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// LoadMP3 decodes an MP3 stream into a mono clip. go-mp3 always emits
// 16-bit little-endian stereo, so the two channels are averaged.
func LoadMP3(r io.Reader) (*Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("render: decoding mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("render: reading mp3 pcm: %w", err)
	}

	// 4 bytes per stereo frame: two int16 samples
	frames := len(raw) / 4
	if frames == 0 {
		return nil, ErrEmptyClip
	}

	data := make([]float32, frames)
	for f := 0; f < frames; f++ {
		b := raw[f*4:]
		left := int16(uint16(b[0]) | uint16(b[1])<<8)
		right := int16(uint16(b[2]) | uint16(b[3])<<8)
		data[f] = (float32(left) + float32(right)) / (2.0 * 32768.0)
	}

	return &Clip{
		Data:       data,
		SampleRate: dec.SampleRate(),
	}, nil
}
