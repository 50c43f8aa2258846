package render

import "errors"

var (
	// ErrNotWavFile is returned when the input is not a RIFF/WAVE stream.
	ErrNotWavFile = errors.New("render: not a wav file")

	// ErrEmptyClip is returned when a decoded file holds no samples.
	ErrEmptyClip = errors.New("render: clip holds no samples")

	// ErrUnsupportedFormat is returned for file extensions without a
	// registered loader.
	ErrUnsupportedFormat = errors.New("render: unsupported format")
)
