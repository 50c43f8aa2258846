package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile loads a clip from disk, dispatching on the file extension.
func LoadFile(path string) (*Clip, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: opening %s: %w", path, err)
	}
	defer f.Close()

	if ext == ".mp3" {
		return LoadMP3(f)
	}
	return LoadWAV(f)
}
