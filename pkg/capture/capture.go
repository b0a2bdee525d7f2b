// Package capture encodes drift frames as PNG snapshots, writes numbered
// frame sequences and runs capture jobs over ranges of combinations.
package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/matzehuels/drift/pkg/errors"
)

// Snapshot is an encoded frame and the file name it should be offered under.
type Snapshot struct {
	Filename string
	Data     []byte
}

var encoder = png.Encoder{CompressionLevel: png.BestSpeed}

// PNG encodes img.
func PNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Write stores s in dir and returns the written path. The file name must be a
// plain base name.
func Write(dir string, s Snapshot) (string, error) {
	if err := errors.ValidateFilename(s.Filename); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, s.Filename)
	if err := os.WriteFile(path, s.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Recorder writes frames as a numbered PNG sequence: <stem>-0001.png, ...
type Recorder struct {
	dir   string
	stem  string
	count int
	paths []string
}

// NewRecorder returns a recorder writing into dir. stem is usually a capture
// file name without its extension.
func NewRecorder(dir, stem string) (*Recorder, error) {
	if err := errors.ValidateFilename(stem); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &Recorder{dir: dir, stem: stem}, nil
}

// Add writes the next frame.
func (r *Recorder) Add(img image.Image) error {
	r.count++
	path := filepath.Join(r.dir, fmt.Sprintf("%s-%04d.png", r.stem, r.count))
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("write frame %d: %w", r.count, err)
	}
	r.paths = append(r.paths, path)
	return nil
}

// Frames returns the paths written so far.
func (r *Recorder) Frames() []string { return r.paths }
