// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/retroenv/c8dc/internal/detector"
	"github.com/retroenv/c8dc/internal/program"
)

var (
	// ErrRomNotFound is returned when the ROM file does not exist.
	ErrRomNotFound = errors.New("rom not found")
	// ErrRomUnreadable is returned when the ROM file can not be opened or read.
	ErrRomUnreadable = errors.New("rom unreadable")
)

// Loader handles loading ROM files from disk into a program image.
type Loader struct {
	detector *detector.Detector
}

// New creates a new ROM loader that uses the detector to choose the memory layout.
func New(detector *detector.Detector) *Loader {
	return &Loader{
		detector: detector,
	}
}

// Load reads the ROM file and places its bytes at the load address.
func (l *Loader) Load(path string) (*program.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrRomNotFound, err)
		}
		return nil, fmt.Errorf("%w: opening file %s: %w", ErrRomUnreadable, path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: reading file info %s: %w", ErrRomUnreadable, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrRomUnreadable, path)
	}

	img, err := l.LoadFromReader(file, int(info.Size()))
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", path, err)
	}
	return img, nil
}

// LoadFromReader reads size ROM bytes from the reader into a new image.
func (l *Loader) LoadFromReader(reader io.Reader, size int) (*program.Image, error) {
	layout := l.detector.Detect(size)

	img, err := program.New(layout, size)
	if err != nil {
		return nil, fmt.Errorf("allocating image: %w", err)
	}

	if _, err := io.ReadFull(reader, img.ROM()); err != nil {
		img.Release()
		return nil, fmt.Errorf("%w: reading rom data: %w", ErrRomUnreadable, err)
	}
	return img, nil
}
