// Package detector handles memory layout detection for ROM images.
package detector

import (
	"github.com/retroenv/c8dc/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles memory layout detection from the ROM size.
type Detector struct {
	logger *log.Logger
}

// New creates a new layout detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the memory layout for a ROM of the given size.
// ROMs at or above the extended threshold get a buffer sized to their length,
// all others use the standard 4096 byte address space.
func (d *Detector) Detect(romSize int) program.Layout {
	layout := program.StandardLayout
	if romSize >= program.ExtendedThreshold {
		layout = program.ExtendedLayout
	}

	d.logger.Debug("Detected memory layout",
		log.Stringer("layout", layout),
		log.Int("rom_size", romSize))
	return layout
}
