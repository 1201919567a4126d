// Package program represents a CHIP-8 program image loaded into memory.
package program

import (
	"errors"
	"fmt"

	"github.com/retroenv/c8dc/internal/arch/chip8"
)

var (
	// ErrRomTooLarge is returned when the ROM does not fit into the address space.
	ErrRomTooLarge = errors.New("rom does not fit into address space")
	// ErrOutOfBounds is returned when reading past the loaded ROM.
	ErrOutOfBounds = errors.New("address outside of loaded rom")
)

// Image is a ROM loaded into memory at LoadAddress. The memory before the
// load address is reserved for the interpreter and left zeroed.
type Image struct {
	memory []byte
	size   int // number of loaded ROM bytes
	layout Layout
}

// New allocates an image for a ROM of the given size. The ROM bytes have to be
// copied to the slice returned by ROM.
func New(layout Layout, romSize int) (*Image, error) {
	if romSize < 0 {
		return nil, fmt.Errorf("invalid rom size %d", romSize)
	}

	memorySize := layout.MemorySize(romSize)
	if memorySize > AddressSpaceSize || LoadAddress+romSize > memorySize {
		return nil, fmt.Errorf("%w: %d bytes using %s layout", ErrRomTooLarge, romSize, layout)
	}

	return &Image{
		memory: make([]byte, memorySize),
		size:   romSize,
		layout: layout,
	}, nil
}

// ROM returns the memory window that holds the ROM bytes.
func (img *Image) ROM() []byte {
	if img.memory == nil {
		return nil
	}
	return img.memory[LoadAddress : LoadAddress+img.size]
}

// Size returns the number of loaded ROM bytes.
func (img *Image) Size() int {
	return img.size
}

// Layout returns the memory layout of the image.
func (img *Image) Layout() Layout {
	return img.layout
}

// MemorySize returns the size of the memory buffer.
func (img *Image) MemorySize() int {
	return len(img.memory)
}

// End returns the first address after the loaded ROM.
func (img *Image) End() int {
	return LoadAddress + img.size
}

// Word reads the big-endian instruction word at the given address.
// Both bytes have to be part of the loaded ROM.
func (img *Image) Word(address uint16) (uint16, error) {
	addr := int(address)
	if addr < LoadAddress || addr+1 >= img.End() {
		return 0, fmt.Errorf("%w: reading word at 0x%04X", ErrOutOfBounds, address)
	}
	return uint16(chip8.NewOpcode(img.memory[addr], img.memory[addr+1])), nil
}

// Release drops the memory buffer, the image can not be read afterwards.
func (img *Image) Release() {
	img.memory = nil
	img.size = 0
}
