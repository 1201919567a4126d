package program

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// LoadAddress is the memory address the ROM bytes are loaded to.
	LoadAddress = 0x200

	// StandardMemorySize is the size of the standard CHIP-8 address space.
	StandardMemorySize = 0x1000

	// ExtendedThreshold is the ROM size at which the extended memory convention is used.
	ExtendedThreshold = 0xE00

	// AddressSpaceSize is the size of the addressable memory using 16-bit addresses.
	AddressSpaceSize = 0x10000
)

// Layout defines the memory layout used for a ROM image.
type Layout uint8

// memory layouts.
const (
	StandardLayout Layout = iota // 4096 byte address space
	ExtendedLayout               // buffer sized to the load address plus the ROM size
)

// String returns the name of the layout.
func (l Layout) String() string {
	switch l {
	case StandardLayout:
		return "standard"
	case ExtendedLayout:
		return "extended"
	default:
		return "unknown"
	}
}

// MemorySize returns the buffer size required for a ROM of the given size.
func (l Layout) MemorySize(romSize int) int {
	if l == ExtendedLayout {
		return LoadAddress + romSize
	}
	return StandardMemorySize
}
