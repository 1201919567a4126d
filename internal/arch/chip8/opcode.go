package chip8

// OpcodeSize is the size of CHIP-8 instructions in bytes.
const OpcodeSize = 2

// Opcode is a raw 16-bit CHIP-8 instruction word.
type Opcode uint16

// NewOpcode returns the big-endian opcode word of the two instruction bytes.
func NewOpcode(high, low byte) Opcode {
	return Opcode(high)<<8 | Opcode(low)
}

// Family returns the top nibble that selects the opcode family.
func (o Opcode) Family() uint8 {
	return uint8(o >> 12 & 0xF)
}

// X returns the first register index nibble.
func (o Opcode) X() Register {
	return Register(o >> 8 & 0xF)
}

// Y returns the second register index nibble.
func (o Opcode) Y() Register {
	return Register(o >> 4 & 0xF)
}

// N returns the lowest nibble.
func (o Opcode) N() uint8 {
	return uint8(o & 0xF)
}

// KK returns the low byte.
func (o Opcode) KK() uint8 {
	return uint8(o & 0xFF)
}

// NNN returns the 12-bit address.
func (o Opcode) NNN() uint16 {
	return uint16(o & 0xFFF)
}
