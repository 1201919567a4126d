package chip8

import "fmt"

// Line is a decoded instruction at its memory address.
type Line struct {
	Address     uint16
	Word        uint16
	Instruction Instruction
}

// NewLine decodes the word found at the given address.
func NewLine(address, word uint16) Line {
	return Line{
		Address:     address,
		Word:        word,
		Instruction: Decode(word),
	}
}

// String returns the formatted listing line.
func (l Line) String() string {
	return Format(l.Address, l.Word, l.Instruction)
}

// Format renders an instruction as a listing line of the form
//
//	0x0200:	6A3F	ld   vA, 0x3F (63)
//
// Unknown instructions only print the address and the raw word.
func Format(address, word uint16, ins Instruction) string {
	prefix := fmt.Sprintf("0x%04X:\t%04X", address, word)
	if ins.IsUnknown() {
		return prefix
	}
	return prefix + "\t" + ins.String()
}

// Operands returns the formatted operand list of the instruction.
func (i Instruction) Operands() string {
	switch i.Kind {
	case Cls, Ret, Unknown:
		return ""

	case Sys, Jp, Call:
		return formatAddress(i.NNN)
	case JpV0:
		return fmt.Sprintf("v0, %s", formatAddress(i.NNN))
	case LdI:
		return fmt.Sprintf("I, %s", formatAddress(i.NNN))

	case SeByte, SneByte, LdByte, AddByte, Rnd:
		return fmt.Sprintf("%s, %s", i.X, formatByte(i.KK))

	case SeReg, SneReg, LdReg, Or, And, Xor, AddReg, Sub, Subn:
		return fmt.Sprintf("%s, %s", i.X, i.Y)

	case Shr, Shl, Skp, Sknp:
		return i.X.String()

	case Drw:
		return fmt.Sprintf("%s, %s, 0x%X (%d)", i.X, i.Y, i.N, i.N)

	case LdVxDT:
		return fmt.Sprintf("%s, DT", i.X)
	case LdVxK:
		return fmt.Sprintf("%s, K", i.X)
	case LdDTVx:
		return fmt.Sprintf("DT, %s", i.X)
	case LdSTVx:
		return fmt.Sprintf("ST, %s", i.X)
	case AddIVx:
		return fmt.Sprintf("I, %s", i.X)
	case LdFVx:
		return fmt.Sprintf("F, %s", i.X)
	case LdBVx:
		return fmt.Sprintf("B, %s", i.X)
	case LdIVx:
		return fmt.Sprintf("[I], %s", i.X)
	case LdVxI:
		return fmt.Sprintf("%s, [I]", i.X)

	default:
		return ""
	}
}

func formatByte(value uint8) string {
	return fmt.Sprintf("0x%02X (%d)", value, value)
}

func formatAddress(address uint16) string {
	return fmt.Sprintf("0x%03X (%d)", address, address)
}
