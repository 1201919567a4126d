package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies the decoded instruction variant.
type Kind uint8

// Instruction kinds, one per opcode family and sub-opcode.
const (
	Unknown Kind = iota
	Cls          // 00E0
	Ret          // 00EE
	Sys          // 0nnn
	Jp           // 1nnn
	Call         // 2nnn
	SeByte       // 3xkk
	SneByte      // 4xkk
	SeReg        // 5xy0
	LdByte       // 6xkk
	AddByte      // 7xkk
	LdReg        // 8xy0
	Or           // 8xy1
	And          // 8xy2
	Xor          // 8xy3
	AddReg       // 8xy4
	Sub          // 8xy5
	Shr          // 8xy6
	Subn         // 8xy7
	Shl          // 8xyE
	SneReg       // 9xy0
	LdI          // Annn
	JpV0         // Bnnn
	Rnd          // Cxkk
	Drw          // Dxyn
	Skp          // Ex9E
	Sknp         // ExA1
	LdVxDT       // Fx07
	LdVxK        // Fx0A
	LdDTVx       // Fx15
	LdSTVx       // Fx18
	AddIVx       // Fx1E
	LdFVx        // Fx29
	LdBVx        // Fx33
	LdIVx        // Fx55
	LdVxI        // Fx65

	kindCount
)

// sysName is the mnemonic of the legacy machine code call, which has no
// descriptor in the CPU instruction set.
const sysName = "sys"

var kindNames = [kindCount]string{
	"unknown", "cls", "ret", "sys", "jp", "call", "se byte", "sne byte", "se reg",
	"ld byte", "add byte", "ld reg", "or", "and", "xor", "add reg", "sub", "shr", "subn",
	"shl", "sne reg", "ld i", "jp v0", "rnd", "drw", "skp", "sknp", "ld vx dt", "ld vx k",
	"ld dt vx", "ld st vx", "add i vx", "ld f vx", "ld b vx", "ld [i] vx", "ld vx [i]",
}

// cpuInstructions maps every kind to its CPU instruction descriptor.
var cpuInstructions = map[Kind]*chip8.Instruction{
	Cls:     chip8.Cls,
	Ret:     chip8.Ret,
	Jp:      chip8.Jp,
	JpV0:    chip8.Jp,
	Call:    chip8.Call,
	SeByte:  chip8.Se,
	SeReg:   chip8.Se,
	SneByte: chip8.Sne,
	SneReg:  chip8.Sne,
	LdByte:  chip8.Ld,
	LdReg:   chip8.Ld,
	LdI:     chip8.Ld,
	LdVxDT:  chip8.Ld,
	LdVxK:   chip8.Ld,
	LdDTVx:  chip8.Ld,
	LdSTVx:  chip8.Ld,
	LdFVx:   chip8.Ld,
	LdBVx:   chip8.Ld,
	LdIVx:   chip8.Ld,
	LdVxI:   chip8.Ld,
	AddByte: chip8.Add,
	AddReg:  chip8.Add,
	AddIVx:  chip8.Add,
	Or:      chip8.Or,
	And:     chip8.And,
	Xor:     chip8.Xor,
	Sub:     chip8.Sub,
	Subn:    chip8.Subn,
	Shr:     chip8.Shr,
	Shl:     chip8.Shl,
	Rnd:     chip8.Rnd,
	Drw:     chip8.Drw,
	Skp:     chip8.Skp,
	Sknp:    chip8.Sknp,
}

// String returns a descriptive name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// CPUInstruction returns the CPU instruction descriptor of the kind.
// It returns nil for Sys and Unknown.
func (k Kind) CPUInstruction() *chip8.Instruction {
	return cpuInstructions[k]
}

// Mnemonic returns the assembly mnemonic of the kind, or an empty string for Unknown.
func (k Kind) Mnemonic() string {
	if k == Sys {
		return sysName
	}
	if ins := k.CPUInstruction(); ins != nil {
		return ins.Name
	}
	return ""
}

// Register is a general purpose register index V0-VF.
type Register uint8

// String returns the assembly name of the register.
func (r Register) String() string {
	return fmt.Sprintf("v%X", uint8(r))
}

// Instruction is a decoded CHIP-8 instruction. Only the operand fields used by
// the Kind are set, all others are zero. Word always holds the raw opcode.
type Instruction struct {
	Kind Kind
	Word Opcode

	X   Register // first register operand
	Y   Register // second register operand
	N   uint8    // 4-bit immediate
	KK  uint8    // 8-bit immediate
	NNN uint16   // 12-bit address
}

// IsUnknown returns true if the word did not match any defined encoding.
func (i Instruction) IsUnknown() bool {
	return i.Kind == Unknown
}

// Name returns the instruction mnemonic.
func (i Instruction) Name() string {
	return i.Kind.Mnemonic()
}

// String returns the mnemonic and operands of the instruction.
// Unknown instructions are returned as the raw 4 digit hex word.
func (i Instruction) String() string {
	if i.IsUnknown() {
		return fmt.Sprintf("%04X", uint16(i.Word))
	}
	operands := i.Operands()
	if operands == "" {
		return i.Name()
	}
	return fmt.Sprintf("%-4s %s", i.Name(), operands)
}
