// Package chip8 provides the CHIP-8 instruction decoder and mnemonic formatter.
//
// # Instruction Set
//
// All CHIP-8 instructions are 2 bytes (16 bits), stored big-endian. The top nibble
// selects one of 16 opcode families, several of which use the low nibble or the
// low byte as a secondary selector:
//   - 0x0: CLS, RET, SYS addr
//   - 0x1-0x4, 0x6, 0x7, 0xA-0xD: single instruction families
//   - 0x5, 0x9: register compares, only valid with a zero low nibble
//   - 0x8: register ALU operations selected by the low nibble
//   - 0xE: key skips selected by the low byte
//   - 0xF: timer, key, index and memory operations selected by the low byte
//
// Operand fields are extracted by masking the opcode word:
//
//	x   = word>>8 & 0xF   register index
//	y   = word>>4 & 0xF   register index
//	n   = word & 0xF      4-bit immediate
//	kk  = word & 0xFF     8-bit immediate
//	nnn = word & 0xFFF    12-bit address
//
// # Unknown Opcodes
//
// Words that match no defined encoding decode to an Instruction of kind Unknown that
// keeps the raw word. Decoding never fails.
//
// # Usage Example
//
//	ins := chip8.Decode(0x6A3F)
//	fmt.Println(chip8.Format(0x200, 0x6A3F, ins))
//	// 0x0200:	6A3F	ld   vA, 0x3F (63)
package chip8
