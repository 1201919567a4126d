package chip8

// Decode decodes a 16-bit instruction word. It never fails, words that match no
// defined encoding are returned as an Instruction of kind Unknown.
func Decode(word uint16) Instruction {
	op := Opcode(word)

	switch op.Family() {
	case 0x0:
		switch word {
		case 0x00E0:
			return Instruction{Kind: Cls, Word: op}
		case 0x00EE:
			return Instruction{Kind: Ret, Word: op}
		}
		return addressInstruction(Sys, op)
	case 0x1:
		return addressInstruction(Jp, op)
	case 0x2:
		return addressInstruction(Call, op)
	case 0x3:
		return byteInstruction(SeByte, op)
	case 0x4:
		return byteInstruction(SneByte, op)
	case 0x5:
		if op.N() == 0x0 {
			return registerPairInstruction(SeReg, op)
		}
	case 0x6:
		return byteInstruction(LdByte, op)
	case 0x7:
		return byteInstruction(AddByte, op)
	case 0x8:
		return decodeALU(op)
	case 0x9:
		if op.N() == 0x0 {
			return registerPairInstruction(SneReg, op)
		}
	case 0xA:
		return addressInstruction(LdI, op)
	case 0xB:
		return addressInstruction(JpV0, op)
	case 0xC:
		return byteInstruction(Rnd, op)
	case 0xD:
		return Instruction{Kind: Drw, Word: op, X: op.X(), Y: op.Y(), N: op.N()}
	case 0xE:
		return decodeKeySkip(op)
	case 0xF:
		return decodeMisc(op)
	}

	return Instruction{Kind: Unknown, Word: op}
}

// aluKinds maps the low nibble of family 0x8 to the instruction kind.
var aluKinds = map[uint8]Kind{
	0x0: LdReg,
	0x1: Or,
	0x2: And,
	0x3: Xor,
	0x4: AddReg,
	0x5: Sub,
	0x6: Shr,
	0x7: Subn,
	0xE: Shl,
}

// miscKinds maps the low byte of family 0xF to the instruction kind.
var miscKinds = map[uint8]Kind{
	0x07: LdVxDT,
	0x0A: LdVxK,
	0x15: LdDTVx,
	0x18: LdSTVx,
	0x1E: AddIVx,
	0x29: LdFVx,
	0x33: LdBVx,
	0x55: LdIVx,
	0x65: LdVxI,
}

func decodeALU(op Opcode) Instruction {
	kind, ok := aluKinds[op.N()]
	if !ok {
		return Instruction{Kind: Unknown, Word: op}
	}
	if kind == Shr || kind == Shl {
		return registerInstruction(kind, op)
	}
	return registerPairInstruction(kind, op)
}

func decodeKeySkip(op Opcode) Instruction {
	switch op.KK() {
	case 0x9E:
		return registerInstruction(Skp, op)
	case 0xA1:
		return registerInstruction(Sknp, op)
	default:
		return Instruction{Kind: Unknown, Word: op}
	}
}

func decodeMisc(op Opcode) Instruction {
	kind, ok := miscKinds[op.KK()]
	if !ok {
		return Instruction{Kind: Unknown, Word: op}
	}
	return registerInstruction(kind, op)
}

func addressInstruction(kind Kind, op Opcode) Instruction {
	return Instruction{Kind: kind, Word: op, NNN: op.NNN()}
}

func byteInstruction(kind Kind, op Opcode) Instruction {
	return Instruction{Kind: kind, Word: op, X: op.X(), KK: op.KK()}
}

func registerInstruction(kind Kind, op Opcode) Instruction {
	return Instruction{Kind: kind, Word: op, X: op.X()}
}

func registerPairInstruction(kind Kind, op Opcode) Instruction {
	return Instruction{Kind: kind, Word: op, X: op.X(), Y: op.Y()}
}
