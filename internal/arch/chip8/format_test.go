package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		address  uint16
		word     uint16
		expected string
	}{
		{"CLS", 0x200, 0x00E0, "0x0200:\t00E0\tcls"},
		{"RET", 0x202, 0x00EE, "0x0202:\t00EE\tret"},
		{"SYS", 0x204, 0x0123, "0x0204:\t0123\tsys  0x123 (291)"},
		{"JP", 0x200, 0x1200, "0x0200:\t1200\tjp   0x200 (512)"},
		{"CALL", 0x206, 0x2ABC, "0x0206:\t2ABC\tcall 0xABC (2748)"},
		{"SE Vx, byte", 0x208, 0x3A12, "0x0208:\t3A12\tse   vA, 0x12 (18)"},
		{"SNE Vx, byte", 0x20A, 0x4BFF, "0x020A:\t4BFF\tsne  vB, 0xFF (255)"},
		{"SE Vx, Vy", 0x20C, 0x5120, "0x020C:\t5120\tse   v1, v2"},
		{"LD Vx, byte", 0x20E, 0x6A3F, "0x020E:\t6A3F\tld   vA, 0x3F (63)"},
		{"ADD Vx, byte", 0x210, 0x7C01, "0x0210:\t7C01\tadd  vC, 0x01 (1)"},
		{"LD Vx, Vy", 0x212, 0x8AB0, "0x0212:\t8AB0\tld   vA, vB"},
		{"OR", 0x214, 0x8AB1, "0x0214:\t8AB1\tor   vA, vB"},
		{"AND", 0x216, 0x8AB2, "0x0216:\t8AB2\tand  vA, vB"},
		{"XOR", 0x218, 0x8AB3, "0x0218:\t8AB3\txor  vA, vB"},
		{"ADD Vx, Vy", 0x21A, 0x8AB4, "0x021A:\t8AB4\tadd  vA, vB"},
		{"SUB", 0x21C, 0x8AB5, "0x021C:\t8AB5\tsub  vA, vB"},
		{"SHR", 0x21E, 0x8AB6, "0x021E:\t8AB6\tshr  vA"},
		{"SUBN", 0x220, 0x8AB7, "0x0220:\t8AB7\tsubn vA, vB"},
		{"SHL", 0x222, 0x8ABE, "0x0222:\t8ABE\tshl  vA"},
		{"SNE Vx, Vy", 0x224, 0x9E50, "0x0224:\t9E50\tsne  vE, v5"},
		{"LD I", 0x226, 0xA234, "0x0226:\tA234\tld   I, 0x234 (564)"},
		{"JP V0", 0x228, 0xB00A, "0x0228:\tB00A\tjp   v0, 0x00A (10)"},
		{"RND", 0x22A, 0xC30F, "0x022A:\tC30F\trnd  v3, 0x0F (15)"},
		{"DRW", 0x22C, 0xD123, "0x022C:\tD123\tdrw  v1, v2, 0x3 (3)"},
		{"SKP", 0x22E, 0xE19E, "0x022E:\tE19E\tskp  v1"},
		{"SKNP", 0x230, 0xE2A1, "0x0230:\tE2A1\tsknp v2"},
		{"LD Vx, DT", 0x232, 0xF307, "0x0232:\tF307\tld   v3, DT"},
		{"LD Vx, K", 0x234, 0xF40A, "0x0234:\tF40A\tld   v4, K"},
		{"LD DT, Vx", 0x236, 0xF515, "0x0236:\tF515\tld   DT, v5"},
		{"LD ST, Vx", 0x238, 0xF618, "0x0238:\tF618\tld   ST, v6"},
		{"ADD I, Vx", 0x23A, 0xF71E, "0x023A:\tF71E\tadd  I, v7"},
		{"LD F, Vx", 0x23C, 0xF829, "0x023C:\tF829\tld   F, v8"},
		{"LD B, Vx", 0x23E, 0xFA33, "0x023E:\tFA33\tld   B, vA"},
		{"LD [I], Vx", 0x240, 0xFB55, "0x0240:\tFB55\tld   [I], vB"},
		{"LD Vx, [I]", 0x242, 0xFC65, "0x0242:\tFC65\tld   vC, [I]"},
		{"LD Vx, VF", 0x244, 0x85F0, "0x0244:\t85F0\tld   v5, vF"},
		{"unknown ALU", 0x246, 0x85F8, "0x0246:\t85F8"},
		{"unknown key skip", 0xFFE, 0xE000, "0x0FFE:\tE000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.address, tt.word, Decode(tt.word))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	for _, word := range []uint16{0x00E0, 0x1200, 0x6A3F, 0x85F0, 0xD123, 0xFA33} {
		ins := Decode(word)
		first := Format(0x200, word, ins)
		second := Format(0x200, word, ins)
		assert.Equal(t, first, second)
	}
}

func TestLine(t *testing.T) {
	line := NewLine(0x200, 0x1200)

	assert.Equal(t, uint16(0x200), line.Address)
	assert.Equal(t, uint16(0x1200), line.Word)
	assert.Equal(t, Jp, line.Instruction.Kind)
	assert.Equal(t, "0x0200:\t1200\tjp   0x200 (512)", line.String())
}

func TestInstruction_Operands(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected string
	}{
		{"no operands", 0x00E0, ""},
		{"address", 0x1234, "0x234 (564)"},
		{"register and byte", 0x6234, "v2, 0x34 (52)"},
		{"register pair", 0x8230, "v2, v3"},
		{"single register", 0x8236, "v2"},
		{"draw", 0xD235, "v2, v3, 0x5 (5)"},
		{"unknown", 0xE000, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word).Operands())
		})
	}
}
