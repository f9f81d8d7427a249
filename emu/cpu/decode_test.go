package cpu

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word     uint16
		expected Instruction
	}{
		{0x0123, Instruction{Op: SysCall, NNN: 0x123}},
		{0x00E0, Instruction{Op: ClearScreen}},
		{0x00EE, Instruction{Op: Return}},
		{0x1ABC, Instruction{Op: Jump, NNN: 0xABC}},
		{0x2345, Instruction{Op: Call, NNN: 0x345}},
		{0x3312, Instruction{Op: SkipEqual, X: 3, KK: 0x12}},
		{0x4AFF, Instruction{Op: SkipNotEqual, X: 0xA, KK: 0xFF}},
		{0x5120, Instruction{Op: SkipEqualRegister, X: 1, Y: 2}},
		{0x6B0C, Instruction{Op: Load, X: 0xB, KK: 0x0C}},
		{0x7F01, Instruction{Op: Add, X: 0xF, KK: 0x01}},
		{0x8120, Instruction{Op: LoadRegister, X: 1, Y: 2}},
		{0x8121, Instruction{Op: Or, X: 1, Y: 2}},
		{0x8122, Instruction{Op: And, X: 1, Y: 2}},
		{0x8123, Instruction{Op: Xor, X: 1, Y: 2}},
		{0x8124, Instruction{Op: AddRegister, X: 1, Y: 2}},
		{0x8125, Instruction{Op: SubRegister, X: 1, Y: 2}},
		{0x8126, Instruction{Op: ShrRegister, X: 1, Y: 2}},
		{0x8127, Instruction{Op: SubNotBorrowRegister, X: 1, Y: 2}},
		{0x812E, Instruction{Op: ShlRegister, X: 1, Y: 2}},
		{0x9340, Instruction{Op: SkipNotEqualRegister, X: 3, Y: 4}},
		{0xA2F0, Instruction{Op: SetIndex, NNN: 0x2F0}},
		{0xB300, Instruction{Op: JumpIndexed, NNN: 0x300}},
		{0xC70F, Instruction{Op: Random, X: 7, KK: 0x0F}},
		{0xD125, Instruction{Op: Draw, X: 1, Y: 2, N: 5}},
		{0xE59E, Instruction{Op: SkipIfKeyPressed, X: 5}},
		{0xE5A1, Instruction{Op: SkipIfKeyNotPressed, X: 5}},
		{0xF207, Instruction{Op: ReadDelayTimer, X: 2}},
		{0xF20A, Instruction{Op: WaitForKey, X: 2}},
		{0xF215, Instruction{Op: SetDelayTimer, X: 2}},
		{0xF218, Instruction{Op: SetSoundTimer, X: 2}},
		{0xF21E, Instruction{Op: AddIndex, X: 2}},
		{0xF229, Instruction{Op: LoadFontAddress, X: 2}},
		{0xF233, Instruction{Op: StoreBCD, X: 2}},
		{0xF255, Instruction{Op: SaveRegisters, X: 2}},
		{0xF265, Instruction{Op: LoadRegisters, X: 2}},
	}

	seen := map[Op]bool{}
	for _, tt := range tests {
		t.Run(tt.expected.Op.String(), func(t *testing.T) {
			instr, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, instr)
			assert.Equal(t, tt.word, instr.Encode())
		})
		seen[tt.expected.Op] = true
	}
	assert.Equal(t, int(opCount), len(seen))
}

func TestDecodeInvalid(t *testing.T) {
	words := []uint16{
		0x5121, // 5xy0 with non zero low nibble
		0x912F,
		0x8128, 0x8129, 0x812A, 0x812B, 0x812C, 0x812D, 0x812F,
		0xE19F, 0xE1A0, 0xE100,
		0xF100, 0xF108, 0xF130, 0xF1FF,
	}

	for _, word := range words {
		_, err := Decode(word)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrDecode))

		var decodeErr *DecodeError
		assert.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, word, decodeErr.Word)
	}
}

func TestDecodeAllWords(t *testing.T) {
	valid := 0
	for w := 0; w <= 0xFFFF; w++ {
		word := uint16(w)
		instr, err := Decode(word)
		if err != nil {
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("word %04X: unexpected error type %v", word, err)
			}
			continue
		}
		valid++
		if got := instr.Encode(); got != word {
			t.Fatalf("word %04X re-encodes to %04X (%s)", word, got, instr)
		}
	}

	// 4096 for each of the groups 0-4, 6, 7 and A-D, 256 for 5xy0 and
	// 9xy0, 9*256 for 8xyn, 16 for each of the 2 + 9 keyed E/F forms.
	expected := 11*4096 + 2*256 + 9*256 + 11*16
	assert.Equal(t, expected, valid)
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x0123, "SYS 0x123"},
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1200, "JP 0x200"},
		{0x2ABC, "CALL 0xABC"},
		{0x3312, "SE V3, 0x12"},
		{0x4312, "SNE V3, 0x12"},
		{0x5AB0, "SE VA, VB"},
		{0x6012, "LD V0, 0x12"},
		{0x70FF, "ADD V0, 0xFF"},
		{0x8AB0, "LD VA, VB"},
		{0x8AB1, "OR VA, VB"},
		{0x8AB2, "AND VA, VB"},
		{0x8AB3, "XOR VA, VB"},
		{0x8AB4, "ADD VA, VB"},
		{0x8AB5, "SUB VA, VB"},
		{0x8AB6, "SHR VA, VB"},
		{0x8AB7, "SUBN VA, VB"},
		{0x8ABE, "SHL VA, VB"},
		{0x9AB0, "SNE VA, VB"},
		{0xA123, "LD I, 0x123"},
		{0xB123, "JP V0, 0x123"},
		{0xC30F, "RND V3, 0x0F"},
		{0xD12F, "DRW V1, V2, 0xF"},
		{0xE39E, "SKP V3"},
		{0xE3A1, "SKNP V3"},
		{0xF307, "LD V3, DT"},
		{0xF30A, "LD V3, K"},
		{0xF315, "LD DT, V3"},
		{0xF318, "LD ST, V3"},
		{0xF31E, "ADD I, V3"},
		{0xF329, "LD F, V3"},
		{0xF333, "LD B, V3"},
		{0xF355, "LD [I], V3"},
		{0xF365, "LD V3, [I]"},
	}

	rendered := map[string]uint16{}
	for _, tt := range tests {
		instr, err := Decode(tt.word)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, instr.String())

		if prev, ok := rendered[tt.expected]; ok {
			t.Errorf("words %04X and %04X render identically", prev, tt.word)
		}
		rendered[tt.expected] = tt.word
	}
}
