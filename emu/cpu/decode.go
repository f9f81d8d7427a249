package cpu

// Decode converts an instruction word into an Instruction.
// Words with an unknown secondary discriminator in their group return
// a *DecodeError.
func Decode(word uint16) (Instruction, error) {
	op := word >> 12
	x := Register((word & 0x0F00) >> 8)
	y := Register((word & 0x00F0) >> 4)
	n := uint8(word & 0x000F)
	kk := uint8(word & 0x00FF)
	nnn := Address(word & 0x0FFF)

	switch op {
	case 0x0:
		switch word {
		case 0x00E0:
			return Instruction{Op: ClearScreen}, nil
		case 0x00EE:
			return Instruction{Op: Return}, nil
		}
		return Instruction{Op: SysCall, NNN: nnn}, nil

	case 0x1:
		return Instruction{Op: Jump, NNN: nnn}, nil

	case 0x2:
		return Instruction{Op: Call, NNN: nnn}, nil

	case 0x3:
		return Instruction{Op: SkipEqual, X: x, KK: kk}, nil

	case 0x4:
		return Instruction{Op: SkipNotEqual, X: x, KK: kk}, nil

	case 0x5:
		if n != 0 {
			break
		}
		return Instruction{Op: SkipEqualRegister, X: x, Y: y}, nil

	case 0x6:
		return Instruction{Op: Load, X: x, KK: kk}, nil

	case 0x7:
		return Instruction{Op: Add, X: x, KK: kk}, nil

	case 0x8:
		if alu, ok := aluOps[n]; ok {
			return Instruction{Op: alu, X: x, Y: y}, nil
		}

	case 0x9:
		if n != 0 {
			break
		}
		return Instruction{Op: SkipNotEqualRegister, X: x, Y: y}, nil

	case 0xA:
		return Instruction{Op: SetIndex, NNN: nnn}, nil

	case 0xB:
		return Instruction{Op: JumpIndexed, NNN: nnn}, nil

	case 0xC:
		return Instruction{Op: Random, X: x, KK: kk}, nil

	case 0xD:
		return Instruction{Op: Draw, X: x, Y: y, N: n}, nil

	case 0xE:
		switch kk {
		case 0x9E:
			return Instruction{Op: SkipIfKeyPressed, X: x}, nil
		case 0xA1:
			return Instruction{Op: SkipIfKeyNotPressed, X: x}, nil
		}

	case 0xF:
		if misc, ok := miscOps[kk]; ok {
			return Instruction{Op: misc, X: x}, nil
		}
	}

	return Instruction{}, &DecodeError{Word: word}
}

// aluOps maps the low nibble of 8xyn words.
var aluOps = map[uint8]Op{
	0x0: LoadRegister,
	0x1: Or,
	0x2: And,
	0x3: Xor,
	0x4: AddRegister,
	0x5: SubRegister,
	0x6: ShrRegister,
	0x7: SubNotBorrowRegister,
	0xE: ShlRegister,
}

// miscOps maps the low byte of Fxkk words.
var miscOps = map[uint8]Op{
	0x07: ReadDelayTimer,
	0x0A: WaitForKey,
	0x15: SetDelayTimer,
	0x18: SetSoundTimer,
	0x1E: AddIndex,
	0x29: LoadFontAddress,
	0x33: StoreBCD,
	0x55: SaveRegisters,
	0x65: LoadRegisters,
}
