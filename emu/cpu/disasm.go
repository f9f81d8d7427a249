package cpu

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// mnemonic returns the upper case instruction name as used in listings.
func mnemonic(ins *chip8.Instruction) string {
	return strings.ToUpper(ins.Name)
}

// String returns the canonical assembly form of the instruction.
func (i Instruction) String() string {
	switch i.Op {
	case SysCall:
		return fmt.Sprintf("SYS 0x%03X", uint16(i.NNN))
	case ClearScreen:
		return mnemonic(chip8.Cls)
	case Return:
		return mnemonic(chip8.Ret)
	case Jump:
		return fmt.Sprintf("%s 0x%03X", mnemonic(chip8.Jp), uint16(i.NNN))
	case Call:
		return fmt.Sprintf("%s 0x%03X", mnemonic(chip8.Call), uint16(i.NNN))
	case SkipEqual:
		return i.registerByte(chip8.Se)
	case SkipNotEqual:
		return i.registerByte(chip8.Sne)
	case SkipEqualRegister:
		return i.registerPair(chip8.Se)
	case Load:
		return i.registerByte(chip8.Ld)
	case Add:
		return i.registerByte(chip8.Add)
	case LoadRegister:
		return i.registerPair(chip8.Ld)
	case Or:
		return i.registerPair(chip8.Or)
	case And:
		return i.registerPair(chip8.And)
	case Xor:
		return i.registerPair(chip8.Xor)
	case AddRegister:
		return i.registerPair(chip8.Add)
	case SubRegister:
		return i.registerPair(chip8.Sub)
	case ShrRegister:
		return i.registerPair(chip8.Shr)
	case SubNotBorrowRegister:
		return i.registerPair(chip8.Subn)
	case ShlRegister:
		return i.registerPair(chip8.Shl)
	case SkipNotEqualRegister:
		return i.registerPair(chip8.Sne)
	case SetIndex:
		return fmt.Sprintf("%s I, 0x%03X", mnemonic(chip8.Ld), uint16(i.NNN))
	case JumpIndexed:
		return fmt.Sprintf("%s V0, 0x%03X", mnemonic(chip8.Jp), uint16(i.NNN))
	case Random:
		return i.registerByte(chip8.Rnd)
	case Draw:
		return fmt.Sprintf("%s V%X, V%X, 0x%X", mnemonic(chip8.Drw), i.X, i.Y, i.N)
	case SkipIfKeyPressed:
		return fmt.Sprintf("%s V%X", mnemonic(chip8.Skp), i.X)
	case SkipIfKeyNotPressed:
		return fmt.Sprintf("%s V%X", mnemonic(chip8.Sknp), i.X)
	case ReadDelayTimer:
		return fmt.Sprintf("%s V%X, DT", mnemonic(chip8.Ld), i.X)
	case WaitForKey:
		return fmt.Sprintf("%s V%X, K", mnemonic(chip8.Ld), i.X)
	case SetDelayTimer:
		return fmt.Sprintf("%s DT, V%X", mnemonic(chip8.Ld), i.X)
	case SetSoundTimer:
		return fmt.Sprintf("%s ST, V%X", mnemonic(chip8.Ld), i.X)
	case AddIndex:
		return fmt.Sprintf("%s I, V%X", mnemonic(chip8.Add), i.X)
	case LoadFontAddress:
		return fmt.Sprintf("%s F, V%X", mnemonic(chip8.Ld), i.X)
	case StoreBCD:
		return fmt.Sprintf("%s B, V%X", mnemonic(chip8.Ld), i.X)
	case SaveRegisters:
		return fmt.Sprintf("%s [I], V%X", mnemonic(chip8.Ld), i.X)
	case LoadRegisters:
		return fmt.Sprintf("%s V%X, [I]", mnemonic(chip8.Ld), i.X)
	}
	return fmt.Sprintf("DW 0x%04X", i.Encode())
}

func (i Instruction) registerByte(ins *chip8.Instruction) string {
	return fmt.Sprintf("%s V%X, 0x%02X", mnemonic(ins), i.X, i.KK)
}

func (i Instruction) registerPair(ins *chip8.Instruction) string {
	return fmt.Sprintf("%s V%X, V%X", mnemonic(ins), i.X, i.Y)
}
