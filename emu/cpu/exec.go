package cpu

import "fmt"

// Execute applies the instruction to the VM state. The program counter
// is expected to already point at the following instruction.
func (emu *EMU) Execute(instr Instruction) error {
	x, y, kk, nnn := instr.X&0xF, instr.Y&0xF, instr.KK, uint16(instr.NNN)&addressMask

	switch instr.Op {
	case SysCall:
		// machine code routines are not supported by modern interpreters
		return nil

	case ClearScreen:
		emu.display.Clear()

	case Return:
		return emu.ret()

	case Jump:
		emu.pc = nnn

	case Call:
		return emu.call(nnn)

	case SkipEqual:
		emu.skipIf(emu.V[x] == kk)

	case SkipNotEqual:
		emu.skipIf(emu.V[x] != kk)

	case SkipEqualRegister:
		emu.skipIf(emu.V[x] == emu.V[y])

	case Load:
		emu.V[x] = kk

	case Add:
		// no carry flag for the immediate form
		emu.V[x] += kk

	case LoadRegister:
		emu.V[x] = emu.V[y]

	case Or:
		emu.V[x] |= emu.V[y]

	case And:
		emu.V[x] &= emu.V[y]

	case Xor:
		emu.V[x] ^= emu.V[y]

	case AddRegister:
		sum := uint16(emu.V[x]) + uint16(emu.V[y])
		emu.setFlag(sum > 0xFF)
		emu.V[x] = uint8(sum)

	case SubRegister:
		vx, vy := emu.V[x], emu.V[y]
		emu.setFlag(vx > vy)
		emu.V[x] = vx - vy

	case ShrRegister:
		vx := emu.V[x]
		emu.setFlag(vx&0x01 != 0)
		emu.V[x] = vx >> 1

	case SubNotBorrowRegister:
		vx, vy := emu.V[x], emu.V[y]
		emu.setFlag(vy > vx)
		emu.V[x] = vy - vx

	case ShlRegister:
		vx := emu.V[x]
		emu.setFlag(vx&0x80 != 0)
		emu.V[x] = vx << 1

	case SkipNotEqualRegister:
		emu.skipIf(emu.V[x] != emu.V[y])

	case SetIndex:
		emu.I = nnn

	case JumpIndexed:
		emu.pc = (nnn + uint16(emu.V[0])) & addressMask

	case Random:
		emu.V[x] = emu.random.RandomByte() & kk

	case Draw:
		return emu.draw(x, y, instr.N&0xF)

	case SkipIfKeyPressed:
		emu.skipIf(emu.keypad.IsPressed(emu.V[x] & 0x0F))

	case SkipIfKeyNotPressed:
		emu.skipIf(!emu.keypad.IsPressed(emu.V[x] & 0x0F))

	case ReadDelayTimer:
		emu.V[x] = emu.delayTimer

	case WaitForKey:
		emu.waitReg = x
		emu.state = AwaitingKey

	case SetDelayTimer:
		emu.delayTimer = emu.V[x]

	case SetSoundTimer:
		emu.soundTimer = emu.V[x]

	case AddIndex:
		// saturates instead of wrapping, accesses through I then fault
		sum := uint32(emu.I) + uint32(emu.V[x])
		emu.I = uint16(min(sum, 0xFFFF))

	case LoadFontAddress:
		emu.I = glyphAddress(emu.V[x])

	case StoreBCD:
		return emu.storeBCD(x)

	case SaveRegisters:
		return emu.saveRegisters(x)

	case LoadRegisters:
		return emu.loadRegisters(x)

	default:
		return fmt.Errorf("%w: unsupported operation %d", ErrDecode, instr.Op)
	}
	return nil
}

func (emu *EMU) setFlag(set bool) {
	if set {
		emu.V[FlagRegister] = 1
	} else {
		emu.V[FlagRegister] = 0
	}
}

func (emu *EMU) skipIf(condition bool) {
	if condition {
		emu.pc += instructionSize
	}
}

func (emu *EMU) call(address uint16) error {
	if int(emu.sp) >= StackDepth {
		return &StackError{Op: Call, Depth: int(emu.sp)}
	}
	emu.stack[emu.sp] = emu.pc
	emu.sp++
	emu.pc = address
	return nil
}

func (emu *EMU) ret() error {
	if emu.sp == 0 {
		return &StackError{Op: Return, Depth: 0}
	}
	emu.sp--
	emu.pc = emu.stack[emu.sp]
	return nil
}

func (emu *EMU) draw(x, y Register, rows uint8) error {
	if err := checkRange(emu.I, int(rows)); err != nil {
		return err
	}

	width, height := emu.display.Size()
	px := uint8(int(emu.V[x]) % width)
	py := uint8(int(emu.V[y]) % height)

	sprite := emu.memory[emu.I : emu.I+uint16(rows)]
	collision := emu.display.DrawSprite(px, py, sprite)
	emu.setFlag(collision)
	return nil
}

func (emu *EMU) storeBCD(x Register) error {
	if err := checkRange(emu.I, 3); err != nil {
		return err
	}

	value := emu.V[x]
	emu.memory[emu.I] = value / 100
	emu.memory[emu.I+1] = value / 10 % 10
	emu.memory[emu.I+2] = value % 10
	return nil
}

// saveRegisters stores V0 through Vx inclusive starting at I.
func (emu *EMU) saveRegisters(x Register) error {
	count := int(x) + 1
	if err := checkRange(emu.I, count); err != nil {
		return err
	}
	copy(emu.memory[emu.I:], emu.V[:count])
	return nil
}

// loadRegisters reads V0 through Vx inclusive starting at I.
func (emu *EMU) loadRegisters(x Register) error {
	count := int(x) + 1
	if err := checkRange(emu.I, count); err != nil {
		return err
	}
	copy(emu.V[:count], emu.memory[emu.I:])
	return nil
}
