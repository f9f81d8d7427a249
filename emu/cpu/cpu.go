package cpu

import "fmt"

const (
	// MemorySize is the size of the addressable memory.
	MemorySize = 4096
	// ProgramStart is the default program entry point.
	ProgramStart = 0x200
	// ETI660Start is the entry point of programs written for the ETI 660.
	ETI660Start = 0x600
	// RegisterCount is the number of general purpose registers.
	RegisterCount = 16
	// StackDepth is the number of nested calls supported.
	StackDepth = 16
	// FlagRegister is the register receiving carry, borrow and collision.
	FlagRegister = 0xF

	instructionSize = 2
	addressMask     = 0x0FFF
)

// State is the execution state of the VM.
type State int

const (
	// Running fetches and executes instructions on every Step.
	Running State = iota
	// AwaitingKey waits for a key press to be stored in a register.
	AwaitingKey
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// EMU is the CHIP-8 virtual machine.
type EMU struct {
	memory     [MemorySize]uint8
	V          [RegisterCount]uint8
	I          uint16 // address register
	pc         uint16
	stack      [StackDepth]uint16
	sp         uint8 // number of used stack slots
	delayTimer uint8 // counts down at 60Hz
	soundTimer uint8 // same as above

	state   State
	waitReg Register
	entry   uint16
	program []byte
	display Display
	keypad  Keypad
	random  RandomSource
}

// Snapshot is a copy of the VM state for debuggers and renderers.
type Snapshot struct {
	Memory     [MemorySize]uint8
	V          [RegisterCount]uint8
	I          uint16
	PC         uint16
	SP         uint8
	Stack      [StackDepth]uint16
	DelayTimer uint8
	SoundTimer uint8
	State      State
}

// NewEMU returns a VM with the font loaded and the program counter at
// entry. All peripherals are required.
func NewEMU(p Peripherals, entry uint16) (*EMU, error) {
	switch {
	case p.Display == nil:
		return nil, fmt.Errorf("%w: missing display", ErrConfig)
	case p.Keypad == nil:
		return nil, fmt.Errorf("%w: missing keypad", ErrConfig)
	case p.Random == nil:
		return nil, fmt.Errorf("%w: missing random source", ErrConfig)
	case entry < ProgramStart || entry >= MemorySize:
		return nil, fmt.Errorf("%w: entry point %04X outside of program space", ErrConfig, entry)
	}

	emu := &EMU{
		entry:   entry,
		display: p.Display,
		keypad:  p.Keypad,
		random:  p.Random,
	}
	emu.Reset()
	return emu, nil
}

// LoadProgram copies the program image to the entry point. The image is
// kept to be restored by Reset.
func (emu *EMU) LoadProgram(rom []byte) error {
	if len(rom) > MemorySize-int(emu.entry) {
		return fmt.Errorf("%w: program of %d bytes does not fit at %04X",
			ErrMemoryRange, len(rom), emu.entry)
	}

	emu.program = append([]byte(nil), rom...)
	copy(emu.memory[emu.entry:], emu.program)
	return nil
}

// Reset restores the power-on state with the font and the last loaded
// program in memory.
func (emu *EMU) Reset() {
	emu.memory = [MemorySize]uint8{}
	emu.V = [RegisterCount]uint8{}
	emu.I = 0
	emu.pc = emu.entry
	emu.stack = [StackDepth]uint16{}
	emu.sp = 0
	emu.delayTimer = 0
	emu.soundTimer = 0
	emu.state = Running
	emu.waitReg = 0

	emu.loadFont()
	copy(emu.memory[emu.entry:], emu.program)
	emu.display.Clear()
}

// Fetch decodes the instruction at the program counter without
// changing any state.
func (emu *EMU) Fetch() (Instruction, error) {
	word, err := emu.readWord(emu.pc)
	if err != nil {
		return Instruction{}, err
	}
	return Decode(word)
}

// Step executes the next instruction. While awaiting a key it only
// polls the keypad and stores a newly pressed key. A fault leaves the
// program counter at the faulting instruction.
func (emu *EMU) Step() error {
	if emu.state == AwaitingKey {
		emu.pollKey()
		return nil
	}

	pc := emu.pc
	instr, err := emu.Fetch()
	if err != nil {
		return fmt.Errorf("fetching at %04X: %w", pc, err)
	}

	emu.pc += instructionSize
	if err := emu.Execute(instr); err != nil {
		emu.pc = pc
		return fmt.Errorf("executing %s at %04X: %w", instr, pc, err)
	}
	return nil
}

// TickTimers decrements the non-zero timers by one.
func (emu *EMU) TickTimers() {
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
	if emu.soundTimer > 0 {
		emu.soundTimer--
	}
}

func (emu *EMU) pollKey() {
	key, ok := emu.keypad.NextKeyPress()
	if !ok {
		return
	}
	emu.V[emu.waitReg] = key & 0x0F
	emu.state = Running
}

// State returns the execution state.
func (emu *EMU) State() State {
	return emu.state
}

// AwaitingRegister returns the register that receives the next key press
// and whether the VM is waiting for one.
func (emu *EMU) AwaitingRegister() (Register, bool) {
	return emu.waitReg, emu.state == AwaitingKey
}

// PC returns the program counter.
func (emu *EMU) PC() uint16 {
	return emu.pc
}

// Index returns the I register.
func (emu *EMU) Index() uint16 {
	return emu.I
}

// SP returns the number of active call frames.
func (emu *EMU) SP() uint8 {
	return emu.sp
}

// Registers returns a copy of V0-VF.
func (emu *EMU) Registers() [RegisterCount]uint8 {
	return emu.V
}

// Memory returns a copy of the memory.
func (emu *EMU) Memory() [MemorySize]uint8 {
	return emu.memory
}

// Stack returns the active return addresses, the oldest first.
func (emu *EMU) Stack() []uint16 {
	return append([]uint16(nil), emu.stack[:emu.sp]...)
}

// DelayTimer returns the delay timer value.
func (emu *EMU) DelayTimer() uint8 {
	return emu.delayTimer
}

// SoundTimer returns the sound timer value.
func (emu *EMU) SoundTimer() uint8 {
	return emu.soundTimer
}

// SoundActive returns whether the buzzer should sound.
func (emu *EMU) SoundActive() bool {
	return emu.soundTimer > 0
}

// Snapshot returns a copy of the complete VM state.
func (emu *EMU) Snapshot() Snapshot {
	return Snapshot{
		Memory:     emu.memory,
		V:          emu.V,
		I:          emu.I,
		PC:         emu.pc,
		SP:         emu.sp,
		Stack:      emu.stack,
		DelayTimer: emu.delayTimer,
		SoundTimer: emu.soundTimer,
		State:      emu.state,
	}
}

// checkRange verifies that length bytes starting at address are inside
// of memory.
func checkRange(address uint16, length int) error {
	if int(address)+length > MemorySize {
		return &MemoryError{Address: int(address), Length: length}
	}
	return nil
}

func (emu *EMU) readWord(address uint16) (uint16, error) {
	if err := checkRange(address, instructionSize); err != nil {
		return 0, err
	}
	return uint16(emu.memory[address])<<8 | uint16(emu.memory[address+1]), nil
}
