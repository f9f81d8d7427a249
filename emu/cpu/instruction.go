package cpu

// Register is the index of a general purpose register V0-VF.
type Register uint8

// Address is a 12-bit memory address.
type Address uint16

// Op identifies one of the 35 CHIP-8 instructions.
type Op uint8

const (
	SysCall              Op = iota // 0nnn
	ClearScreen                    // 00E0
	Return                         // 00EE
	Jump                           // 1nnn
	Call                           // 2nnn
	SkipEqual                      // 3xkk
	SkipNotEqual                   // 4xkk
	SkipEqualRegister              // 5xy0
	Load                           // 6xkk
	Add                            // 7xkk
	LoadRegister                   // 8xy0
	Or                             // 8xy1
	And                            // 8xy2
	Xor                            // 8xy3
	AddRegister                    // 8xy4
	SubRegister                    // 8xy5
	ShrRegister                    // 8xy6
	SubNotBorrowRegister           // 8xy7
	ShlRegister                    // 8xyE
	SkipNotEqualRegister           // 9xy0
	SetIndex                       // Annn
	JumpIndexed                    // Bnnn
	Random                         // Cxkk
	Draw                           // Dxyn
	SkipIfKeyPressed               // Ex9E
	SkipIfKeyNotPressed            // ExA1
	ReadDelayTimer                 // Fx07
	WaitForKey                     // Fx0A
	SetDelayTimer                  // Fx15
	SetSoundTimer                  // Fx18
	AddIndex                       // Fx1E
	LoadFontAddress                // Fx29
	StoreBCD                       // Fx33
	SaveRegisters                  // Fx55
	LoadRegisters                  // Fx65

	opCount
)

var opNames = [opCount]string{
	SysCall:              "SysCall",
	ClearScreen:          "ClearScreen",
	Return:               "Return",
	Jump:                 "Jump",
	Call:                 "Call",
	SkipEqual:            "SkipEqual",
	SkipNotEqual:         "SkipNotEqual",
	SkipEqualRegister:    "SkipEqualRegister",
	Load:                 "Load",
	Add:                  "Add",
	LoadRegister:         "LoadRegister",
	Or:                   "Or",
	And:                  "And",
	Xor:                  "Xor",
	AddRegister:          "AddRegister",
	SubRegister:          "SubRegister",
	ShrRegister:          "ShrRegister",
	SubNotBorrowRegister: "SubNotBorrowRegister",
	ShlRegister:          "ShlRegister",
	SkipNotEqualRegister: "SkipNotEqualRegister",
	SetIndex:             "SetIndex",
	JumpIndexed:          "JumpIndexed",
	Random:               "Random",
	Draw:                 "Draw",
	SkipIfKeyPressed:     "SkipIfKeyPressed",
	SkipIfKeyNotPressed:  "SkipIfKeyNotPressed",
	ReadDelayTimer:       "ReadDelayTimer",
	WaitForKey:           "WaitForKey",
	SetDelayTimer:        "SetDelayTimer",
	SetSoundTimer:        "SetSoundTimer",
	AddIndex:             "AddIndex",
	LoadFontAddress:      "LoadFontAddress",
	StoreBCD:             "StoreBCD",
	SaveRegisters:        "SaveRegisters",
	LoadRegisters:        "LoadRegisters",
}

func (o Op) String() string {
	if o >= opCount {
		return "Op(?)"
	}
	return opNames[o]
}

// IsSkip returns true for the conditional skip instructions.
func (o Op) IsSkip() bool {
	switch o {
	case SkipEqual, SkipNotEqual, SkipEqualRegister, SkipNotEqualRegister,
		SkipIfKeyPressed, SkipIfKeyNotPressed:
		return true
	}
	return false
}

// Instruction is a decoded instruction word. Only the operands used by
// Op are set, the others are zero.
type Instruction struct {
	Op  Op
	X   Register
	Y   Register
	KK  uint8   // immediate byte
	NNN Address // 12-bit address
	N   uint8   // 4-bit count
}

// Encode returns the machine word of the instruction.
func (i Instruction) Encode() uint16 {
	x := uint16(i.X&0xF) << 8
	y := uint16(i.Y&0xF) << 4
	xy := x | y
	kk := uint16(i.KK)
	nnn := uint16(i.NNN & 0x0FFF)

	switch i.Op {
	case SysCall:
		return nnn
	case ClearScreen:
		return 0x00E0
	case Return:
		return 0x00EE
	case Jump:
		return 0x1000 | nnn
	case Call:
		return 0x2000 | nnn
	case SkipEqual:
		return 0x3000 | x | kk
	case SkipNotEqual:
		return 0x4000 | x | kk
	case SkipEqualRegister:
		return 0x5000 | xy
	case Load:
		return 0x6000 | x | kk
	case Add:
		return 0x7000 | x | kk
	case LoadRegister:
		return 0x8000 | xy
	case Or:
		return 0x8001 | xy
	case And:
		return 0x8002 | xy
	case Xor:
		return 0x8003 | xy
	case AddRegister:
		return 0x8004 | xy
	case SubRegister:
		return 0x8005 | xy
	case ShrRegister:
		return 0x8006 | xy
	case SubNotBorrowRegister:
		return 0x8007 | xy
	case ShlRegister:
		return 0x800E | xy
	case SkipNotEqualRegister:
		return 0x9000 | xy
	case SetIndex:
		return 0xA000 | nnn
	case JumpIndexed:
		return 0xB000 | nnn
	case Random:
		return 0xC000 | x | kk
	case Draw:
		return 0xD000 | xy | uint16(i.N&0xF)
	case SkipIfKeyPressed:
		return 0xE09E | x
	case SkipIfKeyNotPressed:
		return 0xE0A1 | x
	case ReadDelayTimer:
		return 0xF007 | x
	case WaitForKey:
		return 0xF00A | x
	case SetDelayTimer:
		return 0xF015 | x
	case SetSoundTimer:
		return 0xF018 | x
	case AddIndex:
		return 0xF01E | x
	case LoadFontAddress:
		return 0xF029 | x
	case StoreBCD:
		return 0xF033 | x
	case SaveRegisters:
		return 0xF055 | x
	case LoadRegisters:
		return 0xF065 | x
	}
	return 0
}
