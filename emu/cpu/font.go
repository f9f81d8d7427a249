package cpu

const (
	// FontBase is the address of the hex digit sprites.
	FontBase = 0x050
	// GlyphSize is the number of bytes of one digit sprite.
	GlyphSize = 5
)

// FontSet holds the 4x5 sprites of the hex digits 0-F.
var FontSet = [16 * GlyphSize]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

func (emu *EMU) loadFont() {
	copy(emu.memory[FontBase:], FontSet[:])
}

// glyphAddress returns the sprite address of the digit in the low nibble.
func glyphAddress(digit uint8) uint16 {
	return FontBase + uint16(digit&0x0F)*GlyphSize
}
