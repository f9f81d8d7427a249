package cpu

import "math/rand"

// Display is the monochrome surface the VM draws onto.
type Display interface {
	// Clear unsets every pixel.
	Clear()
	// DrawSprite XORs the rows of 8 pixels at x, y wrapping around the
	// edges and reports whether any set pixel got unset.
	DrawSprite(x, y uint8, rows []byte) bool
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
}

// Keypad reports the state of the 16 keys 0x0-0xF.
type Keypad interface {
	IsPressed(key uint8) bool
	// NextKeyPress returns a key that got pressed since the last call.
	// It does not block.
	NextKeyPress() (uint8, bool)
}

// RandomSource produces uniformly distributed bytes.
type RandomSource interface {
	RandomByte() uint8
}

// Peripherals bundles the collaborators of the VM.
type Peripherals struct {
	Display Display
	Keypad  Keypad
	Random  RandomSource
}

type seededRandom struct {
	rnd *rand.Rand
}

// NewRandom returns a random source that produces a reproducible
// sequence for a given seed.
func NewRandom(seed int64) RandomSource {
	return &seededRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (s *seededRandom) RandomByte() uint8 {
	return uint8(s.rnd.Intn(256))
}
