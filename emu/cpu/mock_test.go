package cpu

import "testing"

// mockDisplay records sprite draws and reports a configurable collision.
type mockDisplay struct {
	width, height int
	clears        int
	draws         []mockDraw
	collision     bool
}

type mockDraw struct {
	x, y uint8
	rows []byte
}

func newMockDisplay() *mockDisplay {
	return &mockDisplay{width: 64, height: 32}
}

func (m *mockDisplay) Clear() {
	m.clears++
}

func (m *mockDisplay) DrawSprite(x, y uint8, rows []byte) bool {
	m.draws = append(m.draws, mockDraw{x: x, y: y, rows: append([]byte(nil), rows...)})
	return m.collision
}

func (m *mockDisplay) Size() (int, int) {
	return m.width, m.height
}

// mockKeypad holds the pressed keys and a queue of new key presses.
type mockKeypad struct {
	pressed [16]bool
	presses []uint8
}

func (m *mockKeypad) IsPressed(key uint8) bool {
	return m.pressed[key&0xF]
}

func (m *mockKeypad) NextKeyPress() (uint8, bool) {
	if len(m.presses) == 0 {
		return 0, false
	}
	key := m.presses[0]
	m.presses = m.presses[1:]
	return key, true
}

// mockRandom returns a fixed byte.
type mockRandom struct {
	value uint8
}

func (m mockRandom) RandomByte() uint8 {
	return m.value
}

type testVM struct {
	*EMU
	display *mockDisplay
	keypad  *mockKeypad
}

func newTestVM(t *testing.T, program ...uint16) *testVM {
	t.Helper()

	display := newMockDisplay()
	keypad := &mockKeypad{}
	emu, err := NewEMU(Peripherals{
		Display: display,
		Keypad:  keypad,
		Random:  mockRandom{value: 0xFF},
	}, ProgramStart)
	if err != nil {
		t.Fatalf("creating VM: %v", err)
	}

	rom := make([]byte, 0, len(program)*2)
	for _, word := range program {
		rom = append(rom, byte(word>>8), byte(word))
	}
	if err := emu.LoadProgram(rom); err != nil {
		t.Fatalf("loading program: %v", err)
	}

	return &testVM{EMU: emu, display: display, keypad: keypad}
}
