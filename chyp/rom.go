// Package chyp loads and lists CHIP-8 ROM images.
package chyp

import (
	"errors"
	"fmt"
	"os"

	"github.com/beanboi7/chyp8/emu/cpu"
)

var (
	errEmptyROM    = errors.New("ROM is empty")
	errROMTooLarge = errors.New("ROM too large")
)

// MaxSize returns the largest ROM that fits into memory when loaded at
// the entry address.
func MaxSize(entry uint16) int {
	return cpu.MemorySize - int(entry)
}

// LoadGame reads a ROM file and checks that it fits at the entry address.
func LoadGame(filename string, entry uint16) ([]byte, error) {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}

	switch {
	case len(rom) == 0:
		return nil, fmt.Errorf("%s: %w", filename, errEmptyROM)
	case len(rom) > MaxSize(entry):
		return nil, fmt.Errorf("%s: %w, %d bytes exceed the %d bytes available at %04X",
			filename, errROMTooLarge, len(rom), MaxSize(entry), entry)
	}
	return rom, nil
}
