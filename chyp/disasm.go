package chyp

import (
	"fmt"
	"io"

	"github.com/beanboi7/chyp8/emu/cpu"
)

// Disassemble writes one line per instruction word of the ROM as loaded
// at base. Words that do not decode are written as data.
func Disassemble(w io.Writer, rom []byte, base uint16) error {
	for offset := 0; offset < len(rom); offset += 2 {
		address := int(base) + offset

		if offset+1 >= len(rom) {
			if _, err := fmt.Fprintf(w, "%04X  %02X    DB 0x%02X\n", address, rom[offset], rom[offset]); err != nil {
				return fmt.Errorf("writing data byte: %w", err)
			}
			break
		}

		word := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		text := fmt.Sprintf("DW 0x%04X", word)
		if instr, err := cpu.Decode(word); err == nil {
			text = instr.String()
		}

		if _, err := fmt.Fprintf(w, "%04X  %04X  %s\n", address, word, text); err != nil {
			return fmt.Errorf("writing instruction: %w", err)
		}
	}
	return nil
}
