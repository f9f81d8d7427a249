package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is the root of all instruction decoding faults.
	ErrDecode = errors.New("invalid instruction")
	// ErrStackOverflow is returned when calling with all 16 frames in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when returning with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrMemoryRange is returned for any access outside of the 4KB memory.
	ErrMemoryRange = errors.New("memory access out of range")
	// ErrConfig is returned for an unusable VM setup.
	ErrConfig = errors.New("invalid configuration")
)

// DecodeError describes a word that does not match any encoding of its
// instruction group.
type DecodeError struct {
	Word uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X in group %X", e.Word, e.Word>>12)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// StackError describes a call or return that would leave the stack bounds.
type StackError struct {
	Op    Op
	Depth int
}

func (e *StackError) Error() string {
	return fmt.Sprintf("%s with stack depth %d: %s", e.Op, e.Depth, e.Unwrap())
}

func (e *StackError) Unwrap() error {
	if e.Op == Return {
		return ErrStackUnderflow
	}
	return ErrStackOverflow
}

// MemoryError describes an access of Length bytes starting at Address
// that does not fit into memory.
type MemoryError struct {
	Address int
	Length  int
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("accessing %d bytes at %04X: %s", e.Length, e.Address, ErrMemoryRange)
}

func (e *MemoryError) Unwrap() error {
	return ErrMemoryRange
}
