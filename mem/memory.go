// Package mem implements the Computer's main memory: 4,000 addressable
// Word cells, the single component every other part of the machine
// reads and writes through.
package mem

import (
	"fmt"

	"mix/word"
)

// Size is the number of addressable cells, 0..=3,999.
const Size = 4000

// AddressOutOfRangeError reports an access outside [0, Size).
type AddressOutOfRangeError struct {
	Address int
}

func (e *AddressOutOfRangeError) Error() string {
	return fmt.Sprintf("mem: address %d out of range [0, %d)", e.Address, Size)
}

// Memory is the Computer's fixed array of Size Words, zeroed on
// construction.
type Memory struct {
	cells [Size]word.Word
}

// New returns a zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the Word at addr, or an AddressOutOfRangeError if addr
// is not in [0, Size).
func (m *Memory) Read(addr int) (word.Word, error) {
	if addr < 0 || addr >= Size {
		return word.Word{}, &AddressOutOfRangeError{Address: addr}
	}
	return m.cells[addr], nil
}

// Write stores w at addr, or returns an AddressOutOfRangeError if addr
// is not in [0, Size).
func (m *Memory) Write(addr int, w word.Word) error {
	if addr < 0 || addr >= Size {
		return &AddressOutOfRangeError{Address: addr}
	}
	m.cells[addr] = w
	return nil
}
