// This file is part of Gopher6510.
//
// Gopher6510 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6510 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6510.  If not, see <https://www.gnu.org/licenses/>.

package bus

import "github.com/jetsetilly/gopher6510/hardware/memory/addresses"

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine. Peek and Poke never have side effects on the I/O
// chips.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// ChipData is a single write to a chip register.
type ChipData struct {
	// the CPU cycle on which the write happened
	Cycle uint64

	// the register written to and its canonical name
	Register addresses.SIDRegister
	Name     string

	// the data value written to the chip register
	Value uint8
}

// ChipBus is implemented by memory that records the writes made to the SID.
type ChipBus interface {
	// ChipWrites returns the writes recorded since the last call to
	// ClearChipWrites(). The returned slice should not be modified.
	ChipWrites() []ChipData

	// ClearChipWrites forgets all the recorded writes
	ClearChipWrites()
}
