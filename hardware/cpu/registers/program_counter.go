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

package registers

import (
	"fmt"
)

// ProgramCounter represents the PC register in the 6510 CPU. The underlying
// value is wider than the address bus so that stepping beyond 0xffff can be
// detected with Wrapped().
type ProgramCounter struct {
	value uint32
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: uint32(val)}
}

// Label returns an identifying string for the PC.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.Address())
}

// Address returns the current value of the PC as a value of type uint16.
func (pc ProgramCounter) Address() uint16 {
	return uint16(pc.value)
}

// Wrapped returns true if the PC has been incremented past 0xffff since the
// most recent Load().
func (pc ProgramCounter) Wrapped() bool {
	return pc.value>>16 != 0
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = uint32(val)
}

// Increment the PC by one.
func (pc *ProgramCounter) Increment() {
	pc.value++
}

// Add a value to the PC. Returns true if the high byte of the address was
// changed by the addition (ie. a page was crossed).
func (pc *ProgramCounter) Add(val uint16) bool {
	v := pc.Address()
	pc.value += uint32(val)
	return v&0xff00 != pc.Address()&0xff00
}
