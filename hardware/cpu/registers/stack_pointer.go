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

import "fmt"

// StackPage is the page of memory in which the stack lives.
const StackPage = 0x01

// StackPointer is the SP register of the 6510. The stack always occupies the
// stack page but the underlying value is wider so that a pull or push beyond
// the boundaries of the page can be detected with Page().
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: StackPage<<8 | uint16(val)}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%s=%#02x", sp.Label(), sp.Value())
}

// Value returns the 8bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return uint8(sp.value)
}

// Address returns the address in the stack page that the stack pointer
// currently points to.
func (sp StackPointer) Address() uint16 {
	return StackPage<<8 | uint16(uint8(sp.value))
}

// Page returns the page the stack pointer has drifted into. This will be
// StackPage unless the stack has been pushed or pulled past the boundary of
// the stack page since the last Load().
func (sp StackPointer) Page() uint8 {
	return uint8(sp.value >> 8)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = StackPage<<8 | uint16(val)
}

// Push returns the address to which the next pushed byte should be written and
// then decrements the stack pointer.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull increments the stack pointer and returns the address from which the
// pulled byte should be read.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}

// Increment the stack pointer without returning an address.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the stack pointer without returning an address.
func (sp *StackPointer) Decrement() {
	sp.value--
}
