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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/test"
)

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint16(0))

	// loading & addition
	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), uint16(127))
	test.ExpectEquality(t, pc.Add(2), false)
	test.ExpectEquality(t, pc.Address(), uint16(129))

	// page crossing
	pc.Load(0x10fe)
	test.ExpectEquality(t, pc.Add(0x0004), true)
	test.ExpectEquality(t, pc.Address(), uint16(0x1102))

	// wrapping past the top of memory is remembered
	pc.Load(0xffff)
	test.ExpectEquality(t, pc.Wrapped(), false)
	pc.Increment()
	test.ExpectEquality(t, pc.Address(), uint16(0x0000))
	test.ExpectEquality(t, pc.Wrapped(), true)

	// until the next load
	pc.Load(0x0000)
	test.ExpectEquality(t, pc.Wrapped(), false)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))
	test.ExpectEquality(t, sp.Page(), uint8(registers.StackPage))

	test.ExpectEquality(t, sp.Push(), uint16(0x01ff))
	test.ExpectEquality(t, sp.Value(), uint8(0xfe))
	test.ExpectEquality(t, sp.Pull(), uint16(0x01ff))
	test.ExpectEquality(t, sp.Value(), uint8(0xff))

	// pulling past the top of the stack leaves the stack page but addresses
	// remain in the stack page
	test.ExpectEquality(t, sp.Pull(), uint16(0x0100))
	test.ExpectEquality(t, sp.Page(), uint8(0x02))

	sp.Load(0x00)
	test.ExpectEquality(t, sp.Push(), uint16(0x0100))
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))
	test.ExpectEquality(t, sp.Page(), uint8(0x00))
}
