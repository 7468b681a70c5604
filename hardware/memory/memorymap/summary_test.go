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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher6510/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6510/test"
)

const validMemMap = `0000 -> 00ff	Zero Page
0100 -> 01ff	Stack
0200 -> 9fff	RAM
a000 -> bfff	BASIC ROM
c000 -> cfff	RAM
d000 -> dfff	I/O
e000 -> ffff	KERNAL ROM
`

func TestMemoryMap(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestBanked(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x1000).Banked(), false)
	test.ExpectEquality(t, memorymap.MapAddress(0xc000).Banked(), false)
	test.ExpectEquality(t, memorymap.MapAddress(0xa000).Banked(), true)
	test.ExpectEquality(t, memorymap.MapAddress(0xd400).Banked(), true)
	test.ExpectEquality(t, memorymap.MapAddress(0xfffe).Banked(), true)
	test.ExpectEquality(t, memorymap.IsArea(0x01ff, memorymap.Stack), true)
}
