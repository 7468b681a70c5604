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

package memorymap

// Area represents the different areas of the C64 address space.
type Area int

func (a Area) String() string {
	switch a {
	case ZeroPage:
		return "Zero Page"
	case Stack:
		return "Stack"
	case RAM:
		return "RAM"
	case BasicROM:
		return "BASIC ROM"
	case IO:
		return "I/O"
	case KernalROM:
		return "KERNAL ROM"
	}

	return "undefined"
}

// The different memory areas in the C64.
const (
	Undefined Area = iota
	ZeroPage
	Stack
	RAM
	BasicROM
	IO
	KernalROM
)

// The origin and memory top for each area of memory.
const (
	OriginZeroPage = uint16(0x0000)
	MemtopZeroPage = uint16(0x00ff)
	OriginStack    = uint16(0x0100)
	MemtopStack    = uint16(0x01ff)
	OriginRAM      = uint16(0x0200)
	MemtopRAM      = uint16(0x9fff)
	OriginBasic    = uint16(0xa000)
	MemtopBasic    = uint16(0xbfff)
	OriginUpperRAM = uint16(0xc000)
	MemtopUpperRAM = uint16(0xcfff)
	OriginIO       = uint16(0xd000)
	MemtopIO       = uint16(0xdfff)
	OriginKernal   = uint16(0xe000)
	MemtopKernal   = uint16(0xffff)
)

// Memtop is the top most address of the address space.
const Memtop = uint16(0xffff)

// MapAddress returns the area the address belongs to.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopZeroPage:
		return ZeroPage
	case address <= MemtopStack:
		return Stack
	case address <= MemtopRAM:
		return RAM
	case address <= MemtopBasic:
		return BasicROM
	case address <= MemtopUpperRAM:
		return RAM
	case address <= MemtopIO:
		return IO
	}
	return KernalROM
}

// Banked returns true if the contents of the area depend on the processor
// port configuration.
func (a Area) Banked() bool {
	return a == BasicROM || a == IO || a == KernalROM
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	return MapAddress(address) == area
}
