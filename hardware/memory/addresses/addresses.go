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

package addresses

import "github.com/jetsetilly/gopher6510/curated"

// Address ranges of the I/O chips handled by the memory environment.
const (
	IOBase = uint16(0xd000)
	IOTop  = uint16(0xdfff)

	SIDBase = uint16(0xd400)
	SIDTop  = uint16(0xd7ff)

	CIA1Base = uint16(0xdc00)
	CIA1Top  = uint16(0xdcff)

	// the interrupt control register of CIA1. reading it acknowledges the
	// timer interrupt used to drive music routines
	CIA1ICR = uint16(0xdc0d)

	// the 6510 processor port
	ProcessorPortDDR = uint16(0x0000)
	ProcessorPort    = uint16(0x0001)
)

// CanonicalReadSymbols lists the readable I/O addresses along with their
// canonical names. The Read array is created from this map.
var CanonicalReadSymbols = map[uint16]string{
	ProcessorPortDDR: "D6510",
	ProcessorPort:    "R6510",

	SIDBase + uint16(POTX):   "POTX",
	SIDBase + uint16(POTY):   "POTY",
	SIDBase + uint16(RANDOM): "RANDOM",
	SIDBase + uint16(ENV3):   "ENV3",

	CIA1ICR: "CIA1ICR",
}

// CanonicalWriteSymbols lists the writable I/O addresses along with their
// canonical names. The Write array is created from this map.
var CanonicalWriteSymbols = map[uint16]string{
	ProcessorPortDDR: "D6510",
	ProcessorPort:    "R6510",

	CIA1ICR: "CIA1ICR",
}

// Read is a sparse array containing the canonical labels for read addresses
// in the zero page and the I/O area. Index with Symbol().
var Read []string

// Write is a sparse array containing the canonical labels for write
// addresses in the zero page and the I/O area. Index with Symbol().
var Write []string

// the sparse arrays cover the zero page followed by the I/O area
const symbolsLen = 0x100 + int(IOTop-IOBase) + 1

func symbolIndex(address uint16) int {
	if address < 0x100 {
		return int(address)
	}
	if address >= IOBase && address <= IOTop {
		return 0x100 + int(address-IOBase)
	}
	return -1
}

// Symbol returns the canonical name for the address. The read flag selects
// between the Read and Write arrays. Returns the empty string if the address
// has no name.
func Symbol(address uint16, read bool) string {
	i := symbolIndex(address)
	if i < 0 {
		return ""
	}
	if read {
		return Read[i]
	}
	return Write[i]
}

func init() {
	for r := FRELO1; r <= SIGVOL; r++ {
		CanonicalWriteSymbols[SIDBase+uint16(r)] = r.String()
	}

	Read = make([]string, symbolsLen)
	for k, v := range CanonicalReadSymbols {
		Read[symbolIndex(k)] = v
	}

	Write = make([]string, symbolsLen)
	for k, v := range CanonicalWriteSymbols {
		Write[symbolIndex(k)] = v
	}
}

// SIDRegisterOf returns the SID register for an address in the SID address
// range, taking mirroring into account.
func SIDRegisterOf(address uint16) (SIDRegister, error) {
	if address < SIDBase || address > SIDTop {
		return 0, curated.Errorf("addresses: %#04x is not a SID address", address)
	}
	return SIDRegister((address - SIDBase) % NumSIDRegisters), nil
}
