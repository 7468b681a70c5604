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

// SIDRegister identifies one of the registers of the SID chip. The value is
// the offset of the register from SIDBase.
type SIDRegister uint8

// List of SID registers. Registers below POTX are write-only.
const (
	FRELO1 SIDRegister = iota
	FREHI1
	PWLO1
	PWHI1
	VCREG1
	ATDCY1
	SUREL1
	FRELO2
	FREHI2
	PWLO2
	PWHI2
	VCREG2
	ATDCY2
	SUREL2
	FRELO3
	FREHI3
	PWLO3
	PWHI3
	VCREG3
	ATDCY3
	SUREL3
	CUTLO
	CUTHI
	RESON
	SIGVOL
	POTX
	POTY
	RANDOM
	ENV3

	// the number of registers in the SID address space. the SID is mirrored
	// every NumSIDRegisters bytes
	NumSIDRegisters = 0x20
)

var sidNames = [...]string{
	"FRELO1", "FREHI1", "PWLO1", "PWHI1", "VCREG1", "ATDCY1", "SUREL1",
	"FRELO2", "FREHI2", "PWLO2", "PWHI2", "VCREG2", "ATDCY2", "SUREL2",
	"FRELO3", "FREHI3", "PWLO3", "PWHI3", "VCREG3", "ATDCY3", "SUREL3",
	"CUTLO", "CUTHI", "RESON", "SIGVOL",
	"POTX", "POTY", "RANDOM", "ENV3",
}

func (r SIDRegister) String() string {
	if int(r) < len(sidNames) {
		return sidNames[r]
	}
	return "unused"
}
