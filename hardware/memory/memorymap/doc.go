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

// Package memorymap describes the areas of the C64 address space as seen by
// the CPU with the default processor port configuration.
//
// The memory environment is a flat 64K of RAM with the I/O area overlaid but
// the ROM areas still matter. Tunes running in the bank switching
// environment may not jump into an area that would be occupied by a ROM, or
// into the I/O area, because the result would depend on the banking
// configuration. MapAddress() identifies the area for an address:
//
//	area := memorymap.MapAddress(address)
//	if area.Banked() {
//		...
//	}
package memorymap
