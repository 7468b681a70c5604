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

package execution

// Bug describes a known quirk of the 6510 (or of the compatibility execution
// model) that has been triggered by an instruction. A triggered bug means that
// the instruction may not behave as the definition suggests.
type Bug string

// List of known bugs.
const (
	NoBug                    Bug = ""
	JmpIndirectAddressingBug Bug = "indirect addressing bug"
	ZeroPageIndexBug         Bug = "zero page index bug"
	UnstableHighByteBug      Bug = "unstable high byte on page cross"

	// not a hardware bug. the compatibility execution model shortens some
	// instructions
	CompatibilityShortcut Bug = "compatibility shortcut"
)
