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

// Package instructions defines the instruction set of the 6510. Every one of
// the 256 opcodes has a Definition, including the undocumented opcodes and the
// opcodes that jam the processor.
//
// The definitions are static. How each instruction is executed, cycle by
// cycle, is decided by the cpu package from the operator, addressing mode and
// effect category of the definition.
package instructions
