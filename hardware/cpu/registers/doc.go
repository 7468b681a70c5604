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

// Package registers implements the registers of the 6510 CPU. The three
// general purpose registers (A, X and Y) are of type Register and define the
// basic operations (load, add, subtract, logical operations, shifts and
// rotations) that the CPU needs. The operations return the carry and overflow
// state but they do not update the status register. That is done directly by
// the CPU. For instance:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// The ProgramCounter is wider than the 16bit address bus. The extra bits
// record a wrap past 0xffff, which the compatibility mode of the CPU uses to
// detect a runaway routine. Address() always returns the 16bit value.
//
// Similarly, the StackPointer records when the stack has been pulled or
// pushed beyond the boundaries of the stack page. The address it produces is
// always in the stack page.
//
// The StatusRegister stores each flag as a separate boolean field. The packed
// representation is only produced with Value() and consumed with Load(), when
// the status register is pushed to or pulled from the stack.
//
// Decimal mode arithmetic is implemented by AddDecimal() and SubtractDecimal()
// and follows the behaviour of the NMOS 6502, including the flag results for
// invalid BCD operands.
package registers
