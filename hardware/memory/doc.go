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

// Package memory implements the environment in which the 6510 runs. It is a
// flat 64K of RAM with just enough of the C64 I/O area to play music
// routines. It satisfies the cpubus.Environment interface.
//
// The I/O area is always visible at $D000-$DFFF. The processor port at $01 is
// stored but does not change the memory configuration.
//
// The following I/O is emulated:
//
//   - SID registers ($D400-$D7FF, mirrored every 32 bytes). Writes are recorded
//     along with the cycle on which they happened. See the bus.ChipBus
//     interface.
//   - CIA1 interrupt control register ($DC0D). Reading the register
//     acknowledges the interrupt raised with RaiseInterrupt().
//
// Reading and writing of memory without the side effects of the I/O chips
// is done through the bus.DebuggerBus interface.
//
// The memory also receives the notifications from the CPU. Reset() and Sleep()
// are counted and forwarded to the OnReset and OnSleep callbacks.
// CheckBankJump() refuses jumps into the ROM and I/O areas when bank switching
// is enabled.
package memory
