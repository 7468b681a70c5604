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

// Package cpubus defines the interface between the CPU and the environment in
// which it runs. The environment maps addresses onto memory and I/O and is
// notified of the events that the CPU cannot resolve by itself.
package cpubus

// Addresses of the interrupt vectors. The value at each address is the low
// byte of the vector and the value at the next address is the high byte.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// Environment defines the operations for the memory system when accessed from
// the CPU, and the notifications the CPU sends to its surrounding system.
//
// ReadByte and WriteByte are the bus operations of the CPU and happen at the
// point in the instruction when the real CPU would access the bus.
// ReadDataByte is a read that is not part of the bus traffic of the running
// program. The CPU uses it to fetch the reset vector while it is being reset.
//
// Reset requests a hard reset of the entire system. The CPU calls it when it
// encounters an illegal instruction in real mode or when a compatibility mode
// routine runs for too long.
//
// Sleep notifies the environment that the CPU has gone to sleep. This only
// happens in compatibility mode.
//
// CheckBankJump asks whether a jump to the address is acceptable. Again, this
// only applies to compatibility mode.
type Environment interface {
	ReadByte(address uint16) uint8
	ReadDataByte(address uint16) uint8
	WriteByte(address uint16, data uint8)
	Reset()
	Sleep()
	CheckBankJump(address uint16) bool
}
