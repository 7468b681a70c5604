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

package memory

import (
	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6510/hardware/memory/bus"
	"github.com/jetsetilly/gopher6510/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6510/hardware/scheduler"
	"github.com/jetsetilly/gopher6510/logger"
)

// Error patterns returned by the memory package.
const (
	ProgramTooLarge = "memory: program at $%04x does not fit in memory (%d bytes)"
)

// Clock is used to timestamp the writes to the SID. The scheduler.Scheduler
// type satisfies the interface.
type Clock interface {
	Time(phase scheduler.Phase) uint64
}

// default values of the processor port after power on
const (
	defaultDDR  = 0x2f
	defaultPort = 0x37
)

// Memory is the 64K memory environment.
type Memory struct {
	clk Clock

	ram [0x10000]uint8
	sid [addresses.NumSIDRegisters]uint8

	writes []bus.ChipData

	// the CIA1 interrupt flag. set by RaiseInterrupt() and cleared by reading
	// the interrupt control register
	ciaInterrupt bool

	bankSwitching bool

	// the number of reset and sleep requests from the CPU
	Resets int
	Sleeps int

	// callbacks for the CPU notifications and for the acknowledgement of the
	// CIA1 interrupt. all are optional
	OnReset  func()
	OnSleep  func()
	OnIRQAck func()
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// clock argument can be nil, in which case all SID writes are recorded as
// happening on cycle zero.
func NewMemory(clk Clock) *Memory {
	mem := &Memory{clk: clk}
	mem.Clear()
	return mem
}

// Clear RAM and the I/O registers. Recorded SID writes are also forgotten.
func (mem *Memory) Clear() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	for i := range mem.sid {
		mem.sid[i] = 0
	}
	mem.ram[addresses.ProcessorPortDDR] = defaultDDR
	mem.ram[addresses.ProcessorPort] = defaultPort
	mem.ciaInterrupt = false
	mem.writes = mem.writes[:0]
}

// SetBankSwitching sets whether jumps into the banked areas of memory are
// refused by CheckBankJump().
func (mem *Memory) SetBankSwitching(set bool) {
	mem.bankSwitching = set
}

// RaiseInterrupt sets the interrupt flag in the CIA1 interrupt control
// register. It does not interrupt the CPU.
func (mem *Memory) RaiseInterrupt() {
	mem.ciaInterrupt = true
}

// ReadByte implements the cpubus.Environment interface.
func (mem *Memory) ReadByte(address uint16) uint8 {
	if address == addresses.CIA1ICR {
		if !mem.ciaInterrupt {
			return 0x00
		}
		mem.ciaInterrupt = false
		if mem.OnIRQAck != nil {
			mem.OnIRQAck()
		}
		return 0x81
	}
	return mem.ReadDataByte(address)
}

// ReadDataByte implements the cpubus.Environment interface.
func (mem *Memory) ReadDataByte(address uint16) uint8 {
	if address >= addresses.SIDBase && address <= addresses.SIDTop {
		reg, _ := addresses.SIDRegisterOf(address)
		switch reg {
		case addresses.POTX, addresses.POTY:
			return 0xff
		case addresses.RANDOM, addresses.ENV3:
			return 0x00
		}
		return mem.sid[reg]
	}
	if address == addresses.CIA1ICR && mem.ciaInterrupt {
		return 0x81
	}
	return mem.ram[address]
}

// WriteByte implements the cpubus.Environment interface.
func (mem *Memory) WriteByte(address uint16, data uint8) {
	if address >= addresses.SIDBase && address <= addresses.SIDTop {
		reg, _ := addresses.SIDRegisterOf(address)
		mem.sid[reg] = data

		var clk uint64
		if mem.clk != nil {
			clk = mem.clk.Time(scheduler.PHI2)
		}
		mem.writes = append(mem.writes, bus.ChipData{
			Cycle:    clk,
			Register: reg,
			Name:     reg.String(),
			Value:    data,
		})
		return
	}

	// the RAM underneath the I/O area is not written to when the I/O area is
	// visible. the exception is CIA1, the contents of which are not emulated
	// beyond the interrupt flag
	if address >= addresses.IOBase && address <= addresses.IOTop {
		if address >= addresses.CIA1Base && address <= addresses.CIA1Top {
			mem.ram[address] = data
		}
		return
	}

	mem.ram[address] = data
}

// Reset implements the cpubus.Environment interface.
func (mem *Memory) Reset() {
	mem.Resets++
	logger.Log(logger.Allow, "memory", "reset requested")
	if mem.OnReset != nil {
		mem.OnReset()
	}
}

// Sleep implements the cpubus.Environment interface.
func (mem *Memory) Sleep() {
	mem.Sleeps++
	if mem.OnSleep != nil {
		mem.OnSleep()
	}
}

// CheckBankJump implements the cpubus.Environment interface.
func (mem *Memory) CheckBankJump(address uint16) bool {
	if !mem.bankSwitching {
		return true
	}
	return !memorymap.MapAddress(address).Banked()
}

// Peek implements the bus.DebuggerBus interface. SID registers read as the
// most recently written value.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	if address >= addresses.SIDBase && address <= addresses.SIDTop {
		reg, _ := addresses.SIDRegisterOf(address)
		return mem.sid[reg], nil
	}
	return mem.ram[address], nil
}

// Poke implements the bus.DebuggerBus interface. The value is always written
// to RAM, even in the I/O area.
func (mem *Memory) Poke(address uint16, value uint8) error {
	mem.ram[address] = value
	return nil
}

// Load copies data into RAM starting at the origin address.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(mem.ram) {
		return curated.Errorf(ProgramTooLarge, origin, len(data))
	}
	copy(mem.ram[origin:], data)
	return nil
}

// ChipWrites implements the bus.ChipBus interface.
func (mem *Memory) ChipWrites() []bus.ChipData {
	return mem.writes
}

// ClearChipWrites implements the bus.ChipBus interface.
func (mem *Memory) ClearChipWrites() {
	mem.writes = mem.writes[:0]
}
