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

// Package cpu emulates the 6510 microprocessor found in the Commodore 64.
//
// Execution is cycle based. Every instruction is a sequence of micro-ops, one
// micro-op per cycle, and the sequences for all 256 opcodes and the RESET, NMI
// and IRQ sequences are held in a Table. There are two tables, one for each
// variant of the CPU. The generic variant, created with NewCPU(), emulates the
// real chip. The compatibility variant, created with NewSidCPU(), carries a
// small number of mode sensitive micro-ops that change behaviour when the
// environment mode is anything other than Real. Both tables are built once and
// shared between CPU instances.
//
// The CPU does not run by itself. It is an event in a scheduler and the
// scheduler calls Tick() once per cycle, on the PHI2 phase of the clock. Memory
// is accessed through the cpubus.Environment interface at the point in the
// instruction where the real chip would access the bus.
//
//	sch := scheduler.NewScheduler()
//	mc := cpu.NewCPU(nil, sch, mem)
//	mc.Reset()
//
//	for {
//		sch.Clock()
//	}
//
// Another bus master can take the bus with SetBusAvailable(false). The CPU
// stops at the next step that reads from memory and continues when the bus is
// returned.
//
// In the compatibility modes the CPU runs an entire routine inside a single
// call to Tick() and then sleeps until the next interrupt. This is the
// execution model expected by tunes written for the PlaySID environment.
//
// The LastResult field records the most recent instruction. See the execution
// package for details.
package cpu
