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

package cpu

import (
	"github.com/jetsetilly/gopher6510/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/hardware/scheduler"
	"github.com/jetsetilly/gopher6510/logger"
)

// the micro-ops in this file are only found in the table of the
// compatibility variant. in the Real mode they behave exactly like the
// micro-ops they replace

func (mc *CPU) sidFetchOpcode() {
	if !mc.mode.IsCompatibility() {
		mc.fetchOpcode()
		return
	}

	// routines end by returning past the top of the stack or by running off
	// the end of memory
	mc.sleeping = mc.sleeping || mc.SP.Page() != registers.StackPage || mc.PC.Wrapped()
	if !mc.sleeping {
		mc.fetchOpcode()
	}

	if mc.framelock {
		return
	}

	// run the entire routine now
	mc.framelock = true

	budget := mc.prefs.FrameBudget.Get().(int)
	for !mc.sleeping && !mc.blocked && mc.current != &mc.table.Delay && budget > 0 {
		mc.clock()
		budget--
	}

	// continue when the bus becomes available
	if mc.blocked {
		mc.framelock = false
		return
	}

	if budget <= 0 {
		logger.Logf(mc, "cpu", "infinite loop detected at $%04x", mc.PC.Address())
		mc.env.Reset()
	}

	if mc.current != &mc.table.Delay {
		mc.sleep()
	}

	mc.framelock = false
}

// sleep until the next interrupt. the delay micro-op takes over from the
// instruction stream
func (mc *CPU) sleep() {
	mc.delayClk = mc.sch.Time(scheduler.PHI2)
	mc.sleeping = true
	mc.current = &mc.table.Delay
	mc.cursor = 0
	mc.LastResult.Final = true

	mc.sch.Cancel(mc)
	mc.env.Sleep()

	// interrupts that arrived while the routine was running
	if mc.irqs > 0 {
		mc.irqs--
		_ = mc.TriggerIRQ()
	} else if mc.pending != 0 {
		mc.wake()
	}
}

func (mc *CPU) wake() {
	if !mc.sleeping {
		return
	}
	mc.sleeping = false
	mc.sch.Schedule(mc, 1, scheduler.PHI2)
}

// the delay micro-op simulates a JMP to itself. interrupts are only checked
// at the point where the JMP would be complete
func (mc *CPU) sidDelay() {
	mc.cursor = 0

	if mc.sleeping {
		mc.sch.Cancel(mc)
		return
	}

	e := mc.sch.Elapsed(mc.delayClk, scheduler.PHI2) % 3
	if e == 0 {
		if k := mc.serviceable(); k >= 0 {
			mc.startInterrupt(k)
			mc.clock()
			return
		}
	}
	mc.sch.Schedule(mc, 3-e, scheduler.PHI2)
}

func (mc *CPU) sidJump(target uint16) {
	// a jump to itself is a busy loop
	if target == mc.LastResult.Address {
		mc.PC.Load(target)
		if mc.serviceable() < 0 {
			mc.sleep()
		}
		return
	}

	if !mc.mode.IsCompatibility() || mc.env.CheckBankJump(target) {
		mc.PC.Load(target)
		return
	}

	logger.Logf(mc, "cpu", "bank jump to $%04x refused", target)
	mc.fastRTS()
}

func (mc *CPU) sidIllegal() {
	if !mc.mode.IsCompatibility() {
		mc.illegal()
		return
	}
	logger.Logf(mc, "cpu", "illegal instruction %s at $%04x ignored", mc.current.Defn.Operator, mc.LastResult.Address)
}

func (mc *CPU) sidCli() {
	_ = mc.read(mc.PC.Address())
	if !mc.mode.IsCompatibility() {
		mc.implied()
	}
}

// RTI returns from the interrupt as though it was an RTS
func (mc *CPU) sidRti() {
	if !mc.mode.IsCompatibility() {
		mc.pullStatusRti()
		return
	}
	mc.fastRTS()
	mc.endInstruction()
	mc.LastResult.CPUBug = execution.CompatibilityShortcut
}

// BRK is treated as SEI followed by an RTS
func (mc *CPU) sidBrk() {
	if !mc.mode.IsCompatibility() {
		mc.write(mc.SP.Push(), uint8(mc.PC.Address()>>8))
		return
	}
	mc.Status.InterruptDisable = true
	mc.fastRTS()
	mc.endInstruction()
	mc.LastResult.CPUBug = execution.CompatibilityShortcut
}

// the status register pushed by an IRQ is discarded so that the return from
// the handler, which will be treated as an RTS, finds the program counter
func (mc *CPU) sidPushStatusInterrupt() {
	mc.pushStatusInterrupt()
	if mc.mode.IsCompatibility() {
		mc.SP.Increment()
	}
}

// RTS in a single cycle
func (mc *CPU) fastRTS() {
	lo := mc.read(mc.SP.Pull())
	hi := mc.read(mc.SP.Pull())
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	mc.PC.Increment()
}
