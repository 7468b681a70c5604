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
	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/scheduler"
)

// bits in the pending field. IRQ is not included because it is level
// triggered and is tracked by the irqs counter
const (
	pendingRST = 0x01
	pendingNMI = 0x02
)

// the number of cycles that must pass between an interrupt being raised and
// the CPU acting on it
const interruptDelay = 2

// the number of IRQ sources that can be outstanding at the same time
const maxIRQs = 3

// TriggerNMI raises the non-maskable interrupt. It is edge triggered and does
// not need to be cleared.
func (mc *CPU) TriggerNMI() {
	mc.pending |= pendingNMI
	mc.nmiClk = mc.sch.Time(scheduler.PHI2)
	mc.wake()
}

// TriggerIRQ raises the interrupt request line. Every call must be matched by
// a call to ClearIRQ() once the source of the interrupt has been acknowledged.
//
// An error is returned if too many IRQs are outstanding. The CPU state is not
// changed in that case. If the cpu.irqoverflow preference is "panic" then the
// function panics instead.
func (mc *CPU) TriggerIRQ() error {
	if mc.irqs >= maxIRQs {
		err := curated.Errorf(TooManyIRQs, mc.irqs+1)
		if mc.prefs.IRQOverflow.String() == "panic" {
			panic(err)
		}
		return err
	}

	mc.irqs++
	if mc.irqs == 1 {
		mc.irqClk = mc.sch.Time(scheduler.PHI2)
	}

	if !mc.irqDisable {
		mc.wake()
	}

	return nil
}

// ClearIRQ releases one IRQ raised by TriggerIRQ().
func (mc *CPU) ClearIRQ() {
	if mc.irqs > 0 {
		mc.irqs--
	}
}

// TriggerRST runs the RESET sequence. Unlike Reset() the program counter is
// loaded by the CPU over the bus.
func (mc *CPU) TriggerRST() {
	mc.initialise()
	mc.pending |= pendingRST
	mc.interruptPending()
}

// serviceable returns the highest priority interrupt that the CPU can act on.
// returns -1 if there is no such interrupt.
func (mc *CPU) serviceable() int {
	pending := mc.pending
	if mc.irqs > 0 && !mc.irqDisable {
		pending |= 0x04
	}

	for pending != 0 {
		switch {
		case pending&pendingRST == pendingRST:
			return interruptRST

		case pending&pendingNMI == pendingNMI:
			if mc.sch.Elapsed(mc.nmiClk, scheduler.PHI2) >= interruptDelay {
				return interruptNMI
			}
			pending &^= pendingNMI

		default:
			if mc.sch.Elapsed(mc.irqClk, scheduler.PHI2) >= interruptDelay {
				return interruptIRQ
			}
			pending = 0
		}
	}

	return -1
}

// interruptPending selects the sequence for the highest priority serviceable
// interrupt. returns false if there is no interrupt to service.
func (mc *CPU) interruptPending() bool {
	k := mc.serviceable()
	if k < 0 {
		return false
	}
	mc.startInterrupt(k)
	return true
}

func (mc *CPU) startInterrupt(k int) {
	switch k {
	case interruptRST:
		mc.pending &^= pendingRST
	case interruptNMI:
		mc.pending &^= pendingNMI
	}

	mc.current = &mc.table.Interrupts[k]
	mc.cursor = 0

	mc.LastResult.Reset()
	mc.LastResult.Interrupt = mc.current.Name
	mc.LastResult.Address = mc.PC.Address()
}
