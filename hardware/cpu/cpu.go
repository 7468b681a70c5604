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
	"fmt"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6510/hardware/preferences"
	"github.com/jetsetilly/gopher6510/hardware/scheduler"
	"github.com/jetsetilly/gopher6510/logger"
	"github.com/jetsetilly/gopher6510/prefs"
)

// Scheduler is the event scheduler that drives the CPU. The CPU runs on the
// PHI2 phase of the clock. The Scheduler type in the hardware/scheduler
// package satisfies the interface.
type Scheduler interface {
	Schedule(ev scheduler.Event, cycles uint64, phase scheduler.Phase)
	Cancel(ev scheduler.Event)
	Time(phase scheduler.Phase) uint64
	Elapsed(timestamp uint64, phase scheduler.Phase) uint64
	Phase() scheduler.Phase
}

// CPU implements the 6510 as found in the Commodore 64. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// LastResult is the result of the most recent instruction or interrupt
	// sequence. The fields are only guaranteed to be complete once Final is
	// true
	LastResult execution.Result

	prefs *preferences.Preferences
	sch   Scheduler
	env   cpubus.Environment

	// the instruction table for the variant. the mode is only consulted by the
	// micro-ops of the compatibility variant
	table *Table
	mode  Mode

	// some operations only need an accumulator
	acc8 registers.Register

	// execution cursor
	current *Descriptor
	cursor  int

	// scratch values shared by the steps of a single instruction
	addr        uint16
	data        uint8
	pointer     uint8
	baseHi      uint8
	pageCrossed bool

	// interrupt state
	pending uint8
	irqs    int
	nmiClk  uint64
	irqClk  uint64

	// the interrupt disable flag as it was at the start of the current
	// instruction. IRQs are masked by this value and not the live flag
	irqDisable bool

	// bus arbitration. blocked is true once a step has been refused the bus
	busAvailable bool
	blocked      bool
	stealingClk  uint64

	// compatibility variant state
	sleeping  bool
	framelock bool
	delayClk  uint64
}

// NewCPU is the preferred method of initialisation for the generic CPU. The
// preferences argument can be nil, in which case the default values are used.
//
// The CPU must be reset before it is used.
func NewCPU(prefs *preferences.Preferences, sch Scheduler, env cpubus.Environment) *CPU {
	return newCPU(prefs, sch, env, GenericTable())
}

// NewSidCPU is the preferred method of initialisation for the compatibility
// variant of the CPU. The environment mode is taken from the preferences and
// is updated whenever the preference changes.
func NewSidCPU(p *preferences.Preferences, sch Scheduler, env cpubus.Environment) *CPU {
	mc := newCPU(p, sch, env, SidTable())

	mode, err := ParseMode(mc.prefs.Environment.String())
	if err != nil {
		logger.Logf(logger.Allow, "cpu", "%v: using %s", err, PlaySID)
		mode = PlaySID
	}
	mc.mode = mode

	mc.prefs.Environment.SetHookPost(func(v prefs.Value) error {
		m, err := ParseMode(fmt.Sprintf("%v", v))
		if err != nil {
			return err
		}
		mc.SetCompatibilityMode(m)
		return nil
	})

	return mc
}

func newCPU(p *preferences.Preferences, sch Scheduler, env cpubus.Environment, table *Table) *CPU {
	if p == nil {
		p = preferences.NewDetachedPreferences()
	}
	mc := &CPU{
		prefs:        p,
		sch:          sch,
		env:          env,
		table:        table,
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0xff),
		acc8:         registers.NewRegister(0, "acc8"),
		busAvailable: true,
	}
	mc.current = &mc.table.Fetch
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s %s %s %s SP=%s SR=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// SetCompatibilityMode changes the environment mode. The generic CPU accepts
// the value but its instruction table never consults it.
func (mc *CPU) SetCompatibilityMode(mode Mode) {
	mc.mode = mode
}

// Mode returns the current environment mode.
func (mc *CPU) Mode() Mode {
	return mc.mode
}

// Sleeping returns true if the compatibility variant is waiting for an
// interrupt.
func (mc *CPU) Sleeping() bool {
	return mc.sleeping
}

// AllowLogging implements the logger.Permission interface. The shortcuts taken
// by the compatibility variant are only logged if the cpu.verbose preference
// is set.
func (mc *CPU) AllowLogging() bool {
	return mc.prefs.Verbose.Get().(bool)
}

// Table returns the instruction table used by the CPU.
func (mc *CPU) Table() *Table {
	return mc.table
}

// initialise puts the CPU into the power-on state. A, X and Y are not
// affected.
func (mc *CPU) initialise() {
	mc.sleeping = false
	mc.framelock = false

	mc.SP.Load(0xff)
	mc.Status.Reset()

	mc.pending = 0
	mc.irqs = 0
	mc.nmiClk = 0
	mc.irqClk = 0
	mc.delayClk = 0
	mc.irqDisable = false

	mc.busAvailable = true
	mc.blocked = false

	mc.current = &mc.table.Fetch
	mc.cursor = 0
	mc.LastResult.Reset()

	mc.sch.Schedule(mc, 0, scheduler.PHI2)
}

// Reset the CPU. The program counter is loaded from the reset vector without
// going through the RESET sequence. The A, X and Y registers are unchanged.
func (mc *CPU) Reset() {
	mc.initialise()
	lo := mc.env.ReadDataByte(cpubus.Reset)
	hi := mc.env.ReadDataByte(cpubus.Reset + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// ResetTo resets the CPU and starts execution at the specified address with
// the registers set to the specified values. Only the compatibility variant
// supports this form of reset.
func (mc *CPU) ResetTo(pc uint16, a, x, y uint8) error {
	if mc.table != SidTable() {
		return curated.Errorf(ResetToNotSupported)
	}
	mc.Reset()
	mc.PC.Load(pc)
	mc.A.Load(a)
	mc.X.Load(x)
	mc.Y.Load(y)
	return nil
}

// SetBusAvailable is the bus arbitration signal. While the bus is unavailable
// the CPU stops at the next step that reads from memory.
func (mc *CPU) SetBusAvailable(available bool) {
	if available == mc.busAvailable {
		return
	}
	mc.busAvailable = available

	if !available || !mc.blocked {
		return
	}

	now := mc.sch.Time(scheduler.PHI2)
	stolen := now - mc.stealingClk

	// interrupts raised while the CPU was stopped are treated as having
	// happened no later than the cycle before the CPU resumes
	shift := func(clk *uint64) {
		*clk += stolen
		if *clk > now && now > 0 {
			*clk = now - 1
		}
	}
	shift(&mc.nmiClk)
	shift(&mc.irqClk)
	shift(&mc.delayClk)

	mc.blocked = false

	if !mc.sleeping {
		var cycles uint64
		if mc.sch.Phase() == scheduler.PHI2 {
			cycles = 1
		}
		mc.sch.Schedule(mc, cycles, scheduler.PHI2)
	}
}

// Tick implements the scheduler.Event interface. It runs exactly one step of
// the current instruction.
func (mc *CPU) Tick() {
	mc.sch.Schedule(mc, 1, scheduler.PHI2)
	mc.clock()
}

func (mc *CPU) clock() {
	if mc.cursor >= len(mc.current.Steps) {
		mc.nextInstr()
	}

	st := mc.current.Steps[mc.cursor]
	mc.cursor++

	if st.Stealable && !mc.busAvailable {
		if !mc.blocked {
			mc.blocked = true
			mc.stealingClk = mc.sch.Time(scheduler.PHI2)
		}
		mc.cursor--
		mc.sch.Cancel(mc)
		return
	}

	mc.LastResult.Cycles++
	mc.execute(st.Op)

	if mc.cursor >= len(mc.current.Steps) {
		mc.LastResult.Final = true
	}
}

// select the interrupt or the opcode fetch that follows a completed
// instruction
func (mc *CPU) nextInstr() {
	if !mc.interruptPending() {
		mc.current = &mc.table.Fetch
		mc.cursor = 0
	}
}

// stop the current instruction after the step being executed
func (mc *CPU) endInstruction() {
	mc.cursor = len(mc.current.Steps)
}

func (mc *CPU) read(address uint16) uint8 {
	return mc.env.ReadByte(address)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.env.WriteByte(address, data)
}

// read the byte pointed to by the PC and increment the PC. the value is
// recorded as part of the instruction data in the last result
func (mc *CPU) readPC() uint8 {
	v := mc.read(mc.PC.Address())
	mc.PC.Increment()
	mc.LastResult.ByteCount++
	if mc.LastResult.ByteCount == 2 {
		mc.LastResult.InstructionData = uint16(v)
	} else {
		mc.LastResult.InstructionData |= uint16(v) << 8
	}
	return v
}

func (mc *CPU) fetchOpcode() {
	mc.irqDisable = mc.Status.InterruptDisable

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	op := mc.read(mc.PC.Address())
	mc.PC.Increment()

	mc.current = &mc.table.Opcodes[op]
	mc.cursor = 1
	mc.pageCrossed = false

	mc.LastResult.Defn = mc.current.Defn
	mc.LastResult.ByteCount = 1
	mc.LastResult.Cycles = 1
}

// illegal instructions crash the machine
func (mc *CPU) illegal() {
	logger.Logf(logger.Allow, "cpu", "illegal instruction %s at $%04x", mc.current.Defn.Operator, mc.LastResult.Address)
	mc.env.Reset()
}
