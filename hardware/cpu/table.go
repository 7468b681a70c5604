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
	"strings"
	"sync"

	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
)

// Step is a single cycle of an instruction.
type Step struct {
	Op microOp

	// whether the step can be delayed while the bus is owned by another bus
	// master
	Stealable bool
}

func (s Step) String() string {
	if s.Stealable {
		return s.Op.String()
	}
	return fmt.Sprintf("%s*", s.Op)
}

// Descriptor is the sequence of steps for one instruction or interrupt.
// Descriptors are built once for each CPU variant and are never modified
// afterwards.
type Descriptor struct {
	Steps []Step

	// definition of the instruction. nil for the interrupt, fetch and delay
	// descriptors
	Defn *instructions.Definition

	// name of the descriptor if it does not have a definition
	Name string

	// address of the vector used by the descriptor. only meaningful for BRK
	// and the interrupt descriptors
	vector uint16
}

func (d Descriptor) String() string {
	s := strings.Builder{}
	if d.Defn != nil {
		s.WriteString(fmt.Sprintf("%02x %-3s %-16s", d.Defn.OpCode, d.Defn.Operator, d.Defn.AddressingMode))
	} else {
		s.WriteString(fmt.Sprintf("   %-20s", d.Name))
	}
	s.WriteString(fmt.Sprintf(" %d:", len(d.Steps)))
	for _, st := range d.Steps {
		s.WriteString(" ")
		s.WriteString(st.String())
	}
	return s.String()
}

// the three interrupt pseudo-instructions in priority order
const (
	interruptRST = iota
	interruptNMI
	interruptIRQ
	numInterrupts
)

// Table is the complete set of descriptors for a CPU variant.
type Table struct {
	Opcodes    [256]Descriptor
	Interrupts [numInterrupts]Descriptor

	// the descriptor used to fetch the next opcode
	Fetch Descriptor

	// the descriptor used while the compatibility variant is sleeping
	Delay Descriptor
}

var (
	genericTable     *Table
	genericTableOnce sync.Once
	sidTable         *Table
	sidTableOnce     sync.Once
)

// GenericTable returns the instruction table for the generic CPU variant.
func GenericTable() *Table {
	genericTableOnce.Do(func() {
		genericTable = buildTable(false)
	})
	return genericTable
}

// SidTable returns the instruction table for the compatibility CPU variant.
func SidTable() *Table {
	sidTableOnce.Do(func() {
		sidTable = buildTable(true)
	})
	return sidTable
}

// builder creates the steps for a single descriptor. it is run twice for every
// descriptor: the first pass counts the steps and the second pass fills in a
// slice of exactly the right size
type builder struct {
	compat bool
	steps  []Step
	count  int
	fill   bool

	// no step can be stolen in an interrupt sequence
	interrupt bool

	// set once a write step has been added
	committed bool
}

func (b *builder) reset(fill bool) {
	if fill {
		b.steps = make([]Step, 0, b.count)
	} else {
		b.steps = nil
	}
	b.count = 0
	b.fill = fill
	b.committed = false
}

func (b *builder) add(op microOp) {
	b.count++
	if !b.fill {
		return
	}

	// writes are never stolen. neither is anything after a write
	if op.isWrite() {
		b.committed = true
	}

	b.steps = append(b.steps, Step{
		Op:        op,
		Stealable: !b.committed && !b.interrupt,
	})
}

// pick returns the compatibility op if the builder is building tables for the
// compatibility variant.
func (b *builder) pick(generic, sid microOp) microOp {
	if b.compat {
		return sid
	}
	return generic
}

func (b *builder) build(f func()) []Step {
	b.reset(false)
	f()
	b.reset(true)
	f()
	if len(b.steps) != cap(b.steps) {
		panic("cpu: descriptor passes disagree on length")
	}
	return b.steps
}

func buildTable(compat bool) *Table {
	t := &Table{}
	b := &builder{compat: compat}

	defns := instructions.Definitions()
	for i := range defns {
		defn := defns[i]
		t.Opcodes[i] = Descriptor{
			Steps: b.build(func() { b.instruction(defn) }),
			Defn:  &defn,
		}
		if defn.Operator == instructions.Brk {
			t.Opcodes[i].vector = cpubus.IRQ
		}
	}

	b.interrupt = true
	t.Interrupts[interruptRST] = Descriptor{
		Steps:  b.build(func() { b.interruptSequence(interruptRST) }),
		Name:   "RST",
		vector: cpubus.Reset,
	}
	t.Interrupts[interruptNMI] = Descriptor{
		Steps:  b.build(func() { b.interruptSequence(interruptNMI) }),
		Name:   "NMI",
		vector: cpubus.NMI,
	}
	t.Interrupts[interruptIRQ] = Descriptor{
		Steps:  b.build(func() { b.interruptSequence(interruptIRQ) }),
		Name:   "IRQ",
		vector: cpubus.IRQ,
	}
	b.interrupt = false

	t.Fetch = Descriptor{
		Steps: b.build(func() { b.add(b.pick(opFetchOpcode, opSidFetchOpcode)) }),
		Name:  "fetch",
	}
	t.Delay = Descriptor{
		Steps: b.build(func() { b.add(opSidDelay) }),
		Name:  "delay",
	}

	return t
}

func (b *builder) interruptSequence(interrupt int) {
	b.add(opDummyReadPC)
	b.add(opDummyReadPC)

	switch interrupt {
	case interruptRST:
		// the stack is accessed but nothing is written
		b.add(opDummyPush)
		b.add(opDummyPush)
		b.add(opDummyPush)
	case interruptNMI:
		b.add(opPushPCH)
		b.add(opPushPCL)
		b.add(opPushSRInterrupt)
	case interruptIRQ:
		b.add(opPushPCH)
		b.add(opPushPCL)
		b.add(b.pick(opPushSRInterrupt, opSidPushSRInterrupt))
	}

	b.add(opVectorLo)
	b.add(opVectorHi)

	// the first instruction of the interrupt handler is fetched as part of the
	// sequence. no other interrupt can be serviced before it
	b.add(b.pick(opFetchOpcode, opSidFetchOpcode))
}

func (b *builder) instruction(defn instructions.Definition) {
	b.add(b.pick(opFetchOpcode, opSidFetchOpcode))

	switch defn.Operator {
	case instructions.Kil:
		b.add(b.pick(opIllegal, opSidIllegal))
		return

	case instructions.Brk:
		b.add(opReadPCInc)
		b.add(b.pick(opPushPCH, opSidBrk))
		b.add(opPushPCL)
		b.add(opPushSRBrk)
		b.add(opVectorLo)
		b.add(opVectorHi)
		return

	case instructions.Rti:
		b.add(opDummyReadPC)
		b.add(opDummyReadStack)
		b.add(b.pick(opPullSRRti, opSidRti))
		b.add(opPullPCL)
		b.add(opPullPCH)
		return

	case instructions.Rts:
		b.add(opDummyReadPC)
		b.add(opDummyReadStack)
		b.add(opPullPCL)
		b.add(opPullPCH)
		b.add(opRtsIncPC)
		return

	case instructions.Jsr:
		b.add(opFetchAddrLo)
		b.add(opDummyReadStack)
		b.add(opPushPCH)
		b.add(opPushPCL)
		b.add(opJsr)
		return

	case instructions.Pha, instructions.Php:
		b.add(opDummyReadPC)
		b.add(opPush)
		return

	case instructions.Pla, instructions.Plp:
		b.add(opDummyReadPC)
		b.add(opDummyReadStack)
		b.add(opPull)
		return

	case instructions.Jmp:
		b.add(opFetchAddrLo)
		if defn.AddressingMode == instructions.Indirect {
			b.add(opFetchAddrHi)
			b.add(opFetchIndirectLo)
			b.add(b.pick(opJmpInd, opSidJmpInd))
		} else {
			b.add(b.pick(opJmpAbs, opSidJmpAbs))
		}
		return

	case instructions.Cli:
		b.add(b.pick(opImplied, opSidCli))
		return
	}

	if defn.IsBranch() {
		b.add(opBranch)
		b.add(opBranchTaken)
		b.add(opBranchFixup)
		return
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		b.add(opImplied)
		return
	case instructions.Immediate:
		b.add(opImmediate)
		return
	case instructions.ZeroPage:
		b.add(opFetchZeroPage)
	case instructions.ZeroPageIndexedX:
		b.add(opFetchZeroPage)
		b.add(opIndexZeroPageX)
	case instructions.ZeroPageIndexedY:
		b.add(opFetchZeroPage)
		b.add(opIndexZeroPageY)
	case instructions.Absolute:
		b.add(opFetchAddrLo)
		b.add(opFetchAddrHi)
	case instructions.AbsoluteIndexedX:
		b.add(opFetchAddrLo)
		b.add(opFetchAddrHiX)
		b.add(opFixupAddr)
	case instructions.AbsoluteIndexedY:
		b.add(opFetchAddrLo)
		b.add(opFetchAddrHiY)
		b.add(opFixupAddr)
	case instructions.IndexedIndirect:
		b.add(opFetchPointer)
		b.add(opIndexPointerX)
		b.add(opFetchAddrLoPointer)
		b.add(opFetchAddrHiPointer)
	case instructions.IndirectIndexed:
		b.add(opFetchPointer)
		b.add(opFetchAddrLoPointer)
		b.add(opFetchAddrHiPointerY)
		b.add(opFixupAddr)
	default:
		panic(fmt.Sprintf("cpu: no addressing sequence for %s", defn))
	}

	switch defn.Effect {
	case instructions.Read:
		b.add(opRead)
	case instructions.Write:
		b.add(opWrite)
	case instructions.RMW:
		b.add(opReadData)
		b.add(opModify)
		b.add(opWriteData)
	default:
		panic(fmt.Sprintf("cpu: no execution sequence for %s", defn))
	}
}
