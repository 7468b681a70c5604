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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6510/hardware/preferences"
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/hardware/scheduler"
	"github.com/jetsetilly/gopher6510/test"
)

func TestNMI(t *testing.T) {
	mc, sch, env := newGeneric(0xea, 0xea, 0xea, 0xea)
	env.vector(cpubus.NMI, 0x3000)
	copy(env.mem[0x3000:], []uint8{0xea, 0xea, 0xea})

	mc.TriggerNMI()

	// the instruction in progress is always completed
	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "")

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "NMI")
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x3000))
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// return address and status. the break bit is clear
	test.ExpectEquality(t, env.mem[0x01ff], uint8(0x10))
	test.ExpectEquality(t, env.mem[0x01fe], uint8(0x01))
	test.ExpectEquality(t, env.mem[0x01fd]&registers.Break, uint8(0))
	test.ExpectEquality(t, env.mem[0x01fd]&registers.Unused, uint8(registers.Unused))

	// NMI is edge triggered and is not serviced again
	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "")
	test.ExpectEquality(t, mc.LastResult.Address, uint16(0x3000))
}

func TestNMIDelay(t *testing.T) {
	mc, sch, env := newGeneric(0xea, 0xea, 0xea, 0xea)
	env.vector(cpubus.NMI, 0x3000)
	copy(env.mem[0x3000:], []uint8{0xea, 0xea, 0xea})

	// fetch and execute the first NOP
	sch.Clock()
	sch.Clock()
	test.ExpectEquality(t, mc.LastResult.Final, true)

	// an NMI raised on the last cycle of an instruction is too recent to be
	// serviced at the end of that instruction
	mc.TriggerNMI()
	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "")
	test.ExpectEquality(t, mc.LastResult.Address, uint16(0x1001))

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "NMI")
}

func TestIRQMasked(t *testing.T) {
	mc, sch, env := newGeneric(0x78, 0xea, 0xea, 0xea, 0xea)
	env.vector(cpubus.IRQ, 0x3000)

	step(t, sch, mc)
	step(t, sch, mc)
	test.ExpectSuccess(t, mc.TriggerIRQ())

	for i := 0; i < 3; i++ {
		step(t, sch, mc)
		test.ExpectEquality(t, mc.LastResult.Interrupt, "")
	}
}

func TestCLILag(t *testing.T) {
	mc, sch, env := newGeneric(
		0x78, // SEI
		0xea, // NOP
		0x58, // CLI
		0xea, // NOP
		0xea, // NOP
	)
	env.vector(cpubus.IRQ, 0x3000)
	copy(env.mem[0x3000:], []uint8{
		0xe8, // INX
		0x40, // RTI
	})

	step(t, sch, mc)
	step(t, sch, mc)
	test.ExpectSuccess(t, mc.TriggerIRQ())

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Address, uint16(0x1002))

	// the change to the interrupt disable flag is seen one instruction late
	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "")
	test.ExpectEquality(t, mc.LastResult.Address, uint16(0x1003))

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "IRQ")
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x3000))
	test.ExpectEquality(t, env.mem[0x01fd]&registers.Break, uint8(0))

	// acknowledge the interrupt in the handler
	step(t, sch, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(1))
	mc.ClearIRQ()

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1004))
	test.ExpectEquality(t, mc.Status.InterruptDisable, false)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "")
	test.ExpectEquality(t, mc.LastResult.Address, uint16(0x1004))
}

func TestTooManyIRQs(t *testing.T) {
	mc, _, _ := newGeneric(0xea)

	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, mc.TriggerIRQ())
	}

	err := mc.TriggerIRQ()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.TooManyIRQs))

	// clearing one IRQ makes room for another
	mc.ClearIRQ()
	test.ExpectSuccess(t, mc.TriggerIRQ())
}

func TestTooManyIRQsPanic(t *testing.T) {
	env := &testEnv{}
	sch := scheduler.NewScheduler()
	p := preferences.NewDetachedPreferences()
	test.ExpectSuccess(t, p.IRQOverflow.Set("panic"))
	mc := cpu.NewCPU(p, sch, env)
	mc.Reset()

	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, mc.TriggerIRQ())
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic value")
		}
		if err, ok := r.(error); ok {
			test.ExpectSuccess(t, curated.Is(err, cpu.TooManyIRQs))
		}
	}()
	_ = mc.TriggerIRQ()
	t.Errorf("TriggerIRQ() did not panic")
}

func TestBRK(t *testing.T) {
	mc, sch, env := newGeneric(
		0x00, 0xff, // BRK
	)
	env.vector(cpubus.IRQ, 0x3000)

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x3000))
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// the return address skips the padding byte and the break bit is set
	test.ExpectEquality(t, env.mem[0x01ff], uint8(0x10))
	test.ExpectEquality(t, env.mem[0x01fe], uint8(0x02))
	test.ExpectEquality(t, env.mem[0x01fd]&registers.Break, uint8(registers.Break))
}

func TestRST(t *testing.T) {
	mc, sch, env := newGeneric(0xea, 0xea, 0xea)
	mc.A.Load(0x55)

	step(t, sch, mc)
	step(t, sch, mc)

	mc.TriggerRST()
	env.bus = env.bus[:0]

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "RST")
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), origin)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfc))
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x55))

	// the RESET sequence never writes to the stack
	test.ExpectEquality(t, len(env.bus), 7)
	for _, b := range env.bus {
		test.ExpectEquality(t, b.write, false)
	}
}
