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
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/test"
)

func TestReset(t *testing.T) {
	mc, _, _ := newGeneric(0xea)
	mc.A.Load(0x12)
	mc.X.Load(0x34)
	mc.Y.Load(0x56)
	mc.Status.Load(0xff)
	mc.SP.Load(0x00)

	mc.Reset()
	test.ExpectEquality(t, mc.PC.Address(), origin)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "nv--diZc")

	// the general purpose registers survive a reset
	test.ExpectEquality(t, mc.A.Value(), uint8(0x12))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x34))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0x56))
}

func TestResetToGeneric(t *testing.T) {
	mc, _, _ := newGeneric(0xea)
	err := mc.ResetTo(0x2000, 1, 2, 3)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.ResetToNotSupported))
}

func TestLoadStore(t *testing.T) {
	mc, sch, env := newGeneric(
		0xa9, 0x42, // LDA #$42
		0x8d, 0x00, 0x02, // STA $0200
		0xa2, 0x00, // LDX #$00
	)

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.String(), "$1000 LDA #$42")
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.String(), "$1002 STA $0200")
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, env.mem[0x0200], uint8(0x42))
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	step(t, sch, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Sign, false)
}

func TestLoop(t *testing.T) {
	mc, sch, _ := newGeneric(
		0xa2, 0x05, // LDX #$05
		0xca, // DEX
		0xd0, 0xfd, // BNE $1002
		0xea, // NOP
	)

	step(t, sch, mc)
	for i := 4; i >= 0; i-- {
		step(t, sch, mc)
		test.ExpectEquality(t, mc.X.Value(), uint8(i))
		step(t, sch, mc)
		test.ExpectEquality(t, mc.LastResult.BranchSuccess, i != 0)
		if i != 0 {
			test.ExpectEquality(t, mc.LastResult.Cycles, 3)
		} else {
			test.ExpectEquality(t, mc.LastResult.Cycles, 2)
		}
		test.ExpectSuccess(t, mc.LastResult.IsValid())
	}
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1005))
}

func TestBranchPageCross(t *testing.T) {
	mc, sch, env := newGeneric()
	env.load(0x10fc,
		0x18,       // CLC
		0x90, 0x10, // BCC $110f
	)
	mc.Reset()

	step(t, sch, mc)
	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, true)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x110f))
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}

func TestIndexedPageCross(t *testing.T) {
	mc, sch, env := newGeneric(
		0xa2, 0x01, // LDX #$01
		0xbd, 0x00, 0x20, // LDA $2000,X
		0xbd, 0xff, 0x20, // LDA $20ff,X
		0x9d, 0x00, 0x20, // STA $2000,X
	)
	env.mem[0x2001] = 0x11
	env.mem[0x2100] = 0x22

	step(t, sch, mc)

	step(t, sch, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x11))
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	env.bus = env.bus[:0]
	step(t, sch, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x22))
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	// the uncorrected address is read before the corrected address
	test.ExpectEquality(t, len(env.bus), 5)
	test.ExpectEquality(t, env.bus[3].address, uint16(0x2000))
	test.ExpectEquality(t, env.bus[4].address, uint16(0x2100))

	// stores always take the extra cycle
	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	test.ExpectEquality(t, env.mem[0x2001], uint8(0x22))
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}

func TestReadModifyWrite(t *testing.T) {
	mc, sch, env := newGeneric(
		0xee, 0x00, 0x02, // INC $0200
	)
	env.mem[0x0200] = 0x41

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, env.mem[0x0200], uint8(0x42))

	// read, write of the unmodified value and then the write of the modified
	// value
	n := len(env.bus)
	test.DemandEquality(t, n, 6)
	test.ExpectEquality(t, env.bus[n-3], busEvent{address: 0x0200, data: 0x41})
	test.ExpectEquality(t, env.bus[n-2], busEvent{address: 0x0200, data: 0x41, write: true})
	test.ExpectEquality(t, env.bus[n-1], busEvent{address: 0x0200, data: 0x42, write: true})
}

func TestSubroutine(t *testing.T) {
	mc, sch, env := newGeneric(
		0x20, 0x00, 0x20, // JSR $2000
		0xea, // NOP
	)
	copy(env.mem[0x2000:], []uint8{
		0xa0, 0x07, // LDY #$07
		0x60, // RTS
	})

	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x2000))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))

	// the return address is the last byte of the JSR instruction
	test.ExpectEquality(t, env.mem[0x01ff], uint8(0x10))
	test.ExpectEquality(t, env.mem[0x01fe], uint8(0x02))

	step(t, sch, mc)
	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1003))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0x07))
}

func TestJmpIndirectBug(t *testing.T) {
	mc, sch, env := newGeneric(
		0x6c, 0xff, 0x20, // JMP ($20ff)
	)
	env.mem[0x20ff] = 0x34
	env.mem[0x2000] = 0x12
	env.mem[0x2100] = 0x56

	step(t, sch, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
}

func TestDecimalMode(t *testing.T) {
	mc, sch, _ := newGeneric(
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x19, // LDA #$19
		0x69, 0x01, // ADC #$01
		0x38,       // SEC
		0xe9, 0x21, // SBC #$21
	)

	for i := 0; i < 4; i++ {
		step(t, sch, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), uint8(0x20))
	test.ExpectEquality(t, mc.Status.Carry, false)

	step(t, sch, mc)
	step(t, sch, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
	test.ExpectEquality(t, mc.Status.Carry, false)
}

func TestStatusPush(t *testing.T) {
	mc, sch, _ := newGeneric(
		0x38, // SEC
		0x08, // PHP
		0x68, // PLA
		0x18, // CLC
		0x48, // PHA
		0x28, // PLP
	)

	step(t, sch, mc)
	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)
	step(t, sch, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)

	// the pushed value has the unused and break bits set
	test.ExpectEquality(t, mc.A.Value(), uint8(registers.Unused|registers.Break|0x03))

	step(t, sch, mc)
	step(t, sch, mc)
	step(t, sch, mc)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func TestUndocumented(t *testing.T) {
	mc, sch, env := newGeneric(
		0xa9, 0xf0, // LDA #$f0
		0xa2, 0x3c, // LDX #$3c
		0x87, 0x10, // SAX $10
		0xa7, 0x11, // LAX $11
		0xcb, 0x02, // SBX #$02
		0xc7, 0x12, // DCP $12
	)
	env.mem[0x11] = 0x81
	env.mem[0x12] = 0x82

	step(t, sch, mc)
	step(t, sch, mc)
	step(t, sch, mc)
	test.ExpectEquality(t, env.mem[0x10], uint8(0x30))

	step(t, sch, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x81))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x81))

	step(t, sch, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(0x7f))
	test.ExpectEquality(t, mc.Status.Carry, true)

	step(t, sch, mc)
	test.ExpectEquality(t, env.mem[0x12], uint8(0x81))
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
}

func TestIllegal(t *testing.T) {
	mc, sch, env := newGeneric(
		0x02, // KIL
	)
	step(t, sch, mc)
	test.ExpectEquality(t, env.resets, 1)
}

func TestWriteNotStolen(t *testing.T) {
	mc, sch, env := newGeneric(
		0x8d, 0x00, 0x02, // STA $0200
	)
	mc.A.Load(0x99)

	// fetch, address low, address high
	sch.Clock()
	sch.Clock()
	sch.Clock()

	// the write step goes ahead without the bus
	mc.SetBusAvailable(false)
	sch.Clock()
	test.ExpectEquality(t, env.mem[0x0200], uint8(0x99))
	test.ExpectEquality(t, mc.LastResult.Final, true)

	// but the next read does not
	test.ExpectEquality(t, sch.Clock(), true)
	test.ExpectEquality(t, sch.IsPending(mc), false)

	mc.SetBusAvailable(true)
	test.ExpectEquality(t, sch.IsPending(mc), true)
}
