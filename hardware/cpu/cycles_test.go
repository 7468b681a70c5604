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
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6510/hardware/preferences"
	"github.com/jetsetilly/gopher6510/hardware/scheduler"
	"github.com/jetsetilly/gopher6510/test"
)

// the operand of the instructions in the cycle tests. indexing it by $20
// crosses into the next page
const operand = uint16(0x20f0)

// both variants must take the documented number of cycles. the compatibility
// variant is tested in the real environment where it behaves like the
// hardware
var variants = []struct {
	name   string
	create func(sch *scheduler.Scheduler, env *testEnv) *cpu.CPU
}{
	{"generic", func(sch *scheduler.Scheduler, env *testEnv) *cpu.CPU {
		return cpu.NewCPU(nil, sch, env)
	}},
	{"real", func(sch *scheduler.Scheduler, env *testEnv) *cpu.CPU {
		p := preferences.NewDetachedPreferences()
		_ = p.Environment.Set("real")
		return cpu.NewSidCPU(p, sch, env)
	}},
}

func TestCyclesAllOpcodes(t *testing.T) {
	for _, v := range variants {
		for _, defn := range instructions.Definitions() {
			if defn.Operator == instructions.Kil {
				continue
			}
			if defn.IsBranch() {
				branchCycles(t, v.name, v.create, defn)
				continue
			}

			for _, cross := range []bool{false, true} {
				tag := fmt.Sprintf("%s %s cross=%v", v.name, defn, cross)

				env := &testEnv{}
				env.load(origin, defn.OpCode, uint8(operand&0xff), uint8(operand>>8))

				// the zero page pointer used by the (zp),Y mode
				env.mem[operand&0xff] = uint8(operand & 0xff)
				env.mem[operand&0xff+1] = uint8(operand >> 8)

				sch := scheduler.NewScheduler()
				mc := v.create(sch, env)
				mc.Reset()
				if cross {
					mc.X.Load(0x20)
					mc.Y.Load(0x20)
				}

				step(t, sch, mc)

				penalty := cross && defn.PageSensitive
				expected := defn.Cycles
				if penalty {
					expected++
				}
				test.ExpectEquality(t, mc.LastResult.Cycles, expected, tag)
				test.ExpectEquality(t, mc.LastResult.PageFault, penalty, tag)
			}
		}
	}
}

// a branch takes one more cycle when it is taken and another when the target
// is in a different page. every branch is taken for exactly one of the two
// status values
func branchCycles(t *testing.T, name string, create func(*scheduler.Scheduler, *testEnv) *cpu.CPU, defn instructions.Definition) {
	t.Helper()

	var taken int
	for _, status := range []uint8{0x00, 0xff} {
		for _, cross := range []bool{false, true} {
			tag := fmt.Sprintf("%s %s status=%02x cross=%v", name, defn, status, cross)

			at := origin
			if cross {
				at += 0xf0
			}

			env := &testEnv{}
			env.load(at, defn.OpCode, 0x20)

			sch := scheduler.NewScheduler()
			mc := create(sch, env)
			mc.Reset()
			mc.Status.Load(status)

			step(t, sch, mc)

			expected := defn.Cycles
			if mc.LastResult.BranchSuccess {
				expected++
				if cross {
					expected++
				} else {
					taken++
				}
				test.ExpectEquality(t, mc.PC.Address(), at+0x22, tag)
			} else {
				test.ExpectEquality(t, mc.PC.Address(), at+0x02, tag)
			}
			test.ExpectEquality(t, mc.LastResult.Cycles, expected, tag)
			test.ExpectEquality(t, mc.LastResult.PageFault, mc.LastResult.BranchSuccess && cross, tag)
		}
	}

	test.ExpectEquality(t, taken, 1, name, defn.String())
}
