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

	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6510/hardware/preferences"
	"github.com/jetsetilly/gopher6510/hardware/scheduler"
)

type busEvent struct {
	address uint16
	data    uint8
	write   bool
}

// testEnv is a flat 64k memory that records every bus access
type testEnv struct {
	mem [0x10000]uint8
	bus []busEvent

	resets int
	sleeps int

	// bank jumps are refused if refuse is true
	refuse bool
}

func (env *testEnv) ReadByte(address uint16) uint8 {
	data := env.mem[address]
	env.bus = append(env.bus, busEvent{address: address, data: data})
	return data
}

func (env *testEnv) ReadDataByte(address uint16) uint8 {
	return env.mem[address]
}

func (env *testEnv) WriteByte(address uint16, data uint8) {
	env.mem[address] = data
	env.bus = append(env.bus, busEvent{address: address, data: data, write: true})
}

func (env *testEnv) Reset() {
	env.resets++
}

func (env *testEnv) Sleep() {
	env.sleeps++
}

func (env *testEnv) CheckBankJump(address uint16) bool {
	return !env.refuse
}

// load program at address and point the reset vector at it
func (env *testEnv) load(address uint16, program ...uint8) {
	copy(env.mem[address:], program)
	env.mem[cpubus.Reset] = uint8(address)
	env.mem[cpubus.Reset+1] = uint8(address >> 8)
}

func (env *testEnv) vector(vector uint16, address uint16) {
	env.mem[vector] = uint8(address)
	env.mem[vector+1] = uint8(address >> 8)
}

const origin = uint16(0x1000)

func newGeneric(program ...uint8) (*cpu.CPU, *scheduler.Scheduler, *testEnv) {
	env := &testEnv{}
	env.load(origin, program...)
	sch := scheduler.NewScheduler()
	mc := cpu.NewCPU(nil, sch, env)
	mc.Reset()
	return mc, sch, env
}

func newSid(mode string, program ...uint8) (*cpu.CPU, *scheduler.Scheduler, *testEnv, *preferences.Preferences) {
	env := &testEnv{}
	env.load(origin, program...)
	sch := scheduler.NewScheduler()
	p := preferences.NewDetachedPreferences()
	_ = p.Environment.Set(mode)
	mc := cpu.NewSidCPU(p, sch, env)
	mc.Reset()
	return mc, sch, env, p
}

// step runs the scheduler until the current instruction or interrupt sequence
// has completed
func step(t *testing.T, sch *scheduler.Scheduler, mc *cpu.CPU) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if !sch.Clock() {
			t.Fatalf("nothing scheduled")
		}
		if mc.LastResult.Final {
			return
		}
	}
	t.Fatalf("instruction did not complete: %s", mc.LastResult.String())
}
