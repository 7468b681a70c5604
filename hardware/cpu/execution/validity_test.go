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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher6510/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6510/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	// LDA abs,X
	defn := instructions.Get(0xbd)
	r = execution.Result{
		Address:   0x1000,
		Defn:      &defn,
		ByteCount: 3,
		Cycles:    4,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())

	// STA abs,X is not page sensitive
	defn = instructions.Get(0x9d)
	r = execution.Result{
		Defn:      &defn,
		ByteCount: 3,
		Cycles:    5,
		PageFault: true,
		Final:     true,
	}
	test.ExpectFailure(t, r.IsValid())
}

func TestValidityBranch(t *testing.T) {
	defn := instructions.Get(0xd0)
	r := execution.Result{
		Defn:      &defn,
		ByteCount: 2,
		Final:     true,
	}
	for c := 2; c <= 4; c++ {
		r.Cycles = c
		test.ExpectSuccess(t, r.IsValid(), c)
	}
	r.Cycles = 5
	test.ExpectFailure(t, r.IsValid())
}

func TestDisassembly(t *testing.T) {
	defn := instructions.Get(0xd0)
	r := execution.Result{
		Address:         0x1000,
		Defn:            &defn,
		InstructionData: 0xfe,
		ByteCount:       2,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "$1000 BNE $1000")

	defn = instructions.Get(0x91)
	r = execution.Result{
		Address:         0x2000,
		Defn:            &defn,
		InstructionData: 0xfb,
		ByteCount:       2,
	}
	test.ExpectEquality(t, r.String(), "$2000 STA ($fb),Y")

	r = execution.Result{Address: 0xc000, Interrupt: "IRQ"}
	test.ExpectEquality(t, r.String(), "$c000 IRQ")
}
