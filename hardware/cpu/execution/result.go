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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. will be nil for interrupt sequences
	Defn *instructions.Definition

	// the name of the interrupt sequence if this result is for an interrupt
	// rather than an instruction
	Interrupt string

	// the operand of the instruction. the number of meaningful bytes depends
	// on the addressing mode
	InstructionData uint16

	// the number of bytes read from the program counter during decoding
	ByteCount int

	// the actual number of cycles taken by the instruction. this will
	// include any cycles added because of page faults and taken branches
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether the branch instruction resulted in the branch being taken
	BranchSuccess bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// whether this data has been finalised. the values of the other fields
	// may be undefined until Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a disassembly of the instruction.
func (r Result) String() string {
	if r.Interrupt != "" {
		return fmt.Sprintf("$%04x %s", r.Address, r.Interrupt)
	}
	if r.Defn == nil {
		return fmt.Sprintf("$%04x ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x %s", r.Address, r.Defn.Operator))

	if r.ByteCount < r.Defn.Bytes {
		return s.String()
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		if r.Defn.IsAccumulator() {
			s.WriteString(" A")
		}
	case instructions.Immediate:
		s.WriteString(fmt.Sprintf(" #$%02x", r.InstructionData))
	case instructions.Relative:
		// branch destination as it would be were the branch to be taken
		dest := r.Address + 2 + uint16(int8(r.InstructionData))
		s.WriteString(fmt.Sprintf(" $%04x", dest))
	case instructions.Absolute:
		s.WriteString(fmt.Sprintf(" $%04x", r.InstructionData))
	case instructions.ZeroPage:
		s.WriteString(fmt.Sprintf(" $%02x", r.InstructionData))
	case instructions.Indirect:
		s.WriteString(fmt.Sprintf(" ($%04x)", r.InstructionData))
	case instructions.IndexedIndirect:
		s.WriteString(fmt.Sprintf(" ($%02x,X)", r.InstructionData))
	case instructions.IndirectIndexed:
		s.WriteString(fmt.Sprintf(" ($%02x),Y", r.InstructionData))
	case instructions.AbsoluteIndexedX:
		s.WriteString(fmt.Sprintf(" $%04x,X", r.InstructionData))
	case instructions.AbsoluteIndexedY:
		s.WriteString(fmt.Sprintf(" $%04x,Y", r.InstructionData))
	case instructions.ZeroPageIndexedX:
		s.WriteString(fmt.Sprintf(" $%02x,X", r.InstructionData))
	case instructions.ZeroPageIndexedY:
		s.WriteString(fmt.Sprintf(" $%02x,Y", r.InstructionData))
	}

	return s.String()
}
