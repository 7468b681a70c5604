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
	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
)

func (mc *CPU) execute(op microOp) {
	switch op {
	case opFetchOpcode:
		mc.fetchOpcode()

	case opIllegal:
		mc.illegal()

	case opFetchZeroPage:
		mc.addr = uint16(mc.readPC())

	case opIndexZeroPageX:
		mc.indexZeroPage(mc.X.Value())

	case opIndexZeroPageY:
		mc.indexZeroPage(mc.Y.Value())

	case opFetchAddrLo:
		mc.addr = uint16(mc.readPC())

	case opFetchAddrHi:
		mc.addr |= uint16(mc.readPC()) << 8

	case opFetchAddrHiX:
		mc.indexAddress(mc.readPC(), mc.X.Value())

	case opFetchAddrHiY:
		mc.indexAddress(mc.readPC(), mc.Y.Value())

	case opFetchPointer:
		mc.pointer = mc.readPC()

	case opIndexPointerX:
		_ = mc.read(uint16(mc.pointer))
		mc.pointer += mc.X.Value()

	case opFetchAddrLoPointer:
		mc.addr = uint16(mc.read(uint16(mc.pointer)))
		mc.pointer++

	case opFetchAddrHiPointer:
		mc.addr |= uint16(mc.read(uint16(mc.pointer))) << 8

	case opFetchAddrHiPointerY:
		mc.indexAddress(mc.read(uint16(mc.pointer)), mc.Y.Value())

	case opFixupAddr:
		// the CPU reads from the uncorrected address while the high byte is
		// being fixed
		_ = mc.read(mc.addr)
		if mc.pageCrossed {
			switch mc.current.Defn.Operator {
			case instructions.Sha, instructions.Shx, instructions.Shy, instructions.Tas:
				// the address is corrupted when the value is written
			default:
				mc.addr += 0x100
			}
		}

	case opImplied:
		_ = mc.read(mc.PC.Address())
		mc.implied()

	case opImmediate:
		mc.operate(mc.readPC())

	case opRead:
		mc.operate(mc.read(mc.addr))

	case opWrite:
		mc.write(mc.addr, mc.storeValue())

	case opReadData:
		mc.data = mc.read(mc.addr)

	case opModify:
		// the unmodified value is written back while the ALU works
		mc.write(mc.addr, mc.data)
		mc.data = mc.modify(mc.data)

	case opWriteData:
		mc.write(mc.addr, mc.data)

	case opBranch:
		mc.data = mc.readPC()
		if !mc.branchCondition() {
			mc.endInstruction()
		} else {
			mc.LastResult.BranchSuccess = true
		}

	case opBranchTaken:
		_ = mc.read(mc.PC.Address())
		pc := mc.PC.Address()
		target := uint16(int(pc) + int(int8(mc.data)))
		if target&0xff00 == pc&0xff00 {
			mc.PC.Load(target)
			mc.endInstruction()
		} else {
			mc.LastResult.PageFault = true
			mc.PC.Load(pc&0xff00 | target&0x00ff)
			mc.addr = target
		}

	case opBranchFixup:
		_ = mc.read(mc.PC.Address())
		mc.PC.Load(mc.addr)

	case opJmpAbs:
		mc.addr |= uint16(mc.readPC()) << 8
		mc.PC.Load(mc.addr)

	case opFetchIndirectLo:
		mc.data = mc.read(mc.addr)

	case opJmpInd:
		mc.PC.Load(mc.indirectTarget())

	case opJsr:
		mc.addr |= uint16(mc.readPC()) << 8
		mc.PC.Load(mc.addr)

	case opRtsIncPC:
		_ = mc.read(mc.PC.Address())
		mc.PC.Increment()

	case opDummyReadPC:
		_ = mc.read(mc.PC.Address())

	case opDummyReadStack:
		_ = mc.read(mc.SP.Address())

	case opDummyPush:
		// RESET goes through the motions of pushing to the stack but the
		// write line is never asserted
		_ = mc.read(mc.SP.Address())
		mc.SP.Decrement()

	case opReadPCInc:
		// the padding byte of BRK is not part of the instruction data
		_ = mc.read(mc.PC.Address())
		mc.PC.Increment()

	case opPush:
		var v uint8
		if mc.current.Defn.Operator == instructions.Php {
			v = mc.Status.Value()
		} else {
			v = mc.A.Value()
		}
		mc.write(mc.SP.Push(), v)

	case opPull:
		v := mc.read(mc.SP.Pull())
		if mc.current.Defn.Operator == instructions.Plp {
			mc.Status.Load(v)
		} else {
			mc.A.Load(v)
			mc.setNZ(mc.A)
		}

	case opPushPCH:
		mc.write(mc.SP.Push(), uint8(mc.PC.Address()>>8))

	case opPushPCL:
		mc.write(mc.SP.Push(), uint8(mc.PC.Address()))

	case opPullPCL:
		mc.data = mc.read(mc.SP.Pull())

	case opPullPCH:
		hi := mc.read(mc.SP.Pull())
		mc.PC.Load(uint16(hi)<<8 | uint16(mc.data))

	case opPushSRBrk:
		mc.write(mc.SP.Push(), mc.Status.Value())
		mc.Status.InterruptDisable = true

	case opPushSRInterrupt:
		mc.pushStatusInterrupt()

	case opPullSRRti:
		mc.pullStatusRti()

	case opVectorLo:
		mc.data = mc.read(mc.current.vector)
		mc.Status.InterruptDisable = true

	case opVectorHi:
		hi := mc.read(mc.current.vector + 1)
		mc.PC.Load(uint16(hi)<<8 | uint16(mc.data))
		if mc.current.Defn == nil {
			mc.LastResult.Final = true
		}

	case opSidFetchOpcode:
		mc.sidFetchOpcode()

	case opSidIllegal:
		mc.sidIllegal()

	case opSidJmpAbs:
		mc.addr |= uint16(mc.readPC()) << 8
		mc.sidJump(mc.addr)

	case opSidJmpInd:
		mc.sidJump(mc.indirectTarget())

	case opSidCli:
		mc.sidCli()

	case opSidRti:
		mc.sidRti()

	case opSidBrk:
		mc.sidBrk()

	case opSidPushSRInterrupt:
		mc.sidPushStatusInterrupt()

	case opSidDelay:
		mc.sidDelay()

	default:
		panic("cpu: unhandled micro-op " + op.String())
	}
}

func (mc *CPU) indexZeroPage(idx uint8) {
	_ = mc.read(mc.addr)
	v := uint8(mc.addr) + idx
	if v < uint8(mc.addr) {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}
	mc.addr = uint16(v)
}

// complete the indexed address. the low byte of the address is already in the
// addr field. the result is the address before any page correction
func (mc *CPU) indexAddress(hi uint8, idx uint8) {
	lo := uint16(uint8(mc.addr)) + uint16(idx)
	mc.baseHi = hi
	mc.pageCrossed = lo > 0xff
	mc.addr = uint16(hi)<<8 | lo&0x00ff

	if !mc.current.Defn.PageSensitive {
		return
	}

	if mc.pageCrossed {
		mc.LastResult.PageFault = true
	} else {
		// skip the fixup step
		mc.cursor++
	}
}

// the target of an indirect jump. the pointer never crosses a page
func (mc *CPU) indirectTarget() uint16 {
	if mc.addr&0x00ff == 0x00ff {
		mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
	}
	hi := mc.read(mc.addr&0xff00 | uint16(uint8(mc.addr+1)))
	return uint16(hi)<<8 | uint16(mc.data)
}

func (mc *CPU) pushStatusInterrupt() {
	mc.write(mc.SP.Push(), mc.Status.Value()&^registers.Break)
	mc.Status.InterruptDisable = true
}

// the flags pulled by RTI take effect immediately
func (mc *CPU) pullStatusRti() {
	mc.Status.Load(mc.read(mc.SP.Pull()))
	mc.irqDisable = mc.Status.InterruptDisable
}

func (mc *CPU) branchCondition() bool {
	switch mc.current.Defn.Operator {
	case instructions.Bcc:
		return !mc.Status.Carry
	case instructions.Bcs:
		return mc.Status.Carry
	case instructions.Beq:
		return mc.Status.Zero
	case instructions.Bne:
		return !mc.Status.Zero
	case instructions.Bmi:
		return mc.Status.Sign
	case instructions.Bpl:
		return !mc.Status.Sign
	case instructions.Bvc:
		return !mc.Status.Overflow
	case instructions.Bvs:
		return mc.Status.Overflow
	}
	panic("cpu: not a branch instruction " + mc.current.Defn.String())
}
