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

// microOp identifies one of the primitive operations that make up an
// instruction. Each micro-op takes exactly one cycle.
type microOp uint8

// List of micro-ops. The ops prefixed with opSid are the mode sensitive
// replacements found only in the tables of the compatibility variant.
const (
	opFetchOpcode microOp = iota
	opIllegal

	// operand fetch and address calculation
	opFetchZeroPage
	opIndexZeroPageX
	opIndexZeroPageY
	opFetchAddrLo
	opFetchAddrHi
	opFetchAddrHiX
	opFetchAddrHiY
	opFetchPointer
	opIndexPointerX
	opFetchAddrLoPointer
	opFetchAddrHiPointer
	opFetchAddrHiPointerY
	opFixupAddr

	// instruction execution
	opImplied
	opImmediate
	opRead
	opWrite
	opReadData
	opModify
	opWriteData

	// flow control
	opBranch
	opBranchTaken
	opBranchFixup
	opJmpAbs
	opFetchIndirectLo
	opJmpInd
	opJsr
	opRtsIncPC

	// stack
	opDummyReadPC
	opDummyReadStack
	opDummyPush
	opReadPCInc
	opPush
	opPull
	opPushPCH
	opPushPCL
	opPullPCL
	opPullPCH
	opPushSRBrk
	opPushSRInterrupt
	opPullSRRti

	// interrupt vectors
	opVectorLo
	opVectorHi

	// compatibility variant
	opSidFetchOpcode
	opSidIllegal
	opSidJmpAbs
	opSidJmpInd
	opSidCli
	opSidRti
	opSidBrk
	opSidPushSRInterrupt
	opSidDelay

	numMicroOps
)

var microOpNames = [numMicroOps]string{
	"FetchOpcode",
	"Illegal",
	"FetchZeroPage",
	"IndexZeroPageX",
	"IndexZeroPageY",
	"FetchAddrLo",
	"FetchAddrHi",
	"FetchAddrHiX",
	"FetchAddrHiY",
	"FetchPointer",
	"IndexPointerX",
	"FetchAddrLoPointer",
	"FetchAddrHiPointer",
	"FetchAddrHiPointerY",
	"FixupAddr",
	"Implied",
	"Immediate",
	"Read",
	"Write",
	"ReadData",
	"Modify",
	"WriteData",
	"Branch",
	"BranchTaken",
	"BranchFixup",
	"JmpAbs",
	"FetchIndirectLo",
	"JmpInd",
	"Jsr",
	"RtsIncPC",
	"DummyReadPC",
	"DummyReadStack",
	"DummyPush",
	"ReadPCInc",
	"Push",
	"Pull",
	"PushPCH",
	"PushPCL",
	"PullPCL",
	"PullPCH",
	"PushSRBrk",
	"PushSRInterrupt",
	"PullSRRti",
	"VectorLo",
	"VectorHi",
	"SidFetchOpcode",
	"SidIllegal",
	"SidJmpAbs",
	"SidJmpInd",
	"SidCli",
	"SidRti",
	"SidBrk",
	"SidPushSRInterrupt",
	"SidDelay",
}

func (op microOp) String() string {
	if op >= numMicroOps {
		return "unknown"
	}
	return microOpNames[op]
}

// writes to memory. once a write has been issued by an instruction the
// remaining steps of that instruction can no longer be delayed by the bus
func (op microOp) isWrite() bool {
	switch op {
	case opWrite, opModify, opWriteData, opPush,
		opPushPCH, opPushPCL, opPushSRBrk, opPushSRInterrupt,
		opSidBrk, opSidPushSRInterrupt:
		return true
	}
	return false
}
