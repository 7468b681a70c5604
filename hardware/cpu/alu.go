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

func (mc *CPU) setNZ(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

func (mc *CPU) adc(v uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.AddDecimal(v, mc.Status.Carry)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
		mc.setNZ(mc.A)
	}
}

func (mc *CPU) sbc(v uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.SubtractDecimal(v, mc.Status.Carry)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
		mc.setNZ(mc.A)
	}
}

// maybe surprisingly, compare can be implemented with binary subtract even if
// decimal mode is active (the meaning is the same)
func (mc *CPU) compare(reg uint8, v uint8) {
	mc.acc8.Load(reg)
	mc.Status.Carry, _ = mc.acc8.Subtract(v, true)
	mc.setNZ(mc.acc8)
}

// operate is the execution step of instructions that read a value from
// memory or from the instruction stream.
func (mc *CPU) operate(v uint8) {
	switch mc.current.Defn.Operator {
	case instructions.Nop:
		// undocumented NOPs read their operand and discard it

	case instructions.Adc:
		mc.adc(v)

	case instructions.Sbc:
		mc.sbc(v)

	case instructions.And:
		mc.A.AND(v)
		mc.setNZ(mc.A)

	case instructions.Ora:
		mc.A.ORA(v)
		mc.setNZ(mc.A)

	case instructions.Eor:
		mc.A.EOR(v)
		mc.setNZ(mc.A)

	case instructions.Lda:
		mc.A.Load(v)
		mc.setNZ(mc.A)

	case instructions.Ldx:
		mc.X.Load(v)
		mc.setNZ(mc.X)

	case instructions.Ldy:
		mc.Y.Load(v)
		mc.setNZ(mc.Y)

	case instructions.Cmp:
		mc.compare(mc.A.Value(), v)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), v)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), v)

	case instructions.Bit:
		mc.acc8.Load(v)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Lax:
		mc.A.Load(v)
		mc.X.Load(v)
		mc.setNZ(mc.A)

	case instructions.Anc:
		// immediate AND. puts bit 7 into the carry flag (in microcode terms
		// this is as though ASL had been enacted)
		mc.A.AND(v)
		mc.setNZ(mc.A)
		mc.Status.Carry = mc.Status.Sign

	case instructions.Alr:
		mc.A.AND(v)
		mc.Status.Carry = mc.A.LSR()
		mc.setNZ(mc.A)

	case instructions.Arr:
		mc.arr(v)

	case instructions.Ane:
		// the magic constant differs between chips. 0xee is the value most
		// commonly seen on the C64
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & v)
		mc.setNZ(mc.A)

	case instructions.Lxa:
		mc.A.Load((mc.A.Value() | 0xee) & v)
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.A)

	case instructions.Sbx:
		// carry behaves like CMP. the decimal flag has no effect
		ax := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = ax >= v
		mc.X.Load(ax - v)
		mc.setNZ(mc.X)

	case instructions.Las:
		v &= mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.setNZ(mc.A)

	default:
		panic("cpu: not a read instruction " + mc.current.Defn.String())
	}
}

// AND followed by ROR with peculiar flag results. in decimal mode the result
// is corrected in a similar way to ADC
func (mc *CPU) arr(v uint8) {
	t := mc.A.Value() & v

	r := t >> 1
	if mc.Status.Carry {
		r |= 0x80
	}

	if !mc.Status.DecimalMode {
		mc.A.Load(r)
		mc.setNZ(mc.A)
		mc.Status.Carry = r&0x40 == 0x40
		mc.Status.Overflow = (r&0x40)^((r&0x20)<<1) != 0
		return
	}

	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = r == 0
	mc.Status.Overflow = (t^r)&0x40 == 0x40

	if (t&0x0f)+(t&0x01) > 0x05 {
		r = (r & 0xf0) | ((r + 0x06) & 0x0f)
	}
	if uint16(t&0xf0)+uint16(t&0x10) > 0x50 {
		r = (r & 0x0f) | ((r + 0x60) & 0xf0)
		mc.Status.Carry = true
	} else {
		mc.Status.Carry = false
	}

	mc.A.Load(r)
}

// implied is the execution step of single byte instructions, including the
// accumulator forms of the shift and rotate instructions.
func (mc *CPU) implied() {
	switch mc.current.Defn.Operator {
	case instructions.Nop:
	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X)
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y)
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A)
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A)
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X)
	case instructions.Txs:
		// does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setNZ(mc.X)
	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setNZ(mc.Y)
	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setNZ(mc.X)
	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setNZ(mc.Y)

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		mc.A.Load(mc.modify(mc.A.Value()))

	default:
		panic("cpu: not an implied instruction " + mc.current.Defn.String())
	}
}

// modify is the ALU step of the read-modify-write instructions. The modified
// value is returned.
func (mc *CPU) modify(v uint8) uint8 {
	r := &mc.acc8
	r.Load(v)

	switch mc.current.Defn.Operator {
	case instructions.Asl:
		mc.Status.Carry = r.ASL()
		mc.setNZ(*r)

	case instructions.Lsr:
		mc.Status.Carry = r.LSR()
		mc.setNZ(*r)

	case instructions.Rol:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setNZ(*r)

	case instructions.Ror:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setNZ(*r)

	case instructions.Inc:
		r.Add(1, false)
		mc.setNZ(*r)

	case instructions.Dec:
		r.Add(0xff, false)
		mc.setNZ(*r)

	case instructions.Slo:
		mc.Status.Carry = r.ASL()
		mc.A.ORA(r.Value())
		mc.setNZ(mc.A)

	case instructions.Rla:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.A.AND(r.Value())
		mc.setNZ(mc.A)

	case instructions.Sre:
		mc.Status.Carry = r.LSR()
		mc.A.EOR(r.Value())
		mc.setNZ(mc.A)

	case instructions.Rra:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.adc(r.Value())

	case instructions.Dcp:
		// compare() uses acc8 so the result is kept separately
		d := v - 1
		mc.compare(mc.A.Value(), d)
		return d

	case instructions.Isc:
		r.Add(1, false)
		mc.sbc(r.Value())

	default:
		panic("cpu: not a read-modify-write instruction " + mc.current.Defn.String())
	}

	return r.Value()
}

// storeValue is the value written by the store instructions.
func (mc *CPU) storeValue() uint8 {
	switch mc.current.Defn.Operator {
	case instructions.Sta:
		return mc.A.Value()
	case instructions.Stx:
		return mc.X.Value()
	case instructions.Sty:
		return mc.Y.Value()
	case instructions.Sax:
		return mc.A.Value() & mc.X.Value()
	case instructions.Sha:
		return mc.unstableStore(mc.A.Value() & mc.X.Value())
	case instructions.Shx:
		return mc.unstableStore(mc.X.Value())
	case instructions.Shy:
		return mc.unstableStore(mc.Y.Value())
	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		return mc.unstableStore(mc.SP.Value())
	}
	panic("cpu: not a store instruction " + mc.current.Defn.String())
}

// the SH* family store the value ANDed with the high byte of the base address
// plus one. if the indexing crossed a page then the stored value also
// replaces the high byte of the address
func (mc *CPU) unstableStore(v uint8) uint8 {
	v &= mc.baseHi + 1
	if mc.pageCrossed {
		mc.addr = uint16(v)<<8 | mc.addr&0x00ff
		mc.LastResult.CPUBug = execution.UnstableHighByteBug
	}
	return v
}
