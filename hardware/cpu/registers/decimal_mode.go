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

package registers

// the decimal correction of a single nibble. in addition a digit above 9 is
// pushed into the next nibble. in subtraction a digit that has gone below
// zero is brought back into range. the returned bool is the carry or the
// borrow for the next nibble
func adjustNibble(n uint16, subtract bool) (uint16, bool) {
	if subtract {
		if n&0x10 == 0x10 {
			return n - 0x06, true
		}
		return n, false
	}
	if n > 0x09 {
		n += 0x06
	}
	return n, n > 0x0f
}

// decimal is the BCD arithmetic shared by ADC and SBC. for subtraction the c
// argument is the borrow.
//
// the mid value is the high nibble after the carry from the low nibble but
// before its own correction
func decimal(a uint8, s uint8, c bool, subtract bool) (result uint8, carry bool, mid uint16) {
	op := func(x, y uint16, c bool) uint16 {
		var k uint16
		if c {
			k = 1
		}
		if subtract {
			return x - y - k
		}
		return x + y + k
	}

	lo, c := adjustNibble(op(uint16(a&0x0f), uint16(s&0x0f), c), subtract)
	mid = op(uint16(a>>4), uint16(s>>4), c)
	hi, carry := adjustNibble(mid, subtract)

	return uint8(hi<<4) | uint8(lo&0x0f), carry, mid
}

// AddDecimal adds value to register as though both are decimal (BCD)
// representations. Returns new carry state, zero, overflow, sign bit
// information.
//
// The flags are those of the NMOS 6502:
//
//   - Z is taken from the binary sum and not from the decimal result
//   - N and V are computed after the decimal adjustment of the low nibble
//     but before the adjustment of the high nibble
//
// Invalid BCD operands produce the same (undocumented) results as the real
// hardware.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	var c uint8
	if carry {
		c = 1
	}
	zero = r.value+val+c == 0

	a := r.value
	var mid uint16
	r.value, rcarry, mid = decimal(a, val, carry, false)

	hi := uint8(mid << 4)
	sign = hi&0x80 == 0x80
	overflow = (hi^a)&0x80 == 0x80 && (a^val)&0x80 == 0x00

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are decimal
// (BCD) representations. Returns new carry state, zero, overflow, sign bit
// information.
//
// On the NMOS 6502 all the flags are the same as for a binary subtraction.
// Only the value in the register is decimal adjusted.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	bin := NewRegister(r.value, "")
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	r.value, _, _ = decimal(r.value, val, !carry, true)

	return rcarry, zero, overflow, sign
}
