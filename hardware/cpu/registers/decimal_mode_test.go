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

package registers_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/test"
)

func toBCD(v int) uint8 {
	return uint8((v/10)<<4 | v%10)
}

// the NMOS overflow flag for decimal addition as described in Appendix A of
// Bruce Clark's "Decimal Mode" tutorial
func nmosAddOverflow(a, b uint8, carry bool) bool {
	al := int(a&0x0f) + int(b&0x0f)
	if carry {
		al++
	}
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}
	s := int(int8(a&0xf0)) + int(int8(b&0xf0)) + al
	return s < -128 || s > 127
}

func TestDecimalModeCarry(t *testing.T) {
	var rcarry bool

	r8 := registers.NewRegister(0, "test")

	// addition without carry
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	test.ExpectEquality(t, rcarry, false)

	// addition with carry
	rcarry, _, _, _ = r8.AddDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x03))
	test.ExpectEquality(t, rcarry, false)

	// subtraction with carry (subtract value)
	r8.Load(9)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x08))

	// subtraction without carry (subtract value and another 1)
	r8.SubtractDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x06))

	// addition on tens boundary
	r8.Load(9)
	r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x10))

	// subtraction on tens boundary
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x09))

	// addition on hundreds boundary
	r8.Load(0x99)
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectEquality(t, rcarry, true)

	// subtraction on hundreds boundary
	rcarry, _, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x99))
	test.ExpectEquality(t, rcarry, false)
}

func TestDecimalModeZero(t *testing.T) {
	var zero bool

	r8 := registers.NewRegister(0x02, "test")
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, zero, false)
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, zero, true)

	// the zero flag for addition comes from the binary result. 0x99 + 0x01 is
	// 0x00 in decimal but 0x9a in binary
	r8.Load(0x99)
	_, zero, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectEquality(t, zero, false)
}

func TestDecimalModeAddTruthTable(t *testing.T) {
	for a := 0; a <= 99; a++ {
		for b := 0; b <= 99; b++ {
			for _, carry := range []bool{false, true} {
				tag := fmt.Sprintf("%02d+%02d c=%v", a, b, carry)

				sum := a + b
				if carry {
					sum++
				}

				r8 := registers.NewRegister(toBCD(a), "test")
				rcarry, _, overflow, _ := r8.AddDecimal(toBCD(b), carry)
				test.ExpectEquality(t, r8.Value(), toBCD(sum%100), tag)
				test.ExpectEquality(t, rcarry, sum > 99, tag)
				test.ExpectEquality(t, overflow, nmosAddOverflow(toBCD(a), toBCD(b), carry), tag)
			}
		}
	}
}

func TestDecimalModeSubtractTruthTable(t *testing.T) {
	for a := 0; a <= 99; a++ {
		for b := 0; b <= 99; b++ {
			for _, carry := range []bool{false, true} {
				tag := fmt.Sprintf("%02d-%02d c=%v", a, b, carry)

				diff := a - b
				if !carry {
					diff--
				}

				// flags are the same as for binary subtraction
				bin := registers.NewRegister(toBCD(a), "bin")
				_, binOverflow := bin.Subtract(toBCD(b), carry)

				r8 := registers.NewRegister(toBCD(a), "test")
				rcarry, zero, overflow, sign := r8.SubtractDecimal(toBCD(b), carry)
				test.ExpectEquality(t, r8.Value(), toBCD((diff+100)%100), tag)
				test.ExpectEquality(t, rcarry, diff >= 0, tag)
				test.ExpectEquality(t, overflow, binOverflow, tag)
				test.ExpectEquality(t, zero, bin.IsZero(), tag)
				test.ExpectEquality(t, sign, bin.IsNegative(), tag)
			}
		}
	}
}

// sequences 1 and 3 of Bruce Clark's "Decimal Mode" tutorial. they are valid
// for every operand including those that are not BCD
func clarkADC(a, b uint8, carry bool) (uint8, bool) {
	al := int(a&0x0f) + int(b&0x0f)
	if carry {
		al++
	}
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}
	r := int(a&0xf0) + int(b&0xf0) + al
	if r >= 0xa0 {
		r += 0x60
	}
	return uint8(r), r >= 0x100
}

func clarkSBC(a, b uint8, carry bool) uint8 {
	al := int(a&0x0f) - int(b&0x0f)
	if !carry {
		al--
	}
	if al < 0 {
		al = ((al - 0x06) & 0x0f) - 0x10
	}
	r := int(a&0xf0) - int(b&0xf0) + al
	if r < 0 {
		r -= 0x60
	}
	return uint8(r)
}

// addition and subtraction share the nibble correction so every operand pair
// is checked for both
func TestDecimalModeAllOperands(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for _, carry := range []bool{false, true} {
				add := registers.NewRegister(uint8(a), "add")
				rcarry, _, overflow, _ := add.AddDecimal(uint8(b), carry)
				v, c := clarkADC(uint8(a), uint8(b), carry)
				if !test.ExpectEquality(t, add.Value(), v, "adc", a, b, carry) ||
					!test.ExpectEquality(t, rcarry, c, "adc", a, b, carry) ||
					!test.ExpectEquality(t, overflow, nmosAddOverflow(uint8(a), uint8(b), carry), "adc", a, b, carry) {
					return
				}

				sub := registers.NewRegister(uint8(a), "sub")
				sub.SubtractDecimal(uint8(b), carry)
				if !test.ExpectEquality(t, sub.Value(), clarkSBC(uint8(a), uint8(b), carry), "sbc", a, b, carry) {
					return
				}
			}
		}
	}
}
