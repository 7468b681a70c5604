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

package instructions

// Operator is the function of an instruction, independent of its addressing
// mode.
type Operator int

// List of operators. The undocumented operators use the names found in the
// "NMOS 6510 Unintended Opcodes" document.
const (
	Nop Operator = iota
	Adc
	Alr
	Anc
	And
	Ane
	Arr
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dcp
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Isc
	Jmp
	Jsr
	Kil
	Las
	Lax
	Lda
	Ldx
	Ldy
	Lsr
	Lxa
	Ora
	Pha
	Php
	Pla
	Plp
	Rla
	Rol
	Ror
	Rra
	Rti
	Rts
	Sax
	Sbc
	Sbx
	Sec
	Sed
	Sei
	Sha
	Shx
	Shy
	Slo
	Sre
	Sta
	Stx
	Sty
	Tas
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
)

// the mnemonic for each operator, in the same order as the constants above
var mnemonics = [...]string{
	"NOP",
	"ADC",
	"ALR",
	"ANC",
	"AND",
	"ANE",
	"ARR",
	"ASL",
	"BCC",
	"BCS",
	"BEQ",
	"BIT",
	"BMI",
	"BNE",
	"BPL",
	"BRK",
	"BVC",
	"BVS",
	"CLC",
	"CLD",
	"CLI",
	"CLV",
	"CMP",
	"CPX",
	"CPY",
	"DCP",
	"DEC",
	"DEX",
	"DEY",
	"EOR",
	"INC",
	"INX",
	"INY",
	"ISC",
	"JMP",
	"JSR",
	"KIL",
	"LAS",
	"LAX",
	"LDA",
	"LDX",
	"LDY",
	"LSR",
	"LXA",
	"ORA",
	"PHA",
	"PHP",
	"PLA",
	"PLP",
	"RLA",
	"ROL",
	"ROR",
	"RRA",
	"RTI",
	"RTS",
	"SAX",
	"SBC",
	"SBX",
	"SEC",
	"SED",
	"SEI",
	"SHA",
	"SHX",
	"SHY",
	"SLO",
	"SRE",
	"STA",
	"STX",
	"STY",
	"TAS",
	"TAX",
	"TAY",
	"TSX",
	"TXA",
	"TXS",
	"TYA",
}

func (o Operator) String() string {
	if int(o) < 0 || int(o) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[o]
}
