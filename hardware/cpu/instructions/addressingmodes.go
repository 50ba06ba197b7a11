// This file is part of s65.
//
// s65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// s65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with s65.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// AddressingMode describes the method of memory addressing used by an
// instruction. The addressing mode determines the number of bytes in the
// instruction.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative

	ZeroPage
	ZeroPageIndexedX // zp,X
	ZeroPageIndexedY // zp,Y

	Absolute
	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	Indirect        // (abs) JMP only
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y

	// 65C02 additions
	ZeroPageIndirect        // (zp)
	AbsoluteIndexedIndirect // (abs,X) JMP only

	// WDC additions. zero page operand followed by relative offset
	ZeroPageRelative
)

var modeNames = map[AddressingMode]string{
	Implied:                 "Implied",
	Accumulator:             "Accumulator",
	Immediate:               "Immediate",
	Relative:                "Relative",
	ZeroPage:                "ZeroPage",
	ZeroPageIndexedX:        "ZeroPageIndexedX",
	ZeroPageIndexedY:        "ZeroPageIndexedY",
	Absolute:                "Absolute",
	AbsoluteIndexedX:        "AbsoluteIndexedX",
	AbsoluteIndexedY:        "AbsoluteIndexedY",
	Indirect:                "Indirect",
	IndexedIndirect:         "IndexedIndirect",
	IndirectIndexed:         "IndirectIndexed",
	ZeroPageIndirect:        "ZeroPageIndirect",
	AbsoluteIndexedIndirect: "AbsoluteIndexedIndirect",
	ZeroPageRelative:        "ZeroPageRelative",
}

func (m AddressingMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes, including the opcode, of an instruction
// using the addressing mode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect, AbsoluteIndexedIndirect, ZeroPageRelative:
		return 3
	}
	return 2
}

// IsIndexed returns true if the addressing mode adds an index register to the
// effective address.
func (m AddressingMode) IsIndexed() bool {
	switch m {
	case ZeroPageIndexedX, ZeroPageIndexedY, AbsoluteIndexedX, AbsoluteIndexedY, IndexedIndirect, IndirectIndexed, AbsoluteIndexedIndirect:
		return true
	}
	return false
}
