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

import "fmt"

// Definition defines each instruction in the instruction set; one per
// instruction set tier.
type Definition struct {
	OpCode         uint8
	Mnemonic       Mnemonic
	AddressingMode AddressingMode

	// number of cycles as stated by the datasheet. page sensitive
	// instructions take one more cycle when an indexed address crosses a
	// page. branches take one more cycle when the branch is taken and a
	// further cycle when the destination is on another page
	Cycles int

	PageSensitive bool
	Effect        EffectCategory

	// the earliest instruction set in which the instruction appears
	Set Set

	// undocumented instructions are not compiled faithfully. see the
	// decoder package for details
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s set=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes(), defn.Cycles, defn.AddressingMode,
		defn.PageSensitive, defn.Effect, defn.Set)
}

// Bytes returns the number of bytes in the instruction, including the
// opcode. BRK is a two byte instruction even though it has no operand.
func (defn Definition) Bytes() int {
	if defn.Mnemonic == BRK {
		return 2
	}
	return defn.AddressingMode.Bytes()
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	switch defn.AddressingMode {
	case Relative, ZeroPageRelative:
		return defn.Effect == Flow
	}
	return false
}

// Bit returns the bit number operated on by the RMB, SMB, BBR and BBS
// instructions. The bit is encoded in the high nibble of the opcode.
func (defn Definition) Bit() uint8 {
	return (defn.OpCode >> 4) & 0x07
}

// IsHalt returns true if the instruction stops the CPU.
func (defn Definition) IsHalt() bool {
	return defn.Mnemonic == JAM || defn.Mnemonic == STP
}
