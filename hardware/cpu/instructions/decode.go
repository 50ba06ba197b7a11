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

import (
	"github.com/s65emu/s65/curated"
)

// UnknownOpcode is the error pattern returned when an opcode has no
// definition in the requested instruction set.
const UnknownOpcode = "instructions: unknown opcode (%#02x) for %v"

// the lookup tables for each instruction set. built once and never modified
// so they can be shared by every CPU instance.
var lookup [NumSets][256]*Definition

func init() {
	for s := NMOS; s <= WDC; s++ {
		if s > NMOS {
			lookup[s] = lookup[s-1]
		}
		for i := range table {
			if table[i].Set != s {
				continue
			}
			defn := table[i]
			defn.Effect = effect(defn.Mnemonic, defn.AddressingMode)
			defn.PageSensitive = pageSensitive(defn)
			lookup[s][defn.OpCode] = &defn
		}
	}
}

func pageSensitive(defn Definition) bool {
	if defn.IsBranch() {
		return true
	}

	var indexed bool
	switch defn.AddressingMode {
	case AbsoluteIndexedX, AbsoluteIndexedY, IndirectIndexed:
		indexed = true
	}
	if !indexed {
		return false
	}

	// 65C02 shifts and rotates only take the extra cycle when the page is
	// crossed
	if defn.Set >= CMOS && defn.AddressingMode == AbsoluteIndexedX {
		switch defn.Mnemonic {
		case ASL, LSR, ROL, ROR:
			return true
		}
	}

	return defn.Effect == Read || !defn.IsEmulated()
}

// IsEmulated returns false if the instruction is undocumented and is
// compiled as a no-op rather than with its real effect.
func (defn Definition) IsEmulated() bool {
	if !defn.Undocumented {
		return true
	}
	switch defn.Mnemonic {
	case NOP, JAM, SBC:
		return true
	}
	return false
}

// Decode returns the definition of the opcode in the instruction set. The
// most specific definition is preferred. For example, decoding opcode 0x80
// returns BRA for the 65C02 and the undocumented NOP for the 6502.
func Decode(opcode uint8, set Set) (*Definition, error) {
	if !set.valid() {
		return nil, curated.Errorf(InvalidSet, set)
	}
	defn := lookup[set][opcode]
	if defn == nil {
		return nil, curated.Errorf(UnknownOpcode, opcode, set)
	}
	return defn, nil
}

// Definitions returns every definition of the instruction set in opcode
// order.
func Definitions(set Set) ([]*Definition, error) {
	if !set.valid() {
		return nil, curated.Errorf(InvalidSet, set)
	}
	defns := make([]*Definition, 0, 256)
	for _, defn := range lookup[set] {
		if defn != nil {
			defns = append(defns, defn)
		}
	}
	return defns, nil
}
