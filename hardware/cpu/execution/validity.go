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

package execution

import (
	"github.com/s65emu/s65/curated"
	"github.com/s65emu/s65/hardware/cpu/instructions"
)

// InvalidResult is the error pattern returned by IsValid().
const InvalidResult = "execution: %v"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(InvalidResult, "not finalised (bad opcode?)")
	}

	// interrupt sequences have no definition to compare against
	if r.Interrupt != NoInterrupt {
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf(InvalidResult, "no definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf(InvalidResult, "unexpected page fault")
	}

	// only the arithmetic instructions take the decimal mode cycle
	if r.DecimalCycle && r.Defn.Mnemonic != instructions.ADC && r.Defn.Mnemonic != instructions.SBC {
		return curated.Errorf(InvalidResult, "unexpected decimal cycle")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes() {
		return curated.Errorf(InvalidResult, curated.Errorf("unexpected number of bytes read during decode (%d instead of %d)",
			r.ByteCount, r.Defn.Bytes()))
	}

	// undocumented instructions compiled as no-ops take the time of a read
	// instruction rather than the datasheet time
	if !r.Defn.IsEmulated() {
		return nil
	}

	// the cycle count is not checked for instructions that trigger a bug
	if r.CPUBug != NoBug {
		return nil
	}

	if r.Defn.IsBranch() {
		if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 && r.Cycles != r.Defn.Cycles+2 {
			return curated.Errorf(InvalidResult, curated.Errorf("number of cycles wrong for opcode %#02x [%s] (%d instead of %d, %d or %d)",
				r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles, r.Defn.Cycles+1, r.Defn.Cycles+2))
		}
		return nil
	}

	expected := r.Defn.Cycles
	if r.PageFault {
		expected++
	}
	if r.DecimalCycle {
		expected++
	}
	if r.Cycles != expected {
		return curated.Errorf(InvalidResult, curated.Errorf("number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, expected))
	}

	return nil
}
