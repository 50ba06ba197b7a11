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

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand

	// flow consists of the branch instructions and JMP
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// effect is decided by the mnemonic and, for the shift and increment
// instructions, whether the operand is in memory.
func effect(m Mnemonic, mode AddressingMode) EffectCategory {
	switch m {
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS, BRA, BBR, BBS, JMP:
		return Flow
	case JSR, RTS:
		return Subroutine
	case BRK, RTI:
		return Interrupt
	case STA, STX, STY, STZ, SAX, SHA, SHX, SHY, TAS:
		return Write
	case PHA, PHP, PHX, PHY:
		return Write
	case TSB, TRB, RMB, SMB, SLO, RLA, SRE, RRA, DCP, ISC:
		return RMW
	case ASL, LSR, ROL, ROR, INC, DEC:
		if mode == Accumulator || mode == Implied {
			return Read
		}
		return RMW
	}
	return Read
}
