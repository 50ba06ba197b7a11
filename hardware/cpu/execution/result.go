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
	"fmt"
	"strings"

	"github.com/s65emu/s65/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt sequence that produced a Result.
type Interrupt int

// List of interrupt sequences.
const (
	NoInterrupt Interrupt = iota
	Reset
	NMI
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case Reset:
		return "RESET"
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return ""
}

// Result records the state/result of the last instruction executed by the
// CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. nil if the result is of an interrupt
	// sequence or if the opcode has not been decoded yet
	Defn *instructions.Definition

	// the operand of the instruction as read from memory. the low byte is the
	// first operand byte
	InstructionData uint16

	// the number of bytes in the instruction
	ByteCount int

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but page sensitive instructions and branches may take
	// longer
	Cycles int

	// whether an extra cycle was required because an indexed address or a
	// branch crossed a page
	PageFault bool

	// whether a branch was taken
	BranchSuccess bool

	// whether the 65C02 took an extra cycle to complete a decimal mode
	// addition or subtraction
	DecimalCycle bool

	// whether a known bug in the 6502 was triggered
	CPUBug Bug

	// the first memory access error encountered during execution. access
	// errors do not halt execution
	Error string

	// interrupt sequence that produced this result
	Interrupt Interrupt

	// whether this data has been finalised. the values of the fields in this
	// struct may be undefined unless Final is true
	Final bool
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%04x %s (%d cycles)", r.Address, r.Interrupt, r.Cycles)
	}

	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	s := strings.Builder{}
	fmt.Fprintf(&s, "%04x %s", r.Address, r.Defn.Mnemonic)
	if operand := r.operand(); operand != "" {
		s.WriteRune(' ')
		s.WriteString(operand)
	}
	fmt.Fprintf(&s, " (%d cycles)", r.Cycles)

	var notes []string
	if r.PageFault {
		notes = append(notes, "page fault")
	}
	if r.BranchSuccess {
		notes = append(notes, "branch succeeded")
	}
	if r.DecimalCycle {
		notes = append(notes, "decimal cycle")
	}
	if r.CPUBug != NoBug {
		notes = append(notes, string(r.CPUBug))
	}
	if r.Error != "" {
		notes = append(notes, r.Error)
	}
	if len(notes) > 0 {
		fmt.Fprintf(&s, " [%s]", strings.Join(notes, ", "))
	}

	return s.String()
}

// operand returns the operand of the instruction formatted according to the
// addressing mode.
func (r Result) operand() string {
	lo := uint8(r.InstructionData)
	w := r.InstructionData

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", lo)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", r.Address+2+uint16(int8(lo)))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", lo)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", lo)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", lo)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", w)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", w)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", w)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", w)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", lo)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", lo)
	case instructions.ZeroPageIndirect:
		return fmt.Sprintf("($%02x)", lo)
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04x,X)", w)
	case instructions.ZeroPageRelative:
		return fmt.Sprintf("%d,$%02x,$%04x", r.Defn.Bit(), lo, r.Address+3+uint16(int8(w>>8)))
	}
	return ""
}
