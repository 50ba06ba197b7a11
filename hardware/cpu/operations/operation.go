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

package operations

import (
	"fmt"
	"strings"

	"github.com/s65emu/s65/hardware/cpu/registers"
)

// Kind is the type of a micro-operation.
type Kind int

// List of micro-operation kinds.
const (
	Nop Kind = iota

	// FETCH has no effect on the registers but it marks the beginning of a
	// new instruction when it is not discarded
	Fetch

	// copy Second to First
	Load

	// increment the program counter. First and Second are unused
	PCInc

	// address arithmetic. these operations do not affect the status register.
	// Add and AddSigned record the carry for a following AddCarry
	Add
	AddCarry
	AddSigned

	// arithmetic and logic on the accumulator or on DATA
	AddWithCarry
	SubtractWithBorrow
	Bit
	TestAnd
	Compare
	Inc
	Dec
	ShiftLeft
	ShiftRight
	RotateLeft
	RotateRight
	And
	Or
	Xor

	// set or clear the bit of First numbered by Second
	SetBit
	ClearBit

	// test the bit of First numbered by Second. the result is used by
	// operations flagged with IfCond or IfNotCond
	TestSet
	TestClear

	Halt
	Wait
)

var kindNames = map[Kind]string{
	Nop:                "NOP",
	Fetch:              "FETCH",
	Load:               "LOAD",
	PCInc:              "PC_INC",
	Add:                "ADD",
	AddCarry:           "ADD_C",
	AddSigned:          "ADD_S",
	AddWithCarry:       "ADC",
	SubtractWithBorrow: "SBC",
	Bit:                "BIT",
	TestAnd:            "TEST_AND",
	Compare:            "CMP",
	Inc:                "INC",
	Dec:                "DEC",
	ShiftLeft:          "ASL",
	ShiftRight:         "LSR",
	RotateLeft:         "ROL",
	RotateRight:        "ROR",
	And:                "AND",
	Or:                 "OR",
	Xor:                "XOR",
	SetBit:             "SET",
	ClearBit:           "CLEAR",
	TestSet:            "TEST_SET",
	TestClear:          "TEST_CLEAR",
	Halt:               "HALT",
	Wait:               "WAIT",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid returns false for an unknown kind.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Flags modify how and whether an operation is executed.
type Flags uint8

// List of operation flags.
const (
	// the operation services the bus. the CPU reads memory at the address bus
	// into DATA before the operation or writes DATA to memory after it
	Read Flags = 1 << iota
	Write

	// the result of a FETCH is not the start of an instruction
	Discard

	// Second is a constant and not a register
	Const

	// conditional execution
	IfCond
	IfNotCond
	IfCrossed
	IfNotCrossed
)

// Conditions is the mask of all conditional flags.
const Conditions = IfCond | IfNotCond | IfCrossed | IfNotCrossed

func (f Flags) String() string {
	if f == 0 {
		return ""
	}
	s := strings.Builder{}
	for _, n := range []struct {
		f Flags
		s string
	}{
		{Read, "READ"},
		{Write, "WRITE"},
		{Discard, "DISCARD"},
		{Const, "CONST"},
		{IfCond, "IF_COND"},
		{IfNotCond, "IF_NOT_COND"},
		{IfCrossed, "IF_CROSSED"},
		{IfNotCrossed, "IF_NOT_CROSSED"},
	} {
		if f&n.f == n.f {
			if s.Len() > 0 {
				s.WriteRune('|')
			}
			s.WriteString(n.s)
		}
	}
	return s.String()
}

// Operation is a single micro-operation.
type Operation struct {
	Kind   Kind
	First  registers.Address
	Second registers.Address
	Cycle  int
	Flags  Flags
}

// IsBus returns true if the operation services the bus.
func (op Operation) IsBus() bool {
	return op.Flags&(Read|Write) != 0
}

// IsConditional returns true if the operation is not always executed.
func (op Operation) IsConditional() bool {
	return op.Flags&Conditions != 0
}

// Operand returns the second operand as a constant. Only meaningful if the
// Const flag is set.
func (op Operation) Operand() uint8 {
	return uint8(op.Second)
}

func (op Operation) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%d: %s", op.Cycle, op.Kind)
	if op.First != 0 {
		fmt.Fprintf(&s, " %s", op.First)
	}
	if op.Flags&Const == Const {
		fmt.Fprintf(&s, ", #$%02x", op.Operand())
	} else if op.Second != 0 {
		fmt.Fprintf(&s, ", %s", op.Second)
	}
	if op.Flags != 0 {
		fmt.Fprintf(&s, " [%s]", op.Flags)
	}
	return s.String()
}
