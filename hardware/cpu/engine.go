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

package cpu

import (
	"github.com/s65emu/s65/curated"
	"github.com/s65emu/s65/hardware/cpu/operations"
	"github.com/s65emu/s65/hardware/cpu/registers"
	"github.com/s65emu/s65/logger"
)

// conditionsMet returns true if the conditional flags allow an operation to
// be executed.
func (mc *CPU) conditionsMet(flags operations.Flags) bool {
	if mc.state == Jammed {
		return false
	}
	if flags&operations.IfCond == operations.IfCond && !mc.condMet {
		return false
	}
	if flags&operations.IfNotCond == operations.IfNotCond && mc.condMet {
		return false
	}
	if flags&operations.IfCrossed == operations.IfCrossed && !mc.pageCrossed {
		return false
	}
	if flags&operations.IfNotCrossed == operations.IfNotCrossed && mc.pageCrossed {
		return false
	}
	return true
}

// operand returns the value of the second operand of the operation.
func (mc *CPU) operand(op operations.Operation) (uint8, error) {
	if op.Flags&operations.Const == operations.Const {
		return op.Operand(), nil
	}
	if !op.Second.IsRegister() {
		return 0, curated.Errorf(InvalidOperation, op)
	}
	return mc.regs.Get(op.Second), nil
}

// usesFirst returns true if the operation kind acts on its first operand.
func usesFirst(kind operations.Kind) bool {
	switch kind {
	case operations.Nop, operations.Fetch, operations.PCInc, operations.Halt, operations.Wait:
		return false
	}
	return true
}

// usesSecond returns true if the operation kind requires a second operand.
func usesSecond(kind operations.Kind) bool {
	switch kind {
	case operations.Nop, operations.Fetch, operations.PCInc, operations.Halt, operations.Wait:
		return false
	case operations.Inc, operations.Dec:
		return false
	case operations.ShiftLeft, operations.ShiftRight, operations.RotateLeft, operations.RotateRight:
		return false
	}
	return true
}

// Execute a single micro-operation. Operations whose conditions are not met
// are skipped and have no effect.
//
// Execute does not access memory. Memory is accessed by ExecuteInstruction()
// and Reset() according to the READ and WRITE flags of the operation.
func (mc *CPU) Execute(op operations.Operation) (Outcome, error) {
	if !op.Kind.Valid() {
		return Skipped, curated.Errorf(InvalidOperation, op)
	}

	if !mc.conditionsMet(op.Flags) {
		return Skipped, nil
	}

	if usesFirst(op.Kind) && !op.First.IsRegister() {
		return Skipped, curated.Errorf(InvalidOperation, op)
	}

	var v uint8
	if usesSecond(op.Kind) {
		var err error
		v, err = mc.operand(op)
		if err != nil {
			return Skipped, err
		}
	}

	switch op.Kind {
	case operations.Nop:

	case operations.Fetch:
		if op.Flags&operations.Discard != operations.Discard {
			mc.condMet = true
			mc.pageCrossed = false
		}

	case operations.Load:
		if op.First == registers.SREG {
			v &^= registers.Break.Mask()
		}
		mc.regs.Set(op.First, v)
		switch op.First {
		case registers.ACC, registers.X, registers.Y:
			mc.regs.SetNZ(v)
		}

	case operations.PCInc:
		pc := mc.regs.PC() + 1
		mc.regs.SetPC(pc)
		mc.pageCrossed = pc&0x00ff == 0x00

	case operations.Add:
		r := uint16(mc.regs.Get(op.First)) + uint16(v)
		mc.regs.Set(op.First, uint8(r))
		mc.addrCarry = 0
		if r > 0xff {
			mc.addrCarry = 1
		}
		mc.pageCrossed = mc.addrCarry != 0

	case operations.AddSigned:
		r := int(mc.regs.Get(op.First)) + int(int8(v))
		mc.regs.Set(op.First, uint8(r))
		mc.addrCarry = carry(r)
		mc.pageCrossed = mc.addrCarry != 0

	case operations.AddCarry:
		// the page crossed latch is not changed
		r := int(mc.regs.Get(op.First)) + int(v) + int(mc.addrCarry)
		mc.regs.Set(op.First, uint8(r))
		mc.addrCarry = carry(r)

	case operations.AddWithCarry:
		r := registers.NewRegister(mc.regs.Get(op.First), op.First.String())
		var c, o bool
		if mc.regs.Flag(registers.DecimalMode) {
			c, o = r.AddDecimal(v, mc.regs.Flag(registers.Carry))
		} else {
			c, o = r.Add(v, mc.regs.Flag(registers.Carry))
		}
		mc.regs.Set(op.First, r.Value())
		mc.regs.SetFlag(registers.Carry, c)
		mc.regs.SetFlag(registers.Overflow, o)
		mc.regs.SetNZ(r.Value())

	case operations.SubtractWithBorrow:
		r := registers.NewRegister(mc.regs.Get(op.First), op.First.String())
		var c, o bool
		if mc.regs.Flag(registers.DecimalMode) {
			c, o = r.SubtractDecimal(v, mc.regs.Flag(registers.Carry))
		} else {
			c, o = r.Subtract(v, mc.regs.Flag(registers.Carry))
		}
		mc.regs.Set(op.First, r.Value())
		mc.regs.SetFlag(registers.Carry, c)
		mc.regs.SetFlag(registers.Overflow, o)
		mc.regs.SetNZ(r.Value())

	case operations.Bit:
		mc.regs.SetFlag(registers.Zero, mc.regs.Get(op.First)&v == 0)
		mc.regs.SetFlag(registers.Sign, v&0x80 == 0x80)
		mc.regs.SetFlag(registers.Overflow, v&0x40 == 0x40)

	case operations.TestAnd:
		mc.regs.SetFlag(registers.Zero, mc.regs.Get(op.First)&v == 0)

	case operations.Compare:
		r := registers.NewRegister(mc.regs.Get(op.First), op.First.String())
		c, d := r.Compare(v)
		mc.regs.SetFlag(registers.Carry, c)
		mc.regs.SetNZ(d)

	case operations.Inc:
		r := mc.regs.Get(op.First) + 1
		mc.regs.Set(op.First, r)
		if op.First != registers.SP {
			mc.regs.SetNZ(r)
		}

	case operations.Dec:
		r := mc.regs.Get(op.First) - 1
		mc.regs.Set(op.First, r)
		if op.First != registers.SP {
			mc.regs.SetNZ(r)
		}

	case operations.ShiftLeft, operations.ShiftRight, operations.RotateLeft, operations.RotateRight:
		r := registers.NewRegister(mc.regs.Get(op.First), op.First.String())
		var c bool
		switch op.Kind {
		case operations.ShiftLeft:
			c = r.ASL()
		case operations.ShiftRight:
			c = r.LSR()
		case operations.RotateLeft:
			c = r.ROL(mc.regs.Flag(registers.Carry))
		case operations.RotateRight:
			c = r.ROR(mc.regs.Flag(registers.Carry))
		}
		mc.regs.Set(op.First, r.Value())
		mc.regs.SetFlag(registers.Carry, c)
		mc.regs.SetNZ(r.Value())

	case operations.And, operations.Or, operations.Xor:
		r := registers.NewRegister(mc.regs.Get(op.First), op.First.String())
		switch op.Kind {
		case operations.And:
			r.AND(v)
		case operations.Or:
			r.ORA(v)
		case operations.Xor:
			r.EOR(v)
		}
		mc.regs.Set(op.First, r.Value())
		if op.First == registers.ACC {
			mc.regs.SetNZ(r.Value())
		}

	case operations.SetBit, operations.ClearBit:
		set := op.Kind == operations.SetBit
		if op.First == registers.SREG {
			mc.regs.SetFlag(registers.Flag(v&0x07), set)
		} else if set {
			mc.regs.Set(op.First, mc.regs.Get(op.First)|1<<(v&0x07))
		} else {
			mc.regs.Set(op.First, mc.regs.Get(op.First)&^(1<<(v&0x07)))
		}

	case operations.TestSet:
		mc.condMet = mc.regs.Get(op.First)&(1<<(v&0x07)) != 0

	case operations.TestClear:
		mc.condMet = mc.regs.Get(op.First)&(1<<(v&0x07)) == 0

	case operations.Halt:
		mc.state = Jammed
		logger.Logf(mc.permission(), "CPU", "halted at %#04x", mc.LastResult.Address)

	case operations.Wait:
		mc.waiting = true

	default:
		return Skipped, curated.Errorf(InvalidOperation, op)
	}

	return Executed, nil
}

// carry returns the carry or borrow of an eight bit addition.
func carry(r int) int8 {
	switch {
	case r > 0xff:
		return 1
	case r < 0:
		return -1
	}
	return 0
}
