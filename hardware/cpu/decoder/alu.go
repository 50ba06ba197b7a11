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

package decoder

import (
	"github.com/s65emu/s65/hardware/cpu/instructions"
	"github.com/s65emu/s65/hardware/cpu/operations"
	"github.com/s65emu/s65/hardware/cpu/registers"
)

func onData(kind operations.Kind, first registers.Address) operations.Operation {
	return operations.Operation{Kind: kind, First: first, Second: registers.DATA}
}

func withConstant(kind operations.Kind, first registers.Address, v uint8) operations.Operation {
	return operations.Operation{Kind: kind, First: first, Second: registers.Address(v), Flags: operations.Const}
}

// readOperation returns the operation that consumes the value read by a read
// instruction.
func readOperation(defn *instructions.Definition) (operations.Operation, bool) {
	switch defn.Mnemonic {
	case instructions.LDA:
		return onData(operations.Load, registers.ACC), true
	case instructions.LDX:
		return onData(operations.Load, registers.X), true
	case instructions.LDY:
		return onData(operations.Load, registers.Y), true
	case instructions.ADC:
		return onData(operations.AddWithCarry, registers.ACC), true
	case instructions.SBC:
		return onData(operations.SubtractWithBorrow, registers.ACC), true
	case instructions.AND:
		return onData(operations.And, registers.ACC), true
	case instructions.ORA:
		return onData(operations.Or, registers.ACC), true
	case instructions.EOR:
		return onData(operations.Xor, registers.ACC), true
	case instructions.CMP:
		return onData(operations.Compare, registers.ACC), true
	case instructions.CPX:
		return onData(operations.Compare, registers.X), true
	case instructions.CPY:
		return onData(operations.Compare, registers.Y), true
	case instructions.BIT:
		// BIT immediate only affects the zero flag
		if defn.AddressingMode == instructions.Immediate {
			return onData(operations.TestAnd, registers.ACC), true
		}
		return onData(operations.Bit, registers.ACC), true
	case instructions.NOP:
		return operations.Operation{Kind: operations.Nop}, true
	}
	return operations.Operation{}, false
}

// storeOperation returns the operation that puts the value to be written by
// a store instruction on the data bus.
func storeOperation(defn *instructions.Definition) (operations.Operation, bool) {
	switch defn.Mnemonic {
	case instructions.STA:
		return operations.Operation{Kind: operations.Load, First: registers.DATA, Second: registers.ACC}, true
	case instructions.STX:
		return operations.Operation{Kind: operations.Load, First: registers.DATA, Second: registers.X}, true
	case instructions.STY:
		return operations.Operation{Kind: operations.Load, First: registers.DATA, Second: registers.Y}, true
	case instructions.STZ:
		return withConstant(operations.Load, registers.DATA, 0x00), true
	}
	return operations.Operation{}, false
}

// modifyOperations returns the operations that change the value read by a
// read-modify-write instruction. The value is written back after the last
// operation.
func modifyOperations(defn *instructions.Definition) ([]operations.Operation, bool) {
	switch defn.Mnemonic {
	case instructions.ASL:
		return []operations.Operation{{Kind: operations.ShiftLeft, First: registers.DATA}}, true
	case instructions.LSR:
		return []operations.Operation{{Kind: operations.ShiftRight, First: registers.DATA}}, true
	case instructions.ROL:
		return []operations.Operation{{Kind: operations.RotateLeft, First: registers.DATA}}, true
	case instructions.ROR:
		return []operations.Operation{{Kind: operations.RotateRight, First: registers.DATA}}, true
	case instructions.INC:
		return []operations.Operation{{Kind: operations.Inc, First: registers.DATA}}, true
	case instructions.DEC:
		return []operations.Operation{{Kind: operations.Dec, First: registers.DATA}}, true
	case instructions.TSB:
		return []operations.Operation{
			onData(operations.TestAnd, registers.ACC),
			{Kind: operations.Or, First: registers.DATA, Second: registers.ACC},
		}, true
	case instructions.TRB:
		// clearing the accumulator bits is an OR followed by an XOR
		return []operations.Operation{
			onData(operations.TestAnd, registers.ACC),
			{Kind: operations.Or, First: registers.DATA, Second: registers.ACC},
			{Kind: operations.Xor, First: registers.DATA, Second: registers.ACC},
		}, true
	case instructions.RMB:
		return []operations.Operation{withConstant(operations.ClearBit, registers.DATA, defn.Bit())}, true
	case instructions.SMB:
		return []operations.Operation{withConstant(operations.SetBit, registers.DATA, defn.Bit())}, true
	}
	return nil, false
}

// impliedOperation returns the operation of a single byte instruction.
func impliedOperation(defn *instructions.Definition) (operations.Operation, bool) {
	if defn.AddressingMode == instructions.Accumulator {
		switch defn.Mnemonic {
		case instructions.ASL:
			return operations.Operation{Kind: operations.ShiftLeft, First: registers.ACC}, true
		case instructions.LSR:
			return operations.Operation{Kind: operations.ShiftRight, First: registers.ACC}, true
		case instructions.ROL:
			return operations.Operation{Kind: operations.RotateLeft, First: registers.ACC}, true
		case instructions.ROR:
			return operations.Operation{Kind: operations.RotateRight, First: registers.ACC}, true
		case instructions.INC:
			return operations.Operation{Kind: operations.Inc, First: registers.ACC}, true
		case instructions.DEC:
			return operations.Operation{Kind: operations.Dec, First: registers.ACC}, true
		}
		return operations.Operation{}, false
	}

	flag := func(kind operations.Kind, f registers.Flag) (operations.Operation, bool) {
		return withConstant(kind, registers.SREG, uint8(f)), true
	}
	transfer := func(dst registers.Address, src registers.Address) (operations.Operation, bool) {
		return operations.Operation{Kind: operations.Load, First: dst, Second: src}, true
	}

	switch defn.Mnemonic {
	case instructions.CLC:
		return flag(operations.ClearBit, registers.Carry)
	case instructions.SEC:
		return flag(operations.SetBit, registers.Carry)
	case instructions.CLI:
		return flag(operations.ClearBit, registers.InterruptDisable)
	case instructions.SEI:
		return flag(operations.SetBit, registers.InterruptDisable)
	case instructions.CLD:
		return flag(operations.ClearBit, registers.DecimalMode)
	case instructions.SED:
		return flag(operations.SetBit, registers.DecimalMode)
	case instructions.CLV:
		return flag(operations.ClearBit, registers.Overflow)
	case instructions.TAX:
		return transfer(registers.X, registers.ACC)
	case instructions.TAY:
		return transfer(registers.Y, registers.ACC)
	case instructions.TXA:
		return transfer(registers.ACC, registers.X)
	case instructions.TYA:
		return transfer(registers.ACC, registers.Y)
	case instructions.TSX:
		return transfer(registers.X, registers.SP)
	case instructions.TXS:
		return transfer(registers.SP, registers.X)
	case instructions.INX:
		return operations.Operation{Kind: operations.Inc, First: registers.X}, true
	case instructions.INY:
		return operations.Operation{Kind: operations.Inc, First: registers.Y}, true
	case instructions.DEX:
		return operations.Operation{Kind: operations.Dec, First: registers.X}, true
	case instructions.DEY:
		return operations.Operation{Kind: operations.Dec, First: registers.Y}, true
	case instructions.NOP:
		return operations.Operation{Kind: operations.Nop}, true
	}

	return operations.Operation{}, false
}

func pushSource(defn *instructions.Definition) (registers.Address, bool) {
	switch defn.Mnemonic {
	case instructions.PHA:
		return registers.ACC, true
	case instructions.PHP:
		return registers.SREG, true
	case instructions.PHX:
		return registers.X, true
	case instructions.PHY:
		return registers.Y, true
	}
	return 0, false
}

func pullDestination(defn *instructions.Definition) (registers.Address, bool) {
	switch defn.Mnemonic {
	case instructions.PLA:
		return registers.ACC, true
	case instructions.PLP:
		return registers.SREG, true
	case instructions.PLX:
		return registers.X, true
	case instructions.PLY:
		return registers.Y, true
	}
	return 0, false
}

// branchTest returns the operation that decides whether a branch is taken.
// BRA has no test.
func branchTest(defn *instructions.Definition) (operations.Operation, bool) {
	test := func(kind operations.Kind, f registers.Flag) (operations.Operation, bool) {
		return withConstant(kind, registers.SREG, uint8(f)), true
	}

	switch defn.Mnemonic {
	case instructions.BPL:
		return test(operations.TestClear, registers.Sign)
	case instructions.BMI:
		return test(operations.TestSet, registers.Sign)
	case instructions.BVC:
		return test(operations.TestClear, registers.Overflow)
	case instructions.BVS:
		return test(operations.TestSet, registers.Overflow)
	case instructions.BCC:
		return test(operations.TestClear, registers.Carry)
	case instructions.BCS:
		return test(operations.TestSet, registers.Carry)
	case instructions.BNE:
		return test(operations.TestClear, registers.Zero)
	case instructions.BEQ:
		return test(operations.TestSet, registers.Zero)
	case instructions.BBR:
		return withConstant(operations.TestClear, registers.DATA, defn.Bit()), true
	case instructions.BBS:
		return withConstant(operations.TestSet, registers.DATA, defn.Bit()), true
	}
	return operations.Operation{}, false
}
