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
	"github.com/s65emu/s65/curated"
	"github.com/s65emu/s65/hardware/cpu/instructions"
	"github.com/s65emu/s65/hardware/cpu/operations"
	"github.com/s65emu/s65/hardware/cpu/registers"
	"github.com/s65emu/s65/hardware/memory/cpubus"
)

// every template begins after the opcode fetch in cycle zero. the comment for
// each template lists the bus activity from cycle one onwards.

// zeroPage reads the zero page operand into ADL.
func (dec *Decoder) zeroPage(b *builder) {
	b.next()
	b.operand(registers.ADL)
	b.pcInc()
}

// absolute reads the two byte operand into ADL and ADH.
func (dec *Decoder) absolute(b *builder) {
	b.next()
	b.operand(registers.ADL)
	b.next()
	b.operand(registers.ADH)
	b.pcInc()
}

// zeroPageIndexed adds the index register to the zero page address. there is
// a dummy read at the unindexed address while the addition takes place.
func (dec *Decoder) zeroPageIndexed(b *builder, index registers.Address) {
	b.next()
	b.addressZeroPage()
	b.dummyRead()
	b.add(operations.Add, registers.ADL, index, 0)
}

// pointer reads the zero page pointer at ADL into ADL and ADH. the low byte
// is held in ADH until the high byte has been read.
func (dec *Decoder) pointer(b *builder) {
	b.next()
	b.addressZeroPage()
	b.read(registers.ADH)
	b.constant(operations.Add, registers.ADL, 0x01, 0)
	b.next()
	b.addressZeroPage()
	b.add(operations.Nop, 0, 0, operations.Read)
	b.load(registers.ADL, registers.ADH)
	b.load(registers.ADH, registers.DATA)
}

func indexRegister(mode instructions.AddressingMode) registers.Address {
	switch mode {
	case instructions.ZeroPageIndexedY, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
		return registers.Y
	}
	return registers.X
}

// implied is the template for single byte instructions.
//
//	1  PC+1  dummy read
func (dec *Decoder) implied(b *builder, op operations.Operation) {
	b.next()
	b.pcInc()
	b.addressPC()
	b.dummyRead()
	b.emit(op, 0)
}

// push is the template for PHA, PHP, PHX and PHY.
//
//	1  PC+1  dummy read
//	2  stack write
func (dec *Decoder) push(b *builder, defn *instructions.Definition) error {
	src, ok := pushSource(defn)
	if !ok {
		return curated.Errorf(NoTemplate, defn)
	}

	b.next()
	b.pcInc()
	b.addressPC()
	b.dummyRead()

	b.next()
	if src == registers.SREG {
		b.constant(operations.SetBit, registers.SREG, uint8(registers.Break), 0)
		b.push(src)
		b.constant(operations.ClearBit, registers.SREG, uint8(registers.Break), 0)
	} else {
		b.push(src)
	}

	return nil
}

// pull is the template for PLA, PLP, PLX and PLY.
//
//	1  PC+1  dummy read
//	2  stack dummy read
//	3  stack read
func (dec *Decoder) pull(b *builder, dst registers.Address) {
	b.next()
	b.pcInc()
	b.addressPC()
	b.dummyRead()

	b.next()
	b.addressStack()
	b.dummyRead()
	b.add(operations.Inc, registers.SP, 0, 0)

	b.next()
	b.addressStack()
	b.read(dst)
}

// read is the template for instructions that read a value from memory and
// use it with op.
func (dec *Decoder) read(b *builder, defn *instructions.Definition, op operations.Operation) error {
	switch defn.AddressingMode {
	case instructions.Implied:
		dec.implied(b, op)

	case instructions.Immediate:
		// 1  PC+1  read operand
		b.next()
		b.pcInc()
		b.addressPC()
		b.emit(op, operations.Read)
		b.pcInc()

	case instructions.ZeroPage:
		// 1  PC+1  read address
		// 2  zp    read
		dec.zeroPage(b)
		b.next()
		b.addressZeroPage()
		b.emit(op, operations.Read)

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		// 1  PC+1    read address
		// 2  zp      dummy read
		// 3  zp+idx  read
		dec.zeroPage(b)
		dec.zeroPageIndexed(b, indexRegister(defn.AddressingMode))
		b.next()
		b.addressZeroPage()
		b.emit(op, operations.Read)

	case instructions.Absolute:
		// 1  PC+1  read address low
		// 2  PC+2  read address high
		// 3  abs   read
		dec.absolute(b)
		b.next()
		b.addressAD()
		b.emit(op, operations.Read)

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		// 1  PC+1     read address low
		// 2  PC+2     read address high
		// 3  abs+idx  read from unfixed page
		// 4  abs+idx  read (page crossed only)
		dec.absolute(b)
		dec.indexed(b, indexRegister(defn.AddressingMode), op)

	case instructions.IndexedIndirect:
		// 1  PC+1       read pointer
		// 2  ptr        dummy read
		// 3  ptr+X      read address low
		// 4  ptr+X+1    read address high
		// 5  address    read
		dec.zeroPage(b)
		dec.zeroPageIndexed(b, registers.X)
		dec.pointer(b)
		b.next()
		b.addressAD()
		b.emit(op, operations.Read)

	case instructions.IndirectIndexed:
		// 1  PC+1       read pointer
		// 2  ptr        read address low
		// 3  ptr+1      read address high
		// 4  address+Y  read from unfixed page
		// 5  address+Y  read (page crossed only)
		dec.zeroPage(b)
		dec.pointer(b)
		dec.indexed(b, registers.Y, op)

	case instructions.ZeroPageIndirect:
		// 1  PC+1       read pointer
		// 2  ptr        read address low
		// 3  ptr+1      read address high
		// 4  address    read
		dec.zeroPage(b)
		dec.pointer(b)
		b.next()
		b.addressAD()
		b.emit(op, operations.Read)

	default:
		return curated.Errorf(NoTemplate, defn)
	}

	return nil
}

// decimal is the additional cycle of ADC and SBC on the 65C02. the cycle only
// happens if the decimal flag is set.
//
//	n  PC  dummy read (decimal mode only)
func (dec *Decoder) decimal(b *builder) {
	b.next()
	b.constant(operations.TestSet, registers.SREG, uint8(registers.DecimalMode), 0)
	b.when(operations.IfCond)
	b.addressPC()
	b.dummyRead()
}

// longNop is the template for the eight cycle NOP of the 65C02. the operand
// is read as for an absolute address but the high byte is ignored.
//
//	1  PC+1   read address low
//	2  PC+2   read address high
//	3  $ffxx  dummy read
//	4  $ffff  dummy read
//	5  $ffff  dummy read
//	6  $ffff  dummy read
//	7  $ffff  dummy read
func (dec *Decoder) longNop(b *builder) {
	dec.absolute(b)
	b.next()
	b.load(registers.ABL, registers.ADL)
	b.constant(operations.Load, registers.ABH, 0xff, 0)
	b.dummyRead()
	for i := 0; i < 4; i++ {
		b.next()
		b.addressVector(0xffff)
		b.dummyRead()
	}
}

// indexed adds the index to the address in ADL and ADH and reads from the
// result. if the addition crosses a page then the read is repeated once the
// high byte has been fixed.
func (dec *Decoder) indexed(b *builder, index registers.Address, op operations.Operation) {
	b.next()
	b.add(operations.Add, registers.ADL, index, 0)
	b.addressAD()
	b.add(operations.Nop, 0, 0, operations.Read)
	b.emit(op, operations.IfNotCrossed)

	b.next()
	b.when(operations.IfCrossed)
	b.constant(operations.AddCarry, registers.ADH, 0x00, 0)
	b.addressAD()
	b.emit(op, operations.Read)
}

// write is the template for store instructions. op puts the value on the data
// bus.
func (dec *Decoder) write(b *builder, defn *instructions.Definition, op operations.Operation) error {
	switch defn.AddressingMode {
	case instructions.ZeroPage:
		dec.zeroPage(b)
		b.next()
		b.addressZeroPage()

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		dec.zeroPage(b)
		dec.zeroPageIndexed(b, indexRegister(defn.AddressingMode))
		b.next()
		b.addressZeroPage()

	case instructions.Absolute:
		dec.absolute(b)
		b.next()
		b.addressAD()

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		dec.absolute(b)
		dec.fixedIndex(b, indexRegister(defn.AddressingMode))
		b.next()
		b.addressAD()

	case instructions.IndexedIndirect:
		dec.zeroPage(b)
		dec.zeroPageIndexed(b, registers.X)
		dec.pointer(b)
		b.next()
		b.addressAD()

	case instructions.IndirectIndexed:
		dec.zeroPage(b)
		dec.pointer(b)
		dec.fixedIndex(b, registers.Y)
		b.next()
		b.addressAD()

	case instructions.ZeroPageIndirect:
		dec.zeroPage(b)
		dec.pointer(b)
		b.next()
		b.addressAD()

	default:
		return curated.Errorf(NoTemplate, defn)
	}

	b.emit(op, operations.Write)

	return nil
}

// fixedIndex adds the index to the address in ADL and ADH. there is always a
// dummy read from the unfixed address, whether or not a page is crossed.
func (dec *Decoder) fixedIndex(b *builder, index registers.Address) {
	b.next()
	b.add(operations.Add, registers.ADL, index, 0)
	b.addressAD()
	b.dummyRead()
	b.constant(operations.AddCarry, registers.ADH, 0x00, 0)
}

// rmw is the template for read-modify-write instructions. the unmodified
// value is written back to memory while the modification takes place. the
// 65C02 reads the address again instead.
func (dec *Decoder) rmw(b *builder, defn *instructions.Definition, ops []operations.Operation) error {
	var address func()

	switch defn.AddressingMode {
	case instructions.ZeroPage:
		dec.zeroPage(b)
		address = b.addressZeroPage

	case instructions.ZeroPageIndexedX:
		dec.zeroPage(b)
		dec.zeroPageIndexed(b, registers.X)
		address = b.addressZeroPage

	case instructions.Absolute:
		dec.absolute(b)
		address = b.addressAD

	case instructions.AbsoluteIndexedX:
		dec.absolute(b)
		address = b.addressAD

		// shifts and rotates on the 65C02 only fix the page if it is needed
		if defn.PageSensitive {
			dec.indexed(b, registers.X, operations.Operation{Kind: operations.Nop})
			b.next()
			address()
			b.dummyRead()
			dec.modify(b, address, ops)
			return nil
		}

		dec.fixedIndex(b, registers.X)

	default:
		return curated.Errorf(NoTemplate, defn)
	}

	b.next()
	address()
	b.add(operations.Nop, 0, 0, operations.Read)

	b.next()
	address()
	if dec.cmos {
		b.dummyRead()
	} else {
		b.dummyWrite()
	}

	dec.modify(b, address, ops)

	return nil
}

// modify is the final cycle of a read-modify-write instruction.
func (dec *Decoder) modify(b *builder, address func(), ops []operations.Operation) {
	b.next()
	address()
	for i, op := range ops {
		if i == len(ops)-1 {
			b.emit(op, operations.Write)
		} else {
			b.emit(op, 0)
		}
	}
}

// flow is the template for JMP and the branch instructions.
func (dec *Decoder) flow(b *builder, defn *instructions.Definition) error {
	switch defn.AddressingMode {
	case instructions.Absolute:
		// 1  PC+1  read address low
		// 2  PC+2  read address high
		b.next()
		b.operand(registers.ADL)
		b.next()
		b.pcInc()
		b.addressPC()
		b.read(registers.PCH)
		b.load(registers.PCL, registers.ADL)

	case instructions.Indirect:
		// 1  PC+1    read pointer low
		// 2  PC+2    read pointer high
		// 3  ptr     read address low
		// 4  ptr+1   read address high
		//
		// on the NMOS 6502 the pointer high byte is not changed when the low
		// byte is incremented. the 65C02 fixes this at the cost of a cycle
		b.next()
		b.operand(registers.ADL)
		b.next()
		b.operand(registers.ADH)
		b.next()
		b.addressAD()
		b.read(registers.PCL)
		b.constant(operations.Add, registers.ADL, 0x01, 0)
		if dec.cmos {
			b.constant(operations.AddCarry, registers.ADH, 0x00, 0)
			b.next()
			b.addressAD()
			b.dummyRead()
		}
		b.next()
		b.addressAD()
		b.read(registers.PCH)

	case instructions.AbsoluteIndexedIndirect:
		// 1  PC+1     read pointer low
		// 2  PC+2     read pointer high
		// 3  PC+2     dummy read
		// 4  ptr+X    read address low
		// 5  ptr+X+1  read address high
		b.next()
		b.operand(registers.ADL)
		b.next()
		b.operand(registers.ADH)
		b.next()
		b.addressPC()
		b.dummyRead()
		b.add(operations.Add, registers.ADL, registers.X, 0)
		b.constant(operations.AddCarry, registers.ADH, 0x00, 0)
		b.next()
		b.addressAD()
		b.read(registers.PCL)
		b.constant(operations.Add, registers.ADL, 0x01, 0)
		b.constant(operations.AddCarry, registers.ADH, 0x00, 0)
		b.next()
		b.addressAD()
		b.read(registers.PCH)

	case instructions.Relative:
		// 1  PC+1  read offset
		// 2  PC+2  dummy read (branch taken only)
		// 3  PC+2  dummy read from unfixed page (page crossed only)
		b.next()
		b.operand(registers.ADL)
		b.pcInc()

		if defn.Mnemonic == instructions.BRA {
			dec.branch(b, 0)
			return nil
		}

		test, ok := branchTest(defn)
		if !ok {
			return curated.Errorf(NoTemplate, defn)
		}
		b.emit(test, 0)
		dec.branch(b, operations.IfCond)

	case instructions.ZeroPageRelative:
		// 1  PC+1  read address
		// 2  zp    read
		// 3  zp    dummy read
		// 4  PC+2  read offset
		// 5  PC+3  dummy read (branch taken only)
		// 6  PC+3  dummy read from unfixed page (page crossed only)
		test, ok := branchTest(defn)
		if !ok {
			return curated.Errorf(NoTemplate, defn)
		}
		dec.zeroPage(b)
		b.next()
		b.addressZeroPage()
		b.add(operations.Nop, 0, 0, operations.Read)
		b.emit(test, 0)
		b.next()
		b.addressZeroPage()
		b.dummyRead()
		b.next()
		b.addressPC()
		b.read(registers.ADL)
		b.pcInc()
		dec.branch(b, operations.IfCond)

	default:
		return curated.Errorf(NoTemplate, defn)
	}

	return nil
}

// branch adds the signed offset in ADL to the program counter. the high byte
// of the program counter is fixed in an additional cycle if required.
func (dec *Decoder) branch(b *builder, cond operations.Flags) {
	b.next()
	b.when(cond)
	b.addressPC()
	b.dummyRead()
	b.add(operations.AddSigned, registers.PCL, registers.ADL, 0)

	b.next()
	b.when(cond | operations.IfCrossed)
	b.addressPC()
	b.dummyRead()
	b.constant(operations.AddCarry, registers.PCH, 0x00, 0)
}

// jsr pushes the address of the last byte of the instruction.
//
//	1  PC+1   read address low
//	2  stack  dummy read
//	3  stack  push PCH
//	4  stack  push PCL
//	5  PC+2   read address high
func (dec *Decoder) jsr(b *builder) {
	b.next()
	b.operand(registers.ADL)
	b.pcInc()

	b.next()
	b.addressStack()
	b.dummyRead()

	b.next()
	b.push(registers.PCH)

	b.next()
	b.push(registers.PCL)

	b.next()
	b.addressPC()
	b.read(registers.PCH)
	b.load(registers.PCL, registers.ADL)
}

// rts pulls the return address and increments it.
//
//	1  PC+1   dummy read
//	2  stack  dummy read
//	3  stack  pull PCL
//	4  stack  pull PCH
//	5  PC     dummy read
func (dec *Decoder) rts(b *builder) {
	b.next()
	b.pcInc()
	b.addressPC()
	b.dummyRead()

	b.next()
	b.addressStack()
	b.dummyRead()
	b.add(operations.Inc, registers.SP, 0, 0)

	b.next()
	b.addressStack()
	b.read(registers.PCL)
	b.add(operations.Inc, registers.SP, 0, 0)

	b.next()
	b.addressStack()
	b.read(registers.PCH)

	b.next()
	b.addressPC()
	b.dummyRead()
	b.pcInc()
}

// rti pulls the status register and the return address.
//
//	1  PC+1   dummy read
//	2  stack  dummy read
//	3  stack  pull SREG
//	4  stack  pull PCL
//	5  stack  pull PCH
func (dec *Decoder) rti(b *builder) {
	b.next()
	b.pcInc()
	b.addressPC()
	b.dummyRead()

	b.next()
	b.addressStack()
	b.dummyRead()
	b.add(operations.Inc, registers.SP, 0, 0)

	b.next()
	b.addressStack()
	b.read(registers.SREG)
	b.add(operations.Inc, registers.SP, 0, 0)

	b.next()
	b.addressStack()
	b.read(registers.PCL)
	b.add(operations.Inc, registers.SP, 0, 0)

	b.next()
	b.addressStack()
	b.read(registers.PCH)
}

// brk pushes the address two bytes after the opcode and the status register
// with the break flag set.
//
//	1  PC+1   dummy read
//	2  stack  push PCH
//	3  stack  push PCL
//	4  stack  push SREG
//	5  FFFE   read address low
//	6  FFFF   read address high
func (dec *Decoder) brk(b *builder) {
	b.next()
	b.pcInc()
	b.addressPC()
	b.dummyRead()
	b.pcInc()

	b.next()
	b.push(registers.PCH)

	b.next()
	b.push(registers.PCL)

	b.next()
	b.constant(operations.SetBit, registers.SREG, uint8(registers.Break), 0)
	b.push(registers.SREG)
	b.constant(operations.ClearBit, registers.SREG, uint8(registers.Break), 0)

	// the decimal flag is only cleared by BRK on the 65C02
	b.next()
	b.vector(cpubus.BRK, dec.cmos)
}

// halt is the template for JAM and STP. STP takes an extra cycle.
func (dec *Decoder) halt(b *builder, stp bool) {
	b.next()
	b.pcInc()
	b.addressPC()
	b.dummyRead()
	if stp {
		b.next()
		b.addressPC()
		b.dummyRead()
	}
	b.add(operations.Halt, 0, 0, 0)
}

// wait is the template for WAI.
func (dec *Decoder) wait(b *builder) {
	b.next()
	b.pcInc()
	b.addressPC()
	b.dummyRead()
	b.next()
	b.addressPC()
	b.dummyRead()
	b.add(operations.Wait, 0, 0, 0)
}
