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
	"github.com/s65emu/s65/hardware/cpu/operations"
	"github.com/s65emu/s65/hardware/cpu/registers"
)

// builder appends operations to a program one cycle at a time.
type builder struct {
	prog  *operations.Program
	cycle int

	// conditions added to every operation in the current cycle
	cond operations.Flags

	// conditions added to every operation in the program
	base operations.Flags

	// set if the program ran out of space
	full bool
}

func newBuilder() *builder {
	return &builder{
		prog: &operations.Program{},
	}
}

// next moves the builder to the next cycle and removes any conditions.
func (b *builder) next() {
	b.cycle++
	b.cond = 0
}

// when adds conditions to every operation in the current cycle.
func (b *builder) when(cond operations.Flags) {
	b.cond = cond
}

func (b *builder) add(kind operations.Kind, first registers.Address, second registers.Address, flags operations.Flags) {
	if b.full {
		return
	}
	b.full = !b.prog.Append(operations.Operation{
		Kind:   kind,
		First:  first,
		Second: second,
		Cycle:  b.cycle,
		Flags:  flags | b.cond | b.base,
	})
}

func (b *builder) constant(kind operations.Kind, first registers.Address, v uint8, flags operations.Flags) {
	b.add(kind, first, registers.Address(v), flags|operations.Const)
}

// emit adds a copy of op to the current cycle with the additional flags.
func (b *builder) emit(op operations.Operation, flags operations.Flags) {
	b.add(op.Kind, op.First, op.Second, op.Flags|flags)
}

func (b *builder) load(dst registers.Address, src registers.Address) {
	b.add(operations.Load, dst, src, 0)
}

func (b *builder) addressPC() {
	b.load(registers.ABL, registers.PCL)
	b.load(registers.ABH, registers.PCH)
}

func (b *builder) addressAD() {
	b.load(registers.ABL, registers.ADL)
	b.load(registers.ABH, registers.ADH)
}

func (b *builder) addressZeroPage() {
	b.load(registers.ABL, registers.ADL)
	b.constant(operations.Load, registers.ABH, 0x00, 0)
}

func (b *builder) addressStack() {
	b.load(registers.ABL, registers.SP)
	b.constant(operations.Load, registers.ABH, registers.StackPage, 0)
}

func (b *builder) addressVector(v uint16) {
	hi, lo := registers.Unpack(v)
	b.constant(operations.Load, registers.ABL, lo, 0)
	b.constant(operations.Load, registers.ABH, hi, 0)
}

func (b *builder) pcInc() {
	b.add(operations.PCInc, 0, 0, 0)
}

// opcode is the first cycle of every instruction.
func (b *builder) opcode() {
	b.addressPC()
	b.add(operations.Fetch, 0, 0, operations.Read)
}

// dummyRead is a read cycle with no effect other than the bus access.
func (b *builder) dummyRead() {
	b.add(operations.Fetch, 0, 0, operations.Read|operations.Discard)
}

// dummyWrite writes DATA back to the address bus unchanged.
func (b *builder) dummyWrite() {
	b.add(operations.Nop, 0, 0, operations.Write)
}

// read loads the byte on the data bus into dst.
func (b *builder) read(dst registers.Address) {
	b.add(operations.Load, dst, registers.DATA, operations.Read)
}

// operand reads the byte at the program counter into dst and advances the
// program counter.
func (b *builder) operand(dst registers.Address) {
	b.pcInc()
	b.addressPC()
	b.read(dst)
}

// push writes src to the stack.
func (b *builder) push(src registers.Address) {
	b.addressStack()
	b.add(operations.Load, registers.DATA, src, operations.Write)
	b.add(operations.Dec, registers.SP, 0, 0)
}

// vector reads the two bytes of the vector into the program counter over two
// cycles. the first cycle is the current cycle.
func (b *builder) vector(v uint16, clearDecimal bool) {
	b.addressVector(v)
	b.read(registers.PCL)
	b.constant(operations.SetBit, registers.SREG, uint8(registers.InterruptDisable), 0)
	if clearDecimal {
		b.constant(operations.ClearBit, registers.SREG, uint8(registers.DecimalMode), 0)
	}
	b.next()
	b.addressVector(v + 1)
	b.read(registers.PCH)
}
