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
	"github.com/s65emu/s65/hardware/cpu/operations"
	"github.com/s65emu/s65/hardware/cpu/registers"
	"github.com/s65emu/s65/hardware/memory/cpubus"
)

// Reset returns the reset sequence. The stack pointer is cleared and then
// decremented three times by pushes that read rather than write.
//
//	0-2  PC     dummy reads
//	3-5  stack  dummy reads
//	6    FFFC   read address low
//	7    FFFD   read address high
func (dec *Decoder) Reset() (*operations.Program, error) {
	b := newBuilder()

	b.constant(operations.Load, registers.SP, 0x00, 0)
	for i := 0; i < 3; i++ {
		if i > 0 {
			b.next()
		}
		b.addressPC()
		b.dummyRead()
	}

	for i := 0; i < 3; i++ {
		b.next()
		b.addressStack()
		b.dummyRead()
		b.add(operations.Dec, registers.SP, 0, 0)
	}

	b.next()
	b.vector(cpubus.Reset, true)

	if b.full {
		return nil, curated.Errorf(ProgramTooLong, "RESET")
	}
	return b.prog, nil
}

// NMI returns the non-maskable interrupt sequence.
//
//	0-1  PC     dummy reads
//	2    stack  push PCH
//	3    stack  push PCL
//	4    stack  push SREG
//	5    FFFA   read address low
//	6    FFFB   read address high
func (dec *Decoder) NMI() (*operations.Program, error) {
	b := newBuilder()
	dec.interrupt(b, cpubus.NMI)
	if b.full {
		return nil, curated.Errorf(ProgramTooLong, "NMI")
	}
	return b.prog, nil
}

// IRQ returns the interrupt request sequence. It is the same as the NMI
// sequence except that every operation is conditional on the interrupt
// disable flag being clear. If the flag is set the program runs no cycles.
func (dec *Decoder) IRQ() (*operations.Program, error) {
	b := newBuilder()
	b.constant(operations.TestClear, registers.SREG, uint8(registers.InterruptDisable), 0)
	b.base = operations.IfCond
	dec.interrupt(b, cpubus.IRQ)
	if b.full {
		return nil, curated.Errorf(ProgramTooLong, "IRQ")
	}
	return b.prog, nil
}

func (dec *Decoder) interrupt(b *builder, vector uint16) {
	b.addressPC()
	b.dummyRead()

	b.next()
	b.addressPC()
	b.dummyRead()

	b.next()
	b.push(registers.PCH)

	b.next()
	b.push(registers.PCL)

	b.next()
	b.constant(operations.ClearBit, registers.SREG, uint8(registers.Break), 0)
	b.push(registers.SREG)

	b.next()
	b.vector(vector, true)
}
