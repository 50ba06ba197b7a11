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
)

// Error patterns.
const (
	NoTemplate     = "decoder: no template for %v"
	ProgramTooLong = "decoder: program too long for %v"
)

// Decoder compiles instruction definitions for an instruction set. The
// instruction set affects the timing of some instructions.
type Decoder struct {
	set instructions.Set

	// 65C02 timing rules apply to the CMOS and WDC instruction sets
	cmos bool
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder(set instructions.Set) *Decoder {
	return &Decoder{
		set:  set,
		cmos: set >= instructions.CMOS,
	}
}

// Set returns the instruction set the decoder compiles for.
func (dec *Decoder) Set() instructions.Set {
	return dec.set
}

// Compile the definition into a new program. The program is not shared with
// any other caller of Compile(). On error the returned program is nil.
func (dec *Decoder) Compile(defn *instructions.Definition) (*operations.Program, error) {
	b := newBuilder()
	b.opcode()

	if err := dec.compile(b, defn); err != nil {
		return nil, err
	}
	if b.full {
		return nil, curated.Errorf(ProgramTooLong, defn.Mnemonic)
	}

	return b.prog, nil
}

// Fetch returns a program consisting only of the opcode fetch. It is the
// first cycle of every program returned by Compile().
func (dec *Decoder) Fetch() *operations.Program {
	b := newBuilder()
	b.opcode()
	return b.prog
}

func (dec *Decoder) compile(b *builder, defn *instructions.Definition) error {
	switch defn.Mnemonic {
	case instructions.JAM:
		dec.halt(b, false)
		return nil
	case instructions.STP:
		dec.halt(b, true)
		return nil
	case instructions.WAI:
		dec.wait(b)
		return nil
	}

	if !defn.IsEmulated() {
		return dec.read(b, defn, operations.Operation{Kind: operations.Nop})
	}

	switch defn.Effect {
	case instructions.Interrupt:
		switch defn.Mnemonic {
		case instructions.BRK:
			dec.brk(b)
			return nil
		case instructions.RTI:
			dec.rti(b)
			return nil
		}

	case instructions.Subroutine:
		switch defn.Mnemonic {
		case instructions.JSR:
			dec.jsr(b)
			return nil
		case instructions.RTS:
			dec.rts(b)
			return nil
		}

	case instructions.Flow:
		return dec.flow(b, defn)

	case instructions.Write:
		if defn.AddressingMode == instructions.Implied {
			return dec.push(b, defn)
		}
		op, ok := storeOperation(defn)
		if !ok {
			break
		}
		return dec.write(b, defn, op)

	case instructions.RMW:
		ops, ok := modifyOperations(defn)
		if !ok {
			break
		}
		return dec.rmw(b, defn, ops)

	case instructions.Read:
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator:
			if defn.Mnemonic == instructions.NOP && defn.Cycles == 1 {
				// the single cycle NOPs of the 65C02 complete during the
				// opcode fetch
				b.pcInc()
				return nil
			}
			if dst, ok := pullDestination(defn); ok {
				dec.pull(b, dst)
				return nil
			}
			op, ok := impliedOperation(defn)
			if !ok {
				break
			}
			dec.implied(b, op)
			return nil
		}

		if defn.Mnemonic == instructions.NOP && defn.Cycles == 8 {
			dec.longNop(b)
			return nil
		}

		op, ok := readOperation(defn)
		if !ok {
			break
		}
		if err := dec.read(b, defn, op); err != nil {
			return err
		}

		// the 65C02 takes an extra cycle to correct the flags after a
		// decimal mode addition or subtraction
		if dec.cmos {
			switch defn.Mnemonic {
			case instructions.ADC, instructions.SBC:
				dec.decimal(b)
			}
		}
		return nil
	}

	return curated.Errorf(NoTemplate, defn)
}
