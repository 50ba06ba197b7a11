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
	"github.com/s65emu/s65/hardware/cpu/execution"
	"github.com/s65emu/s65/hardware/cpu/instructions"
	"github.com/s65emu/s65/hardware/cpu/operations"
	"github.com/s65emu/s65/hardware/cpu/registers"
	"github.com/s65emu/s65/hardware/memory/cpubus"
)

// NilCycleCallback can be used as an argument to ExecuteInstruction(). It is
// a do nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The cycleCallback
// function is called after every cycle of the instruction.
//
// A pending NMI or an asserted IRQ is serviced instead of an instruction. If
// the IRQ is masked by the interrupt disable flag then the next instruction
// is executed as normal.
//
// If the CPU is jammed, or is waiting for an interrupt, then a single cycle
// with no memory access is run.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if mc.state == PreInit {
		return curated.Errorf(NotReset)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.regs.PC()

	if mc.state == Jammed {
		return mc.idle(cycleCallback)
	}

	if mc.nmiPending {
		mc.nmiPending = false
		mc.waiting = false
		return mc.interrupt(execution.NMI, cycleCallback)
	}

	if mc.irqLine {
		mc.waiting = false
		if err := mc.interrupt(execution.IRQ, cycleCallback); err != nil {
			return err
		}
		if mc.LastResult.Cycles > 0 {
			return nil
		}
		mc.LastResult.Reset()
		mc.LastResult.Address = mc.regs.PC()
	}

	if mc.waiting {
		return mc.idle(cycleCallback)
	}

	// fetch and decode
	if err := mc.run(mc.fetch.Operations(), cycleCallback); err != nil {
		return err
	}

	defn, err := instructions.Decode(mc.regs.Get(registers.DATA), mc.dec.Set())
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = defn.Bytes()

	prog, err := mc.program(defn)
	if err != nil {
		return err
	}

	if err := mc.run(prog.AfterFetch(), cycleCallback); err != nil {
		return err
	}

	mc.finalise()

	return nil
}

// interrupt runs the NMI or IRQ sequence.
func (mc *CPU) interrupt(interrupt execution.Interrupt, cycleCallback func() error) error {
	prog, err := mc.interruptProgram(interrupt)
	if err != nil {
		return err
	}

	mc.LastResult.Interrupt = interrupt
	if err := mc.run(prog.Operations(), cycleCallback); err != nil {
		return err
	}
	mc.LastResult.Final = true

	return nil
}

// idle runs a single cycle without accessing memory.
func (mc *CPU) idle(cycleCallback func() error) error {
	mc.LastResult.Final = true
	return mc.endCycle(cycleCallback)
}

// finalise the LastResult of an instruction.
func (mc *CPU) finalise() {
	defn := mc.LastResult.Defn

	if defn.IsBranch() {
		mc.LastResult.BranchSuccess = mc.condMet
	}

	switch defn.AddressingMode {
	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		if mc.pageCrossed {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
	case instructions.IndexedIndirect:
		if mc.pageCrossed {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}
	case instructions.Indirect:
		if mc.dec.Set() == instructions.NMOS && uint8(mc.LastResult.InstructionData) == 0xff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
	}

	if mc.dec.Set() >= instructions.CMOS {
		switch defn.Mnemonic {
		case instructions.ADC, instructions.SBC:
			mc.LastResult.DecimalCycle = mc.regs.Flag(registers.DecimalMode)
		}
	}

	mc.LastResult.Final = true
}

// run the operations. memory is accessed for every operation flagged with
// READ or WRITE that has its conditions met. the cycle ends when the cycle
// index of the operations changes.
func (mc *CPU) run(ops []operations.Operation, cycleCallback func() error) error {
	var bus bool

	for i, op := range ops {
		if i > 0 && op.Cycle != ops[i-1].Cycle && bus {
			bus = false
			if err := mc.endCycle(cycleCallback); err != nil {
				return err
			}
		}

		// data is read before the operation is executed
		if op.Flags&operations.Read == operations.Read && mc.conditionsMet(op.Flags) {
			if err := mc.read(op); err != nil {
				return err
			}
		}

		outcome, err := mc.Execute(op)
		if err != nil {
			return err
		}
		if outcome == Skipped {
			continue
		}

		if op.Flags&operations.IfCrossed == operations.IfCrossed {
			mc.LastResult.PageFault = true
		}

		// and written after the operation is executed
		if op.Flags&operations.Write == operations.Write {
			if err := mc.write(); err != nil {
				return err
			}
		}

		if op.IsBus() {
			bus = true
		}
	}

	if bus {
		return mc.endCycle(cycleCallback)
	}

	return nil
}

func (mc *CPU) endCycle(cycleCallback func() error) error {
	mc.LastResult.Cycles++
	mc.cycles++
	if cycleCallback == nil {
		return nil
	}
	return cycleCallback()
}

// memoryError decides whether an error from the memory implementation should
// halt execution. address errors are recorded in the result.
func (mc *CPU) memoryError(err error) error {
	if !curated.Has(err, cpubus.AddressError) {
		return err
	}
	if mc.LastResult.Error == "" {
		mc.LastResult.Error = err.Error()
	}
	return nil
}

// read the memory at the address bus into DATA.
func (mc *CPU) read(op operations.Operation) error {
	address := mc.regs.AddressBus()

	data, err := mc.mem.Read(address)
	if err != nil {
		if err := mc.memoryError(err); err != nil {
			return err
		}
	}
	mc.regs.Set(registers.DATA, data)

	// record the operand bytes of the instruction. operand bytes are always
	// read from the program counter
	if mc.LastResult.Defn != nil && op.Flags&operations.Discard != operations.Discard && address == mc.regs.PC() {
		switch address - mc.LastResult.Address {
		case 1:
			if mc.LastResult.ByteCount >= 2 {
				mc.LastResult.InstructionData = mc.LastResult.InstructionData&0xff00 | uint16(data)
			}
		case 2:
			if mc.LastResult.ByteCount >= 3 {
				mc.LastResult.InstructionData = mc.LastResult.InstructionData&0x00ff | uint16(data)<<8
			}
		}
	}

	return nil
}

// write DATA to the memory at the address bus.
func (mc *CPU) write() error {
	err := mc.mem.Write(mc.regs.AddressBus(), mc.regs.Get(registers.DATA))
	if err != nil {
		return mc.memoryError(err)
	}
	return nil
}
