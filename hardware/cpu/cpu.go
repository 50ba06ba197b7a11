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
	"fmt"

	"github.com/s65emu/s65/curated"
	"github.com/s65emu/s65/hardware/cpu/decoder"
	"github.com/s65emu/s65/hardware/cpu/execution"
	"github.com/s65emu/s65/hardware/cpu/instructions"
	"github.com/s65emu/s65/hardware/cpu/operations"
	"github.com/s65emu/s65/hardware/cpu/registers"
	"github.com/s65emu/s65/hardware/instance"
	"github.com/s65emu/s65/hardware/memory/cpubus"
	"github.com/s65emu/s65/logger"
)

// Error patterns.
const (
	InvalidOperation = "cpu: invalid operation (%v)"
	NotReset         = "cpu: not reset"
)

// CPU implements the 6502 family of CPUs.
type CPU struct {
	instance *instance.Instance

	mem  cpubus.Memory
	regs registers.File

	dec *decoder.Decoder

	// compiled programs for each opcode. programs are compiled when they are
	// first needed
	programs [256]*operations.Program

	// the opcode fetch and the interrupt sequences. the interrupt sequences
	// are built when they are first needed
	fetch *operations.Program
	reset *operations.Program
	nmi   *operations.Program
	irq   *operations.Program

	state State

	// latches used by conditional operations. the condition latch is set by
	// the TEST operations and the page crossed latch by the address
	// arithmetic. both are reset on every opcode fetch
	condMet     bool
	pageCrossed bool

	// the carry of the address arithmetic. -1 for a borrow
	addrCarry int8

	// the CPU has executed WAI and is waiting for an interrupt
	waiting bool

	// interrupt lines
	nmiPending bool
	irqLine    bool

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result

	// total number of cycles since the CPU was created
	cycles uint64
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// instance argument can be nil, in which case the CPU uses the NMOS
// instruction set and never randomises its registers.
//
// The CPU must be reset before instructions can be executed.
func NewCPU(instance *instance.Instance, mem cpubus.Memory) *CPU {
	set := instructions.NMOS
	if instance != nil {
		set = instance.Prefs.Set()
	}

	mc := &CPU{
		instance: instance,
		mem:      mem,
		dec:      decoder.NewDecoder(set),
		condMet:  true,
	}
	mc.regs.Clear()
	mc.fetch = mc.dec.Fetch()

	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s [%s]", mc.regs.String(), mc.state)
}

// Registers returns the register file of the CPU. Changes to the register
// file affect the CPU immediately.
func (mc *CPU) Registers() *registers.File {
	return &mc.regs
}

// State returns the current state of the CPU.
func (mc *CPU) State() State {
	return mc.state
}

// Set returns the instruction set being emulated.
func (mc *CPU) Set() instructions.Set {
	return mc.dec.Set()
}

// Waiting returns true if the CPU has executed a WAI instruction and is
// waiting for an interrupt.
func (mc *CPU) Waiting() bool {
	return mc.waiting
}

// Cycles returns the number of cycles executed since the CPU was created.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// RequestNMI requests a non-maskable interrupt. The interrupt is serviced
// before the next instruction.
func (mc *CPU) RequestNMI() {
	mc.nmiPending = true
}

// SetIRQ sets the state of the IRQ line. The interrupt is serviced before
// every instruction while the line is asserted and the interrupt disable
// flag is clear.
func (mc *CPU) SetIRQ(asserted bool) {
	mc.irqLine = asserted
}

// permission for logging. the CPU always logs if it has no instance.
func (mc *CPU) permission() logger.Permission {
	if mc.instance == nil {
		return logger.Allow
	}
	return mc.instance
}

// Reset the CPU and run the reset sequence. Returns the number of cycles in
// the reset sequence.
//
// On return the program counter contains the address stored at the reset
// vector.
func (mc *CPU) Reset() (int, error) {
	mc.LastResult.Reset()
	mc.state = PreInit
	mc.waiting = false
	mc.nmiPending = false
	mc.condMet = true
	mc.pageCrossed = false
	mc.addrCarry = 0

	// checking for instance == nil because it's possible for NewCPU to be
	// called with a nil instance (test package)
	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		mc.regs.SetPC(uint16(mc.instance.Random.NoRewind(0x10000)))
		mc.regs.Set(registers.ACC, uint8(mc.instance.Random.NoRewind(0x100)))
		mc.regs.Set(registers.X, uint8(mc.instance.Random.NoRewind(0x100)))
		mc.regs.Set(registers.Y, uint8(mc.instance.Random.NoRewind(0x100)))
		mc.regs.Set(registers.SREG, uint8(mc.instance.Random.NoRewind(0x100)))
	}

	if mc.reset == nil {
		var err error
		mc.reset, err = mc.dec.Reset()
		if err != nil {
			return 0, err
		}
	}

	mc.LastResult.Address = mc.regs.PC()
	mc.LastResult.Interrupt = execution.Reset

	if err := mc.run(mc.reset.Operations(), nil); err != nil {
		return mc.LastResult.Cycles, err
	}

	mc.LastResult.Final = true
	mc.state = Running

	logger.Logf(mc.permission(), "CPU", "reset (%s): PC=%#04x", mc.dec.Set(), mc.regs.PC())

	return mc.LastResult.Cycles, nil
}

// program returns the compiled program for the instruction.
func (mc *CPU) program(defn *instructions.Definition) (*operations.Program, error) {
	if p := mc.programs[defn.OpCode]; p != nil {
		return p, nil
	}

	p, err := mc.dec.Compile(defn)
	if err != nil {
		return nil, curated.Errorf("cpu: %v", err)
	}
	mc.programs[defn.OpCode] = p

	return p, nil
}

// interruptProgram returns the interrupt program, building it if necessary.
func (mc *CPU) interruptProgram(interrupt execution.Interrupt) (*operations.Program, error) {
	var err error

	switch interrupt {
	case execution.NMI:
		if mc.nmi == nil {
			mc.nmi, err = mc.dec.NMI()
		}
		return mc.nmi, err
	case execution.IRQ:
		if mc.irq == nil {
			mc.irq, err = mc.dec.IRQ()
		}
		return mc.irq, err
	}

	return nil, curated.Errorf(InvalidOperation, interrupt)
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Interrupt == execution.Reset
}

