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


package cpu_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/s65emu/s65/curated"
	"github.com/s65emu/s65/hardware/cpu"
	"github.com/s65emu/s65/hardware/cpu/execution"
	"github.com/s65emu/s65/hardware/cpu/instructions"
	"github.com/s65emu/s65/hardware/cpu/operations"
	"github.com/s65emu/s65/hardware/cpu/registers"
	"github.com/s65emu/s65/hardware/instance"
	"github.com/s65emu/s65/hardware/memory/cpubus"
	"github.com/s65emu/s65/logger"
	"github.com/s65emu/s65/test"
)

// the origin of the test programs. the reset vector points here
const origin = uint16(0x0400)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{internal: make([]uint8, 0x10000)}
	mem.vector(cpubus.Reset, origin)
	return mem
}

// the page at 0xd000 is not accessible
func inaccessible(address uint16) bool {
	return address&0xf000 == 0xd000
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if inaccessible(address) {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if inaccessible(address) {
		return curated.Errorf(cpubus.AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) vector(address uint16, v uint16) {
	mem.internal[address] = uint8(v)
	mem.internal[address+1] = uint8(v >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, fmt.Sprintf("memory %#04x", address))
}

// newCPU creates and resets a CPU with the named instruction set.
func newCPU(t *testing.T, set string) (*cpu.CPU, *mockMem) {
	t.Helper()

	ins, err := instance.NewInstance(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ins.Prefs.InstructionSet.Set(set))

	mem := newMockMem()
	mc := cpu.NewCPU(ins, mem)
	_, err = mc.Reset()
	test.DemandSuccess(t, err)

	return mc, mem
}

// step executes a single instruction and checks the result is consistent
// with the instruction definition.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()

	test.DemandSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	return mc.LastResult
}

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	t.Helper()

	org := mem.putInstructions(origin, 0x38, 0xf8, 0x78, 0x18, 0xd8, 0x58, 0xb8)
	mem.putInstructions(org, 0x08, 0x28)

	regs := mc.Registers()

	step(t, mc) // SEC
	test.ExpectEquality(t, regs.Status().String(), "nv-bdIzC")
	step(t, mc) // SED
	test.ExpectEquality(t, regs.Status().String(), "nv-bDIzC")
	step(t, mc) // SEI
	test.ExpectEquality(t, regs.Status().String(), "nv-bDIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, regs.Status().String(), "nv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, regs.Status().String(), "nv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, regs.Status().String(), "nv-bdizc")

	regs.SetFlag(registers.Overflow, true)
	step(t, mc) // CLV
	test.ExpectEquality(t, regs.Status().String(), "nv-bdizc")

	// the break flag is set in the pushed value but not in the register
	regs.SetFlag(registers.Carry, true)
	res := step(t, mc) // PHP
	test.ExpectEquality(t, res.Cycles, 3)
	mem.assert(t, 0x01fd, 0x31)
	test.ExpectEquality(t, regs.Status().String(), "nv-bdizC")

	regs.SetFlag(registers.Carry, false)
	res = step(t, mc) // PLP
	test.ExpectEquality(t, res.Cycles, 4)
	test.ExpectEquality(t, regs.Status().String(), "nv-bdizC")
	test.ExpectEquality(t, regs.Get(registers.SP), uint8(0xfd))
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	testStatusInstructions(t, mc, mem)
}

func TestReset(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)
	test.ExpectEquality(t, mc.State(), cpu.PreInit)

	// instructions can not be executed before the CPU is reset
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.NotReset))

	mc.Registers().Set(registers.SREG, registers.DecimalMode.Mask())

	cycles, err := mc.Reset()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 8)
	test.ExpectEquality(t, mc.State(), cpu.Running)
	test.ExpectEquality(t, mc.HasReset(), true)
	test.ExpectEquality(t, mc.Registers().PC(), origin)
	test.ExpectEquality(t, mc.Registers().Get(registers.SP), uint8(0xfd))
	test.ExpectEquality(t, mc.Registers().Flag(registers.InterruptDisable), true)
	test.ExpectEquality(t, mc.Registers().Flag(registers.DecimalMode), false)
	test.ExpectEquality(t, mc.Set(), instructions.NMOS)

	// nothing is written to the stack during a reset
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x00)
	mem.assert(t, 0x01fd, 0x00)

	mem.putInstructions(origin, 0xea)
	step(t, mc)
	test.ExpectEquality(t, mc.HasReset(), false)
}

// normalised instances produce the same random register state on reset
func TestRandomState(t *testing.T) {
	var regs [2]registers.File

	for i := range regs {
		ins, err := instance.NewInstance(nil)
		test.DemandSuccess(t, err)
		ins.Normalise()
		test.DemandSuccess(t, ins.Prefs.RandomState.Set(true))

		mc := cpu.NewCPU(ins, newMockMem())
		_, err = mc.Reset()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, mc.Registers().PC(), origin)

		regs[i] = *mc.Registers()
	}

	test.ExpectEquality(t, regs[0], regs[1])
}

func TestLoadStore(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LDA #$11; LDX #$22; LDY #$33; STA $10; STX $1011; STY $12,X
	org := mem.putInstructions(origin, 0xa9, 0x11, 0xa2, 0x22, 0xa0, 0x33)
	org = mem.putInstructions(org, 0x85, 0x10, 0x8e, 0x11, 0x10, 0x94, 0x12)

	// LDA #$00; LDA #$80
	mem.putInstructions(org, 0xa9, 0x00, 0xa9, 0x80)

	step(t, mc)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x11))
	step(t, mc)
	test.ExpectEquality(t, regs.Get(registers.X), uint8(0x22))
	step(t, mc)
	test.ExpectEquality(t, regs.Get(registers.Y), uint8(0x33))

	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 3)
	mem.assert(t, 0x0010, 0x11)

	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 4)
	test.ExpectEquality(t, res.InstructionData, uint16(0x1011))
	mem.assert(t, 0x1011, 0x22)

	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 4)
	mem.assert(t, 0x0034, 0x33)

	step(t, mc)
	test.ExpectEquality(t, regs.Status().String(), "nv-bdIZc")
	step(t, mc)
	test.ExpectEquality(t, regs.Status().String(), "Nv-bdIzc")
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// CLC; LDA #$7f; ADC #$01
	org := mem.putInstructions(origin, 0x18, 0xa9, 0x7f, 0x69, 0x01)

	// SEC; SBC #$81
	org = mem.putInstructions(org, 0x38, 0xe9, 0x81)

	// CMP #$ff; CPX #$00
	mem.putInstructions(org, 0xc9, 0xff, 0xe0, 0x00)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x80))
	test.ExpectEquality(t, regs.Status().String(), "NV-bdIzc")

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0xff))
	test.ExpectEquality(t, regs.Status().String(), "Nv-bdIzc")

	step(t, mc)
	test.ExpectEquality(t, regs.Status().String(), "nv-bdIZC")
	step(t, mc)
	test.ExpectEquality(t, regs.Status().String(), "nv-bdIZC")
}

func TestDecimalMode(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// SED; CLC; LDA #$09; ADC #$01
	org := mem.putInstructions(origin, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)

	// SEC; LDA #$10; SBC #$01
	org = mem.putInstructions(org, 0x38, 0xa9, 0x10, 0xe9, 0x01)

	// CLC; LDA #$99; ADC #$01
	mem.putInstructions(org, 0x18, 0xa9, 0x99, 0x69, 0x01)

	for i := 0; i < 4; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x10))
	test.ExpectEquality(t, regs.Flag(registers.Carry), false)

	for i := 0; i < 3; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x09))
	test.ExpectEquality(t, regs.Flag(registers.Carry), true)

	for i := 0; i < 3; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x00))
	test.ExpectEquality(t, regs.Flag(registers.Carry), true)
	test.ExpectEquality(t, regs.Flag(registers.Zero), true)
}

// the 65C02 takes an extra cycle for ADC and SBC in decimal mode
func TestDecimalCycle(t *testing.T) {
	for _, s := range []struct {
		set   string
		extra int
	}{
		{"6502", 0},
		{"65C02", 1},
		{"WDC65C02", 1},
	} {
		mc, mem := newCPU(t, s.set)
		regs := mc.Registers()

		// SED; ADC #$01; SBC $0510,X; CLD; ADC #$01
		org := mem.putInstructions(origin, 0xf8, 0x69, 0x01, 0xfd, 0x10, 0x05)
		mem.putInstructions(org, 0xd8, 0x69, 0x01)
		regs.Set(registers.X, 0xf0)

		step(t, mc)

		res := step(t, mc)
		test.ExpectEquality(t, res.Cycles, 2+s.extra, s.set)
		test.ExpectEquality(t, res.DecimalCycle, s.extra == 1, s.set)
		test.ExpectEquality(t, regs.PC(), origin+3, s.set)

		// the page fault and decimal cycles are independent
		res = step(t, mc)
		test.ExpectEquality(t, res.PageFault, true, s.set)
		test.ExpectEquality(t, res.Cycles, 5+s.extra, s.set)
		test.ExpectEquality(t, regs.PC(), org, s.set)

		step(t, mc)
		res = step(t, mc)
		test.ExpectEquality(t, res.Cycles, 2, s.set)
		test.ExpectEquality(t, res.DecimalCycle, false, s.set)
	}
}

func TestIncrement(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LDX #$ff; INX; INC $10; DEY
	mem.putInstructions(origin, 0xa2, 0xff, 0xe8, 0xe6, 0x10, 0x88)
	mem.internal[0x10] = 0xff

	step(t, mc)
	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 2)
	test.ExpectEquality(t, regs.Get(registers.X), uint8(0x00))
	test.ExpectEquality(t, regs.Flag(registers.Zero), true)
	test.ExpectEquality(t, regs.Flag(registers.Sign), false)

	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 5)
	mem.assert(t, 0x0010, 0x00)
	test.ExpectEquality(t, regs.Flag(registers.Zero), true)

	step(t, mc)
	test.ExpectEquality(t, regs.Get(registers.Y), uint8(0xff))
	test.ExpectEquality(t, regs.Flag(registers.Sign), true)
}

func TestShifts(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LDA #$81; ASL A; ROL A; LSR $10; ROR $10
	mem.putInstructions(origin, 0xa9, 0x81, 0x0a, 0x2a, 0x46, 0x10, 0x66, 0x10)
	mem.internal[0x10] = 0x01

	step(t, mc)
	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 2)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x02))
	test.ExpectEquality(t, regs.Flag(registers.Carry), true)

	step(t, mc)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x05))
	test.ExpectEquality(t, regs.Flag(registers.Carry), false)

	step(t, mc)
	mem.assert(t, 0x0010, 0x00)
	test.ExpectEquality(t, regs.Flag(registers.Carry), true)
	test.ExpectEquality(t, regs.Flag(registers.Zero), true)

	step(t, mc)
	mem.assert(t, 0x0010, 0x80)
	test.ExpectEquality(t, regs.Flag(registers.Carry), false)
	test.ExpectEquality(t, regs.Flag(registers.Sign), true)
}

func TestBIT(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LDA #$01; BIT $10
	mem.putInstructions(origin, 0xa9, 0x01, 0x24, 0x10)
	mem.internal[0x10] = 0xc0

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, regs.Status().String(), "NV-bdIZc")
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x01))
}

func TestAbsoluteIndexed(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LDX #$01; LDA $0500,X; LDA $05ff,X; STA $05ff,X
	mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0x00, 0x05, 0xbd, 0xff, 0x05, 0x9d, 0xff, 0x05)
	mem.internal[0x0501] = 0x11
	mem.internal[0x0600] = 0x22

	step(t, mc)

	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 4)
	test.ExpectEquality(t, res.PageFault, false)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x11))

	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 5)
	test.ExpectEquality(t, res.PageFault, true)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x22))

	// stores always take the extra cycle
	regs.Set(registers.ACC, 0x33)
	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 5)
	test.ExpectEquality(t, res.PageFault, false)
	mem.assert(t, 0x0600, 0x33)
	mem.assert(t, 0x0500, 0x00)
}

func TestIndirect(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LDX #$02; LDY #$10; LDA ($10,X); LDA ($20),Y; STA ($20),Y
	mem.putInstructions(origin, 0xa2, 0x02, 0xa0, 0x10, 0xa1, 0x10, 0xb1, 0x20, 0x91, 0x20)
	mem.vector(0x0012, 0x0700)
	mem.vector(0x0020, 0x07f8)
	mem.internal[0x0700] = 0x55
	mem.internal[0x0808] = 0x66

	step(t, mc)
	step(t, mc)

	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 6)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x55))

	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 6)
	test.ExpectEquality(t, res.PageFault, true)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x66))

	regs.Set(registers.ACC, 0x77)
	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 6)
	mem.assert(t, 0x0808, 0x77)
}

func TestZeroPageWrap(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LDX #$02; LDA $ff,X
	mem.putInstructions(origin, 0xa2, 0x02, 0xb5, 0xff)
	mem.internal[0x0001] = 0x42
	mem.internal[0x0101] = 0x99

	step(t, mc)
	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 4)
	test.ExpectEquality(t, res.CPUBug, execution.ZeroPageIndexBug)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x42))
}

func TestBranching(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// BNE +2 (taken); BEQ +2 (not taken)
	mem.putInstructions(origin, 0xd0, 0x02)
	mem.putInstructions(origin+4, 0xf0, 0x02)

	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 3)
	test.ExpectEquality(t, res.BranchSuccess, true)
	test.ExpectEquality(t, res.PageFault, false)
	test.ExpectEquality(t, regs.PC(), origin+4)

	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 2)
	test.ExpectEquality(t, res.BranchSuccess, false)
	test.ExpectEquality(t, regs.PC(), origin+6)

	// a taken branch across a page boundary takes two extra cycles
	regs.SetPC(0x04fd)
	mem.putInstructions(0x04fd, 0xd0, 0x10)
	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 4)
	test.ExpectEquality(t, res.BranchSuccess, true)
	test.ExpectEquality(t, res.PageFault, true)
	test.ExpectEquality(t, regs.PC(), uint16(0x050f))

	// and backwards
	mem.putInstructions(0x050f, 0xd0, 0xe0)
	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 4)
	test.ExpectEquality(t, res.PageFault, true)
	test.ExpectEquality(t, regs.PC(), uint16(0x04f1))
}

func TestJumps(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// JMP $0500
	mem.putInstructions(origin, 0x4c, 0x00, 0x05)

	// JSR $0600; NOP
	mem.putInstructions(0x0500, 0x20, 0x00, 0x06, 0xea)

	// RTS
	mem.putInstructions(0x0600, 0x60)

	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 3)
	test.ExpectEquality(t, res.InstructionData, uint16(0x0500))
	test.ExpectEquality(t, regs.PC(), uint16(0x0500))

	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 6)
	test.ExpectEquality(t, res.InstructionData, uint16(0x0600))
	test.ExpectEquality(t, regs.PC(), uint16(0x0600))
	test.ExpectEquality(t, regs.Get(registers.SP), uint8(0xfb))

	// the address pushed by JSR is the address of its last byte
	mem.assert(t, 0x01fd, 0x05)
	mem.assert(t, 0x01fc, 0x02)

	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 6)
	test.ExpectEquality(t, regs.PC(), uint16(0x0503))
	test.ExpectEquality(t, regs.Get(registers.SP), uint8(0xfd))

	res = step(t, mc)
	test.ExpectEquality(t, res.Defn.Mnemonic, instructions.NOP)
}

func TestJumpIndirect(t *testing.T) {
	prepare := func(mem *mockMem) {
		// JMP ($02ff)
		mem.putInstructions(origin, 0x6c, 0xff, 0x02)
		mem.internal[0x02ff] = 0x34
		mem.internal[0x0200] = 0x12
		mem.internal[0x0300] = 0x56
	}

	// the NMOS 6502 reads the high byte from the start of the same page
	mc, mem := newCPU(t, "6502")
	prepare(mem)
	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 5)
	test.ExpectEquality(t, res.CPUBug, execution.JmpIndirectAddressingBug)
	test.ExpectEquality(t, mc.Registers().PC(), uint16(0x1234))

	mc, mem = newCPU(t, "65C02")
	prepare(mem)
	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 6)
	test.ExpectEquality(t, res.CPUBug, execution.NoBug)
	test.ExpectEquality(t, mc.Registers().PC(), uint16(0x5634))
}

func TestBRK(t *testing.T) {
	for _, set := range []string{"6502", "65C02"} {
		mc, mem := newCPU(t, set)
		regs := mc.Registers()

		// BRK; signature byte
		mem.putInstructions(origin, 0x00, 0xff)
		mem.vector(cpubus.BRK, 0x0500)

		// RTI
		mem.putInstructions(0x0500, 0x40)

		regs.SetFlag(registers.DecimalMode, true)

		res := step(t, mc)
		test.ExpectEquality(t, res.Cycles, 7, set)
		test.ExpectEquality(t, regs.PC(), uint16(0x0500), set)
		test.ExpectEquality(t, regs.Get(registers.SP), uint8(0xfa), set)
		mem.assert(t, 0x01fd, 0x04)
		mem.assert(t, 0x01fc, 0x02)
		mem.assert(t, 0x01fb, 0x3c)

		test.ExpectEquality(t, regs.Flag(registers.Break), false, set)
		test.ExpectEquality(t, regs.Flag(registers.InterruptDisable), true, set)

		// only the CMOS parts clear the decimal flag
		test.ExpectEquality(t, regs.Flag(registers.DecimalMode), set == "6502", set)

		res = step(t, mc)
		test.ExpectEquality(t, res.Cycles, 6, set)
		test.ExpectEquality(t, regs.PC(), origin+2, set)
		test.ExpectEquality(t, regs.Flag(registers.Break), false, set)
		test.ExpectEquality(t, regs.Flag(registers.DecimalMode), true, set)
	}
}

func TestIRQ(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// NOP; CLI; NOP
	mem.putInstructions(origin, 0xea, 0x58, 0xea)
	mem.vector(cpubus.IRQ, 0x0600)

	// NOP
	mem.putInstructions(0x0600, 0xea)

	mc.SetIRQ(true)

	// the interrupt disable flag is set after a reset
	res := step(t, mc)
	test.ExpectEquality(t, res.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, res.Defn.Mnemonic, instructions.NOP)

	res = step(t, mc)
	test.ExpectEquality(t, res.Defn.Mnemonic, instructions.CLI)

	res = step(t, mc)
	test.ExpectEquality(t, res.Interrupt, execution.IRQ)
	test.ExpectEquality(t, res.Cycles, 7)
	test.ExpectEquality(t, regs.PC(), uint16(0x0600))
	test.ExpectEquality(t, regs.Flag(registers.InterruptDisable), true)

	// the return address is the interrupted instruction. the break flag is
	// clear in the pushed status register
	mem.assert(t, 0x01fd, 0x04)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x20)

	// the line is still asserted but interrupts are now disabled
	res = step(t, mc)
	test.ExpectEquality(t, res.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, regs.PC(), uint16(0x0601))
}

func TestNMI(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	mem.putInstructions(origin, 0xea)
	mem.vector(cpubus.NMI, 0x0700)
	mem.putInstructions(0x0700, 0xea)

	// the NMI is serviced even when interrupts are disabled
	mc.RequestNMI()
	res := step(t, mc)
	test.ExpectEquality(t, res.Interrupt, execution.NMI)
	test.ExpectEquality(t, res.Cycles, 7)
	test.ExpectEquality(t, regs.PC(), uint16(0x0700))
	mem.assert(t, 0x01fd, 0x04)
	mem.assert(t, 0x01fc, 0x00)
	mem.assert(t, 0x01fb, 0x24)

	// the request is serviced once only
	res = step(t, mc)
	test.ExpectEquality(t, res.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, regs.PC(), uint16(0x0701))
}

func TestJAM(t *testing.T) {
	var log strings.Builder
	logger.Clear()

	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LDA #$55; JAM
	mem.putInstructions(origin, 0xa9, 0x55, 0x02)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.State(), cpu.Jammed)

	before := *regs
	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
		test.ExpectEquality(t, mc.LastResult.Cycles, 1)
	}
	test.ExpectEquality(t, *regs, before)

	// operations have no effect on a jammed CPU
	outcome, err := mc.Execute(operations.Operation{
		Kind:   operations.Load,
		First:  registers.ACC,
		Second: 0x11,
		Flags:  operations.Const,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, outcome, cpu.Skipped)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x55))

	// a reset recovers the CPU
	_, err = mc.Reset()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.State(), cpu.Running)

	logger.Write(&log)
	test.ExpectSuccess(t, strings.Contains(log.String(), "halted"))
}

func TestExecute(t *testing.T) {
	mc, _ := newCPU(t, "6502")
	regs := mc.Registers()

	outcome, err := mc.Execute(operations.Operation{
		Kind:   operations.Load,
		First:  registers.X,
		Second: 0x80,
		Flags:  operations.Const,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, outcome, cpu.Executed)
	test.ExpectEquality(t, regs.Get(registers.X), uint8(0x80))
	test.ExpectEquality(t, regs.Flag(registers.Sign), true)

	// unknown kind of operation
	_, err = mc.Execute(operations.Operation{Kind: operations.Kind(255)})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidOperation))

	// the destination of a load must be a register
	_, err = mc.Execute(operations.Operation{
		Kind:   operations.Load,
		First:  0x1234,
		Second: 0x00,
		Flags:  operations.Const,
	})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidOperation))

	// conditional operations are skipped when their condition is not met
	regs.SetFlag(registers.Zero, false)
	outcome, err = mc.Execute(operations.Operation{
		Kind:   operations.TestSet,
		First:  registers.SREG,
		Second: registers.Address(registers.Zero),
		Flags:  operations.Const,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, outcome, cpu.Executed)

	outcome, err = mc.Execute(operations.Operation{
		Kind:   operations.Load,
		First:  registers.Y,
		Second: 0x01,
		Flags:  operations.Const | operations.IfCond,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, outcome, cpu.Skipped)
	test.ExpectEquality(t, regs.Get(registers.Y), uint8(0x00))

	// and the inverse condition is executed
	outcome, err = mc.Execute(operations.Operation{
		Kind:   operations.Load,
		First:  registers.Y,
		Second: 0x02,
		Flags:  operations.Const | operations.IfNotCond,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, outcome, cpu.Executed)
	test.ExpectEquality(t, regs.Get(registers.Y), uint8(0x02))

	// once the condition is met the inverse condition is skipped
	regs.SetFlag(registers.Zero, true)
	outcome, err = mc.Execute(operations.Operation{
		Kind:   operations.TestSet,
		First:  registers.SREG,
		Second: registers.Address(registers.Zero),
		Flags:  operations.Const,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, outcome, cpu.Executed)

	before := *regs
	outcome, err = mc.Execute(operations.Operation{
		Kind:   operations.Load,
		First:  registers.Y,
		Second: 0x03,
		Flags:  operations.Const | operations.IfNotCond,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, outcome, cpu.Skipped)
	test.ExpectEquality(t, regs.Get(registers.Y), uint8(0x02))
	test.ExpectEquality(t, *regs, before)

	outcome, err = mc.Execute(operations.Operation{
		Kind:   operations.Load,
		First:  registers.Y,
		Second: 0x04,
		Flags:  operations.Const | operations.IfCond,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, outcome, cpu.Executed)
	test.ExpectEquality(t, regs.Get(registers.Y), uint8(0x04))
}

func TestAddressError(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LDA #$ff; LDA $d000; NOP
	mem.putInstructions(origin, 0xa9, 0xff, 0xad, 0x00, 0xd0, 0xea)

	step(t, mc)
	res := step(t, mc)
	test.ExpectInequality(t, res.Error, "")
	test.ExpectEquality(t, res.Cycles, 4)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x00))

	res = step(t, mc)
	test.ExpectEquality(t, res.Error, "")
}

func TestCycleCallback(t *testing.T) {
	mc, mem := newCPU(t, "6502")

	// LDA $0500,X
	mem.putInstructions(origin, 0xbd, 0x00, 0x05)

	before := mc.Cycles()

	var cycles int
	err := mc.ExecuteInstruction(func() error {
		cycles++
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 4)
	test.ExpectEquality(t, mc.LastResult.Cycles, cycles)
	test.ExpectEquality(t, mc.Cycles(), before+4)

	// errors from the callback halt the instruction
	mc.Registers().SetPC(origin)
	err = mc.ExecuteInstruction(func() error {
		return curated.Errorf("test: stop")
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, mc.LastResult.Final, false)
}

func TestCMOSInstructions(t *testing.T) {
	mc, mem := newCPU(t, "WDC65C02")
	regs := mc.Registers()

	// LDA #$0f; TSB $10; TRB $11; STZ $12; BIT #$80
	org := mem.putInstructions(origin, 0xa9, 0x0f, 0x04, 0x10, 0x14, 0x11, 0x64, 0x12, 0x89, 0x80)

	// SMB3 $13; BBS3 $13,+2; (skipped) NOP NOP; BRA +1
	org = mem.putInstructions(org, 0xb7, 0x13, 0xbf, 0x13, 0x02, 0xea, 0xea, 0x80, 0x01)

	// (skipped) NOP; PHX; PLY; INC A
	mem.putInstructions(org, 0xea, 0xda, 0x7a, 0x1a)

	mem.internal[0x10] = 0xf0
	mem.internal[0x11] = 0xff
	mem.internal[0x12] = 0xaa

	step(t, mc)

	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 5)
	mem.assert(t, 0x0010, 0xff)
	test.ExpectEquality(t, regs.Flag(registers.Zero), true)

	step(t, mc)
	mem.assert(t, 0x0011, 0xf0)
	test.ExpectEquality(t, regs.Flag(registers.Zero), false)

	step(t, mc)
	mem.assert(t, 0x0012, 0x00)

	// immediate BIT only changes the zero flag
	regs.SetFlag(registers.Sign, false)
	step(t, mc)
	test.ExpectEquality(t, regs.Flag(registers.Zero), true)
	test.ExpectEquality(t, regs.Flag(registers.Sign), false)

	step(t, mc)
	mem.assert(t, 0x0013, 0x08)

	res = step(t, mc)
	test.ExpectEquality(t, res.BranchSuccess, true)
	test.ExpectEquality(t, regs.PC(), org-2)

	res = step(t, mc)
	test.ExpectEquality(t, res.Defn.Mnemonic, instructions.BRA)
	test.ExpectEquality(t, res.Cycles, 3)
	test.ExpectEquality(t, regs.PC(), org+1)

	regs.Set(registers.X, 0x42)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, regs.Get(registers.Y), uint8(0x42))

	regs.Set(registers.ACC, 0xff)
	step(t, mc)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x00))
	test.ExpectEquality(t, regs.Flag(registers.Zero), true)
}

func TestBranchOnBit(t *testing.T) {
	mc, mem := newCPU(t, "WDC65C02")
	regs := mc.Registers()

	// BBS3 $10,+5
	mem.putInstructions(origin, 0xbf, 0x10, 0x05)
	mem.internal[0x10] = 0x08

	res := step(t, mc)
	test.ExpectEquality(t, res.BranchSuccess, true)
	test.ExpectEquality(t, res.Cycles, 6)
	test.ExpectEquality(t, res.InstructionData, uint16(0x0510))
	test.ExpectEquality(t, regs.PC(), origin+8)

	// BBR3 $10,+5 is not taken with bit 3 set
	mc, mem = newCPU(t, "WDC65C02")
	regs = mc.Registers()
	mem.putInstructions(origin, 0x3f, 0x10, 0x05)
	mem.internal[0x10] = 0x08

	res = step(t, mc)
	test.ExpectEquality(t, res.BranchSuccess, false)
	test.ExpectEquality(t, res.Cycles, 5)
	test.ExpectEquality(t, res.InstructionData, uint16(0x0510))
	test.ExpectEquality(t, regs.PC(), origin+3)

	// BBS0 $20,-4 crosses back into the previous page
	mc, mem = newCPU(t, "WDC65C02")
	regs = mc.Registers()
	mem.putInstructions(origin, 0x8f, 0x20, 0xfc)
	mem.internal[0x20] = 0x01

	res = step(t, mc)
	test.ExpectEquality(t, res.BranchSuccess, true)
	test.ExpectEquality(t, res.PageFault, true)
	test.ExpectEquality(t, res.Cycles, 7)
	test.ExpectEquality(t, regs.PC(), origin-1)
}

func TestCMOSLongNOP(t *testing.T) {
	mc, mem := newCPU(t, "65C02")

	// NOP $1234 (0x5c); NOP $12f0 (0xdc)
	org := mem.putInstructions(origin, 0x5c, 0x34, 0x12, 0xdc, 0xf0, 0x12)

	var addresses []uint16
	callback := func() error {
		addresses = append(addresses, mc.Registers().AddressBus())
		return nil
	}

	test.DemandSuccess(t, mc.ExecuteInstruction(callback))
	res := mc.LastResult
	test.ExpectSuccess(t, res.IsValid())
	test.ExpectEquality(t, res.Cycles, 8)
	test.ExpectEquality(t, res.InstructionData, uint16(0x1234))
	test.ExpectEquality(t, mc.Registers().PC(), origin+3)

	expected := []uint16{origin, origin + 1, origin + 2, 0xff34, 0xffff, 0xffff, 0xffff, 0xffff}
	test.DemandEquality(t, len(addresses), len(expected))
	for i := range expected {
		test.ExpectEquality(t, addresses[i], expected[i], i)
	}

	// the absolute NOPs are not affected by the index register
	mc.Registers().Set(registers.X, 0xff)
	res = step(t, mc)
	test.ExpectEquality(t, res.Cycles, 4)
	test.ExpectEquality(t, res.PageFault, false)
	test.ExpectEquality(t, mc.Registers().PC(), org)
}

func TestWAI(t *testing.T) {
	mc, mem := newCPU(t, "WDC65C02")
	regs := mc.Registers()

	// WAI; NOP
	mem.putInstructions(origin, 0xcb, 0xea)

	res := step(t, mc)
	test.ExpectEquality(t, res.Cycles, 3)
	test.ExpectEquality(t, mc.Waiting(), true)

	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
		test.ExpectEquality(t, mc.LastResult.Cycles, 1)
		test.ExpectEquality(t, regs.PC(), origin+1)
	}

	// a masked interrupt resumes execution without being serviced
	mc.SetIRQ(true)
	res = step(t, mc)
	test.ExpectEquality(t, mc.Waiting(), false)
	test.ExpectEquality(t, res.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, res.Defn.Mnemonic, instructions.NOP)
}

func TestUndocumented(t *testing.T) {
	mc, mem := newCPU(t, "6502")
	regs := mc.Registers()

	// LAX $10 is not emulated and is executed as a NOP with the same timing
	// and length
	mem.putInstructions(origin, 0xa7, 0x10, 0xea)

	res := step(t, mc)
	test.ExpectEquality(t, res.Defn.Undocumented, true)
	test.ExpectEquality(t, res.Defn.IsEmulated(), false)
	test.ExpectEquality(t, res.ByteCount, 2)
	test.ExpectEquality(t, regs.PC(), origin+2)
	test.ExpectEquality(t, regs.Get(registers.ACC), uint8(0x00))
}

func TestEveryOpcode(t *testing.T) {
	for set := instructions.NMOS; int(set) < instructions.NumSets; set++ {
		defns, err := instructions.Definitions(set)
		test.DemandSuccess(t, err)

		for _, defn := range defns {
			if defn.IsHalt() || defn.Mnemonic == instructions.WAI {
				continue
			}

			mc, mem := newCPU(t, set.String())
			mem.putInstructions(origin, defn.OpCode, 0x10, 0x05)
			res := step(t, mc)
			test.ExpectEquality(t, res.Defn, defn)
		}
	}
}

// every instruction that does not change the flow of the program advances
// the program counter by the length of the instruction. branches are given an
// offset of zero so that the taken and not taken cases agree.
func TestInstructionLength(t *testing.T) {
	for set := instructions.NMOS; int(set) < instructions.NumSets; set++ {
		defns, err := instructions.Definitions(set)
		test.DemandSuccess(t, err)

		for _, defn := range defns {
			if defn.IsHalt() || defn.Mnemonic == instructions.WAI {
				continue
			}

			mc, mem := newCPU(t, set.String())

			switch defn.AddressingMode {
			case instructions.Relative:
				mem.putInstructions(origin, defn.OpCode, 0x00)
			case instructions.ZeroPageRelative:
				mem.putInstructions(origin, defn.OpCode, 0x10, 0x00)
			default:
				switch defn.Effect {
				case instructions.Flow, instructions.Subroutine, instructions.Interrupt:
					continue
				}
				mem.putInstructions(origin, defn.OpCode, 0x10, 0x05)
			}

			step(t, mc)
			test.ExpectEquality(t, mc.Registers().PC(), origin+uint16(defn.Bytes()), defn.String())
		}
	}
}
