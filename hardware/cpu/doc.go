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

// Package cpu emulates the 6502 family of CPUs, including the 65C02 and the
// WDC 65C02. The emulation is cycle accurate: every instruction is compiled
// by the decoder package into a program of micro-operations, with one memory
// access in each cycle, and the CPU runs the program one operation at a time.
//
// The CPU type requires an implementation of the cpubus.Memory interface. The
// memory is accessed once per cycle and the cycle callback given to
// ExecuteInstruction() is called after every access.
//
// Before instructions can be executed the CPU must be reset:
//
//	mc := cpu.NewCPU(nil, mem)
//	_, err := mc.Reset()
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction.
//
//	numCycles := 0
//	for {
//		err := mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//	}
//
// The LastResult field of the CPU type records details about the most
// recent instruction or interrupt sequence. See the execution package.
//
// Interrupts are requested with RequestNMI() and SetIRQ(). The IRQ line is
// level sensitive and remains asserted until SetIRQ(false) is called.
//
// Programs are cached by each instance of the CPU type. Nothing is shared
// between instances except the instruction definitions, which never change.
package cpu
