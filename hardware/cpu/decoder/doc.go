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

// Package decoder compiles instruction definitions into programs of
// micro-operations. Each instruction is built from a template chosen by its
// addressing mode and effect category. The template describes the bus
// activity of every cycle of the instruction, as documented by the 6502
// datasheets, and places the operation that is unique to the instruction
// into the correct cycle.
//
// Programs begin with the opcode fetch in cycle zero. The CPU runs the fetch
// itself, decodes the opcode, and then runs the remainder of the program (see
// Program.AfterFetch() in the operations package).
//
// The decoder also builds the RESET, NMI and IRQ sequences. These are
// programs in their own right and do not begin with an opcode fetch.
//
// Undocumented NMOS instructions, with the exception of the JAM instructions
// and opcode 0xeb, which is identical to SBC immediate, are compiled as NOP
// instructions with the timing of a read instruction with the same
// addressing mode.
package decoder
