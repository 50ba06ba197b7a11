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

// Package instructions defines the instruction sets of the 6502 family. Each
// opcode is described by a Definition; definitions are looked up with the
// Decode() function.
//
// There are three instruction sets: the NMOS 6502, including the undocumented
// opcodes; the CMOS 65C02, which replaces the undocumented opcodes with new
// instructions and single cycle NOPs; and the WDC 65C02, which adds the bit
// manipulation instructions and the WAI and STP instructions.
package instructions
