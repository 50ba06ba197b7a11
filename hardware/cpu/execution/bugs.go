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

package execution

// Bug describes a known quirk of the NMOS 6502 that was triggered by an
// instruction. None of these are bugs in the emulation.
type Bug string

// List of known bugs.
const (
	NoBug Bug = ""

	// JMP (ind) with an address ending in 0xff reads the high byte of the
	// destination from the start of the same page
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the zero page pointer of an indexed indirect instruction wrapped around
	// the end of the zero page
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// zero page indexing never leaves the zero page
	ZeroPageIndexBug Bug = "zero page index bug"
)
