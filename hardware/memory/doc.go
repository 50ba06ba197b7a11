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


// Package memory implements a flat 64k memory for the CPU. The Memory type
// satisfies the cpubus.Memory interface and is suitable for running test
// programs and for harnesses that have no memory mapped hardware.
//
// Areas of the address space can be marked as unmapped. Accesses to an
// unmapped area return an error of type cpubus.AddressError, which the CPU
// records in the result of the instruction.
//
// In addition to the bus operations, the Peek() and Poke() functions provide
// access to memory without side effects. They are intended for debugging and
// for test harnesses that need to prepare or examine memory.
package memory
