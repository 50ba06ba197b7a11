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

// Package operations defines the micro-operations executed by the CPU and the
// Program type that holds a sequence of them.
//
// A micro-operation names a kind of operation and one or two operands. The
// operands are addresses in the virtual address space defined by the
// registers package, so an operand can refer either to a register cell or,
// when the CONST flag is set, to a constant value.
//
// Each operation carries the index of the cycle in which it takes place.
// Operations with the same cycle index are executed in order, and exactly
// one operation in each cycle is flagged with READ or WRITE. That operation
// is the one that causes the bus to be serviced.
package operations
