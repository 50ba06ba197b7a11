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

// Package registers implements the register file of the 6502 family CPU.
//
// Every cell of the register file is a single byte and is addressed through
// a virtual Address. Addresses below RegisterSpace refer to the 64KB external
// memory and are never stored in the File. The cells above that are:
//
//	ACC, SREG, X, Y, PCL, PCH, SP, DATA, ADL, ADH, ABL, ABH
//
// There is no sixteen bit program counter. The PC is always the pair PCH/PCL
// and is packed and unpacked with the Pack() and Unpack() functions as
// required. Similarly, the address bus is the pair ABH/ABL.
//
// The Register type is a scratch register used by the execution engine to
// perform arithmetic and logic operations. Results are written back to the
// File by the engine, along with any flags. For example:
//
//	r := registers.NewRegister(f.Get(registers.ACC), "ACC")
//	carry, overflow := r.Add(f.Get(registers.DATA), f.Flag(registers.Carry))
//	f.Set(registers.ACC, r.Value())
//
// Decimal mode arithmetic is provided by AddDecimal() and SubtractDecimal().
package registers
