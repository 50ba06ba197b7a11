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


// Package hardware is the base package for the 6502 emulation. The CPU and
// everything it depends on live in the sub-packages:
//
//	cpu                  the CPU and its bus driver
//	cpu/registers        register file and ALU helpers
//	cpu/instructions     instruction table for each instruction set
//	cpu/operations       micro-operations and programs
//	cpu/decoder          compiles instructions into programs
//	cpu/execution        the result of executing an instruction
//	memory               flat 64k memory for test harnesses
//	memory/cpubus        the interface between the CPU and memory
//	preferences          preferences for the emulated hardware
//	instance             per-CPU context
package hardware
