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


// Package klaus2m5 describes how the 6502 functional tests created and
// maintained by Klaus Dormann are prepared for use with s65.
//
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The tests are assembled with the as65 assembler, which is available for
// download at the above URL. In all cases the assembler is executed in the
// following manner:
//
//	as65 -pmnu <test file>.a65
//
// # functional_test
//
// The 6502_functional_test.a65 file with the vectors test disabled.
//
//	line 88: ROM_vectors = 0
//
// The binary is loaded at 0x000a and run from 0x0400 by the functional_test
// package. The test loops at 0x347d on success.
//
// # 65C02_extended_opcodes_test
//
// The 65C02_extended_opcodes_test.a65c file with the Rockwell and WDC
// instructions enabled. Use the WDC65C02 instruction set when running it.
//
//	line 75: rkwl_wdc_op = 1
//	line 81: wdc_op = 1
package klaus2m5
