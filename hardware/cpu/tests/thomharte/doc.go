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


// Package thomharte contains 6502 single-step tests as created/maintained by
// Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included in the s65 repository. Add the
// instructions you want to test to a directory named after the CPU variant
// (6502, synertek65c02 or wdc65c02) and the v1 subdirectory. For example,
// 6502/v1/a9.json. Test files for undocumented opcodes that s65 does not
// emulate are ignored.
//
// The test is skipped if there are no test directories.
package thomharte
