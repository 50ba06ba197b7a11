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

package registers

import (
	"fmt"
	"strings"
)

// Address is a location in the virtual address space shared by the external
// memory and the register file.
type Address uint32

// RegisterSpace is the first address of the register file. Addresses below
// this value are external memory addresses.
const RegisterSpace Address = 0x10000

// List of register file cells.
const (
	ACC Address = RegisterSpace + iota
	SREG
	X
	Y
	PCL
	PCH
	SP
	DATA
	ADL
	ADH
	ABL
	ABH
)

// NumRegisters is the number of cells in the register file.
const NumRegisters = int(ABH-RegisterSpace) + 1

// StackPage is the high byte of all stack addresses.
const StackPage = uint8(0x01)

type label struct {
	name  string
	alias string
}

var labels = [NumRegisters]label{
	{name: "ACC", alias: "A"},
	{name: "SREG", alias: "P"},
	{name: "X", alias: "IX"},
	{name: "Y", alias: "IY"},
	{name: "PCL"},
	{name: "PCH"},
	{name: "SP", alias: "S"},
	{name: "DATA", alias: "DL"},
	{name: "ADL"},
	{name: "ADH"},
	{name: "ABL"},
	{name: "ABH"},
}

// IsRegister returns true if the address refers to a register file cell.
func (a Address) IsRegister() bool {
	return a >= RegisterSpace && a <= ABH
}

func (a Address) String() string {
	if a.IsRegister() {
		return labels[a-RegisterSpace].name
	}
	return fmt.Sprintf("$%04x", uint32(a))
}

// Lookup returns the register address for the label. Labels are case
// insensitive and aliases are accepted.
func Lookup(s string) (Address, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, l := range labels {
		if s == l.name || (l.alias != "" && s == l.alias) {
			return RegisterSpace + Address(i), true
		}
	}
	return 0, false
}

// Pack combines a high and low byte into a sixteen bit address.
func Pack(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Unpack splits a sixteen bit address into its high and low bytes.
func Unpack(v uint16) (hi, lo uint8) {
	return uint8(v >> 8), uint8(v)
}
