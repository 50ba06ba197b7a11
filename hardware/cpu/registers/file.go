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
)

// File is the register file of a single CPU instance.
type File struct {
	cells [NumRegisters]uint8
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	f := &File{}
	f.Clear()
	return f
}

// Clear sets every cell to zero.
func (f *File) Clear() {
	for i := range f.cells {
		f.cells[i] = 0
	}
	f.cells[SREG-RegisterSpace] = Unused.Mask()
}

// Get returns the value of the cell. The address must be a register address.
//
// The unused bit of SREG always reads as one.
func (f *File) Get(a Address) uint8 {
	return f.cells[a-RegisterSpace]
}

// Set the value of the cell. The address must be a register address.
//
// Writes to the unused bit of SREG are ignored.
func (f *File) Set(a Address, v uint8) {
	if a == SREG {
		v |= Unused.Mask()
	}
	f.cells[a-RegisterSpace] = v
}

// Flag returns the state of a status register flag.
func (f *File) Flag(flag Flag) bool {
	return f.cells[SREG-RegisterSpace]&flag.Mask() != 0
}

// SetFlag sets or clears a status register flag.
func (f *File) SetFlag(flag Flag, on bool) {
	if flag == Unused {
		return
	}
	if on {
		f.cells[SREG-RegisterSpace] |= flag.Mask()
	} else {
		f.cells[SREG-RegisterSpace] &^= flag.Mask()
	}
}

// SetNZ sets the sign and zero flags according to v.
func (f *File) SetNZ(v uint8) {
	f.SetFlag(Sign, v&0x80 == 0x80)
	f.SetFlag(Zero, v == 0)
}

// PC returns the packed program counter.
func (f *File) PC() uint16 {
	return Pack(f.Get(PCH), f.Get(PCL))
}

// SetPC unpacks v into PCH and PCL.
func (f *File) SetPC(v uint16) {
	hi, lo := Unpack(v)
	f.Set(PCH, hi)
	f.Set(PCL, lo)
}

// AddressBus returns the packed address bus.
func (f *File) AddressBus() uint16 {
	return Pack(f.Get(ABH), f.Get(ABL))
}

// SetAddressBus unpacks v into ABH and ABL.
func (f *File) SetAddressBus(v uint16) {
	hi, lo := Unpack(v)
	f.Set(ABH, hi)
	f.Set(ABL, lo)
}

// Status returns a decoded view of SREG.
func (f *File) Status() StatusRegister {
	return NewStatusRegister(f.Get(SREG))
}

func (f *File) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SREG=%s",
		f.PC(), f.Get(ACC), f.Get(X), f.Get(Y), f.Get(SP), f.Status())
}
