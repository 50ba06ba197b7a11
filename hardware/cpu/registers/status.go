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
	"strings"
)

// Flag is the bit number of a flag in the status register.
type Flag uint8

// List of status register flags. The bit positions are fixed.
const (
	Carry            Flag = 0
	Zero             Flag = 1
	InterruptDisable Flag = 2
	DecimalMode      Flag = 3
	Break            Flag = 4
	Unused           Flag = 5
	Overflow         Flag = 6
	Sign             Flag = 7
)

// Mask returns the flag as a bit mask.
func (f Flag) Mask() uint8 {
	return 1 << f
}

var flagNames = [8]rune{'c', 'z', 'i', 'd', 'b', '-', 'v', 'n'}

func (f Flag) String() string {
	return strings.ToUpper(string(flagNames[f&0x07]))
}

// StatusRegister is a decoded view of the SREG cell.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister decodes a status register value.
func NewStatusRegister(v uint8) StatusRegister {
	var sr StatusRegister
	sr.FromValue(v)
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SREG"
}

// String returns the status register with set flags in upper case. For
// example "Nv-bdIzC".
func (sr StatusRegister) String() string {
	v := sr.Value()
	s := strings.Builder{}
	for f := Sign; ; f-- {
		r := flagNames[f]
		if f != Unused && v&f.Mask() != 0 {
			r -= 'a' - 'A'
		}
		s.WriteRune(r)
		if f == Carry {
			break
		}
	}
	return s.String()
}

// Value encodes the status register. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	v := Unused.Mask()
	if sr.Sign {
		v |= Sign.Mask()
	}
	if sr.Overflow {
		v |= Overflow.Mask()
	}
	if sr.Break {
		v |= Break.Mask()
	}
	if sr.DecimalMode {
		v |= DecimalMode.Mask()
	}
	if sr.InterruptDisable {
		v |= InterruptDisable.Mask()
	}
	if sr.Zero {
		v |= Zero.Mask()
	}
	if sr.Carry {
		v |= Carry.Mask()
	}
	return v
}

// FromValue decodes v into the status register.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&Sign.Mask() != 0
	sr.Overflow = v&Overflow.Mask() != 0
	sr.Break = v&Break.Mask() != 0
	sr.DecimalMode = v&DecimalMode.Mask() != 0
	sr.InterruptDisable = v&InterruptDisable.Mask() != 0
	sr.Zero = v&Zero.Mask() != 0
	sr.Carry = v&Carry.Mask() != 0
}
