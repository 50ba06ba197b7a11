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

// AddDecimal adds value to register as though both are two digit binary coded
// decimal numbers. Returns the new carry and the overflow state. Overflow is
// taken from the sign of the corrected result.
//
// Values that are not valid BCD are corrected in the same way as valid
// values: the units are adjusted when their sum exceeds nine and the whole
// value is adjusted when it exceeds 0x99.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := r.value

	var c uint16
	if carry {
		c = 1
	}

	sum := uint16(v) + uint16(val) + c
	if uint16(v&0x0f)+uint16(val&0x0f)+c > 9 {
		sum += 0x06
	}
	if sum > 0x99 {
		sum += 0x60
		rcarry = true
	}
	r.value = uint8(sum)

	overflow = (val&0x80 == v&0x80) && (r.value&0x80 != v&0x80)

	return rcarry, overflow
}

// SubtractDecimal subtracts value from register as though both are two digit
// binary coded decimal numbers. As with the binary subtraction, the carry
// flag is the inverse of the borrow. Returns the new carry and the overflow
// state of the equivalent binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := r.value

	// overflow is taken from the binary operation
	bin := NewRegister(v, "")
	_, overflow = bin.Subtract(val, carry)

	borrow := 0
	if !carry {
		borrow = 1
	}

	units := int(v&0x0f) - int(val&0x0f) - borrow
	tens := int(v>>4) - int(val>>4)

	if units < 0 {
		units += 10
		tens--
	}

	rcarry = true
	if tens < 0 {
		tens += 10
		rcarry = false
	}

	r.value = uint8(tens&0x0f)<<4 | uint8(units&0x0f)

	return rcarry, overflow
}
