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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values. The pattern identifies the error
// and packages export the patterns they use as constants. For example:
//
//	const UnknownOpcode = "instructions: unknown opcode (%#02x)"
//
//	err := curated.Errorf(UnknownOpcode, 0x02)
//	if curated.Is(err, UnknownOpcode) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in the
// chain of wrapped errors. Curated errors can be wrapped by other curated
// errors simply by passing them as a placeholder value:
//
//	err = curated.Errorf("cpu: %v", err)
//	curated.Has(err, UnknownOpcode) // true
//	curated.Is(err, UnknownOpcode)  // false
//
// Curated errors also work with the errors package in the standard library.
// The first error in the placeholder values is returned by Unwrap().
//
// The Error() function normalises the message by removing adjacent duplicate
// prefixes. In the example above the message is "cpu: instructions: unknown
// opcode (0x02)" and not "cpu: cpu: ..." if a prefix was added twice.
package curated
