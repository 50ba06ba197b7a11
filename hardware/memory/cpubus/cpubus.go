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

// Package cpubus defines the interface between the CPU and the memory it is
// attached to. The interface is deliberately small so that a test harness can
// implement it with a plain 64k array.
package cpubus

// Memory is the interface the CPU uses to access memory. Every call is one bus
// cycle.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is the error pattern used by Memory implementations when an
// address cannot be read or written. The CPU records an AddressError in the
// result of the instruction and carries on. Any other error halts the
// instruction.
const AddressError = "cpubus: inaccessible address (%#04x)"

// Interrupt and reset vectors. The vector address is the address of the low
// byte; the high byte is at the following address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares the IRQ vector
	BRK = IRQ
)

// StackOrigin is the address of the bottom of the stack page.
const StackOrigin = uint16(0x0100)
