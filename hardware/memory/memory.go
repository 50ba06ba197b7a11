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


package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/s65emu/s65/curated"
	"github.com/s65emu/s65/hardware/memory/cpubus"
)

// Error patterns.
const (
	OutOfRange = "memory: data does not fit at origin (%#04x + %d bytes)"
	BadArea    = "memory: bad area (%s: %#04x to %#04x)"
)

// Access describes the most recent bus access.
type Access struct {
	Address uint16
	Data    uint8
	Write   bool
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("write %#02x to %#04x", a.Data, a.Address)
	}
	return fmt.Sprintf("read %#02x from %#04x", a.Data, a.Address)
}

// area is a labelled range of addresses. memtop is inclusive.
type area struct {
	label  string
	origin uint16
	memtop uint16
}

func (ar area) contains(address uint16) bool {
	return address >= ar.origin && address <= ar.memtop
}

// Memory is 64k of RAM with optional unmapped areas.
type Memory struct {
	internal []uint8
	unmapped []area

	// the most recent access through Read() or Write(). accesses to unmapped
	// areas are recorded with a data value of zero
	LastAccess Access

	// number of bus accesses since creation
	Accesses int
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		internal: make([]uint8, 0x10000),
	}
}

// Unmap marks the area from origin to memtop (inclusive) as inaccessible.
func (mem *Memory) Unmap(label string, origin uint16, memtop uint16) error {
	if memtop < origin {
		return curated.Errorf(BadArea, label, origin, memtop)
	}
	mem.unmapped = append(mem.unmapped, area{
		label:  label,
		origin: origin,
		memtop: memtop,
	})
	return nil
}

// Mapped returns false if the address is in an unmapped area. The label of
// the area is also returned.
func (mem *Memory) Mapped(address uint16) (bool, string) {
	for _, ar := range mem.unmapped {
		if ar.contains(address) {
			return false, ar.label
		}
	}
	return true, ""
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	mem.Accesses++
	if ok, _ := mem.Mapped(address); !ok {
		mem.LastAccess = Access{Address: address}
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	data := mem.internal[address]
	mem.LastAccess = Access{Address: address, Data: data}
	return data, nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	mem.Accesses++
	mem.LastAccess = Access{Address: address, Data: data, Write: true}
	if ok, _ := mem.Mapped(address); !ok {
		return curated.Errorf(cpubus.AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

// Peek returns the value at the address without affecting LastAccess.
// Unmapped areas can be peeked.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

// Poke sets the value at the address without affecting LastAccess. Unmapped
// areas can be poked.
func (mem *Memory) Poke(address uint16, value uint8) error {
	mem.internal[address] = value
	return nil
}

// Load copies data into memory starting at origin.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(mem.internal) {
		return curated.Errorf(OutOfRange, origin, len(data))
	}
	copy(mem.internal[origin:], data)
	return nil
}

// SetVector stores the address at the vector, low byte first. Use with the
// vector addresses in the cpubus package.
func (mem *Memory) SetVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

// Vector returns the address stored at the vector.
func (mem *Memory) Vector(vector uint16) uint16 {
	return uint16(mem.internal[vector+1])<<8 | uint16(mem.internal[vector])
}

// Dump writes a hex listing of memory from origin to memtop (inclusive) to
// the io.Writer. Lines always start on a sixteen byte boundary.
func (mem *Memory) Dump(w io.Writer, origin uint16, memtop uint16) error {
	if memtop < origin {
		return curated.Errorf(BadArea, "dump", origin, memtop)
	}

	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	for row := int(origin &^ 0x0f); row <= int(memtop); row += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", row))
		for col := 0; col < 16; col++ {
			a := row + col
			if a < int(origin) || a > int(memtop) {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", mem.internal[a]))
			}
		}
		s.WriteString("\n")
	}

	_, err := io.WriteString(w, s.String())
	return err
}
