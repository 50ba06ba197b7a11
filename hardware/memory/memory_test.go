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


package memory_test

import (
	"strings"
	"testing"

	"github.com/s65emu/s65/curated"
	"github.com/s65emu/s65/hardware/memory"
	"github.com/s65emu/s65/hardware/memory/cpubus"
	"github.com/s65emu/s65/test"
)

// Memory must satisfy the CPU bus interface.
var _ cpubus.Memory = (*memory.Memory)(nil)

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.Write(0x1234, 0x56))
	test.ExpectEquality(t, mem.LastAccess, memory.Access{Address: 0x1234, Data: 0x56, Write: true})

	d, err := mem.Read(0x1234)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0x56))
	test.ExpectEquality(t, mem.LastAccess, memory.Access{Address: 0x1234, Data: 0x56})
	test.ExpectEquality(t, mem.Accesses, 2)

	// peek and poke do not count as bus accesses
	test.ExpectSuccess(t, mem.Poke(0xffff, 0x01))
	d, err = mem.Peek(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0x01))
	test.ExpectEquality(t, mem.Accesses, 2)
	test.ExpectEquality(t, mem.LastAccess.Address, uint16(0x1234))
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectSuccess(t, mem.Unmap("io", 0xd000, 0xdfff))
	test.ExpectFailure(t, mem.Unmap("bad", 0x2000, 0x1000))

	ok, label := mem.Mapped(0xd800)
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, label, "io")

	ok, _ = mem.Mapped(0xe000)
	test.ExpectEquality(t, ok, true)

	_, err := mem.Read(0xd000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))

	err = mem.Write(0xdfff, 0x01)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))

	// the write did not happen
	d, _ := mem.Peek(0xdfff)
	test.ExpectEquality(t, d, uint8(0x00))
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.Load(0x0400, []uint8{0xa9, 0x01, 0xea}))
	d, _ := mem.Peek(0x0402)
	test.ExpectEquality(t, d, uint8(0xea))

	test.ExpectSuccess(t, mem.Load(0xfffe, []uint8{0x01, 0x02}))
	test.ExpectFailure(t, mem.Load(0xffff, []uint8{0x01, 0x02}))

	mem.SetVector(cpubus.Reset, 0x0400)
	d, _ = mem.Peek(cpubus.Reset)
	test.ExpectEquality(t, d, uint8(0x00))
	d, _ = mem.Peek(cpubus.Reset + 1)
	test.ExpectEquality(t, d, uint8(0x04))
	test.ExpectEquality(t, mem.Vector(cpubus.Reset), uint16(0x0400))
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectSuccess(t, mem.Load(0x0400, []uint8{0xa9, 0x01, 0xea}))

	var s strings.Builder
	test.ExpectSuccess(t, mem.Dump(&s, 0x0401, 0x0402))

	lines := strings.Split(strings.TrimSpace(s.String()), "\n")
	test.ExpectEquality(t, len(lines), 3)
	test.ExpectEquality(t, strings.TrimRight(lines[2], " "), "0400 |     01 ea")

	test.ExpectFailure(t, mem.Dump(&s, 0x0402, 0x0401))
}
