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


package thomharte

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/s65emu/s65/hardware/cpu"
	"github.com/s65emu/s65/hardware/cpu/instructions"
	"github.com/s65emu/s65/hardware/cpu/registers"
	"github.com/s65emu/s65/hardware/instance"
	"github.com/s65emu/s65/hardware/memory"
	"github.com/s65emu/s65/test"
)

// the posible memory events recorded by the bus cycle data
type memEvent string

const (
	read  = memEvent("read")
	write = memEvent("write")
)

func event(a memory.Access) memEvent {
	if a.Write {
		return write
	}
	return read
}

type RAMEntry struct {
	Address uint16 `json:"0"`
	Value   uint8  `json:"1"`
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type BusCycle struct {
	Address uint16
	Data    uint8
	Event   memEvent
}

func (b *BusCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = memEvent(ev)

	switch b.Event {
	case read, write:
	default:
		return fmt.Errorf("unexpected memory event: %q", b.Event)
	}

	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string     `json:"name"`
	Initial State      `json:"initial"`
	Final   State      `json:"final"`
	Cycles  []BusCycle `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// we have a custom unmarshaller for Tests only so that we can insert the Name field to any
	// error. to make the unmarshaller as clean as possible we want to avoid recursion; and we can
	// do this by using an alias type
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

// the test directories and the instruction set they test
var testSets = []struct {
	path string
	set  instructions.Set
}{
	{path: filepath.Join("6502", "v1"), set: instructions.NMOS},
	{path: filepath.Join("synertek65c02", "v1"), set: instructions.CMOS},
	{path: filepath.Join("wdc65c02", "v1"), set: instructions.WDC},
}

func TestThomHarte(t *testing.T) {
	var found bool

	for _, ts := range testSets {
		d, err := os.ReadDir(ts.path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		found = true

		for _, e := range d {
			if !e.Type().IsRegular() {
				continue
			}

			defn, ok := definition(ts.set, e.Name())
			if !ok {
				continue
			}

			testThomHarte(t, ts.set, defn, filepath.Join(ts.path, e.Name()))
		}
	}

	if !found {
		t.Skip("no test data")
	}
}

// definition returns the instruction tested by the named file. files for
// instructions that are not emulated are ignored, as are the halt
// instructions because they have no final state.
func definition(set instructions.Set, name string) (*instructions.Definition, bool) {
	ext := filepath.Ext(name)
	if ext != ".json" {
		return nil, false
	}

	opcode, err := strconv.ParseUint(strings.TrimSuffix(name, ext), 16, 8)
	if err != nil {
		return nil, false
	}

	defn, err := instructions.Decode(uint8(opcode), set)
	if err != nil || !defn.IsEmulated() || defn.IsHalt() || defn.Mnemonic == instructions.WAI {
		return nil, false
	}

	return defn, true
}

func testThomHarte(t *testing.T, set instructions.Set, defn *instructions.Definition, testFile string) {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	ins, err := instance.NewInstance(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ins.Prefs.InstructionSet.Set(set.String()))

	mem := memory.NewMemory()
	mc := cpu.NewCPU(ins, mem)
	regs := mc.Registers()

	// the flags set by ADC and SBC in decimal mode are not tested on the
	// NMOS 6502. s65 takes the sign and zero flags from the decimal result in
	// all cases. ADC takes overflow from the decimal result and SBC takes it
	// from the binary subtraction
	var decimalMask uint8 = 0xff
	if set == instructions.NMOS && (defn.Mnemonic == instructions.ADC || defn.Mnemonic == instructions.SBC) {
		decimalMask = 0x3d
	}

	for i, s := range tests {
		if _, err := mc.Reset(); err != nil {
			t.Fatal(err)
		}

		regs.SetPC(uint16(s.Initial.PC))
		regs.Set(registers.ACC, uint8(s.Initial.A))
		regs.Set(registers.X, uint8(s.Initial.X))
		regs.Set(registers.Y, uint8(s.Initial.Y))
		regs.Set(registers.SP, uint8(s.Initial.S))
		regs.Set(registers.SREG, uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			_ = mem.Poke(r.Address, r.Value)
		}

		mask := uint8(0xff)
		if regs.Flag(registers.DecimalMode) {
			mask = decimalMask
		}

		hook := func() error {
			cycle := mc.LastResult.Cycles - 1
			if cycle >= len(s.Cycles) {
				t.Fatalf("%s: too many cycles on line %d", testFile, i)
			}

			var fail bool

			fail = !test.ExpectEquality(t, mem.LastAccess.Address, s.Cycles[cycle].Address, testFile, i, "address bus") || fail
			fail = !test.ExpectEquality(t, mem.LastAccess.Data, s.Cycles[cycle].Data, testFile, i, "data bus") || fail
			fail = !test.ExpectEquality(t, event(mem.LastAccess), s.Cycles[cycle].Event, testFile, i, "memory event") || fail

			if fail {
				t.Logf("last instruction: %s", defn.String())
				t.Fatalf("%s: failed on line %d, cycle %d", testFile, i, cycle)
			}

			return nil
		}

		err := mc.ExecuteInstruction(hook)
		if err != nil {
			t.Fatal(err)
		}

		var fail bool

		// the break flag is not a physical flag and is never set in the status
		// register
		final := uint8(s.Final.P) &^ registers.Break.Mask()

		fail = !test.ExpectEquality(t, regs.PC(), uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, regs.Get(registers.ACC), uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, regs.Get(registers.X), uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, regs.Get(registers.Y), uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, regs.Get(registers.SP), uint8(s.Final.S), testFile, i, "SP") || fail
		fail = !test.ExpectEquality(t, regs.Get(registers.SREG)&mask, final&mask, testFile, i, "Status") || fail
		fail = !test.ExpectEquality(t, mc.LastResult.Cycles, len(s.Cycles), testFile, i, "cycles") || fail
		for _, r := range s.Final.RAM {
			v, _ := mem.Peek(r.Address)
			fail = !test.ExpectEquality(t, v, r.Value, testFile, i, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		if fail {
			t.Logf("last instruction: %s", defn.String())
			t.Fatalf("%s: failed on line %d", testFile, i)
		}
	}
}
