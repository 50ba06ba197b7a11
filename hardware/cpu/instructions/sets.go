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

package instructions

import (
	"strings"

	"github.com/s65emu/s65/curated"
)

// Set is the instruction set of a CPU variant. Each set includes all the
// instructions of the sets below it.
type Set int

// List of instruction sets in order.
const (
	NMOS Set = iota // 6502
	CMOS            // 65C02
	WDC             // WDC 65C02
)

// NumSets is the number of instruction sets.
const NumSets = int(WDC) + 1

// InvalidSet is the error pattern returned when an instruction set is not
// recognised.
const InvalidSet = "instructions: invalid instruction set (%v)"

var setNames = [NumSets]string{"6502", "65C02", "WDC65C02"}

func (s Set) String() string {
	if s.valid() {
		return setNames[s]
	}
	return "unknown instruction set"
}

func (s Set) valid() bool {
	return s >= NMOS && s <= WDC
}

// ParseSet returns the instruction set for the name. Names are case
// insensitive.
func ParseSet(name string) (Set, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range setNames {
		if n == name {
			return Set(i), nil
		}
	}
	return NMOS, curated.Errorf(InvalidSet, name)
}
