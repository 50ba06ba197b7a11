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

package random

import (
	"math/rand"
	"sync"
	"time"
)

// the base seed for all random numbers.
var baseSeed = int64(time.Now().Nanosecond())

// Random is a random number generator for use inside the emulation.
type Random struct {
	crit sync.Mutex

	// sequence for NoRewind()
	norewind *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

// NoRewind returns a random number in the range 0 to n-1. Successive calls
// return different numbers. The sequence begins again if ZeroSeed is changed
// before the first call.
func (rnd *Random) NoRewind(n int) int {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()

	if rnd.norewind == nil {
		rnd.norewind = rand.New(rand.NewSource(rnd.seed()))
	}
	return rnd.norewind.Intn(n)
}
