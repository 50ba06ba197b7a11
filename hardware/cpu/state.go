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

package cpu

// State of the CPU.
type State int

// List of CPU states.
const (
	// the CPU has not been reset. no instructions can be executed
	PreInit State = iota

	// normal operation
	Running

	// the CPU has executed a halt instruction (JAM or STP) and will do nothing
	// until it is reset
	Jammed
)

func (s State) String() string {
	switch s {
	case PreInit:
		return "PreInit"
	case Running:
		return "Running"
	case Jammed:
		return "Jammed"
	}
	return "unknown state"
}

// Outcome is the outcome of executing a single micro-operation.
type Outcome int

// List of possible outcomes.
const (
	// the conditions of the operation were not met and it had no effect
	Skipped Outcome = iota
	Executed
)

func (o Outcome) String() string {
	if o == Executed {
		return "Executed"
	}
	return "Skipped"
}
