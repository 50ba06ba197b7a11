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

package operations

import (
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
)

// MaxOperations is the maximum number of operations in a Program. No
// instruction or interrupt sequence comes close to this number.
const MaxOperations = 48

// Program is a sequence of operations. Programs are built by the decoder
// and are not modified once built.
type Program struct {
	// the operations are held in a pre-sized array so that building a
	// program never allocates
	ops [MaxOperations]Operation
	n   int
}

// Append operation to program. Returns false if the program is full, in which
// case the program is not changed.
func (p *Program) Append(op Operation) bool {
	if p.n >= MaxOperations {
		return false
	}
	p.ops[p.n] = op
	p.n++
	return true
}

// Len returns the number of operations in the program.
func (p *Program) Len() int {
	return p.n
}

// Operations returns the operations in the program. The returned slice should
// not be modified.
func (p *Program) Operations() []Operation {
	return p.ops[:p.n]
}

// AfterFetch returns the operations following the opcode fetch. These are the
// operations run by the CPU once the opcode has been fetched and decoded.
func (p *Program) AfterFetch() []Operation {
	for i, op := range p.ops[:p.n] {
		if op.Kind == Fetch && op.Flags&Discard == 0 {
			return p.ops[i+1 : p.n]
		}
	}
	return p.ops[:p.n]
}

// Cycles returns the number of cycles that will always be executed by the
// program.
func (p *Program) Cycles() int {
	return p.countCycles(func(op Operation) bool {
		return op.IsBus() && !op.IsConditional()
	})
}

// MaxCycles returns the number of cycles executed by the program if every
// condition is met.
func (p *Program) MaxCycles() int {
	return p.countCycles(func(op Operation) bool {
		return op.IsBus()
	})
}

func (p *Program) countCycles(filter func(op Operation) bool) int {
	var n int
	cycle := -1
	for _, op := range p.ops[:p.n] {
		if op.Cycle != cycle && filter(op) {
			cycle = op.Cycle
			n++
		}
	}
	return n
}

func (p *Program) String() string {
	s := strings.Builder{}
	for _, op := range p.ops[:p.n] {
		s.WriteString(op.String())
		s.WriteRune('\n')
	}
	return s.String()
}

// Graph writes a graphviz representation of the program to w.
func (p *Program) Graph(w io.Writer) {
	ops := p.Operations()
	memviz.Map(w, &ops)
}
