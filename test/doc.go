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

// Package test contains helper functions to remove common boilerplate from
// the package tests of the CPU.
//
// The Expect functions report a failure with t.Errorf() and return false so
// that the caller can decide whether to continue. The Demand functions report
// a failure with t.Fatalf().
//
// Success and failure are judged by type. A bool is a success if it is true.
// An error is a success if it is nil. The untyped nil is also considered a
// success because that is how a nil error reaches the functions.
//
// Optional tags are added to the start of any failure message. Tags are
// useful to identify the iteration of a table driven test. If the first tag
// is a string containing a formatting verb it is used as a format for the
// remaining tags.
package test
