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

// Package logger is the central log for the emulation. Entries are tagged,
// usually with the name of the component creating the entry, and consecutive
// duplicate entries are folded into a single entry with a repeat count.
//
// Whether a log request is honoured depends on the Permission passed with the
// request. This allows an emulation instance running in the background (for
// example, during a comparison run) to stay quiet. Use the Allow value to
// indicate that logging is unconditional.
//
// The log holds a maximum number of entries. Older entries are dropped.
package logger
