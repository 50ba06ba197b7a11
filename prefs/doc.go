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

// Package prefs implements typed preference values that can be saved to and
// loaded from disk.
//
// Preference values are of type Bool, String or Int. Each type can have hooks
// that are called just before and just after the value changes. The pre-hook
// can veto the change by returning an error.
//
// A Disk collects preference values under keys and saves them to a single
// preferences file. The file consists of one "key :: value" entry per line.
// Entries in the file that are not known to the Disk are preserved when the
// file is saved, meaning that more than one Disk can share the same file.
//
// Values can also be overridden from the command line. A group of overrides
// is pushed with PushCommandLineStack() before preferences are loaded. See
// the Disk.Load() function.
package prefs
