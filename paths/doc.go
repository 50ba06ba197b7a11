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


// Package paths contains functions to prepare paths to s65 resources.
//
// The ResourcePath() function returns the path of a resource inside the s65
// configuration directory. For example, the following will return the path
// to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// In development builds the configuration directory is ".s65" in the current
// directory. Release builds (built with the release tag) use the s65
// directory inside the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system, for example:
//
//	/home/user/.config/s65/preferences
//
// The directory, and any sub-directory, is created if it does not exist.
package paths
