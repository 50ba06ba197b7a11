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

// Package preferences contains the preference values of the emulated
// hardware.
package preferences

import (
	"github.com/s65emu/s65/curated"
	"github.com/s65emu/s65/hardware/cpu/instructions"
	"github.com/s65emu/s65/paths"
	"github.com/s65emu/s65/prefs"
)

// PreferencesFile is the name of the preferences file in the configuration
// directory.
const PreferencesFile = "preferences"

// DefaultPath returns the path of the preferences file in the configuration
// directory.
func DefaultPath() (string, error) {
	return paths.ResourcePath("", PreferencesFile)
}

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the instruction set the CPU decodes. one of the values returned by
	// instructions.Set.String()
	InstructionSet prefs.String

	// initialise registers to unknown state on reset
	RandomState prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If pth is empty the preferences are never loaded or saved.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.InstructionSet.SetHookPre(func(v prefs.Value) error {
		_, err := instructions.ParseSet(v.(string))
		return err
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.instructionset", &p.InstructionSet)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.InstructionSet.Set(instructions.NMOS.String()); err != nil {
		return err
	}
	return p.RandomState.Set(false)
}

// Set returns the instruction set named by the InstructionSet preference.
func (p *Preferences) Set() instructions.Set {
	s, err := instructions.ParseSet(p.InstructionSet.String())
	if err != nil {
		return instructions.NMOS
	}
	return s
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
