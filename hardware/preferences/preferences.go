// This file is part of Gopher6510.
//
// Gopher6510 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6510 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6510.  If not, see <https://www.gnu.org/licenses/>.

package preferences

import (
	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/paths"
	"github.com/jetsetilly/gopher6510/prefs"
)

// Default values for the hardware preferences.
const (
	DefaultEnvironment = "playsid"
	DefaultFrameBudget = 6000000
	DefaultIRQOverflow = "error"
	DefaultVerbose     = true
)

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the environment mode of the compatibility CPU. one of "real",
	// "playsid", "transparent" or "bankswitch"
	Environment prefs.String

	// the number of cycles the compatibility CPU will run inside a single
	// call before deciding that the tune is stuck in an infinite loop
	FrameBudget prefs.Int

	// what to do when too many IRQs are outstanding. "error" returns an
	// error to the caller and "panic" panics
	IRQOverflow prefs.String

	// log the shortcuts taken by the compatibility CPU. bank jumps, illegal
	// instructions and runaway routines
	Verbose prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth, true)
}

// NewDetachedPreferences returns the default preferences without a preferences
// file. Changes cannot be saved.
func NewDetachedPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

func newPreferences(pth string, load bool) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.environment", &p.Environment)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.framebudget", &p.FrameBudget)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.irqoverflow", &p.IRQOverflow)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.verbose", &p.Verbose)
	if err != nil {
		return nil, err
	}

	if load {
		err = p.dsk.Load(true)
		if err != nil {
			// ignore missing prefs file errors
			if !curated.Is(err, prefs.NoPrefsFile) {
				return nil, err
			}
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.Environment.Set(DefaultEnvironment)
	_ = p.FrameBudget.Set(DefaultFrameBudget)
	_ = p.IRQOverflow.Set(DefaultIRQOverflow)
	_ = p.Verbose.Set(DefaultVerbose)
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
