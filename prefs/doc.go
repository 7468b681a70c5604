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

// Package prefs facilitates the storage of preferential values in the
// gopher6510 system. It is a key-value store for the typed values Bool,
// String and Int.
//
// Values are added to a Disk instance with Add() and saved to and loaded from
// the preferences file with Save() and Load(). Preferences can also be given
// on the command line. The command line stack (PushCommandLineStack()) holds
// values that override the values loaded from disk.
//
// Every preference type supports hooks that are called before and after a
// value is set. The hardware preferences use the hooks to forward changes to
// the running emulation.
package prefs
