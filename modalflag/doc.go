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

// Package modalflag wraps the flag package in the Go standard library. It
// adds program modes, with each mode having its own set of flags.
//
// Arguments are given with NewArgs() and parsed with Parse(). Flags are added
// before parsing:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//	md.AddSubModes("RUN", "STEP")
//	_, _ = md.Parse()
//
// After parsing, Mode() returns the selected sub-mode. If the first non-flag
// argument is not one of the sub-modes then the first sub-mode is selected.
// The flags of the selected mode are added after a call to NewMode() and the
// next call to Parse() continues from the arguments that follow the mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 100, "number of frames to play")
//		_, _ = md.Parse()
//	}
//
// A flag of -help prints the flags and sub-modes of the current mode, in
// which case Parse() returns ParseHelp.
package modalflag
