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

// Package player loads and plays C64 music files. Both the PSID and RSID
// formats are supported, as are raw PRG files.
//
// Tunes are played frame by frame. The number of CPU cycles in a frame is
// given by the clocks.Spec used to create the Player. In the compatibility
// environments the init and play routines are called directly with
// CPU.ResetTo() and are run to completion. In the real environment a small
// driver program is installed in memory and the play routine is called from
// an interrupt handler, with the player raising the CIA1 interrupt once per
// frame.
//
// Example:
//
//	tune, err := player.LoadTune("Commando.sid")
//	if err != nil {
//		return err
//	}
//
//	plr := player.NewPlayer(prefs, clocks.SpecPAL)
//	err = plr.Load(tune, tune.StartSong)
//	if err != nil {
//		return err
//	}
//
//	err = plr.Run(500, nil)
package player
