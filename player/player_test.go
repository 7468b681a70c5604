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

package player_test

import (
	"testing"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/clocks"
	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6510/hardware/preferences"
	"github.com/jetsetilly/gopher6510/player"
	"github.com/jetsetilly/gopher6510/test"
)

const counter = uint16(0x2000)

// init stores the song number in the volume register. play increments the
// counter and writes it to the SID
var psidProgram = []uint8{
	0x8d, 0x18, 0xd4, // $1000 STA $D418
	0x60,             // $1003 RTS
	0xee, 0x00, 0x20, // $1004 INC $2000
	0xad, 0x00, 0x20, // $1007 LDA $2000
	0x8d, 0x01, 0xd4, // $100a STA $D401
	0x60,             // $100d RTS
}

func psidTune(t *testing.T) *player.Tune {
	t.Helper()
	tune, err := player.ParseTune(makeTune(tuneSpec{
		magic: "PSID", version: 2,
		load: 0x1000, init: 0x1000, play: 0x1004, songs: 3,
		program: psidProgram,
	}))
	test.DemandSuccess(t, err)
	return tune
}

// init installs an interrupt handler directly in the hardware vector. there
// is no play routine
func rsidTune(t *testing.T) *player.Tune {
	t.Helper()
	program := make([]uint8, 0x27)
	copy(program, []uint8{
		0xa9, 0x20, //       $1000 LDA #$20
		0x8d, 0xfe, 0xff, // $1002 STA $FFFE
		0xa9, 0x10, //       $1005 LDA #$10
		0x8d, 0xff, 0xff, // $1007 STA $FFFF
		0x60, //             $100a RTS
	})
	copy(program[0x20:], []uint8{
		0xad, 0x0d, 0xdc, // $1020 LDA $DC0D
		0xee, 0x00, 0x20, // $1023 INC $2000
		0x40, //             $1026 RTI
	})

	tune, err := player.ParseTune(makeTune(tuneSpec{
		magic: "RSID", version: 2,
		load: 0x1000, init: 0x1000, songs: 1,
		program: program,
	}))
	test.DemandSuccess(t, err)
	return tune
}

func TestCompatibilityPlayback(t *testing.T) {
	plr := player.NewPlayer(nil, clocks.SpecPAL)
	test.ExpectEquality(t, plr.CPU.Mode(), cpu.PlaySID)

	err := plr.Load(psidTune(t), 2)
	test.DemandSuccess(t, err)

	writes := plr.Mem.ChipWrites()
	test.DemandEquality(t, len(writes), 1)
	test.ExpectEquality(t, writes[0].Register, addresses.SIGVOL)
	test.ExpectEquality(t, writes[0].Value, uint8(1))

	var frames []int
	err = plr.Run(3, func(frame int) error {
		frames = append(frames, frame)
		return nil
	})
	test.DemandSuccess(t, err)

	v, _ := plr.Mem.Peek(counter)
	test.ExpectEquality(t, v, uint8(3))
	test.ExpectEquality(t, plr.Frame(), 3)
	test.ExpectEquality(t, len(frames), 3)
	test.ExpectEquality(t, frames[2], 3)
	test.ExpectEquality(t, plr.Mem.Sleeps, 4)
	test.ExpectEquality(t, plr.Mem.Resets, 0)

	writes = plr.Mem.ChipWrites()
	test.DemandEquality(t, len(writes), 4)
	test.ExpectEquality(t, writes[3].Register, addresses.FREHI1)
	test.ExpectEquality(t, writes[3].Value, uint8(3))

	_, song := plr.Tune()
	test.ExpectEquality(t, song, 2)
}

func TestRealPlayback(t *testing.T) {
	prefs := preferences.NewDetachedPreferences()
	test.DemandSuccess(t, prefs.Environment.Set("real"))

	plr := player.NewPlayer(prefs, clocks.SpecPAL)
	test.ExpectEquality(t, plr.CPU.Mode(), cpu.Real)

	err := plr.Load(psidTune(t), 1)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, plr.CPU.Sleeping())

	err = plr.Run(3, nil)
	test.DemandSuccess(t, err)

	v, _ := plr.Mem.Peek(counter)
	test.ExpectEquality(t, v, uint8(3))
	test.ExpectEquality(t, plr.Mem.Resets, 0)

	// the driver has returned to its idle loop with a balanced stack
	test.ExpectSuccess(t, plr.CPU.Sleeping())
	test.ExpectEquality(t, plr.CPU.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, plr.CPU.PC.Address(), uint16(0x0307))
}

func TestRSIDForcesReal(t *testing.T) {
	plr := player.NewPlayer(nil, clocks.SpecNTSC)

	err := plr.Load(rsidTune(t), 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plr.CPU.Mode(), cpu.Real)

	err = plr.Run(2, nil)
	test.DemandSuccess(t, err)

	v, _ := plr.Mem.Peek(counter)
	test.ExpectEquality(t, v, uint8(2))

	// the preference is restored for the next tune
	err = plr.Load(psidTune(t), 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plr.CPU.Mode(), cpu.PlaySID)
}

func TestSongOutOfRange(t *testing.T) {
	plr := player.NewPlayer(nil, clocks.SpecPAL)
	tune := psidTune(t)

	err := plr.Load(tune, 0)
	test.ExpectSuccess(t, curated.Is(err, player.SongOutOfRange))
	err = plr.Load(tune, 4)
	test.ExpectSuccess(t, curated.Is(err, player.SongOutOfRange))

	err = plr.RunFrame()
	test.ExpectFailure(t, err)
}

func TestStartFrame(t *testing.T) {
	plr := player.NewPlayer(nil, clocks.SpecPAL)
	test.DemandSuccess(t, plr.Load(psidTune(t), 1))
	test.ExpectEquality(t, plr.Sch.Clock(), false)

	// the play routine runs on the first clock in a compatibility environment
	test.DemandSuccess(t, plr.StartFrame())
	test.ExpectEquality(t, plr.Frame(), 1)
	test.ExpectEquality(t, plr.Sch.Clock(), true)

	v, _ := plr.Mem.Peek(counter)
	test.ExpectEquality(t, v, uint8(1))
	test.ExpectSuccess(t, plr.CPU.Sleeping())
	test.ExpectEquality(t, plr.Sch.Clock(), false)
}
