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
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/player"
	"github.com/jetsetilly/gopher6510/test"
)

type tuneSpec struct {
	magic     string
	version   int
	load      uint16
	init      uint16
	play      uint16
	songs     int
	flags     uint16
	embedLoad bool
	program   []uint8
}

// create the file data for a PSID or RSID tune
func makeTune(s tuneSpec) []uint8 {
	hdrLen := 0x76
	if s.version >= 2 {
		hdrLen = 0x7c
	}

	data := make([]uint8, hdrLen)
	copy(data, s.magic)
	binary.BigEndian.PutUint16(data[0x04:], uint16(s.version))
	binary.BigEndian.PutUint16(data[0x06:], uint16(hdrLen))
	if !s.embedLoad {
		binary.BigEndian.PutUint16(data[0x08:], s.load)
	}
	binary.BigEndian.PutUint16(data[0x0a:], s.init)
	binary.BigEndian.PutUint16(data[0x0c:], s.play)
	binary.BigEndian.PutUint16(data[0x0e:], uint16(s.songs))
	binary.BigEndian.PutUint16(data[0x10:], 1)
	binary.BigEndian.PutUint32(data[0x12:], 0x00000002)
	copy(data[0x16:], "Test Tune")
	copy(data[0x36:], "Gopher")
	copy(data[0x56:], "2026 Nobody")
	if s.version >= 2 {
		binary.BigEndian.PutUint16(data[0x76:], s.flags)
	}

	if s.embedLoad {
		data = append(data, uint8(s.load), uint8(s.load>>8))
	}
	return append(data, s.program...)
}

func TestParseTune(t *testing.T) {
	data := makeTune(tuneSpec{
		magic: "PSID", version: 2,
		load: 0x1000, init: 0x1000, play: 0x1003, songs: 3,
		flags:   0x08,
		program: []uint8{0x60, 0x00, 0x00, 0x60},
	})

	tune, err := player.ParseTune(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tune.Magic, "PSID")
	test.ExpectEquality(t, tune.Version, 2)
	test.ExpectEquality(t, tune.LoadAddress, uint16(0x1000))
	test.ExpectEquality(t, tune.InitAddress, uint16(0x1000))
	test.ExpectEquality(t, tune.PlayAddress, uint16(0x1003))
	test.ExpectEquality(t, tune.Songs, 3)
	test.ExpectEquality(t, tune.StartSong, 1)
	test.ExpectEquality(t, tune.Name, "Test Tune")
	test.ExpectEquality(t, tune.Author, "Gopher")
	test.ExpectEquality(t, tune.Released, "2026 Nobody")
	test.ExpectEquality(t, tune.NTSC(), true)
	test.ExpectEquality(t, tune.RSID(), false)
	test.ExpectEquality(t, tune.CIATimed(1), false)
	test.ExpectEquality(t, tune.CIATimed(2), true)
	test.ExpectEquality(t, len(tune.Data), 4)
	test.ExpectEquality(t, tune.String(), "Test Tune by Gopher")
}

func TestEmbeddedLoadAddress(t *testing.T) {
	data := makeTune(tuneSpec{
		magic: "PSID", version: 1,
		load: 0xc000, songs: 1,
		embedLoad: true,
		program:   []uint8{0x60},
	})

	tune, err := player.ParseTune(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tune.LoadAddress, uint16(0xc000))

	// init address of zero means the load address
	test.ExpectEquality(t, tune.InitAddress, uint16(0xc000))
	test.ExpectEquality(t, len(tune.Data), 1)
	test.ExpectEquality(t, tune.Data[0], uint8(0x60))
}

func TestBadTunes(t *testing.T) {
	_, err := player.ParseTune([]uint8{'P', 'S', 'I', 'D'})
	test.ExpectSuccess(t, curated.Is(err, player.TuneTooShort))

	data := makeTune(tuneSpec{magic: "XSID", version: 2, load: 0x1000, songs: 1})
	_, err = player.ParseTune(data)
	test.ExpectSuccess(t, curated.Is(err, player.NotATune))

	data = makeTune(tuneSpec{magic: "PSID", version: 5, load: 0x1000, songs: 1})
	_, err = player.ParseTune(data)
	test.ExpectSuccess(t, curated.Is(err, player.UnsupportedTune))

	data = makeTune(tuneSpec{magic: "PSID", version: 2, load: 0x1000, songs: 1})
	data[0x7a] = 0x42
	_, err = player.ParseTune(data)
	test.ExpectSuccess(t, curated.Is(err, player.MultiSID))

	data = makeTune(tuneSpec{magic: "PSID", version: 2, load: 0x1000, songs: 1})
	binary.BigEndian.PutUint16(data[0x06:], 0x1000)
	_, err = player.ParseTune(data)
	test.ExpectSuccess(t, curated.Is(err, player.BadDataOffset))

	data = makeTune(tuneSpec{magic: "PSID", version: 2, songs: 1, embedLoad: true})
	data = data[:len(data)-1]
	_, err = player.ParseTune(data)
	test.ExpectSuccess(t, curated.Is(err, player.NoLoadAddress))
}

func TestLoadTune(t *testing.T) {
	dir := t.TempDir()

	prg := filepath.Join(dir, "test.prg")
	test.DemandSuccess(t, os.WriteFile(prg, []uint8{0x00, 0x08, 0xea, 0x60}, 0o644))

	tune, err := player.LoadTune(prg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tune.Magic, "PRG")
	test.ExpectEquality(t, tune.LoadAddress, uint16(0x0800))
	test.ExpectEquality(t, tune.InitAddress, uint16(0x0800))
	test.ExpectEquality(t, tune.PlayAddress, uint16(0x0000))
	test.ExpectEquality(t, tune.String(), "test.prg")

	sid := filepath.Join(dir, "test.sid")
	test.DemandSuccess(t, os.WriteFile(sid, makeTune(tuneSpec{
		magic: "RSID", version: 2, load: 0x1000, init: 0x1000, songs: 1,
		program: []uint8{0x60},
	}), 0o644))

	tune, err = player.LoadTune(sid)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tune.RSID(), true)
	test.ExpectEquality(t, tune.Filename, sid)

	_, err = player.LoadTune(filepath.Join(dir, "missing.sid"))
	test.ExpectFailure(t, err)
}
