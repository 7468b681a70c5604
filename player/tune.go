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

package player

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher6510/curated"
)

// Error patterns returned when loading a tune.
const (
	NotATune        = "player: not a tune file (%s)"
	TuneTooShort    = "player: tune file is too short (%d bytes)"
	BadDataOffset   = "player: bad data offset in tune header ($%04x)"
	NoLoadAddress   = "player: tune has no load address"
	MultiSID        = "player: tunes for more than one SID are not supported"
	UnsupportedTune = "player: unsupported tune version (%d)"
	SongOutOfRange  = "player: song %d is out of range (1 to %d)"
)

// the size of the version 1 header. later versions add 6 bytes
const (
	headerV1Len = 0x76
	headerV2Len = 0x7c
)

// values for the video standard bits in the flags field
const (
	flagsVideoMask = 0x0c
	flagsNTSC      = 0x08
)

// Header is the header of a PSID or RSID file. Multi-byte fields are stored
// big-endian in the file.
type Header struct {
	Magic       string
	Version     int
	DataOffset  uint16
	LoadAddress uint16
	InitAddress uint16
	PlayAddress uint16
	Songs       int
	StartSong   int
	Speed       uint32
	Name        string
	Author      string
	Released    string

	// version 2 and later
	Flags      uint16
	StartPage  uint8
	PageLength uint8
}

// Tune is a music program along with the information needed to play it.
type Tune struct {
	Header

	// the program data. the first byte is placed at Header.LoadAddress
	Data []uint8

	// the name of the file the tune was loaded from
	Filename string
}

// RSID returns true if the tune must be run in the real environment.
func (t *Tune) RSID() bool {
	return t.Magic == "RSID"
}

// NTSC returns true if the tune was written for NTSC machines.
func (t *Tune) NTSC() bool {
	return t.Flags&flagsVideoMask == flagsNTSC
}

// CIATimed returns true if the song is timed by CIA1 rather than the vertical
// blank. Songs after the 32nd share the speed bit of the 32nd song.
func (t *Tune) CIATimed(song int) bool {
	if song < 1 {
		song = 1
	}
	if song > 32 {
		song = 32
	}
	return t.Speed&(1<<(song-1)) != 0
}

func (t *Tune) String() string {
	if t.Name == "" {
		return filepath.Base(t.Filename)
	}
	return strings.TrimSpace(t.Name + " by " + t.Author)
}

// LoadTune loads a tune from a file. Files with the .prg extension are
// treated as raw programs. All others must have a PSID or RSID header.
func LoadTune(filename string) (*Tune, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("player: %v", err)
	}

	var t *Tune
	if strings.ToLower(filepath.Ext(filename)) == ".prg" {
		t, err = ParsePRG(data)
	} else {
		t, err = ParseTune(data)
	}
	if err != nil {
		return nil, err
	}

	t.Filename = filename
	return t, nil
}

// ParsePRG creates a tune from a raw program. The first two bytes are the load
// address in little-endian order. The program is started at the load address
// and has no play routine.
func ParsePRG(data []uint8) (*Tune, error) {
	if len(data) < 3 {
		return nil, curated.Errorf(TuneTooShort, len(data))
	}
	load := binary.LittleEndian.Uint16(data)
	return &Tune{
		Header: Header{
			Magic:       "PRG",
			LoadAddress: load,
			InitAddress: load,
			Songs:       1,
			StartSong:   1,
		},
		Data: data[2:],
	}, nil
}

// ParseTune parses the PSID or RSID data.
func ParseTune(data []uint8) (*Tune, error) {
	if len(data) < headerV1Len {
		return nil, curated.Errorf(TuneTooShort, len(data))
	}

	h := Header{Magic: string(data[:4])}
	if h.Magic != "PSID" && h.Magic != "RSID" {
		return nil, curated.Errorf(NotATune, h.Magic)
	}

	h.Version = int(binary.BigEndian.Uint16(data[0x04:]))
	if h.Version < 1 || h.Version > 4 {
		return nil, curated.Errorf(UnsupportedTune, h.Version)
	}

	h.DataOffset = binary.BigEndian.Uint16(data[0x06:])
	h.LoadAddress = binary.BigEndian.Uint16(data[0x08:])
	h.InitAddress = binary.BigEndian.Uint16(data[0x0a:])
	h.PlayAddress = binary.BigEndian.Uint16(data[0x0c:])
	h.Songs = int(binary.BigEndian.Uint16(data[0x0e:]))
	h.StartSong = int(binary.BigEndian.Uint16(data[0x10:]))
	h.Speed = binary.BigEndian.Uint32(data[0x12:])
	h.Name = paddedString(data[0x16:0x36])
	h.Author = paddedString(data[0x36:0x56])
	h.Released = paddedString(data[0x56:0x76])

	if h.Version >= 2 {
		if len(data) < headerV2Len {
			return nil, curated.Errorf(TuneTooShort, len(data))
		}
		h.Flags = binary.BigEndian.Uint16(data[0x76:])
		h.StartPage = data[0x78]
		h.PageLength = data[0x79]

		// second and third SID addresses
		if data[0x7a] != 0 || data[0x7b] != 0 {
			return nil, curated.Errorf(MultiSID)
		}
	}

	if int(h.DataOffset) < headerV1Len || int(h.DataOffset) > len(data) {
		return nil, curated.Errorf(BadDataOffset, h.DataOffset)
	}

	body := data[h.DataOffset:]
	if h.LoadAddress == 0 {
		if len(body) < 2 {
			return nil, curated.Errorf(NoLoadAddress)
		}
		h.LoadAddress = binary.LittleEndian.Uint16(body)
		body = body[2:]
	}

	if h.Songs < 1 {
		h.Songs = 1
	}
	if h.StartSong < 1 || h.StartSong > h.Songs {
		h.StartSong = 1
	}

	// an init address of zero means the load address
	if h.InitAddress == 0 {
		h.InitAddress = h.LoadAddress
	}

	t := &Tune{
		Header: h,
		Data:   make([]uint8, len(body)),
	}
	copy(t.Data, body)

	return t, nil
}

// strings in the header are padded with zero bytes
func paddedString(b []uint8) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
