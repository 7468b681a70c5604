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

// Package clocks defines the constant values that define the speed of the main
// clock in the C64 and the length of a video frame in CPU cycles.
//
// Music routines are usually called once per frame, so the frame length
// determines the playback speed of a tune.
//
// Values taken from the VIC-II documentation. PAL machines use the 6569 and
// NTSC machines use the 6567R8.
package clocks

import (
	"strings"

	"github.com/jetsetilly/gopher6510/curated"
)

// CPU clock speeds in MHz.
const (
	NTSC = 1.022727
	PAL  = 0.985248
)

// The number of CPU cycles in a single video frame.
const (
	NTSCFrame = 65 * 263
	PALFrame  = 63 * 312
)

// Error patterns returned by the clocks package.
const (
	UnknownSpec = "clocks: unknown TV specification (%s)"
)

// Spec is the TV specification of a machine.
type Spec struct {
	ID string

	// CPU clock speed in Hz
	Hz float64

	// CPU cycles per frame
	FrameCycles int
}

// The supported specifications.
var (
	SpecPAL  = Spec{ID: "PAL", Hz: PAL * 1000000, FrameCycles: PALFrame}
	SpecNTSC = Spec{ID: "NTSC", Hz: NTSC * 1000000, FrameCycles: NTSCFrame}
)

// FramesPerSecond returns the refresh rate of the specification.
func (s Spec) FramesPerSecond() float64 {
	return s.Hz / float64(s.FrameCycles)
}

// GetSpec returns the specification for the ID. The ID is case insensitive.
func GetSpec(id string) (Spec, error) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "PAL":
		return SpecPAL, nil
	case "NTSC":
		return SpecNTSC, nil
	}
	return SpecPAL, curated.Errorf(UnknownSpec, id)
}
