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

// Package wavwriter converts the SID master volume writes of a tune into a
// WAV file. Writes to the volume register are the basis of the "digi"
// playback technique, where the output level follows the four bit volume
// value. Voice synthesis is not modelled.
//
// Audio data is buffered in memory in its entirety, and written to disk when
// EndMixing() is called. It is therefore probably only suitable for short
// captures.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/clocks"
	"github.com/jetsetilly/gopher6510/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6510/hardware/memory/bus"
	"github.com/jetsetilly/gopher6510/logger"
)

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

// the bit depth of the WAV file. samples are unsigned
const bitDepth = 8

// the PCM format tag in the WAV header
const formatPCM = 1

// WavWriter resamples the volume register writes from the CPU clock to
// SampleFreq.
type WavWriter struct {
	filename string

	// CPU clock in Hz
	hz float64

	// the cycle up to which samples have been generated
	cycle  uint64
	volume uint8

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, spec clocks.Spec) (*WavWriter, error) {
	if spec.Hz <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "bad clock specification")
	}

	aw := &WavWriter{
		filename: filename,
		hz:       spec.Hz,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// the number of samples covering the CPU cycles since the start of the
// capture
func (aw *WavWriter) samplesAt(cycle uint64) int {
	return int(float64(cycle) * SampleFreq / aw.hz)
}

// fill the buffer with the current volume up to the cycle
func (aw *WavWriter) fill(cycle uint64) {
	if cycle <= aw.cycle {
		return
	}
	n := aw.samplesAt(cycle)
	v := int(aw.volume) * 17
	for len(aw.buffer) < n {
		aw.buffer = append(aw.buffer, v)
	}
	aw.cycle = cycle
}

// Process the chip writes that occurred before the end cycle. Samples are
// generated for every cycle up to the end cycle, including the cycles in
// which there were no writes. The writes must be in cycle order.
func (aw *WavWriter) Process(writes []bus.ChipData, end uint64) {
	for _, w := range writes {
		if w.Register != addresses.SIGVOL {
			continue
		}
		aw.fill(w.Cycle)
		aw.volume = w.Value & 0x0f
	}
	aw.fill(end)
}

// Samples returns the number of samples generated so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// EndMixing writes the WAV file to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, bitDepth, 1, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	// the encoder must be closed to complete the WAV header
	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
