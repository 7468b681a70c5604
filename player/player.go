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
	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/clocks"
	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/memory"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6510/hardware/preferences"
	"github.com/jetsetilly/gopher6510/hardware/scheduler"
	"github.com/jetsetilly/gopher6510/logger"
)

// addresses of the programs installed by the player in the real environment
const (
	driverOrigin  = uint16(0x0300)
	driverLoop    = driverOrigin + 7
	handlerOrigin = uint16(0x0340)

	// the IRQ vector used by the KERNAL. tunes without a play routine point it
	// at their own handler
	kernalIRQVector = uint16(0x0314)

	// the KERNAL routine that restores the registers and returns from the
	// interrupt. interrupt handlers commonly exit with a JMP to this address
	kernalIRQExit = uint16(0xea31)
)

// Player plays a tune frame by frame.
type Player struct {
	Prefs *preferences.Preferences
	Sch   *scheduler.Scheduler
	Mem   *memory.Memory
	CPU   *cpu.CPU

	spec clocks.Spec

	tune *Tune
	song int

	// the number of frames played since the tune was loaded
	frame int

	// the interrupt raised by the player has not been acknowledged
	irqAsserted bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The preferences argument can be nil, in which case the default values are
// used.
func NewPlayer(prefs *preferences.Preferences, spec clocks.Spec) *Player {
	if prefs == nil {
		prefs = preferences.NewDetachedPreferences()
	}

	plr := &Player{
		Prefs: prefs,
		Sch:   scheduler.NewScheduler(),
		spec:  spec,
	}
	plr.Sch.Label = "player"
	plr.Mem = memory.NewMemory(plr.Sch)
	plr.CPU = cpu.NewSidCPU(prefs, plr.Sch, plr.Mem)

	plr.Mem.OnIRQAck = func() {
		if plr.irqAsserted {
			plr.irqAsserted = false
			plr.CPU.ClearIRQ()
		}
	}
	plr.Mem.OnReset = func() {
		logger.Logf(logger.Allow, "player", "CPU requested reset in frame %d", plr.frame)
	}

	return plr
}

// Spec returns the TV specification used by the player.
func (plr *Player) Spec() clocks.Spec {
	return plr.spec
}

// Frame returns the number of frames played since the tune was loaded.
func (plr *Player) Frame() int {
	return plr.frame
}

// Tune returns the currently loaded tune and the song number.
func (plr *Player) Tune() (*Tune, int) {
	return plr.tune, plr.song
}

// Load the tune into memory and run the init routine for the song. Songs are
// numbered from one.
//
// RSID tunes and raw programs are always played in the real environment.
func (plr *Player) Load(tune *Tune, song int) error {
	if song < 1 || song > tune.Songs {
		return curated.Errorf(SongOutOfRange, song, tune.Songs)
	}

	plr.tune = tune
	plr.song = song
	plr.frame = 0
	plr.irqAsserted = false

	plr.Sch.Reset()
	plr.Mem.Clear()

	// the environment may have been changed for the previous tune
	mode, err := cpu.ParseMode(plr.Prefs.Environment.String())
	if err == nil {
		plr.CPU.SetCompatibilityMode(mode)
	}

	if tune.RSID() || tune.Magic == "PRG" {
		if plr.CPU.Mode() != cpu.Real {
			logger.Logf(logger.Allow, "player", "%s tune requires the real environment", tune.Magic)
			plr.CPU.SetCompatibilityMode(cpu.Real)
		}
	}
	plr.Mem.SetBankSwitching(plr.CPU.Mode() == cpu.BankSwitching)

	err = plr.Mem.Load(tune.LoadAddress, tune.Data)
	if err != nil {
		return curated.Errorf("player: %v", err)
	}

	logger.Logf(logger.Allow, "player", "%s: song %d of %d (%s environment)", tune, song, tune.Songs, plr.CPU.Mode())

	if plr.CPU.Mode().IsCompatibility() {
		return plr.call(tune.InitAddress, uint8(song-1))
	}

	plr.installDriver()
	plr.CPU.Reset()
	plr.Sch.RunFor(uint64(plr.spec.FrameCycles))

	return nil
}

// install the driver program, the interrupt handler and the KERNAL stubs
// used by the real environment
func (plr *Player) installDriver() {
	play := plr.tune.PlayAddress

	initAddr := plr.tune.InitAddress
	driver := []uint8{
		0x78,                                               // SEI
		0xa9, uint8(plr.song - 1),                          // LDA #song
		0x20, uint8(initAddr), uint8(initAddr>>8),          // JSR init
		0x58,                                               // CLI
		0x4c, uint8(driverLoop&0xff), uint8(driverLoop>>8), // JMP *
	}

	// raw programs are jumped to and never return
	if plr.tune.Magic == "PRG" {
		driver[3] = 0x4c
	}

	handler := []uint8{
		0x48, 0x8a, 0x48, 0x98, 0x48, // PHA, TXA, PHA, TYA, PHA
	}
	if play == 0 {
		handler = append(handler,
			0x6c, uint8(kernalIRQVector&0xff), uint8(kernalIRQVector>>8), // JMP ($0314)
		)
	} else {
		handler = append(handler,
			0xad, 0x0d, 0xdc,                                         // LDA $DC0D
			0x20, uint8(play), uint8(play>>8),                        // JSR play
			0x4c, uint8(kernalIRQExit&0xff), uint8(kernalIRQExit>>8), // JMP $EA31
		)
	}

	exit := []uint8{
		0x68, 0xa8, 0x68, 0xaa, 0x68, // PLA, TAY, PLA, TAX, PLA
		0x40,                         // RTI
	}

	// none of these can fail
	_ = plr.Mem.Load(driverOrigin, driver)
	_ = plr.Mem.Load(handlerOrigin, handler)
	_ = plr.Mem.Load(kernalIRQExit, exit)

	// the program may have been loaded over the vectors
	poke16 := func(address uint16, v uint16) {
		if lo, _ := plr.Mem.Peek(address); lo != 0 {
			return
		}
		if hi, _ := plr.Mem.Peek(address + 1); hi != 0 {
			return
		}
		_ = plr.Mem.Poke(address, uint8(v))
		_ = plr.Mem.Poke(address+1, uint8(v>>8))
	}
	poke16(kernalIRQVector, kernalIRQExit)
	poke16(cpubus.IRQ, handlerOrigin)
	poke16(cpubus.NMI, kernalIRQExit+5)

	_ = plr.Mem.Poke(cpubus.Reset, uint8(driverOrigin&0xff))
	_ = plr.Mem.Poke(cpubus.Reset+1, uint8(driverOrigin>>8))
}

// call a routine in a compatibility environment. the routine runs to
// completion on the first clock of the scheduler
func (plr *Player) call(address uint16, a uint8) error {
	err := plr.CPU.ResetTo(address, a, 0, 0)
	if err != nil {
		return err
	}
	plr.Sch.RunFor(uint64(plr.spec.FrameCycles))
	return nil
}

// the address of the play routine in the compatibility environments. tunes
// without a play routine install an interrupt handler
func (plr *Player) playAddress() uint16 {
	if plr.tune.PlayAddress != 0 {
		return plr.tune.PlayAddress
	}

	vector := func(address uint16) uint16 {
		lo, _ := plr.Mem.Peek(address)
		hi, _ := plr.Mem.Peek(address + 1)
		return uint16(hi)<<8 | uint16(lo)
	}

	if v := vector(kernalIRQVector); v != 0 {
		return v
	}
	return vector(cpubus.IRQ)
}

// StartFrame prepares the next frame of the tune without running it. The
// frame runs as the scheduler is clocked.
func (plr *Player) StartFrame() error {
	if plr.tune == nil {
		return curated.Errorf("player: no tune loaded")
	}

	plr.frame++

	if plr.CPU.Mode().IsCompatibility() {
		play := plr.playAddress()
		if play == 0 {
			logger.Log(logger.Allow, "player", "tune has no play routine")
			return nil
		}
		return plr.CPU.ResetTo(play, 0, 0, 0)
	}

	// the interrupt line stays asserted until the handler reads the
	// interrupt control register
	if !plr.irqAsserted {
		plr.Mem.RaiseInterrupt()
		err := plr.CPU.TriggerIRQ()
		if err != nil {
			return curated.Errorf("player: %v", err)
		}
		plr.irqAsserted = true
	}

	return nil
}

// RunFrame plays a single frame of the tune.
func (plr *Player) RunFrame() error {
	err := plr.StartFrame()
	if err != nil {
		return err
	}
	plr.Sch.RunFor(uint64(plr.spec.FrameCycles))
	return nil
}

// Run the tune for the number of frames. The onFrame function, if not nil, is
// called after every frame. Playback stops if onFrame returns an error.
func (plr *Player) Run(frames int, onFrame func(frame int) error) error {
	for i := 0; i < frames; i++ {
		err := plr.RunFrame()
		if err != nil {
			return err
		}
		if onFrame != nil {
			err = onFrame(plr.frame)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
