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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/easyterm"
	"github.com/jetsetilly/gopher6510/hardware/clocks"
	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6510/hardware/preferences"
	"github.com/jetsetilly/gopher6510/hardware/scheduler"
	"github.com/jetsetilly/gopher6510/logger"
	"github.com/jetsetilly/gopher6510/modalflag"
	"github.com/jetsetilly/gopher6510/paths"
	"github.com/jetsetilly/gopher6510/player"
	"github.com/jetsetilly/gopher6510/prefs"
	"github.com/jetsetilly/gopher6510/statsview"
	"github.com/jetsetilly/gopher6510/version"
	"github.com/jetsetilly/gopher6510/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop handling interrupt signals in the main thread. used when the
	// terminal is in cbreak mode and must be restored before exiting
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// the maximum number of cycles a single instruction can take in STEP mode
// before it is considered to have not completed
const maxStepCycles = 100000

func main() {
	state := make(chan stateRequest)

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(state)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case st := <-state:
			switch st.req {
			case reqQuit:
				done = true
				if v, ok := st.args.(int); ok {
					exitVal = v
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				signal.Ignore(os.Interrupt)
			}
		}
	}

	os.Exit(exitVal)
}

func launch(state chan stateRequest) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "STEP", "TABLE")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		fmt.Println(version.String())
		state <- stateRequest{req: reqQuit}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md, state)

	case "TABLE":
		err = table(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	state <- stateRequest{req: reqQuit}
}

// the flags shared by the RUN and STEP modes
type tuneFlags struct {
	song  *int
	env   *string
	tv    *string
	prefs *string
	log   *bool
}

func addTuneFlags(md *modalflag.Modes) tuneFlags {
	return tuneFlags{
		song:  md.AddInt("song", 0, "song number (default is the start song of the tune)"),
		env:   md.AddString("env", "", "environment: REAL, PLAYSID, TRANSPARENT, BANKSWITCH"),
		tv:    md.AddString("tv", "AUTO", "television specification: NTSC, PAL"),
		prefs: md.AddString("prefs", "", "preferences to apply for this session (key::value; ...)"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// load the tune named on the command line and create a player for it
func setupPlayer(md *modalflag.Modes, fl tuneFlags) (*player.Player, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf("tune required for %s mode", md)
	case 1:
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	if *fl.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	// the command line preferences are applied when the preferences are
	// loaded from disk
	prefs.PushCommandLineStack(*fl.prefs)

	tune, err := player.LoadTune(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		logger.Logf(logger.Allow, "gopher6510", "using default preferences: %v", err)
		p = preferences.NewDetachedPreferences()
	}
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "gopher6510", "unknown preferences: %s", unused)
	}

	if *fl.env != "" {
		env := strings.ToLower(*fl.env)
		if _, err := cpu.ParseMode(env); err != nil {
			return nil, err
		}
		err = p.Environment.Set(env)
		if err != nil {
			return nil, err
		}
	}

	var spec clocks.Spec
	if strings.ToUpper(*fl.tv) == "AUTO" {
		spec = clocks.SpecPAL
		if tune.NTSC() {
			spec = clocks.SpecNTSC
		}
	} else {
		spec, err = clocks.GetSpec(*fl.tv)
		if err != nil {
			return nil, err
		}
	}

	song := *fl.song
	if song == 0 {
		song = tune.StartSong
	}

	plr := player.NewPlayer(p, spec)
	err = plr.Load(tune, song)
	if err != nil {
		return nil, err
	}

	return plr, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	fl := addTuneFlags(md)
	frames := md.AddInt("frames", 500, "number of frames to play")
	wav := md.AddString("wav", "", "write volume register output to wav file (AUTO for a generated name)")
	memvizFile := md.AddString("memviz", "", "write graphviz dump of the CPU state to file (AUTO for a generated name)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsviewStatus()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	plr, err := setupPlayer(md, fl)
	if err != nil {
		return err
	}

	tune, song := plr.Tune()
	fmt.Printf("%s: song %d of %d (%s, %s)\n", tune, song, tune.Songs, plr.Spec().ID, plr.CPU.Mode())

	var aw *wavwriter.WavWriter
	if *wav != "" {
		if *wav == "AUTO" {
			*wav = paths.UniqueFilename("audio", tune.Name) + ".wav"
		}
		aw, err = wavwriter.New(*wav, plr.Spec())
		if err != nil {
			return err
		}
	}

	onFrame := func(_ int) error {
		if aw != nil {
			aw.Process(plr.Mem.ChipWrites(), plr.Sch.Time(scheduler.PHI2))
		}
		plr.Mem.ClearChipWrites()
		return nil
	}

	// include the writes made by the init routine
	_ = onFrame(0)

	err = plr.Run(*frames, onFrame)
	if err != nil {
		return err
	}

	fmt.Printf("played %d frames (%d sleeps, %d resets)\n", plr.Frame(), plr.Mem.Sleeps, plr.Mem.Resets)

	if aw != nil {
		err = aw.EndMixing()
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, plr)
		if err != nil {
			return err
		}
	}

	return nil
}

func statsviewStatus() string {
	if statsview.Available() {
		return "available"
	}
	return "not available in this build"
}

// the parts of the CPU written by writeMemviz(). the memory environment is
// left out
type cpuState struct {
	PC         registers.ProgramCounter
	A          registers.Register
	X          registers.Register
	Y          registers.Register
	SP         registers.StackPointer
	Status     registers.StatusRegister
	LastResult execution.Result
}

func writeMemviz(filename string, plr *player.Player) (rerr error) {
	if filename == "AUTO" {
		tune, _ := plr.Tune()
		filename = paths.UniqueFilename("memviz", tune.Name) + ".dot"
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	st := &cpuState{
		PC:         plr.CPU.PC,
		A:          plr.CPU.A,
		X:          plr.CPU.X,
		Y:          plr.CPU.Y,
		SP:         plr.CPU.SP,
		Status:     plr.CPU.Status,
		LastResult: plr.CPU.LastResult,
	}
	memviz.Map(f, st)

	logger.Logf(logger.Allow, "memviz", "CPU state written to %s", filename)

	return nil
}

func step(md *modalflag.Modes, state chan stateRequest) error {
	md.NewMode()
	fl := addTuneFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	plr, err := setupPlayer(md, fl)
	if err != nil {
		return err
	}

	term, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	// the terminal must be restored before the program ends so the main
	// thread should not exit on ctrl-c
	state <- stateRequest{req: reqNoIntSig}

	err = term.CBreakMode()
	if err != nil {
		return err
	}
	defer func() {
		_ = term.CanonicalMode()
	}()

	// log entries are shown as they happen unless they are already being
	// echoed
	showLog := func() {
		if !*fl.log {
			logger.WriteRecent(os.Stdout)
		}
	}
	showLog()

	term.Print("%s\n", plr.CPU)
	term.Print("space: step instruction, f: run frame, l: show log, q: quit\n")

	for {
		key, err := term.ReadKey()
		if err != nil {
			return err
		}
		if len(key) == 0 {
			continue
		}

		switch key[0] {
		case 'q', 'Q', easyterm.KeyEsc, easyterm.KeyInterrupt:
			return nil

		case 'f', 'F':
			err = plr.RunFrame()
			if err != nil {
				return err
			}
			showLog()
			term.Print("frame %d\n%s\n", plr.Frame(), plr.CPU)

		case 'l', 'L':
			logger.Tail(os.Stdout, 10)

		case easyterm.KeySpace, easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			err = stepInstruction(plr)
			if err != nil {
				return err
			}
			showLog()
			term.Print("%-24s %s\n", plr.CPU.LastResult, plr.CPU)
		}
	}
}

// clock the player until an instruction or interrupt sequence has completed.
// a new frame is started when the CPU has gone to sleep
func stepInstruction(plr *player.Player) error {
	for i := 0; i < maxStepCycles; i++ {
		if !plr.Sch.Clock() {
			err := plr.StartFrame()
			if err != nil {
				return err
			}
			continue
		}
		if plr.CPU.LastResult.Final {
			return nil
		}
	}
	return curated.Errorf("instruction did not complete in %d cycles", maxStepCycles)
}

func table(md *modalflag.Modes) error {
	md.NewMode()
	sid := md.AddBool("sid", false, "show the table of the compatibility CPU")
	memmap := md.AddBool("memmap", false, "show the memory map")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *memmap {
		fmt.Print(memorymap.Summary())
		return nil
	}

	t := cpu.GenericTable()
	if *sid {
		t = cpu.SidTable()
	}

	fmt.Println(t.Fetch)
	if *sid {
		fmt.Println(t.Delay)
	}
	for _, d := range t.Interrupts {
		fmt.Println(d)
	}
	for _, d := range t.Opcodes {
		fmt.Println(d)
	}

	return nil
}
