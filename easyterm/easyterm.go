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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// the termios functions needed to read single key presses from the terminal
// in functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is a posix terminal that can be switched between canonical and
// cbreak mode.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. An error is returned if the input file is not a terminal.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf("easyterm: %v", "terminal requires an input and an output file")
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return nil, curated.Errorf("easyterm: %v", err)
	}

	// cbreak mode starts from the canonical attributes
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return pt, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Key presses are available
// immediately and are not echoed.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input buffer is empty.
func (pt *Terminal) Flush() error {
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	_, _ = pt.output.WriteString(fmt.Sprintf(s, a...))
}

// ReadKey waits for a single key press. Escape sequences are returned as
// KeyEsc followed by the bytes of the sequence.
func (pt *Terminal) ReadKey() ([]byte, error) {
	b := make([]byte, 4)
	n, err := pt.input.Read(b)
	if err != nil {
		return nil, curated.Errorf("easyterm: %v", err)
	}
	return b[:n], nil
}
