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

package logger_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6510/easyterm/ansi"
	"github.com/jetsetilly/gopher6510/logger"
	"github.com/jetsetilly/gopher6510/test"
)

func TestColorizer(t *testing.T) {
	cw := &test.CompareWriter{}
	c := logger.NewColorizer(cw)

	n, err := fmt.Fprint(c, "cpu: bank jump to $a000 refused\n")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 32)
	test.ExpectEquality(t, cw.String(), "\033[96;49mcpu\033[m: bank jump to $a000 refused\n")

	cw.Reset()
	_, _ = fmt.Fprint(c, "player: frame 1\ncontinued\n")
	test.ExpectEquality(t, cw.String(), fmt.Sprintf("%splayer%s: frame 1\n%scontinued\n%s",
		ansi.Pens["cyan"], ansi.NormalPen, ansi.DimPens["red"], ansi.NormalPen))
}

func TestColorizedEcho(t *testing.T) {
	log := logger.NewLogger(10)
	cw := &test.CompareWriter{}
	log.SetEcho(logger.NewColorizer(cw), false)
	log.Log(logger.Allow, "memory", "reset requested")
	test.ExpectSuccess(t, cw.Compare("\033[96;49mmemory\033[m: reset requested\n"))
}
