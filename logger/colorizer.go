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

package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6510/easyterm/ansi"
)

// Colorizer is an io.Writer that highlights the tag of each log entry. It is
// intended for use with SetEcho(). Lines that are not log entries are dimmed.
type Colorizer struct {
	out    io.Writer
	tagPen string
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:    out,
		tagPen: ansi.Pens["cyan"],
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var b strings.Builder
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			fmt.Fprintf(&b, "%s%s%s", ansi.DimPens["red"], l, ansi.NormalPen)
			continue
		}
		fmt.Fprintf(&b, "%s%s%s: %s", c.tagPen, tag, ansi.NormalPen, detail)
	}

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}
