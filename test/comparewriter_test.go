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

package test_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6510/test"
)

func TestCompareWriter(t *testing.T) {
	cw := &test.CompareWriter{}
	test.ExpectEquality(t, len(cw.Lines()), 0)

	fmt.Fprintln(cw, "PSID v2")
	fmt.Fprintf(cw, "%d songs\n", 3)
	test.ExpectSuccess(t, cw.Compare("PSID v2\n3 songs\n"))

	lines := cw.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[1], "3 songs")

	cw.Reset()
	test.ExpectSuccess(t, cw.Compare(""))
}
