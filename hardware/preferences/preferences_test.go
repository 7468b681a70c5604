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

package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6510/prefs"
	"github.com/jetsetilly/gopher6510/test"
)

func TestDefaults(t *testing.T) {
	p := NewDetachedPreferences()
	test.ExpectEquality(t, p.Environment.String(), DefaultEnvironment)
	test.ExpectEquality(t, p.FrameBudget.Get().(int), DefaultFrameBudget)
	test.ExpectEquality(t, p.IRQOverflow.String(), DefaultIRQOverflow)
	test.ExpectEquality(t, p.Verbose.Get().(bool), DefaultVerbose)
	test.ExpectSuccess(t, p.Save())
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth, true)
	test.DemandSuccess(t, err)

	// a missing file is created with the default values
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, p.Environment.Set("real"))
	test.ExpectSuccess(t, p.FrameBudget.Set(1000))
	test.ExpectSuccess(t, p.Verbose.Set(false))
	test.ExpectSuccess(t, p.Save())

	q, err := newPreferences(pth, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Environment.String(), "real")
	test.ExpectEquality(t, q.FrameBudget.Get().(int), 1000)
	test.ExpectEquality(t, q.Verbose.Get().(bool), false)

	test.ExpectSuccess(t, q.Reset())
	test.ExpectEquality(t, q.Environment.String(), DefaultEnvironment)
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("cpu.verbose::false; cpu.environment::bankswitch")
	p, err := newPreferences(pth, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, p.Environment.String(), "bankswitch")
	test.ExpectEquality(t, p.Verbose.Get().(bool), false)
}
