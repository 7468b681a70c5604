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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher6510/prefs"
	"github.com/jetsetilly/gopher6510/test"
)

func TestCommandLineGroup(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("cpu.environment::real")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.environment::real")

	// surrounding space is removed
	prefs.PushCommandLineStack("  cpu.environment::  real ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.environment::real")

	// unused values are returned in key order
	prefs.PushCommandLineStack("cpu.framebudget::1000; cpu.environment::real")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.environment::real; cpu.framebudget::1000")

	// entries without a separator are dropped
	prefs.PushCommandLineStack("cpu.environment")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("cpu.environment;cpu.verbose::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.verbose::false")
}

func TestCommandLineValueUsedOnce(t *testing.T) {
	prefs.PushCommandLineStack("cpu.environment::real; cpu.verbose::false")

	ok, v := prefs.GetCommandLinePref("cpu.environment")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "real")

	ok, _ = prefs.GetCommandLinePref("cpu.environment")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("cpu.framebudget")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.verbose::false")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("cpu.environment::real")
	prefs.PushCommandLineStack("cpu.environment::bankswitch")

	ok, v := prefs.GetCommandLinePref("cpu.environment")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bankswitch")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// the earlier group is untouched
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.environment::real")
}
