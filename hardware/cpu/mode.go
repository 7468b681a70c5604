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

package cpu

import (
	"strings"

	"github.com/jetsetilly/gopher6510/curated"
)

// Mode is the execution environment of the CPU. Every mode other than Real
// selects the compatibility semantics of the Sid variant.
type Mode int

// List of valid Mode values.
const (
	Real Mode = iota
	PlaySID
	TransparentROM
	BankSwitching
)

func (m Mode) String() string {
	switch m {
	case Real:
		return "real"
	case PlaySID:
		return "playsid"
	case TransparentROM:
		return "transparent"
	case BankSwitching:
		return "bankswitch"
	}
	return "unknown"
}

// IsCompatibility returns true if the mode is not Real.
func (m Mode) IsCompatibility() bool {
	return m != Real
}

// ParseMode converts the string representation of a mode into a Mode value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "real":
		return Real, nil
	case "playsid", "psid":
		return PlaySID, nil
	case "transparent", "transparentrom":
		return TransparentROM, nil
	case "bankswitch", "bankswitching":
		return BankSwitching, nil
	}
	return Real, curated.Errorf(UnknownMode, s)
}
