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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// values given on the command line are grouped so that a group can be
// discarded once the preferences it was meant for have been loaded
type commandLineGroup map[string]string

// parse a group from a string of the form "key::value; key::value". entries
// without the separator are ignored
func parseCommandLineGroup(s string) commandLineGroup {
	g := make(commandLineGroup)
	for _, e := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(e, "::")
		if !ok {
			continue
		}
		g[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return g
}

// the group as a string in the same form as accepted by parseCommandLineGroup
func (g commandLineGroup) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e := make([]string, len(keys))
	for i, k := range keys {
		e[i] = fmt.Sprintf("%s::%s", k, g[k])
	}
	return strings.Join(e, "; ")
}

var commandLineStack []commandLineGroup

// PushCommandLineStack parses the preferences string and makes it the
// current group. The string has the form:
//
//	cpu.environment::real; cpu.framebudget::100000
func PushCommandLineStack(prefs string) {
	commandLineStack = append(commandLineStack, parseCommandLineGroup(prefs))
}

// PopCommandLineStack discards the current group. The values in the group
// that were never used are returned in the form accepted by
// PushCommandLineStack().
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	g := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return g.String()
}

// GetCommandLinePref returns the value for the key in the current group. A
// value can only be used once.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}
	g := commandLineStack[len(commandLineStack)-1]
	v, ok := g[key]
	if !ok {
		return false, nil
	}
	delete(g, key)
	return true, v
}
