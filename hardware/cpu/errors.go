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

// Error patterns returned by the cpu package. Test for these with curated.Is().
const (
	// more IRQs have been raised without being cleared than the CPU can
	// track. this is a defect in the environment driving the CPU
	TooManyIRQs = "cpu: too many IRQs (%d outstanding)"

	// ResetTo() is only available to the compatibility variant
	ResetToNotSupported = "cpu: partial reset not supported by the generic CPU"

	UnknownMode = "cpu: unknown environment mode (%s)"
)
