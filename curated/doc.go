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

// Package curated wraps the plain error type with a pattern that identifies
// the error. Errors are created with Errorf() and tested with Is() and Has().
//
//	const TooManyIRQs = "cpu: too many IRQs (%d)"
//
//	err := curated.Errorf(TooManyIRQs, 4)
//	if curated.Is(err, TooManyIRQs) {
//		...
//	}
//
// Has() looks for the pattern along the chain of wrapped errors. A value
// wrapped with %v counts as part of the chain if it is an error.
//
// Message parts are separated by ": " and repeated adjacent parts are
// removed, so wrapping an error with the same prefix as the error does not
// produce a stuttering message.
package curated
