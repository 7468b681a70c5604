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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectFailure and ExpectSuccess functions test for failure and success
// under generic conditions. Booleans, errors and nil are supported.
//
// It is worth describing how the "Expect" functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// ExpectEquality and ExpectInequality compare any two values of the same
// comparable type. ExpectApproximate compares numeric values within a
// tolerance.
//
// DemandEquality and DemandSuccess are the same as their Expect counterparts
// except that a failure is fatal for the test.
//
// All Expect and Demand functions accept optional tags. The tags are printed
// at the start of any failure message, making it easier to identify which
// iteration of a table driven test has failed.
//
// CompareWriter implements io.Writer and should be used to capture output
// that is to be compared with a string.
package test
