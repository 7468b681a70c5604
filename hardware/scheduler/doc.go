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

// Package scheduler implements the cooperative event scheduler that drives the
// CPU and any other component that needs to act at a specific point in time.
//
// Time is measured in half-cycles. Each cycle has two phases, PHI1 and PHI2,
// and events are scheduled to run on one of the two phases. The 6510 accesses
// the bus during PHI2, leaving PHI1 for other bus masters.
//
// The scheduler is not safe for concurrent use. Events are run synchronously,
// one at a time, in time order. Events scheduled for the same time run in the
// order they were scheduled.
package scheduler
