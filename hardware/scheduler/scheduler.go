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

package scheduler

import (
	"container/list"
	"fmt"
	"strings"
)

// Phase of the clock cycle.
type Phase int

// List of valid Phase values.
const (
	PHI1 Phase = iota
	PHI2
)

func (p Phase) String() string {
	switch p {
	case PHI1:
		return "PHI1"
	case PHI2:
		return "PHI2"
	}
	return "unknown phase"
}

// Event is implemented by anything that can be scheduled.
type Event interface {
	// Tick is called when the scheduled time for the event has been reached.
	// The event is no longer scheduled when Tick is called. It can reschedule
	// itself as required.
	Tick()
}

type entry struct {
	event Event
	clk   uint64
}

// Scheduler runs events at the time they are scheduled for.
type Scheduler struct {
	// label is used when printing the scheduler state
	Label string

	// the current time in half-cycles
	clk uint64

	// pending events in time order
	events *list.List
	lookup map[Event]*list.Element
}

// NewScheduler is the preferred method of initialisation for the Scheduler type.
func NewScheduler() *Scheduler {
	return &Scheduler{
		events: list.New(),
		lookup: make(map[Event]*list.Element),
	}
}

func (s *Scheduler) String() string {
	b := strings.Builder{}
	for e := s.events.Front(); e != nil; e = e.Next() {
		ent := e.Value.(*entry)
		if s.Label != "" {
			b.WriteString(s.Label)
			b.WriteString(": ")
		}
		if st, ok := ent.event.(fmt.Stringer); ok {
			b.WriteString(st.String())
		} else {
			b.WriteString("[unlabelled event]")
		}
		b.WriteString(fmt.Sprintf(" -> %d %s\n", ent.clk>>1, Phase(ent.clk&1)))
	}
	return b.String()
}

// Reset the scheduler. All pending events are dropped and time returns to zero.
func (s *Scheduler) Reset() {
	s.clk = 0
	s.events.Init()
	s.lookup = make(map[Event]*list.Element)
}

// Schedule the event to run the number of cycles in the future, on the
// specified phase. An event that is already pending is moved to the new time.
//
// Scheduling zero cycles ahead for the current phase means that the event
// will run after all other events pending for the current time.
func (s *Scheduler) Schedule(ev Event, cycles uint64, phase Phase) {
	s.Cancel(ev)

	clk := s.clk + (cycles << 1) + ((s.clk & 1) ^ uint64(phase))
	ent := &entry{event: ev, clk: clk}

	// insert after the last entry that is not later than the new entry
	e := s.events.Back()
	for e != nil && e.Value.(*entry).clk > clk {
		e = e.Prev()
	}

	if e == nil {
		s.lookup[ev] = s.events.PushFront(ent)
	} else {
		s.lookup[ev] = s.events.InsertAfter(ent, e)
	}
}

// Cancel a pending event. Has no effect if the event is not pending.
func (s *Scheduler) Cancel(ev Event) {
	if e, ok := s.lookup[ev]; ok {
		s.events.Remove(e)
		delete(s.lookup, ev)
	}
}

// IsPending returns true if the event is waiting to be run.
func (s *Scheduler) IsPending(ev Event) bool {
	_, ok := s.lookup[ev]
	return ok
}

// Time returns the current time in cycles, as seen from the specified phase.
func (s *Scheduler) Time(phase Phase) uint64 {
	return (s.clk + uint64(phase^1)) >> 1
}

// Elapsed returns the number of cycles since the timestamp. The timestamp
// should have been taken with Time() for the same phase.
func (s *Scheduler) Elapsed(timestamp uint64, phase Phase) uint64 {
	return s.Time(phase) - timestamp
}

// Phase returns the current phase.
func (s *Scheduler) Phase() Phase {
	return Phase(s.clk & 1)
}

// Clock advances time to the next pending event and runs it. Returns false if
// there was no pending event.
func (s *Scheduler) Clock() bool {
	e := s.events.Front()
	if e == nil {
		return false
	}

	ent := e.Value.(*entry)
	s.events.Remove(e)
	delete(s.lookup, ent.event)

	s.clk = ent.clk
	ent.event.Tick()

	return true
}

// RunFor runs all events that are due within the number of cycles. Time is
// advanced by exactly that number of cycles whether or not any events were
// run.
func (s *Scheduler) RunFor(cycles uint64) {
	end := s.clk + (cycles << 1)
	for {
		e := s.events.Front()
		if e == nil || e.Value.(*entry).clk >= end {
			break
		}
		s.Clock()
	}
	s.clk = end
}
