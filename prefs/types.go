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
	"strconv"
	"strings"
	"sync/atomic"
)

// Value is the type passed to Set() and returned by Get().
type Value interface{}

// the interface required by Disk.Add()
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// the storage and hooks shared by all preference types. values are stored
// atomically so that a preference can be read by the emulation while being
// changed elsewhere
type value[T any] struct {
	v        atomic.Value
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *value[T]) load() T {
	var zero T
	if v := p.v.Load(); v != nil {
		return v.(T)
	}
	return zero
}

// hooks are called even if the value has not changed
func (p *value[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}
	p.v.Store(nv)
	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// SetHookPre sets the function called before the value is stored. An error
// from the hook prevents the value from being stored.
func (p *value[T]) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the function called after the value is stored.
func (p *value[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Bool is a boolean preference. The zero value is false.
type Bool struct {
	value[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set accepts a bool or a string. Any string other than "true" (ignoring case)
// is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return fmt.Errorf("prefs: cannot set Bool from %T", v)
}

// Get returns the value as a bool.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String is a string preference. The zero value is the empty string.
type String struct {
	value[string]
}

func (p *String) String() string {
	return p.load()
}

// Set accepts any value. Values that are not strings are formatted with %v.
func (p *String) Set(v Value) error {
	return p.store(fmt.Sprintf("%v", v))
}

// Get returns the value as a string.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int is an integer preference. The zero value is 0.
type Int struct {
	value[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set accepts any sized int or a string in base 10.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot set Int: %w", err)
		}
		return p.store(n)
	}
	return fmt.Errorf("prefs: cannot set Int from %T", v)
}

// Get returns the value as an int.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
