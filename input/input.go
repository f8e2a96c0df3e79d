// seehuhn.de/go/sketch - a 2D drawing library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package input tracks the state of the keyboard and the mouse for an
// interactive sketch.
//
// The host window system reports raw events to a [State], which updates
// the set of pressed keys and buttons and forwards the events to a
// [Handler].  A key or button release is only reported if the matching
// press was seen before.
package input

import (
	"maps"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/vector"
)

// Button identifies a mouse button.  The primary button is 0.
type Button int

// Mouse buttons, numbered like the buttons of DOM mouse events.
const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// Handler receives input events.  Embed [NopHandler] to implement only
// some of the methods.
type Handler interface {
	OnMouseEnter()
	OnMouseLeave()
	OnMouseMove(x, y float64)
	OnMouseDown(b Button)
	OnMouseUp(b Button)
	OnMouseClick(b Button)
	OnKeyDown(code string)
	OnKeyUp(code string)
	OnKeyPress(code string)
}

// NopHandler ignores all events.
type NopHandler struct{}

func (NopHandler) OnMouseEnter()            {}
func (NopHandler) OnMouseLeave()            {}
func (NopHandler) OnMouseMove(x, y float64) {}
func (NopHandler) OnMouseDown(b Button)     {}
func (NopHandler) OnMouseUp(b Button)       {}
func (NopHandler) OnMouseClick(b Button)    {}
func (NopHandler) OnKeyDown(code string)    {}
func (NopHandler) OnKeyUp(code string)      {}
func (NopHandler) OnKeyPress(code string)   {}

// State is the current keyboard and mouse state.
//
// A State is not safe for concurrent use.  All events and queries must
// come from one goroutine; a running animation loop receives host events
// through loop.WithEvents.
type State struct {
	h Handler

	x, y     float64
	hasMouse bool

	buttons map[Button]struct{}
	keys    map[string]struct{}
}

// New returns a State which forwards events to h.  If h is nil, events
// are only tracked.
func New(h Handler) *State {
	if h == nil {
		h = NopHandler{}
	}
	return &State{
		h:       h,
		buttons: make(map[Button]struct{}),
		keys:    make(map[string]struct{}),
	}
}

// MouseEnter reports that the pointer entered the drawing area at (x, y).
func (s *State) MouseEnter(x, y float64) {
	s.setMouse(x, y)
	s.h.OnMouseEnter()
}

// MouseLeave reports that the pointer left the drawing area.  The mouse
// position becomes unknown.
func (s *State) MouseLeave() {
	s.hasMouse = false
	s.h.OnMouseLeave()
}

// MouseMove reports a pointer movement to (x, y).
func (s *State) MouseMove(x, y float64) {
	s.setMouse(x, y)
	s.h.OnMouseMove(x, y)
}

// MouseDown reports that button b was pressed.  This arms the next
// [State.MouseUp] for b.
func (s *State) MouseDown(b Button) {
	s.buttons[b] = struct{}{}
	s.h.OnMouseDown(b)
}

// MouseUp reports that button b was released.  Releases without a
// preceding press are ignored.
func (s *State) MouseUp(b Button) {
	if _, ok := s.buttons[b]; !ok {
		sketch.Logger().Debug("ignore mouse up", "button", b)
		return
	}
	delete(s.buttons, b)
	s.h.OnMouseUp(b)
}

// Click reports a click with button b.
func (s *State) Click(b Button) {
	s.h.OnMouseClick(b)
}

// KeyDown reports that the key with the given code was pressed.  This
// arms the next [State.KeyUp] for the key.  Auto-repeat may call KeyDown
// several times before the key is released.
func (s *State) KeyDown(code string) {
	s.keys[code] = struct{}{}
	s.h.OnKeyDown(code)
}

// KeyUp reports that a key was released.  Releases without a preceding
// press are ignored.
func (s *State) KeyUp(code string) {
	if _, ok := s.keys[code]; !ok {
		sketch.Logger().Debug("ignore key up", "code", code)
		return
	}
	delete(s.keys, code)
	s.h.OnKeyUp(code)
}

// KeyPress reports a key press producing a character.
func (s *State) KeyPress(code string) {
	s.h.OnKeyPress(code)
}

func (s *State) setMouse(x, y float64) {
	s.x, s.y = x, y
	s.hasMouse = true
}

// IsKeyPressed reports whether the key with the given code is held down.
func (s *State) IsKeyPressed(code string) bool {
	_, ok := s.keys[code]
	return ok
}

// KeysPressed returns the codes of all keys held down, in sorted order.
func (s *State) KeysPressed() []string {
	return slices.Sorted(maps.Keys(s.keys))
}

// IsMousePressed reports whether button b is held down while the mouse
// position is known.
func (s *State) IsMousePressed(b Button) bool {
	_, ok := s.buttons[b]
	return ok && s.hasMouse
}

// MousePos returns the mouse position, or nil if it is not known.
func (s *State) MousePos() *vector.Vector {
	if !s.hasMouse {
		return nil
	}
	return vector.Create(s.x, s.y)
}
