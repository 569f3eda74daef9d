// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/swipe/math32"
)

// Sequence is the stable identifier of one touch for the
// lifetime of that touch.
type Sequence int64

// Pointer is the capture handle of the pointer device. A control under
// the finger (for example a button) may hold the capture; releasing it
// keeps that control from activating once the gesture is recognized.
type Pointer interface {

	// Captured returns whether some element still holds the capture.
	Captured() bool

	// ReleaseCapture releases the capture.
	ReleaseCapture()
}

// Event is one normalized input sample, in the coordinates of the
// surface that receives it.
type Event struct {

	// Type is the type of event.
	Type Types

	// Where is the position of the event.
	Where math32.Vector2

	// ButtonDown is whether the primary button is still pressed
	// during a [PointerMove].
	ButtonDown bool

	// Sequence identifies the touch for touch events.
	Sequence Sequence

	// Origin is the element that the event originated on,
	// typically implementing gesture.Node. It may be nil.
	Origin any

	// Pointer is the capture handle of the pointer device. It may be nil.
	Pointer Pointer

	handled bool
}

// NewPointer returns a new pointer event of the given type at the given position.
func NewPointer(typ Types, where math32.Vector2) *Event {
	return &Event{Type: typ, Where: where, ButtonDown: typ == PointerDown || typ == PointerMove}
}

// NewTouch returns a new touch event of the given type for the given touch.
func NewTouch(typ Types, seq Sequence, where math32.Vector2) *Event {
	return &Event{Type: typ, Where: where, Sequence: seq}
}

func (ev *Event) String() string {
	if ev.Type.IsTouch() {
		return fmt.Sprintf("%v{Seq: %d, Pos: %v}", ev.Type, ev.Sequence, ev.Where)
	}
	return fmt.Sprintf("%v{Pos: %v, Down: %v}", ev.Type, ev.Where, ev.ButtonDown)
}

// SetHandled marks the event as handled, which stops
// further listeners from being called.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

// ReleaseCapture releases the pointer capture if the event has a
// pointer that is still captured, returning true if it did so.
func (ev *Event) ReleaseCapture() bool {
	if ev.Pointer == nil || !ev.Pointer.Captured() {
		return false
	}
	ev.Pointer.ReleaseCapture()
	return true
}
