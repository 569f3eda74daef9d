// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of input event. Pointer events come from a
// mouse, pen or a single primary touch that the host has already
// normalized; Touch events carry a per-touch [Sequence] and are used for
// multi-touch gestures such as pinch.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerDown happens when the primary pointer is pressed.
	// The event Origin is the element under the pointer.
	PointerDown

	// PointerMove happens when the primary pointer moves.
	// ButtonDown reports whether the press is still held.
	PointerMove

	// PointerUp happens when the primary pointer is released.
	PointerUp

	// PointerLeave happens when the pointer leaves the bounds
	// of the surface that received the PointerDown.
	PointerLeave

	// TouchStart is when a touch starts.
	TouchStart

	// TouchMove is when a touch moves.
	TouchMove

	// TouchEnd is when a touch ends.
	TouchEnd

	// TouchLeave is when a touch leaves the surface.
	TouchLeave
)

var typesNames = [...]string{"UnknownType", "PointerDown", "PointerMove", "PointerUp", "PointerLeave", "TouchStart", "TouchMove", "TouchEnd", "TouchLeave"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typesNames) {
		return "Types(?)"
	}
	return typesNames[tp]
}

// IsTouch returns true for the multi-touch event types.
func (tp Types) IsTouch() bool {
	return tp >= TouchStart && tp <= TouchLeave
}
