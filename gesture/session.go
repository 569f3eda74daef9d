// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"cogentcore.org/swipe/math32"
	"github.com/google/uuid"
)

// Session is the state of one press-to-release gesture.
type Session struct {

	// ID identifies the gesture in log records.
	ID uuid.UUID

	// Active is whether a press is in progress.
	Active bool

	// Start is the position of the press.
	Start math32.Vector2

	// Reference is the position that the next sample is measured from.
	Reference math32.Vector2

	// Cumulative is the total movement applied to the outer gesture.
	Cumulative float32

	// Direction is the last intentional direction.
	Direction Direction

	// Dragging is whether the outer gesture has moved content.
	Dragging bool

	// CaptureReleased is whether the pointer capture of the originating
	// control has been released during this gesture.
	CaptureReleased bool

	// Nested is the nested scroll disambiguation for this gesture.
	Nested NestedScroll
}

// Reset returns the session to its idle state.
func (s *Session) Reset() {
	s.Active = false
	s.Cumulative = 0
	s.Direction = Left
	s.Dragging = false
	s.CaptureReleased = false
	s.Nested.Reset()
}
