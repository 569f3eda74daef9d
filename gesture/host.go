// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/math32"
)

// Host is the set of capabilities that a surface provides to its
// [Controller]. Each surface (frame, carousel, drawer) implements it
// instead of carrying its own copy of the gesture state machine.
type Host interface {

	// GestureEnabled returns whether a press may start a gesture, for
	// example false when the displayed content is not in the
	// navigation list.
	GestureEnabled() bool

	// ActiveTransform returns the transform that currently positions the
	// surface content along the gesture axis.
	ActiveTransform() *anim.Transform

	// SetActiveTransform replaces the active transform. Animations still
	// running on the previous transform must then have no visible effect.
	SetActiveTransform(t *anim.Transform)

	// Commit resolves the target of the given outcome and starts the
	// transition to it. It returns false when there is no valid target,
	// in which case the controller restores instead.
	Commit(o Outcome, s *Session) bool

	// Restore animates the content back to its resting position.
	Restore(s *Session)
}

// Fader is implemented by hosts whose opacity follows the drag.
type Fader interface {

	// FadeOnDrag returns whether the opacity follows the drag.
	FadeOnDrag() bool

	// SetOpacity sets the opacity of the surface content.
	SetOpacity(opacity float32)
}

// DragFilter is implemented by hosts that bound the drag, such as a
// drawer that cannot be dragged beyond its width.
type DragFilter interface {

	// AllowDrag returns whether the content may move to the given
	// cumulative movement. A refused sample is dropped without moving
	// the reference point, so the movement is applied by a later sample.
	AllowDrag(cumulative float32) bool
}

// LeaveFilter is implemented by hosts that receive spurious pointer
// leave events, such as carousels whose items share one transform.
type LeaveFilter interface {

	// IgnoreLeave returns whether a leave at the given position,
	// in surface coordinates, is a false leave.
	IgnoreLeave(where math32.Vector2) bool
}

// PressHook is implemented by hosts that need to act on the fresh
// transform installed at a press, such as a carousel whose items share it.
type PressHook interface {

	// GesturePressed is called at the end of a press that started a gesture.
	GesturePressed(s *Session)
}
