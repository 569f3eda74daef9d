// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transition provides the animated transitions that run when a
// gesture commits: the two phase slide of a frame, the scroll of a
// carousel and the single phase toggle of a drawer.
//
// Every callback of a transition first checks that the transform it was
// started on is still the current one for its element. A transform that
// has been replaced, for example by a new press, makes the callback a
// silent no-op, so an interrupted transition never swaps content or
// reports completion.
package transition

import (
	"fmt"

	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/math32"
)

// Handle describes a running transition.
type Handle struct {

	// ExitTarget is the value that the first phase animates to.
	ExitTarget float32

	// Owner is the transform of the current phase.
	Owner *anim.Transform

	// OwnerID is the identity of Owner.
	OwnerID uint64

	// Entered is whether the transition has reached its second phase.
	Entered bool

	// Finished is whether the transition has completed.
	Finished bool

	// Superseded is whether a newer gesture has taken over the element
	// while it was moving a transform other than the owner.
	Superseded bool

	current func() *anim.Transform
}

func newHandle(owner *anim.Transform, exit float32, current func() *anim.Transform) *Handle {
	h := &Handle{ExitTarget: exit, current: current}
	h.own(owner)
	return h
}

func (h *Handle) own(t *anim.Transform) {
	h.Owner = t
	h.OwnerID = t.ID()
}

// Stale returns whether the owner has been superseded as the current
// transform of its element, or the handle has been superseded by a new
// gesture, in which case the transition has no further effect.
func (h *Handle) Stale() bool {
	if h.Superseded {
		return true
	}
	cur := h.current()
	return cur == nil || cur.ID() != h.OwnerID
}

// Supersede marks the transition stale. It is for elements where a new
// gesture can move a transform that the handle does not own. It is safe
// to call on a nil handle.
func (h *Handle) Supersede() {
	if h != nil {
		h.Superseded = true
	}
}

func (h *Handle) String() string {
	return fmt.Sprintf("Handle{Exit: %g, Owner: %v, Entered: %v, Finished: %v}", h.ExitTarget, h.Owner, h.Entered, h.Finished)
}

// reached returns whether v is at target within tol, comparing magnitudes.
func reached(v, target, tol float32) bool {
	return math32.Abs(math32.Abs(v)-math32.Abs(target)) <= tol
}
