// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"log/slog"

	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/gesture"
)

// Stage is the surface that a [Slide] runs on.
type Stage interface {

	// ActiveTransform returns the transform that positions the content.
	ActiveTransform() *anim.Transform

	// SetActiveTransform replaces the transform that positions the content.
	SetActiveTransform(t *anim.Transform)

	// SetOpacity sets the opacity of the content.
	SetOpacity(opacity float32)
}

// Slide is the two phase transition of a frame: the old content slides
// out and fades, the content is swapped, and the new content slides in
// from the opposite side.
type Slide struct {

	// Stage is the surface of the transition.
	Stage Stage

	// Config holds the phase duration and completion tolerance.
	Config *gesture.Config
}

// Begin starts the transition on t, which must be the active transform
// of the stage. The exit phase animates t to moveTarget. When it
// completes, swap is called and a fresh transform at -moveTarget is
// installed and animated to 0, after which done is called. Either
// callback may be nil.
func (sl *Slide) Begin(t *anim.Transform, moveTarget float32, swap, done func()) *Handle {
	h := newHandle(t, moveTarget, sl.Stage.ActiveTransform)
	tol := sl.Config.CompletionTolerance
	t.AnimateTo(anim.Tween{
		To:       moveTarget,
		Duration: sl.Config.Phase(),
		Changed: func(v float32) {
			if h.Entered || h.Stale() {
				return
			}
			sl.Stage.SetOpacity(fade(v, moveTarget))
			if !reached(v, moveTarget, tol) {
				return
			}
			if swap != nil {
				swap()
			}
			sl.enter(h, t, -moveTarget, done)
		},
	})
	slog.Debug("slide started", "transform", t, "target", moveTarget)
	return h
}

// enter runs the second phase from the given start value.
func (sl *Slide) enter(h *Handle, old *anim.Transform, from float32, done func()) {
	h.Entered = true
	nt := old.Snapshot()
	nt.Set(from)
	sl.Stage.SetActiveTransform(nt)
	h.own(nt)
	sl.Stage.SetOpacity(fade(from, from))
	nt.AnimateTo(anim.Tween{
		To:       0,
		Duration: sl.Config.Phase(),
		Changed: func(v float32) {
			if h.Finished || h.Stale() {
				return
			}
			sl.Stage.SetOpacity(fade(v, from))
			if v != 0 {
				return
			}
			h.Finished = true
			slog.Debug("slide finished", "transform", nt)
			if done != nil {
				done()
			}
		},
	})
}

// fade returns the opacity at value v of a phase whose far end is target,
// where the content is invisible.
func fade(v, target float32) float32 {
	if target == 0 {
		return 1
	}
	return min(max(1-v/target, 0), 1)
}
