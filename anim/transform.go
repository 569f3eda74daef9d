// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"time"
)

// lastID is the last identity handed out to a [Transform].
// Identities increase monotonically, so a newer transform
// always has a larger ID than any transform it supersedes.
var lastID uint64

// Transform is an animatable scalar translation on one axis of a content
// element. Each transform has a unique identity so that animation
// callbacks can detect that the transform they were started on is no
// longer the active one for its surface.
type Transform struct {
	value float32
	id    uint64
	sched *Scheduler
	anim  *Animation
}

// Tween describes one animation of a [Transform] to a target value.
type Tween struct {

	// To is the target value.
	To float32

	// Duration is the time taken to reach the target.
	Duration time.Duration

	// Delay is the time to wait before starting to move.
	Delay time.Duration

	// Easing is the easing function; nil means [Linear].
	Easing Easing

	// Changed is called with the new value after every step
	// in which the value changed, including the final one.
	Changed func(value float32)
}

// NewTransform returns a new transform at the given value,
// animated by the given scheduler.
func NewTransform(s *Scheduler, value float32) *Transform {
	lastID++
	return &Transform{value: value, id: lastID, sched: s}
}

// ID returns the unique identity of the transform.
func (t *Transform) ID() uint64 {
	return t.id
}

// Get returns the current value.
func (t *Transform) Get() float32 {
	return t.value
}

// Set sets the value, stopping any running animation.
func (t *Transform) Set(value float32) {
	t.Stop()
	t.value = value
}

// Move adds delta to the value, stopping any running animation.
func (t *Transform) Move(delta float32) {
	t.Set(t.value + delta)
}

// Stop stops any running animation, leaving the value where it is.
func (t *Transform) Stop() {
	if t.anim != nil {
		t.anim.Done = true
		t.anim = nil
	}
}

// Animating returns whether an animation is running on the transform.
func (t *Transform) Animating() bool {
	return t.anim != nil && !t.anim.Done
}

// Snapshot returns a new transform at the current value of this one,
// on the same scheduler. The running animation, if any, stays on the
// old transform; callers replace the old transform with the snapshot.
func (t *Transform) Snapshot() *Transform {
	return NewTransform(t.sched, t.value)
}

// AnimateTo starts animating the value from its current value to tw.To.
// Starting an animation supersedes any animation already running on
// this transform.
func (t *Transform) AnimateTo(tw Tween) *Animation {
	t.Stop()
	from := t.value
	ease := tw.Easing
	if ease == nil {
		ease = Linear
	}
	a := t.sched.Add(func(a *Animation) {
		if a.Elapsed < tw.Delay {
			return
		}
		p := float32(1)
		if tw.Duration > 0 {
			p = min(float32(a.Elapsed-tw.Delay)/float32(tw.Duration), 1)
		}
		if p >= 1 {
			t.value = tw.To
			a.Done = true
			if t.anim == a {
				t.anim = nil
			}
		} else {
			t.value = from + (tw.To-from)*ease(p)
		}
		if tw.Changed != nil {
			tw.Changed(t.value)
		}
	})
	t.anim = a
	return a
}

func (t *Transform) String() string {
	return fmt.Sprintf("Transform#%d(%g)", t.id, t.value)
}
