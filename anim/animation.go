// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides time-driven animations of scalar transforms,
// stepped by the host rendering loop through a [Scheduler].
package anim

import (
	"slices"
	"time"
)

// Animation represents the data for one running animation.
// Animations are stored on a [Scheduler].
type Animation struct {

	// Func is the animation function, which is run every time the [Scheduler]
	// is stepped, which is usually at the same rate as the refresh
	// rate of the monitor. It receives the [Animation] object so that
	// it can reference things such as [Animation.Delta] and set things such as
	// [Animation.Done].
	Func func(a *Animation)

	// Delta is the amount of time that has passed since the
	// last animation frame/step.
	Delta time.Duration

	// Elapsed is the total amount of time that the animation has run.
	Elapsed time.Duration

	// Done can be set to true to permanently stop the animation; the [Animation] object
	// will be removed from the [Scheduler] at the next step.
	Done bool
}

// Scheduler holds the running animations and advances them when the host
// calls [Scheduler.Step]. It is not safe for concurrent use; all calls
// happen on the UI thread.
type Scheduler struct {

	// Animations are the currently running animations.
	Animations []*Animation
}

// Add adds a new [Animation] running the given function at every step.
// It first runs at the next call to [Scheduler.Step].
func (s *Scheduler) Add(f func(a *Animation)) *Animation {
	a := &Animation{Func: f}
	s.Animations = append(s.Animations, a)
	return a
}

// Step advances all running animations by the given delta.
// Animations added while stepping first run at the next step.
func (s *Scheduler) Step(delta time.Duration) {
	running := slices.Clone(s.Animations)
	for _, a := range running {
		if a.Done {
			continue
		}
		a.Delta = delta
		a.Elapsed += delta
		a.Func(a)
	}
	s.Animations = slices.DeleteFunc(s.Animations, func(a *Animation) bool {
		return a.Done
	})
}

// Running returns the number of animations that are not done.
func (s *Scheduler) Running() int {
	n := 0
	for _, a := range s.Animations {
		if !a.Done {
			n++
		}
	}
	return n
}

// Settle steps the scheduler by step until no animations are running,
// or until max total time has passed. It returns the time stepped.
// It is mainly useful for tests and for headless hosts.
func (s *Scheduler) Settle(step, max time.Duration) time.Duration {
	var total time.Duration
	for s.Running() > 0 && total < max {
		s.Step(step)
		total += step
	}
	return total
}
