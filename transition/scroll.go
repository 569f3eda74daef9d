// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"log/slog"

	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/gesture"
)

// Scroll is the transition of a carousel to a new selection. The incoming
// item animates by the travel distance, after which the carousel scroll
// position is synchronized and the item transforms reset.
type Scroll struct {

	// Config holds the durations and the completion tolerance.
	Config *gesture.Config

	// Delay is whether the incoming item waits before moving,
	// so that the outgoing item leaves first.
	Delay bool

	// Shared is whether all items share one transform, in which case
	// there is no separate exit animation of the outgoing item.
	Shared bool
}

// Begin starts the transition. The incoming transform in animates to
// distance; current returns the transform currently installed on the
// incoming item, and sync is called once the animation completes on a
// transform that is still current. When in is nil, sync is called
// immediately and Begin returns nil. The outgoing transform out, when
// not nil and not shared, animates to exit.
func (sc *Scroll) Begin(in, out *anim.Transform, distance, exit float32, current func() *anim.Transform, sync func()) *Handle {
	if in == nil {
		slog.Debug("carousel item not realized, scrolling without animation")
		sync()
		return nil
	}
	h := newHandle(in, distance, current)
	tol := sc.Config.CompletionTolerance
	tw := anim.Tween{
		To:       distance,
		Duration: sc.Config.ScaledDuration(distance, sc.Config.CarouselMinEnterMs),
		Changed: func(v float32) {
			if h.Finished || !reached(v, distance, tol) || h.Stale() {
				return
			}
			h.Finished = true
			sync()
		},
	}
	if sc.Delay {
		tw.Delay = sc.Config.WholeDelay()
	}
	in.AnimateTo(tw)
	if !sc.Shared && out != nil && out != in {
		h.Entered = true
		out.AnimateTo(anim.Tween{
			To:       exit,
			Duration: sc.Config.ScaledDuration(exit, sc.Config.CarouselMinExitMs),
			Easing:   anim.CubicOut,
		})
	}
	slog.Debug("carousel scroll started", "in", in, "distance", distance, "out", out, "exit", exit)
	return h
}
