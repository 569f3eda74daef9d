// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/gesture"
)

// Toggle is the single phase transition of a drawer to its resting
// position for a new open state. There is no content swap.
type Toggle struct {

	// Config holds the phase duration.
	Config *gesture.Config
}

// Begin animates t to rest with an ease-out cubic. The done function,
// if not nil, is called when t reaches rest while it is still current.
func (tg *Toggle) Begin(t *anim.Transform, rest float32, current func() *anim.Transform, done func()) *Handle {
	h := newHandle(t, rest, current)
	h.Entered = true
	t.AnimateTo(anim.Tween{
		To:       rest,
		Duration: tg.Config.Phase(),
		Easing:   anim.CubicOut,
		Changed: func(v float32) {
			if h.Finished || v != rest || h.Stale() {
				return
			}
			h.Finished = true
			if done != nil {
				done()
			}
		},
	})
	return h
}
