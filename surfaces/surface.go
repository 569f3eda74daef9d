// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surfaces provides the gesture-enabled surfaces: a [Frame] that
// slides between pages, a [Carousel] of items, a [Drawer] that is swiped
// open and closed, and a [Chart] that zooms on pinch.
//
// Surfaces do not render. A host feeds them normalized pointer and touch
// events, steps their [anim.Scheduler] on every frame, and draws the
// content at the current transform values and opacity.
package surfaces

import (
	"log/slog"

	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/base/errors"
	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/gesture"
	"cogentcore.org/swipe/math32"
)

// pointerTypes are the event types that drive the drag gesture.
var pointerTypes = []events.Types{events.PointerDown, events.PointerMove, events.PointerUp, events.PointerLeave}

// Surface is the state shared by the drag-driven surfaces.
type Surface struct {

	// Config holds the gesture tunables.
	Config *gesture.Config

	// Scheduler runs the animations of the surface.
	Scheduler *anim.Scheduler

	// Controller is the drag gesture state machine.
	Controller *gesture.Controller

	// Size is the size of the surface.
	Size math32.Vector2

	// Opacity is the opacity of the content.
	Opacity float32

	transform *anim.Transform
}

func (sf *Surface) init(h gesture.Host, sched *anim.Scheduler, cfg *gesture.Config) {
	if sched == nil {
		sched = &anim.Scheduler{}
	}
	if cfg == nil {
		cfg = gesture.DefaultConfig()
	}
	sf.Config = cfg
	sf.Scheduler = sched
	sf.Controller = gesture.NewController(h, cfg)
	sf.Opacity = 1
	sf.transform = anim.NewTransform(sched, 0)
}

// ActiveTransform returns the transform that positions the content.
func (sf *Surface) ActiveTransform() *anim.Transform {
	return sf.transform
}

// SetActiveTransform replaces the transform that positions the content.
func (sf *Surface) SetActiveTransform(t *anim.Transform) {
	sf.transform = t
}

// SetOpacity sets the opacity of the content.
func (sf *Surface) SetOpacity(opacity float32) {
	sf.Opacity = opacity
}

// Offset returns the current offset of the content along the gesture axis.
func (sf *Surface) Offset() float32 {
	if sf.transform == nil {
		return 0
	}
	return sf.transform.Get()
}

// HandleEvent passes a pointer event to the gesture controller.
func (sf *Surface) HandleEvent(ev *events.Event) {
	sf.Controller.HandleEvent(ev)
}

// setConfig installs cfg if it is valid, logging the problems otherwise.
func (sf *Surface) setConfig(cfg *gesture.Config) bool {
	if cfg == nil || errors.Log(cfg.Validate()) != nil {
		return false
	}
	sf.Config = cfg
	sf.Controller.OnConfigurationChanged(cfg)
	return true
}

// restore animates t back to rest and clears the fade.
func (sf *Surface) restore(t *anim.Transform, rest float32) {
	sf.SetOpacity(1)
	if t == nil {
		return
	}
	t.AnimateTo(anim.Tween{To: rest, Duration: sf.Config.Phase(), Easing: anim.CubicOut})
	slog.Debug("restoring", "transform", t, "rest", rest)
}

// listen registers handle for the pointer event types on ls.
func listen(ls *events.Listeners, handle func(ev *events.Event)) []events.Handle {
	hs := make([]events.Handle, len(pointerTypes))
	for i, typ := range pointerTypes {
		hs[i] = ls.Add(typ, handle)
	}
	return hs
}
