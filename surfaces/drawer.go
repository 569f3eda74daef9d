// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfaces

import (
	"log/slog"

	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/gesture"
	"cogentcore.org/swipe/transition"
)

// Drawer is a host of a side drawer that is opened by swiping toward
// the inside and closed by swiping back. The offset of the drawer is 0
// when it is open and -Width when it is closed.
type Drawer struct {
	Surface

	// Width is the width of the drawer.
	Width float32

	// Open is whether the drawer is open.
	Open bool

	// SwipeEnabled is whether swiping opens and closes the drawer.
	SwipeEnabled bool

	// OnOpenChanged is called when the open state changes. It may be nil.
	OnOpenChanged func(open bool)

	// Transition is the last toggle transition started, or nil.
	Transition *transition.Handle

	toggle transition.Toggle
}

// NewDrawer returns a new closed drawer of the given width, with
// swiping enabled.
func NewDrawer(sched *anim.Scheduler, cfg *gesture.Config, width float32) *Drawer {
	dr := &Drawer{Width: width, SwipeEnabled: true}
	dr.init(dr, sched, cfg)
	dr.toggle = transition.Toggle{Config: dr.Config}
	dr.transform.Set(dr.rest())
	return dr
}

// OnConfigurationChanged installs a new config.
func (dr *Drawer) OnConfigurationChanged(cfg *gesture.Config) {
	if dr.setConfig(cfg) {
		dr.toggle.Config = cfg
	}
}

// rest returns the resting offset for the current open state.
func (dr *Drawer) rest() float32 {
	if dr.Open {
		return 0
	}
	return -dr.Width
}

// SetOpen opens or closes the drawer with an animation.
func (dr *Drawer) SetOpen(open bool) {
	if dr.Open != open {
		dr.Open = open
		slog.Info("drawer toggled", "open", open)
		if dr.OnOpenChanged != nil {
			dr.OnOpenChanged(open)
		}
	}
	dr.Transition = dr.toggle.Begin(dr.ActiveTransform(), dr.rest(), dr.ActiveTransform, nil)
}

// GestureEnabled returns whether swiping is enabled.
func (dr *Drawer) GestureEnabled() bool {
	return dr.SwipeEnabled && dr.Width > 0
}

// AllowDrag keeps the drawer between its closed and open offsets.
func (dr *Drawer) AllowDrag(cumulative float32) bool {
	if dr.Open {
		return cumulative <= 0 && cumulative > -dr.Width
	}
	return cumulative >= 0 && cumulative < dr.Width
}

// Commit closes the drawer on [gesture.Advance] and opens it on
// [gesture.Retreat].
func (dr *Drawer) Commit(o gesture.Outcome, s *gesture.Session) bool {
	dr.SetOpen(o == gesture.Retreat)
	return true
}

// Restore animates the drawer back to the offset of its current state.
func (dr *Drawer) Restore(s *gesture.Session) {
	dr.Transition = dr.toggle.Begin(dr.ActiveTransform(), dr.rest(), dr.ActiveTransform, nil)
}

// Listen registers the drawer for pointer events on ls.
func (dr *Drawer) Listen(ls *events.Listeners) []events.Handle {
	return listen(ls, dr.HandleEvent)
}
