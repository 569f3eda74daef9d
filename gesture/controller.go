// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"log/slog"

	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/math32"
	"github.com/google/uuid"
)

// Controller is the drag gesture state machine of one surface. It turns
// pointer samples into movement of the host's active transform and, at
// release, into a commit or cancel decision carried out by the host.
type Controller struct {

	// Host is the surface driven by the controller.
	Host Host

	// Config holds the thresholds.
	Config *Config

	// Axis is the dimension of the gesture.
	Axis math32.Dims

	// State is the current state.
	State States

	// Session is the current gesture.
	Session Session
}

// NewController returns a new controller for the given host, using the
// given config, or [DefaultConfig] if it is nil.
func NewController(h Host, cfg *Config) *Controller {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Controller{Host: h, Config: cfg}
}

// SetAxis sets the dimension of the gesture. It is chosen once per
// configuration change and takes effect at the next press.
func (c *Controller) SetAxis(axis math32.Dims) {
	c.Axis = axis
}

// OnConfigurationChanged installs a new config, which takes effect at
// the next sample.
func (c *Controller) OnConfigurationChanged(cfg *Config) {
	c.Config = cfg
}

// HandleEvent dispatches a pointer event to the matching handler.
// Other event types are ignored.
func (c *Controller) HandleEvent(ev *events.Event) {
	switch ev.Type {
	case events.PointerDown:
		c.Press(ev)
	case events.PointerMove:
		c.Move(ev)
	case events.PointerUp:
		c.Up()
	case events.PointerLeave:
		c.Leave(ev)
	}
}

// Press starts a gesture at the position of ev.
func (c *Controller) Press(ev *events.Event) {
	if !c.Host.GestureEnabled() {
		return
	}
	s := &c.Session
	s.Reset()
	s.Active = true
	s.ID = uuid.New()
	s.Start = ev.Where
	s.Reference = ev.Where

	// the value of an in-flight animation becomes the new baseline
	if old := c.Host.ActiveTransform(); old != nil {
		c.Host.SetActiveTransform(old.Snapshot())
	}
	s.Nested.Begin(ev.Origin, c.Axis)
	c.State = Pressed
	if ph, ok := c.Host.(PressHook); ok {
		ph.GesturePressed(s)
	}
	slog.Debug("gesture pressed", "session", s.ID, "where", ev.Where, "nested", s.Nested.View != nil)
}

// Move handles one movement sample.
func (c *Controller) Move(ev *events.Event) {
	s := &c.Session
	if !s.Active || !ev.ButtonDown {
		return
	}
	delta := ev.Where.Dim(c.Axis) - s.Reference.Dim(c.Axis)
	if s.Nested.Forward(delta, s.Dragging) {
		s.Reference = ev.Where
		c.State = ScrollForwarding
		return
	}
	c.State = Dragging
	if df, ok := c.Host.(DragFilter); ok && !df.AllowDrag(s.Cumulative+delta) {
		return
	}
	s.Cumulative += delta
	if !s.CaptureReleased && math32.Abs(s.Cumulative) >= c.Config.CommitThreshold && ev.ReleaseCapture() {
		s.CaptureReleased = true
	}
	if t := c.Host.ActiveTransform(); t != nil {
		t.Move(delta)
	}
	if delta != 0 {
		s.Dragging = true
	}
	s.Direction = UpdateDirection(s.Direction, delta, c.Config.DirectionThreshold)
	if f, ok := c.Host.(Fader); ok && f.FadeOnDrag() {
		f.SetOpacity(math32.Max(0, 1-math32.Abs(s.Cumulative)/c.Config.FadeDistance))
	}
	s.Reference = ev.Where
	slog.Debug("gesture moved", "session", s.ID, "delta", delta, "cumulative", s.Cumulative, "direction", s.Direction)
}

// Up handles the release of the pointer.
func (c *Controller) Up() {
	c.release()
}

// Leave handles the pointer leaving the surface, which releases the
// gesture unless the host reports a false leave.
func (c *Controller) Leave(ev *events.Event) {
	if !c.Session.Active {
		return
	}
	if lf, ok := c.Host.(LeaveFilter); ok && lf.IgnoreLeave(ev.Where) {
		return
	}
	c.release()
}

// release decides between commit and cancel. The session is always
// reset, whatever the host does.
func (c *Controller) release() {
	s := &c.Session
	if !s.Active {
		return
	}
	c.State = Releasing
	defer func() {
		s.Reset()
		c.State = Idle
	}()

	o := Decide(s.Cumulative, s.Direction, c.Config.CommitThreshold)
	if o != Cancel && c.Host.Commit(o, s) {
		slog.Info("gesture committed", "session", s.ID, "outcome", o, "cumulative", s.Cumulative)
		return
	}
	slog.Debug("gesture canceled", "session", s.ID, "outcome", o, "cumulative", s.Cumulative, "direction", s.Direction)
	c.Host.Restore(s)
}
