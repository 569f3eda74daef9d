// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfaces

import (
	"cogentcore.org/swipe/base/errors"
	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/gesture"
	"cogentcore.org/swipe/math32"
	"cogentcore.org/swipe/pinch"
)

// Zoomer is a chart that can zoom around a point.
type Zoomer interface {

	// ZoomIn zooms in around focus.
	ZoomIn(focus math32.Vector2)

	// ZoomOut zooms out around focus.
	ZoomOut(focus math32.Vector2)
}

// touchTypes are the event types that drive the pinch gesture.
var touchTypes = []events.Types{events.TouchStart, events.TouchMove, events.TouchEnd, events.TouchLeave}

// Chart adds pinch to zoom to a [Zoomer].
type Chart struct {

	// Zoomer is the chart that is zoomed.
	Zoomer Zoomer

	// Tracker tracks the touches.
	Tracker *pinch.Tracker

	listeners *events.Listeners
	handles   []events.Handle
}

// NewChart returns a new chart zooming z, with pinch disabled,
// listening on ls.
func NewChart(z Zoomer, cfg *gesture.Config, ls *events.Listeners) *Chart {
	if cfg == nil {
		cfg = gesture.DefaultConfig()
	}
	ch := &Chart{Zoomer: z, listeners: ls}
	ch.Tracker = pinch.NewTracker(cfg.ZoomTouchLimit, cfg.ZoomDistanceThreshold, ch.zoom)
	return ch
}

func (ch *Chart) zoom(z pinch.Zoom) {
	if z.In {
		ch.Zoomer.ZoomIn(z.Focus)
	} else {
		ch.Zoomer.ZoomOut(z.Focus)
	}
}

// PinchEnabled returns whether pinch to zoom is enabled.
func (ch *Chart) PinchEnabled() bool {
	return len(ch.handles) > 0
}

// SetPinchEnabled installs or removes the touch listeners.
func (ch *Chart) SetPinchEnabled(on bool) {
	if on == ch.PinchEnabled() {
		return
	}
	if !on {
		for _, h := range ch.handles {
			ch.listeners.Remove(h)
		}
		ch.handles = nil
		ch.Tracker.Reset()
		return
	}
	for _, typ := range touchTypes {
		ch.handles = append(ch.handles, ch.listeners.Add(typ, ch.Tracker.HandleEvent))
	}
}

// OnConfigurationChanged installs the pinch tunables of cfg.
func (ch *Chart) OnConfigurationChanged(cfg *gesture.Config) {
	if cfg == nil || errors.Log(cfg.Validate()) != nil {
		return
	}
	ch.Tracker.Limit = cfg.ZoomTouchLimit
	ch.Tracker.Threshold = cfg.ZoomDistanceThreshold
	ch.Tracker.Reset()
}
