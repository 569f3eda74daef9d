// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pinch tracks two touches on a surface and reports discrete
// zoom steps as the distance between them changes.
package pinch

import (
	"fmt"
	"log/slog"

	"cogentcore.org/swipe/base/ordmap"
	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/math32"
)

// Zoom is one zoom step.
type Zoom struct {

	// In is whether the step zooms in. The touches moving
	// closer together zoom in.
	In bool

	// Focus is the midpoint of the first two touches.
	Focus math32.Vector2
}

func (z Zoom) String() string {
	dir := "out"
	if z.In {
		dir = "in"
	}
	return fmt.Sprintf("Zoom %s at %v", dir, z.Focus)
}

// Tracker tracks the touches on a surface and emits a [Zoom] whenever
// the distance between the first two changes by at least Threshold.
// Touches beyond Limit are ignored.
type Tracker struct {

	// Limit is the number of touches tracked.
	Limit int

	// Threshold is the minimum change of distance that emits a zoom step.
	Threshold float32

	// OnZoom is called for every zoom step. It may be nil.
	OnZoom func(z Zoom)

	// Touches are the tracked touches, in the order they went down.
	Touches ordmap.Map[events.Sequence, math32.Vector2]

	// Distance is the distance between the first two touches at the
	// last zoom step, or when the last touch was added.
	Distance float32
}

// NewTracker returns a new tracker with the given limit and threshold.
func NewTracker(limit int, threshold float32, onZoom func(z Zoom)) *Tracker {
	return &Tracker{Limit: limit, Threshold: threshold, OnZoom: onZoom}
}

// Down adds a touch, unless the tracker is full. The distance
// starts being tracked once the tracker becomes full.
func (tr *Tracker) Down(id events.Sequence, pos math32.Vector2) {
	if tr.Touches.Len() >= tr.Limit || tr.Touches.Has(id) {
		return
	}
	tr.Touches.Add(id, pos)
	if tr.Touches.Len() < tr.Limit {
		return
	}
	tr.Distance = tr.span()
	slog.Debug("pinch started", "distance", tr.Distance)
}

// Move updates a tracked touch, emitting a zoom step when the distance
// has changed enough. Moves are ignored until the tracker is full.
func (tr *Tracker) Move(id events.Sequence, pos math32.Vector2) {
	if tr.Touches.Len() < tr.Limit || !tr.Touches.Has(id) {
		return
	}
	tr.Touches.Add(id, pos)
	d := tr.span()
	diff := tr.Distance - d
	if math32.Abs(diff) < tr.Threshold {
		return
	}
	tr.Distance = d
	z := Zoom{In: diff > 0, Focus: tr.first().Midpoint(tr.second())}
	slog.Debug("pinch zoom", "zoom", z, "distance", d)
	if tr.OnZoom != nil {
		tr.OnZoom(z)
	}
}

// Up ends the pinch: all touches are cleared.
func (tr *Tracker) Up(id events.Sequence) {
	tr.Reset()
}

// Leave ends the pinch like [Tracker.Up].
func (tr *Tracker) Leave(id events.Sequence) {
	tr.Reset()
}

// Reset clears all touches and the distance.
func (tr *Tracker) Reset() {
	tr.Touches.Reset()
	tr.Distance = 0
}

// HandleEvent dispatches a touch event to the matching method.
// Other event types are ignored.
func (tr *Tracker) HandleEvent(ev *events.Event) {
	switch ev.Type {
	case events.TouchStart:
		tr.Down(ev.Sequence, ev.Where)
	case events.TouchMove:
		tr.Move(ev.Sequence, ev.Where)
	case events.TouchEnd:
		tr.Up(ev.Sequence)
	case events.TouchLeave:
		tr.Leave(ev.Sequence)
	}
}

func (tr *Tracker) first() math32.Vector2 {
	return tr.Touches.ValueByIndex(0)
}

func (tr *Tracker) second() math32.Vector2 {
	return tr.Touches.ValueByIndex(1)
}

func (tr *Tracker) span() float32 {
	return tr.first().DistanceTo(tr.second())
}
