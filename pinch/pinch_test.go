// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinch

import (
	"testing"

	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/math32"
	"github.com/stretchr/testify/assert"
)

func newTestTracker() (*Tracker, *[]Zoom) {
	var zooms []Zoom
	tr := NewTracker(2, 10, func(z Zoom) { zooms = append(zooms, z) })
	return tr, &zooms
}

func TestPinchIn(t *testing.T) {
	tr, zooms := newTestTracker()
	tr.Down(1, math32.Vec2(0, 0))
	assert.Equal(t, float32(0), tr.Distance)
	tr.Down(2, math32.Vec2(100, 0))
	assert.Equal(t, float32(100), tr.Distance)

	tr.Move(2, math32.Vec2(80, 0))
	assert.Equal(t, []Zoom{{In: true, Focus: math32.Vec2(40, 0)}}, *zooms)
	assert.Equal(t, float32(80), tr.Distance)
}

func TestPinchOut(t *testing.T) {
	tr, zooms := newTestTracker()
	tr.Down(1, math32.Vec2(0, 0))
	tr.Down(2, math32.Vec2(0, 100))
	tr.Move(1, math32.Vec2(0, -20))
	assert.Equal(t, []Zoom{{In: false, Focus: math32.Vec2(0, 40)}}, *zooms)
	assert.Equal(t, float32(120), tr.Distance)
}

func TestPinchBelowThreshold(t *testing.T) {
	tr, zooms := newTestTracker()
	tr.Down(1, math32.Vec2(0, 0))
	tr.Down(2, math32.Vec2(100, 0))
	tr.Move(2, math32.Vec2(95, 0))
	tr.Move(2, math32.Vec2(91, 0))
	assert.Empty(t, *zooms)
	assert.Equal(t, float32(100), tr.Distance)
	// the change is measured from the last step, not the last sample
	tr.Move(2, math32.Vec2(90, 0))
	assert.Len(t, *zooms, 1)
}

func TestPinchExtraTouches(t *testing.T) {
	tr, zooms := newTestTracker()
	tr.Down(1, math32.Vec2(0, 0))
	tr.Move(1, math32.Vec2(50, 0))
	assert.Equal(t, math32.Vec2(0, 0), tr.first())
	tr.Down(2, math32.Vec2(100, 0))
	tr.Down(3, math32.Vec2(500, 0))
	assert.Equal(t, 2, tr.Touches.Len())
	tr.Move(3, math32.Vec2(0, 0))
	assert.Empty(t, *zooms)
	assert.Equal(t, float32(100), tr.Distance)
}

func TestPinchUpClears(t *testing.T) {
	tr, zooms := newTestTracker()
	tr.Down(1, math32.Vec2(0, 0))
	tr.Down(2, math32.Vec2(100, 0))
	tr.Up(1)
	assert.Equal(t, 0, tr.Touches.Len())
	assert.Equal(t, float32(0), tr.Distance)
	tr.Move(2, math32.Vec2(10, 0))
	assert.Empty(t, *zooms)

	tr.Down(3, math32.Vec2(0, 0))
	tr.Down(4, math32.Vec2(50, 0))
	tr.Leave(4)
	assert.Equal(t, 0, tr.Touches.Len())
}

func TestPinchEvents(t *testing.T) {
	tr, zooms := newTestTracker()
	tr.HandleEvent(events.NewTouch(events.TouchStart, 7, math32.Vec2(0, 0)))
	tr.HandleEvent(events.NewTouch(events.TouchStart, 8, math32.Vec2(100, 0)))
	tr.HandleEvent(events.NewPointer(events.PointerMove, math32.Vec2(0, 0)))
	tr.HandleEvent(events.NewTouch(events.TouchMove, 8, math32.Vec2(200, 0)))
	assert.Equal(t, []Zoom{{In: false, Focus: math32.Vec2(100, 0)}}, *zooms)
	tr.HandleEvent(events.NewTouch(events.TouchEnd, 8, math32.Vec2(200, 0)))
	assert.Equal(t, 0, tr.Touches.Len())
}
