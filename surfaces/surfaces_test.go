// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfaces

import (
	"testing"
	"time"

	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/gesture"
	"cogentcore.org/swipe/math32"
	"github.com/stretchr/testify/assert"
)

type surface interface {
	HandleEvent(ev *events.Event)
}

// drag presses at from, moves through the given positions along x and
// releases, all at the given y.
func drag(s surface, y, from float32, to ...float32) {
	s.HandleEvent(events.NewPointer(events.PointerDown, math32.Vec2(from, y)))
	for _, x := range to {
		s.HandleEvent(events.NewPointer(events.PointerMove, math32.Vec2(x, y)))
	}
	s.HandleEvent(events.NewPointer(events.PointerUp, math32.Vec2(to[len(to)-1], y)))
}

func settle(sf *Surface) {
	sf.Scheduler.Settle(10*time.Millisecond, 5*time.Second)
}

func TestOnConfigurationChanged(t *testing.T) {
	fr := NewFrame(nil, nil, "A")
	old := fr.Config
	bad := gesture.DefaultConfig()
	bad.CommitThreshold = -1
	fr.OnConfigurationChanged(bad)
	assert.Same(t, old, fr.Config)
	assert.Same(t, old, fr.Controller.Config)

	cfg := gesture.DefaultConfig()
	cfg.CommitThreshold = 60
	fr.OnConfigurationChanged(cfg)
	assert.Same(t, cfg, fr.Config)
	assert.Same(t, cfg, fr.Controller.Config)
	assert.Same(t, cfg, fr.slide.Config)
}

func TestListen(t *testing.T) {
	ls := &events.Listeners{}
	fr := NewFrame(nil, nil, "A", "B")
	fr.ShowDefault()
	hs := fr.Listen(ls)
	assert.Len(t, hs, 4)
	ls.Call(events.NewPointer(events.PointerDown, math32.Vec2(100, 0)))
	ls.Call(events.NewPointer(events.PointerMove, math32.Vec2(50, 0)))
	assert.Equal(t, float32(-50), fr.Offset())
	ls.Call(events.NewPointer(events.PointerUp, math32.Vec2(50, 0)))
	settle(&fr.Surface)
	assert.Equal(t, "B", fr.Content)
	for _, h := range hs {
		assert.True(t, ls.Remove(h))
	}
	assert.Equal(t, 0, ls.Len(events.PointerDown))
}
