// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"testing"
	"time"

	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStage struct {
	sched    anim.Scheduler
	active   *anim.Transform
	opacity  float32
	opacities []float32
}

func newTestStage(v float32) *testStage {
	st := &testStage{opacity: 1}
	st.active = anim.NewTransform(&st.sched, v)
	return st
}

func (st *testStage) ActiveTransform() *anim.Transform     { return st.active }
func (st *testStage) SetActiveTransform(t *anim.Transform) { st.active = t }

func (st *testStage) SetOpacity(o float32) {
	st.opacity = o
	st.opacities = append(st.opacities, o)
}

func TestSlide(t *testing.T) {
	st := newTestStage(-40)
	sl := &Slide{Stage: st, Config: gesture.DefaultConfig()}
	swapped, finished := 0, 0
	exit := st.active
	h := sl.Begin(exit, -300, func() {
		swapped++
		assert.Equal(t, float32(-300), exit.Get())
	}, func() { finished++ })
	assert.Equal(t, float32(-300), h.ExitTarget)
	assert.Same(t, exit, h.Owner)
	assert.False(t, h.Stale())

	st.sched.Step(75 * time.Millisecond)
	assert.Equal(t, 0, swapped)
	assert.InDelta(t, -170, exit.Get(), 1e-3)
	assert.InDelta(t, 1-170.0/300, st.opacity, 1e-4)

	st.sched.Step(75 * time.Millisecond)
	assert.Equal(t, 1, swapped)
	assert.True(t, h.Entered)
	require.NotSame(t, exit, st.active)
	assert.Same(t, st.active, h.Owner)
	assert.Equal(t, float32(300), st.active.Get())
	assert.Equal(t, float32(0), st.opacity)
	assert.Greater(t, st.active.ID(), exit.ID())

	st.sched.Step(75 * time.Millisecond)
	assert.InDelta(t, 150, st.active.Get(), 1e-3)
	assert.InDelta(t, 0.5, st.opacity, 1e-4)
	assert.Equal(t, 0, finished)

	st.sched.Settle(10*time.Millisecond, time.Second)
	assert.Equal(t, float32(0), st.active.Get())
	assert.Equal(t, float32(1), st.opacity)
	assert.Equal(t, 1, swapped)
	assert.Equal(t, 1, finished)
	assert.True(t, h.Finished)
}

func TestSlideInterruptedDuringExit(t *testing.T) {
	st := newTestStage(-40)
	sl := &Slide{Stage: st, Config: gesture.DefaultConfig()}
	swapped, finished := 0, 0
	exit := st.active
	h := sl.Begin(exit, -300, func() { swapped++ }, func() { finished++ })
	st.sched.Step(50 * time.Millisecond)
	opacity := st.opacity

	// a new press installs a snapshot of the exit transform
	st.active = exit.Snapshot()
	assert.True(t, h.Stale())
	st.sched.Settle(10*time.Millisecond, time.Second)
	assert.Equal(t, float32(-300), exit.Get())
	assert.Equal(t, 0, swapped)
	assert.Equal(t, 0, finished)
	assert.Equal(t, opacity, st.opacity)
	assert.False(t, h.Entered)
}

func TestSlideInterruptedDuringEntrance(t *testing.T) {
	st := newTestStage(0)
	sl := &Slide{Stage: st, Config: gesture.DefaultConfig()}
	finished := 0
	sl.Begin(st.active, 300, nil, func() { finished++ })
	st.sched.Step(150 * time.Millisecond)
	entrance := st.active
	assert.Equal(t, float32(-300), entrance.Get())
	st.sched.Step(50 * time.Millisecond)

	st.active = entrance.Snapshot()
	st.sched.Settle(10*time.Millisecond, time.Second)
	assert.Equal(t, 0, finished)
	assert.InDelta(t, -200, st.active.Get(), 1e-3)
}

func TestScroll(t *testing.T) {
	var sched anim.Scheduler
	in := anim.NewTransform(&sched, 0)
	out := anim.NewTransform(&sched, -40)
	cur := in
	synced := 0
	sc := &Scroll{Config: gesture.DefaultConfig(), Delay: true}
	h := sc.Begin(in, out, -1000, -500, func() *anim.Transform { return cur }, func() { synced++ })
	require.NotNil(t, h)
	assert.True(t, h.Entered)

	// the incoming item waits 200ms, then travels 1000 in 200ms
	sched.Step(200 * time.Millisecond)
	assert.Equal(t, float32(0), in.Get())
	assert.Less(t, out.Get(), float32(-40))
	sched.Step(100 * time.Millisecond)
	assert.InDelta(t, -500, in.Get(), 1e-3)
	assert.Equal(t, float32(-500), out.Get())
	sched.Step(100 * time.Millisecond)
	assert.Equal(t, float32(-1000), in.Get())
	assert.Equal(t, 1, synced)
	assert.True(t, h.Finished)
	sched.Settle(10*time.Millisecond, time.Second)
	assert.Equal(t, 1, synced)
}

func TestScrollMinimumDurations(t *testing.T) {
	var sched anim.Scheduler
	in := anim.NewTransform(&sched, 0)
	out := anim.NewTransform(&sched, 0)
	synced := 0
	sc := &Scroll{Config: gesture.DefaultConfig()}
	sc.Begin(in, out, 100, 100, func() *anim.Transform { return in }, func() { synced++ })
	sched.Step(149 * time.Millisecond)
	assert.Equal(t, 0, synced)
	assert.Less(t, out.Get(), float32(100))
	sched.Step(time.Millisecond)
	assert.Equal(t, 1, synced)
	assert.Less(t, out.Get(), float32(100))
	sched.Step(50 * time.Millisecond)
	assert.Equal(t, float32(100), out.Get())
}

func TestScrollShared(t *testing.T) {
	var sched anim.Scheduler
	shared := anim.NewTransform(&sched, -40)
	synced := 0
	sc := &Scroll{Config: gesture.DefaultConfig(), Shared: true}
	h := sc.Begin(shared, shared, -300, -300, func() *anim.Transform { return shared }, func() { synced++ })
	assert.False(t, h.Entered)
	sched.Settle(10*time.Millisecond, time.Second)
	assert.Equal(t, float32(-300), shared.Get())
	assert.Equal(t, 1, synced)
}

func TestScrollStale(t *testing.T) {
	var sched anim.Scheduler
	in := anim.NewTransform(&sched, 0)
	cur := in
	synced := 0
	sc := &Scroll{Config: gesture.DefaultConfig()}
	h := sc.Begin(in, nil, 300, 0, func() *anim.Transform { return cur }, func() { synced++ })
	sched.Step(50 * time.Millisecond)
	cur = in.Snapshot()
	sched.Settle(10*time.Millisecond, time.Second)
	assert.True(t, h.Stale())
	assert.Equal(t, 0, synced)
}

func TestScrollSuperseded(t *testing.T) {
	var sched anim.Scheduler
	in := anim.NewTransform(&sched, 0)
	synced := 0
	sc := &Scroll{Config: gesture.DefaultConfig()}
	h := sc.Begin(in, nil, 300, 0, func() *anim.Transform { return in }, func() { synced++ })
	sched.Step(50 * time.Millisecond)
	assert.False(t, h.Stale())
	h.Supersede()
	sched.Settle(10*time.Millisecond, time.Second)
	assert.True(t, h.Stale())
	assert.False(t, h.Finished)
	assert.Equal(t, 0, synced)

	var none *Handle
	none.Supersede()
}

func TestScrollUnrealized(t *testing.T) {
	synced := 0
	sc := &Scroll{Config: gesture.DefaultConfig()}
	h := sc.Begin(nil, nil, 300, 300, nil, func() { synced++ })
	assert.Nil(t, h)
	assert.Equal(t, 1, synced)
}

func TestToggle(t *testing.T) {
	var sched anim.Scheduler
	tr := anim.NewTransform(&sched, -120)
	done := 0
	tg := &Toggle{Config: gesture.DefaultConfig()}
	h := tg.Begin(tr, 0, func() *anim.Transform { return tr }, func() { done++ })
	sched.Step(75 * time.Millisecond)
	// ease-out covers more than half the way in half the time
	assert.Greater(t, tr.Get(), float32(-60))
	assert.Equal(t, 0, done)
	sched.Settle(10*time.Millisecond, time.Second)
	assert.Equal(t, float32(0), tr.Get())
	assert.Equal(t, 1, done)
	assert.True(t, h.Finished)
}

func TestFade(t *testing.T) {
	assert.Equal(t, float32(1), fade(0, -300))
	assert.Equal(t, float32(0), fade(-300, -300))
	assert.Equal(t, float32(1), fade(10, 0))
	assert.Equal(t, float32(1), fade(30, -300))
}
