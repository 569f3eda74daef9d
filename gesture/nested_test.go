// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"testing"

	"cogentcore.org/swipe/math32"
	"github.com/stretchr/testify/assert"
)

type testNode struct {
	parent Node
}

func (n *testNode) NodeParent() Node { return n.parent }

type testScroller struct {
	testNode
	offset, max float32
}

func (sc *testScroller) ScrollOffset(dim math32.Dims) float32    { return sc.offset }
func (sc *testScroller) MaxScrollOffset(dim math32.Dims) float32 { return sc.max }

func (sc *testScroller) ScrollTo(dim math32.Dims, offset float32) {
	sc.offset = math32.Clamp(offset, 0, sc.max)
}

func TestFindScrollable(t *testing.T) {
	sc := &testScroller{max: 100}
	mid := &testNode{parent: sc}
	leaf := &testNode{parent: mid}
	assert.Same(t, sc, FindScrollable(leaf))
	assert.Same(t, sc, FindScrollable(sc))
	assert.Nil(t, FindScrollable(&testNode{}))
	assert.Nil(t, FindScrollable("not a node"))
	assert.Nil(t, FindScrollable(nil))
}

func TestNestedDisabled(t *testing.T) {
	var ns NestedScroll
	assert.False(t, ns.Begin(&testNode{}, math32.X))
	assert.False(t, ns.Forward(-5, false))

	flat := &testScroller{max: 0}
	assert.False(t, ns.Begin(&testNode{parent: flat}, math32.X))
	assert.False(t, ns.Forward(-5, false))
}

func TestNestedEdges(t *testing.T) {
	var ns NestedScroll

	// at the start edge a negative delta scrolls inward
	sc := &testScroller{max: 100}
	ns.Begin(sc, math32.X)
	assert.True(t, ns.Forward(-5, false))
	assert.Equal(t, float32(5), sc.offset)

	// at the start edge a positive delta goes to the outer gesture
	sc = &testScroller{max: 100}
	ns.Begin(sc, math32.X)
	assert.False(t, ns.Forward(5, false))
	assert.Equal(t, float32(0), sc.offset)

	// at the end edge a positive delta scrolls back inward
	sc = &testScroller{offset: 100, max: 100}
	ns.Begin(sc, math32.X)
	assert.True(t, ns.Forward(5, false))
	assert.Equal(t, float32(95), sc.offset)

	// at the end edge a negative delta goes to the outer gesture
	sc = &testScroller{offset: 100, max: 100}
	ns.Begin(sc, math32.X)
	assert.False(t, ns.Forward(-5, false))

	// interior offsets always scroll
	sc = &testScroller{offset: 40, max: 100}
	ns.Begin(sc, math32.X)
	assert.True(t, ns.Forward(10, false))
	assert.Equal(t, float32(30), sc.offset)
}

func TestNestedSticky(t *testing.T) {
	var ns NestedScroll
	sc := &testScroller{max: 100}
	ns.Begin(sc, math32.X)
	assert.True(t, ns.Forward(-5, false))
	assert.True(t, ns.Forwarding)

	// scrolling back to the start edge keeps forwarding even where
	// the edge rule alone would hand over to the outer gesture
	assert.True(t, ns.Forward(50, false))
	assert.Equal(t, float32(0), sc.offset)
	assert.True(t, ns.Forward(20, false))
	assert.True(t, ns.Forwarding)

	ns.Reset()
	assert.False(t, ns.Forwarding)
	assert.Nil(t, ns.View)
}

func TestNestedBypassedWhenDragging(t *testing.T) {
	var ns NestedScroll
	sc := &testScroller{offset: 50, max: 100}
	ns.Begin(sc, math32.X)
	assert.False(t, ns.Forward(10, true))
	assert.Equal(t, float32(50), sc.offset)
}
