// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import "cogentcore.org/swipe/math32"

// Node is an element of the host's visual tree, used to walk up from
// the origin of a press to the nearest scrollable region.
type Node interface {

	// NodeParent returns the parent node, or nil at the root.
	NodeParent() Node
}

// Scrollable is a region of the host that scrolls its content
// along the given dimension.
type Scrollable interface {

	// ScrollOffset returns the current scroll offset, in [0, MaxScrollOffset].
	ScrollOffset(dim math32.Dims) float32

	// MaxScrollOffset returns the scrollable extent; 0 means the content fits.
	MaxScrollOffset(dim math32.Dims) float32

	// ScrollTo scrolls to the given offset, which the region clamps.
	ScrollTo(dim math32.Dims, offset float32)
}

// FindScrollable returns the nearest [Scrollable] at or above origin,
// or nil if there is none. The origin must be a [Node] for its
// ancestors to be searched.
func FindScrollable(origin any) Scrollable {
	for origin != nil {
		if sc, ok := origin.(Scrollable); ok {
			return sc
		}
		nd, ok := origin.(Node)
		if !ok {
			return nil
		}
		parent := nd.NodeParent()
		if parent == nil {
			return nil
		}
		origin = parent
	}
	return nil
}

// NestedScroll decides, for one gesture, whether movement goes to a
// scrollable region nested in the surface instead of the outer gesture.
type NestedScroll struct {

	// View is the nested region for the current gesture, or nil when
	// disambiguation is disabled for it.
	View Scrollable

	// Dim is the dimension along which the gesture and region scroll.
	Dim math32.Dims

	// Forwarding is whether movement has been forwarded to View during
	// this gesture. Once set it stays set until [NestedScroll.Reset].
	Forwarding bool
}

// Begin arms the disambiguator for a gesture pressed on origin. It is
// disabled when no scrollable region contains origin or when the nearest
// one has nothing to scroll. It returns whether it is enabled.
func (ns *NestedScroll) Begin(origin any, dim math32.Dims) bool {
	ns.Reset()
	ns.Dim = dim
	sc := FindScrollable(origin)
	if sc == nil || sc.MaxScrollOffset(dim) == 0 {
		return false
	}
	ns.View = sc
	return true
}

// Forward decides whether the sample moving by delta goes to the nested
// region, and scrolls the region by -delta if so. It never forwards once
// the outer gesture is dragging.
func (ns *NestedScroll) Forward(delta float32, dragging bool) bool {
	if ns.View == nil || dragging {
		return false
	}
	off := ns.View.ScrollOffset(ns.Dim)
	mx := ns.View.MaxScrollOffset(ns.Dim)
	if !ns.Forwarding &&
		!(off != 0 && off != mx) &&
		!(off == 0 && delta < 0) &&
		!(off == mx && delta > 0) {
		return false
	}
	ns.View.ScrollTo(ns.Dim, off-delta)
	ns.Forwarding = true
	return true
}

// Reset clears the region and the forwarding state.
func (ns *NestedScroll) Reset() {
	ns.View = nil
	ns.Forwarding = false
}
