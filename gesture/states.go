// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

// States are the states of a [Controller].
type States int32

const (
	// Idle is when no press is in progress.
	Idle States = iota

	// Pressed is after a press, before any movement has been handled.
	Pressed

	// ScrollForwarding is when movement goes to a nested scrollable region.
	ScrollForwarding

	// Dragging is when movement drives the outer gesture.
	Dragging

	// Releasing is while the commit or cancel decision is carried out.
	Releasing
)

var statesNames = [...]string{"Idle", "Pressed", "ScrollForwarding", "Dragging", "Releasing"}

// String returns the name of the state.
func (st States) String() string {
	if st < 0 || int(st) >= len(statesNames) {
		return "States(?)"
	}
	return statesNames[st]
}
