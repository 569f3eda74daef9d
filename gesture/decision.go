// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import "cogentcore.org/swipe/math32"

// Outcome is the decision taken when a gesture is released.
type Outcome int32

const (
	// Cancel restores the pre-gesture visual state.
	Cancel Outcome = iota

	// Advance moves to the next item or page; it results from a drag
	// toward decreasing coordinates.
	Advance

	// Retreat moves to the previous item or page; it results from a drag
	// toward increasing coordinates.
	Retreat
)

var outcomeNames = [...]string{"Cancel", "Advance", "Retreat"}

// String returns the name of the outcome.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "Outcome(?)"
	}
	return outcomeNames[o]
}

// Decide returns the outcome for a release after the given cumulative
// movement with the given stable direction. Movements below threshold
// cancel, as do releases whose last intentional direction disagrees with
// the sign of the movement (a fast snap back).
func Decide(cumulative float32, dir Direction, threshold float32) Outcome {
	switch {
	case math32.Abs(cumulative) < threshold:
		return Cancel
	case cumulative < 0 && dir == Right:
		return Cancel
	case cumulative > 0 && dir == Left:
		return Cancel
	case cumulative < 0:
		return Advance
	default:
		return Retreat
	}
}
