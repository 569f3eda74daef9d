// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import "cogentcore.org/swipe/math32"

// Direction is the last intentional direction of a drag along the
// gesture axis. Left also stands for up on a vertical axis.
type Direction int32

const (
	// Left is toward decreasing coordinates.
	Left Direction = iota

	// Right is toward increasing coordinates.
	Right
)

// String returns the name of the direction.
func (d Direction) String() string {
	if d == Right {
		return "Right"
	}
	return "Left"
}

// Sign returns 1 for [Right] and -1 for [Left].
func (d Direction) Sign() float32 {
	if d == Right {
		return 1
	}
	return -1
}

// UpdateDirection returns the stable direction after a sample moving by
// delta. Samples smaller than threshold are noise and keep prev; a zero
// delta never changes the direction.
func UpdateDirection(prev Direction, delta, threshold float32) Direction {
	if delta == 0 || math32.Abs(delta) < threshold {
		return prev
	}
	if delta > 0 {
		return Right
	}
	return Left
}
