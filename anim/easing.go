// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float32) float32

// Linear is the identity easing.
func Linear(t float32) float32 {
	return t
}

// CubicOut decelerates to zero velocity: 1 - (1-t)^3.
func CubicOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}
