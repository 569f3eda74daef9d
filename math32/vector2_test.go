// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.True(t, Vector2{}.IsZero())

	v := Vec2(-1, 3)
	assert.Equal(t, float32(3), v.Dim(Y))
	assert.Equal(t, float32(-1), v.Dim(X))
	assert.Equal(t, "(-1, 3)", v.String())
	assert.Equal(t, "Y", Y.String())
	assert.Panics(t, func() { v.Dim(Dims(5)) })
}

func TestVector2Distance(t *testing.T) {
	a := Vec2(0, 0)
	b := Vec2(100, 0)
	assert.Equal(t, float32(100), a.DistanceTo(b))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, Vec2(40, 0), a.Midpoint(Vec2(80, 0)))
	assert.True(t, Vec2(2, 2).In(Vec2(3, 3)))
	assert.False(t, Vec2(3, 2).In(Vec2(3, 3)))
	assert.False(t, Vec2(-1, 2).In(Vec2(3, 3)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(float32(-3), 0, 10))
	assert.Equal(t, 10, Clamp(12, 0, 10))
	assert.Equal(t, 4, Clamp(4, 0, 10))
}
