// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := fs.ErrPermission
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 5, Log1(5, err))
	assert.Equal(t, 6, Log1(6, nil))
}

func TestJoin(t *testing.T) {
	err := Join(fs.ErrNotExist, fs.ErrClosed)
	assert.True(t, Is(err, fs.ErrNotExist))
	assert.True(t, Is(err, fs.ErrClosed))
	assert.False(t, Is(err, fs.ErrPermission))
	assert.NoError(t, Join(nil, nil))
}
