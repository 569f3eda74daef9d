// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"cogentcore.org/swipe/gesture"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func mouse(m *model, action tea.MouseAction, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

func settle(m *model) {
	m.sched.Settle(10*time.Millisecond, 5*time.Second)
}

func TestModelFrameSwipe(t *testing.T) {
	m := newModel(gesture.DefaultConfig(), 10)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "Home")

	mouse(m, tea.MouseActionPress, 40, 3)
	mouse(m, tea.MouseActionMotion, 36, 3)
	mouse(m, tea.MouseActionMotion, 30, 3)
	mouse(m, tea.MouseActionRelease, 30, 3)
	settle(m)
	assert.Equal(t, "Inbox", m.frame.Content)
	assert.Contains(t, m.View(), "Inbox")
}

func TestModelLeaveReleases(t *testing.T) {
	m := newModel(gesture.DefaultConfig(), 10)
	mouse(m, tea.MouseActionPress, 40, 3)
	mouse(m, tea.MouseActionMotion, 30, 3)
	mouse(m, tea.MouseActionMotion, 30, 12)
	assert.Nil(t, m.capture)
	assert.False(t, m.frame.Controller.Session.Active)
	settle(m)
	assert.Equal(t, "Inbox", m.frame.Content)
}

func TestModelCarouselAndDrawer(t *testing.T) {
	m := newModel(gesture.DefaultConfig(), 10)
	mouse(m, tea.MouseActionPress, 40, 10)
	mouse(m, tea.MouseActionMotion, 30, 10)
	mouse(m, tea.MouseActionRelease, 30, 10)
	settle(m)
	assert.Equal(t, 1, m.carousel.Selected)
	assert.Contains(t, m.View(), "○ ● ○")

	mouse(m, tea.MouseActionPress, 2, 16)
	mouse(m, tea.MouseActionMotion, 12, 16)
	mouse(m, tea.MouseActionRelease, 12, 16)
	settle(m)
	assert.True(t, m.drawer.Open)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	settle(m)
	assert.False(t, m.drawer.Open)
}

func TestModelConfig(t *testing.T) {
	m := newModel(gesture.DefaultConfig(), 10)
	cfg := gesture.DefaultConfig()
	cfg.CommitThreshold = 500
	m.Update(configMsg{cfg})
	mouse(m, tea.MouseActionPress, 40, 3)
	mouse(m, tea.MouseActionMotion, 30, 3)
	mouse(m, tea.MouseActionRelease, 30, 3)
	settle(m)
	assert.Equal(t, "Home", m.frame.Content)
}

func TestModelStyleKey(t *testing.T) {
	m := newModel(gesture.DefaultConfig(), 10)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Contains(t, m.View(), "Connected")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Contains(t, m.View(), "Whole")
}
