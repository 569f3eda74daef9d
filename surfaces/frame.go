// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfaces

import (
	"log/slog"
	"slices"

	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/gesture"
	"cogentcore.org/swipe/transition"
)

// Frame is a content frame that navigates between a list of targets
// when its content is swiped horizontally. The content fades as it is
// dragged, slides out, is swapped, and the new content slides in from
// the other side.
type Frame struct {
	Surface

	// Targets are the navigation targets, in order. They must be
	// comparable. Gestures are only enabled while the content is one
	// of them.
	Targets []any

	// Content is the current content.
	Content any

	// Extent is the distance the content slides out and in.
	Extent float32

	// Loop is whether the targets wrap around at both ends.
	Loop bool

	// OnNavigated is called after the content changes. It may be nil.
	OnNavigated func(content any)

	// OnAnimationDone is called when a slide transition completes.
	// It may be nil.
	OnAnimationDone func()

	// Transition is the last slide transition started, or nil.
	Transition *transition.Handle

	slide transition.Slide
}

// NewFrame returns a new frame with the given targets, animated by the
// given scheduler with the given config; nil values use defaults.
func NewFrame(sched *anim.Scheduler, cfg *gesture.Config, targets ...any) *Frame {
	fr := &Frame{Targets: targets, Extent: 300, Loop: true}
	fr.init(fr, sched, cfg)
	fr.slide = transition.Slide{Stage: fr, Config: fr.Config}
	return fr
}

// OnConfigurationChanged installs a new config.
func (fr *Frame) OnConfigurationChanged(cfg *gesture.Config) {
	if fr.setConfig(cfg) {
		fr.slide.Config = cfg
	}
}

// SetTargets sets the navigation targets.
func (fr *Frame) SetTargets(targets ...any) {
	fr.Targets = targets
}

// Navigate sets the content.
func (fr *Frame) Navigate(content any) {
	fr.Content = content
	slog.Debug("frame navigated", "content", content)
	if fr.OnNavigated != nil {
		fr.OnNavigated(content)
	}
}

// ShowDefault navigates to the first target if there is no content.
func (fr *Frame) ShowDefault() {
	if fr.Content != nil || len(fr.Targets) == 0 {
		return
	}
	fr.Navigate(fr.Targets[0])
}

// Index returns the index of the content in the targets, or -1.
func (fr *Frame) Index() int {
	if fr.Content == nil {
		return -1
	}
	return slices.Index(fr.Targets, fr.Content)
}

// Next returns the target after the content, if any.
func (fr *Frame) Next() (any, bool) {
	return fr.step(1)
}

// Previous returns the target before the content, if any.
func (fr *Frame) Previous() (any, bool) {
	return fr.step(-1)
}

func (fr *Frame) step(by int) (any, bool) {
	i := fr.Index()
	if i < 0 {
		return nil, false
	}
	n := len(fr.Targets)
	j := i + by
	if fr.Loop {
		j = (j + n) % n
	}
	if j < 0 || j >= n || j == i {
		return nil, false
	}
	return fr.Targets[j], true
}

// GestureEnabled returns whether the content is one of the targets.
func (fr *Frame) GestureEnabled() bool {
	return fr.Index() >= 0
}

// FadeOnDrag returns true: the frame content fades as it is dragged.
func (fr *Frame) FadeOnDrag() bool {
	return true
}

// Commit slides to the next target on [gesture.Advance] and to the
// previous one on [gesture.Retreat].
func (fr *Frame) Commit(o gesture.Outcome, s *gesture.Session) bool {
	var target any
	var ok bool
	if o == gesture.Advance {
		target, ok = fr.Next()
	} else {
		target, ok = fr.Previous()
	}
	if !ok {
		return false
	}
	t := fr.ActiveTransform()
	fr.Transition = fr.slide.Begin(t, s.Direction.Sign()*fr.Extent, func() {
		fr.Navigate(target)
	}, func() {
		if fr.OnAnimationDone != nil {
			fr.OnAnimationDone()
		}
	})
	return true
}

// Restore animates the content back to its position.
func (fr *Frame) Restore(s *gesture.Session) {
	fr.restore(fr.ActiveTransform(), 0)
}

// Listen registers the frame for pointer events on ls.
func (fr *Frame) Listen(ls *events.Listeners) []events.Handle {
	return listen(ls, fr.HandleEvent)
}
