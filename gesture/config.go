// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"time"

	"cogentcore.org/swipe/base/errors"
)

// Config holds the tunables of the gesture engine. All values have fixed
// defaults from [DefaultConfig]; distances are in the surface's units.
type Config struct {

	// DirectionThreshold is the minimum per-sample movement that can change
	// the last intentional direction; smaller movements are noise.
	DirectionThreshold float32 `toml:"direction_threshold" yaml:"direction_threshold"`

	// CommitThreshold is the minimum cumulative movement for a release to
	// commit a navigation, and the movement at which the pointer capture
	// of the originating control is released.
	CommitThreshold float32 `toml:"commit_threshold" yaml:"commit_threshold"`

	// FadeDistance is the cumulative movement at which a fading
	// surface reaches zero opacity.
	FadeDistance float32 `toml:"fade_distance" yaml:"fade_distance"`

	// PhaseMs is the duration of the restore animation and of each phase
	// of a two phase slide, in milliseconds.
	PhaseMs int `toml:"phase_ms" yaml:"phase_ms"`

	// CarouselMinEnterMs is the minimum duration of the carousel
	// animation of the incoming item, in milliseconds.
	CarouselMinEnterMs int `toml:"carousel_min_enter_ms" yaml:"carousel_min_enter_ms"`

	// CarouselMinExitMs is the minimum duration of the carousel
	// animation of the outgoing item, in milliseconds.
	CarouselMinExitMs int `toml:"carousel_min_exit_ms" yaml:"carousel_min_exit_ms"`

	// WholeDelayMs is the start delay of the incoming item in the
	// whole-page carousel style, in milliseconds.
	WholeDelayMs int `toml:"whole_delay_ms" yaml:"whole_delay_ms"`

	// DistancePerMs is the travel distance per millisecond used to scale
	// carousel durations by distance.
	DistancePerMs float32 `toml:"distance_per_ms" yaml:"distance_per_ms"`

	// CompletionTolerance is how close an animated value must be to its
	// target for an exit animation to be complete.
	CompletionTolerance float32 `toml:"completion_tolerance" yaml:"completion_tolerance"`

	// ZoomTouchLimit is the number of touches tracked for pinch zoom.
	ZoomTouchLimit int `toml:"zoom_touch_limit" yaml:"zoom_touch_limit"`

	// ZoomDistanceThreshold is the minimum change of the distance between
	// the touches that emits a zoom step.
	ZoomDistanceThreshold float32 `toml:"zoom_distance_threshold" yaml:"zoom_distance_threshold"`
}

// DefaultConfig returns a new [Config] with the default values.
func DefaultConfig() *Config {
	return &Config{
		DirectionThreshold:    3,
		CommitThreshold:       30,
		FadeDistance:          300,
		PhaseMs:               150,
		CarouselMinEnterMs:    150,
		CarouselMinExitMs:     200,
		WholeDelayMs:          200,
		DistancePerMs:         5,
		CompletionTolerance:   1e-8,
		ZoomTouchLimit:        2,
		ZoomDistanceThreshold: 10,
	}
}

// Phase returns [Config.PhaseMs] as a duration.
func (c *Config) Phase() time.Duration {
	return millis(c.PhaseMs)
}

// WholeDelay returns [Config.WholeDelayMs] as a duration.
func (c *Config) WholeDelay() time.Duration {
	return millis(c.WholeDelayMs)
}

// ScaledDuration returns the duration of travelling the given distance
// at [Config.DistancePerMs], but at least minMs milliseconds.
func (c *Config) ScaledDuration(distance float32, minMs int) time.Duration {
	if distance < 0 {
		distance = -distance
	}
	d := time.Duration(float64(distance/c.DistancePerMs) * float64(time.Millisecond))
	return max(d, millis(minMs))
}

// Validate returns an error describing every invalid value, or nil.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("gesture.Config: %s must be positive, got %g", name, v))
		}
	}
	positive("direction_threshold", c.DirectionThreshold)
	positive("commit_threshold", c.CommitThreshold)
	positive("fade_distance", c.FadeDistance)
	positive("distance_per_ms", c.DistancePerMs)
	positive("zoom_distance_threshold", c.ZoomDistanceThreshold)
	if c.CompletionTolerance < 0 {
		errs = append(errs, fmt.Errorf("gesture.Config: completion_tolerance must not be negative, got %g", c.CompletionTolerance))
	}
	durations := []struct {
		name string
		ms   int
	}{
		{"phase_ms", c.PhaseMs},
		{"carousel_min_enter_ms", c.CarouselMinEnterMs},
		{"carousel_min_exit_ms", c.CarouselMinExitMs},
		{"whole_delay_ms", c.WholeDelayMs},
	}
	for _, d := range durations {
		if d.ms < 0 {
			errs = append(errs, fmt.Errorf("gesture.Config: %s must not be negative, got %d", d.name, d.ms))
		}
	}
	if c.ZoomTouchLimit < 2 {
		errs = append(errs, fmt.Errorf("gesture.Config: zoom_touch_limit must be at least 2, got %d", c.ZoomTouchLimit))
	}
	return errors.Join(errs...)
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
