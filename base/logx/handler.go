// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// NewHandler returns a text [slog.Handler] writing to w that filters
// records below [UserLevel] and colors the level by severity. Colors are
// only emitted when w is a terminal that supports them.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(out, lvl)).String())
			return a
		},
	})
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(out *termenv.Output, level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return out.Color("1")
	case level >= slog.LevelWarn:
		return out.Color("3")
	case level >= slog.LevelInfo:
		return out.Color("4")
	default:
		return out.Color("8")
	}
}

// SetDefaultLogger sets the default [slog] logger to one that
// writes to w using [NewHandler].
func SetDefaultLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}
