// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command swipedemo is a terminal demo of the gesture engine: drag with
// the mouse to slide between pages, page through a carousel, and swipe
// a drawer open and closed.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/swipe/base/errors"
	"cogentcore.org/swipe/base/logx"
	"cogentcore.org/swipe/gesture"
	"cogentcore.org/swipe/settings"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", settings.DefaultPath, "settings file, TOML or YAML")
	logPath := pflag.String("log", "swipedemo.log", "log file")
	scale := pflag.Float32("scale", 10, "gesture units per terminal cell")
	vv := pflag.Bool("vv", false, "log every gesture sample")
	v := pflag.BoolP("verbose", "v", false, "log gesture decisions")
	q := pflag.BoolP("quiet", "q", false, "only log errors")
	pflag.Parse()

	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	if err := run(*configPath, *logPath, *scale); err != nil {
		fmt.Fprintln(os.Stderr, "swipedemo:", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, scale float32) error {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()
	logx.SetDefaultLogger(f)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	path, err := settings.Expand(configPath)
	if err != nil {
		return err
	}
	m := newModel(errors.Log1(settings.Load(path)), scale)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	go func() {
		errors.Log(settings.Watch(ctx, path, func(cfg *gesture.Config) {
			p.Send(configMsg{cfg})
		}))
	}()
	slog.Info("swipedemo started", "config", path, "scale", scale)
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
