// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/swipe/base/errors"
	"cogentcore.org/swipe/gesture"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes.
type Watcher struct {

	// Path is the config file.
	Path string

	// Func is called with the reloaded config.
	Func func(cfg *gesture.Config)

	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the config file at path. The directory of
// the file is watched, so that the file may be created or replaced
// after the watch starts. Changes are delivered by [Watcher.Run].
func NewWatcher(path string, fn func(cfg *gesture.Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	path = filepath.Clean(path)
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("settings: watching %s: %w", path, err)
	}
	return &Watcher{Path: path, Func: fn, watcher: fw}, nil
}

// Run delivers changes until ctx is done, and then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.Path)
			if errors.Log(err) != nil {
				continue
			}
			slog.Info("settings reloaded", "path", w.Path)
			w.Func(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("settings watcher", "err", err)
		}
	}
}

// Watch calls fn with the reloaded config whenever the file at path
// changes, until ctx is done. It blocks, so it is typically called in
// a separate goroutine.
func Watch(ctx context.Context, path string, fn func(cfg *gesture.Config)) error {
	w, err := NewWatcher(path, fn)
	if err != nil {
		return err
	}
	w.Run(ctx)
	return nil
}
