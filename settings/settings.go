// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings loads and saves the gesture configuration as TOML
// or YAML, and watches the file for changes.
package settings

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/swipe/base/errors"
	"cogentcore.org/swipe/gesture"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the default location of the settings file.
const DefaultPath = "~/.config/swipe/settings.toml"

// Expand expands a leading ~ in path to the home directory.
func Expand(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return path, fmt.Errorf("settings: %w", err)
	}
	return p, nil
}

// isYAML returns whether path names a YAML file; all other files are TOML.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func unmarshal(path string, b []byte, cfg *gesture.Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(b, cfg)
	}
	return toml.Unmarshal(b, cfg)
}

func marshal(path string, cfg *gesture.Config) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(cfg)
	}
	return toml.Marshal(cfg)
}

// Load reads the config from the file at path. Settings missing
// from the file keep their defaults, and a missing file gives the
// default config. A config that fails validation is replaced with the
// defaults, and the validation error is returned with them.
func Load(path string) (*gesture.Config, error) {
	cfg := gesture.DefaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("settings: reading %s: %w", path, err)
	}
	if err := unmarshal(path, b, cfg); err != nil {
		return gesture.DefaultConfig(), fmt.Errorf("settings: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return gesture.DefaultConfig(), fmt.Errorf("settings: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the file at path, creating its directory.
func Save(path string, cfg *gesture.Config) error {
	b, err := marshal(path, cfg)
	if err != nil {
		return fmt.Errorf("settings: encoding: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("settings: writing %s: %w", path, err)
	}
	return nil
}
