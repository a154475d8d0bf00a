// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"github.com/pelletier/go-toml/v2"
)

// Config is the configuration of a [Driver].
type Config struct {

	// Theme is the name of the Xcursor theme that built-in cursors
	// are loaded from on X11 and Wayland.
	Theme string `default:"default"`

	// Size is the nominal size of theme cursors, in pixels.
	Size int `default:"24"`

	// Display is the X11 display to connect to.
	Display string

	// Watch is whether to reload built-in cursors when the files of
	// the theme change.
	Watch bool `default:"true"`
}

// DefaultConfig returns a new [Config] with the default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	return cfg
}

// OpenConfig returns the default [Config] updated with the given TOML
// file, if it exists, and then with [Config.ApplyEnv].
func OpenConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		defer f.Close()
		if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
			return nil, fmt.Errorf("driver: config %s: %w", filename, err)
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv updates the config from the XCURSOR_THEME and XCURSOR_SIZE
// environment variables, and sets an empty display from DISPLAY.
func (c *Config) ApplyEnv() {
	if theme := os.Getenv("XCURSOR_THEME"); theme != "" {
		c.Theme = theme
	}
	if size := os.Getenv("XCURSOR_SIZE"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil || n <= 0 {
			slog.Warn("driver: ignoring invalid XCURSOR_SIZE", "value", size)
		} else {
			c.Size = n
		}
	}
	if c.Display == "" {
		c.Display = os.Getenv("DISPLAY")
	}
}
