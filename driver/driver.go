// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver opens the cursor backends of the current platform and
// sets the encoder used by [cursors.FromRGBA].
package driver

import (
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
)

// Cache is the part of a [cursors.Cache] that does not depend on the
// window type.
type Cache interface {
	Register(key uint64, cur *cursors.CustomCursor) error
	Unregister(key uint64) (bool, error)
	ResetBuiltIns() error
	Close() error
}

// Driver holds the open cursor backends of the platform, with one cache
// per backend. The platform caches are the exported fields of the
// embedded platform struct.
type Driver struct {
	platform

	// Config is the configuration the driver was opened with.
	Config *Config

	mu      sync.Mutex
	caches  []Cache
	closers []func() error
	watcher *ThemeWatcher
	closed  bool
}

// Init opens the cursor backends of the platform with the given config,
// or [DefaultConfig] if it is nil, and sets the current encoder of
// [cursors]. Backends that are not available are skipped.
func Init(cfg *Config) (*Driver, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	d := &Driver{Config: cfg}
	if err := d.init(); err != nil {
		errors.Log(d.Close())
		return nil, err
	}
	return d, nil
}

func (d *Driver) addCache(c Cache) {
	d.mu.Lock()
	d.caches = append(d.caches, c)
	d.mu.Unlock()
}

// onClose adds a function that is called on close after the caches
// are closed.
func (d *Driver) onClose(f func() error) {
	d.mu.Lock()
	d.closers = append(d.closers, f)
	d.mu.Unlock()
}

// Caches returns the caches of the open backends.
func (d *Driver) Caches() []Cache {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Cache(nil), d.caches...)
}

// RegisterCustomCursor registers the given cursor with the given key in
// the cache of every backend.
func (d *Driver) RegisterCustomCursor(key uint64, cur *cursors.CustomCursor) error {
	var errs []error
	for _, c := range d.Caches() {
		errs = append(errs, c.Register(key, cur))
	}
	return errors.Join(errs...)
}

// UnregisterCustomCursor removes the cursor with the given key from the
// cache of every backend.
func (d *Driver) UnregisterCustomCursor(key uint64) error {
	var errs []error
	for _, c := range d.Caches() {
		_, err := c.Unregister(key)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ResetBuiltIns reloads the built-in cursors of every backend.
func (d *Driver) ResetBuiltIns() error {
	var errs []error
	for _, c := range d.Caches() {
		errs = append(errs, c.ResetBuiltIns())
	}
	return errors.Join(errs...)
}

// Close stops watching the theme, closes the caches and then the
// backends, and unsets the current encoder.
func (d *Driver) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	watcher, caches, closers := d.watcher, d.caches, d.closers
	d.watcher, d.caches, d.closers = nil, nil, nil
	d.mu.Unlock()

	var errs []error
	if watcher != nil {
		errs = append(errs, watcher.Close())
	}
	for _, c := range caches {
		errs = append(errs, c.Close())
	}
	for _, f := range closers {
		errs = append(errs, f())
	}
	cursors.SetEncoder(nil)
	return errors.Join(errs...)
}

// watch reloads the built-in cursors whenever the given directories
// change.
func (d *Driver) watch(dirs []string) {
	if len(dirs) == 0 {
		return
	}
	w, err := NewThemeWatcher(dirs, func() {
		errors.Log(d.ResetBuiltIns())
	})
	if errors.Log(err) != nil {
		return
	}
	d.mu.Lock()
	d.watcher = w
	d.mu.Unlock()
}
