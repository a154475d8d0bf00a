// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ThemeWatcher calls a function whenever a file in a set of cursor
// theme directories is created, written, removed, or renamed.
type ThemeWatcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
	once sync.Once
}

// NewThemeWatcher starts watching the given directories, calling fn from
// a separate goroutine on each change. Directories that can not be
// watched are logged and skipped.
func NewThemeWatcher(dirs []string, fn func()) (*ThemeWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			slog.Warn("driver: not watching cursor theme directory", "dir", dir, "err", err)
		}
	}
	tw := &ThemeWatcher{w: w, done: make(chan struct{})}
	go tw.run(fn)
	return tw, nil
}

func (tw *ThemeWatcher) run(fn func()) {
	defer close(tw.done)
	for {
		select {
		case event, ok := <-tw.w.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				slog.Debug("driver: cursor theme changed", "file", event.Name)
				fn()
			}
		case err, ok := <-tw.w.Errors:
			if !ok {
				return
			}
			slog.Error("driver: watching cursor theme", "err", err)
		}
	}
}

// Close stops watching and waits for the last call of the function
// to return.
func (tw *ThemeWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		err = tw.w.Close()
		<-tw.done
	})
	return err
}
