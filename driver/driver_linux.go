// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !android

package driver

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/cursors"
	"cogentcore.org/cursors/driver/linux"
	"cogentcore.org/cursors/driver/wayland"
	"cogentcore.org/cursors/driver/x11"
	"cogentcore.org/cursors/xcursor"
	"github.com/jezek/xgb/xproto"
)

type platform struct {

	// X11 is the cache of X11 windows, if there is an X server.
	X11 *cursors.Cache[xproto.Window]

	// Wayland is the cache of Wayland pointers, if there is a compositor.
	Wayland *cursors.Cache[*wayland.Pointer]

	// WaylandConn is the connection of the Wayland cache. Pointers are
	// made with [wayland.NewWLPointer].
	WaylandConn *wayland.Conn

	// Encoder encodes custom cursors for both backends.
	Encoder *linux.Encoder

	// Theme is the theme built-in cursors are loaded from.
	Theme *xcursor.Theme
}

func (d *Driver) init() error {
	d.Theme = xcursor.NewTheme(d.Config.Theme, uint32(d.Config.Size))
	d.Encoder = &linux.Encoder{}

	xc, err := x11.Open(d.Config.Display, d.Theme)
	if err != nil {
		slog.Info("driver: no X11 cursors", "err", err)
	} else {
		d.onClose(xc.Close)
		d.Encoder.X11 = &x11.Encoder{Loader: xc}
		d.X11 = xc.NewCache()
		d.addCache(d.X11)
	}

	wc, err := wayland.Open(d.Theme)
	if err != nil {
		slog.Info("driver: no Wayland cursors", "err", err)
	} else {
		d.onClose(wc.Close)
		d.Encoder.Wayland = &wc.Encoder
		d.WaylandConn = wc
		d.Wayland = wc.NewCache()
		d.addCache(d.Wayland)
	}

	cursors.SetEncoder(d.Encoder)
	if d.Config.Watch && (d.X11 != nil || d.Wayland != nil) {
		d.watch(themeDirs(d.Theme))
	}
	return nil
}

// themeDirs returns the directories of the theme and of its cursors.
func themeDirs(t *xcursor.Theme) []string {
	var dirs []string
	for _, dir := range t.Dirs() {
		dirs = append(dirs, dir, filepath.Join(dir, "cursors"))
	}
	return dirs
}
