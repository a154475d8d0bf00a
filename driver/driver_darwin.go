// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin && !ios

package driver

import (
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/driver/macos"
)

type platform struct {

	// Windows is the cache of AppKit windows.
	Windows *cursors.Cache[*macos.Window]

	// Display is the display of the cache.
	Display *macos.Display
}

func (d *Driver) init() error {
	rt, err := macos.NewRuntime()
	if err != nil {
		return err
	}
	d.Display = macos.NewDisplay(rt)
	d.Windows = d.Display.NewCache()
	d.addCache(d.Windows)
	cursors.SetEncoder(d.Display)
	return nil
}
