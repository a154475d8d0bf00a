// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/driver/windows"
)

type platform struct {

	// Windows is the cache of Win32 windows.
	Windows *cursors.Cache[windows.HWND]

	// Display is the display of the cache.
	Display *windows.Display
}

func (d *Driver) init() error {
	d.Display = windows.NewDisplay(windows.System{})
	d.Windows = d.Display.NewCache()
	d.addCache(d.Windows)
	cursors.SetEncoder(d.Display)
	return nil
}
