// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package driver

import (
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/driver/web"
)

type platform struct {

	// Elements is the cache of HTML elements.
	Elements *cursors.Cache[*web.Element]

	// Body is the element of the document body.
	Body *web.Element

	// Display is the display of the cache.
	Display *web.Display
}

func (d *Driver) init() error {
	d.Display = web.NewDisplay(web.JSCanvas{})
	d.Elements = d.Display.NewCache()
	d.Body = web.BodyElement()
	d.addCache(d.Elements)
	cursors.SetEncoder(d.Display)
	return nil
}
