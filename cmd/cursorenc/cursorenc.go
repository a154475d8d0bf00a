// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cursorenc encodes image files as CSS cursor values and
// Xcursor files.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/cursors/cursorenc"
)

func main() {
	opts := cli.DefaultOptions("cursorenc", "Cursorenc encodes image files as CSS cursor values and Xcursor files.")
	cli.Run(opts, &cursorenc.Config{}, cursorenc.CSS, cursorenc.Xcursor)
}
