// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !((linux && !android) || windows || (darwin && !ios) || js)

package driver

import (
	"log/slog"

	"cogentcore.org/cursors"
)

type platform struct{}

// init leaves the platform without backends, so custom cursors are
// created with [cursors.NoResource].
func (d *Driver) init() error {
	slog.Info("driver: no cursor backend on this platform")
	cursors.SetEncoder(nil)
	return nil
}
