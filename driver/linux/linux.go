// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linux combines the X11 and Wayland cursor backends, since a
// program on Linux may have windows on either kind of connection.
package linux

import (
	"log/slog"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
	"cogentcore.org/cursors/driver/wayland"
	"cogentcore.org/cursors/driver/x11"
	"github.com/jezek/xgb/xproto"
)

// Cursor is a [cursors.Resource] with an X11 cursor, a Wayland buffer,
// or both.
type Cursor struct {
	X11     *x11.Cursor
	Wayland *wayland.Buffer

	once sync.Once
}

// XCursor implements [x11.XCursor].
func (c *Cursor) XCursor() (xproto.Cursor, bool) {
	if c.X11 == nil {
		return 0, false
	}
	return c.X11.ID, true
}

// WaylandBuffer implements [wayland.WaylandBuffer].
func (c *Cursor) WaylandBuffer() (*wayland.Buffer, bool) {
	return c.Wayland, c.Wayland != nil
}

// Release releases both resources.
func (c *Cursor) Release() error {
	var errs []error
	c.once.Do(func() {
		if c.X11 != nil {
			errs = append(errs, c.X11.Release())
		}
		if c.Wayland != nil {
			errs = append(errs, c.Wayland.Release())
		}
	})
	return errors.Join(errs...)
}

// Encoder is the Linux [cursors.Encoder]. Either backend may be nil.
type Encoder struct {
	X11     *x11.Encoder
	Wayland *wayland.Encoder
}

// FromRGBA implements [cursors.Encoder]. The pixels are swapped to BGRA
// once for both backends. A missing or failing X11 backend is logged and
// skipped, while a failing Wayland backend is an error. Without either
// backend, the result is [cursors.NoResource].
func (e *Encoder) FromRGBA(img *cursorimg.Image) (cursors.Resource, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	hasX11 := e.X11 != nil && e.X11.Loader != nil
	hasWayland := e.Wayland != nil && e.Wayland.Shm != nil
	if !hasX11 && !hasWayland {
		return cursors.NoResource{}, nil
	}
	bgra := img.BGRA()
	c := &Cursor{}
	if hasX11 {
		xc, err := e.fromX11(bgra, img)
		if err != nil {
			slog.Warn("linux: skipping X11 cursor", "err", err)
		} else {
			c.X11 = xc
		}
	}
	if hasWayland {
		wb, err := e.Wayland.FromBGRA(bgra, img.Width, img.Height, img.HotspotX, img.HotspotY)
		if err != nil {
			if c.X11 != nil {
				errors.Log(c.X11.Release())
			}
			return nil, err
		}
		c.Wayland = wb
	}
	if c.X11 == nil && c.Wayland == nil {
		return cursors.NoResource{}, nil
	}
	return c, nil
}

func (e *Encoder) fromX11(bgra []byte, img *cursorimg.Image) (*x11.Cursor, error) {
	xi, err := x11.NewImageBGRA(bgra, img.Width, img.Height, img.HotspotX, img.HotspotY)
	if err != nil {
		return nil, err
	}
	return e.X11.Load(xi)
}
