// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package macos implements cursors for AppKit as NSCursor objects.
package macos

import (
	"sync"

	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
)

// ID is an Objective-C object pointer.
type ID uintptr

// AppKit is the subset of AppKit used for cursors. It is implemented
// with the Objective-C runtime on macOS, and by fakes in tests.
type AppKit interface {

	// NewCursor returns a new retained NSCursor with the given RGBA
	// pixels and hotspot, in points from the top-left corner.
	NewCursor(rgba []byte, width, height int, hotspotX, hotspotY float64) (ID, error)

	// SystemCursor returns the shared NSCursor returned by the
	// class method with the given selector, such as "arrowCursor".
	SystemCursor(selector string) (ID, error)

	// Set makes the given NSCursor the current cursor.
	Set(cursor ID) error

	// Release releases an object returned by NewCursor.
	Release(obj ID)
}

// NSCursor is implemented by resources that have an NSCursor.
type NSCursor interface {
	NSCursor() ID
}

// Cursor is an AppKit cursor [cursors.Resource]. Cursors made from
// images are released on release; shared system cursors are not.
type Cursor struct {
	ID ID

	ak     AppKit
	shared bool
	once   sync.Once
}

func (c *Cursor) NSCursor() ID {
	return c.ID
}

// Release releases the NSCursor unless it is a shared system cursor.
func (c *Cursor) Release() error {
	if c.shared {
		return nil
	}
	c.once.Do(func() {
		c.ak.Release(c.ID)
	})
	return nil
}

// Encoder is the AppKit [cursors.Encoder].
type Encoder struct {
	AppKit AppKit
}

// FromRGBA implements [cursors.Encoder]. The pixels are used in RGBA
// order, and the hotspot is not flipped since NSCursor hotspots are
// relative to the top-left corner.
func (e *Encoder) FromRGBA(img *cursorimg.Image) (cursors.Resource, error) {
	if e == nil || e.AppKit == nil {
		return nil, cursors.ErrBackendUnavailable
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	id, err := e.AppKit.NewCursor(img.Pix, int(img.Width), int(img.Height), float64(img.HotspotX), float64(img.HotspotY))
	if err != nil {
		return nil, cursorimg.NewOSError("NSCursor initWithImage:hotSpot:", err)
	}
	return &Cursor{ID: id, ak: e.AppKit}, nil
}
