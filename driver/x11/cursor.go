// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x11 implements cursors for the X Window System using the
// Render extension through github.com/jezek/xgb.
package x11

import (
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
	"github.com/jezek/xgb/xproto"
)

// Loader loads cursor images into cursors on an X server.
// It is implemented by [Conn].
type Loader interface {
	LoadImage(img *Image) (xproto.Cursor, error)
	FreeCursor(id xproto.Cursor) error
}

// XCursor is implemented by resources that have an X11 cursor.
// The bool is false if the resource has none.
type XCursor interface {
	XCursor() (xproto.Cursor, bool)
}

// Cursor is an X11 cursor [cursors.Resource].
type Cursor struct {
	ID     xproto.Cursor
	loader Loader
	once   sync.Once
}

// NewCursor returns a new [Cursor] for the given cursor id, which is
// freed with the given loader on release.
func NewCursor(id xproto.Cursor, loader Loader) *Cursor {
	return &Cursor{ID: id, loader: loader}
}

func (c *Cursor) XCursor() (xproto.Cursor, bool) {
	return c.ID, true
}

// Release frees the cursor on the server.
func (c *Cursor) Release() error {
	var err error
	c.once.Do(func() {
		err = c.loader.FreeCursor(c.ID)
	})
	return err
}

// Encoder is the X11 [cursors.Encoder].
type Encoder struct {

	// Loader is the connection the cursors are loaded into.
	// The encoder is unavailable if it is nil.
	Loader Loader
}

// FromRGBA implements [cursors.Encoder].
func (e *Encoder) FromRGBA(img *cursorimg.Image) (cursors.Resource, error) {
	if e == nil || e.Loader == nil {
		return nil, cursors.ErrBackendUnavailable
	}
	xi, err := NewImage(img)
	if err != nil {
		return nil, err
	}
	return e.Load(xi)
}

// Load loads the given image into a new [Cursor].
func (e *Encoder) Load(xi *Image) (*Cursor, error) {
	if e == nil || e.Loader == nil {
		return nil, cursors.ErrBackendUnavailable
	}
	id, err := e.Loader.LoadImage(xi)
	if err != nil {
		var bc cursorimg.BadCursor
		if errors.As(err, &bc) {
			return nil, bc
		}
		return nil, cursorimg.NewOSError("x11 LoadImage", err)
	}
	return NewCursor(id, e.Loader), nil
}
