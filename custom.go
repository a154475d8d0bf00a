// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursors

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors/cursorimg"
)

// CustomCursor is a custom cursor image loaded into a native [Resource] of
// the current platform. It is an owner of a shared, reference counted
// resource: [CustomCursor.Clone] makes a new owner, and the native
// resource is released when the last owner calls [CustomCursor.Release].
// Owners that become unreachable without being released are released
// automatically by the garbage collector, but explicit release is
// strongly preferred since native cursors are a limited resource.
//
// Two owners are [CustomCursor.Equal] if they share the same resource,
// regardless of the pixels.
type CustomCursor struct {
	owner *owner
}

// owner is the per-owner release state, kept separate from the
// CustomCursor so that it can be passed to a runtime cleanup.
type owner struct {
	shared   *shared
	released atomic.Bool
}

// shared is the resource shared by all owners of one cursor.
type shared struct {
	res  Resource
	refs atomic.Int64
}

// NewCustomCursor returns a new [CustomCursor] that is the only owner of
// the given resource.
func NewCustomCursor(res Resource) *CustomCursor {
	s := &shared{res: res}
	s.refs.Store(1)
	return newOwner(s)
}

func newOwner(s *shared) *CustomCursor {
	o := &owner{shared: s}
	c := &CustomCursor{owner: o}
	runtime.AddCleanup(c, func(o *owner) {
		errors.Log(o.release())
	}, o)
	return c
}

func (o *owner) release() error {
	if !o.released.CompareAndSwap(false, true) {
		return nil
	}
	if o.shared.refs.Add(-1) != 0 {
		return nil
	}
	slog.Debug("cursors: releasing custom cursor resource", "resource", fmt.Sprintf("%T", o.shared.res))
	return o.shared.res.Release()
}

// Clone returns a new owner of the same resource. It panics if this
// owner has already been released, since the resource may be gone.
func (c *CustomCursor) Clone() *CustomCursor {
	if c.owner.released.Load() {
		panic("cursors: Clone of a released CustomCursor")
	}
	c.owner.shared.refs.Add(1)
	return newOwner(c.owner.shared)
}

// Release releases this owner. The native resource is released when this
// is the last owner, and any error from that is returned. Calling Release
// more than once on the same owner does nothing.
func (c *CustomCursor) Release() error {
	return c.owner.release()
}

// Released returns whether this owner has been released.
func (c *CustomCursor) Released() bool {
	return c.owner.released.Load()
}

// Resource returns the native resource of the cursor. It must not be used
// after the owner it was obtained from is released.
func (c *CustomCursor) Resource() Resource {
	return c.owner.shared.res
}

// Equal returns whether the two cursors share the same native resource.
func (c *CustomCursor) Equal(o *CustomCursor) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.owner.shared == o.owner.shared
}

// Refs returns the current number of unreleased owners of the resource.
func (c *CustomCursor) Refs() int {
	return int(c.owner.shared.refs.Load())
}

func (c *CustomCursor) String() string {
	return fmt.Sprintf("CustomCursor(%T, refs=%d)", c.owner.shared.res, c.Refs())
}

// FromRGBA returns a new [CustomCursor] made from the given 32 bits per
// pixel RGBA bytes, dimensions and hotspot, using the current [Encoder].
// The values are checked with [cursorimg.Validate] before any native call
// is made, so the returned error is one of the [cursorimg.BadCursor] errors.
// The rgba bytes are not modified or retained.
func FromRGBA(rgba []byte, width, height, hotspotX, hotspotY uint32) (*CustomCursor, error) {
	return FromCursorImage(&cursorimg.Image{Pix: rgba, Width: width, Height: height, HotspotX: hotspotX, HotspotY: hotspotY})
}

// FromImage returns a new [CustomCursor] made from the given image and
// hotspot. See [FromRGBA] for more information.
func FromImage(img image.Image, hotspot image.Point) (*CustomCursor, error) {
	ci, err := cursorimg.FromImage(img, hotspot)
	if err != nil {
		return nil, err
	}
	return FromCursorImage(ci)
}

// FromCursorImage returns a new [CustomCursor] made from the given cursor
// image. See [FromRGBA] for more information.
func FromCursorImage(img *cursorimg.Image) (*CustomCursor, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	e := CurrentEncoder()
	if e == nil {
		return NewCustomCursor(NoResource{}), nil
	}
	res, err := e.FromRGBA(img)
	if err != nil {
		if errors.Is(err, ErrBackendUnavailable) {
			return NewCustomCursor(NoResource{}), nil
		}
		var bc cursorimg.BadCursor
		if !errors.As(err, &bc) {
			slog.Error("cursors: encoder failed", "err", err)
			return nil, cursorimg.ErrOther
		}
		return nil, bc
	}
	return NewCustomCursor(res), nil
}
