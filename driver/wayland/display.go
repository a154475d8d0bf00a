// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wayland

import (
	"fmt"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/xcursor"
)

// Surface is a wl_surface used to show a cursor.
type Surface interface {
	Attach(buf WLBuffer, x, y int32) error
	Damage(x, y, width, height int32) error
	Commit() error
	Destroy() error
}

// Compositor creates surfaces. It is a wl_compositor.
type Compositor interface {
	CreateSurface() (Surface, error)
}

// PointerProto is a wl_pointer. A nil surface hides the cursor.
type PointerProto interface {
	SetCursor(serial uint32, surface Surface, hotspotX, hotspotY int32) error
}

// Pointer is the cursor target of a [Display]: a pointer of a seat, with
// the serial of its latest enter event, which set_cursor requests must
// carry. There is one Pointer per seat pointer, shared by the windows
// (surfaces) it enters.
type Pointer struct {
	Proto PointerProto

	mu      sync.Mutex
	serial  uint32
	surface Surface
}

// NewPointer returns a new [Pointer] for the given wl_pointer.
func NewPointer(p PointerProto) *Pointer {
	return &Pointer{Proto: p}
}

// Enter records the serial of a pointer enter event. The cursor should be
// applied again after it, with [cursors.Cache.Reapply].
func (p *Pointer) Enter(serial uint32) {
	p.mu.Lock()
	p.serial = serial
	p.mu.Unlock()
}

// Serial returns the serial of the latest enter event.
func (p *Pointer) Serial() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.serial
}

// Display is the [cursors.Display] of a Wayland connection.
type Display struct {
	Encoder
	Compositor Compositor

	// Theme is the Xcursor theme built-in cursors are loaded from.
	Theme *xcursor.Theme
}

// BuiltIn implements [cursors.Display] by loading the cursor from the
// theme into a new buffer. [cursors.None] is a blank buffer.
func (d *Display) BuiltIn(shape cursors.Cursor) (cursors.Resource, error) {
	if shape == cursors.None {
		return d.FromBGRA(make([]byte, 4), 1, 1, 0, 0)
	}
	if d.Theme == nil {
		return nil, fmt.Errorf("wayland: no cursor theme for %v", shape)
	}
	img, err := d.Theme.LoadCursor(shape)
	if err != nil && shape != cursors.Arrow {
		errors.Log(err)
		img, err = d.Theme.LoadCursor(cursors.Arrow)
	}
	if err != nil {
		return nil, err
	}
	return d.FromBGRA(img.BGRA(), img.Width, img.Height, img.XHot, img.YHot)
}

// Apply implements [cursors.Display] by attaching the buffer of the
// resource to the cursor surface of the pointer and setting it as the
// cursor. Resources without a buffer hide the cursor.
func (d *Display) Apply(p *Pointer, res cursors.Resource) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	wb, ok := res.(WaylandBuffer)
	var buf *Buffer
	if ok {
		buf, ok = wb.WaylandBuffer()
	}
	if !ok {
		return p.Proto.SetCursor(p.serial, nil, 0, 0)
	}
	if p.surface == nil {
		s, err := d.Compositor.CreateSurface()
		if err != nil {
			return fmt.Errorf("wayland: create cursor surface: %w", err)
		}
		p.surface = s
	}
	if err := p.surface.Attach(buf.WL, 0, 0); err != nil {
		return err
	}
	if err := p.surface.Damage(0, 0, int32(buf.Width), int32(buf.Height)); err != nil {
		return err
	}
	if err := p.surface.Commit(); err != nil {
		return err
	}
	return p.Proto.SetCursor(p.serial, p.surface, int32(buf.HotspotX), int32(buf.HotspotY))
}

// ReleasePointer destroys the cursor surface of the pointer.
func (d *Display) ReleasePointer(p *Pointer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.surface == nil {
		return nil
	}
	err := p.surface.Destroy()
	p.surface = nil
	return err
}

// NewCache returns a new cursor cache for the pointers of the display.
func (d *Display) NewCache() *cursors.Cache[*Pointer] {
	return cursors.NewCache[*Pointer](d)
}
