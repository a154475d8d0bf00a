// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wayland

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/xcursor"
	"github.com/neurlang/wayland/wl"
	"github.com/neurlang/wayland/wlclient"
)

// Conn is a connection to a Wayland compositor with the globals needed
// for cursors bound.
type Conn struct {
	*Display

	display    *wl.Display
	registry   *wl.Registry
	shm        *wl.Shm
	compositor *wl.Compositor
}

// Open connects to the compositor of $WAYLAND_DISPLAY and binds wl_shm
// and wl_compositor. It returns [cursors.ErrBackendUnavailable] if there
// is no compositor.
func Open(theme *xcursor.Theme) (*Conn, error) {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, fmt.Errorf("%w: wayland: WAYLAND_DISPLAY is not set", cursors.ErrBackendUnavailable)
	}
	display, err := wl.Connect("")
	if err != nil {
		return nil, fmt.Errorf("%w: wayland: %w", cursors.ErrBackendUnavailable, err)
	}
	c := &Conn{display: display}
	c.registry, err = display.GetRegistry()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("wayland: get registry: %w", err)
	}
	c.registry.AddGlobalHandler(c)
	if err := wlclient.DisplayRoundtrip(display); err != nil {
		c.Close()
		return nil, fmt.Errorf("wayland: roundtrip: %w", err)
	}
	if c.shm == nil || c.compositor == nil {
		c.Close()
		return nil, fmt.Errorf("%w: wayland: compositor has no wl_shm or wl_compositor", cursors.ErrBackendUnavailable)
	}
	c.Display = &Display{
		Encoder:    Encoder{Shm: shm{c.shm}},
		Compositor: compositor{c.compositor},
		Theme:      theme,
	}
	slog.Debug("wayland: opened cursor connection")
	return c, nil
}

// HandleRegistryGlobal binds the globals used for cursors.
func (c *Conn) HandleRegistryGlobal(e wl.RegistryGlobalEvent) {
	switch e.Interface {
	case "wl_shm":
		c.shm = wl.NewShm(c.display.Context())
		errors.Log(c.registry.Bind(e.Name, e.Interface, 1, c.shm))
	case "wl_compositor":
		c.compositor = wl.NewCompositor(c.display.Context())
		errors.Log(c.registry.Bind(e.Name, e.Interface, min(e.Version, 4), c.compositor))
	}
}

// Close closes the connection.
func (c *Conn) Close() error {
	return c.display.Context().Close()
}

// NewWLPointer returns a new [Pointer] for the given wl_pointer.
func NewWLPointer(p *wl.Pointer) *Pointer {
	return NewPointer(pointer{p})
}

type shm struct{ *wl.Shm }

func (s shm) CreatePool(f *os.File, size int32) (Pool, error) {
	p, err := s.Shm.CreatePool(f.Fd(), size)
	if err != nil {
		return nil, err
	}
	return pool{p}, nil
}

type pool struct{ *wl.ShmPool }

func (p pool) CreateBuffer(offset, width, height, stride int32, format uint32) (WLBuffer, error) {
	return p.ShmPool.CreateBuffer(offset, width, height, stride, format)
}

type compositor struct{ *wl.Compositor }

func (c compositor) CreateSurface() (Surface, error) {
	s, err := c.Compositor.CreateSurface()
	if err != nil {
		return nil, err
	}
	return surface{s}, nil
}

type surface struct{ *wl.Surface }

func (s surface) Attach(buf WLBuffer, x, y int32) error {
	return s.Surface.Attach(buf.(*wl.Buffer), x, y)
}

type pointer struct{ *wl.Pointer }

func (p pointer) SetCursor(serial uint32, s Surface, hotspotX, hotspotY int32) error {
	var ws *wl.Surface
	if s != nil {
		ws = s.(surface).Surface
	}
	return p.Pointer.SetCursor(serial, ws, hotspotX, hotspotY)
}
