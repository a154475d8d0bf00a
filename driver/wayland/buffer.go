// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wayland implements cursors for Wayland compositors as
// shared-memory buffers attached to a cursor surface.
package wayland

import (
	"os"
	"sync"

	"cogentcore.org/core/base/errors"
)

// FormatARGB8888 is the wl_shm format of cursor buffers: 32 bit ARGB
// words in native (little endian) order, so BGRA bytes.
const FormatARGB8888 = 0

// Shm creates shared-memory pools. It is implemented for wl_shm in the
// client adapter, and by fakes in tests.
type Shm interface {
	CreatePool(f *os.File, size int32) (Pool, error)
}

// Pool is a wl_shm_pool.
type Pool interface {
	CreateBuffer(offset, width, height, stride int32, format uint32) (WLBuffer, error)
	Destroy() error
}

// WLBuffer is a wl_buffer.
type WLBuffer interface {
	Destroy() error
}

// WaylandBuffer is implemented by resources that have a Wayland buffer.
// The bool is false if the resource has none.
type WaylandBuffer interface {
	WaylandBuffer() (*Buffer, bool)
}

// Buffer is a Wayland cursor [cursors.Resource]: a wl_buffer in a pool
// backed by an anonymous memory file, along with the hotspot to use with
// it. It keeps the file, pool and bytes for as long as the buffer lives.
type Buffer struct {
	Width, Height      uint32
	HotspotX, HotspotY uint32

	// Pix are the BGRA bytes written to the file.
	Pix []byte

	// WL is the wl_buffer.
	WL WLBuffer

	file *os.File
	pool Pool
	once sync.Once
}

func (b *Buffer) WaylandBuffer() (*Buffer, bool) {
	return b, true
}

// Release destroys the buffer and its pool and closes the file.
func (b *Buffer) Release() error {
	var err error
	b.once.Do(func() {
		err = errors.Join(b.WL.Destroy(), b.pool.Destroy(), b.file.Close())
	})
	return err
}
