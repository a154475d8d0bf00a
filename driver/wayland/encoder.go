// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wayland

import (
	"fmt"

	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
)

// fileName is the name of the anonymous files of cursor buffers.
const fileName = "cogentcore-cursor"

// Encoder is the Wayland [cursors.Encoder].
type Encoder struct {

	// Shm is the wl_shm the buffers are created with.
	// The encoder is unavailable if it is nil.
	Shm Shm
}

// FromRGBA implements [cursors.Encoder].
func (e *Encoder) FromRGBA(img *cursorimg.Image) (cursors.Resource, error) {
	if e == nil || e.Shm == nil {
		return nil, cursors.ErrBackendUnavailable
	}
	return e.FromBGRA(img.BGRA(), img.Width, img.Height, img.HotspotX, img.HotspotY)
}

// FromBGRA returns a new [Buffer] with the given BGRA bytes, which are
// kept by the buffer.
func (e *Encoder) FromBGRA(bgra []byte, width, height, hotspotX, hotspotY uint32) (*Buffer, error) {
	if e == nil || e.Shm == nil {
		return nil, cursors.ErrBackendUnavailable
	}
	size := uint64(width) * uint64(height) * cursorimg.PixelSize
	if uint64(len(bgra)) != size {
		return nil, &cursorimg.DimensionsVsPixelCountError{
			Width: width, Height: height,
			WidthXHeight: uint64(width) * uint64(height),
			PixelCount:   uint64(len(bgra) / cursorimg.PixelSize),
		}
	}
	if size > 1<<31-1 {
		return nil, fmt.Errorf("wayland: cursor image of %dx%d is too large", width, height)
	}
	f, err := createFile(fileName, int64(size))
	if err != nil {
		return nil, cursorimg.NewOSError("memfd_create", err)
	}
	if _, err := f.WriteAt(bgra, 0); err != nil {
		f.Close()
		return nil, cursorimg.NewOSError("write", err)
	}
	pool, err := e.Shm.CreatePool(f, int32(size))
	if err != nil {
		f.Close()
		return nil, cursorimg.NewOSError("wl_shm.create_pool", err)
	}
	wb, err := pool.CreateBuffer(0, int32(width), int32(height), int32(width*cursorimg.PixelSize), FormatARGB8888)
	if err != nil {
		pool.Destroy()
		f.Close()
		return nil, cursorimg.NewOSError("wl_shm_pool.create_buffer", err)
	}
	return &Buffer{
		Width:    width,
		Height:   height,
		HotspotX: hotspotX,
		HotspotY: hotspotY,
		Pix:      bgra,
		WL:       wb,
		file:     f,
		pool:     pool,
	}, nil
}
