// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package windows implements cursors for Win32 as icons made from a color
// bitmap and an all-set AND mask.
package windows

import (
	"fmt"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
)

type (
	HWND    uintptr
	HDC     uintptr
	HBITMAP uintptr
	HICON   uintptr
)

// IconInfo is an ICONINFO.
type IconInfo struct {

	// Icon is whether this is an icon; it is false for cursors.
	Icon bool

	XHotspot, YHotspot uint32
	Mask, Color        HBITMAP
}

// GDI is the subset of the gdi32 and user32 APIs used for cursors.
// It is implemented with system calls on Windows, and by fakes in tests.
// Each method returns an error when the API reports failure.
type GDI interface {
	CreateBitmap(width, height int32, planes, bitsPerPixel uint32, bits []byte) (HBITMAP, error)
	GetDC(hwnd HWND) (HDC, error)
	ReleaseDC(hwnd HWND, hdc HDC) error
	CreateCompatibleBitmap(hdc HDC, width, height int32) (HBITMAP, error)
	SetBitmapBits(bm HBITMAP, bits []byte) error
	CreateIconIndirect(info *IconInfo) (HICON, error)
	DeleteObject(bm HBITMAP) error
	DestroyIcon(icon HICON) error

	// LoadCursor loads a shared system cursor resource such as IDC_ARROW.
	LoadCursor(id uintptr) (HICON, error)

	// SetCursor sets the cursor shown while the pointer is in a window
	// of the calling thread. A zero cursor hides it.
	SetCursor(cursor HICON) error

	// PointerInClient returns whether the pointer is in the client area
	// of the window.
	PointerInClient(hwnd HWND) (bool, error)
}

// MaskSize returns the number of bytes of the AND mask of a cursor of
// the given size: rows of one bit per pixel, padded to whole 16 bit words.
func MaskSize(width, height uint32) int {
	return int(((width + 15) >> 3) * height)
}

// HCursor is implemented by resources that have a Win32 cursor.
type HCursor interface {
	HCursor() HICON
}

// Icon is a Win32 cursor [cursors.Resource]. Icons made from images are
// destroyed on release; shared system cursors are not.
type Icon struct {
	Handle HICON

	gdi    GDI
	shared bool
	once   sync.Once
}

func (ic *Icon) HCursor() HICON {
	return ic.Handle
}

// Release destroys the icon unless it is a shared system cursor.
func (ic *Icon) Release() error {
	if ic.shared || ic.Handle == 0 {
		return nil
	}
	var err error
	ic.once.Do(func() {
		err = ic.gdi.DestroyIcon(ic.Handle)
	})
	return err
}

// Encoder is the Win32 [cursors.Encoder].
type Encoder struct {
	GDI GDI
}

// FromRGBA implements [cursors.Encoder].
func (e *Encoder) FromRGBA(img *cursorimg.Image) (cursors.Resource, error) {
	if e == nil || e.GDI == nil {
		return nil, cursors.ErrBackendUnavailable
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if img.Width > 1<<15 || img.Height > 1<<15 {
		return nil, fmt.Errorf("windows: cursor image of %dx%d is too large", img.Width, img.Height)
	}
	h, err := e.createIcon(img.BGRA(), int32(img.Width), int32(img.Height), img.HotspotX, img.HotspotY)
	if err != nil {
		return nil, err
	}
	return &Icon{Handle: h, gdi: e.GDI}, nil
}

// createIcon makes a cursor icon from the given BGRA pixels. Both bitmaps
// are deleted before it returns, since the icon has its own copies.
func (e *Encoder) createIcon(bgra []byte, w, h int32, hx, hy uint32) (HICON, error) {
	g := e.GDI
	mask := make([]byte, MaskSize(uint32(w), uint32(h)))
	for i := range mask {
		mask[i] = 0xff
	}
	hmask, err := g.CreateBitmap(w, h, 1, 1, mask)
	if err != nil {
		return 0, cursorimg.NewOSError("CreateBitmap", err)
	}
	defer func() { errors.Log(g.DeleteObject(hmask)) }()

	hdc, err := g.GetDC(0)
	if err != nil {
		return 0, cursorimg.NewOSError("GetDC", err)
	}
	hcolor, err := g.CreateCompatibleBitmap(hdc, w, h)
	errors.Log(g.ReleaseDC(0, hdc))
	if err != nil {
		return 0, cursorimg.NewOSError("CreateCompatibleBitmap", err)
	}
	defer func() { errors.Log(g.DeleteObject(hcolor)) }()

	if err := g.SetBitmapBits(hcolor, bgra); err != nil {
		return 0, cursorimg.NewOSError("SetBitmapBits", err)
	}
	icon, err := g.CreateIconIndirect(&IconInfo{
		Icon:     false,
		XHotspot: hx,
		YHotspot: hy,
		Mask:     hmask,
		Color:    hcolor,
	})
	if err != nil {
		return 0, cursorimg.NewOSError("CreateIconIndirect", err)
	}
	return icon, nil
}
