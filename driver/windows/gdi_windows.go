// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package windows

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")
	user32 = windows.NewLazySystemDLL("user32.dll")

	procCreateBitmap           = gdi32.NewProc("CreateBitmap")
	procCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	procSetBitmapBits          = gdi32.NewProc("SetBitmapBits")
	procDeleteObject           = gdi32.NewProc("DeleteObject")
	procGetDC                  = user32.NewProc("GetDC")
	procReleaseDC              = user32.NewProc("ReleaseDC")
	procCreateIconIndirect     = user32.NewProc("CreateIconIndirect")
	procDestroyIcon            = user32.NewProc("DestroyIcon")
	procLoadCursorW            = user32.NewProc("LoadCursorW")
	procSetCursor              = user32.NewProc("SetCursor")
	procGetCursorPos           = user32.NewProc("GetCursorPos")
	procScreenToClient         = user32.NewProc("ScreenToClient")
	procGetClientRect          = user32.NewProc("GetClientRect")
)

type point struct {
	x, y int32
}

type rect struct {
	left, top, right, bottom int32
}

// iconInfo is the native ICONINFO layout.
type iconInfo struct {
	fIcon    int32
	xHotspot uint32
	yHotspot uint32
	hbmMask  uintptr
	hbmColor uintptr
}

// System is the [GDI] implemented with system calls.
type System struct{}

// call calls the procedure and returns its result, or the last error if
// the result is zero.
func call(p *windows.LazyProc, args ...uintptr) (uintptr, error) {
	r, _, err := p.Call(args...)
	if r == 0 {
		if err == windows.ERROR_SUCCESS {
			err = windows.ERROR_INVALID_PARAMETER
		}
		return 0, err
	}
	return r, nil
}

func (System) CreateBitmap(width, height int32, planes, bitsPerPixel uint32, bits []byte) (HBITMAP, error) {
	r, err := call(procCreateBitmap, uintptr(width), uintptr(height), uintptr(planes), uintptr(bitsPerPixel),
		uintptr(unsafe.Pointer(unsafe.SliceData(bits))))
	return HBITMAP(r), err
}

func (System) GetDC(hwnd HWND) (HDC, error) {
	r, err := call(procGetDC, uintptr(hwnd))
	return HDC(r), err
}

func (System) ReleaseDC(hwnd HWND, hdc HDC) error {
	_, err := call(procReleaseDC, uintptr(hwnd), uintptr(hdc))
	return err
}

func (System) CreateCompatibleBitmap(hdc HDC, width, height int32) (HBITMAP, error) {
	r, err := call(procCreateCompatibleBitmap, uintptr(hdc), uintptr(width), uintptr(height))
	return HBITMAP(r), err
}

func (System) SetBitmapBits(bm HBITMAP, bits []byte) error {
	_, err := call(procSetBitmapBits, uintptr(bm), uintptr(len(bits)), uintptr(unsafe.Pointer(unsafe.SliceData(bits))))
	return err
}

func (System) CreateIconIndirect(info *IconInfo) (HICON, error) {
	ii := iconInfo{
		xHotspot: info.XHotspot,
		yHotspot: info.YHotspot,
		hbmMask:  uintptr(info.Mask),
		hbmColor: uintptr(info.Color),
	}
	if info.Icon {
		ii.fIcon = 1
	}
	r, err := call(procCreateIconIndirect, uintptr(unsafe.Pointer(&ii)))
	return HICON(r), err
}

func (System) DeleteObject(bm HBITMAP) error {
	_, err := call(procDeleteObject, uintptr(bm))
	return err
}

func (System) DestroyIcon(icon HICON) error {
	_, err := call(procDestroyIcon, uintptr(icon))
	return err
}

func (System) LoadCursor(id uintptr) (HICON, error) {
	r, err := call(procLoadCursorW, 0, id)
	return HICON(r), err
}

// SetCursor returns the previous cursor, which is zero when there was
// none, so it has no failure result.
func (System) SetCursor(cursor HICON) error {
	procSetCursor.Call(uintptr(cursor))
	return nil
}

func (System) PointerInClient(hwnd HWND) (bool, error) {
	var pt point
	if _, err := call(procGetCursorPos, uintptr(unsafe.Pointer(&pt))); err != nil {
		return false, err
	}
	if _, err := call(procScreenToClient, uintptr(hwnd), uintptr(unsafe.Pointer(&pt))); err != nil {
		return false, err
	}
	var r rect
	if _, err := call(procGetClientRect, uintptr(hwnd), uintptr(unsafe.Pointer(&r))); err != nil {
		return false, err
	}
	return pt.x >= r.left && pt.x < r.right && pt.y >= r.top && pt.y < r.bottom, nil
}
