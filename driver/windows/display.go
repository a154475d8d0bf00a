// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package windows

import (
	"fmt"
	"sync"

	"cogentcore.org/cursors"
)

// System cursor resource ids.
const (
	IDC_ARROW       = 32512
	IDC_IBEAM       = 32513
	IDC_WAIT        = 32514
	IDC_CROSS       = 32515
	IDC_UPARROW     = 32516
	IDC_SIZENWSE    = 32642
	IDC_SIZENESW    = 32643
	IDC_SIZEWE      = 32644
	IDC_SIZENS      = 32645
	IDC_SIZEALL     = 32646
	IDC_NO          = 32648
	IDC_HAND        = 32649
	IDC_APPSTARTING = 32650
	IDC_HELP        = 32651
)

var systemCursors = map[cursors.Cursor]uintptr{
	cursors.Arrow:        IDC_ARROW,
	cursors.ContextMenu:  IDC_ARROW,
	cursors.Help:         IDC_HELP,
	cursors.Pointer:      IDC_HAND,
	cursors.Progress:     IDC_APPSTARTING,
	cursors.Wait:         IDC_WAIT,
	cursors.Cell:         IDC_CROSS,
	cursors.Crosshair:    IDC_CROSS,
	cursors.Text:         IDC_IBEAM,
	cursors.VerticalText: IDC_IBEAM,
	cursors.Alias:        IDC_ARROW,
	cursors.Copy:         IDC_ARROW,
	cursors.Move:         IDC_SIZEALL,
	cursors.NoDrop:       IDC_NO,
	cursors.NotAllowed:   IDC_NO,
	cursors.Grab:         IDC_HAND,
	cursors.Grabbing:     IDC_HAND,
	cursors.ResizeCol:    IDC_SIZEWE,
	cursors.ResizeRow:    IDC_SIZENS,
	cursors.ResizeN:      IDC_SIZENS,
	cursors.ResizeE:      IDC_SIZEWE,
	cursors.ResizeS:      IDC_SIZENS,
	cursors.ResizeW:      IDC_SIZEWE,
	cursors.ResizeNE:     IDC_SIZENESW,
	cursors.ResizeNW:     IDC_SIZENWSE,
	cursors.ResizeSE:     IDC_SIZENWSE,
	cursors.ResizeSW:     IDC_SIZENESW,
	cursors.ResizeEW:     IDC_SIZEWE,
	cursors.ResizeNS:     IDC_SIZENS,
	cursors.ResizeNESW:   IDC_SIZENESW,
	cursors.ResizeNWSE:   IDC_SIZENWSE,
	cursors.ZoomIn:       IDC_ARROW,
	cursors.ZoomOut:      IDC_ARROW,
	cursors.AllScroll:    IDC_SIZEALL,
}

// SystemCursor returns the system cursor resource id for the given
// cursor. [cursors.None] has no system cursor and returns 0.
func SystemCursor(c cursors.Cursor) uintptr {
	if c == cursors.None {
		return 0
	}
	if id, ok := systemCursors[c]; ok {
		return id
	}
	return IDC_ARROW
}

// Display is the [cursors.Display] of Win32 windows. It keeps the cursor
// of each window, which is set when the pointer is in the window and on
// each WM_SETCURSOR message, passed to [Display.HandleSetCursor].
type Display struct {
	Encoder

	mu      sync.Mutex
	windows map[HWND]HICON
}

// NewDisplay returns a new [Display] using the given GDI.
func NewDisplay(g GDI) *Display {
	return &Display{Encoder: Encoder{GDI: g}, windows: map[HWND]HICON{}}
}

// BuiltIn implements [cursors.Display] with shared system cursors.
// [cursors.None] is a null cursor.
func (d *Display) BuiltIn(shape cursors.Cursor) (cursors.Resource, error) {
	id := SystemCursor(shape)
	if id == 0 {
		return &Icon{shared: true}, nil
	}
	h, err := d.GDI.LoadCursor(id)
	if err != nil {
		return nil, err
	}
	return &Icon{Handle: h, gdi: d.GDI, shared: true}, nil
}

// Apply implements [cursors.Display]. The cursor is only set right away
// if the pointer is in the client area of the window.
func (d *Display) Apply(hwnd HWND, res cursors.Resource) error {
	var h HICON
	if hc, ok := res.(HCursor); ok {
		h = hc.HCursor()
	}
	d.mu.Lock()
	d.windows[hwnd] = h
	d.mu.Unlock()
	in, err := d.GDI.PointerInClient(hwnd)
	if err != nil {
		return fmt.Errorf("windows: pointer position of window %#x: %w", hwnd, err)
	}
	if !in {
		return nil
	}
	return d.GDI.SetCursor(h)
}

// HandleSetCursor handles a WM_SETCURSOR message for the given window,
// where client is whether its hit-test code is HTCLIENT. It returns
// whether it set the cursor, in which case the window procedure must
// return TRUE instead of calling DefWindowProc.
func (d *Display) HandleSetCursor(hwnd HWND, client bool) (bool, error) {
	if !client {
		return false, nil
	}
	d.mu.Lock()
	h, ok := d.windows[hwnd]
	d.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, d.GDI.SetCursor(h)
}

// ForgetWindow removes the cursor of the given window, which must be
// called when it is destroyed.
func (d *Display) ForgetWindow(hwnd HWND) {
	d.mu.Lock()
	delete(d.windows, hwnd)
	d.mu.Unlock()
}

// NewCache returns a new cursor cache for the windows of the display.
func (d *Display) NewCache() *cursors.Cache[HWND] {
	return cursors.NewCache[HWND](d)
}
