// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macos

import (
	"sync"

	"cogentcore.org/cursors"
)

// selectors are the NSCursor class methods of the built-in cursors.
var selectors = map[cursors.Cursor]string{
	cursors.Arrow:        "arrowCursor",
	cursors.ContextMenu:  "contextualMenuCursor",
	cursors.Pointer:      "pointingHandCursor",
	cursors.Crosshair:    "crosshairCursor",
	cursors.Cell:         "crosshairCursor",
	cursors.Text:         "IBeamCursor",
	cursors.VerticalText: "IBeamCursorForVerticalLayout",
	cursors.Alias:        "dragLinkCursor",
	cursors.Copy:         "dragCopyCursor",
	cursors.Move:         "openHandCursor",
	cursors.NoDrop:       "operationNotAllowedCursor",
	cursors.NotAllowed:   "operationNotAllowedCursor",
	cursors.Grab:         "openHandCursor",
	cursors.Grabbing:     "closedHandCursor",
	cursors.ResizeCol:    "resizeLeftRightCursor",
	cursors.ResizeRow:    "resizeUpDownCursor",
	cursors.ResizeN:      "resizeUpCursor",
	cursors.ResizeE:      "resizeRightCursor",
	cursors.ResizeS:      "resizeDownCursor",
	cursors.ResizeW:      "resizeLeftCursor",
	cursors.ResizeEW:     "resizeLeftRightCursor",
	cursors.ResizeNS:     "resizeUpDownCursor",
	cursors.AllScroll:    "openHandCursor",
}

// Selector returns the NSCursor class method for the given cursor.
// Cursors that AppKit does not have use the arrow.
func Selector(c cursors.Cursor) string {
	if s, ok := selectors[c]; ok {
		return s
	}
	return "arrowCursor"
}

// Window is the cursor state of an NSWindow. The AppKit cursor is
// application wide, so it is only set while the window has the mouse.
type Window struct {
	mu       sync.Mutex
	hasMouse bool
	current  ID
}

// SetHasMouse sets whether the mouse is in the window. The cursor should
// be applied again with [cursors.Cache.Reapply] when it enters.
func (w *Window) SetHasMouse(has bool) {
	w.mu.Lock()
	w.hasMouse = has
	w.mu.Unlock()
}

// Current returns the cursor of the window.
func (w *Window) Current() ID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Display is the [cursors.Display] of AppKit windows.
type Display struct {
	Encoder
}

// NewDisplay returns a new [Display] using the given AppKit.
func NewDisplay(ak AppKit) *Display {
	return &Display{Encoder{AppKit: ak}}
}

// BuiltIn implements [cursors.Display] with shared system cursors.
// [cursors.None] is a blank cursor.
func (d *Display) BuiltIn(shape cursors.Cursor) (cursors.Resource, error) {
	if shape == cursors.None {
		id, err := d.AppKit.NewCursor(make([]byte, 4), 1, 1, 0, 0)
		if err != nil {
			return nil, err
		}
		return &Cursor{ID: id, ak: d.AppKit}, nil
	}
	id, err := d.AppKit.SystemCursor(Selector(shape))
	if err != nil {
		return nil, err
	}
	return &Cursor{ID: id, ak: d.AppKit, shared: true}, nil
}

// Apply implements [cursors.Display].
func (d *Display) Apply(w *Window, res cursors.Resource) error {
	var id ID
	if nc, ok := res.(NSCursor); ok {
		id = nc.NSCursor()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = id
	if !w.hasMouse || id == 0 {
		return nil
	}
	return d.AppKit.Set(id)
}

// NewCache returns a new cursor cache for the windows of the display.
func (d *Display) NewCache() *cursors.Cache[*Window] {
	return cursors.NewCache[*Window](d)
}
