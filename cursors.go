// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors provides custom mouse cursor images that work across
// the X11, Wayland, Windows, macOS and web platforms, along with the
// standard built-in cursor shapes, a connection scoped cache of custom
// cursors and the per-window selection state that decides which cursor
// is shown.
//
// A custom cursor is made with [FromRGBA] or [FromImage], which validate
// the pixels and then hand them to the [Encoder] of the current platform,
// set by the driver package. The result is a reference counted
// [CustomCursor] that is registered in a [Cache] under a key and then
// selected for windows by that key.
package cursors

//go:generate core generate

// Cursor is a standard built-in cursor shape that is available on all
// platforms. The names follow the CSS cursor keywords.
type Cursor int32 //enums:enum -transform kebab

const (
	// Arrow is the standard arrow pointer and the default cursor.
	Arrow Cursor = iota

	// None indicates that no cursor is shown (the cursor is hidden).
	None

	// ContextMenu indicates that a context menu is available.
	ContextMenu

	// Help is an arrow and question mark indicating help is available.
	Help

	// Pointer is a hand with a pointing index finger, typically used
	// to indicate that a link is clickable.
	Pointer

	// Progress indicates that the app is busy in the background,
	// but that the user can still interact with it.
	Progress

	// Wait indicates that the app is busy and that the user can not
	// interact with it (typically an hourglass).
	Wait

	// Cell indicates a table cell, typically used for selecting
	// cells in a spreadsheet.
	Cell

	// Crosshair is a plus-like cursor, typically used for precise actions.
	Crosshair

	// Text is the standard text-entry symbol like a capital I.
	Text

	// VerticalText is a vertical text-entry symbol.
	VerticalText

	// Alias indicates that a shortcut or alias will be created.
	Alias

	// Copy indicates that the current drag operation will copy the dragged items.
	Copy

	// Move indicates that the current drag operation will move the dragged items.
	Move

	// NoDrop indicates that the dragged item can not be dropped here.
	NoDrop

	// NotAllowed is a slashed circle indicating that an action is not allowed.
	NotAllowed

	// Grab is an open hand indicating the ability to click and drag
	// to move something.
	Grab

	// Grabbing is a closed hand indicating that something is being dragged.
	Grabbing

	// ResizeCol indicates that a column can be resized horizontally.
	ResizeCol

	// ResizeRow indicates that a row can be resized vertically.
	ResizeRow

	// ResizeN indicates that the north edge of something can be resized.
	ResizeN

	// ResizeE indicates that the east edge of something can be resized.
	ResizeE

	// ResizeS indicates that the south edge of something can be resized.
	ResizeS

	// ResizeW indicates that the west edge of something can be resized.
	ResizeW

	// ResizeNE indicates that the north-east corner of something can be resized.
	ResizeNE

	// ResizeNW indicates that the north-west corner of something can be resized.
	ResizeNW

	// ResizeSE indicates that the south-east corner of something can be resized.
	ResizeSE

	// ResizeSW indicates that the south-west corner of something can be resized.
	ResizeSW

	// ResizeEW is a double-pointed arrow pointing west and east.
	ResizeEW

	// ResizeNS is a double-pointed arrow pointing north and south.
	ResizeNS

	// ResizeNESW is a double-pointed arrow pointing north-east and south-west.
	ResizeNESW

	// ResizeNWSE is a double-pointed arrow pointing north-west and south-east.
	ResizeNWSE

	// ZoomIn indicates that something can be zoomed in.
	ZoomIn

	// ZoomOut indicates that something can be zoomed out.
	ZoomOut

	// AllScroll indicates that something can be scrolled in any direction.
	AllScroll
)

// cssNames are the CSS cursor keywords for cursors whose CSS name
// is not the same as their kebab-case name.
var cssNames = map[Cursor]string{
	Arrow:      "default",
	ResizeCol:  "col-resize",
	ResizeRow:  "row-resize",
	ResizeN:    "n-resize",
	ResizeE:    "e-resize",
	ResizeS:    "s-resize",
	ResizeW:    "w-resize",
	ResizeNE:   "ne-resize",
	ResizeNW:   "nw-resize",
	ResizeSE:   "se-resize",
	ResizeSW:   "sw-resize",
	ResizeEW:   "ew-resize",
	ResizeNS:   "ns-resize",
	ResizeNESW: "nesw-resize",
	ResizeNWSE: "nwse-resize",
}

// CSS returns the CSS cursor keyword for the cursor. These are also the
// names used by freedesktop cursor themes.
func (c Cursor) CSS() string {
	if s, ok := cssNames[c]; ok {
		return s
	}
	return c.String()
}

// Drags is a map-set of cursors used for signaling dragging events.
var Drags = map[Cursor]struct{}{
	Copy:     {},
	Move:     {},
	Alias:    {},
	Grabbing: {},
}

// IsDrag returns whether the cursor is used for signaling dragging events.
func (c Cursor) IsDrag() bool {
	_, has := Drags[c]
	return has
}
