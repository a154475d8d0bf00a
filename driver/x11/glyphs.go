// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import "cogentcore.org/cursors"

// Glyphs of the standard X cursor font. The mask of each glyph is the
// glyph after it.
const (
	GlyphBottomLeftCorner  = 12
	GlyphBottomRightCorner = 14
	GlyphBottomSide        = 16
	GlyphCrosshair         = 34
	GlyphFleur             = 52
	GlyphHand1             = 58
	GlyphHand2             = 60
	GlyphLeftPtr           = 68
	GlyphLeftSide          = 70
	GlyphPirate            = 88
	GlyphPlus              = 90
	GlyphQuestionArrow     = 92
	GlyphRightSide         = 96
	GlyphSBHDoubleArrow    = 108
	GlyphSBVDoubleArrow    = 116
	GlyphSizing            = 120
	GlyphTopLeftCorner     = 134
	GlyphTopRightCorner    = 136
	GlyphTopSide           = 138
	GlyphWatch             = 150
	GlyphXTerm             = 152
)

var glyphs = map[cursors.Cursor]uint16{
	cursors.Arrow:        GlyphLeftPtr,
	cursors.Help:         GlyphQuestionArrow,
	cursors.Pointer:      GlyphHand2,
	cursors.Progress:     GlyphWatch,
	cursors.Wait:         GlyphWatch,
	cursors.Cell:         GlyphPlus,
	cursors.Crosshair:    GlyphCrosshair,
	cursors.Text:         GlyphXTerm,
	cursors.VerticalText: GlyphXTerm,
	cursors.Move:         GlyphFleur,
	cursors.NoDrop:       GlyphPirate,
	cursors.NotAllowed:   GlyphPirate,
	cursors.Grab:         GlyphHand1,
	cursors.Grabbing:     GlyphFleur,
	cursors.ResizeCol:    GlyphSBHDoubleArrow,
	cursors.ResizeRow:    GlyphSBVDoubleArrow,
	cursors.ResizeN:      GlyphTopSide,
	cursors.ResizeE:      GlyphRightSide,
	cursors.ResizeS:      GlyphBottomSide,
	cursors.ResizeW:      GlyphLeftSide,
	cursors.ResizeNE:     GlyphTopRightCorner,
	cursors.ResizeNW:     GlyphTopLeftCorner,
	cursors.ResizeSE:     GlyphBottomRightCorner,
	cursors.ResizeSW:     GlyphBottomLeftCorner,
	cursors.ResizeEW:     GlyphSBHDoubleArrow,
	cursors.ResizeNS:     GlyphSBVDoubleArrow,
	cursors.ResizeNESW:   GlyphSizing,
	cursors.ResizeNWSE:   GlyphSizing,
	cursors.ZoomIn:       GlyphPlus,
	cursors.ZoomOut:      GlyphPlus,
	cursors.AllScroll:    GlyphFleur,
}

// Glyph returns the cursor font glyph used for the given cursor when it
// is not in the cursor theme. Cursors without a close glyph use the arrow.
func Glyph(c cursors.Cursor) uint16 {
	if g, ok := glyphs[c]; ok {
		return g
	}
	return GlyphLeftPtr
}
