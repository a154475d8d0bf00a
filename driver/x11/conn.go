// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/xcursor"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/render"
	"github.com/jezek/xgb/xproto"
)

// putImageHeader is the size in bytes of a PutImage request without data.
const putImageHeader = 24

// Conn is a connection to an X server that loads cursors. It implements
// [Loader] and [cursors.Display] for windows of type [xproto.Window].
type Conn struct {

	// X is the underlying connection.
	X *xgb.Conn

	// Theme is the Xcursor theme built-in cursors are loaded from.
	// The cursor font is used if it is nil or does not have a cursor.
	Theme *xcursor.Theme

	root      xproto.Window
	format    render.Pictformat
	byteOrder binary.AppendByteOrder
	maxReq    int

	fontMu sync.Mutex
	font   xproto.Font
}

// Open opens a new connection to the given display, or to $DISPLAY if it
// is empty. It returns [cursors.ErrBackendUnavailable] if there is no
// X server or it does not support ARGB cursors.
func Open(display string, theme *xcursor.Theme) (*Conn, error) {
	X, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("%w: x11: %w", cursors.ErrBackendUnavailable, err)
	}
	c, err := NewConn(X, theme)
	if err != nil {
		X.Close()
		return nil, err
	}
	return c, nil
}

// NewConn returns a new [Conn] for the given open connection.
func NewConn(X *xgb.Conn, theme *xcursor.Theme) (*Conn, error) {
	if err := render.Init(X); err != nil {
		return nil, fmt.Errorf("%w: x11: render extension: %w", cursors.ErrBackendUnavailable, err)
	}
	formats, err := render.QueryPictFormats(X).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: query picture formats: %w", err)
	}
	format, ok := findARGB32(formats.Formats)
	if !ok {
		return nil, fmt.Errorf("%w: x11: no ARGB32 picture format", cursors.ErrBackendUnavailable)
	}
	setup := xproto.Setup(X)
	c := &Conn{
		X:         X,
		Theme:     theme,
		root:      setup.DefaultScreen(X).Root,
		format:    format,
		byteOrder: byteOrder(setup.ImageByteOrder),
		maxReq:    int(setup.MaximumRequestLength) * 4,
	}
	slog.Debug("x11: opened cursor connection", "vendor", setup.Vendor, "maxRequest", c.maxReq)
	return c, nil
}

// Close closes the connection.
func (c *Conn) Close() error {
	c.fontMu.Lock()
	if c.font != 0 {
		xproto.CloseFont(c.X, c.font)
		c.font = 0
	}
	c.fontMu.Unlock()
	c.X.Close()
	return nil
}

func findARGB32(formats []render.Pictforminfo) (render.Pictformat, bool) {
	for _, f := range formats {
		d := f.Direct
		if f.Type == render.PictTypeDirect && f.Depth == 32 &&
			d.AlphaShift == 24 && d.AlphaMask == 0xff &&
			d.RedShift == 16 && d.RedMask == 0xff &&
			d.GreenShift == 8 && d.GreenMask == 0xff &&
			d.BlueShift == 0 && d.BlueMask == 0xff {
			return f.Id, true
		}
	}
	return 0, false
}

func byteOrder(order byte) binary.AppendByteOrder {
	if order == xproto.ImageOrderMSBFirst {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// stripRows returns the number of rows of the given width that fit in
// one PutImage request of at most maxReq bytes. It is at least 1.
func stripRows(width uint32, maxReq int) int {
	rows := (maxReq - putImageHeader) / (int(width) * 4)
	return max(rows, 1)
}

// packRows returns the pixels of rows [y0, y1) as bytes in the given order.
func packRows(img *Image, y0, y1 int, order binary.AppendByteOrder) []byte {
	w := int(img.Width)
	data := make([]byte, 0, (y1-y0)*w*4)
	for _, p := range img.Pixels[y0*w : y1*w] {
		data = order.AppendUint32(data, p)
	}
	return data
}

// LoadImage implements [Loader] by uploading the image into a depth 32
// pixmap and making a Render cursor from a picture of it.
// The pixmap, graphics context and picture are freed before it returns.
func (c *Conn) LoadImage(img *Image) (xproto.Cursor, error) {
	w, h := uint16(img.Width), uint16(img.Height)
	pixmap, err := xproto.NewPixmapId(c.X)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreatePixmapChecked(c.X, 32, pixmap, xproto.Drawable(c.root), w, h).Check(); err != nil {
		return 0, fmt.Errorf("create pixmap: %w", err)
	}
	defer xproto.FreePixmap(c.X, pixmap)

	gc, err := xproto.NewGcontextId(c.X)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreateGCChecked(c.X, gc, xproto.Drawable(pixmap), 0, nil).Check(); err != nil {
		return 0, fmt.Errorf("create gc: %w", err)
	}
	defer xproto.FreeGC(c.X, gc)

	rows := stripRows(img.Width, c.maxReq)
	for y := 0; y < int(h); y += rows {
		y1 := min(y+rows, int(h))
		data := packRows(img, y, y1, c.byteOrder)
		err := xproto.PutImageChecked(c.X, xproto.ImageFormatZPixmap, xproto.Drawable(pixmap), gc,
			w, uint16(y1-y), 0, int16(y), 0, 32, data).Check()
		if err != nil {
			return 0, fmt.Errorf("put image: %w", err)
		}
	}

	pic, err := render.NewPictureId(c.X)
	if err != nil {
		return 0, err
	}
	if err := render.CreatePictureChecked(c.X, pic, xproto.Drawable(pixmap), c.format, 0, nil).Check(); err != nil {
		return 0, fmt.Errorf("create picture: %w", err)
	}
	defer render.FreePicture(c.X, pic)

	id, err := xproto.NewCursorId(c.X)
	if err != nil {
		return 0, err
	}
	if err := render.CreateCursorChecked(c.X, id, pic, uint16(img.XHot), uint16(img.YHot)).Check(); err != nil {
		return 0, fmt.Errorf("create cursor: %w", err)
	}
	return id, nil
}

// FreeCursor implements [Loader].
func (c *Conn) FreeCursor(id xproto.Cursor) error {
	return xproto.FreeCursorChecked(c.X, id).Check()
}

// glyphCursor makes a cursor from the given glyph of the standard
// cursor font.
func (c *Conn) glyphCursor(glyph uint16) (xproto.Cursor, error) {
	c.fontMu.Lock()
	defer c.fontMu.Unlock()
	if c.font == 0 {
		font, err := xproto.NewFontId(c.X)
		if err != nil {
			return 0, err
		}
		if err := xproto.OpenFontChecked(c.X, font, uint16(len("cursor")), "cursor").Check(); err != nil {
			return 0, fmt.Errorf("open cursor font: %w", err)
		}
		c.font = font
	}
	id, err := xproto.NewCursorId(c.X)
	if err != nil {
		return 0, err
	}
	err = xproto.CreateGlyphCursorChecked(c.X, id, c.font, c.font, glyph, glyph+1,
		0, 0, 0, 0xffff, 0xffff, 0xffff).Check()
	if err != nil {
		return 0, fmt.Errorf("create glyph cursor: %w", err)
	}
	return id, nil
}

// BuiltIn implements [cursors.Display]. It loads the cursor from the
// Xcursor theme, falling back on the cursor font.
func (c *Conn) BuiltIn(shape cursors.Cursor) (cursors.Resource, error) {
	if shape == cursors.None {
		id, err := c.LoadImage(blank())
		if err != nil {
			return nil, err
		}
		return NewCursor(id, c), nil
	}
	if c.Theme != nil {
		img, err := c.Theme.LoadCursor(shape)
		if err == nil {
			id, err := c.LoadImage(FromXcursor(img))
			if err == nil {
				return NewCursor(id, c), nil
			}
			errors.Log(err)
		} else {
			slog.Debug("x11: using cursor font", "cursor", shape, "err", err)
		}
	}
	id, err := c.glyphCursor(Glyph(shape))
	if err != nil {
		return nil, err
	}
	return NewCursor(id, c), nil
}

// Apply implements [cursors.Display] by setting the cursor attribute of
// the window. Resources without an X11 cursor use the parent cursor.
func (c *Conn) Apply(win xproto.Window, res cursors.Resource) error {
	id := xproto.Cursor(xproto.CursorNone)
	if xc, ok := res.(XCursor); ok {
		if cid, ok := xc.XCursor(); ok {
			id = cid
		}
	}
	return xproto.ChangeWindowAttributesChecked(c.X, win, xproto.CwCursor, []uint32{uint32(id)}).Check()
}

// NewCache returns a new cursor cache for the windows of the connection.
func (c *Conn) NewCache() *cursors.Cache[xproto.Window] {
	return cursors.NewCache[xproto.Window](c)
}
