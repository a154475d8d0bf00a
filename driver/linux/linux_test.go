// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linux

import (
	"bytes"
	"os"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
	"cogentcore.org/cursors/driver/wayland"
	"cogentcore.org/cursors/driver/x11"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	err    error
	pixels []uint32
	freed  int
}

func (f *fakeLoader) LoadImage(img *x11.Image) (xproto.Cursor, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.pixels = img.Pixels
	return 42, nil
}

func (f *fakeLoader) FreeCursor(id xproto.Cursor) error {
	f.freed++
	return nil
}

type fakeShm struct {
	err       error
	destroyed int
}

type fakePool struct{ shm *fakeShm }

type fakeBuffer struct{ shm *fakeShm }

func (s *fakeShm) CreatePool(f *os.File, size int32) (wayland.Pool, error) {
	if s.err != nil {
		return nil, s.err
	}
	return fakePool{s}, nil
}

func (p fakePool) CreateBuffer(offset, width, height, stride int32, format uint32) (wayland.WLBuffer, error) {
	return fakeBuffer(p), nil
}

func (p fakePool) Destroy() error {
	p.shm.destroyed++
	return nil
}

func (b fakeBuffer) Destroy() error {
	b.shm.destroyed++
	return nil
}

var red2x2 = bytes.Repeat([]byte{0xff, 0, 0, 0xff}, 4)

func testImage(t *testing.T) *cursorimg.Image {
	img, err := cursorimg.New(red2x2, 2, 2, 0, 1)
	require.NoError(t, err)
	return img
}

func TestBoth(t *testing.T) {
	fl, fs := &fakeLoader{}, &fakeShm{}
	e := &Encoder{X11: &x11.Encoder{Loader: fl}, Wayland: &wayland.Encoder{Shm: fs}}
	res, err := e.FromRGBA(testImage(t))
	require.NoError(t, err)
	c := res.(*Cursor)

	id, ok := c.XCursor()
	assert.True(t, ok)
	assert.Equal(t, xproto.Cursor(42), id)
	wb, ok := c.WaylandBuffer()
	assert.True(t, ok)
	assert.Equal(t, bytes.Repeat([]byte{0, 0, 0xff, 0xff}, 4), wb.Pix)
	assert.Equal(t, []uint32{0xffff0000, 0xffff0000, 0xffff0000, 0xffff0000}, fl.pixels)
	assert.Equal(t, uint32(1), wb.HotspotY)

	require.NoError(t, res.Release())
	require.NoError(t, res.Release())
	assert.Equal(t, 1, fl.freed)
	assert.Equal(t, 2, fs.destroyed)
}

func TestX11Skipped(t *testing.T) {
	fs := &fakeShm{}
	e := &Encoder{X11: &x11.Encoder{Loader: &fakeLoader{err: errors.New("BadMatch")}}, Wayland: &wayland.Encoder{Shm: fs}}
	res, err := e.FromRGBA(testImage(t))
	require.NoError(t, err)
	c := res.(*Cursor)
	_, ok := c.XCursor()
	assert.False(t, ok)
	_, ok = c.WaylandBuffer()
	assert.True(t, ok)

	// no X11 connection at all
	e = &Encoder{X11: &x11.Encoder{}, Wayland: &wayland.Encoder{Shm: fs}}
	res, err = e.FromRGBA(testImage(t))
	require.NoError(t, err)
	_, ok = res.(*Cursor).XCursor()
	assert.False(t, ok)
}

func TestWaylandFailure(t *testing.T) {
	fl := &fakeLoader{}
	e := &Encoder{X11: &x11.Encoder{Loader: fl}, Wayland: &wayland.Encoder{Shm: &fakeShm{err: errors.New("ENOMEM")}}}
	_, err := e.FromRGBA(testImage(t))
	var oe *cursorimg.OSError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, 1, fl.freed, "the X11 cursor is freed")
}

func TestNoBackend(t *testing.T) {
	res, err := (&Encoder{}).FromRGBA(testImage(t))
	require.NoError(t, err)
	assert.Equal(t, cursors.NoResource{}, res)

	res, err = (&Encoder{X11: &x11.Encoder{Loader: &fakeLoader{err: errors.New("BadAlloc")}}}).FromRGBA(testImage(t))
	require.NoError(t, err)
	assert.Equal(t, cursors.NoResource{}, res)

	_, err = (&Encoder{}).FromRGBA(&cursorimg.Image{Pix: red2x2, Width: 2, Height: 2, HotspotX: 2})
	var hs *cursorimg.HotspotOutOfBoundsError
	assert.True(t, errors.As(err, &hs))
}
