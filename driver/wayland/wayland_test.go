// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wayland

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
	"cogentcore.org/cursors/xcursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShm struct {
	log       []string
	contents  []byte
	poolErr   error
	bufferErr error
}

type fakePool struct {
	shm *fakeShm
}

type fakeBuffer struct {
	shm    *fakeShm
	width  int32
	height int32
}

func (s *fakeShm) CreatePool(f *os.File, size int32) (Pool, error) {
	if s.poolErr != nil {
		return nil, s.poolErr
	}
	s.contents = make([]byte, size)
	_, err := f.ReadAt(s.contents, 0)
	if err != nil && err != io.EOF {
		return nil, err
	}
	s.log = append(s.log, fmt.Sprintf("create_pool %d", size))
	return &fakePool{shm: s}, nil
}

func (p *fakePool) CreateBuffer(offset, width, height, stride int32, format uint32) (WLBuffer, error) {
	if p.shm.bufferErr != nil {
		return nil, p.shm.bufferErr
	}
	p.shm.log = append(p.shm.log, fmt.Sprintf("create_buffer %d %d %d %d %d", offset, width, height, stride, format))
	return &fakeBuffer{shm: p.shm, width: width, height: height}, nil
}

func (p *fakePool) Destroy() error {
	p.shm.log = append(p.shm.log, "pool.destroy")
	return nil
}

func (b *fakeBuffer) Destroy() error {
	b.shm.log = append(b.shm.log, "buffer.destroy")
	return nil
}

type fakeSurface struct {
	log *[]string
}

func (s *fakeSurface) Attach(buf WLBuffer, x, y int32) error {
	fb := buf.(*fakeBuffer)
	*s.log = append(*s.log, fmt.Sprintf("attach %dx%d", fb.width, fb.height))
	return nil
}

func (s *fakeSurface) Damage(x, y, width, height int32) error {
	*s.log = append(*s.log, fmt.Sprintf("damage %d %d", width, height))
	return nil
}

func (s *fakeSurface) Commit() error {
	*s.log = append(*s.log, "commit")
	return nil
}

func (s *fakeSurface) Destroy() error {
	*s.log = append(*s.log, "surface.destroy")
	return nil
}

type fakeCompositor struct {
	log      []string
	surfaces int
}

func (c *fakeCompositor) CreateSurface() (Surface, error) {
	c.surfaces++
	return &fakeSurface{log: &c.log}, nil
}

type fakePointer struct {
	log *[]string
}

func (p *fakePointer) SetCursor(serial uint32, s Surface, hotspotX, hotspotY int32) error {
	*p.log = append(*p.log, fmt.Sprintf("set_cursor %d %v %d %d", serial, s != nil, hotspotX, hotspotY))
	return nil
}

func TestEncoder(t *testing.T) {
	fs := &fakeShm{}
	e := &Encoder{Shm: fs}
	rgba := bytes.Repeat([]byte{0xff, 0, 0, 0xff}, 4)
	img, err := cursorimg.New(rgba, 2, 2, 1, 1)
	require.NoError(t, err)

	res, err := e.FromRGBA(img)
	require.NoError(t, err)
	buf := res.(*Buffer)
	bgra := bytes.Repeat([]byte{0, 0, 0xff, 0xff}, 4)
	assert.Equal(t, bgra, buf.Pix)
	assert.Equal(t, bgra, fs.contents, "the file holds exactly the BGRA bytes")
	assert.Equal(t, rgba, img.Pix)
	assert.Equal(t, []string{"create_pool 16", "create_buffer 0 2 2 8 0"}, fs.log)

	b, ok := res.(WaylandBuffer).WaylandBuffer()
	assert.True(t, ok)
	assert.Same(t, buf, b)

	fs.log = nil
	require.NoError(t, res.Release())
	require.NoError(t, res.Release())
	assert.Equal(t, []string{"buffer.destroy", "pool.destroy"}, fs.log)
}

func TestEncoderErrors(t *testing.T) {
	img, err := cursorimg.New(make([]byte, 4), 1, 1, 0, 0)
	require.NoError(t, err)

	var e *Encoder
	_, err = e.FromRGBA(img)
	assert.ErrorIs(t, err, cursors.ErrBackendUnavailable)

	fs := &fakeShm{poolErr: errors.New("EMFILE")}
	_, err = (&Encoder{Shm: fs}).FromRGBA(img)
	var oe *cursorimg.OSError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "wl_shm.create_pool", oe.Op)

	fs = &fakeShm{bufferErr: errors.New("invalid stride")}
	_, err = (&Encoder{Shm: fs}).FromRGBA(img)
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "wl_shm_pool.create_buffer", oe.Op)
	assert.Equal(t, []string{"create_pool 4", "pool.destroy"}, fs.log, "the pool is destroyed on failure")

	_, err = (&Encoder{Shm: &fakeShm{}}).FromBGRA(make([]byte, 8), 3, 1, 0, 0)
	var dp *cursorimg.DimensionsVsPixelCountError
	assert.True(t, errors.As(err, &dp))
}

func newTestDisplay(t *testing.T) (*Display, *fakeShm, *fakeCompositor) {
	dir := t.TempDir()
	d := filepath.Join(dir, "test", "cursors")
	require.NoError(t, os.MkdirAll(d, 0o755))
	img := &xcursor.Image{Size: 24, Width: 3, Height: 2, XHot: 2, YHot: 1, Pixels: make([]uint32, 6)}
	var b bytes.Buffer
	require.NoError(t, xcursor.Encode(&b, []*xcursor.Image{img}))
	require.NoError(t, os.WriteFile(filepath.Join(d, "default"), b.Bytes(), 0o644))

	fs := &fakeShm{}
	fc := &fakeCompositor{}
	disp := &Display{
		Encoder:    Encoder{Shm: fs},
		Compositor: fc,
		Theme:      &xcursor.Theme{Name: "test", Size: 24, Paths: []string{dir}},
	}
	return disp, fs, fc
}

func TestDisplay(t *testing.T) {
	disp, _, fc := newTestDisplay(t)
	ptr := NewPointer(&fakePointer{log: &fc.log})
	ptr.Enter(7)
	assert.Equal(t, uint32(7), ptr.Serial())

	cache := disp.NewCache()
	require.NoError(t, cache.SelectBuiltIn(ptr, cursors.Arrow))
	assert.Equal(t, []string{"attach 3x2", "damage 3 2", "commit", "set_cursor 7 true 2 1"}, fc.log)

	// missing theme cursors fall back on the arrow
	fc.log = nil
	require.NoError(t, cache.SelectBuiltIn(ptr, cursors.Wait))
	assert.Equal(t, "set_cursor 7 true 2 1", fc.log[len(fc.log)-1])

	fc.log = nil
	require.NoError(t, cache.SetVisible(ptr, false))
	assert.Equal(t, []string{"attach 1x1", "damage 1 1", "commit", "set_cursor 7 true 0 0"}, fc.log)

	fc.log = nil
	require.NoError(t, disp.Apply(ptr, cursors.NoResource{}))
	assert.Equal(t, []string{"set_cursor 7 false 0 0"}, fc.log)
	assert.Equal(t, 1, fc.surfaces, "the cursor surface is reused")

	fc.log = nil
	require.NoError(t, disp.ReleasePointer(ptr))
	assert.Equal(t, []string{"surface.destroy"}, fc.log)
	require.NoError(t, cache.Close())
}

func TestCreateFile(t *testing.T) {
	f, err := createFile(fileName, 16)
	require.NoError(t, err)
	defer f.Close()
	st, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(16), st.Size())
}
