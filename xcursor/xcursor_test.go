// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcursor

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(size uint32, px uint32) *Image {
	img := &Image{Size: size, Width: size, Height: size, XHot: size / 2, YHot: size - 1}
	img.Pixels = make([]uint32, size*size)
	for i := range img.Pixels {
		img.Pixels[i] = px
	}
	return img
}

func encode(t *testing.T, images ...*Image) []byte {
	var b bytes.Buffer
	require.NoError(t, Encode(&b, images))
	return b.Bytes()
}

func TestEncodeDecode(t *testing.T) {
	data := encode(t, testImage(16, 0xff112233), testImage(24, 0x80402010), testImage(32, 0))
	assert.Equal(t, uint32(Magic), binary.LittleEndian.Uint32(data))
	assert.Equal(t, []byte("Xcur"), data[:4])

	sizes, err := Sizes(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []uint32{16, 24, 32}, sizes)

	imgs, err := Decode(bytes.NewReader(data), 22)
	require.NoError(t, err)
	require.Len(t, imgs, 1)
	assert.Equal(t, testImage(24, 0x80402010), imgs[0])

	imgs, err = Decode(bytes.NewReader(data), 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(16), imgs[0].Width)
}

func TestDecodeFrames(t *testing.T) {
	a, b := testImage(8, 1), testImage(8, 2)
	a.Delay, b.Delay = 50, 50
	imgs, err := Decode(bytes.NewReader(encode(t, a, b)), 8)
	require.NoError(t, err)
	require.Len(t, imgs, 2)
	assert.Equal(t, uint32(2), imgs[1].Pixels[0])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("nope nope nope nope")), 24)
	assert.ErrorContains(t, err, "bad magic")

	_, err = Decode(bytes.NewReader(encode(t)), 24)
	assert.ErrorContains(t, err, "no images")

	data := encode(t, testImage(4, 0))
	_, err = Decode(bytes.NewReader(data[:len(data)-3]), 4)
	assert.ErrorContains(t, err, "only 61 are left")

	// a header claiming the largest image in a tiny file
	huge := bytes.Clone(data)
	pos := binary.LittleEndian.Uint32(huge[24:])
	binary.LittleEndian.PutUint32(huge[pos+16:], MaxImageSize)
	binary.LittleEndian.PutUint32(huge[pos+20:], MaxImageSize)
	_, err = Decode(bytes.NewReader(huge), 4)
	assert.ErrorContains(t, err, "4294705156 bytes")

	bad := testImage(4, 0)
	bad.XHot = 4
	_, err = Decode(bytes.NewReader(encode(t, bad)), 4)
	assert.ErrorContains(t, err, "hotspot")

	bad = testImage(4, 0)
	bad.Pixels = bad.Pixels[:3]
	assert.Error(t, Encode(&bytes.Buffer{}, []*Image{bad}))
}

func TestBestSize(t *testing.T) {
	assert.Equal(t, uint32(24), BestSize([]uint32{16, 24, 48}, 24))
	assert.Equal(t, uint32(48), BestSize([]uint32{16, 24, 48}, 40))
	assert.Equal(t, uint32(16), BestSize([]uint32{16, 24, 48}, 20))
	assert.Equal(t, uint32(0), BestSize(nil, 20))
}

func TestCursorImage(t *testing.T) {
	ci, err := cursorimg.New([]byte{0xff, 0, 0, 0xff, 0xff, 0xff, 0xff, 0x80}, 2, 1, 1, 0)
	require.NoError(t, err)
	img := FromCursorImage(ci, 24)
	assert.Equal(t, uint32(24), img.Size)
	assert.Equal(t, uint32(1), img.XHot)
	assert.Equal(t, []uint32{0xffff0000, 0x80808080}, img.Pixels)
	assert.Equal(t, []byte{0, 0, 0xff, 0xff, 0x80, 0x80, 0x80, 0x80}, img.BGRA())

	back, err := img.CursorImage()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0, 0, 0xff, 0xff, 0xff, 0xff, 0x80}, back.Pix)
	assert.Equal(t, uint32(1), back.HotspotX)
}

func writeCursor(t *testing.T, dir, theme, name string) {
	d := filepath.Join(dir, theme, "cursors")
	require.NoError(t, os.MkdirAll(d, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(d, name), encode(t, testImage(24, 0xff000000)), 0o644))
}

func TestTheme(t *testing.T) {
	dir := t.TempDir()
	writeCursor(t, dir, "base", "left_ptr")
	writeCursor(t, dir, "fancy", "pointer")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fancy", "index.theme"),
		[]byte("[Icon Theme]\nName=Fancy\nInherits=missing, base\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "base"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base", "index.theme"),
		[]byte("[Icon Theme]\nInherits=fancy\n"), 0o644))

	th := &Theme{Name: "fancy", Size: 24, Paths: []string{dir}}
	f, err := th.Find("pointer")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fancy", "cursors", "pointer"), f)

	f, err = th.Find("left_ptr")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "base", "cursors", "left_ptr"), f)

	// inheritance cycles end
	_, err = th.Find("watch")
	assert.True(t, errors.Is(err, ErrNotFound))

	img, err := th.LoadCursor(cursors.Arrow)
	require.NoError(t, err)
	assert.Equal(t, uint32(24), img.Width)

	_, err = th.LoadCursor(cursors.Wait)
	assert.Error(t, err)

	names, err := th.Cursors()
	require.NoError(t, err)
	assert.Equal(t, []string{"pointer"}, names)

	inh, err := Inherits(filepath.Join(dir, "fancy", "index.theme"))
	require.NoError(t, err)
	assert.Equal(t, []string{"missing", "base"}, inh)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"default", "left_ptr", "arrow"}, Names(cursors.Arrow))
	assert.Equal(t, []string{"zoom-in"}, Names(cursors.ZoomIn))
	assert.Nil(t, Names(cursors.None))
	for _, c := range cursors.CursorValues() {
		if c != cursors.None {
			assert.NotEmpty(t, Names(c), c.String())
		}
	}
}

func TestLibraryPaths(t *testing.T) {
	t.Setenv("XCURSOR_PATH", "/a"+string(os.PathListSeparator)+"/b")
	assert.Equal(t, []string{"/a", "/b"}, LibraryPaths())

	t.Setenv("XCURSOR_PATH", "")
	t.Setenv("XDG_DATA_HOME", "/data")
	paths := LibraryPaths()
	assert.Equal(t, "/data/icons", paths[0])
	assert.Len(t, paths, len(DefaultPaths)+1)

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".icons"), paths[1])

	th := NewTheme("", 0)
	assert.Equal(t, DefaultTheme, th.Name)
	assert.Equal(t, uint32(DefaultSize), th.Size)
}
