// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursorenc

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/cursors/xcursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int) string {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{0x20, 0x40, 0x80, 0xff})
		}
	}
	fnm := filepath.Join(t.TempDir(), "hand.png")
	f, err := os.Create(fnm)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return fnm
}

func TestCSS(t *testing.T) {
	c := &Config{Input: writePNG(t, 8, 8), HotspotX: 2, HotspotY: 5}
	require.NoError(t, CSS(c))
	b, err := os.ReadFile(strings.TrimSuffix(c.Input, ".png") + ".css")
	require.NoError(t, err)
	v := string(b)
	assert.True(t, strings.HasPrefix(v, "url(data:image/png;base64,"), v)
	assert.True(t, strings.HasSuffix(v, ") 2 5, auto\n"), v)

	c.HotspotX = 8
	assert.Error(t, CSS(c))
	c.HotspotX = -1
	assert.Error(t, CSS(c))
	c.Input = filepath.Join(t.TempDir(), "missing.png")
	assert.Error(t, CSS(c))

	c.Input = filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(c.Input, []byte("not an image at all"), 0666))
	c.HotspotX = 0
	assert.ErrorContains(t, CSS(c), "not an image")
}

func TestXcursor(t *testing.T) {
	c := &Config{Input: writePNG(t, 8, 8), HotspotX: 4, HotspotY: 2, Sizes: []int{16, 32}}
	c.Output = filepath.Join(t.TempDir(), "hand")
	require.NoError(t, Xcursor(c))

	f, err := os.Open(c.Output)
	require.NoError(t, err)
	defer f.Close()
	sizes, err := xcursor.Sizes(f)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint32{16, 32}, sizes)

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	imgs, err := xcursor.Decode(f, 32)
	require.NoError(t, err)
	require.Len(t, imgs, 1)
	assert.Equal(t, uint32(32), imgs[0].Width)
	assert.Equal(t, uint32(16), imgs[0].XHot)
	assert.Equal(t, uint32(8), imgs[0].YHot)
	assert.Equal(t, uint32(0xff204080), imgs[0].Pixels[0])

	c.Sizes = []int{0}
	assert.Error(t, Xcursor(c))
}

func TestXcursorImageSize(t *testing.T) {
	c := &Config{Input: writePNG(t, 6, 4)}
	require.NoError(t, Xcursor(c))
	f, err := os.Open(strings.TrimSuffix(c.Input, ".png") + ".xcursor")
	require.NoError(t, err)
	defer f.Close()
	imgs, err := xcursor.Decode(f, 24)
	require.NoError(t, err)
	require.Len(t, imgs, 1)
	assert.Equal(t, uint32(6), imgs[0].Size)
	assert.Equal(t, uint32(6), imgs[0].Width)
	assert.Equal(t, uint32(4), imgs[0].Height)
}

func TestXcursorInputWithoutExtension(t *testing.T) {
	src := writePNG(t, 4, 4)
	in := strings.TrimSuffix(src, ".png")
	require.NoError(t, os.Rename(src, in))
	before, err := os.ReadFile(in)
	require.NoError(t, err)

	c := &Config{Input: in}
	require.NoError(t, Xcursor(c))
	after, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, before, after, "the input is unchanged")
	_, err = os.Stat(in + ".xcursor")
	assert.NoError(t, err)

	c.Output = in
	assert.ErrorContains(t, Xcursor(c), "is the input file")
	c.Output = filepath.Join(filepath.Dir(in), ".", filepath.Base(in))
	assert.ErrorContains(t, CSS(c), "is the input file")
	after, err = os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
