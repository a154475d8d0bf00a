// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macos

import (
	"bytes"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppKit struct {
	next    ID
	pix     []byte
	hotspot [2]float64
	live    map[ID]bool
	set     []ID
	system  map[string]ID
	fail    bool
}

func newFakeAppKit() *fakeAppKit {
	return &fakeAppKit{next: 100, live: map[ID]bool{}, system: map[string]ID{}}
}

func (f *fakeAppKit) NewCursor(rgba []byte, width, height int, hotspotX, hotspotY float64) (ID, error) {
	if f.fail {
		return 0, errors.New("nil NSCursor")
	}
	f.next++
	f.pix = bytes.Clone(rgba)
	f.hotspot = [2]float64{hotspotX, hotspotY}
	f.live[f.next] = true
	return f.next, nil
}

func (f *fakeAppKit) SystemCursor(selector string) (ID, error) {
	id, ok := f.system[selector]
	if !ok {
		id = ID(len(f.system) + 1)
		f.system[selector] = id
	}
	return id, nil
}

func (f *fakeAppKit) Set(cursor ID) error {
	f.set = append(f.set, cursor)
	return nil
}

func (f *fakeAppKit) Release(obj ID) {
	delete(f.live, obj)
}

func TestEncoder(t *testing.T) {
	ak := newFakeAppKit()
	e := &Encoder{AppKit: ak}
	rgba := bytes.Repeat([]byte{0xff, 0, 0, 0xff}, 4)
	img, err := cursorimg.New(rgba, 2, 2, 1, 0)
	require.NoError(t, err)

	res, err := e.FromRGBA(img)
	require.NoError(t, err)
	assert.Equal(t, rgba, ak.pix, "AppKit takes RGBA without a swap")
	assert.Equal(t, [2]float64{1, 0}, ak.hotspot, "the hotspot is not flipped")
	require.NoError(t, res.Release())
	require.NoError(t, res.Release())
	assert.Empty(t, ak.live)

	ak.fail = true
	_, err = e.FromRGBA(img)
	var oe *cursorimg.OSError
	assert.True(t, errors.As(err, &oe))

	var ne *Encoder
	_, err = ne.FromRGBA(img)
	assert.ErrorIs(t, err, cursors.ErrBackendUnavailable)
}

func TestDisplay(t *testing.T) {
	ak := newFakeAppKit()
	d := NewDisplay(ak)
	cache := d.NewCache()
	w := &Window{}

	require.NoError(t, cache.SelectBuiltIn(w, cursors.Pointer))
	assert.Empty(t, ak.set, "the cursor is only set while the window has the mouse")
	assert.Equal(t, ak.system["pointingHandCursor"], w.Current())

	w.SetHasMouse(true)
	require.NoError(t, cache.Reapply(w))
	assert.Equal(t, []ID{ak.system["pointingHandCursor"]}, ak.set)

	require.NoError(t, cache.SetVisible(w, false))
	assert.True(t, ak.live[w.Current()], "hidden is a blank custom cursor")

	require.NoError(t, cache.Close())
	assert.Empty(t, ak.live)

	assert.Equal(t, "resizeLeftRightCursor", Selector(cursors.ResizeEW))
	assert.Equal(t, "arrowCursor", Selector(cursors.ZoomIn))
}
