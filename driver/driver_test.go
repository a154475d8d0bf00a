// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, &Config{Theme: "default", Size: 24, Watch: true}, cfg)
}

func TestOpenConfig(t *testing.T) {
	t.Setenv("XCURSOR_THEME", "")
	t.Setenv("XCURSOR_SIZE", "")
	t.Setenv("DISPLAY", ":7")

	fnm := filepath.Join(t.TempDir(), "cursors.toml")
	require.NoError(t, os.WriteFile(fnm, []byte("Theme = \"Adwaita\"\nSize = 48\nWatch = false\n"), 0666))
	cfg, err := OpenConfig(fnm)
	require.NoError(t, err)
	assert.Equal(t, &Config{Theme: "Adwaita", Size: 48, Display: ":7"}, cfg)

	cfg, err = OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Theme)

	require.NoError(t, os.WriteFile(fnm, []byte("Colour = 3\n"), 0666))
	_, err = OpenConfig(fnm)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fnm, []byte("Size = [\n"), 0666))
	_, err = OpenConfig(fnm)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("XCURSOR_THEME", "breeze_cursors")
	t.Setenv("XCURSOR_SIZE", "32")
	t.Setenv("DISPLAY", ":1")
	cfg := &Config{Theme: "default", Size: 24, Display: ":0"}
	cfg.ApplyEnv()
	assert.Equal(t, &Config{Theme: "breeze_cursors", Size: 32, Display: ":0"}, cfg)

	t.Setenv("XCURSOR_SIZE", "big")
	cfg.ApplyEnv()
	assert.Equal(t, 32, cfg.Size)
}

func TestThemeWatcher(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	w, err := NewThemeWatcher([]string{dir, filepath.Join(dir, "missing")}, func() {
		calls.Add(1)
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "left_ptr"), []byte("x"), 0666))
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

type fakeResource struct {
	name string
	log  *[]string
	mu   *sync.Mutex
}

func (r *fakeResource) Release() error {
	r.mu.Lock()
	*r.log = append(*r.log, "release "+r.name)
	r.mu.Unlock()
	return nil
}

type fakeDisplay struct {
	mu  sync.Mutex
	log []string
}

func (d *fakeDisplay) res(name string) *fakeResource {
	return &fakeResource{name: name, log: &d.log, mu: &d.mu}
}

func (d *fakeDisplay) BuiltIn(shape cursors.Cursor) (cursors.Resource, error) {
	return d.res(shape.String()), nil
}

func (d *fakeDisplay) Apply(win int, res cursors.Resource) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	name := "none"
	if r, ok := res.(*fakeResource); ok {
		name = r.name
	}
	d.log = append(d.log, "apply "+name)
	return nil
}

func (d *fakeDisplay) Log() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.log...)
}

func TestDriver(t *testing.T) {
	d := &Driver{Config: DefaultConfig()}
	fd1, fd2 := &fakeDisplay{}, &fakeDisplay{}
	c1, c2 := cursors.NewCache[int](fd1), cursors.NewCache[int](fd2)
	d.addCache(c1)
	d.addCache(c2)
	assert.Len(t, d.Caches(), 2)

	closed := 0
	d.onClose(func() error {
		closed++
		return nil
	})

	cur := cursors.NewCustomCursor(fd2.res("hand-drawn"))
	require.NoError(t, d.RegisterCustomCursor(5, cur))
	require.NoError(t, cur.Release())
	assert.Equal(t, 1, c1.Len())
	assert.Equal(t, 1, c2.Len())

	ok, err := c2.SelectCustom(3, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, c1.SelectBuiltIn(1, cursors.Text))

	require.NoError(t, d.ResetBuiltIns())
	assert.Equal(t, []string{"apply text", "apply text", "release text"}, fd1.Log())

	require.NoError(t, d.UnregisterCustomCursor(5))
	assert.Equal(t, 0, c1.Len())
	assert.Equal(t, []string{"apply hand-drawn", "apply arrow", "release hand-drawn"}, fd2.Log())

	cursors.SetEncoder(cursors.EncoderFunc(func(*cursorimg.Image) (cursors.Resource, error) {
		return cursors.NoResource{}, nil
	}))
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.Equal(t, 1, closed)
	assert.Nil(t, cursors.CurrentEncoder())
	assert.Empty(t, d.Caches())
	assert.ErrorIs(t, c1.ResetBuiltIns(), cursors.ErrClosed)
}
