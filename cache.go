// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursors

import (
	"log/slog"
	"sync"

	"cogentcore.org/core/base/errors"
)

// ErrClosed is returned by the methods of a [Cache] after it is closed.
var ErrClosed = errors.New("cursors: cache is closed")

// Display is the native side of a [Cache]: one connection to a windowing
// system, with windows of type W.
type Display[W comparable] interface {

	// BuiltIn returns a new resource for the given built-in shape.
	// The cache owns and releases the returned resource.
	BuiltIn(shape Cursor) (Resource, error)

	// Apply makes the given resource the pointer shape of the given window.
	Apply(win W, res Resource) error
}

// Cache holds the custom cursors registered with one windowing system
// connection, the lazily loaded built-in cursors of that connection and
// the cursor selection of each of its windows. It is safe for concurrent
// use.
type Cache[W comparable] struct {
	display Display[W]

	mu       sync.Mutex
	custom   map[uint64]*CustomCursor
	builtins map[Cursor]Resource
	windows  map[W]*windowState
	closed   bool
}

type windowState struct {
	selected Selected
	hidden   bool
	applied  appliedState

	// held are owners of cursors that the window may still show after a
	// failed apply. They are released after the next successful apply.
	held []*CustomCursor
}

// appliedState identifies what was last applied to a window, so that
// redundant applies can be skipped.
type appliedState struct {
	valid  bool
	shared *shared
	shape  Cursor
}

// NewCache returns a new [Cache] for the given display.
func NewCache[W comparable](display Display[W]) *Cache[W] {
	return &Cache[W]{
		display:  display,
		custom:   map[uint64]*CustomCursor{},
		builtins: map[Cursor]Resource{},
		windows:  map[W]*windowState{},
	}
}

// Display returns the display of the cache.
func (c *Cache[W]) Display() Display[W] {
	return c.display
}

// Register registers a clone of the given cursor under the given key.
// Registering a cursor equal to the one already registered under the key
// does nothing. Otherwise, visible windows that have the key selected
// are switched to the new cursor before the previous one is released,
// so they never show a built-in cursor in between. A window that can not
// be switched falls back to [Arrow], and if even that fails it keeps the
// previous cursor alive until it is next applied successfully.
func (c *Cache[W]) Register(key uint64, cur *CustomCursor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	old, had := c.custom[key]
	if had && old.Equal(cur) {
		return nil
	}
	nc := cur.Clone()
	c.custom[key] = nc
	var errs []error
	for win, ws := range c.windows {
		if ws.hidden || !ws.selected.IsCustom || ws.selected.Key != key {
			continue
		}
		err := c.applyCustom(win, ws, nc)
		if err != nil && had {
			err = errors.Join(err, c.fallBack(win, ws, old))
		}
		errs = append(errs, err)
	}
	if had {
		errs = append(errs, old.Release())
	}
	return errors.Join(errs...)
}

// Unregister removes the custom cursor registered under the given key,
// returning whether there was one. Windows that had it selected go back
// to [Arrow] before it is released.
func (c *Cache[W]) Unregister(key uint64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.custom[key]
	if !ok {
		return false, nil
	}
	delete(c.custom, key)
	var errs []error
	for win, ws := range c.windows {
		if !ws.selected.IsCustom || ws.selected.Key != key {
			continue
		}
		ws.selected = BuiltIn(Arrow)
		if err := c.apply(win, ws); err != nil {
			ws.held = append(ws.held, cur.Clone())
			errs = append(errs, err)
		}
	}
	errs = append(errs, cur.Release())
	return true, errors.Join(errs...)
}

// Lookup returns a new owner of the custom cursor registered under the
// given key, which the caller must release.
func (c *Cache[W]) Lookup(key uint64) (*CustomCursor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.custom[key]
	if !ok {
		return nil, false
	}
	return cur.Clone(), true
}

// Len returns the number of registered custom cursors.
func (c *Cache[W]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.custom)
}

// SelectCustom selects the custom cursor registered under the given key
// for the given window, returning whether there is one. Selecting a key
// that is not registered does nothing.
func (c *Cache[W]) SelectCustom(win W, key uint64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false, ErrClosed
	}
	cur, ok := c.custom[key]
	if !ok {
		return false, nil
	}
	ws := c.state(win)
	ws.selected = Custom(key)
	if ws.hidden {
		return true, nil
	}
	return true, c.applyCustom(win, ws, cur)
}

// SelectBuiltIn selects the given built-in shape for the given window.
func (c *Cache[W]) SelectBuiltIn(win W, shape Cursor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	ws := c.state(win)
	ws.selected = BuiltIn(shape)
	return c.apply(win, ws)
}

// Select selects the given cursor for the given window, returning
// whether it was selected. See [Cache.SelectCustom].
func (c *Cache[W]) Select(win W, sel Selected) (bool, error) {
	if sel.IsCustom {
		return c.SelectCustom(win, sel.Key)
	}
	return true, c.SelectBuiltIn(win, sel.Shape)
}

// SetVisible sets whether the cursor is visible in the given window.
// A hidden window shows [None], and keeps its selection for when it is
// visible again.
func (c *Cache[W]) SetVisible(win W, visible bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	ws := c.state(win)
	if ws.hidden == !visible {
		return nil
	}
	ws.hidden = !visible
	return c.apply(win, ws)
}

// Reapply applies the current cursor of the given window again, for
// example after the pointer has entered it.
func (c *Cache[W]) Reapply(win W) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	ws := c.state(win)
	ws.applied = appliedState{}
	return c.apply(win, ws)
}

// Selection returns the cursor selected for the given window.
func (c *Cache[W]) Selection(win W) Selected {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ws, ok := c.windows[win]; ok {
		return ws.selected
	}
	return Selected{}
}

// Visible returns whether the cursor is visible in the given window.
func (c *Cache[W]) Visible(win W) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ws, ok := c.windows[win]; ok {
		return !ws.hidden
	}
	return true
}

// ForgetWindow removes the state of the given window, which must be
// called when it is closed.
func (c *Cache[W]) ForgetWindow(win W) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ws, ok := c.windows[win]; ok {
		errors.Log(ws.release())
		delete(c.windows, win)
	}
}

// ResetBuiltIns releases all of the loaded built-in cursors, which are
// then loaded again when needed, and applies them again to the windows
// showing one. It is used when the cursor theme changes.
func (c *Cache[W]) ResetBuiltIns() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	old := c.builtins
	c.builtins = map[Cursor]Resource{}
	held := map[Cursor]*CustomCursor{}
	var errs []error
	for win, ws := range c.windows {
		if !ws.applied.valid || ws.applied.shared != nil {
			continue
		}
		shape := ws.applied.shape
		ws.applied = appliedState{}
		err := c.apply(win, ws)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		// the window may still show the old resource
		h, ok := held[shape]
		if !ok {
			res, ok := old[shape]
			if !ok {
				continue
			}
			delete(old, shape)
			h = NewCustomCursor(res)
			held[shape] = h
		}
		ws.held = append(ws.held, h.Clone())
	}
	for _, res := range old {
		errs = append(errs, res.Release())
	}
	for _, h := range held {
		errs = append(errs, h.Release())
	}
	return errors.Join(errs...)
}

// Close releases all of the cursors of the cache. The cache can not be
// used after it is closed.
func (c *Cache[W]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	var errs []error
	for _, cur := range c.custom {
		errs = append(errs, cur.Release())
	}
	for _, res := range c.builtins {
		errs = append(errs, res.Release())
	}
	for _, ws := range c.windows {
		errs = append(errs, ws.release())
	}
	c.custom = nil
	c.builtins = nil
	c.windows = nil
	return errors.Join(errs...)
}

func (c *Cache[W]) state(win W) *windowState {
	ws, ok := c.windows[win]
	if !ok {
		ws = &windowState{}
		c.windows[win] = ws
	}
	return ws
}

// apply applies the current cursor of the window.
func (c *Cache[W]) apply(win W, ws *windowState) error {
	if ws.hidden {
		return c.applyBuiltIn(win, ws, None)
	}
	if ws.selected.IsCustom {
		cur, ok := c.custom[ws.selected.Key]
		if !ok {
			slog.Warn("cursors: selected custom cursor is not registered", "key", ws.selected.Key)
			return nil
		}
		return c.applyCustom(win, ws, cur)
	}
	return c.applyBuiltIn(win, ws, ws.selected.Shape)
}

func (c *Cache[W]) applyCustom(win W, ws *windowState, cur *CustomCursor) error {
	sh := cur.owner.shared
	if ws.applied.valid && ws.applied.shared == sh {
		return nil
	}
	if err := c.display.Apply(win, sh.res); err != nil {
		ws.applied = appliedState{}
		return err
	}
	ws.applied = appliedState{valid: true, shared: sh}
	return ws.release()
}

func (c *Cache[W]) applyBuiltIn(win W, ws *windowState, shape Cursor) error {
	if ws.applied.valid && ws.applied.shared == nil && ws.applied.shape == shape {
		return nil
	}
	res, err := c.builtIn(shape)
	if err != nil {
		return err
	}
	if err := c.display.Apply(win, res); err != nil {
		ws.applied = appliedState{}
		return err
	}
	ws.applied = appliedState{valid: true, shape: shape}
	return ws.release()
}

// fallBack moves a window whose apply has failed onto [Arrow], so that
// the cursor it may still show can be released. If that fails too, the
// window holds an owner of the cursor.
func (c *Cache[W]) fallBack(win W, ws *windowState, cur *CustomCursor) error {
	err := c.applyBuiltIn(win, ws, Arrow)
	if err != nil {
		ws.held = append(ws.held, cur.Clone())
	}
	return err
}

// release releases the cursors held by the window.
func (ws *windowState) release() error {
	var errs []error
	for _, h := range ws.held {
		errs = append(errs, h.Release())
	}
	ws.held = nil
	return errors.Join(errs...)
}

func (c *Cache[W]) builtIn(shape Cursor) (Resource, error) {
	if res, ok := c.builtins[shape]; ok {
		return res, nil
	}
	res, err := c.display.BuiltIn(shape)
	if err != nil {
		return nil, err
	}
	c.builtins[shape] = res
	return res, nil
}
