// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcursor

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors"
	"github.com/mitchellh/go-homedir"
)

// DefaultTheme is the theme used when no theme name is given.
const DefaultTheme = "default"

// DefaultSize is the nominal cursor size used when no size is given.
const DefaultSize = 24

// DefaultPaths are the theme directories searched after XDG_DATA_HOME.
var DefaultPaths = []string{
	"~/.icons",
	"/usr/share/icons",
	"/usr/share/pixmaps",
	"~/.cursors",
	"/usr/share/cursors/xorg-x11",
	"/usr/X11R6/lib/X11/icons",
}

// ErrNotFound is returned when a cursor is not found in a theme or any of
// the themes it inherits from.
var ErrNotFound = errors.New("xcursor: cursor not found in theme")

// LibraryPaths returns the directories that contain cursor themes, from
// the XCURSOR_PATH environment variable if it is set.
func LibraryPaths() []string {
	var paths []string
	if v, ok := os.LookupEnv("XCURSOR_PATH"); ok && v != "" {
		paths = filepath.SplitList(v)
	} else {
		data := os.Getenv("XDG_DATA_HOME")
		if data == "" || !filepath.IsAbs(data) {
			data = "~/.local/share"
		}
		paths = append([]string{filepath.Join(data, "icons")}, DefaultPaths...)
	}
	for i, p := range paths {
		if exp, err := homedir.Expand(p); err == nil {
			paths[i] = exp
		}
	}
	return paths
}

// Theme is a named cursor theme.
type Theme struct {

	// Name is the name of the theme directory.
	Name string

	// Size is the preferred nominal size of the cursors.
	Size uint32

	// Paths are the directories that contain themes.
	// [LibraryPaths] is used if it is nil.
	Paths []string
}

// NewTheme returns a new [Theme] with the given name and size, using the
// defaults for empty values.
func NewTheme(name string, size uint32) *Theme {
	if name == "" {
		name = DefaultTheme
	}
	if size == 0 {
		size = DefaultSize
	}
	return &Theme{Name: name, Size: size}
}

func (t *Theme) paths() []string {
	if t.Paths != nil {
		return t.Paths
	}
	return LibraryPaths()
}

// Dirs returns the existing directories of the theme, in search order.
func (t *Theme) Dirs() []string {
	var dirs []string
	for _, p := range t.paths() {
		dir := filepath.Join(p, t.Name)
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Find returns the path of the cursor file with the given name, searching
// the theme and then the themes it inherits from.
func (t *Theme) Find(name string) (string, error) {
	return t.find(t.Name, name, map[string]bool{})
}

func (t *Theme) find(theme, name string, visited map[string]bool) (string, error) {
	if visited[theme] {
		return "", ErrNotFound
	}
	visited[theme] = true
	var inherits []string
	for _, p := range t.paths() {
		dir := filepath.Join(p, theme)
		file := filepath.Join(dir, "cursors", name)
		if st, err := os.Stat(file); err == nil && st.Mode().IsRegular() {
			return file, nil
		}
		if inherits == nil {
			inherits, _ = Inherits(filepath.Join(dir, "index.theme"))
		}
	}
	for _, in := range inherits {
		if f, err := t.find(in, name, visited); err == nil {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q in %q", ErrNotFound, name, theme)
}

// Load loads the images of the cursor file with the given name.
func (t *Theme) Load(name string) ([]*Image, error) {
	file, err := t.Find(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, t.Size)
}

// LoadCursor loads the first image of the first file found for the given
// built-in cursor. See [Names].
func (t *Theme) LoadCursor(c cursors.Cursor) (*Image, error) {
	var errs []error
	for _, name := range Names(c) {
		imgs, err := t.Load(name)
		if err == nil && len(imgs) > 0 {
			return imgs[0], nil
		}
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("xcursor: load %v: %w", c, errors.Join(errs...))
}

// Cursors returns the names of all of the cursor files in the theme
// itself, not including inherited themes.
func (t *Theme) Cursors() ([]string, error) {
	var names []string
	seen := map[string]bool{}
	for _, dir := range t.Dirs() {
		ents, err := os.ReadDir(filepath.Join(dir, "cursors"))
		if err != nil {
			continue
		}
		for _, e := range ents {
			if tp := e.Type(); !tp.IsRegular() && tp&fs.ModeSymlink == 0 {
				continue
			}
			if !seen[e.Name()] {
				seen[e.Name()] = true
				names = append(names, e.Name())
			}
		}
	}
	return names, nil
}

// Inherits returns the themes listed on the Inherits line of the given
// index.theme file.
func Inherits(indexFile string) ([]string, error) {
	f, err := os.Open(indexFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if !strings.HasPrefix(line, "Inherits") {
			continue
		}
		_, after, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		var inherits []string
		for _, v := range strings.FieldsFunc(after, func(r rune) bool { return r == ':' || r == ',' || r == ';' }) {
			if v = strings.TrimSpace(v); v != "" {
				inherits = append(inherits, v)
			}
		}
		return inherits, nil
	}
	return []string{}, s.Err()
}

// legacyNames are the traditional X11 names of cursors, tried after the
// CSS names of [cursors.Cursor.CSS].
var legacyNames = map[cursors.Cursor][]string{
	cursors.Arrow:        {"left_ptr", "arrow"},
	cursors.ContextMenu:  {"left_ptr"},
	cursors.Help:         {"question_arrow", "whats_this"},
	cursors.Pointer:      {"hand2", "hand1", "pointing_hand"},
	cursors.Progress:     {"left_ptr_watch", "half-busy"},
	cursors.Wait:         {"watch"},
	cursors.Cell:         {"plus"},
	cursors.Crosshair:    {"cross", "tcross"},
	cursors.Text:         {"xterm", "ibeam"},
	cursors.VerticalText: {"xterm"},
	cursors.Alias:        {"dnd-link", "link"},
	cursors.Copy:         {"dnd-copy"},
	cursors.Move:         {"fleur", "dnd-move"},
	cursors.NoDrop:       {"dnd-no-drop", "forbidden"},
	cursors.NotAllowed:   {"crossed_circle", "forbidden"},
	cursors.Grab:         {"openhand", "hand1"},
	cursors.Grabbing:     {"closedhand", "fleur"},
	cursors.ResizeCol:    {"sb_h_double_arrow", "split_h"},
	cursors.ResizeRow:    {"sb_v_double_arrow", "split_v"},
	cursors.ResizeN:      {"top_side"},
	cursors.ResizeE:      {"right_side"},
	cursors.ResizeS:      {"bottom_side"},
	cursors.ResizeW:      {"left_side"},
	cursors.ResizeNE:     {"top_right_corner"},
	cursors.ResizeNW:     {"top_left_corner"},
	cursors.ResizeSE:     {"bottom_right_corner"},
	cursors.ResizeSW:     {"bottom_left_corner"},
	cursors.ResizeEW:     {"sb_h_double_arrow", "h_double_arrow"},
	cursors.ResizeNS:     {"sb_v_double_arrow", "v_double_arrow"},
	cursors.ResizeNESW:   {"fd_double_arrow", "size_bdiag"},
	cursors.ResizeNWSE:   {"bd_double_arrow", "size_fdiag"},
	cursors.ZoomIn:       {"zoom-in"},
	cursors.ZoomOut:      {"zoom-out"},
	cursors.AllScroll:    {"fleur"},
}

// Names returns the cursor file names to try for the given built-in
// cursor, most preferred first. [cursors.None] has no names.
func Names(c cursors.Cursor) []string {
	if c == cursors.None {
		return nil
	}
	css := c.CSS()
	names := []string{css}
	for _, n := range legacyNames[c] {
		if n != css {
			names = append(names, n)
		}
	}
	return names
}
