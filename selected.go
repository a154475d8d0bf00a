// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursors

import "strconv"

// Selected is the cursor selected for a window: either a built-in
// [Cursor] shape or the key of a custom cursor registered in a [Cache].
// The zero value is the built-in [Arrow].
type Selected struct {

	// IsCustom is whether a custom cursor is selected.
	IsCustom bool

	// Shape is the selected built-in shape, used when IsCustom is false.
	Shape Cursor

	// Key is the selected custom cursor key, used when IsCustom is true.
	Key uint64
}

// BuiltIn returns a [Selected] for the given built-in shape.
func BuiltIn(shape Cursor) Selected {
	return Selected{Shape: shape}
}

// Custom returns a [Selected] for the custom cursor with the given key.
func Custom(key uint64) Selected {
	return Selected{IsCustom: true, Key: key}
}

func (s Selected) String() string {
	if s.IsCustom {
		return "custom-" + strconv.FormatUint(s.Key, 10)
	}
	return s.Shape.String()
}
