// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursorimg

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// BadCursor is the error returned when a custom cursor cannot be made from
// the given image. The input errors ([ByteCountNotDivisibleBy4Error],
// [DimensionsVsPixelCountError] and [HotspotOutOfBoundsError]) are detected
// before any native call is made. [OSError] reports a failed native
// allocation, and [ErrOther] anything else a driver could not classify.
type BadCursor interface {
	error
	badCursor()
}

// ByteCountNotDivisibleBy4Error is returned when the length of the rgba
// bytes is not divisible by 4, so they can not be read as 32 bit pixels.
type ByteCountNotDivisibleBy4Error struct {
	ByteCount int
}

func (e *ByteCountNotDivisibleBy4Error) Error() string {
	return fmt.Sprintf("cursorimg: the length of the rgba bytes (%d) is not divisible by 4, making it impossible to interpret as 32bpp RGBA pixels", e.ByteCount)
}

func (e *ByteCountNotDivisibleBy4Error) badCursor() {}

// DimensionsVsPixelCountError is returned when the number of pixels in the
// rgba bytes is not equal to width * height.
type DimensionsVsPixelCountError struct {
	Width        uint32
	Height       uint32
	WidthXHeight uint64
	PixelCount   uint64
}

func (e *DimensionsVsPixelCountError) Error() string {
	return fmt.Sprintf("cursorimg: the dimensions (%dx%d) do not match the number of pixels in the rgba bytes (%d); for those dimensions, the expected pixel count is %d", e.Width, e.Height, e.PixelCount, e.WidthXHeight)
}

func (e *DimensionsVsPixelCountError) badCursor() {}

// HotspotOutOfBoundsError is returned when the hotspot is outside of the
// image bounds.
type HotspotOutOfBoundsError struct {
	Width    uint32
	Height   uint32
	HotspotX uint32
	HotspotY uint32
}

func (e *HotspotOutOfBoundsError) Error() string {
	return fmt.Sprintf("cursorimg: the hotspot (%d, %d) is outside the image bounds (%dx%d)", e.HotspotX, e.HotspotY, e.Width, e.Height)
}

func (e *HotspotOutOfBoundsError) badCursor() {}

// OSError is returned when the underlying platform failed to create a
// native cursor resource. Op names the native call that failed.
// It may be transient, but retrying is not guaranteed to help.
type OSError struct {
	Op  string
	Err error
}

// NewOSError returns a new [OSError] for the given operation and error.
func NewOSError(op string, err error) *OSError {
	return &OSError{Op: op, Err: err}
}

func (e *OSError) Error() string {
	return fmt.Sprintf("cursorimg: OS error in %s when instantiating the image: %v", e.Op, e.Err)
}

func (e *OSError) Unwrap() error { return e.Err }

func (e *OSError) badCursor() {}

type otherError struct{}

func (otherError) Error() string { return "cursorimg: other error" }

func (otherError) badCursor() {}

// ErrOther is returned for driver failures that are not otherwise classified.
var ErrOther BadCursor = otherError{}

// IsInputError returns whether err is one of the caller input errors, which
// are always fixed by correcting the arguments.
func IsInputError(err error) bool {
	var bc *ByteCountNotDivisibleBy4Error
	var dp *DimensionsVsPixelCountError
	var hs *HotspotOutOfBoundsError
	return errors.As(err, &bc) || errors.As(err, &dp) || errors.As(err, &hs)
}
