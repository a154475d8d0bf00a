// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x11

import (
	"fmt"

	"cogentcore.org/cursors/cursorimg"
	"cogentcore.org/cursors/xcursor"
)

// Image is an ARGB cursor image in the layout of an XcursorImage:
// one 32 bit word per pixel with alpha in the high byte.
type Image struct {
	Width, Height uint32
	XHot, YHot    uint32
	Delay         uint32
	Pixels        []uint32
}

// NewImage returns a new [Image] from the given validated RGBA cursor
// image. The pixels of the cursor image are not modified.
func NewImage(img *cursorimg.Image) (*Image, error) {
	return NewImageBGRA(img.BGRA(), img.Width, img.Height, img.HotspotX, img.HotspotY)
}

// NewImageBGRA returns a new [Image] from the given BGRA bytes, which
// have already had their red and blue channels swapped.
func NewImageBGRA(bgra []byte, width, height, hotspotX, hotspotY uint32) (*Image, error) {
	if uint64(len(bgra)) != uint64(width)*uint64(height)*cursorimg.PixelSize {
		return nil, &cursorimg.DimensionsVsPixelCountError{
			Width: width, Height: height,
			WidthXHeight: uint64(width) * uint64(height),
			PixelCount:   uint64(len(bgra) / cursorimg.PixelSize),
		}
	}
	if width > 0xffff || height > 0xffff {
		return nil, fmt.Errorf("x11: cursor image of %dx%d is too large", width, height)
	}
	return &Image{
		Width:  width,
		Height: height,
		XHot:   hotspotX,
		YHot:   hotspotY,
		Pixels: cursorimg.PackARGB(bgra),
	}, nil
}

// FromXcursor returns a new [Image] with the premultiplied pixels of the
// given Xcursor theme image, which are used as they are.
func FromXcursor(img *xcursor.Image) *Image {
	return &Image{
		Width:  img.Width,
		Height: img.Height,
		XHot:   img.XHot,
		YHot:   img.YHot,
		Delay:  img.Delay,
		Pixels: img.Pixels,
	}
}

// blank is the image used for the hidden cursor.
func blank() *Image {
	return &Image{Width: 1, Height: 1, Pixels: []uint32{0}}
}
