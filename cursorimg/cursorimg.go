// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursorimg provides the validated, backend-agnostic representation
// of custom cursor images, along with the pixel format transforms that the
// platform drivers need to turn them into native cursor resources.
package cursorimg

// PixelSize is the number of bytes in one RGBA pixel.
const PixelSize = 4

// Image is a custom cursor image in 32 bits per pixel, non-premultiplied
// RGBA, stored row by row from the top-left corner with a stride of
// Width*PixelSize, along with its hotspot.
type Image struct {

	// Pix contains the RGBA bytes of the image.
	Pix []byte

	// Width is the width of the image in pixels.
	Width uint32

	// Height is the height of the image in pixels.
	Height uint32

	// HotspotX is the horizontal offset of the pixel that tracks
	// the pointer position, from the left of the image.
	HotspotX uint32

	// HotspotY is the vertical offset of the pixel that tracks
	// the pointer position, from the top of the image.
	HotspotY uint32
}

// New returns a new [Image] after checking the given values with [Validate].
// The rgba bytes are copied, so the caller is free to reuse them.
func New(rgba []byte, width, height, hotspotX, hotspotY uint32) (*Image, error) {
	if err := Validate(rgba, width, height, hotspotX, hotspotY); err != nil {
		return nil, err
	}
	pix := make([]byte, len(rgba))
	copy(pix, rgba)
	return &Image{Pix: pix, Width: width, Height: height, HotspotX: hotspotX, HotspotY: hotspotY}, nil
}

// Validate checks that rgba can be interpreted as width x height RGBA pixels
// and that the hotspot lies inside the image. The checks happen in a fixed
// order, and the first one that fails determines the returned error:
//   - [ByteCountNotDivisibleBy4Error]
//   - [DimensionsVsPixelCountError]
//   - [HotspotOutOfBoundsError]
func Validate(rgba []byte, width, height, hotspotX, hotspotY uint32) error {
	if len(rgba)%PixelSize != 0 {
		return &ByteCountNotDivisibleBy4Error{ByteCount: len(rgba)}
	}
	pixelCount := uint64(len(rgba) / PixelSize)
	wxh := uint64(width) * uint64(height)
	if pixelCount != wxh {
		return &DimensionsVsPixelCountError{
			Width:        width,
			Height:       height,
			WidthXHeight: wxh,
			PixelCount:   pixelCount,
		}
	}
	if hotspotX >= width || hotspotY >= height {
		return &HotspotOutOfBoundsError{
			Width:    width,
			Height:   height,
			HotspotX: hotspotX,
			HotspotY: hotspotY,
		}
	}
	return nil
}

// Validate checks the image with [Validate].
func (im *Image) Validate() error {
	return Validate(im.Pix, im.Width, im.Height, im.HotspotX, im.HotspotY)
}

// Stride returns the number of bytes in one row of the image.
func (im *Image) Stride() int {
	return int(im.Width) * PixelSize
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	cp := *im
	cp.Pix = make([]byte, len(im.Pix))
	copy(cp.Pix, im.Pix)
	return &cp
}
