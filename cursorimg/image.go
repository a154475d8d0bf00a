// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursorimg

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage returns a new [Image] with the pixels of the given image,
// converted to non-premultiplied RGBA, and the given hotspot relative to
// the top-left corner of the image bounds. The result is validated.
func FromImage(img image.Image, hotspot image.Point) (*Image, error) {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return New(dst.Pix, uint32(b.Dx()), uint32(b.Dy()), uint32(max(hotspot.X, 0)), uint32(max(hotspot.Y, 0)))
}

// NRGBA returns the image as an [image.NRGBA] that shares its pixels.
func (im *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    im.Pix,
		Stride: im.Stride(),
		Rect:   image.Rect(0, 0, int(im.Width), int(im.Height)),
	}
}

// Hotspot returns the hotspot of the image as an [image.Point].
func (im *Image) Hotspot() image.Point {
	return image.Pt(int(im.HotspotX), int(im.HotspotY))
}

// Resize returns a copy of the image scaled to the given size with
// Catmull-Rom interpolation, with the hotspot scaled along with it.
// It returns the image itself if it already has the given size.
func (im *Image) Resize(size image.Point) (*Image, error) {
	if size.X == int(im.Width) && size.Y == int(im.Height) {
		return im, nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	src := im.NRGBA()
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	hot := im.Hotspot()
	if im.Width > 0 && im.Height > 0 {
		hot.X = min(hot.X*size.X/int(im.Width), max(size.X-1, 0))
		hot.Y = min(hot.Y*size.Y/int(im.Height), max(size.Y-1, 0))
	}
	return New(dst.Pix, uint32(size.X), uint32(size.Y), uint32(hot.X), uint32(hot.Y))
}
