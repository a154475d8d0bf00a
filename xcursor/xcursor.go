// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xcursor reads and writes cursor files in the Xcursor format used
// by X11 and Wayland cursor themes, and finds cursors in installed themes.
package xcursor

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors/cursorimg"
)

const (
	// Magic is the first four bytes of every Xcursor file ("Xcur").
	Magic = 0x72756358

	// ImageType is the chunk type of image chunks.
	ImageType = 0xfffd0002

	fileHeaderLen  = 4 * 4
	fileVersion    = 0x10000
	tocLen         = 3 * 4
	imageHeaderLen = 9 * 4
	imageVersion   = 1

	// MaxImageSize is the largest width or height accepted for an image.
	MaxImageSize = 0x7fff
)

// Image is one image of an Xcursor file.
type Image struct {

	// Size is the nominal size of the image, used to select images.
	Size uint32

	Width, Height uint32

	// XHot and YHot are the hotspot of the image.
	XHot, YHot uint32

	// Delay is the animation delay in milliseconds. Animations are not
	// supported, so it is informational only.
	Delay uint32

	// Pixels are the premultiplied ARGB pixels of the image, row major,
	// with alpha in the high byte.
	Pixels []uint32
}

type toc struct {
	Type, Subtype, Position uint32
}

type imageHeader struct {
	Header, Type, Subtype, Version uint32
	Width, Height, XHot, YHot      uint32
	Delay                          uint32
}

func readTOC(r io.ReadSeeker) ([]toc, error) {
	var hdr [4]uint32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("xcursor: read header: %w", err)
	}
	if hdr[0] != Magic {
		return nil, fmt.Errorf("xcursor: bad magic %#x", hdr[0])
	}
	if hdr[1] < fileHeaderLen {
		return nil, fmt.Errorf("xcursor: bad header length %d", hdr[1])
	}
	ntoc := hdr[3]
	if ntoc > 0x10000 {
		return nil, fmt.Errorf("xcursor: too many table entries (%d)", ntoc)
	}
	if skip := int64(hdr[1]) - fileHeaderLen; skip > 0 {
		if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("xcursor: seek past header: %w", err)
		}
	}
	tocs := make([]toc, ntoc)
	if err := binary.Read(r, binary.LittleEndian, tocs); err != nil {
		return nil, fmt.Errorf("xcursor: read table: %w", err)
	}
	return tocs, nil
}

// Sizes returns the distinct nominal sizes of the images in the file.
func Sizes(r io.ReadSeeker) ([]uint32, error) {
	tocs, err := readTOC(r)
	if err != nil {
		return nil, err
	}
	var sizes []uint32
	seen := map[uint32]bool{}
	for _, t := range tocs {
		if t.Type != ImageType || seen[t.Subtype] {
			continue
		}
		seen[t.Subtype] = true
		sizes = append(sizes, t.Subtype)
	}
	return sizes, nil
}

// BestSize returns the nominal size closest to the given size.
func BestSize(sizes []uint32, size uint32) uint32 {
	best := uint32(0)
	bestDist := uint32(math.MaxUint32)
	for _, s := range sizes {
		d := max(s, size) - min(s, size)
		if d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// Decode reads the images of the nominal size closest to the given size
// from an Xcursor file. Animated cursors have several images of each size;
// they are all returned in file order.
func Decode(r io.ReadSeeker, size uint32) ([]*Image, error) {
	tocs, err := readTOC(r)
	if err != nil {
		return nil, err
	}
	var sizes []uint32
	for _, t := range tocs {
		if t.Type == ImageType {
			sizes = append(sizes, t.Subtype)
		}
	}
	if len(sizes) == 0 {
		return nil, errors.New("xcursor: no images in file")
	}
	best := BestSize(sizes, size)
	var images []*Image
	for _, t := range tocs {
		if t.Type != ImageType || t.Subtype != best {
			continue
		}
		img, err := readImage(r, t)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func readImage(r io.ReadSeeker, t toc) (*Image, error) {
	if _, err := r.Seek(int64(t.Position), io.SeekStart); err != nil {
		return nil, fmt.Errorf("xcursor: seek to image: %w", err)
	}
	var h imageHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("xcursor: read image header: %w", err)
	}
	if h.Type != t.Type || h.Subtype != t.Subtype {
		return nil, fmt.Errorf("xcursor: image chunk does not match table entry")
	}
	if h.Width == 0 || h.Height == 0 || h.Width > MaxImageSize || h.Height > MaxImageSize {
		return nil, fmt.Errorf("xcursor: bad image size %dx%d", h.Width, h.Height)
	}
	if h.XHot >= h.Width || h.YHot >= h.Height {
		return nil, fmt.Errorf("xcursor: hotspot (%d, %d) outside of %dx%d image", h.XHot, h.YHot, h.Width, h.Height)
	}
	if skip := int64(h.Header) - imageHeaderLen; skip > 0 {
		if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("xcursor: seek past image header: %w", err)
		}
	}
	left, err := remaining(r)
	if err != nil {
		return nil, err
	}
	if n := int64(h.Width) * int64(h.Height) * 4; n > left {
		return nil, fmt.Errorf("xcursor: %dx%d image needs %d bytes, but only %d are left", h.Width, h.Height, n, left)
	}
	img := &Image{
		Size:   h.Subtype,
		Width:  h.Width,
		Height: h.Height,
		XHot:   h.XHot,
		YHot:   h.YHot,
		Delay:  h.Delay,
		Pixels: make([]uint32, h.Width*h.Height),
	}
	if err := binary.Read(r, binary.LittleEndian, img.Pixels); err != nil {
		return nil, fmt.Errorf("xcursor: read pixels: %w", err)
	}
	return img, nil
}

// remaining returns the number of bytes after the current offset of r.
func remaining(r io.Seeker) (int64, error) {
	cur, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("xcursor: seek: %w", err)
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("xcursor: seek: %w", err)
	}
	if _, err := r.Seek(cur, io.SeekStart); err != nil {
		return 0, fmt.Errorf("xcursor: seek: %w", err)
	}
	return max(end-cur, 0), nil
}

// Encode writes the given images as an Xcursor file.
func Encode(w io.Writer, images []*Image) error {
	n := uint32(len(images))
	if err := binary.Write(w, binary.LittleEndian, [4]uint32{Magic, fileHeaderLen, fileVersion, n}); err != nil {
		return err
	}
	pos := uint32(fileHeaderLen + tocLen*len(images))
	tocs := make([]toc, n)
	for i, img := range images {
		tocs[i] = toc{Type: ImageType, Subtype: img.Size, Position: pos}
		pos += imageHeaderLen + 4*uint32(len(img.Pixels))
	}
	if err := binary.Write(w, binary.LittleEndian, tocs); err != nil {
		return err
	}
	for _, img := range images {
		if uint64(len(img.Pixels)) != uint64(img.Width)*uint64(img.Height) {
			return fmt.Errorf("xcursor: %dx%d image has %d pixels", img.Width, img.Height, len(img.Pixels))
		}
		h := imageHeader{
			Header:  imageHeaderLen,
			Type:    ImageType,
			Subtype: img.Size,
			Version: imageVersion,
			Width:   img.Width,
			Height:  img.Height,
			XHot:    img.XHot,
			YHot:    img.YHot,
			Delay:   img.Delay,
		}
		if err := binary.Write(w, binary.LittleEndian, h); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, img.Pixels); err != nil {
			return err
		}
	}
	return nil
}

// FromCursorImage returns a new [Image] of the given nominal size with
// the pixels of the given cursor image, premultiplied.
func FromCursorImage(ci *cursorimg.Image, size uint32) *Image {
	words := cursorimg.PackARGB(ci.BGRA())
	for i, w := range words {
		words[i] = premultiply(w)
	}
	return &Image{
		Size:   size,
		Width:  ci.Width,
		Height: ci.Height,
		XHot:   ci.HotspotX,
		YHot:   ci.HotspotY,
		Pixels: words,
	}
}

// CursorImage returns the image as a validated [cursorimg.Image] with
// non-premultiplied RGBA pixels.
func (img *Image) CursorImage() (*cursorimg.Image, error) {
	words := make([]uint32, len(img.Pixels))
	for i, w := range img.Pixels {
		words[i] = unpremultiply(w)
	}
	pix := cursorimg.UnpackARGB(words)
	cursorimg.SwapRB(pix)
	if err := cursorimg.Validate(pix, img.Width, img.Height, img.XHot, img.YHot); err != nil {
		return nil, err
	}
	return &cursorimg.Image{Pix: pix, Width: img.Width, Height: img.Height, HotspotX: img.XHot, HotspotY: img.YHot}, nil
}

// BGRA returns the premultiplied pixels as little endian BGRA bytes,
// the layout of the ARGB8888 shared memory format.
func (img *Image) BGRA() []byte {
	return cursorimg.UnpackARGB(img.Pixels)
}

func premultiply(w uint32) uint32 {
	a := w >> 24
	if a == 0xff {
		return w
	}
	r := (w >> 16 & 0xff) * a / 0xff
	g := (w >> 8 & 0xff) * a / 0xff
	b := (w & 0xff) * a / 0xff
	return a<<24 | r<<16 | g<<8 | b
}

func unpremultiply(w uint32) uint32 {
	a := w >> 24
	if a == 0xff {
		return w
	}
	if a == 0 {
		return 0
	}
	r := min((w>>16&0xff)*0xff/a, 0xff)
	g := min((w>>8&0xff)*0xff/a, 0xff)
	b := min((w&0xff)*0xff/a, 0xff)
	return a<<24 | r<<16 | g<<8 | b
}
