// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursorimg

// SwapRB swaps the red and blue channels of every 32 bit pixel in pix in
// place, turning RGBA into BGRA and back. Trailing bytes that do not form a
// whole pixel are left alone.
func SwapRB(pix []byte) {
	for i := 0; i+PixelSize <= len(pix); i += PixelSize {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// BGRA returns a copy of the RGBA pixels of the image with the red and
// blue channels swapped. The image itself is not modified.
func (im *Image) BGRA() []byte {
	b := make([]byte, len(im.Pix))
	copy(b, im.Pix)
	SwapRB(b)
	return b
}

// PackARGB packs BGRA bytes into one 32 bit ARGB word per pixel,
// with alpha in the high byte and blue in the low byte.
func PackARGB(bgra []byte) []uint32 {
	words := make([]uint32, len(bgra)/PixelSize)
	for i := range words {
		p := bgra[i*PixelSize : i*PixelSize+PixelSize]
		words[i] = uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
	}
	return words
}

// UnpackARGB is the inverse of [PackARGB], returning BGRA bytes.
func UnpackARGB(words []uint32) []byte {
	b := make([]byte, len(words)*PixelSize)
	for i, w := range words {
		b[i*PixelSize] = byte(w)
		b[i*PixelSize+1] = byte(w >> 8)
		b[i*PixelSize+2] = byte(w >> 16)
		b[i*PixelSize+3] = byte(w >> 24)
	}
	return b
}
