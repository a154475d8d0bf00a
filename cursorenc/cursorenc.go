// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursorenc encodes image files as custom cursors: CSS cursor
// values for the web and Xcursor files for X11 and Wayland themes.
package cursorenc

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/cursors/cursorimg"
	"cogentcore.org/cursors/driver/web"
	"cogentcore.org/cursors/xcursor"
	"github.com/h2non/filetype"
)

// Config is the configuration of the cursorenc commands.
type Config struct {

	// Input is the image file to encode.
	Input string `posarg:"0"`

	// Output is the file to write. It defaults to the input file
	// with the extension of the command, .css or .xcursor. It can not
	// be the input file.
	Output string `flag:"o,output"`

	// HotspotX is the horizontal position of the hotspot, in pixels
	// from the left of the image.
	HotspotX int

	// HotspotY is the vertical position of the hotspot, in pixels
	// from the top of the image.
	HotspotY int

	// Sizes are the nominal sizes of the images of an Xcursor file,
	// which are resized from the input. The size of the input is used
	// if there are none.
	Sizes []int `cmd:"xcursor"`
}

// Open opens the input image with its hotspot.
func (c *Config) Open() (*cursorimg.Image, error) {
	kind, err := filetype.MatchFile(c.Input)
	if err != nil {
		return nil, err
	}
	if kind.MIME.Type != "image" {
		return nil, fmt.Errorf("cursorenc: %s is not an image file", c.Input)
	}
	img, _, err := imagex.Open(c.Input)
	if err != nil {
		return nil, err
	}
	if c.HotspotX < 0 || c.HotspotY < 0 {
		return nil, fmt.Errorf("cursorenc: negative hotspot %d,%d", c.HotspotX, c.HotspotY)
	}
	return cursorimg.FromImage(img, image.Pt(c.HotspotX, c.HotspotY))
}

func (c *Config) output(ext string) (string, error) {
	out := c.Output
	if out == "" {
		out = strings.TrimSuffix(c.Input, filepath.Ext(c.Input)) + ext
	}
	if filepath.Clean(out) == filepath.Clean(c.Input) {
		return "", fmt.Errorf("cursorenc: output %s is the input file", out)
	}
	return out, nil
}

// CSS writes the CSS cursor value of the input image.
func CSS(c *Config) error {
	img, err := c.Open()
	if err != nil {
		return err
	}
	v, err := CSSValue(img)
	if err != nil {
		return err
	}
	out, err := c.output(".css")
	if err != nil {
		return err
	}
	slog.Info("writing CSS cursor", "file", out)
	return os.WriteFile(out, []byte(v+"\n"), 0666)
}

// CSSValue returns the CSS cursor value of the given image.
func CSSValue(img *cursorimg.Image) (string, error) {
	res, err := (&web.Encoder{Canvas: web.PNGCanvas{}}).FromRGBA(img)
	if err != nil {
		return "", err
	}
	return res.(*web.Cursor).CSS, nil
}

// Xcursor writes an Xcursor file of the input image.
func Xcursor(c *Config) error {
	img, err := c.Open()
	if err != nil {
		return err
	}
	out, err := c.output(".xcursor")
	if err != nil {
		return err
	}
	slog.Info("writing Xcursor file", "file", out, "sizes", c.Sizes)
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	err = WriteXcursor(w, img, c.Sizes)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteXcursor writes an Xcursor file with the given image resized to each
// of the given square sizes, or with only the image if there are none.
func WriteXcursor(w io.Writer, img *cursorimg.Image, sizes []int) error {
	if len(sizes) == 0 {
		if img.Width > xcursor.MaxImageSize || img.Height > xcursor.MaxImageSize {
			return fmt.Errorf("cursorenc: image of %dx%d is too large for Xcursor", img.Width, img.Height)
		}
		return xcursor.Encode(w, []*xcursor.Image{xcursor.FromCursorImage(img, max(img.Width, img.Height))})
	}
	images := make([]*xcursor.Image, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 || size > xcursor.MaxImageSize {
			return fmt.Errorf("cursorenc: invalid Xcursor size %d", size)
		}
		ri, err := img.Resize(image.Pt(size, size))
		if err != nil {
			return err
		}
		images = append(images, xcursor.FromCursorImage(ri, uint32(size)))
	}
	return xcursor.Encode(w, images)
}
