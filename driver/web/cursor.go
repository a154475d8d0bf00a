// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web implements cursors for the web as CSS cursor values, with
// custom cursors as canvas data URLs.
package web

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"sync"

	"cogentcore.org/cursors"
	"cogentcore.org/cursors/cursorimg"
)

// Canvas renders RGBA pixels into an image data URL.
type Canvas interface {
	DataURL(rgba []byte, width, height int) (string, error)
}

// Cursor is a web cursor [cursors.Resource]: a CSS cursor value.
// It has no native object to release.
type Cursor struct {
	CSS string
}

func (c *Cursor) Release() error { return nil }

// Value returns the CSS cursor value for a custom cursor with the given
// image data URL and hotspot, falling back on the default cursor.
func Value(dataURL string, hotspotX, hotspotY uint32) string {
	return fmt.Sprintf("url(%s) %d %d, auto", dataURL, hotspotX, hotspotY)
}

// Encoder is the web [cursors.Encoder].
type Encoder struct {
	Canvas Canvas
}

// FromRGBA implements [cursors.Encoder]. The pixels are used in RGBA
// order.
func (e *Encoder) FromRGBA(img *cursorimg.Image) (cursors.Resource, error) {
	if e == nil || e.Canvas == nil {
		return nil, cursors.ErrBackendUnavailable
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	url, err := e.Canvas.DataURL(img.Pix, int(img.Width), int(img.Height))
	if err != nil {
		return nil, cursorimg.NewOSError("canvas.toDataURL", err)
	}
	return &Cursor{CSS: Value(url, img.HotspotX, img.HotspotY)}, nil
}

// PNGCanvas is a [Canvas] that encodes PNG data URLs without a browser,
// as an offscreen canvas does.
type PNGCanvas struct{}

func (PNGCanvas) DataURL(rgba []byte, width, height int) (string, error) {
	ci := &cursorimg.Image{Pix: rgba, Width: uint32(width), Height: uint32(height)}
	var b bytes.Buffer
	if err := png.Encode(&b, ci.NRGBA()); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b.Bytes()), nil
}

// StyleSetter sets a style property of an HTML element.
type StyleSetter interface {
	SetStyle(property, value string)
}

// Element is the cursor target of a [Display]: an HTML element.
type Element struct {
	Style StyleSetter

	mu     sync.Mutex
	cursor string
}

// NewElement returns a new [Element] with the given style.
func NewElement(style StyleSetter) *Element {
	return &Element{Style: style}
}

// Cursor returns the CSS cursor value last applied to the element.
func (el *Element) Cursor() string {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.cursor
}

// Display is the [cursors.Display] of web elements.
type Display struct {
	Encoder
}

// NewDisplay returns a new [Display] using the given canvas.
func NewDisplay(c Canvas) *Display {
	return &Display{Encoder{Canvas: c}}
}

// BuiltIn implements [cursors.Display] with CSS cursor keywords.
func (d *Display) BuiltIn(shape cursors.Cursor) (cursors.Resource, error) {
	return &Cursor{CSS: shape.CSS()}, nil
}

// Apply implements [cursors.Display] by setting the cursor style.
func (d *Display) Apply(el *Element, res cursors.Resource) error {
	css := "auto"
	if c, ok := res.(*Cursor); ok {
		css = c.CSS
	}
	el.mu.Lock()
	defer el.mu.Unlock()
	el.cursor = css
	el.Style.SetStyle("cursor", css)
	return nil
}

// NewCache returns a new cursor cache for the elements of the display.
func (d *Display) NewCache() *cursors.Cache[*Element] {
	return cursors.NewCache[*Element](d)
}
