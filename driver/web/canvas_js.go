// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import (
	"syscall/js"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/jsx"
)

// JSCanvas is the [Canvas] of the browser: a canvas element that the
// pixels are put into as ImageData.
type JSCanvas struct{}

func (JSCanvas) DataURL(rgba []byte, width, height int) (string, error) {
	doc := js.Global().Get("document")
	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	ctx := canvas.Call("getContext", "2d")
	if ctx.IsNull() {
		return "", errors.New("web: no 2d canvas context")
	}
	data := js.Global().Get("ImageData").New(jsx.BytesToJS(rgba), width, height)
	ctx.Call("putImageData", data, 0, 0)
	return canvas.Call("toDataURL").String(), nil
}

// jsStyle is the style of a JavaScript element.
type jsStyle struct {
	style js.Value
}

func (s jsStyle) SetStyle(property, value string) {
	s.style.Set(property, value)
}

// BodyElement returns the [Element] of the document body.
func BodyElement() *Element {
	return NewElement(jsStyle{js.Global().Get("document").Get("body").Get("style")})
}

// NewJSElement returns a new [Element] for the given JavaScript element.
func NewJSElement(el js.Value) *Element {
	return NewElement(jsStyle{el.Get("style")})
}
