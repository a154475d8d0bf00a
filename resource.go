// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursors

import (
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/cursors/cursorimg"
)

// Resource is a backend-specific native cursor resource, such as an X11
// cursor id, a Wayland shared-memory buffer or a Windows icon handle.
// Each Resource exclusively owns its native object.
type Resource interface {

	// Release frees the native object. It is called exactly once, by
	// whoever owns the resource: the last [CustomCursor] referring to it,
	// or the [Cache] for built-in shapes.
	Release() error
}

// NoResource is the [Resource] of platforms that do not support custom
// cursors. Cursors made there are validated but have no native object.
type NoResource struct{}

func (NoResource) Release() error { return nil }

// ErrBackendUnavailable is returned by an [Encoder] or a driver when its
// platform backend can not be used at all, for example because there is no
// X11 connection. It is not a [cursorimg.BadCursor]: callers that support
// several backends skip the unavailable one.
var ErrBackendUnavailable = errors.New("cursors: backend unavailable")

// Encoder converts a validated [cursorimg.Image] into a native [Resource].
// Encoders must not modify the pixels of the image, and must tear down any
// partially created native objects before returning an error.
type Encoder interface {
	FromRGBA(img *cursorimg.Image) (Resource, error)
}

// EncoderFunc is a function that implements [Encoder].
type EncoderFunc func(img *cursorimg.Image) (Resource, error)

func (f EncoderFunc) FromRGBA(img *cursorimg.Image) (Resource, error) {
	return f(img)
}

var (
	encoderMu  sync.RWMutex
	theEncoder Encoder
)

// SetEncoder sets the [Encoder] used by [FromRGBA] and [FromImage].
// It is called by the driver package when its connections are opened,
// and can be set to nil to go back to validation only.
func SetEncoder(e Encoder) {
	encoderMu.Lock()
	theEncoder = e
	encoderMu.Unlock()
}

// CurrentEncoder returns the [Encoder] set with [SetEncoder], or nil.
func CurrentEncoder() Encoder {
	encoderMu.RLock()
	defer encoderMu.RUnlock()
	return theEncoder
}
