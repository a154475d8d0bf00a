// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package macos

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

const appKitPath = "/System/Library/Frameworks/AppKit.framework/AppKit"

type nsPoint struct {
	X, Y float64
}

type nsSize struct {
	Width, Height float64
}

var (
	loadOnce sync.Once
	loadErr  error

	classNSBitmapImageRep objc.Class
	classNSImage          objc.Class
	classNSCursor         objc.Class
	classNSString         objc.Class

	selAlloc                = objc.RegisterName("alloc")
	selRelease              = objc.RegisterName("release")
	selSet                  = objc.RegisterName("set")
	selBitmapData           = objc.RegisterName("bitmapData")
	selAddRepresentation    = objc.RegisterName("addRepresentation:")
	selInitWithSize         = objc.RegisterName("initWithSize:")
	selInitWithImageHotSpot = objc.RegisterName("initWithImage:hotSpot:")
	selStringWithUTF8       = objc.RegisterName("stringWithUTF8String:")
	selInitWithBitmap       = objc.RegisterName("initWithBitmapDataPlanes:pixelsWide:pixelsHigh:bitsPerSample:samplesPerPixel:hasAlpha:isPlanar:colorSpaceName:bytesPerRow:bitsPerPixel:")
)

func load() error {
	loadOnce.Do(func() {
		if _, err := purego.Dlopen(appKitPath, purego.RTLD_GLOBAL|purego.RTLD_LAZY); err != nil {
			loadErr = fmt.Errorf("macos: load AppKit: %w", err)
			return
		}
		classNSBitmapImageRep = objc.GetClass("NSBitmapImageRep")
		classNSImage = objc.GetClass("NSImage")
		classNSCursor = objc.GetClass("NSCursor")
		classNSString = objc.GetClass("NSString")
	})
	return loadErr
}

// Runtime is the [AppKit] implemented with the Objective-C runtime.
// Its methods must be called on the main thread.
type Runtime struct{}

// NewRuntime loads AppKit and returns a new [Runtime].
func NewRuntime() (*Runtime, error) {
	if err := load(); err != nil {
		return nil, err
	}
	return &Runtime{}, nil
}

func nsString(s string) objc.ID {
	b := append([]byte(s), 0)
	id := objc.ID(classNSString).Send(selStringWithUTF8, unsafe.Pointer(&b[0]))
	runtime.KeepAlive(b)
	return id
}

func (Runtime) NewCursor(rgba []byte, width, height int, hotspotX, hotspotY float64) (ID, error) {
	rep := objc.ID(classNSBitmapImageRep).Send(selAlloc).Send(selInitWithBitmap,
		uintptr(0), width, height, 8, 4, true, false,
		nsString("NSDeviceRGBColorSpace"), width*4, 32)
	if rep == 0 {
		return 0, fmt.Errorf("NSBitmapImageRep initWithBitmapDataPlanes failed")
	}
	defer rep.Send(selRelease)
	data := rep.Send(selBitmapData)
	if data == 0 {
		return 0, fmt.Errorf("NSBitmapImageRep has no bitmap data")
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(data)), len(rgba)), rgba)

	img := objc.Send[objc.ID](objc.ID(classNSImage).Send(selAlloc), selInitWithSize, nsSize{float64(width), float64(height)})
	if img == 0 {
		return 0, fmt.Errorf("NSImage initWithSize failed")
	}
	defer img.Send(selRelease)
	img.Send(selAddRepresentation, rep)

	cur := objc.Send[objc.ID](objc.ID(classNSCursor).Send(selAlloc), selInitWithImageHotSpot, img, nsPoint{hotspotX, hotspotY})
	if cur == 0 {
		return 0, fmt.Errorf("NSCursor initWithImage failed")
	}
	return ID(cur), nil
}

func (Runtime) SystemCursor(selector string) (ID, error) {
	cur := objc.ID(classNSCursor).Send(objc.RegisterName(selector))
	if cur == 0 {
		return 0, fmt.Errorf("macos: no system cursor %q", selector)
	}
	return ID(cur), nil
}

func (Runtime) Set(cursor ID) error {
	objc.ID(cursor).Send(selSet)
	return nil
}

func (Runtime) Release(obj ID) {
	objc.ID(obj).Send(selRelease)
}
