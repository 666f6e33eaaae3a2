// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"
	"unsafe"
)

// Context owns an EGL display connection, a surface and a rendering
// context, created by Prototype.Finish or Prototype.FinishPbuffer.
//
// A Context may be made current on one OS thread at a time. Callers must
// lock the goroutine to its thread (runtime.LockOSThread) for as long as
// the context is current, and must not make it current on two threads
// at once. A Context must not be used after Release.
type Context struct {
	lib    NativeAPI
	disp   EGLDisplay
	ctx    EGLContext
	surf   EGLSurface
	config EGLConfig
	api    API
	format PixelFormat
}

// native returns the entry points, panicking after Release.
func (c *Context) native() NativeAPI {
	if c.lib == nil {
		panic("egl: Context used after Release")
	}
	return c.lib
}

// MakeCurrent binds the context and its surface to the calling thread.
func (c *Context) MakeCurrent() error {
	if c.native().MakeCurrent(c.disp, c.surf, c.surf, c.ctx) {
		return nil
	}
	switch code := c.lib.GetError(); code {
	case _EGL_CONTEXT_LOST:
		return ErrContextLost
	default:
		panic(fmt.Sprintf("eglMakeCurrent failed (eglGetError returned 0x%x)", code))
	}
}

// IsCurrent reports whether the context is current on the calling
// thread.
func (c *Context) IsCurrent() bool {
	return c.native().GetCurrentContext() == c.ctx
}

// Resolve returns the address of the named client API function, or nil
// if the driver doesn't export it.
func (c *Context) Resolve(name string) unsafe.Pointer {
	return c.native().GetProcAddress(name)
}

// Present swaps the surface buffers.
func (c *Context) Present() error {
	if c.native().SwapBuffers(c.disp, c.surf) {
		return nil
	}
	switch code := c.lib.GetError(); code {
	case _EGL_CONTEXT_LOST:
		return ErrContextLost
	default:
		panic(fmt.Sprintf("eglSwapBuffers failed (eglGetError returned 0x%x)", code))
	}
}

// SwapInterval sets the minimum number of video frames between buffer
// swaps. The context must be current.
func (c *Context) SwapInterval(interval int) error {
	if !c.native().SwapInterval(c.disp, int32(interval)) {
		return envError(c.lib, "eglSwapInterval")
	}
	return nil
}

// API returns the client API of the context.
func (c *Context) API() API { return c.api }

// PixelFormat returns the pixel format of the context surface.
func (c *Context) PixelFormat() PixelFormat { return c.format }

// Display returns the EGL display handle.
func (c *Context) Display() EGLDisplay { return c.disp }

// Config returns the EGL config of the context and surface.
func (c *Context) Config() EGLConfig { return c.config }

// Release destroys the context, then the surface, then terminates the
// display. The context is not made non-current first; the calling thread
// may not be the one it is current on. Release is a no-op after the
// first call.
func (c *Context) Release() {
	if c.lib == nil {
		return
	}
	c.lib.DestroyContext(c.disp, c.ctx)
	c.lib.DestroySurface(c.disp, c.surf)
	c.lib.Terminate(c.disp)
	c.lib = nil
	c.disp, c.ctx, c.surf = nilEGLDisplay, nilEGLContext, nilEGLSurface
}
