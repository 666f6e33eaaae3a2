// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux || freebsd || openbsd) && cgo

package egl

/*
#cgo linux,!android  pkg-config: egl
#cgo freebsd openbsd android LDFLAGS: -lEGL
#cgo freebsd CFLAGS: -I/usr/local/include
#cgo freebsd LDFLAGS: -L/usr/local/lib
#cgo openbsd CFLAGS: -I/usr/X11R6/include
#cgo openbsd LDFLAGS: -L/usr/X11R6/lib
#cgo CFLAGS: -DEGL_NO_X11

#include <stdlib.h>
#include <EGL/egl.h>
#include <EGL/eglext.h>
*/
import "C"

import "unsafe"

// cgoLib calls the system libEGL through cgo.
type cgoLib struct{}

// Load returns the EGL entry points of the system libEGL.
func Load() (NativeAPI, error) {
	return cgoLib{}, nil
}

func cDisplay(d EGLDisplay) C.EGLDisplay { return C.EGLDisplay(unsafe.Pointer(d)) }
func cConfig(c EGLConfig) C.EGLConfig    { return C.EGLConfig(unsafe.Pointer(c)) }
func cContext(c EGLContext) C.EGLContext { return C.EGLContext(unsafe.Pointer(c)) }
func cSurface(s EGLSurface) C.EGLSurface { return C.EGLSurface(unsafe.Pointer(s)) }

// cAttribs returns a pointer to the EGL_NONE terminated list.
func cAttribs(attribs []int32) *C.EGLint {
	return (*C.EGLint)(unsafe.Pointer(&attribs[0]))
}

func (cgoLib) GetDisplay(disp NativeDisplayType) EGLDisplay {
	// EGLNativeDisplayType is a pointer or an integer depending on the
	// platform, always of pointer size.
	d := C.eglGetDisplay(*(*C.EGLNativeDisplayType)(unsafe.Pointer(&disp)))
	return EGLDisplay(uintptr(unsafe.Pointer(d)))
}

func (cgoLib) Initialize(disp EGLDisplay) (int32, int32, bool) {
	var maj, min C.EGLint
	ret := C.eglInitialize(cDisplay(disp), &maj, &min)
	return int32(maj), int32(min), ret == C.EGL_TRUE
}

func (cgoLib) Terminate(disp EGLDisplay) bool {
	return C.eglTerminate(cDisplay(disp)) == C.EGL_TRUE
}

func (cgoLib) QueryString(disp EGLDisplay, name int32) (string, bool) {
	s := C.eglQueryString(cDisplay(disp), C.EGLint(name))
	if s == nil {
		return "", false
	}
	return C.GoString(s), true
}

func (cgoLib) BindAPI(api uint32) bool {
	return C.eglBindAPI(C.EGLenum(api)) == C.EGL_TRUE
}

func (cgoLib) GetConfigs(disp EGLDisplay) ([]EGLConfig, bool) {
	var n C.EGLint
	if C.eglGetConfigs(cDisplay(disp), nil, 0, &n) != C.EGL_TRUE {
		return nil, false
	}
	if n == 0 {
		return nil, true
	}
	cfgs := make([]C.EGLConfig, n)
	if C.eglGetConfigs(cDisplay(disp), &cfgs[0], n, &n) != C.EGL_TRUE {
		return nil, false
	}
	res := make([]EGLConfig, n)
	for i := range res {
		res[i] = EGLConfig(uintptr(unsafe.Pointer(cfgs[i])))
	}
	return res, true
}

func (cgoLib) GetConfigAttrib(disp EGLDisplay, cfg EGLConfig, attr int32) (int32, bool) {
	var val C.EGLint
	ret := C.eglGetConfigAttrib(cDisplay(disp), cConfig(cfg), C.EGLint(attr), &val)
	return int32(val), ret == C.EGL_TRUE
}

func (cgoLib) CreateWindowSurface(disp EGLDisplay, cfg EGLConfig, win NativeWindowType, attribs []int32) EGLSurface {
	w := *(*C.EGLNativeWindowType)(unsafe.Pointer(&win))
	s := C.eglCreateWindowSurface(cDisplay(disp), cConfig(cfg), w, cAttribs(attribs))
	return EGLSurface(uintptr(unsafe.Pointer(s)))
}

func (cgoLib) CreatePbufferSurface(disp EGLDisplay, cfg EGLConfig, attribs []int32) EGLSurface {
	s := C.eglCreatePbufferSurface(cDisplay(disp), cConfig(cfg), cAttribs(attribs))
	return EGLSurface(uintptr(unsafe.Pointer(s)))
}

func (cgoLib) CreateContext(disp EGLDisplay, cfg EGLConfig, share EGLContext, attribs []int32) EGLContext {
	c := C.eglCreateContext(cDisplay(disp), cConfig(cfg), cContext(share), cAttribs(attribs))
	return EGLContext(uintptr(unsafe.Pointer(c)))
}

func (cgoLib) DestroyContext(disp EGLDisplay, ctx EGLContext) bool {
	return C.eglDestroyContext(cDisplay(disp), cContext(ctx)) == C.EGL_TRUE
}

func (cgoLib) DestroySurface(disp EGLDisplay, surf EGLSurface) bool {
	return C.eglDestroySurface(cDisplay(disp), cSurface(surf)) == C.EGL_TRUE
}

func (cgoLib) MakeCurrent(disp EGLDisplay, draw, read EGLSurface, ctx EGLContext) bool {
	return C.eglMakeCurrent(cDisplay(disp), cSurface(draw), cSurface(read), cContext(ctx)) == C.EGL_TRUE
}

func (cgoLib) GetCurrentContext() EGLContext {
	return EGLContext(uintptr(unsafe.Pointer(C.eglGetCurrentContext())))
}

func (cgoLib) SwapBuffers(disp EGLDisplay, surf EGLSurface) bool {
	return C.eglSwapBuffers(cDisplay(disp), cSurface(surf)) == C.EGL_TRUE
}

func (cgoLib) SwapInterval(disp EGLDisplay, interval int32) bool {
	return C.eglSwapInterval(cDisplay(disp), C.EGLint(interval)) == C.EGL_TRUE
}

func (cgoLib) GetProcAddress(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return unsafe.Pointer(C.eglGetProcAddress(cname))
}

func (cgoLib) GetError() int32 {
	return int32(C.eglGetError())
}
