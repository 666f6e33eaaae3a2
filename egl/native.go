// SPDX-License-Identifier: Unlicense OR MIT

// Package egl negotiates OpenGL and OpenGL ES rendering contexts through
// EGL. NewPrototype initializes a display, binds a client API and chooses
// a config; Prototype.Finish or Prototype.FinishPbuffer then create the
// surface and the context, falling back through older client versions
// when the driver rejects newer ones.
package egl

import "unsafe"

// Native EGL handles. The zero value of each is the corresponding
// EGL_NO_* sentinel.
type (
	EGLDisplay        uintptr
	EGLConfig         uintptr
	EGLContext        uintptr
	EGLSurface        uintptr
	NativeDisplayType uintptr
	NativeWindowType  uintptr
)

// DefaultDisplay selects EGL_DEFAULT_DISPLAY.
const DefaultDisplay NativeDisplayType = 0

var (
	nilEGLDisplay EGLDisplay
	nilEGLSurface EGLSurface
	nilEGLContext EGLContext
)

// NativeAPI is the EGL entry point table. Implementations forward each
// method to the driver and do no interpretation of their own; error codes
// are read back through GetError.
type NativeAPI interface {
	GetDisplay(disp NativeDisplayType) EGLDisplay
	Initialize(disp EGLDisplay) (major, minor int32, ok bool)
	Terminate(disp EGLDisplay) bool
	// QueryString returns ok == false when the driver returns NULL.
	QueryString(disp EGLDisplay, name int32) (string, bool)
	BindAPI(api uint32) bool
	GetConfigs(disp EGLDisplay) ([]EGLConfig, bool)
	GetConfigAttrib(disp EGLDisplay, cfg EGLConfig, attr int32) (int32, bool)
	CreateWindowSurface(disp EGLDisplay, cfg EGLConfig, win NativeWindowType, attribs []int32) EGLSurface
	CreatePbufferSurface(disp EGLDisplay, cfg EGLConfig, attribs []int32) EGLSurface
	CreateContext(disp EGLDisplay, cfg EGLConfig, share EGLContext, attribs []int32) EGLContext
	DestroyContext(disp EGLDisplay, ctx EGLContext) bool
	DestroySurface(disp EGLDisplay, surf EGLSurface) bool
	MakeCurrent(disp EGLDisplay, draw, read EGLSurface, ctx EGLContext) bool
	GetCurrentContext() EGLContext
	SwapBuffers(disp EGLDisplay, surf EGLSurface) bool
	SwapInterval(disp EGLDisplay, interval int32) bool
	GetProcAddress(name string) unsafe.Pointer
	GetError() int32
}

const (
	_EGL_SUCCESS           = 0x3000
	_EGL_NOT_INITIALIZED   = 0x3001
	_EGL_BAD_ALLOC         = 0x3003
	_EGL_BAD_ATTRIBUTE     = 0x3004
	_EGL_BAD_CONFIG        = 0x3005
	_EGL_BAD_DISPLAY       = 0x3008
	_EGL_BAD_MATCH         = 0x3009
	_EGL_BAD_NATIVE_WINDOW = 0x300b
	_EGL_BAD_PARAMETER     = 0x300c
	_EGL_CONTEXT_LOST      = 0x300e

	_EGL_ALPHA_SIZE        = 0x3021
	_EGL_BLUE_SIZE         = 0x3022
	_EGL_GREEN_SIZE        = 0x3023
	_EGL_RED_SIZE          = 0x3024
	_EGL_DEPTH_SIZE        = 0x3025
	_EGL_STENCIL_SIZE      = 0x3026
	_EGL_CONFIG_CAVEAT     = 0x3027
	_EGL_NATIVE_VISUAL_ID  = 0x302e
	_EGL_SAMPLES           = 0x3031
	_EGL_SURFACE_TYPE      = 0x3033
	_EGL_TRANSPARENT_TYPE  = 0x3034
	_EGL_NONE              = 0x3038
	_EGL_COLOR_BUFFER_TYPE = 0x303f
	_EGL_RENDERABLE_TYPE   = 0x3040
	_EGL_CONFORMANT        = 0x3042
	_EGL_SLOW_CONFIG       = 0x3050
	_EGL_VENDOR            = 0x3053
	_EGL_VERSION           = 0x3054
	_EGL_EXTENSIONS        = 0x3055
	_EGL_HEIGHT            = 0x3056
	_EGL_WIDTH             = 0x3057
	_EGL_RGB_BUFFER        = 0x308e
	_EGL_CLIENT_APIS       = 0x308d

	_EGL_PBUFFER_BIT    = 0x0001
	_EGL_WINDOW_BIT     = 0x0004
	_EGL_OPENGL_ES_BIT  = 0x0001
	_EGL_OPENGL_ES2_BIT = 0x0004
	_EGL_OPENGL_BIT     = 0x0008
	_EGL_OPENGL_ES3_BIT = 0x0040

	_EGL_OPENGL_ES_API = 0x30a0
	_EGL_OPENGL_API    = 0x30a2

	_EGL_GL_COLORSPACE_KHR      = 0x309d
	_EGL_GL_COLORSPACE_SRGB_KHR = 0x3089

	_EGL_TRUE = 1

	_EGL_CONTEXT_CLIENT_VERSION = 0x3098
	_EGL_CONTEXT_MAJOR_VERSION  = 0x3098
	_EGL_CONTEXT_MINOR_VERSION  = 0x30fb
	_EGL_CONTEXT_FLAGS_KHR      = 0x30fc

	_EGL_CONTEXT_OPENGL_DEBUG                       = 0x31b0
	_EGL_CONTEXT_OPENGL_NO_ERROR_KHR                = 0x31b3
	_EGL_CONTEXT_OPENGL_RESET_NOTIFICATION_STRATEGY = 0x31bd
	_EGL_NO_RESET_NOTIFICATION                      = 0x31be
	_EGL_LOSE_CONTEXT_ON_RESET                      = 0x31bf

	_EGL_CONTEXT_OPENGL_DEBUG_BIT_KHR         = 0x1
	_EGL_CONTEXT_OPENGL_ROBUST_ACCESS_BIT_KHR = 0x4
)
