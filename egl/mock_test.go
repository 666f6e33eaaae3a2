// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"
	"unsafe"
)

const (
	mockDisplay EGLDisplay = 0x10
	mockSurface EGLSurface = 0x20
)

// mockEGL is a scriptable NativeAPI recording the entry points called.
type mockEGL struct {
	calls []string

	major, minor int32
	noDisplay    bool
	initFails    bool
	// clientExts and displayExts are the extension strings, nil for a
	// NULL result.
	clientExts  *string
	displayExts *string
	// refuseAPI lists eglBindAPI values that fail.
	refuseAPI map[uint32]bool

	configs     []map[int32]int32
	configsFail bool
	failAttrib  int32

	surfaceFails bool
	srgbFails    bool
	surfAttribs  [][]int32

	// createContext decides the outcome of every eglCreateContext call by
	// returning a non-zero error code to fail it.
	createContext  func(attempt int, attribs []int32) int32
	contextAttribs [][]int32

	makeCurrentErr int32
	swapErr        int32
	current        EGLContext
	procs          map[string]unsafe.Pointer

	err int32
}

func newMock() *mockEGL {
	return &mockEGL{
		major:          1,
		minor:          5,
		configs:        []map[int32]int32{glConfig()},
		makeCurrentErr: _EGL_SUCCESS,
		swapErr:        _EGL_SUCCESS,
		err:            _EGL_SUCCESS,
	}
}

func strPtr(s string) *string { return &s }

// glConfig returns the attributes of an opaque RGBA8888 config renderable
// with every client API.
func glConfig() map[int32]int32 {
	all := int32(_EGL_OPENGL_BIT | _EGL_OPENGL_ES_BIT | _EGL_OPENGL_ES2_BIT | _EGL_OPENGL_ES3_BIT)
	return map[int32]int32{
		_EGL_RENDERABLE_TYPE:   all,
		_EGL_CONFORMANT:        all,
		_EGL_SURFACE_TYPE:      _EGL_WINDOW_BIT | _EGL_PBUFFER_BIT,
		_EGL_TRANSPARENT_TYPE:  _EGL_NONE,
		_EGL_COLOR_BUFFER_TYPE: _EGL_RGB_BUFFER,
		_EGL_CONFIG_CAVEAT:     _EGL_NONE,
		_EGL_RED_SIZE:          8,
		_EGL_GREEN_SIZE:        8,
		_EGL_BLUE_SIZE:         8,
		_EGL_ALPHA_SIZE:        8,
		_EGL_DEPTH_SIZE:        24,
		_EGL_STENCIL_SIZE:      8,
		_EGL_SAMPLES:           0,
		_EGL_NATIVE_VISUAL_ID:  0x21,
	}
}

func (m *mockEGL) record(format string, args ...any) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

func (m *mockEGL) fail(code int32) bool {
	m.err = code
	return false
}

func (m *mockEGL) GetDisplay(disp NativeDisplayType) EGLDisplay {
	m.record("eglGetDisplay")
	if m.noDisplay {
		return nilEGLDisplay
	}
	return mockDisplay
}

func (m *mockEGL) Initialize(disp EGLDisplay) (int32, int32, bool) {
	m.record("eglInitialize")
	if m.initFails {
		return 0, 0, m.fail(_EGL_NOT_INITIALIZED)
	}
	return m.major, m.minor, true
}

func (m *mockEGL) Terminate(disp EGLDisplay) bool {
	m.record("eglTerminate")
	return true
}

func (m *mockEGL) QueryString(disp EGLDisplay, name int32) (string, bool) {
	m.record("eglQueryString(%#x)", uintptr(disp))
	exts := m.displayExts
	if disp == nilEGLDisplay {
		exts = m.clientExts
	}
	if exts == nil {
		return "", false
	}
	return *exts, true
}

func (m *mockEGL) BindAPI(api uint32) bool {
	m.record("eglBindAPI(%#x)", api)
	if m.refuseAPI[api] {
		return m.fail(_EGL_BAD_PARAMETER)
	}
	return true
}

func (m *mockEGL) GetConfigs(disp EGLDisplay) ([]EGLConfig, bool) {
	m.record("eglGetConfigs")
	if m.configsFail {
		return nil, m.fail(_EGL_BAD_DISPLAY)
	}
	cfgs := make([]EGLConfig, len(m.configs))
	for i := range cfgs {
		cfgs[i] = EGLConfig(i + 1)
	}
	return cfgs, true
}

func (m *mockEGL) GetConfigAttrib(disp EGLDisplay, cfg EGLConfig, attr int32) (int32, bool) {
	if attr == m.failAttrib {
		return 0, m.fail(_EGL_BAD_ATTRIBUTE)
	}
	return m.configs[cfg-1][attr], true
}

func (m *mockEGL) CreateWindowSurface(disp EGLDisplay, cfg EGLConfig, win NativeWindowType, attribs []int32) EGLSurface {
	m.record("eglCreateWindowSurface")
	return m.createSurface(attribs)
}

func (m *mockEGL) CreatePbufferSurface(disp EGLDisplay, cfg EGLConfig, attribs []int32) EGLSurface {
	m.record("eglCreatePbufferSurface")
	return m.createSurface(attribs)
}

func (m *mockEGL) createSurface(attribs []int32) EGLSurface {
	m.surfAttribs = append(m.surfAttribs, attribs)
	if m.surfaceFails {
		m.fail(_EGL_BAD_NATIVE_WINDOW)
		return nilEGLSurface
	}
	if m.srgbFails && attribValue(attribs, _EGL_GL_COLORSPACE_KHR) != nil {
		m.fail(_EGL_BAD_MATCH)
		return nilEGLSurface
	}
	return mockSurface
}

func (m *mockEGL) CreateContext(disp EGLDisplay, cfg EGLConfig, share EGLContext, attribs []int32) EGLContext {
	m.record("eglCreateContext")
	attempt := len(m.contextAttribs)
	m.contextAttribs = append(m.contextAttribs, attribs)
	if m.createContext != nil {
		if code := m.createContext(attempt, attribs); code != _EGL_SUCCESS {
			m.fail(code)
			return nilEGLContext
		}
	}
	return EGLContext(0x30 + attempt)
}

func (m *mockEGL) DestroyContext(disp EGLDisplay, ctx EGLContext) bool {
	m.record("eglDestroyContext")
	return true
}

func (m *mockEGL) DestroySurface(disp EGLDisplay, surf EGLSurface) bool {
	m.record("eglDestroySurface")
	return true
}

func (m *mockEGL) MakeCurrent(disp EGLDisplay, draw, read EGLSurface, ctx EGLContext) bool {
	m.record("eglMakeCurrent")
	if m.makeCurrentErr != _EGL_SUCCESS {
		return m.fail(m.makeCurrentErr)
	}
	m.current = ctx
	return true
}

func (m *mockEGL) GetCurrentContext() EGLContext {
	return m.current
}

func (m *mockEGL) SwapBuffers(disp EGLDisplay, surf EGLSurface) bool {
	m.record("eglSwapBuffers")
	if m.swapErr != _EGL_SUCCESS {
		return m.fail(m.swapErr)
	}
	return true
}

func (m *mockEGL) SwapInterval(disp EGLDisplay, interval int32) bool {
	m.record("eglSwapInterval(%d)", interval)
	return true
}

func (m *mockEGL) GetProcAddress(name string) unsafe.Pointer {
	return m.procs[name]
}

func (m *mockEGL) GetError() int32 {
	err := m.err
	m.err = _EGL_SUCCESS
	return err
}

// attribValue returns the value of key in an EGL_NONE terminated
// attribute list, or nil.
func attribValue(attribs []int32, key int32) *int32 {
	for i := 0; i+1 < len(attribs); i += 2 {
		if attribs[i] == _EGL_NONE {
			break
		}
		if attribs[i] == key {
			return &attribs[i+1]
		}
	}
	return nil
}

// attribVersion returns the major and minor version requested by a
// context attribute list.
func attribVersion(attribs []int32) Version {
	var v Version
	if p := attribValue(attribs, _EGL_CONTEXT_MAJOR_VERSION); p != nil {
		v.Major = uint8(*p)
	}
	if p := attribValue(attribs, _EGL_CONTEXT_MINOR_VERSION); p != nil {
		v.Minor = uint8(*p)
	}
	return v
}
