// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func newTestPrototype(t *testing.T, m *mockEGL, a Attribs) *Prototype {
	t.Helper()
	p, err := NewPrototype(m, a, DefaultDisplay)
	if err != nil {
		t.Fatal(err)
	}
	m.calls = nil
	return p
}

func TestShareUnimplemented(t *testing.T) {
	m := newMock()
	_, err := NewPrototype(m, Attribs{Share: &Context{}}, DefaultDisplay)
	if !errors.Is(err, ErrUnimplemented) {
		t.Errorf("got %v, expected ErrUnimplemented", err)
	}
	if len(m.calls) != 0 {
		t.Errorf("sharing request reached EGL: %v", m.calls)
	}
}

func TestNewPrototypeDisplayErrors(t *testing.T) {
	m := newMock()
	m.noDisplay = true
	_, err := NewPrototype(m, Attribs{}, DefaultDisplay)
	var envErr *EnvironmentError
	if !errors.As(err, &envErr) || envErr.Op != "eglGetDisplay" {
		t.Errorf("got %v, expected eglGetDisplay failure", err)
	}

	m = newMock()
	m.initFails = true
	_, err = NewPrototype(m, Attribs{}, DefaultDisplay)
	if !errors.As(err, &envErr) || envErr.Code != _EGL_NOT_INITIALIZED {
		t.Errorf("got %v, expected eglInitialize failure", err)
	}
}

func TestNewPrototypeExtensions(t *testing.T) {
	m := newMock()
	m.clientExts = strPtr("EGL_EXT_platform_base")
	m.displayExts = strPtr("EGL_KHR_create_context")
	p := newTestPrototype(t, m, Attribs{})
	exts := p.Extensions()
	if !exts.Contains("EGL_EXT_platform_base") || !exts.Contains("EGL_KHR_create_context") {
		t.Errorf("got extensions %v", exts.Names())
	}
	if p.EGLVersion() != (Version{1, 5}) {
		t.Errorf("got EGL version %v", p.EGLVersion())
	}

	// Display extensions need EGL 1.2.
	m = newMock()
	m.major, m.minor = 1, 1
	m.displayExts = strPtr("EGL_KHR_create_context")
	p = newTestPrototype(t, m, Attribs{})
	if n := p.Extensions().Len(); n != 0 {
		t.Errorf("EGL 1.1 display gave %d extensions", n)
	}
}

func TestNewPrototypeFailureTerminates(t *testing.T) {
	tests := map[string]func(m *mockEGL, a *Attribs){
		"bind": func(m *mockEGL, a *Attribs) {
			m.refuseAPI = map[uint32]bool{_EGL_OPENGL_API: true, _EGL_OPENGL_ES_API: true}
		},
		"enumerate": func(m *mockEGL, a *Attribs) {
			m.configsFail = true
		},
		"choose": func(m *mockEGL, a *Attribs) {
			a.ChooseConfig = ChoosePixelFormat(PixelFormatRequirements{MinDepthBits: 32})
		},
	}
	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			m := newMock()
			var a Attribs
			setup(m, &a)
			if _, err := NewPrototype(m, a, DefaultDisplay); err == nil {
				t.Fatal("NewPrototype succeeded")
			}
			if last := m.calls[len(m.calls)-1]; last != "eglTerminate" {
				t.Errorf("display not terminated, calls %v", m.calls)
			}
		})
	}
}

func TestFallbackOrder(t *testing.T) {
	tests := []struct {
		name  string
		api   API
		order []Version
	}{
		{"gl", OpenGL, []Version{{3, 2}, {3, 1}, {1, 0}}},
		{"es", OpenGLES, []Version{{2, 0}, {1, 0}}},
	}
	for _, test := range tests {
		for fails := 0; fails < len(test.order); fails++ {
			m := newMock()
			if test.api == OpenGLES {
				m.refuseAPI = map[uint32]bool{_EGL_OPENGL_API: true}
			}
			m.createContext = func(attempt int, attribs []int32) int32 {
				if attempt < fails {
					return _EGL_BAD_ATTRIBUTE
				}
				return _EGL_SUCCESS
			}
			p := newTestPrototype(t, m, Attribs{})
			ctx, err := p.FinishPbuffer()
			if err != nil {
				t.Fatalf("%s, %d failures: %v", test.name, fails, err)
			}
			if ctx.API() != test.api {
				t.Errorf("%s: got API %v", test.name, ctx.API())
			}
			var tried []Version
			for _, a := range m.contextAttribs {
				tried = append(tried, attribVersion(a))
			}
			if exp := test.order[:fails+1]; !reflect.DeepEqual(tried, exp) {
				t.Errorf("%s, %d failures: tried %v, expected %v", test.name, fails, tried, exp)
			}
			ctx.Release()
		}
	}
}

func TestFallbackExhausted(t *testing.T) {
	m := newMock()
	m.createContext = func(attempt int, attribs []int32) int32 {
		if attempt%2 == 0 {
			return _EGL_BAD_MATCH
		}
		return _EGL_BAD_ATTRIBUTE
	}
	p := newTestPrototype(t, m, Attribs{})
	_, err := p.FinishPbuffer()
	if !errors.Is(err, ErrVersionUnsupported) {
		t.Fatalf("got %v, expected ErrVersionUnsupported", err)
	}
	if len(m.contextAttribs) != 3 {
		t.Errorf("got %d attempts, expected 3", len(m.contextAttribs))
	}
	exp := []string{
		"eglCreatePbufferSurface",
		"eglCreateContext", "eglCreateContext", "eglCreateContext",
		"eglDestroySurface", "eglTerminate",
	}
	if !reflect.DeepEqual(m.calls, exp) {
		t.Errorf("got calls %v, expected %v", m.calls, exp)
	}
}

func TestExplicitVersionSingleAttempt(t *testing.T) {
	m := newMock()
	m.createContext = func(attempt int, attribs []int32) int32 {
		return _EGL_BAD_MATCH
	}
	p := newTestPrototype(t, m, Attribs{Version: Explicit(OpenGL, Version{4, 6})})
	_, err := p.Finish(0x42)
	if !errors.Is(err, ErrVersionUnsupported) {
		t.Fatalf("got %v, expected ErrVersionUnsupported", err)
	}
	if len(m.contextAttribs) != 1 || attribVersion(m.contextAttribs[0]) != (Version{4, 6}) {
		t.Errorf("got attempts %v", m.contextAttribs)
	}
}

func TestRequiredRobustnessNoFallback(t *testing.T) {
	m := newMock()
	m.major, m.minor = 1, 4
	m.displayExts = strPtr("EGL_KHR_create_context")
	p := newTestPrototype(t, m, Attribs{Robustness: Robustness{Mode: RobustRequired}})
	_, err := p.FinishPbuffer()
	if !errors.Is(err, ErrRobustnessUnsupported) {
		t.Fatalf("got %v, expected ErrRobustnessUnsupported", err)
	}
	if len(m.contextAttribs) != 0 {
		t.Errorf("eglCreateContext called %d times", len(m.contextAttribs))
	}
}

func TestCreateContextUnexpectedError(t *testing.T) {
	m := newMock()
	m.createContext = func(attempt int, attribs []int32) int32 {
		return _EGL_BAD_ALLOC
	}
	p := newTestPrototype(t, m, Attribs{})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("no panic on unexpected eglCreateContext error")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "0x3003") {
			t.Errorf("got panic %v", r)
		}
	}()
	p.FinishPbuffer()
	t.Error("FinishPbuffer returned")
}

func TestFinishSurfaceFailure(t *testing.T) {
	for _, pbuffer := range []bool{false, true} {
		m := newMock()
		m.surfaceFails = true
		p := newTestPrototype(t, m, Attribs{})
		var err error
		if pbuffer {
			_, err = p.FinishPbuffer()
		} else {
			_, err = p.Finish(0x42)
		}
		var envErr *EnvironmentError
		if !errors.As(err, &envErr) || envErr.Code != _EGL_BAD_NATIVE_WINDOW {
			t.Errorf("got %v, expected surface failure", err)
		}
		if len(m.contextAttribs) != 0 {
			t.Error("context created without a surface")
		}
		if last := m.calls[len(m.calls)-1]; last != "eglTerminate" {
			t.Errorf("display not terminated, calls %v", m.calls)
		}
	}
}

func TestPbufferSize(t *testing.T) {
	tests := []struct {
		w, h       int
		expW, expH int32
	}{
		{0, 0, 800, 600},
		{64, 32, 64, 32},
		{0, 32, 800, 32},
	}
	for _, test := range tests {
		m := newMock()
		p := newTestPrototype(t, m, Attribs{Width: test.w, Height: test.h})
		ctx, err := p.FinishPbuffer()
		if err != nil {
			t.Fatal(err)
		}
		exp := []int32{_EGL_WIDTH, test.expW, _EGL_HEIGHT, test.expH, _EGL_NONE}
		if got := m.surfAttribs[0]; !reflect.DeepEqual(got, exp) {
			t.Errorf("got surface attributes %v, expected %v", got, exp)
		}
		ctx.Release()
	}
}

func TestPrototypeSingleUse(t *testing.T) {
	m := newMock()
	p := newTestPrototype(t, m, Attribs{})
	ctx, err := p.Finish(0x42)
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Release()
	if _, err := p.FinishPbuffer(); err == nil {
		t.Error("second finish succeeded")
	}
	p.Release()
	for _, c := range m.calls {
		if c == "eglTerminate" {
			t.Error("releasing a finished prototype terminated the display")
		}
	}
}

func TestPrototypeRelease(t *testing.T) {
	m := newMock()
	p := newTestPrototype(t, m, Attribs{})
	p.Release()
	p.Release()
	if exp := []string{"eglTerminate"}; !reflect.DeepEqual(m.calls, exp) {
		t.Errorf("got calls %v, expected %v", m.calls, exp)
	}
}

func TestSRGBSurface(t *testing.T) {
	tests := []struct {
		name     string
		major    int32
		minor    int32
		exts     string
		refuse   bool
		attempts int
		srgb     bool
	}{
		{"egl 1.5", 1, 5, "", false, 1, true},
		{"colorspace extension", 1, 4, "EGL_KHR_gl_colorspace", false, 1, true},
		{"unsupported", 1, 4, "", false, 1, false},
		{"refused", 1, 5, "", true, 2, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newMock()
			m.major, m.minor = test.major, test.minor
			m.displayExts = strPtr(test.exts)
			m.srgbFails = test.refuse
			p := newTestPrototype(t, m, Attribs{SRGB: true})
			ctx, err := p.Finish(0x42)
			if err != nil {
				t.Fatal(err)
			}
			defer ctx.Release()
			if len(m.surfAttribs) != test.attempts {
				t.Errorf("got %d surface attempts, expected %d", len(m.surfAttribs), test.attempts)
			}
			if got := ctx.PixelFormat().SRGB; got != test.srgb {
				t.Errorf("got sRGB %v, expected %v", got, test.srgb)
			}
		})
	}
}

func TestNativeVisualID(t *testing.T) {
	m := newMock()
	p := newTestPrototype(t, m, Attribs{})
	id, err := p.NativeVisualID()
	if err != nil || id != 0x21 {
		t.Errorf("got %#x, %v", id, err)
	}
	m.failAttrib = _EGL_NATIVE_VISUAL_ID
	if _, err := p.NativeVisualID(); err == nil {
		t.Error("expected error")
	}
}

func TestChooseConfigHook(t *testing.T) {
	m := newMock()
	slow := glConfig()
	slow[_EGL_CONFIG_CAVEAT] = _EGL_SLOW_CONFIG
	m.configs = append([]map[int32]int32{slow}, m.configs...)
	var seen int
	p := newTestPrototype(t, m, Attribs{
		ChooseConfig: func(c []ConfigCandidate) (ConfigCandidate, error) {
			seen = len(c)
			return c[0], nil
		},
	})
	if seen != 2 {
		t.Errorf("chooser saw %d candidates, expected 2", seen)
	}
	if p.PixelFormat().HardwareAccelerated {
		t.Error("chooser result ignored")
	}
	p.Release()
}
