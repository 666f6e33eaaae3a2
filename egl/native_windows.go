// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

// dllLib calls libEGL.dll, usually ANGLE.
type dllLib struct{}

var (
	libEGL                   = syscall.DLL{}
	_eglBindAPI              *syscall.Proc
	_eglCreateContext        *syscall.Proc
	_eglCreatePbufferSurface *syscall.Proc
	_eglCreateWindowSurface  *syscall.Proc
	_eglDestroyContext       *syscall.Proc
	_eglDestroySurface       *syscall.Proc
	_eglGetConfigAttrib      *syscall.Proc
	_eglGetConfigs           *syscall.Proc
	_eglGetCurrentContext    *syscall.Proc
	_eglGetDisplay           *syscall.Proc
	_eglGetError             *syscall.Proc
	_eglGetProcAddress       *syscall.Proc
	_eglInitialize           *syscall.Proc
	_eglMakeCurrent          *syscall.Proc
	_eglQueryString          *syscall.Proc
	_eglSwapBuffers          *syscall.Proc
	_eglSwapInterval         *syscall.Proc
	_eglTerminate            *syscall.Proc
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load locates libEGL.dll and its entry points. The DLL is loaded once
// per process.
func Load() (NativeAPI, error) {
	loadOnce.Do(func() {
		loadErr = loadDLLs()
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return dllLib{}, nil
}

func loadDLLs() error {
	if err := loadDLL(&libEGL, "libEGL.dll"); err != nil {
		return err
	}

	procs := map[string]**syscall.Proc{
		"eglBindAPI":              &_eglBindAPI,
		"eglCreateContext":        &_eglCreateContext,
		"eglCreatePbufferSurface": &_eglCreatePbufferSurface,
		"eglCreateWindowSurface":  &_eglCreateWindowSurface,
		"eglDestroyContext":       &_eglDestroyContext,
		"eglDestroySurface":       &_eglDestroySurface,
		"eglGetConfigAttrib":      &_eglGetConfigAttrib,
		"eglGetConfigs":           &_eglGetConfigs,
		"eglGetCurrentContext":    &_eglGetCurrentContext,
		"eglGetDisplay":           &_eglGetDisplay,
		"eglGetError":             &_eglGetError,
		"eglGetProcAddress":       &_eglGetProcAddress,
		"eglInitialize":           &_eglInitialize,
		"eglMakeCurrent":          &_eglMakeCurrent,
		"eglQueryString":          &_eglQueryString,
		"eglSwapBuffers":          &_eglSwapBuffers,
		"eglSwapInterval":         &_eglSwapInterval,
		"eglTerminate":            &_eglTerminate,
	}
	for name, proc := range procs {
		p, err := libEGL.FindProc(name)
		if err != nil {
			return fmt.Errorf("failed to locate %s in %s: %w", name, libEGL.Name, err)
		}
		*proc = p
	}
	return nil
}

func loadDLL(dll *syscall.DLL, name string) error {
	handle, err := syscall.LoadLibraryEx(name, 0, syscall.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return fmt.Errorf("egl: failed to load %s: %v", name, err)
	}
	dll.Handle = handle
	dll.Name = name
	return nil
}

func (dllLib) GetDisplay(disp NativeDisplayType) EGLDisplay {
	d, _, _ := _eglGetDisplay.Call(uintptr(disp))
	return EGLDisplay(d)
}

func (dllLib) Initialize(disp EGLDisplay) (int32, int32, bool) {
	var maj, min int32
	r, _, _ := _eglInitialize.Call(uintptr(disp), uintptr(unsafe.Pointer(&maj)), uintptr(unsafe.Pointer(&min)))
	return maj, min, r != 0
}

func (dllLib) Terminate(disp EGLDisplay) bool {
	r, _, _ := _eglTerminate.Call(uintptr(disp))
	return r != 0
}

func (dllLib) QueryString(disp EGLDisplay, name int32) (string, bool) {
	r, _, _ := _eglQueryString.Call(uintptr(disp), uintptr(name))
	if r == 0 {
		return "", false
	}
	return syscall.BytePtrToString((*byte)(unsafe.Pointer(r))), true
}

func (dllLib) BindAPI(api uint32) bool {
	r, _, _ := _eglBindAPI.Call(uintptr(api))
	return r != 0
}

func (dllLib) GetConfigs(disp EGLDisplay) ([]EGLConfig, bool) {
	var n int32
	r, _, _ := _eglGetConfigs.Call(uintptr(disp), 0, 0, uintptr(unsafe.Pointer(&n)))
	if r == 0 {
		return nil, false
	}
	if n == 0 {
		return nil, true
	}
	cfgs := make([]EGLConfig, n)
	r, _, _ = _eglGetConfigs.Call(uintptr(disp), uintptr(unsafe.Pointer(&cfgs[0])), uintptr(n), uintptr(unsafe.Pointer(&n)))
	issue34474KeepAlive(cfgs)
	if r == 0 {
		return nil, false
	}
	return cfgs[:n], true
}

func (dllLib) GetConfigAttrib(disp EGLDisplay, cfg EGLConfig, attr int32) (int32, bool) {
	var val int32
	r, _, _ := _eglGetConfigAttrib.Call(uintptr(disp), uintptr(cfg), uintptr(attr), uintptr(unsafe.Pointer(&val)))
	return val, r != 0
}

func (dllLib) CreateWindowSurface(disp EGLDisplay, cfg EGLConfig, win NativeWindowType, attribs []int32) EGLSurface {
	a := &attribs[0]
	s, _, _ := _eglCreateWindowSurface.Call(uintptr(disp), uintptr(cfg), uintptr(win), uintptr(unsafe.Pointer(a)))
	issue34474KeepAlive(a)
	return EGLSurface(s)
}

func (dllLib) CreatePbufferSurface(disp EGLDisplay, cfg EGLConfig, attribs []int32) EGLSurface {
	a := &attribs[0]
	s, _, _ := _eglCreatePbufferSurface.Call(uintptr(disp), uintptr(cfg), uintptr(unsafe.Pointer(a)))
	issue34474KeepAlive(a)
	return EGLSurface(s)
}

func (dllLib) CreateContext(disp EGLDisplay, cfg EGLConfig, share EGLContext, attribs []int32) EGLContext {
	a := &attribs[0]
	c, _, _ := _eglCreateContext.Call(uintptr(disp), uintptr(cfg), uintptr(share), uintptr(unsafe.Pointer(a)))
	issue34474KeepAlive(a)
	return EGLContext(c)
}

func (dllLib) DestroyContext(disp EGLDisplay, ctx EGLContext) bool {
	r, _, _ := _eglDestroyContext.Call(uintptr(disp), uintptr(ctx))
	return r != 0
}

func (dllLib) DestroySurface(disp EGLDisplay, surf EGLSurface) bool {
	r, _, _ := _eglDestroySurface.Call(uintptr(disp), uintptr(surf))
	return r != 0
}

func (dllLib) MakeCurrent(disp EGLDisplay, draw, read EGLSurface, ctx EGLContext) bool {
	r, _, _ := _eglMakeCurrent.Call(uintptr(disp), uintptr(draw), uintptr(read), uintptr(ctx))
	return r != 0
}

func (dllLib) GetCurrentContext() EGLContext {
	c, _, _ := _eglGetCurrentContext.Call()
	return EGLContext(c)
}

func (dllLib) SwapBuffers(disp EGLDisplay, surf EGLSurface) bool {
	r, _, _ := _eglSwapBuffers.Call(uintptr(disp), uintptr(surf))
	return r != 0
}

func (dllLib) SwapInterval(disp EGLDisplay, interval int32) bool {
	r, _, _ := _eglSwapInterval.Call(uintptr(disp), uintptr(interval))
	return r != 0
}

func (dllLib) GetProcAddress(name string) unsafe.Pointer {
	cname, err := syscall.BytePtrFromString(name)
	if err != nil {
		return nil
	}
	p, _, _ := _eglGetProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	issue34474KeepAlive(cname)
	return unsafe.Pointer(p)
}

func (dllLib) GetError() int32 {
	e, _, _ := _eglGetError.Call()
	return int32(e)
}

// issue34474KeepAlive calls runtime.KeepAlive as a
// workaround for golang.org/issue/34474.
func issue34474KeepAlive(v any) {
	runtime.KeepAlive(v)
}
