// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && cgo

package main

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/gl/v3.1/gles2"

	"github.com/eglctx/eglctx/egl"
)

// queryGL loads the client API entry points of the current context through
// resolve and reads its identification strings.
func queryGL(api egl.API, resolve func(name string) unsafe.Pointer) (*glInfo, error) {
	switch api {
	case egl.OpenGL:
		if err := gl.InitWithProcAddrFunc(resolve); err != nil {
			return nil, err
		}
		get := func(name uint32) string { return gl.GoStr(gl.GetString(name)) }
		return &glInfo{
			Vendor:   get(gl.VENDOR),
			Renderer: get(gl.RENDERER),
			Version:  get(gl.VERSION),
			Shading:  get(gl.SHADING_LANGUAGE_VERSION),
		}, nil
	case egl.OpenGLES:
		if err := gles2.InitWithProcAddrFunc(resolve); err != nil {
			return nil, err
		}
		get := func(name uint32) string { return gles2.GoStr(gles2.GetString(name)) }
		return &glInfo{
			Vendor:   get(gles2.VENDOR),
			Renderer: get(gles2.RENDERER),
			Version:  get(gles2.VERSION),
			Shading:  get(gles2.SHADING_LANGUAGE_VERSION),
		}, nil
	default:
		return nil, fmt.Errorf("unknown client API %v", api)
	}
}
