// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux || !cgo

package main

import (
	"errors"
	"unsafe"

	"github.com/eglctx/eglctx/egl"
)

func queryGL(api egl.API, resolve func(name string) unsafe.Pointer) (*glInfo, error) {
	return nil, errors.New("client API strings are only read on linux")
}
