// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux

package main

import (
	"errors"

	"github.com/eglctx/eglctx/egl"
)

type x11Window struct{}

func openWindow(visual, width, height int) (*x11Window, error) {
	return nil, errors.New("--window is only supported on X11")
}

func (w *x11Window) Native() egl.NativeWindowType { return 0 }

func (w *x11Window) Close() {}
