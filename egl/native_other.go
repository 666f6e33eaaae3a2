// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows && !((linux || freebsd || openbsd) && cgo)

package egl

import (
	"fmt"
	"runtime"
)

// Load reports that EGL is unavailable on this platform.
func Load() (NativeAPI, error) {
	return nil, fmt.Errorf("egl: not supported on %s (cgo required)", runtime.GOOS)
}
