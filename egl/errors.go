// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionUnsupported is returned when no requested API and version
	// combination was accepted by the driver.
	ErrVersionUnsupported = errors.New("egl: requested OpenGL version is not supported")
	// ErrRobustnessUnsupported is returned when a required robustness
	// behavior is not available.
	ErrRobustnessUnsupported = errors.New("egl: robustness is not supported")
	// ErrContextLost is returned by MakeCurrent and Present after a
	// graphics reset. The context must be recreated.
	ErrContextLost = errors.New("egl: context lost")
	// ErrUnimplemented is returned when context sharing is requested.
	ErrUnimplemented = errors.New("egl: context sharing is not implemented")
	// ErrNoPixelFormat is returned when no config satisfies the pixel
	// format requirements.
	ErrNoPixelFormat = errors.New("egl: no available pixel format")
)

// EnvironmentError reports a failed EGL call that leaves no
// meaningful recovery other than reporting it.
type EnvironmentError struct {
	// Op is the failed EGL entry point or step.
	Op string
	// Code is the eglGetError value, or EGL_SUCCESS (0x3000) when the driver
	// did not set one.
	Code int32
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("egl: %s failed: 0x%x", e.Op, e.Code)
}

func envError(lib NativeAPI, op string) error {
	return &EnvironmentError{Op: op, Code: lib.GetError()}
}
