// SPDX-License-Identifier: Unlicense OR MIT

package egl

import "fmt"

// RobustnessMode selects the robustness behavior requested for a context.
type RobustnessMode uint8

const (
	// NotRobust requests no robustness behavior.
	NotRobust RobustnessMode = iota
	// NoError requests a context that does not report errors, when
	// EGL_KHR_create_context_no_error is available.
	NoError
	// RobustRequired requests robust buffer access with the given reset
	// strategy and fails context creation without support.
	RobustRequired
	// RobustOptional is RobustRequired, but silently dropped without
	// support.
	RobustOptional
)

// ResetStrategy is the behavior of a robust context after a graphics
// reset.
type ResetStrategy uint8

const (
	NoResetNotification ResetStrategy = iota
	LoseContextOnReset
)

// Robustness is the robustness policy of a context.
type Robustness struct {
	Mode  RobustnessMode
	Reset ResetStrategy
}

func (r Robustness) String() string {
	reset := "no-reset"
	if r.Reset == LoseContextOnReset {
		reset = "lose-context"
	}
	switch r.Mode {
	case NotRobust:
		return "none"
	case NoError:
		return "no-error"
	case RobustRequired:
		return "require-" + reset
	case RobustOptional:
		return "try-" + reset
	default:
		return fmt.Sprintf("Robustness(%d)", uint8(r.Mode))
	}
}

// support is the outcome of gating an optional context feature.
type support uint8

const (
	// supported features are encoded in the attribute list.
	supported support = iota
	// omitted features are left out of the attribute list.
	omitted
	// unsupported features fail the creation attempt.
	unsupported
)

// contextRequest is the input of one context creation attempt.
type contextRequest struct {
	eglVersion Version
	exts       ExtensionSet
	api        API
	version    Version
	debug      bool
	robustness Robustness
}

func (r contextRequest) createContextExt() bool {
	return r.eglVersion.AtLeast(1, 5) || r.exts.Contains("EGL_KHR_create_context")
}

func (r contextRequest) robustnessSupport(available bool) support {
	switch r.robustness.Mode {
	case RobustRequired:
		if available {
			return supported
		}
		return unsupported
	case RobustOptional:
		if available {
			return supported
		}
	}
	return omitted
}

func (r contextRequest) noErrorSupport() support {
	if r.robustness.Mode == NoError && r.exts.Contains("EGL_KHR_create_context_no_error") {
		return supported
	}
	return omitted
}

// debugSupport gates the EGL 1.5 debug attribute. The
// EGL_CONTEXT_OPENGL_DEBUG_BIT_KHR flag is never set: drivers
// predating its addition to EGL_KHR_create_context reject it and
// there is no way to detect them.
func (r contextRequest) debugSupport() support {
	if r.debug && r.eglVersion.AtLeast(1, 5) {
		return supported
	}
	return omitted
}

// contextAttribs builds the EGL_NONE terminated attribute list for
// eglCreateContext.
func contextAttribs(r contextRequest) ([]int32, error) {
	log := Logger()
	attribs := make([]int32, 0, 11)
	switch {
	case r.createContextExt():
		attribs = append(attribs,
			_EGL_CONTEXT_MAJOR_VERSION, int32(r.version.Major),
			_EGL_CONTEXT_MINOR_VERSION, int32(r.version.Minor),
		)
		var flags int32
		switch r.robustness.Mode {
		case NoError:
			if r.noErrorSupport() == supported {
				attribs = append(attribs, _EGL_CONTEXT_OPENGL_NO_ERROR_KHR, _EGL_TRUE)
			} else {
				log.Warn("egl: no-error context unavailable, ignoring")
			}
		case RobustRequired, RobustOptional:
			available := r.eglVersion.AtLeast(1, 5) || r.exts.Contains("EGL_EXT_create_context_robustness")
			switch r.robustnessSupport(available) {
			case supported:
				strategy := int32(_EGL_NO_RESET_NOTIFICATION)
				if r.robustness.Reset == LoseContextOnReset {
					strategy = _EGL_LOSE_CONTEXT_ON_RESET
				}
				attribs = append(attribs, _EGL_CONTEXT_OPENGL_RESET_NOTIFICATION_STRATEGY, strategy)
				flags |= _EGL_CONTEXT_OPENGL_ROBUST_ACCESS_BIT_KHR
			case unsupported:
				return nil, ErrRobustnessUnsupported
			default:
				log.Warn("egl: robustness unavailable, ignoring", "robustness", r.robustness)
			}
		}
		if r.debug {
			if r.debugSupport() == supported {
				attribs = append(attribs, _EGL_CONTEXT_OPENGL_DEBUG, _EGL_TRUE)
			} else {
				log.Warn("egl: debug contexts need EGL 1.5, ignoring", "egl", r.eglVersion)
			}
		}
		attribs = append(attribs, _EGL_CONTEXT_FLAGS_KHR, flags)
	case r.eglVersion.AtLeast(1, 3) && r.api == OpenGLES:
		if r.robustnessSupport(false) == unsupported {
			return nil, ErrRobustnessUnsupported
		}
		attribs = append(attribs, _EGL_CONTEXT_CLIENT_VERSION, int32(r.version.Major))
	default:
		if r.robustnessSupport(false) == unsupported {
			return nil, ErrRobustnessUnsupported
		}
	}
	return append(attribs, _EGL_NONE), nil
}
