// SPDX-License-Identifier: Unlicense OR MIT

package egl

import "fmt"

// API is a client API family that can be bound to an EGL display.
type API uint8

const (
	OpenGL API = iota
	OpenGLES
)

func (a API) String() string {
	switch a {
	case OpenGL:
		return "OpenGL"
	case OpenGLES:
		return "OpenGL ES"
	default:
		return fmt.Sprintf("API(%d)", uint8(a))
	}
}

// Version is a major.minor version pair, used both for EGL itself and
// for client API versions.
type Version struct {
	Major, Minor uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor uint8) bool {
	return v.Major > major || v.Major == major && v.Minor >= minor
}

// PolicyKind selects how the client API and version are chosen.
type PolicyKind uint8

const (
	// PolicyLatest binds the newest API available and lets context
	// creation walk the fallback version list.
	PolicyLatest PolicyKind = iota
	// PolicyExplicit requires a specific API and version.
	PolicyExplicit
	// PolicyGLThenGLES prefers desktop OpenGL and falls back to OpenGL ES.
	PolicyGLThenGLES
)

// VersionPolicy describes the requested client API and version. The zero
// value is the Latest policy.
type VersionPolicy struct {
	Kind PolicyKind
	// API and Version apply to PolicyExplicit.
	API     API
	Version Version
	// GL and GLES apply to PolicyGLThenGLES.
	GL   Version
	GLES Version
}

// Latest requests the newest API and version the driver offers.
func Latest() VersionPolicy {
	return VersionPolicy{Kind: PolicyLatest}
}

// Explicit requests exactly api at version v.
func Explicit(api API, v Version) VersionPolicy {
	return VersionPolicy{Kind: PolicyExplicit, API: api, Version: v}
}

// GLThenGLES requests desktop OpenGL gl, or OpenGL ES gles if desktop
// OpenGL cannot be bound.
func GLThenGLES(gl, gles Version) VersionPolicy {
	return VersionPolicy{Kind: PolicyGLThenGLES, GL: gl, GLES: gles}
}

func (p VersionPolicy) String() string {
	switch p.Kind {
	case PolicyLatest:
		return "latest"
	case PolicyExplicit:
		return fmt.Sprintf("%v %v", p.API, p.Version)
	case PolicyGLThenGLES:
		return fmt.Sprintf("OpenGL %v then OpenGL ES %v", p.GL, p.GLES)
	default:
		return fmt.Sprintf("VersionPolicy(%d)", uint8(p.Kind))
	}
}

// negotiation is the outcome of binding a client API to a display.
type negotiation struct {
	api API
	// version is nil when the fallback list decides.
	version *Version
}

// negotiateAPI binds the client API for the lifetime of the display.
// eglBindAPI exists from EGL 1.2; binding desktop OpenGL needs EGL 1.4.
func negotiateAPI(lib NativeAPI, eglVersion Version, p VersionPolicy) (negotiation, error) {
	canBindGL := eglVersion.AtLeast(1, 4)
	switch p.Kind {
	case PolicyLatest:
		if !canBindGL {
			return negotiation{api: OpenGLES}, nil
		}
		if lib.BindAPI(_EGL_OPENGL_API) {
			return negotiation{api: OpenGL}, nil
		}
		if lib.BindAPI(_EGL_OPENGL_ES_API) {
			return negotiation{api: OpenGLES}, nil
		}
		return negotiation{}, ErrVersionUnsupported
	case PolicyExplicit:
		v := p.Version
		switch p.API {
		case OpenGLES:
			if eglVersion.AtLeast(1, 2) && !lib.BindAPI(_EGL_OPENGL_ES_API) {
				return negotiation{}, ErrVersionUnsupported
			}
			return negotiation{api: OpenGLES, version: &v}, nil
		case OpenGL:
			if !canBindGL || !lib.BindAPI(_EGL_OPENGL_API) {
				return negotiation{}, ErrVersionUnsupported
			}
			return negotiation{api: OpenGL, version: &v}, nil
		}
		return negotiation{}, ErrVersionUnsupported
	case PolicyGLThenGLES:
		gl, gles := p.GL, p.GLES
		if !canBindGL {
			return negotiation{api: OpenGLES, version: &gles}, nil
		}
		if lib.BindAPI(_EGL_OPENGL_API) {
			return negotiation{api: OpenGL, version: &gl}, nil
		}
		if lib.BindAPI(_EGL_OPENGL_ES_API) {
			return negotiation{api: OpenGLES, version: &gles}, nil
		}
		return negotiation{}, ErrVersionUnsupported
	}
	return negotiation{}, fmt.Errorf("egl: unknown version policy %d", p.Kind)
}

// fallbackVersions returns the versions context creation tries, in order.
// A fresh slice is built per call.
func (n negotiation) fallbackVersions() []Version {
	if n.version != nil {
		return []Version{*n.version}
	}
	if n.api == OpenGLES {
		return []Version{{2, 0}, {1, 0}}
	}
	return []Version{{3, 2}, {3, 1}, {1, 0}}
}
