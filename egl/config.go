// SPDX-License-Identifier: Unlicense OR MIT

package egl

// PixelFormat describes the framebuffer layout of a config.
type PixelFormat struct {
	HardwareAccelerated bool
	// ColorBits is the sum of the red, green and blue channel sizes.
	ColorBits    uint8
	AlphaBits    uint8
	DepthBits    uint8
	StencilBits  uint8
	Stereoscopy  bool
	DoubleBuffer bool
	// Multisampling is the sample count, or 0 without multisampling.
	Multisampling uint16
	// SRGB is only set on the pixel format of a Context whose surface
	// was created with an sRGB color space.
	SRGB bool
}

// ConfigCandidate is a config that passed enumeration filtering.
type ConfigCandidate struct {
	Config EGLConfig
	Format PixelFormat
}

// attribReader reads config attributes, keeping the first error.
type attribReader struct {
	lib  NativeAPI
	disp EGLDisplay
	cfg  EGLConfig
	err  error
}

func (r *attribReader) get(attr int32) int32 {
	if r.err != nil {
		return 0
	}
	v, ok := r.lib.GetConfigAttrib(r.disp, r.cfg, attr)
	if !ok {
		r.err = envError(r.lib, "eglGetConfigAttrib")
	}
	return v
}

// enumerateConfigs lists the configs of disp usable for api, in driver
// order. A failed query fails the whole enumeration.
func enumerateConfigs(lib NativeAPI, disp EGLDisplay, api API, version *Version) ([]ConfigCandidate, error) {
	cfgs, ok := lib.GetConfigs(disp)
	if !ok {
		return nil, envError(lib, "eglGetConfigs")
	}
	var candidates []ConfigCandidate
	for _, cfg := range cfgs {
		r := &attribReader{lib: lib, disp: disp, cfg: cfg}
		usable := acceptConfig(r, apiBit(api, version))
		if r.err != nil {
			return nil, r.err
		}
		if !usable {
			continue
		}
		pf := readPixelFormat(r)
		if r.err != nil {
			return nil, r.err
		}
		candidates = append(candidates, ConfigCandidate{Config: cfg, Format: pf})
	}
	Logger().Debug("egl: enumerated configs", "total", len(cfgs), "usable", len(candidates))
	return candidates, nil
}

// acceptConfig applies the config filters in order, stopping at the
// first that fails.
func acceptConfig(r *attribReader, bit int32) bool {
	renderable := r.get(_EGL_RENDERABLE_TYPE)
	conformant := r.get(_EGL_CONFORMANT)
	if r.err != nil || renderable&bit != bit || conformant&bit != bit {
		return false
	}
	if r.get(_EGL_SURFACE_TYPE)&(_EGL_WINDOW_BIT|_EGL_PBUFFER_BIT) == 0 {
		return false
	}
	// Transparent configs are excluded.
	if r.get(_EGL_TRANSPARENT_TYPE) != _EGL_NONE {
		return false
	}
	return r.get(_EGL_COLOR_BUFFER_TYPE) == _EGL_RGB_BUFFER
}

// readPixelFormat describes an accepted config. EGL configs carry no
// stereo or color space attributes; those fields stay false.
func readPixelFormat(r *attribReader) PixelFormat {
	pf := PixelFormat{
		HardwareAccelerated: r.get(_EGL_CONFIG_CAVEAT) != _EGL_SLOW_CONFIG,
		ColorBits:           uint8(r.get(_EGL_RED_SIZE) + r.get(_EGL_BLUE_SIZE) + r.get(_EGL_GREEN_SIZE)),
		AlphaBits:           uint8(r.get(_EGL_ALPHA_SIZE)),
		DepthBits:           uint8(r.get(_EGL_DEPTH_SIZE)),
		StencilBits:         uint8(r.get(_EGL_STENCIL_SIZE)),
		DoubleBuffer:        true,
	}
	if s := r.get(_EGL_SAMPLES); s > 1 {
		pf.Multisampling = uint16(s)
	}
	return pf
}

// apiBit returns the EGL_RENDERABLE_TYPE and EGL_CONFORMANT bit a
// config must carry. OpenGL ES without a major version accepts any
// config.
func apiBit(api API, version *Version) int32 {
	if api == OpenGL {
		return _EGL_OPENGL_BIT
	}
	if version == nil {
		return 0
	}
	switch version.Major {
	case 1:
		return _EGL_OPENGL_ES_BIT
	case 2:
		return _EGL_OPENGL_ES2_BIT
	case 3:
		return _EGL_OPENGL_ES3_BIT
	}
	return 0
}
