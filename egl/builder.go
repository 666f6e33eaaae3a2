// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"fmt"
)

// Attribs configures context creation. The zero value requests the
// latest API, no robustness and no debugging.
type Attribs struct {
	// Width and Height size pbuffer surfaces. Zero means 800 and 600.
	Width, Height int
	// Share requests object sharing with another context. Sharing is
	// not implemented and fails NewPrototype.
	Share *Context

	Version    VersionPolicy
	Robustness Robustness
	Debug      bool
	// SRGB requests an sRGB color space for the surface when the display
	// supports EGL_KHR_gl_colorspace.
	SRGB bool
	// ChooseConfig selects the config from the enumerated candidates. Nil
	// means ChoosePixelFormat with no requirements.
	ChooseConfig func([]ConfigCandidate) (ConfigCandidate, error)
}

// Prototype is an initialized display with a bound client API and a
// chosen config, waiting for a surface. Finish or FinishPbuffer turn it
// into a Context; Release abandons it.
type Prototype struct {
	lib        NativeAPI
	attribs    Attribs
	disp       EGLDisplay
	eglVersion Version
	exts       ExtensionSet
	neg        negotiation
	config     EGLConfig
	format     PixelFormat
	done       bool
}

var errPrototypeDone = errors.New("egl: prototype already finished")

// NewPrototype initializes the display, binds a client API according to
// a.Version and chooses a config.
func NewPrototype(lib NativeAPI, a Attribs, native NativeDisplayType) (*Prototype, error) {
	if a.Share != nil {
		return nil, ErrUnimplemented
	}
	log := Logger()
	// Client extensions are readable before initialization on EGL 1.5
	// and with EGL_EXT_client_extensions. Otherwise the query is NULL.
	exts := queryExtensions(lib, nilEGLDisplay)
	disp := lib.GetDisplay(native)
	if disp == nilEGLDisplay {
		return nil, envError(lib, "eglGetDisplay")
	}
	major, minor, ok := lib.Initialize(disp)
	if !ok {
		return nil, envError(lib, "eglInitialize")
	}
	p := &Prototype{
		lib:        lib,
		attribs:    a,
		disp:       disp,
		eglVersion: Version{Major: uint8(major), Minor: uint8(minor)},
	}
	if p.eglVersion.AtLeast(1, 2) {
		exts = exts.Union(queryExtensions(lib, disp))
	}
	p.exts = exts
	log.Debug("egl: display initialized", "version", p.eglVersion, "extensions", exts.Len())

	if err := p.negotiate(); err != nil {
		lib.Terminate(disp)
		return nil, err
	}
	return p, nil
}

func (p *Prototype) negotiate() error {
	neg, err := negotiateAPI(p.lib, p.eglVersion, p.attribs.Version)
	if err != nil {
		return err
	}
	p.neg = neg
	Logger().Debug("egl: bound client API", "api", neg.api, "policy", p.attribs.Version)
	candidates, err := enumerateConfigs(p.lib, p.disp, neg.api, neg.version)
	if err != nil {
		return err
	}
	choose := p.attribs.ChooseConfig
	if choose == nil {
		choose = ChoosePixelFormat(PixelFormatRequirements{})
	}
	c, err := choose(candidates)
	if err != nil {
		return err
	}
	p.config, p.format = c.Config, c.Format
	return nil
}

// API returns the bound client API.
func (p *Prototype) API() API { return p.neg.api }

// EGLVersion returns the version reported by eglInitialize.
func (p *Prototype) EGLVersion() Version { return p.eglVersion }

// Extensions returns the client and display extensions.
func (p *Prototype) Extensions() ExtensionSet { return p.exts }

// PixelFormat returns the pixel format of the chosen config.
func (p *Prototype) PixelFormat() PixelFormat { return p.format }

// NativeVisualID returns EGL_NATIVE_VISUAL_ID of the chosen config, for
// creating a matching native window.
func (p *Prototype) NativeVisualID() (int, error) {
	id, ok := p.lib.GetConfigAttrib(p.disp, p.config, _EGL_NATIVE_VISUAL_ID)
	if !ok {
		return 0, envError(p.lib, "eglGetConfigAttrib")
	}
	return int(id), nil
}

// Release terminates the display of a prototype that was never
// finished.
func (p *Prototype) Release() {
	if p.done {
		return
	}
	p.done = true
	p.lib.Terminate(p.disp)
}

// Finish creates a window surface for win and a context rendering to it.
// The prototype is consumed, whether or not Finish succeeds.
func (p *Prototype) Finish(win NativeWindowType) (*Context, error) {
	if p.done {
		return nil, errPrototypeDone
	}
	p.done = true
	create := func(attribs []int32) EGLSurface {
		return p.lib.CreateWindowSurface(p.disp, p.config, win, attribs)
	}
	surf, srgb := p.createSurface(create, nil)
	if surf == nilEGLSurface {
		err := envError(p.lib, "eglCreateWindowSurface")
		p.lib.Terminate(p.disp)
		return nil, err
	}
	return p.finish(surf, srgb)
}

// FinishPbuffer creates an off-screen surface of the requested size and
// a context rendering to it. The prototype is consumed, whether or not
// FinishPbuffer succeeds.
func (p *Prototype) FinishPbuffer() (*Context, error) {
	if p.done {
		return nil, errPrototypeDone
	}
	p.done = true
	w, h := p.attribs.Width, p.attribs.Height
	if w == 0 {
		w = 800
	}
	if h == 0 {
		h = 600
	}
	create := func(attribs []int32) EGLSurface {
		return p.lib.CreatePbufferSurface(p.disp, p.config, attribs)
	}
	surf, srgb := p.createSurface(create, []int32{_EGL_WIDTH, int32(w), _EGL_HEIGHT, int32(h)})
	if surf == nilEGLSurface {
		err := envError(p.lib, "eglCreatePbufferSurface")
		p.lib.Terminate(p.disp)
		return nil, err
	}
	return p.finish(surf, srgb)
}

// createSurface creates a surface with the base attributes, adding an
// sRGB color space if requested and supported. It retries without sRGB
// if the driver refuses it.
func (p *Prototype) createSurface(create func([]int32) EGLSurface, base []int32) (EGLSurface, bool) {
	srgb := p.attribs.SRGB && (p.eglVersion.AtLeast(1, 5) || p.exts.Contains("EGL_KHR_gl_colorspace"))
	if srgb {
		attribs := append(base[:len(base):len(base)], _EGL_GL_COLORSPACE_KHR, _EGL_GL_COLORSPACE_SRGB_KHR, _EGL_NONE)
		if surf := create(attribs); surf != nilEGLSurface {
			return surf, true
		}
		Logger().Warn("egl: sRGB surface refused, retrying without", "error", fmt.Sprintf("0x%x", p.lib.GetError()))
	} else if p.attribs.SRGB {
		Logger().Warn("egl: sRGB surfaces unsupported, ignoring")
	}
	return create(append(base[:len(base):len(base)], _EGL_NONE)), false
}

// finish creates the context, walking the fallback version list when no
// version was negotiated.
func (p *Prototype) finish(surf EGLSurface, srgb bool) (*Context, error) {
	req := contextRequest{
		eglVersion: p.eglVersion,
		exts:       p.exts,
		api:        p.neg.api,
		debug:      p.attribs.Debug,
		robustness: p.attribs.Robustness,
	}
	var ctx EGLContext
	err := ErrVersionUnsupported
	for _, v := range p.neg.fallbackVersions() {
		req.version = v
		ctx, err = p.createContext(req)
		if err == nil || errors.Is(err, ErrRobustnessUnsupported) {
			break
		}
	}
	if err != nil {
		p.lib.DestroySurface(p.disp, surf)
		p.lib.Terminate(p.disp)
		return nil, err
	}
	format := p.format
	format.SRGB = srgb
	return &Context{
		lib:    p.lib,
		disp:   p.disp,
		ctx:    ctx,
		surf:   surf,
		config: p.config,
		api:    p.neg.api,
		format: format,
	}, nil
}

// createContext makes one creation attempt. Version rejections are
// reported as ErrVersionUnsupported; any other driver error is a broken
// EGL implementation and panics.
func (p *Prototype) createContext(req contextRequest) (EGLContext, error) {
	attribs, err := contextAttribs(req)
	if err != nil {
		return nilEGLContext, err
	}
	ctx := p.lib.CreateContext(p.disp, p.config, nilEGLContext, attribs)
	if ctx != nilEGLContext {
		Logger().Debug("egl: created context", "api", req.api, "version", req.version)
		return ctx, nil
	}
	// EGL_KHR_create_context reports unsupported versions and flags
	// as EGL_BAD_MATCH (see the extension's Errors section), older
	// drivers as EGL_BAD_ATTRIBUTE.
	switch code := p.lib.GetError(); code {
	case _EGL_BAD_ATTRIBUTE, _EGL_BAD_MATCH:
		Logger().Debug("egl: context version rejected", "api", req.api, "version", req.version, "error", fmt.Sprintf("0x%x", code))
		return nilEGLContext, ErrVersionUnsupported
	default:
		panic(fmt.Sprintf("eglCreateContext failed: 0x%x", code))
	}
}
