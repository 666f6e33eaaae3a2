// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/eglctx/eglctx/egl"
)

// Report is the eglinfo output.
type Report struct {
	EGLVersion  string       `yaml:"egl_version"`
	Policy      string       `yaml:"policy"`
	API         string       `yaml:"api"`
	Robustness  string       `yaml:"robustness"`
	Debug       bool         `yaml:"debug"`
	Surface     string       `yaml:"surface"`
	PixelFormat pixelFormat  `yaml:"pixel_format"`
	GL          *glInfo      `yaml:"client_api,omitempty"`
	Extensions  []string     `yaml:"extensions"`
	Configs     []configInfo `yaml:"configs,omitempty"`
}

type pixelFormat struct {
	Accelerated   bool   `yaml:"accelerated"`
	Color         uint8  `yaml:"color_bits"`
	Alpha         uint8  `yaml:"alpha_bits"`
	Depth         uint8  `yaml:"depth_bits"`
	Stencil       uint8  `yaml:"stencil_bits"`
	DoubleBuffer  bool   `yaml:"double_buffer"`
	Multisampling uint16 `yaml:"samples"`
	SRGB          bool   `yaml:"srgb"`
}

type configInfo struct {
	ID          uint64      `yaml:"id"`
	PixelFormat pixelFormat `yaml:",inline"`
}

// glInfo holds the client API strings of the current context.
type glInfo struct {
	Vendor   string `yaml:"vendor"`
	Renderer string `yaml:"renderer"`
	Version  string `yaml:"version"`
	Shading  string `yaml:"shading_language"`
}

// newReport records the requested settings.
func newReport(cfg *Config, attribs egl.Attribs) *Report {
	surface := "pbuffer"
	if cfg.Window {
		surface = "window"
	}
	return &Report{
		Policy:     attribs.Version.String(),
		Robustness: attribs.Robustness.String(),
		Debug:      attribs.Debug,
		Surface:    surface,
	}
}

func (r *Report) setPrototype(p *egl.Prototype) {
	r.EGLVersion = p.EGLVersion().String()
	r.API = p.API().String()
	r.PixelFormat = toPixelFormat(p.PixelFormat())
	r.Extensions = p.Extensions().Names()
}

func (r *Report) setContext(ctx *egl.Context) {
	r.API = ctx.API().String()
	r.PixelFormat = toPixelFormat(ctx.PixelFormat())
}

func (r *Report) setConfigs(candidates []egl.ConfigCandidate) {
	r.Configs = make([]configInfo, len(candidates))
	for i, c := range candidates {
		r.Configs[i] = configInfo{ID: uint64(c.Config), PixelFormat: toPixelFormat(c.Format)}
	}
}

func toPixelFormat(pf egl.PixelFormat) pixelFormat {
	return pixelFormat{
		Accelerated:   pf.HardwareAccelerated,
		Color:         pf.ColorBits,
		Alpha:         pf.AlphaBits,
		Depth:         pf.DepthBits,
		Stencil:       pf.StencilBits,
		DoubleBuffer:  pf.DoubleBuffer,
		Multisampling: pf.Multisampling,
		SRGB:          pf.SRGB,
	}
}

func (pf pixelFormat) String() string {
	s := fmt.Sprintf("rgb%d a%d d%d s%d", pf.Color, pf.Alpha, pf.Depth, pf.Stencil)
	if pf.Multisampling > 0 {
		s += fmt.Sprintf(" msaa%d", pf.Multisampling)
	}
	if pf.SRGB {
		s += " srgb"
	}
	if !pf.Accelerated {
		s += " slow"
	}
	return s
}

// Write encodes the report as "text" or "yaml".
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return r.writeText(w)
	default:
		return fmt.Errorf("invalid format %q", format)
	}
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "EGL version:\t%s\n", r.EGLVersion)
	fmt.Fprintf(tw, "Version policy:\t%s\n", r.Policy)
	fmt.Fprintf(tw, "Client API:\t%s\n", r.API)
	fmt.Fprintf(tw, "Robustness:\t%s\n", r.Robustness)
	fmt.Fprintf(tw, "Debug:\t%v\n", r.Debug)
	fmt.Fprintf(tw, "Surface:\t%s\n", r.Surface)
	fmt.Fprintf(tw, "Pixel format:\t%s\n", r.PixelFormat)
	if gl := r.GL; gl != nil {
		fmt.Fprintf(tw, "Vendor:\t%s\n", gl.Vendor)
		fmt.Fprintf(tw, "Renderer:\t%s\n", gl.Renderer)
		fmt.Fprintf(tw, "Version:\t%s\n", gl.Version)
		fmt.Fprintf(tw, "Shading language:\t%s\n", gl.Shading)
	}
	fmt.Fprintf(tw, "Extensions:\t%s\n", strings.Join(r.Extensions, " "))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(r.Configs) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\nConfigs (%d):\n", len(r.Configs))
	tw = tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	for _, c := range r.Configs {
		fmt.Fprintf(tw, "  %#x\t%s\n", c.ID, c.PixelFormat)
	}
	return tw.Flush()
}
