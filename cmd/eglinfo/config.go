// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kkyr/fig"
	"github.com/spf13/pflag"

	"github.com/eglctx/eglctx/egl"
)

// EnvPrefix prefixes the environment variables read by LoadConfig.
const EnvPrefix = "EGLINFO"

const configFile = "eglinfo.yaml"

// Config holds the eglinfo settings. File keys are the fig tags;
// environment variables are EGLINFO_ followed by the upper cased key.
type Config struct {
	API         string `fig:"api" default:"latest"`
	GLVersion   string `fig:"gl_version" default:"3.2"`
	GLESVersion string `fig:"gles_version" default:"2.0"`
	Robustness  string `fig:"robustness" default:"none"`
	Debug       bool   `fig:"debug"`
	SRGB        bool   `fig:"srgb"`
	Window      bool   `fig:"window"`
	Width       int    `fig:"width" default:"800"`
	Height      int    `fig:"height" default:"600"`
	ListConfigs bool   `fig:"list_configs"`
	Format      string `fig:"format" default:"text"`
	Verbose     bool   `fig:"verbose"`
}

// LoadConfig reads path, or eglinfo.yaml from the default directories
// when path is empty, and applies EGLINFO_* environment variables. A
// missing default file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := new(Config)
	if path != "" {
		dir, file := filepath.Split(path)
		if dir == "" {
			dir = "."
		}
		if err := fig.Load(cfg, fig.File(file), fig.Dirs(dir), fig.UseEnv(EnvPrefix)); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "eglinfo"))
	}
	err := fig.Load(cfg, fig.File(configFile), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		cfg = new(Config)
		err = fig.Load(cfg, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// cliFlags holds the command line values. Only the flags set by the user
// override the loaded Config.
type cliFlags struct {
	configPath string
	Config
}

func newFlagSet() (*pflag.FlagSet, *cliFlags) {
	f := new(cliFlags)
	fs := pflag.NewFlagSet("eglinfo", pflag.ContinueOnError)
	fs.StringVarP(&f.configPath, "config", "c", "", "configuration file")
	fs.StringVar(&f.API, "api", "latest", "client API policy (latest, gl, gles, gl-then-gles)")
	fs.StringVar(&f.GLVersion, "gl-version", "3.2", "OpenGL version for --api gl and gl-then-gles")
	fs.StringVar(&f.GLESVersion, "gles-version", "2.0", "OpenGL ES version for --api gles and gl-then-gles")
	fs.StringVar(&f.Robustness, "robustness", "none",
		"robustness (none, no-error, require-no-reset, require-lose-context, try-no-reset, try-lose-context)")
	fs.BoolVar(&f.Debug, "debug", false, "request a debug context")
	fs.BoolVar(&f.SRGB, "srgb", false, "request an sRGB surface")
	fs.BoolVar(&f.Window, "window", false, "render to an X11 window instead of a pbuffer")
	fs.IntVar(&f.Width, "width", 800, "surface width")
	fs.IntVar(&f.Height, "height", 600, "surface height")
	fs.BoolVar(&f.ListConfigs, "list-configs", false, "list every compatible config")
	fs.StringVarP(&f.Format, "format", "f", "text", "output format (text, yaml)")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "log negotiation steps")
	return fs, f
}

// override copies the flags set on the command line from f.
func (c *Config) override(fs *pflag.FlagSet, f *cliFlags) {
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "api":
			c.API = f.API
		case "gl-version":
			c.GLVersion = f.GLVersion
		case "gles-version":
			c.GLESVersion = f.GLESVersion
		case "robustness":
			c.Robustness = f.Robustness
		case "debug":
			c.Debug = f.Debug
		case "srgb":
			c.SRGB = f.SRGB
		case "window":
			c.Window = f.Window
		case "width":
			c.Width = f.Width
		case "height":
			c.Height = f.Height
		case "list-configs":
			c.ListConfigs = f.ListConfigs
		case "format":
			c.Format = f.Format
		case "verbose":
			c.Verbose = f.Verbose
		}
	})
}

// Validate checks the settings that Attribs doesn't parse.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("invalid format %q", c.Format)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid surface size %dx%d", c.Width, c.Height)
	}
	return nil
}

// Attribs converts the settings to context attributes.
func (c *Config) Attribs() (egl.Attribs, error) {
	policy, err := c.policy()
	if err != nil {
		return egl.Attribs{}, err
	}
	r, err := parseRobustness(c.Robustness)
	if err != nil {
		return egl.Attribs{}, err
	}
	return egl.Attribs{
		Width:      c.Width,
		Height:     c.Height,
		Version:    policy,
		Robustness: r,
		Debug:      c.Debug,
		SRGB:       c.SRGB,
	}, nil
}

func (c *Config) policy() (egl.VersionPolicy, error) {
	switch c.API {
	case "latest":
		return egl.Latest(), nil
	case "gl":
		v, err := parseVersion(c.GLVersion)
		if err != nil {
			return egl.VersionPolicy{}, err
		}
		return egl.Explicit(egl.OpenGL, v), nil
	case "gles":
		v, err := parseVersion(c.GLESVersion)
		if err != nil {
			return egl.VersionPolicy{}, err
		}
		return egl.Explicit(egl.OpenGLES, v), nil
	case "gl-then-gles":
		gl, err := parseVersion(c.GLVersion)
		if err != nil {
			return egl.VersionPolicy{}, err
		}
		gles, err := parseVersion(c.GLESVersion)
		if err != nil {
			return egl.VersionPolicy{}, err
		}
		return egl.GLThenGLES(gl, gles), nil
	default:
		return egl.VersionPolicy{}, fmt.Errorf("invalid api %q", c.API)
	}
}

// parseVersion parses "major.minor" or "major".
func parseVersion(s string) (egl.Version, error) {
	majStr, minStr, found := strings.Cut(s, ".")
	major, err := strconv.ParseUint(majStr, 10, 8)
	if err != nil {
		return egl.Version{}, fmt.Errorf("invalid version %q", s)
	}
	var minor uint64
	if found {
		minor, err = strconv.ParseUint(minStr, 10, 8)
		if err != nil {
			return egl.Version{}, fmt.Errorf("invalid version %q", s)
		}
	}
	return egl.Version{Major: uint8(major), Minor: uint8(minor)}, nil
}

func parseRobustness(s string) (egl.Robustness, error) {
	switch s {
	case "none", "":
		return egl.Robustness{Mode: egl.NotRobust}, nil
	case "no-error":
		return egl.Robustness{Mode: egl.NoError}, nil
	case "require-no-reset":
		return egl.Robustness{Mode: egl.RobustRequired, Reset: egl.NoResetNotification}, nil
	case "require-lose-context":
		return egl.Robustness{Mode: egl.RobustRequired, Reset: egl.LoseContextOnReset}, nil
	case "try-no-reset":
		return egl.Robustness{Mode: egl.RobustOptional, Reset: egl.NoResetNotification}, nil
	case "try-lose-context":
		return egl.Robustness{Mode: egl.RobustOptional, Reset: egl.LoseContextOnReset}, nil
	default:
		return egl.Robustness{}, fmt.Errorf("invalid robustness %q", s)
	}
}
