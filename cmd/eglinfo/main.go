// SPDX-License-Identifier: Unlicense OR MIT

// Command eglinfo creates an EGL context the way a windowing host would and
// prints what the driver negotiated.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/eglctx/eglctx/egl"
)

func main() {
	fs, flags := newFlagSet()
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	var err error
	mainthread.Run(func() {
		err = mainErr(fs, flags, os.Stdout)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "eglinfo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(fs *pflag.FlagSet, flags *cliFlags, out io.Writer) error {
	cfg, err := LoadConfig(flags.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.override(fs, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := newConsoleLogger(os.Stderr, cfg.Verbose)
	egl.SetLogger(newSlogLogger(log))
	defer egl.SetLogger(nil)

	attribs, err := cfg.Attribs()
	if err != nil {
		return err
	}
	var rep *Report
	err = mainthread.CallErr(func() error {
		var err error
		rep, err = probe(cfg, attribs, log)
		return err
	})
	if err != nil {
		return err
	}
	return rep.Write(out, cfg.Format)
}

// probe runs the whole negotiation against the system EGL library. It must
// run on a locked OS thread.
func probe(cfg *Config, attribs egl.Attribs, log zerolog.Logger) (*Report, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	lib, err := egl.Load()
	if err != nil {
		return nil, err
	}
	var candidates []egl.ConfigCandidate
	choose := attribs.ChooseConfig
	if choose == nil {
		choose = egl.ChoosePixelFormat(egl.PixelFormatRequirements{})
	}
	attribs.ChooseConfig = func(c []egl.ConfigCandidate) (egl.ConfigCandidate, error) {
		candidates = c
		return choose(c)
	}

	p, err := egl.NewPrototype(lib, attribs, egl.DefaultDisplay)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("egl", p.EGLVersion().String()).
		Str("api", p.API().String()).
		Int("configs", len(candidates)).
		Msg("display initialized")

	rep := newReport(cfg, attribs)
	rep.setPrototype(p)
	var ctx *egl.Context
	if cfg.Window {
		visual, err := p.NativeVisualID()
		if err != nil {
			p.Release()
			return nil, err
		}
		win, err := openWindow(visual, cfg.Width, cfg.Height)
		if err != nil {
			p.Release()
			return nil, err
		}
		defer win.Close()
		log.Debug().Int("visual", visual).Uint64("window", uint64(win.Native())).Msg("window created")
		ctx, err = p.Finish(win.Native())
		if err != nil {
			return nil, err
		}
	} else {
		ctx, err = p.FinishPbuffer()
		if err != nil {
			return nil, err
		}
	}
	defer ctx.Release()

	if err := ctx.MakeCurrent(); err != nil {
		return nil, err
	}
	rep.setContext(ctx)
	if info, err := queryGL(ctx.API(), ctx.Resolve); err != nil {
		log.Warn().Err(err).Msg("client API strings unavailable")
	} else {
		rep.GL = info
	}
	if cfg.Window {
		if err := ctx.Present(); err != nil {
			return nil, err
		}
	}
	if cfg.ListConfigs {
		rep.setConfigs(candidates)
	}
	return rep, nil
}
