// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
)

func newConsoleLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.0000"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// newSlogLogger routes slog records, such as those of the egl package, to l.
func newSlogLogger(l zerolog.Logger) *slog.Logger {
	return slog.New(&zerologHandler{l: l})
}

// zerologHandler is a slog.Handler writing to a zerolog.Logger.
type zerologHandler struct {
	l      zerolog.Logger
	prefix string
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l >= slog.LevelError:
		return zerolog.ErrorLevel
	case l >= slog.LevelWarn:
		return zerolog.WarnLevel
	case l >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

func (h *zerologHandler) Enabled(_ context.Context, l slog.Level) bool {
	level := zerologLevel(l)
	return level >= h.l.GetLevel() && level >= zerolog.GlobalLevel()
}

func (h *zerologHandler) Handle(_ context.Context, r slog.Record) error {
	e := h.l.WithLevel(zerologLevel(r.Level))
	r.Attrs(func(a slog.Attr) bool {
		e = addAttr(e, h.prefix, a)
		return true
	})
	e.Msg(r.Message)
	return nil
}

func (h *zerologHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.l.With()
	for _, a := range attrs {
		c = addContextAttr(c, h.prefix, a)
	}
	return &zerologHandler{l: c.Logger(), prefix: h.prefix}
}

func (h *zerologHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &zerologHandler{l: h.l, prefix: h.prefix + name + "."}
}

func addAttr(e *zerolog.Event, prefix string, a slog.Attr) *zerolog.Event {
	v := a.Value.Resolve()
	key := prefix + a.Key
	switch v.Kind() {
	case slog.KindGroup:
		for _, ga := range v.Group() {
			e = addAttr(e, key+".", ga)
		}
		return e
	case slog.KindString:
		return e.Str(key, v.String())
	case slog.KindInt64:
		return e.Int64(key, v.Int64())
	case slog.KindUint64:
		return e.Uint64(key, v.Uint64())
	case slog.KindBool:
		return e.Bool(key, v.Bool())
	case slog.KindFloat64:
		return e.Float64(key, v.Float64())
	case slog.KindDuration:
		return e.Dur(key, v.Duration())
	case slog.KindTime:
		return e.Time(key, v.Time())
	default:
		return e.Interface(key, v.Any())
	}
}

func addContextAttr(c zerolog.Context, prefix string, a slog.Attr) zerolog.Context {
	v := a.Value.Resolve()
	key := prefix + a.Key
	switch v.Kind() {
	case slog.KindGroup:
		for _, ga := range v.Group() {
			c = addContextAttr(c, key+".", ga)
		}
		return c
	case slog.KindString:
		return c.Str(key, v.String())
	case slog.KindTime:
		return c.Time(key, v.Time())
	default:
		return c.Interface(key, v.Any())
	}
}
