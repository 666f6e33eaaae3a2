// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/eglctx/eglctx/egl"
)

// x11Window is a mapped top level window on the default X server.
type x11Window struct {
	xu  *xgbutil.XUtil
	win xproto.Window
}

// openWindow creates a width by height window with the given visual.
// EGL opens its own connection; the window ID is valid across both.
func openWindow(visual, width, height int) (*x11Window, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: %w", err)
	}
	w, err := createWindow(xu, xproto.Visualid(visual), width, height)
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("x11: %w", err)
	}
	return w, nil
}

func createWindow(xu *xgbutil.XUtil, visual xproto.Visualid, width, height int) (*x11Window, error) {
	conn := xu.Conn()
	depth, ok := visualDepth(xu.Screen(), visual)
	if !ok {
		return nil, fmt.Errorf("visual %#x not found on the default screen", visual)
	}
	cmap, err := xproto.NewColormapId(conn)
	if err != nil {
		return nil, err
	}
	if err := xproto.CreateColormapChecked(conn, xproto.ColormapAllocNone, cmap, xu.RootWin(), visual).Check(); err != nil {
		return nil, err
	}
	win, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}
	mask := uint32(xproto.CwBorderPixel | xproto.CwEventMask | xproto.CwColormap)
	values := []uint32{0, xproto.EventMaskStructureNotify | xproto.EventMaskExposure, uint32(cmap)}
	err = xproto.CreateWindowChecked(conn, depth, win, xu.RootWin(),
		0, 0, uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, visual, mask, values).Check()
	if err != nil {
		return nil, err
	}
	title := "eglinfo"
	xproto.ChangeProperty(conn, xproto.PropModeReplace, win, xproto.AtomWmName, xproto.AtomString,
		8, uint32(len(title)), []byte(title))
	if err := xproto.MapWindowChecked(conn, win).Check(); err != nil {
		xproto.DestroyWindow(conn, win)
		return nil, err
	}
	return &x11Window{xu: xu, win: win}, nil
}

func visualDepth(screen *xproto.ScreenInfo, visual xproto.Visualid) (byte, bool) {
	for _, d := range screen.AllowedDepths {
		for _, v := range d.Visuals {
			if v.VisualId == visual {
				return d.Depth, true
			}
		}
	}
	return 0, false
}

func (w *x11Window) Native() egl.NativeWindowType {
	return egl.NativeWindowType(w.win)
}

func (w *x11Window) Close() {
	xproto.DestroyWindowChecked(w.xu.Conn(), w.win).Check()
	w.xu.Conn().Close()
}
