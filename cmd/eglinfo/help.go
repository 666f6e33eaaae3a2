// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The eglinfo command negotiates an EGL rendering context and reports
the display version, extensions, client API, pixel format and driver strings.

Usage:

	eglinfo [flags]

By default a pbuffer surface backs the context. The --window flag creates
an X11 window with the native visual of the chosen config instead.

Settings are read from eglinfo.yaml in the current directory or
$HOME/.config/eglinfo, then from EGLINFO_* environment variables
(EGLINFO_API, EGLINFO_ROBUSTNESS, ...). Flags override both.

Flags:

`
