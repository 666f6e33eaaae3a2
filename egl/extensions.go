// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"sort"
	"strings"
)

// ExtensionSet is the set of extension names advertised by an EGL
// implementation. The zero value is an empty set.
type ExtensionSet struct {
	names map[string]struct{}
}

// ParseExtensions splits a space separated extension string. An empty
// string yields an empty set.
func ParseExtensions(raw string) ExtensionSet {
	s := ExtensionSet{names: make(map[string]struct{})}
	for _, e := range strings.Split(raw, " ") {
		if e == "" {
			continue
		}
		s.names[e] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set.
func (s ExtensionSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of extensions in the set.
func (s ExtensionSet) Len() int {
	return len(s.names)
}

// Union returns a set with the extensions of both s and o.
func (s ExtensionSet) Union(o ExtensionSet) ExtensionSet {
	u := ExtensionSet{names: make(map[string]struct{}, len(s.names)+len(o.names))}
	for n := range s.names {
		u.names[n] = struct{}{}
	}
	for n := range o.names {
		u.names[n] = struct{}{}
	}
	return u
}

// Names returns the extensions in lexical order.
func (s ExtensionSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for n := range s.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// queryExtensions reads the extension string of disp. A NULL result,
// which drivers return for EGL_NO_DISPLAY without EGL 1.5 or
// EGL_EXT_client_extensions, yields an empty set.
func queryExtensions(lib NativeAPI, disp EGLDisplay) ExtensionSet {
	raw, ok := lib.QueryString(disp, _EGL_EXTENSIONS)
	if !ok {
		return ExtensionSet{}
	}
	return ParseExtensions(raw)
}
