// SPDX-License-Identifier: Unlicense OR MIT

package egl

// PixelFormatRequirements are minimum pixel format properties for
// ChoosePixelFormat.
type PixelFormatRequirements struct {
	// HardwareAccelerated rejects configs marked EGL_SLOW_CONFIG.
	HardwareAccelerated bool
	MinColorBits        uint8
	MinAlphaBits        uint8
	MinDepthBits        uint8
	MinStencilBits      uint8
	// Multisampling, if non-zero, is the exact sample count required.
	Multisampling uint16
}

// ChoosePixelFormat returns a chooser picking the first config that
// meets reqs, preferring hardware accelerated configs.
func ChoosePixelFormat(reqs PixelFormatRequirements) func([]ConfigCandidate) (ConfigCandidate, error) {
	return func(candidates []ConfigCandidate) (ConfigCandidate, error) {
		var fallback *ConfigCandidate
		for i := range candidates {
			c := &candidates[i]
			if !reqs.accepts(c.Format) {
				continue
			}
			if c.Format.HardwareAccelerated {
				return *c, nil
			}
			if fallback == nil {
				fallback = c
			}
		}
		if fallback == nil {
			return ConfigCandidate{}, ErrNoPixelFormat
		}
		return *fallback, nil
	}
}

func (r PixelFormatRequirements) accepts(pf PixelFormat) bool {
	switch {
	case r.HardwareAccelerated && !pf.HardwareAccelerated:
		return false
	case pf.ColorBits < r.MinColorBits, pf.AlphaBits < r.MinAlphaBits:
		return false
	case pf.DepthBits < r.MinDepthBits, pf.StencilBits < r.MinStencilBits:
		return false
	case r.Multisampling != 0 && pf.Multisampling != r.Multisampling:
		return false
	}
	return true
}
