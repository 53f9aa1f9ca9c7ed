package core

// RGBA is a packed 0xRRGGBBAA pixel value, the framebuffer's native format
type RGBA uint32

// Predefined colors
const (
	RGBABlack RGBA = 0x000000FF
)

// PackRGBA assembles a packed pixel from 8-bit channels
func PackRGBA(r, g, b, a uint8) RGBA {
	return RGBA(r)<<24 | RGBA(g)<<16 | RGBA(b)<<8 | RGBA(a)
}

func (c RGBA) R() uint8 { return uint8(c >> 24) }
func (c RGBA) G() uint8 { return uint8(c >> 16) }
func (c RGBA) B() uint8 { return uint8(c >> 8) }
func (c RGBA) A() uint8 { return uint8(c) }

// clampChannel converts float to uint8 without wrapping
func clampChannel(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies the color channels by factor, preserving alpha.
// Factors outside [0, 1] clamp instead of wrapping, so a shaded channel
// never exceeds its base value and never goes negative.
func (c RGBA) Scale(factor float64) RGBA {
	return PackRGBA(
		clampChannel(float64(c.R())*factor),
		clampChannel(float64(c.G())*factor),
		clampChannel(float64(c.B())*factor),
		c.A(),
	)
}
