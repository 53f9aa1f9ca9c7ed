package render

import (
	"github.com/lixenwraith/orrery/core"
)

// Framebuffer is a packed-RGBA pixel surface owned by the frame in
// progress. All writes are bounds-checked and silently discarded outside
// the surface, so the rasterizer never needs its own clipping. Pixel rows
// are twice the terminal rows; the presenter folds row pairs into cells.
type Framebuffer struct {
	pixels []core.RGBA
	width  int
	height int
}

// NewFramebuffer creates a surface cleared to black
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		pixels: make([]core.RGBA, width*height),
		width:  width,
		height: height,
	}
	fb.Clear(core.RGBABlack)
	return fb
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (fb *Framebuffer) Resize(width, height int) {
	size := width * height
	if cap(fb.pixels) < size {
		fb.pixels = make([]core.RGBA, size)
	} else {
		fb.pixels = fb.pixels[:size]
	}
	fb.width = width
	fb.height = height
	fb.Clear(core.RGBABlack)
}

// Clear fills the surface using exponential copy
func (fb *Framebuffer) Clear(c core.RGBA) {
	if len(fb.pixels) == 0 {
		return
	}
	fb.pixels[0] = c
	for filled := 1; filled < len(fb.pixels); filled *= 2 {
		copy(fb.pixels[filled:], fb.pixels[:filled])
	}
}

// inBounds returns true if in surface bounds
func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// Set writes one pixel; out-of-bounds writes are discarded
func (fb *Framebuffer) Set(x, y int, c core.RGBA) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.pixels[y*fb.width+x] = c
}

// At returns the pixel and whether the coordinate was in bounds
func (fb *Framebuffer) At(x, y int) (core.RGBA, bool) {
	if !fb.inBounds(x, y) {
		return 0, false
	}
	return fb.pixels[y*fb.width+x], true
}

// FillRect fills an axis-aligned rectangle, clipped to the surface
func (fb *Framebuffer) FillRect(x, y, w, h int, c core.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.Set(px, py, c)
		}
	}
}
