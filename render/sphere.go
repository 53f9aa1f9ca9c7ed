package render

import (
	"math"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/vmath"
)

// DrawSphere rasterizes a body as a Lambert-shaded disc. Bodies behind the
// near plane draw nothing. Bodies are drawn in collection order with no
// depth test between them: where discs overlap, the later body's pixels
// win regardless of true depth. That draw-order-is-depth-order behavior is
// deliberate and must not change without adding an explicit depth buffer.
func DrawSphere(fb *Framebuffer, s *core.Scene, body *core.Body) {
	cam := WorldToCamera(s, body.Pos)
	if !Visible(cam) {
		return
	}

	sx, sy := ProjectToScreen(fb.Width(), fb.Height(), cam)

	// Apparent radius: physical radius through display scaling and the
	// same perspective falloff as the projection
	radius := body.Radius * constants.DisplayScale * constants.RadiusGain * PerspectiveFactor(cam.Z)
	r2 := radius * radius

	toLight := lightDirection(s, cam)

	for y := int(sy - radius); y <= int(sy+radius); y++ {
		for x := int(sx - radius); x <= int(sx+radius); x++ {
			dx := float64(x) - sx
			dy := float64(y) - sy
			distSq := dx*dx + dy*dy
			if distSq > r2 {
				continue
			}

			// Hemisphere depth reconstruction; max guards float underflow
			// at the rim
			dz := math.Sqrt(math.Max(0, r2-distSq))
			normal := vmath.V3FNormalize(vmath.Vec3F{X: dx / radius, Y: -dy / radius, Z: dz / radius})

			intensity := vmath.V3FDot(normal, toLight)
			if intensity < 0 {
				intensity = 0
			} else if intensity > 1 {
				intensity = 1
			}

			factor := constants.AmbientTerm + constants.DiffuseTerm*intensity
			fb.Set(x, y, body.Color.Scale(factor))
		}
	}
}

// lightDirection returns the unit vector toward the light in the normal's
// frame: X right, Y up, Z out of the screen toward the viewer.
// Camera-space depth grows away from the viewer, hence the Z flip.
func lightDirection(s *core.Scene, bodyCam vmath.Vec3F) vmath.Vec3F {
	lightCam := renderToCamera(s, s.LightPos)
	tl := vmath.V3FSub(lightCam, bodyCam)
	return vmath.V3FNormalize(vmath.Vec3F{X: tl.X, Y: tl.Y, Z: -tl.Z})
}

// DrawMarker stamps a small fixed-color square at the body's projected
// center, skipping bodies behind the near plane
func DrawMarker(fb *Framebuffer, s *core.Scene, body *core.Body) {
	cam := WorldToCamera(s, body.Pos)
	if !Visible(cam) {
		return
	}
	sx, sy := ProjectToScreen(fb.Width(), fb.Height(), cam)
	fb.FillRect(int(sx)-1, int(sy)-1, 2, 2, constants.MarkerColor)
}
