package render

import (
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/vmath"
)

// renderToCamera maps a point already in render units into camera space:
// translate relative to the camera, pitch about X, then yaw about Y
func renderToCamera(s *core.Scene, p vmath.Vec3F) vmath.Vec3F {
	rel := vmath.V3FSub(p, s.CamPos)
	rel = vmath.V3FRotateX(rel, s.CamPitch)
	rel = vmath.V3FRotateY(rel, s.CamYaw)
	return rel
}

// WorldToCamera maps a world-space point (meters) into camera space.
// The display scale is applied here so physics stays in SI units while
// the camera and light live in render units.
func WorldToCamera(s *core.Scene, world vmath.Vec3F) vmath.Vec3F {
	return renderToCamera(s, vmath.V3FScale(world, constants.DisplayScale))
}

// Visible reports whether a camera-space point is in front of the near
// plane. Points behind or at the camera are simply not rendered; there is
// no other failure mode.
func Visible(cam vmath.Vec3F) bool {
	return cam.Z >= constants.NearPlane
}

// PerspectiveFactor is the perspective-divide term for a camera-space depth
func PerspectiveFactor(z float64) float64 {
	return constants.Fov / (constants.Fov + z)
}

// ProjectToScreen maps a camera-space point to screen coordinates.
// Screen Y is inverted because pixel rows increase downward.
func ProjectToScreen(width, height int, cam vmath.Vec3F) (sx, sy float64) {
	factor := PerspectiveFactor(cam.Z)
	sx = float64(width)/2 + cam.X*factor
	sy = float64(height)/2 - cam.Y*factor
	return sx, sy
}
