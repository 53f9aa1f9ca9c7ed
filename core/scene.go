package core

import (
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/vmath"
)

// Scene holds the camera and light state shared by the transform and
// raster stages. It is passed explicitly into every render call and is
// mutated only by the input-apply step between frames, so the projection
// and shading within one frame always observe the same transform.
// CamPos and LightPos are render units (display-scaled world).
type Scene struct {
	CamPos   vmath.Vec3F
	CamPitch float64
	CamYaw   float64
	LightPos vmath.Vec3F
}

// NewScene returns the default view: camera pulled back behind the origin
// with a slight downward tilt, point light behind the camera.
func NewScene() *Scene {
	return &Scene{
		CamPos:   vmath.Vec3F{Z: -constants.CamDistance},
		CamPitch: constants.CamPitch,
		LightPos: vmath.Vec3F{Z: -constants.LightDistance},
	}
}

// Orbit applies accumulated drag rotation (radians)
func (s *Scene) Orbit(dYaw, dPitch float64) {
	s.CamYaw += dYaw
	s.CamPitch += dPitch
}

// Dolly moves the camera along the Z axis (wheel zoom)
func (s *Scene) Dolly(dz float64) {
	s.CamPos.Z += dz
}
