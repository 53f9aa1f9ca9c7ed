package physics

import (
	"math"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/vmath"
)

// GravitationalAccel returns the acceleration on body a toward body b:
// a = G * m_b / dist^2 along the unit separation direction.
// Separations under MinSeparation return zero to avoid the inverse-square
// singularity (skip, never an error).
func GravitationalAccel(a, b *core.Body) vmath.Vec3F {
	diff := vmath.V3FSub(b.Pos, a.Pos)
	distSq := vmath.V3FMagSq(diff)
	dist := math.Sqrt(distSq)
	if dist < constants.MinSeparation {
		return vmath.Vec3F{}
	}

	dir := vmath.V3FScale(diff, 1.0/dist)
	force := constants.G * (a.Mass * b.Mass) / distSq
	return vmath.V3FScale(dir, force/a.Mass)
}

// Advance integrates one frame: a velocity pass over every ordered body
// pair using only pre-update positions, then an independent position pass.
// The two-pass split guarantees no body's updated position feeds into
// another body's force within the same frame, regardless of slice order.
func Advance(bodies []core.Body, dt float64) {
	// Velocity pass: forces read positions only, so accumulating into
	// each body's velocity in place cannot perturb another pair
	for i := range bodies {
		for j := range bodies {
			if i == j {
				continue
			}
			accel := GravitationalAccel(&bodies[i], &bodies[j])
			bodies[i].Vel = vmath.V3FAdd(bodies[i].Vel, vmath.V3FScale(accel, dt))
		}
	}

	// Position pass
	for i := range bodies {
		bodies[i].Pos = vmath.V3FAdd(bodies[i].Pos, vmath.V3FScale(bodies[i].Vel, dt))
	}
}
