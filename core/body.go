package core

import (
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/vmath"
)

// Body is a simulated point-mass with a physical radius and a rendered
// appearance. Position and velocity are SI units (meters, m/s); the render
// layer applies display scaling. Mass and radius stay strictly positive
// for the lifetime of a run.
type Body struct {
	Pos    vmath.Vec3F
	Vel    vmath.Vec3F
	Radius float64
	Mass   float64
	Color  RGBA
}

// NewEarthMoonBodies returns the fixed session body set: Earth at rest at
// the origin, Moon at mean orbital distance with mean orbital speed.
// The set never grows or shrinks during a run.
func NewEarthMoonBodies() []Body {
	return []Body{
		{
			Radius: constants.EarthRadius,
			Mass:   constants.EarthMass,
			Color:  constants.EarthColor,
		},
		{
			Pos:    vmath.Vec3F{X: constants.EarthMoonDistance},
			Vel:    vmath.Vec3F{Y: constants.MoonOrbitalSpeed},
			Radius: constants.MoonRadius,
			Mass:   constants.MoonMass,
			Color:  constants.MoonColor,
		},
	}
}
