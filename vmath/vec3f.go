package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for physics-heavy calculations
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns the unit vector, or the zero vector for zero input
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FRotateX rotates around the X axis (pitch)
func V3FRotateX(v Vec3F, angle float64) Vec3F {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3F{v.X, c*v.Y - s*v.Z, s*v.Y + c*v.Z}
}

// V3FRotateY rotates around the Y axis (yaw)
func V3FRotateY(v Vec3F, angle float64) Vec3F {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3F{c*v.X + s*v.Z, v.Y, -s*v.X + c*v.Z}
}
