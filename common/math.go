package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const TwoPi = 2 * math.Pi

// WrapAngle maps a into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// WrapSigned maps a into (-π, π].
func WrapSigned(a float64) float64 {
	a = WrapAngle(a)
	if a > math.Pi {
		a -= TwoPi
	}
	return a
}

// ClampMagnitude limits |v| to max, keeping the sign.
func ClampMagnitude(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if math.Abs(v) > max {
		return math.Copysign(max, v)
	}
	return v
}

// Forward is the unit vector an actor with the given yaw moves along.
// Yaw 0 faces +Z.
func Forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// Bearing is the yaw that faces from -> to on the ground plane.
func Bearing(from, to mgl64.Vec3) float64 {
	d := to.Sub(from)
	return math.Atan2(d.X(), d.Z())
}

// GroundDistance ignores the vertical axis.
func GroundDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(b.X()-a.X(), b.Z()-a.Z())
}
