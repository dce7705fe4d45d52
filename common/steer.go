package common

import "github.com/go-gl/mathgl/mgl64"

// SteerToward turns yaw toward target by at most maxYawDelta and reports the
// remaining straight-line distance. Translation is left to the caller.
func SteerToward(pos mgl64.Vec3, yaw float64, target mgl64.Vec3, maxYawDelta float64) (float64, float64) {
	d := target.Sub(pos)
	dist := d.Len()
	if d.X() == 0 && d.Z() == 0 {
		return WrapAngle(yaw), dist
	}
	delta := WrapSigned(Bearing(pos, target) - yaw)
	delta = ClampMagnitude(delta, maxYawDelta)
	return WrapAngle(yaw + delta), dist
}
