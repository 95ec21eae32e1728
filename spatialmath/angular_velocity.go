package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

// R3ToAngVel converts an r3.Vector of rates to an AngularVelocity.
func R3ToAngVel(v r3.Vector) *AngularVelocity {
	return &AngularVelocity{X: v.X, Y: v.Y, Z: v.Z}
}

// OrientationToAngularVel calculates the constant angular velocity that produces the orientation change o over
// the time difference dt.
func OrientationToAngularVel(o Orientation, dt float64) *AngularVelocity {
	rv := o.RotationVector()
	return &AngularVelocity{X: rv.X / dt, Y: rv.Y / dt, Z: rv.Z / dt}
}

// QuatToAngVel calculates an angular velocity based on an orientation change expressed in quaternions over a time
// difference.
func QuatToAngVel(diffQ quat.Number, dt float64) *AngularVelocity {
	q := Quaternion(diffQ)
	return OrientationToAngularVel(&q, dt)
}

// EulerToAngVel maps the yaw-pitch-roll rates diffEu/dt to body angular rates, evaluated at the attitude diffEu.
// It agrees with the other conversions for a change around a single axis.
func EulerToAngVel(diffEu EulerAngles, dt float64) *AngularVelocity {
	sr, cr := math.Sincos(diffEu.Roll)
	sp, cp := math.Sincos(diffEu.Pitch)
	rollRate, pitchRate, yawRate := diffEu.Roll/dt, diffEu.Pitch/dt, diffEu.Yaw/dt
	return &AngularVelocity{
		X: rollRate - sp*yawRate,
		Y: cr*pitchRate + cp*sr*yawRate,
		Z: -sr*pitchRate + cp*cr*yawRate,
	}
}

// RotMatToAngVel calculates an angular velocity based on an orientation change expressed in rotation matrices over a
// time difference.
func RotMatToAngVel(diffRm *RotationMatrix, dt float64) *AngularVelocity {
	return OrientationToAngularVel(diffRm, dt)
}
