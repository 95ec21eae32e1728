package spatialmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are the yaw-pitch-roll angles of an orientation, in radians. The rotation they describe is
// R = Rz(yaw) * Ry(pitch) * Rx(roll).
//
// Euler angles are sensitive to gimbal lock: when pitch is +/- pi/2 only the combination of yaw and roll is
// defined. Conversions in that configuration fix roll to 0 and report the combined rotation in yaw.
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // phi, around x
	Pitch float64 `json:"pitch"` // theta, around y
	Yaw   float64 `json:"yaw"`   // psi, around z
}

// NewEulerAngles returns the Euler angles representing no rotation.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{}
}

// NewEulerAnglesFromYawPitchRoll builds Euler angles in the yaw, pitch, roll argument order.
func NewEulerAnglesFromYawPitchRoll(yaw, pitch, roll float64) *EulerAngles {
	return &EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion returns orientation in quaternion representation.
func (ea *EulerAngles) Quaternion() quat.Number {
	return ea.ToQuat()
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAngles) AxisAngles() *R4AA {
	aa := QuatToR4AA(ea.ToQuat())
	return &aa
}

// RotationVector returns the orientation as a rotation vector.
func (ea *EulerAngles) RotationVector() RotationVector {
	return QuatToRotationVector(ea.ToQuat())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return EulerAnglesToRotationMatrix(*ea)
}

// ToQuat converts the yaw-pitch-roll angles to a unit quaternion.
// See: https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles
func (ea *EulerAngles) ToQuat() quat.Number {
	cr, sr := math.Cos(ea.Roll/2), math.Sin(ea.Roll/2)
	cp, sp := math.Cos(ea.Pitch/2), math.Sin(ea.Pitch/2)
	cy, sy := math.Cos(ea.Yaw/2), math.Sin(ea.Yaw/2)

	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// EpsilonEquals compares the three angles one by one. Angles are not wrapped.
func (ea *EulerAngles) EpsilonEquals(other *EulerAngles, epsilon float64) bool {
	return scalar.EqualWithinAbs(ea.Roll, other.Roll, epsilon) &&
		scalar.EqualWithinAbs(ea.Pitch, other.Pitch, epsilon) &&
		scalar.EqualWithinAbs(ea.Yaw, other.Yaw, epsilon)
}

// GeometricallyEquals returns whether the two sets of angles represent rotations less than epsilon radians apart.
func (ea *EulerAngles) GeometricallyEquals(other *EulerAngles, epsilon float64) bool {
	return OrientationGeometricallyEquals(ea, other, epsilon)
}

func (ea *EulerAngles) String() string {
	return fmt.Sprintf("(yaw: %v, pitch: %v, roll: %v)", ea.Yaw, ea.Pitch, ea.Roll)
}
