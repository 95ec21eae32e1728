// Package spatialmath defines spatial mathematical operations on 3D orientations: the quaternion, rotation matrix,
// axis angle, rotation vector and yaw-pitch-roll representations, the conversions between them and their use as
// rotation operators.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	AxisAngles() *R4AA
	Quaternion() quat.Number
	RotationVector() RotationVector
	EulerAngles() *EulerAngles
	RotationMatrix() *RotationMatrix
}

var (
	_ Orientation = (*Quaternion)(nil)
	_ Orientation = (*RotationMatrix)(nil)
	_ Orientation = (*R4AA)(nil)
	_ Orientation = (*RotationVector)(nil)
	_ Orientation = (*EulerAngles)(nil)
)

// NewZeroOrientation returns an orientatation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &Quaternion{Real: 1}
}

// OrientationAlmostEqual will return a bool describing whether 2 poses have approximately the same orientation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return OrientationGeometricallyEquals(o1, o2, 1e-5)
}

// OrientationBetween returns the orientation representing the difference between the two given Orientations.
func OrientationBetween(o1, o2 Orientation) Orientation {
	q := Quaternion(quat.Mul(o2.Quaternion(), quat.Conj(o1.Quaternion())))
	return &q
}

// Interpolate returns the orientation by of the way from o1 to o2 along the shortest arc, by being in [0, 1].
func Interpolate(o1, o2 Orientation, by float64) Orientation {
	q := Quaternion(slerp(o1.Quaternion(), o2.Quaternion(), by))
	return &q
}

// slerp spherically interpolates between two quaternions.
// https://en.wikipedia.org/wiki/Slerp
func slerp(qN1, qN2 quat.Number, by float64) quat.Number {
	q1, q2 := Quaternion(qN1), Quaternion(qN2)
	q1.Normalize()
	q2.Normalize()

	dot := q1.Dot(&q2)
	if dot < 0 {
		// take the short way around
		q2.Negate()
		dot = -dot
	}
	if dot > 1-EpsUnitary {
		// nearly parallel, linear interpolation is accurate and avoids dividing by sin(0)
		r := Quaternion(quat.Add(quat.Number(q1), quat.Scale(by, quat.Sub(quat.Number(q2), quat.Number(q1)))))
		r.Normalize()
		return quat.Number(r)
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	s1 := math.Sin((1-by)*theta) / sinTheta
	s2 := math.Sin(by*theta) / sinTheta
	return quat.Add(quat.Scale(s1, quat.Number(q1)), quat.Scale(s2, quat.Number(q2)))
}
