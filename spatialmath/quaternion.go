package spatialmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

const (
	// EpsUnitary is the default tolerance used to verify that a quaternion is a unit-quaternion.
	EpsUnitary = 1e-7
	// GeometricallyEqualsThreshold is the tolerance, in radians, under which the geometric comparison of two
	// rotations switches from the acos based distance to the more expensive but precise one.
	GeometricallyEqualsThreshold = 0.005
	// Orientation2DEpsilon is the tolerance used by 2D transforms to verify that a rotation is about the z axis.
	Orientation2DEpsilon = 1e-7
)

// QuaternionReader is a read-only view of a quaternion (x, y, z, s).
type QuaternionReader interface {
	Tuple4DReader
	NormSquared() float64
}

// QuaternionWriter is the mutable side of a quaternion.
type QuaternionWriter interface {
	Set(x, y, z, s float64)
}

// Quaternion represents a 3D orientation as a unit quaternion. Real holds the scalar part s; Imag, Jmag and Kmag
// hold the vector part (x, y, z).
//
// Quaternions are never renormalized implicitly: transforming with a quaternion that drifted away from unit norm
// silently produces a scaled result. Use CheckIfUnit to guard and Normalize to repair.
type Quaternion quat.Number

// NewQuaternion returns the quaternion (x, y, z, s).
func NewQuaternion(x, y, z, s float64) *Quaternion {
	return &Quaternion{Real: s, Imag: x, Jmag: y, Kmag: z}
}

// NewQuaternionFrom copies any quaternion.
func NewQuaternionFrom(q QuaternionReader) *Quaternion {
	return NewQuaternion(q.X(), q.Y(), q.Z(), q.S())
}

// X returns the x component of the vector part.
func (q *Quaternion) X() float64 { return q.Imag }

// Y returns the y component of the vector part.
func (q *Quaternion) Y() float64 { return q.Jmag }

// Z returns the z component of the vector part.
func (q *Quaternion) Z() float64 { return q.Kmag }

// S returns the scalar part.
func (q *Quaternion) S() float64 { return q.Real }

// Set sets the four components.
func (q *Quaternion) Set(x, y, z, s float64) {
	q.Real, q.Imag, q.Jmag, q.Kmag = s, x, y, z
}

// SetToZero sets the quaternion to the identity rotation (0, 0, 0, 1).
func (q *Quaternion) SetToZero() {
	q.Set(0, 0, 0, 1)
}

// NormSquared returns x² + y² + z² + s².
func (q *Quaternion) NormSquared() float64 {
	return q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag + q.Real*q.Real
}

// Norm returns the norm of the quaternion.
func (q *Quaternion) Norm() float64 {
	return math.Sqrt(q.NormSquared())
}

// Dot returns the 4D dot product of the two quaternions.
func (q *Quaternion) Dot(other QuaternionReader) float64 {
	return q.Imag*other.X() + q.Jmag*other.Y() + q.Kmag*other.Z() + q.Real*other.S()
}

// IsUnit returns whether the norm of the quaternion is 1 +/- epsilon.
func (q *Quaternion) IsUnit(epsilon float64) bool {
	return math.Abs(q.Norm()-1) < epsilon
}

// CheckIfUnit returns a *NotUnitQuaternionError if the norm of the quaternion is not 1 +/- epsilon.
func (q *Quaternion) CheckIfUnit(epsilon float64) error {
	if !q.IsUnit(epsilon) {
		return &NotUnitQuaternionError{Quaternion: *q, Norm: q.Norm()}
	}
	return nil
}

// CheckIfUnitDefault is CheckIfUnit with EpsUnitary.
func (q *Quaternion) CheckIfUnitDefault() error {
	return q.CheckIfUnit(EpsUnitary)
}

// Normalize scales the quaternion to unit norm. A zero quaternion becomes the identity. NaN components are
// left as they are.
func (q *Quaternion) Normalize() {
	if q.ContainsNaN() {
		return
	}
	norm := q.Norm()
	if norm == 0 {
		q.SetToZero()
		return
	}
	*q = Quaternion(quat.Scale(1/norm, quat.Number(*q)))
}

// NormalizeAndLimitToPi normalizes the quaternion and flips its sign if needed so that s >= 0, which limits the
// angle it represents to [0, pi].
func (q *Quaternion) NormalizeAndLimitToPi() {
	q.Normalize()
	if q.Real < 0 {
		q.Negate()
	}
}

// Negate flips the sign of the four components; the rotation represented is unchanged.
func (q *Quaternion) Negate() {
	q.Set(-q.Imag, -q.Jmag, -q.Kmag, -q.Real)
}

// Conjugate negates the vector part. For a unit quaternion this is the inverse rotation.
func (q *Quaternion) Conjugate() {
	q.Set(-q.Imag, -q.Jmag, -q.Kmag, q.Real)
}

// ContainsNaN returns whether any component is NaN.
func (q *Quaternion) ContainsNaN() bool {
	return containsNaN(q.Real, q.Imag, q.Jmag, q.Kmag)
}

// IsOrientation2D returns whether the quaternion is a rotation around the z axis, i.e. whether both x and y are
// smaller than epsilon in magnitude.
func (q *Quaternion) IsOrientation2D(epsilon float64) bool {
	return math.Abs(q.Imag) < epsilon && math.Abs(q.Jmag) < epsilon
}

// CheckIfOrientation2D returns a *NotPlanarRotationError if the quaternion is not a rotation around the z axis.
func (q *Quaternion) CheckIfOrientation2D(epsilon float64) error {
	if !q.IsOrientation2D(epsilon) {
		return &NotPlanarRotationError{Orientation: q.String()}
	}
	return nil
}

// Angle returns the angle of the rotation represented by the quaternion, in [0, 2pi].
func (q *Quaternion) Angle() float64 {
	sinHalfTheta := math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	return 2 * math.Atan2(sinHalfTheta, q.Real)
}

// Yaw returns the angle around the z axis of the yaw-pitch-roll representation.
func (q *Quaternion) Yaw() float64 {
	return QuatToEulerAngles(quat.Number(*q)).Yaw
}

// Pitch returns the angle around the y axis of the yaw-pitch-roll representation.
func (q *Quaternion) Pitch() float64 {
	return QuatToEulerAngles(quat.Number(*q)).Pitch
}

// Roll returns the angle around the x axis of the yaw-pitch-roll representation.
func (q *Quaternion) Roll() float64 {
	return QuatToEulerAngles(quat.Number(*q)).Roll
}

// Quaternion returns the orientation as a gonum quaternion.
func (q *Quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// AxisAngles returns the orientation in axis angle representation.
func (q *Quaternion) AxisAngles() *R4AA {
	aa := QuatToR4AA(quat.Number(*q))
	return &aa
}

// RotationVector returns the orientation as a rotation vector.
func (q *Quaternion) RotationVector() RotationVector {
	return QuatToRotationVector(quat.Number(*q))
}

// EulerAngles returns the orientation in yaw-pitch-roll representation.
func (q *Quaternion) EulerAngles() *EulerAngles {
	ea := QuatToEulerAngles(quat.Number(*q))
	return &ea
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (q *Quaternion) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(quat.Number(*q))
}

// GetRotationVector stores the rotation vector of this quaternion in dst.
func (q *Quaternion) GetRotationVector(dst Tuple3D) {
	rv := QuatToRotationVector(quat.Number(*q))
	dst.Set(rv.X, rv.Y, rv.Z)
}

// GetEuler stores the yaw-pitch-roll angles of this quaternion in dst as (roll, pitch, yaw).
func (q *Quaternion) GetEuler(dst Tuple3D) {
	ea := QuatToEulerAngles(quat.Number(*q))
	dst.Set(ea.Roll, ea.Pitch, ea.Yaw)
}

// GetQuaternion copies this quaternion into dst.
func (q *Quaternion) GetQuaternion(dst QuaternionWriter) {
	dst.Set(q.Imag, q.Jmag, q.Kmag, q.Real)
}

// EpsilonEquals compares the two quaternions component-wise. q and -q are not considered equal; use
// GeometricallyEquals for that.
func (q *Quaternion) EpsilonEquals(other QuaternionReader, epsilon float64) bool {
	return tuple3DEpsilonEquals(q, other, epsilon) && scalar.EqualWithinAbs(q.Real, other.S(), epsilon)
}

// GeometricallyEquals returns whether the two quaternions represent rotations less than epsilon radians apart.
func (q *Quaternion) GeometricallyEquals(other QuaternionReader, epsilon float64) bool {
	return QuatGeometricallyEquals(q, other, epsilon)
}

func (q *Quaternion) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.Imag, q.Jmag, q.Kmag, q.Real)
}

func numberOf(q QuaternionReader) quat.Number {
	return quat.Number{Real: q.S(), Imag: q.X(), Jmag: q.Y(), Kmag: q.Z()}
}
