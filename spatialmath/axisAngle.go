package spatialmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// R4AA is a rotation of Theta radians around the axis (RX, RY, RZ), following the right hand rule. The axis is
// a unit vector once normalized; the rotation vector form (R3) is the axis scaled by Theta.
// https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA returns the axis angle representing no rotation, with the conventional (1, 0, 0) axis.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 1, RY: 0, RZ: 0}
}

// AxisAngles returns the orientation in axis angle representation.
func (r4 *R4AA) AxisAngles() *R4AA {
	return r4
}

// Quaternion returns orientation in quaternion representation.
func (r4 *R4AA) Quaternion() quat.Number {
	return r4.ToQuat()
}

// RotationVector returns the orientation as a rotation vector.
func (r4 *R4AA) RotationVector() RotationVector {
	return r4.ToR3()
}

// EulerAngles returns orientation in Euler angle representation.
func (r4 *R4AA) EulerAngles() *EulerAngles {
	ea := QuatToEulerAngles(r4.ToQuat())
	return &ea
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (r4 *R4AA) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(r4.ToQuat())
}

// ToR3 converts an R4 angle axis to R3. The axis is normalized on the fly.
func (r4 *R4AA) ToR3() RotationVector {
	norm := r4.axisNorm()
	if norm == 0 {
		return RotationVector{}
	}
	scale := r4.Theta / norm
	return RotationVector{X: r4.RX * scale, Y: r4.RY * scale, Z: r4.RZ * scale}
}

// ToQuat converts an R4 axis angle to a unit quaternion. The receiver is not modified; a zero axis yields the
// identity.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 *R4AA) ToQuat() quat.Number {
	norm := r4.axisNorm()
	if norm == 0 {
		return quat.Number{Real: 1}
	}
	sinA := math.Sin(r4.Theta/2) / norm

	// Get the unit-sphere components
	ax := r4.RX * sinA
	ay := r4.RY * sinA
	az := r4.RZ * sinA
	w := math.Cos(r4.Theta / 2)
	return quat.Number{Real: w, Imag: ax, Jmag: ay, Kmag: az}
}

// Normalize scales the x, y, and z components of a R4 axis angle to be on the unit sphere. A zero axis is left
// unchanged.
func (r4 *R4AA) Normalize() {
	norm := r4.axisNorm()
	if norm == 0 {
		return
	}
	r4.RX /= norm
	r4.RY /= norm
	r4.RZ /= norm
}

func (r4 *R4AA) axisNorm() float64 {
	return math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
}

// EpsilonEquals compares the angle and the axis components one by one.
func (r4 *R4AA) EpsilonEquals(other *R4AA, epsilon float64) bool {
	return scalar.EqualWithinAbs(r4.Theta, other.Theta, epsilon) &&
		scalar.EqualWithinAbs(r4.RX, other.RX, epsilon) &&
		scalar.EqualWithinAbs(r4.RY, other.RY, epsilon) &&
		scalar.EqualWithinAbs(r4.RZ, other.RZ, epsilon)
}

// GeometricallyEquals returns whether the two axis angles represent rotations less than epsilon radians apart.
func (r4 *R4AA) GeometricallyEquals(other *R4AA, epsilon float64) bool {
	return OrientationGeometricallyEquals(r4, other, epsilon)
}

func (r4 *R4AA) String() string {
	return fmt.Sprintf("(axis: (%v, %v, %v), angle: %v)", r4.RX, r4.RY, r4.RZ, r4.Theta)
}
