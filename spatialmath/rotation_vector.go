package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// RotationVector is the axis of an axis angle multiplied by its angle. It is not a set of Euler angles.
type RotationVector r3.Vector

// NewRotationVector returns the rotation vector (x, y, z).
func NewRotationVector(x, y, z float64) *RotationVector {
	return &RotationVector{X: x, Y: y, Z: z}
}

// Quaternion returns orientation in quaternion representation.
func (rv *RotationVector) Quaternion() quat.Number {
	return RotationVectorToQuat(*rv)
}

// AxisAngles returns the orientation in axis angle representation.
func (rv *RotationVector) AxisAngles() *R4AA {
	return R3ToR4(r3.Vector(*rv))
}

// RotationVector returns the orientation as a rotation vector.
func (rv *RotationVector) RotationVector() RotationVector {
	return *rv
}

// EulerAngles returns orientation in Euler angle representation.
func (rv *RotationVector) EulerAngles() *EulerAngles {
	ea := QuatToEulerAngles(RotationVectorToQuat(*rv))
	return &ea
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rv *RotationVector) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(RotationVectorToQuat(*rv))
}

// R3 returns the rotation vector as a plain r3.Vector.
func (rv *RotationVector) R3() r3.Vector {
	return r3.Vector(*rv)
}

// EpsilonEquals compares the components one by one.
func (rv *RotationVector) EpsilonEquals(other *RotationVector, epsilon float64) bool {
	return tuple3DEpsilonEquals(NewVector3DFromR3(r3.Vector(*rv)), NewVector3DFromR3(r3.Vector(*other)), epsilon)
}

// R3ToR4 converts an R3 angle axis to R4. The zero vector maps to a zero angle around the (1, 0, 0) axis.
func R3ToR4(aa r3.Vector) *R4AA {
	theta := aa.Norm()
	if theta == 0 {
		return NewR4AA()
	}
	return &R4AA{theta, aa.X / theta, aa.Y / theta, aa.Z / theta}
}
