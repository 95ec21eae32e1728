package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// QuatDistance returns the angle, in [0, pi], between the rotations of two quaternions, computed as
// 2 * acos(dot(a, b)). It is cheap but loses precision when the rotations are very close to each other.
func QuatDistance(a, b QuaternionReader) float64 {
	dot := a.X()*b.X() + a.Y()*b.Y() + a.Z()*b.Z() + a.S()*b.S()
	if norms := a.NormSquared() * b.NormSquared(); norms != 0 && norms != 1 {
		dot /= math.Sqrt(norms)
	}
	// rounding can push the dot product slightly out of [-1, 1]
	dot = math.Max(-1, math.Min(1, dot))
	return math.Abs(trimAngleMinusPiToPi(2 * math.Acos(dot)))
}

// QuatDistancePrecise returns the same angle as QuatDistance, extracted from the difference quaternion
// conj(a) * b with atan2, which stays well conditioned near 0 and near pi.
func QuatDistancePrecise(a, b QuaternionReader) float64 {
	ax, ay, az, as := a.X(), a.Y(), a.Z(), a.S()
	bx, by, bz, bs := b.X(), b.Y(), b.Z(), b.S()

	// grouped so that swapping a and b exactly negates the vector part
	x := (as*bx - bs*ax) - (ay*bz - az*by)
	y := (as*by - bs*ay) - (az*bx - ax*bz)
	z := (as*bz - bs*az) - (ax*by - ay*bx)
	s := as*bs + ax*bx + ay*by + az*bz

	angle := 2 * math.Atan2(math.Sqrt(x*x+y*y+z*z), s)
	return math.Abs(trimAngleMinusPiToPi(angle))
}

// QuatGeometricallyEquals returns whether the rotations of a and b are at most epsilon radians apart. q and -q
// are equal. Above GeometricallyEqualsThreshold the acos based distance is used, below it the precise one. Any
// two rotations are within pi of each other.
func QuatGeometricallyEquals(a, b QuaternionReader, epsilon float64) bool {
	if epsilon >= math.Pi {
		return true
	}
	var distance float64
	if epsilon > GeometricallyEqualsThreshold {
		distance = QuatDistance(a, b)
	} else {
		distance = QuatDistancePrecise(a, b)
	}
	return distance <= epsilon
}

// RotationMatrixDistance returns the angle of the relative rotation a^T * b, in [0, pi]. The matrices are used
// as they are, without orthonormalization.
func RotationMatrixDistance(a, b *RotationMatrix) float64 {
	return rotationMatrixDistancePrecise(multiplyTransposeLeft(a.mat, b.mat))
}

func rotationMatrixDistance(relative [9]float64) float64 {
	cos := (relative[0] + relative[4] + relative[8] - 1) / 2
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

func rotationMatrixDistancePrecise(relative [9]float64) float64 {
	cos := (relative[0] + relative[4] + relative[8] - 1) / 2
	sx := relative[7] - relative[5]
	sy := relative[2] - relative[6]
	sz := relative[3] - relative[1]
	sin := math.Sqrt(sx*sx+sy*sy+sz*sz) / 2
	return math.Atan2(sin, cos)
}

// RotationMatrixGeometricallyEquals returns whether the rotations of a and b are at most epsilon radians apart.
// Both matrices are orthonormalized first; a matrix that cannot be is equal to nothing.
func RotationMatrixGeometricallyEquals(a, b *RotationMatrix, epsilon float64) bool {
	if epsilon >= math.Pi {
		return true
	}
	ma, err := a.normalized()
	if err != nil {
		return false
	}
	mb, err := b.normalized()
	if err != nil {
		return false
	}
	relative := multiplyTransposeLeft(ma, mb)
	if epsilon > GeometricallyEqualsThreshold {
		return rotationMatrixDistance(relative) <= epsilon
	}
	return rotationMatrixDistancePrecise(relative) <= epsilon
}

// OrientationGeometricallyEquals compares two orientations of any representation. Two rotation matrices are
// compared as matrices, anything else through quaternions.
func OrientationGeometricallyEquals(o1, o2 Orientation, epsilon float64) bool {
	rm1, ok1 := o1.(*RotationMatrix)
	rm2, ok2 := o2.(*RotationMatrix)
	if ok1 && ok2 {
		return RotationMatrixGeometricallyEquals(rm1, rm2, epsilon)
	}
	q1 := Quaternion(o1.Quaternion())
	q2 := Quaternion(o2.Quaternion())
	return QuatGeometricallyEquals(&q1, &q2, epsilon)
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion. Quaternions have double
// coverage, Q == -Q, and this does not account for this.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	qa, qb := Quaternion(a), Quaternion(b)
	return qa.EpsilonEquals(&qb, tol)
}
