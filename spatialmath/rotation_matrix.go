package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Below this determinant a matrix is considered degenerate and cannot be orthonormalized.
const minRotationMatrixDeterminant = 1e-9

// RotationMatrix is a 3x3 orthonormal matrix with a determinant of +1, stored in row-major order.
//
// Rotation matrices accumulate floating point drift when composed repeatedly. Every transform computed with a
// RotationMatrix therefore uses a Gram-Schmidt orthonormalized copy of its coefficients; the receiver itself is
// only rewritten by an explicit call to Normalize, so a matrix shared between readers is never mutated.
type RotationMatrix struct {
	mat [9]float64
}

var _ mat.Matrix = (*RotationMatrix)(nil)

// NewIdentityRotationMatrix returns the rotation matrix representing no rotation.
func NewIdentityRotationMatrix() *RotationMatrix {
	return &RotationMatrix{[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// NewRotationMatrix returns a rotation matrix from its coefficients in row-major order. The coefficients are
// not checked; use CheckIfRotationMatrix or Normalize to validate them.
func NewRotationMatrix(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) *RotationMatrix {
	return &RotationMatrix{[9]float64{m00, m01, m02, m10, m11, m12, m20, m21, m22}}
}

// NewRotationMatrixFrom copies the coefficients of any 3x3 matrix and orthonormalizes them.
func NewRotationMatrixFrom(m Matrix3DReader) (*RotationMatrix, error) {
	rm := &RotationMatrix{readMatrix(m)}
	if err := rm.Normalize(); err != nil {
		return nil, err
	}
	return rm, nil
}

// NewRotationMatrixFromMgl converts a column-major mgl64 matrix and orthonormalizes it.
func NewRotationMatrixFromMgl(m mgl64.Mat3) (*RotationMatrix, error) {
	rm := &RotationMatrix{fromMgl(m)}
	if err := rm.Normalize(); err != nil {
		return nil, err
	}
	return rm, nil
}

// At returns the coefficient at the given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[row*3+col]
}

// Dims returns the dimensions of the matrix; always 3x3.
func (rm *RotationMatrix) Dims() (int, int) {
	return 3, 3
}

// T returns the implicit transpose of the matrix, which for a rotation matrix is also its inverse.
func (rm *RotationMatrix) T() mat.Matrix {
	return mat.Transpose{Matrix: rm}
}

// Set sets a single coefficient. The matrix may stop being orthonormal until the next Normalize.
func (rm *RotationMatrix) Set(row, col int, v float64) {
	rm.mat[row*3+col] = v
}

// SetRotationMatrix copies another rotation matrix. Aliasing is allowed.
func (rm *RotationMatrix) SetRotationMatrix(other *RotationMatrix) {
	rm.mat = other.mat
}

// SetToZero sets the matrix to identity.
func (rm *RotationMatrix) SetToZero() {
	rm.mat = [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Row returns the given row as a vector.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[row*3], Y: rm.mat[row*3+1], Z: rm.mat[row*3+2]}
}

// Col returns the given column as a vector.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[3+col], Z: rm.mat[6+col]}
}

// Determinant returns the determinant of the matrix.
func (rm *RotationMatrix) Determinant() float64 {
	return determinant(rm.mat)
}

// Transpose transposes the matrix in place, i.e. inverts the rotation.
func (rm *RotationMatrix) Transpose() {
	m := rm.mat
	rm.mat = [9]float64{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Normalize orthonormalizes the matrix with the Gram-Schmidt method. It returns a *NotARotationMatrixError,
// leaving the matrix unchanged, if the coefficients are degenerate.
func (rm *RotationMatrix) Normalize() error {
	normalized, err := orthonormalize(rm.mat)
	if err != nil {
		return err
	}
	rm.mat = normalized
	return nil
}

// normalized returns an orthonormalized copy of the coefficients, leaving the receiver untouched.
func (rm *RotationMatrix) normalized() ([9]float64, error) {
	return orthonormalize(rm.mat)
}

func orthonormalize(m [9]float64) ([9]float64, error) {
	if containsNaN(m[:]...) {
		return m, newNotARotationMatrixError(m, "contains NaN")
	}
	det := determinant(m)
	if math.Abs(det) < minRotationMatrixDeterminant {
		return m, newNotARotationMatrixError(m, fmt.Sprintf("degenerate, determinant %v", det))
	}
	if det < 0 {
		return m, newNotARotationMatrixError(m, fmt.Sprintf("reflection, determinant %v", det))
	}

	x := r3.Vector{X: m[0], Y: m[3], Z: m[6]}
	y := r3.Vector{X: m[1], Y: m[4], Z: m[7]}

	xNorm := x.Norm()
	if xNorm < minRotationMatrixDeterminant {
		return m, newNotARotationMatrixError(m, "first column collapsed")
	}
	x = x.Mul(1 / xNorm)

	y = y.Sub(x.Mul(x.Dot(y)))
	yNorm := y.Norm()
	if yNorm < minRotationMatrixDeterminant {
		return m, newNotARotationMatrixError(m, "columns are linearly dependent")
	}
	y = y.Mul(1 / yNorm)

	z := x.Cross(y)

	out := [9]float64{x.X, y.X, z.X, x.Y, y.Y, z.Y, x.Z, y.Z, z.Z}
	if containsNaN(out[:]...) {
		return m, newNotARotationMatrixError(m, "orthonormalization produced NaN")
	}
	return out, nil
}

// IsRotationMatrix returns whether the rows are orthonormal within epsilon and the determinant is 1 +/- epsilon.
func (rm *RotationMatrix) IsRotationMatrix(epsilon float64) bool {
	for i := 0; i < 3; i++ {
		ri := rm.Row(i)
		if math.Abs(ri.Norm2()-1) > epsilon {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if math.Abs(ri.Dot(rm.Row(j))) > epsilon {
				return false
			}
		}
	}
	return math.Abs(rm.Determinant()-1) <= epsilon
}

// CheckIfRotationMatrix returns a *NotARotationMatrixError if the matrix is not a proper rotation matrix.
func (rm *RotationMatrix) CheckIfRotationMatrix(epsilon float64) error {
	if !rm.IsRotationMatrix(epsilon) {
		return newNotARotationMatrixError(rm.mat, "not orthonormal")
	}
	return nil
}

// IsOrientation2D returns whether the matrix is a rotation around the z axis.
func (rm *RotationMatrix) IsOrientation2D(epsilon float64) bool {
	return isMatrix2D(rm.mat, epsilon)
}

// CheckIfOrientation2D returns a *NotPlanarRotationError if the matrix is not a rotation around the z axis.
func (rm *RotationMatrix) CheckIfOrientation2D(epsilon float64) error {
	return checkIfMatrix2D(rm.mat, epsilon)
}

func isMatrix2D(m [9]float64, epsilon float64) bool {
	return math.Abs(m[2]) < epsilon && math.Abs(m[5]) < epsilon &&
		math.Abs(m[6]) < epsilon && math.Abs(m[7]) < epsilon &&
		math.Abs(m[8]-1) < epsilon
}

func checkIfMatrix2D(m [9]float64, epsilon float64) error {
	if !isMatrix2D(m, epsilon) {
		return &NotPlanarRotationError{Orientation: matrixString(m)}
	}
	return nil
}

// Quaternion returns the orientation as a gonum quaternion.
func (rm *RotationMatrix) Quaternion() quat.Number {
	return RotationMatrixToQuat(rm)
}

// AxisAngles returns the orientation in axis angle representation.
func (rm *RotationMatrix) AxisAngles() *R4AA {
	aa := QuatToR4AA(RotationMatrixToQuat(rm))
	return &aa
}

// RotationVector returns the orientation as a rotation vector.
func (rm *RotationMatrix) RotationVector() RotationVector {
	return QuatToRotationVector(RotationMatrixToQuat(rm))
}

// EulerAngles returns the orientation in yaw-pitch-roll representation.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	ea := RotationMatrixToEulerAngles(rm)
	return &ea
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// GetRotationVector stores the rotation vector of this matrix in dst.
func (rm *RotationMatrix) GetRotationVector(dst Tuple3D) {
	rv := rm.RotationVector()
	dst.Set(rv.X, rv.Y, rv.Z)
}

// GetEuler stores the yaw-pitch-roll angles of this matrix in dst as (roll, pitch, yaw).
func (rm *RotationMatrix) GetEuler(dst Tuple3D) {
	ea := RotationMatrixToEulerAngles(rm)
	dst.Set(ea.Roll, ea.Pitch, ea.Yaw)
}

// GetQuaternion stores the quaternion equivalent to this matrix in dst.
func (rm *RotationMatrix) GetQuaternion(dst QuaternionWriter) {
	q := RotationMatrixToQuat(rm)
	dst.Set(q.Imag, q.Jmag, q.Kmag, q.Real)
}

// Mgl returns the matrix in mgl64's column-major layout.
func (rm *RotationMatrix) Mgl() mgl64.Mat3 {
	return toMgl(rm.mat)
}

// ContainsNaN returns whether any coefficient is NaN.
func (rm *RotationMatrix) ContainsNaN() bool {
	return containsNaN(rm.mat[:]...)
}

// EpsilonEquals compares two matrices coefficient by coefficient.
func (rm *RotationMatrix) EpsilonEquals(other Matrix3DReader, epsilon float64) bool {
	return matrixEpsilonEquals(rm.mat, readMatrix(other), epsilon)
}

// GeometricallyEquals returns whether the two matrices represent rotations less than epsilon radians apart.
func (rm *RotationMatrix) GeometricallyEquals(other *RotationMatrix, epsilon float64) bool {
	return RotationMatrixGeometricallyEquals(rm, other, epsilon)
}

func (rm *RotationMatrix) String() string {
	return matrixString(rm.mat)
}
