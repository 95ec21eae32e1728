package spatialmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Matrix3DReader is a read-only view of a 3x3 matrix. Any 3x3 gonum mat.Matrix satisfies it.
type Matrix3DReader interface {
	At(row, col int) float64
}

// Matrix3D is a general purpose 3x3 matrix stored in row-major order. It carries no rotation invariant and is
// only used here as the target of similarity transforms (e.g. rotating an inertia tensor).
type Matrix3D struct {
	mat [9]float64
}

var _ mat.Matrix = (*Matrix3D)(nil)

// NewMatrix3D returns a 3x3 matrix from its coefficients in row-major order.
func NewMatrix3D(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) *Matrix3D {
	return &Matrix3D{[9]float64{m00, m01, m02, m10, m11, m12, m20, m21, m22}}
}

// NewMatrix3DFrom copies any 3x3 matrix, such as a *mat.Dense.
func NewMatrix3DFrom(m Matrix3DReader) *Matrix3D {
	return &Matrix3D{readMatrix(m)}
}

// NewMatrix3DFromMgl converts a column-major mgl64 matrix.
func NewMatrix3DFromMgl(m mgl64.Mat3) *Matrix3D {
	return &Matrix3D{fromMgl(m)}
}

// At returns the coefficient at the given row and column.
func (m *Matrix3D) At(row, col int) float64 {
	return m.mat[row*3+col]
}

// Dims returns the dimensions of the matrix; always 3x3.
func (m *Matrix3D) Dims() (int, int) {
	return 3, 3
}

// T returns the implicit transpose of the matrix.
func (m *Matrix3D) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Set sets the coefficient at the given row and column.
func (m *Matrix3D) Set(row, col int, v float64) {
	m.mat[row*3+col] = v
}

// SetMatrix copies the coefficients of another 3x3 matrix. Aliasing is allowed.
func (m *Matrix3D) SetMatrix(other Matrix3DReader) {
	m.mat = readMatrix(other)
}

// Mgl returns the matrix in mgl64's column-major layout.
func (m *Matrix3D) Mgl() mgl64.Mat3 {
	return toMgl(m.mat)
}

// ContainsNaN returns whether any coefficient is NaN.
func (m *Matrix3D) ContainsNaN() bool {
	return containsNaN(m.mat[:]...)
}

// EpsilonEquals compares two matrices coefficient by coefficient.
func (m *Matrix3D) EpsilonEquals(other Matrix3DReader, epsilon float64) bool {
	return matrixEpsilonEquals(m.mat, readMatrix(other), epsilon)
}

func (m *Matrix3D) String() string {
	return matrixString(m.mat)
}

// readMatrix buffers the nine coefficients of a matrix so that the source can safely be the destination of
// the operation that reads it.
func readMatrix(m Matrix3DReader) [9]float64 {
	var out [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = m.At(row, col)
		}
	}
	return out
}

// multiply returns a * b.
func multiply(a, b [9]float64) [9]float64 {
	var out [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = a[row*3]*b[col] + a[row*3+1]*b[3+col] + a[row*3+2]*b[6+col]
		}
	}
	return out
}

// multiplyTransposeLeft returns aᵀ * b without materializing aᵀ.
func multiplyTransposeLeft(a, b [9]float64) [9]float64 {
	var out [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = a[row]*b[col] + a[3+row]*b[3+col] + a[6+row]*b[6+col]
		}
	}
	return out
}

// multiplyTransposeRight returns a * bᵀ without materializing bᵀ.
func multiplyTransposeRight(a, b [9]float64) [9]float64 {
	var out [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = a[row*3]*b[col*3] + a[row*3+1]*b[col*3+1] + a[row*3+2]*b[col*3+2]
		}
	}
	return out
}

func determinant(m [9]float64) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) - m[1]*(m[3]*m[8]-m[5]*m[6]) + m[2]*(m[3]*m[7]-m[4]*m[6])
}

func matrixEpsilonEquals(a, b [9]float64, epsilon float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func matrixString(m [9]float64) string {
	return fmt.Sprintf("/%v, %v, %v \\\n|%v, %v, %v |\n\\%v, %v, %v /", m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

func toMgl(m [9]float64) mgl64.Mat3 {
	return mgl64.Mat3{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

func fromMgl(m mgl64.Mat3) [9]float64 {
	return [9]float64{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}
