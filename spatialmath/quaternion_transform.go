package spatialmath

import (
	"gonum.org/v1/gonum/num/quat"
)

// quatRotate computes q * v * q^-1 for the unit quaternion (qx, qy, qz, qs) and the vector v without going
// through a rotation matrix:
//
//	t = 2 * (q.xyz x v)
//	v' = v + qs * t + q.xyz x t
//
// The quaternion is used as given; a non-unit quaternion distorts the result.
func quatRotate(qx, qy, qz, qs, x, y, z float64) (float64, float64, float64) {
	tx := 2 * (qy*z - qz*y)
	ty := 2 * (qz*x - qx*z)
	tz := 2 * (qx*y - qy*x)

	return x + qs*tx + qy*tz - qz*ty,
		y + qs*ty + qz*tx - qx*tz,
		z + qs*tz + qx*ty - qy*tx
}

// Transform rotates in and stores the result in out: out = q * in * q^-1. in and out may be the same tuple.
func (q *Quaternion) Transform(in Tuple3DReader, out Tuple3D) {
	out.Set(quatRotate(q.Imag, q.Jmag, q.Kmag, q.Real, in.X(), in.Y(), in.Z()))
}

// AddTransform rotates in and adds the result to out: out = out + q * in * q^-1.
func (q *Quaternion) AddTransform(in Tuple3DReader, out Tuple3D) {
	x, y, z := quatRotate(q.Imag, q.Jmag, q.Kmag, q.Real, in.X(), in.Y(), in.Z())
	out.Set(out.X()+x, out.Y()+y, out.Z()+z)
}

// InverseTransform applies the inverse rotation, using the conjugate: out = q^-1 * in * q.
func (q *Quaternion) InverseTransform(in Tuple3DReader, out Tuple3D) {
	out.Set(quatRotate(-q.Imag, -q.Jmag, -q.Kmag, q.Real, in.X(), in.Y(), in.Z()))
}

// Transform2D rotates a tuple of the XY plane. If checkPlanar is set, a *NotPlanarRotationError is returned
// when the quaternion is not a rotation around the z axis, and out is left untouched.
func (q *Quaternion) Transform2D(in Tuple2DReader, out Tuple2D, checkPlanar bool) error {
	if checkPlanar {
		if err := q.CheckIfOrientation2D(Orientation2DEpsilon); err != nil {
			return err
		}
	}
	x, y, _ := quatRotate(q.Imag, q.Jmag, q.Kmag, q.Real, in.X(), in.Y(), 0)
	out.Set(x, y)
	return nil
}

// InverseTransform2D is the inverse of Transform2D.
func (q *Quaternion) InverseTransform2D(in Tuple2DReader, out Tuple2D, checkPlanar bool) error {
	if checkPlanar {
		if err := q.CheckIfOrientation2D(Orientation2DEpsilon); err != nil {
			return err
		}
	}
	x, y, _ := quatRotate(-q.Imag, -q.Jmag, -q.Kmag, q.Real, in.X(), in.Y(), 0)
	out.Set(x, y)
	return nil
}

// Transform4D rotates the vector part of in; the scalar part is copied as is.
func (q *Quaternion) Transform4D(in Tuple4DReader, out Tuple4D) {
	s := in.S()
	x, y, z := quatRotate(q.Imag, q.Jmag, q.Kmag, q.Real, in.X(), in.Y(), in.Z())
	out.Set(x, y, z, s)
}

// InverseTransform4D is the inverse of Transform4D.
func (q *Quaternion) InverseTransform4D(in Tuple4DReader, out Tuple4D) {
	s := in.S()
	x, y, z := quatRotate(-q.Imag, -q.Jmag, -q.Kmag, q.Real, in.X(), in.Y(), in.Z())
	out.Set(x, y, z, s)
}

// TransformQuaternion concatenates this rotation with in: out = q * in.
func (q *Quaternion) TransformQuaternion(in QuaternionReader, out QuaternionWriter) {
	r := quat.Mul(quat.Number(*q), numberOf(in))
	out.Set(r.Imag, r.Jmag, r.Kmag, r.Real)
}

// InverseTransformQuaternion concatenates the inverse of this rotation with in: out = conj(q) * in.
func (q *Quaternion) InverseTransformQuaternion(in QuaternionReader, out QuaternionWriter) {
	r := quat.Mul(quat.Conj(quat.Number(*q)), numberOf(in))
	out.Set(r.Imag, r.Jmag, r.Kmag, r.Real)
}

// TransformRotationMatrix concatenates this rotation with a rotation matrix: out = R(q) * in.
func (q *Quaternion) TransformRotationMatrix(in, out *RotationMatrix) {
	out.mat = multiply(QuatToRotationMatrix(quat.Number(*q)).mat, in.mat)
}

// InverseTransformRotationMatrix computes out = R(q)^T * in.
func (q *Quaternion) InverseTransformRotationMatrix(in, out *RotationMatrix) {
	out.mat = multiplyTransposeLeft(QuatToRotationMatrix(quat.Number(*q)).mat, in.mat)
}

// TransformMatrix applies the similarity transform out = R(q) * in * R(q)^T to a general 3x3 matrix.
func (q *Quaternion) TransformMatrix(in Matrix3DReader, out *Matrix3D) {
	r := QuatToRotationMatrix(quat.Number(*q)).mat
	out.mat = multiplyTransposeRight(multiply(r, readMatrix(in)), r)
}

// InverseTransformMatrix applies out = R(q)^T * in * R(q).
func (q *Quaternion) InverseTransformMatrix(in Matrix3DReader, out *Matrix3D) {
	r := QuatToRotationMatrix(quat.Number(*q)).mat
	out.mat = multiply(multiplyTransposeLeft(r, readMatrix(in)), r)
}
