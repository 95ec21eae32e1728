package spatialmath

import (
	"gonum.org/v1/gonum/num/quat"
)

// All transforms below orthonormalize a copy of the matrix before using it, and fail with a
// *NotARotationMatrixError if that is not possible. Inverse transforms read the matrix transposed instead of
// inverting it.

// Transform rotates in and stores the result in out: out = R * in. in and out may be the same tuple.
func (rm *RotationMatrix) Transform(in Tuple3DReader, out Tuple3D) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	x, y, z := in.X(), in.Y(), in.Z()
	out.Set(
		m[0]*x+m[1]*y+m[2]*z,
		m[3]*x+m[4]*y+m[5]*z,
		m[6]*x+m[7]*y+m[8]*z,
	)
	return nil
}

// AddTransform rotates in and adds the result to out: out = out + R * in.
func (rm *RotationMatrix) AddTransform(in Tuple3DReader, out Tuple3D) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	x, y, z := in.X(), in.Y(), in.Z()
	out.Set(
		out.X()+m[0]*x+m[1]*y+m[2]*z,
		out.Y()+m[3]*x+m[4]*y+m[5]*z,
		out.Z()+m[6]*x+m[7]*y+m[8]*z,
	)
	return nil
}

// InverseTransform computes out = R^T * in.
func (rm *RotationMatrix) InverseTransform(in Tuple3DReader, out Tuple3D) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	x, y, z := in.X(), in.Y(), in.Z()
	out.Set(
		m[0]*x+m[3]*y+m[6]*z,
		m[1]*x+m[4]*y+m[7]*z,
		m[2]*x+m[5]*y+m[8]*z,
	)
	return nil
}

// Transform2D rotates a tuple of the XY plane. If checkPlanar is set, a *NotPlanarRotationError is returned
// when the matrix is not a rotation around the z axis.
func (rm *RotationMatrix) Transform2D(in Tuple2DReader, out Tuple2D, checkPlanar bool) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	if checkPlanar {
		if err := checkIfMatrix2D(m, Orientation2DEpsilon); err != nil {
			return err
		}
	}
	x, y := in.X(), in.Y()
	out.Set(m[0]*x+m[1]*y, m[3]*x+m[4]*y)
	return nil
}

// InverseTransform2D is the inverse of Transform2D.
func (rm *RotationMatrix) InverseTransform2D(in Tuple2DReader, out Tuple2D, checkPlanar bool) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	if checkPlanar {
		if err := checkIfMatrix2D(m, Orientation2DEpsilon); err != nil {
			return err
		}
	}
	x, y := in.X(), in.Y()
	out.Set(m[0]*x+m[3]*y, m[1]*x+m[4]*y)
	return nil
}

// Transform4D rotates the vector part of in; the scalar part is copied as is.
func (rm *RotationMatrix) Transform4D(in Tuple4DReader, out Tuple4D) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	x, y, z, s := in.X(), in.Y(), in.Z(), in.S()
	out.Set(
		m[0]*x+m[1]*y+m[2]*z,
		m[3]*x+m[4]*y+m[5]*z,
		m[6]*x+m[7]*y+m[8]*z,
		s,
	)
	return nil
}

// InverseTransform4D is the inverse of Transform4D.
func (rm *RotationMatrix) InverseTransform4D(in Tuple4DReader, out Tuple4D) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	x, y, z, s := in.X(), in.Y(), in.Z(), in.S()
	out.Set(
		m[0]*x+m[3]*y+m[6]*z,
		m[1]*x+m[4]*y+m[7]*z,
		m[2]*x+m[5]*y+m[8]*z,
		s,
	)
	return nil
}

// TransformQuaternion concatenates this rotation with a quaternion: out = Q(R) * in.
func (rm *RotationMatrix) TransformQuaternion(in QuaternionReader, out QuaternionWriter) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	r := quat.Mul(RotationMatrixToQuat(&RotationMatrix{m}), numberOf(in))
	out.Set(r.Imag, r.Jmag, r.Kmag, r.Real)
	return nil
}

// InverseTransformQuaternion computes out = conj(Q(R)) * in, the conjugate standing in for the inverse.
func (rm *RotationMatrix) InverseTransformQuaternion(in QuaternionReader, out QuaternionWriter) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	r := quat.Mul(quat.Conj(RotationMatrixToQuat(&RotationMatrix{m})), numberOf(in))
	out.Set(r.Imag, r.Jmag, r.Kmag, r.Real)
	return nil
}

// TransformRotationMatrix concatenates this rotation with another: out = R * in. in, out and the receiver may
// all be the same matrix.
func (rm *RotationMatrix) TransformRotationMatrix(in, out *RotationMatrix) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	out.mat = multiply(m, in.mat)
	return nil
}

// InverseTransformRotationMatrix computes out = R^T * in.
func (rm *RotationMatrix) InverseTransformRotationMatrix(in, out *RotationMatrix) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	out.mat = multiplyTransposeLeft(m, in.mat)
	return nil
}

// TransformMatrix applies the similarity transform out = R * in * R^T to a general 3x3 matrix, e.g. to
// express an inertia tensor in another frame.
func (rm *RotationMatrix) TransformMatrix(in Matrix3DReader, out *Matrix3D) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	out.mat = multiplyTransposeRight(multiply(m, readMatrix(in)), m)
	return nil
}

// InverseTransformMatrix applies out = R^T * in * R.
func (rm *RotationMatrix) InverseTransformMatrix(in Matrix3DReader, out *Matrix3D) error {
	m, err := rm.normalized()
	if err != nil {
		return err
	}
	out.mat = multiply(multiplyTransposeLeft(m, readMatrix(in)), m)
	return nil
}
