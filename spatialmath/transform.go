package spatialmath

// The functions below apply any Orientation as a rotation operator. Rotation matrices and quaternions are used
// directly; every other representation goes through its quaternion.

func operatorOf(o Orientation) (*RotationMatrix, *Quaternion) {
	switch r := o.(type) {
	case *RotationMatrix:
		return r, nil
	case *Quaternion:
		return nil, r
	default:
		q := Quaternion(o.Quaternion())
		return nil, &q
	}
}

// Transform rotates in by o and stores the result in out.
func Transform(o Orientation, in Tuple3DReader, out Tuple3D) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.Transform(in, out)
	}
	q.Transform(in, out)
	return nil
}

// InverseTransform rotates in by the inverse of o and stores the result in out.
func InverseTransform(o Orientation, in Tuple3DReader, out Tuple3D) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.InverseTransform(in, out)
	}
	q.InverseTransform(in, out)
	return nil
}

// AddTransform rotates in by o and adds the result to out.
func AddTransform(o Orientation, in Tuple3DReader, out Tuple3D) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.AddTransform(in, out)
	}
	q.AddTransform(in, out)
	return nil
}

// Transform2D rotates a tuple of the XY plane by o, optionally checking that o is a rotation around z.
func Transform2D(o Orientation, in Tuple2DReader, out Tuple2D, checkPlanar bool) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.Transform2D(in, out, checkPlanar)
	}
	return q.Transform2D(in, out, checkPlanar)
}

// InverseTransform2D is the inverse of Transform2D.
func InverseTransform2D(o Orientation, in Tuple2DReader, out Tuple2D, checkPlanar bool) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.InverseTransform2D(in, out, checkPlanar)
	}
	return q.InverseTransform2D(in, out, checkPlanar)
}

// Transform4D rotates the vector part of in by o.
func Transform4D(o Orientation, in Tuple4DReader, out Tuple4D) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.Transform4D(in, out)
	}
	q.Transform4D(in, out)
	return nil
}

// InverseTransform4D is the inverse of Transform4D.
func InverseTransform4D(o Orientation, in Tuple4DReader, out Tuple4D) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.InverseTransform4D(in, out)
	}
	q.InverseTransform4D(in, out)
	return nil
}

// TransformQuaternion composes o with the rotation in: out = o * in.
func TransformQuaternion(o Orientation, in QuaternionReader, out QuaternionWriter) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.TransformQuaternion(in, out)
	}
	q.TransformQuaternion(in, out)
	return nil
}

// InverseTransformQuaternion composes the inverse of o with the rotation in.
func InverseTransformQuaternion(o Orientation, in QuaternionReader, out QuaternionWriter) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.InverseTransformQuaternion(in, out)
	}
	q.InverseTransformQuaternion(in, out)
	return nil
}

// TransformRotationMatrix composes o with the rotation matrix in.
func TransformRotationMatrix(o Orientation, in, out *RotationMatrix) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.TransformRotationMatrix(in, out)
	}
	q.TransformRotationMatrix(in, out)
	return nil
}

// InverseTransformRotationMatrix composes the inverse of o with the rotation matrix in.
func InverseTransformRotationMatrix(o Orientation, in, out *RotationMatrix) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.InverseTransformRotationMatrix(in, out)
	}
	q.InverseTransformRotationMatrix(in, out)
	return nil
}

// TransformMatrix applies the similarity transform R * in * R^T, R being the rotation of o.
func TransformMatrix(o Orientation, in Matrix3DReader, out *Matrix3D) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.TransformMatrix(in, out)
	}
	q.TransformMatrix(in, out)
	return nil
}

// InverseTransformMatrix applies R^T * in * R.
func InverseTransformMatrix(o Orientation, in Matrix3DReader, out *Matrix3D) error {
	rm, q := operatorOf(o)
	if rm != nil {
		return rm.InverseTransformMatrix(in, out)
	}
	q.InverseTransformMatrix(in, out)
	return nil
}
