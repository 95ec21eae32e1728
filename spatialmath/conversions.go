package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

const (
	// Beyond 1 minus this value, the pitch argument (the sine of the pitch) is considered to be in gimbal lock.
	gimbalLockEpsilon = 1e-12
	// Below this norm, the vector part of a quaternion carries no usable axis.
	zeroRotationEpsilon = 1e-12
	// Below this angle, sin(theta/2)/theta is replaced by its Taylor expansion.
	smallAngleEpsilon = 1e-7
)

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// The angle is in (-pi, pi]. For the identity the axis defaults to (1, 0, 0).
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) R4AA {
	denom := Norm(q)
	if denom < zeroRotationEpsilon {
		return R4AA{0, 1, 0, 0}
	}

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}
	return R4AA{angle, q.Imag / denom, q.Jmag / denom, q.Kmag / denom}
}

// QuatToRotationVector converts a quat to a rotation vector, i.e. an R3 axis angle. As the angle goes to zero
// the result degenerates continuously toward (0, 0, 0).
func QuatToRotationVector(q quat.Number) RotationVector {
	denom := Norm(q)
	var scale float64
	switch {
	case denom >= zeroRotationEpsilon:
		angle := 2 * math.Atan2(denom, math.Abs(q.Real))
		if q.Real < 0 {
			angle *= -1
		}
		scale = angle / denom
	case q.Real != 0:
		// limit of angle / denom as denom goes to 0
		scale = 2 / q.Real
	default:
		return RotationVector{}
	}
	return RotationVector{X: q.Imag * scale, Y: q.Jmag * scale, Z: q.Kmag * scale}
}

// RotationVectorToQuat converts a rotation vector to a unit quaternion.
func RotationVectorToQuat(rv RotationVector) quat.Number {
	theta := r3.Vector(rv).Norm()
	var scale float64
	if theta < smallAngleEpsilon {
		scale = 0.5 - theta*theta/48
	} else {
		scale = math.Sin(theta/2) / theta
	}
	return quat.Number{Real: math.Cos(theta / 2), Imag: rv.X * scale, Jmag: rv.Y * scale, Kmag: rv.Z * scale}
}

// QuatToEulerAngles converts a rotation quaternion to yaw-pitch-roll angles. The quaternion does not need to
// be unitary.
//
// Gimbal lock is detected from the pitch argument 2(s*y - x*z) rather than from the pitch itself, which is
// ill-conditioned near +/- pi/2. When locked, roll is fixed to 0 and yaw holds the combined rotation.
// See the following wikipedia page for the formulas used here:
// https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles#Quaternion_to_Euler_angles_conversion
func QuatToEulerAngles(q quat.Number) EulerAngles {
	norm := quat.Abs(q)
	if norm == 0 {
		return EulerAngles{}
	}
	s := q.Real / norm
	x := q.Imag / norm
	y := q.Jmag / norm
	z := q.Kmag / norm

	pitchArgument := 2 * (s*y - x*z)
	if math.Abs(pitchArgument) > 1-gimbalLockEpsilon {
		return EulerAngles{
			Roll:  0,
			Pitch: math.Copysign(math.Pi/2, pitchArgument),
			Yaw:   trimAngleMinusPiToPi(2 * math.Atan2(z, s)),
		}
	}

	return EulerAngles{
		Roll:  math.Atan2(2*(s*x+y*z), 1-2*(x*x+y*y)),
		Pitch: math.Asin(pitchArgument),
		Yaw:   math.Atan2(2*(s*z+x*y), 1-2*(y*y+z*z)),
	}
}

// QuatToRotationMatrix converts a quaternion to a rotation matrix. A non-unit quaternion is scaled on the fly;
// the zero quaternion yields identity.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	normSquared := q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag
	if normSquared == 0 {
		return NewIdentityRotationMatrix()
	}
	d := 2 / normSquared

	x, y, z, s := q.Imag, q.Jmag, q.Kmag, q.Real
	xx, yy, zz := d*x*x, d*y*y, d*z*z
	xy, xz, yz := d*x*y, d*x*z, d*y*z
	xs, ys, zs := d*x*s, d*y*s, d*z*s

	return &RotationMatrix{[9]float64{
		1 - yy - zz, xy - zs, xz + ys,
		xy + zs, 1 - xx - zz, yz - xs,
		xz - ys, yz + xs, 1 - xx - yy,
	}}
}

// RotationMatrixToQuat converts a rotation matrix to a unit quaternion with a non-negative scalar part.
//
// It picks the largest of the four diagonal-based candidates for 4s², 4x², 4y² and 4z² as the pivot, which
// avoids the catastrophic cancellation of the trace-only formula for angles close to pi.
func RotationMatrixToQuat(rm *RotationMatrix) quat.Number {
	m := rm.mat
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]

	candidateS := 1 + m00 + m11 + m22
	candidateX := 1 + m00 - m11 - m22
	candidateY := 1 - m00 + m11 - m22
	candidateZ := 1 - m00 - m11 + m22

	var s, x, y, z float64
	switch math.Max(math.Max(candidateS, candidateX), math.Max(candidateY, candidateZ)) {
	case candidateS:
		s = 0.5 * math.Sqrt(candidateS)
		f := 0.25 / s
		x = (m21 - m12) * f
		y = (m02 - m20) * f
		z = (m10 - m01) * f
	case candidateX:
		x = 0.5 * math.Sqrt(candidateX)
		f := 0.25 / x
		s = (m21 - m12) * f
		y = (m01 + m10) * f
		z = (m02 + m20) * f
	case candidateY:
		y = 0.5 * math.Sqrt(candidateY)
		f := 0.25 / y
		s = (m02 - m20) * f
		x = (m01 + m10) * f
		z = (m12 + m21) * f
	default:
		z = 0.5 * math.Sqrt(candidateZ)
		f := 0.25 / z
		s = (m10 - m01) * f
		x = (m02 + m20) * f
		y = (m12 + m21) * f
	}

	if s < 0 {
		s, x, y, z = -s, -x, -y, -z
	}
	return quat.Number{Real: s, Imag: x, Jmag: y, Kmag: z}
}

// EulerAnglesToRotationMatrix computes Rz(yaw) * Ry(pitch) * Rx(roll) directly.
func EulerAnglesToRotationMatrix(ea EulerAngles) *RotationMatrix {
	cr, sr := math.Cos(ea.Roll), math.Sin(ea.Roll)
	cp, sp := math.Cos(ea.Pitch), math.Sin(ea.Pitch)
	cy, sy := math.Cos(ea.Yaw), math.Sin(ea.Yaw)

	return &RotationMatrix{[9]float64{
		cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr,
		sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr,
		-sp, cp * sr, cp * cr,
	}}
}

// RotationMatrixToEulerAngles extracts the yaw-pitch-roll angles of a rotation matrix, with the same gimbal
// lock convention as QuatToEulerAngles.
func RotationMatrixToEulerAngles(rm *RotationMatrix) EulerAngles {
	m := rm.mat
	pitchArgument := -m[6]
	if math.Abs(pitchArgument) > 1-gimbalLockEpsilon {
		return EulerAngles{
			Roll:  0,
			Pitch: math.Copysign(math.Pi/2, pitchArgument),
			Yaw:   math.Atan2(-m[1], m[4]),
		}
	}
	return EulerAngles{
		Roll:  math.Atan2(m[7], m[8]),
		Pitch: math.Asin(pitchArgument),
		Yaw:   math.Atan2(m[3], m[0]),
	}
}

// Norm returns the norm of the quaternion, i.e. the sqrt of the squares of the imaginary parts.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// trimAngleMinusPiToPi wraps an angle into (-pi, pi].
func trimAngleMinusPiToPi(angle float64) float64 {
	trimmed := math.Remainder(angle, 2*math.Pi)
	if trimmed <= -math.Pi {
		trimmed += 2 * math.Pi
	}
	return trimmed
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}
