package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{Real: math.Cos(th / 2.), Imag: math.Sin(th / 2.), Jmag: 0, Kmag: 0} // in quaternion representation
	aa45x = &R4AA{th, 1., 0., 0.}                                                           // in axis-angle representation
	ea45x = &EulerAngles{Roll: th, Pitch: 0, Yaw: 0}                                        // in euler angle representation
	rv45x = &RotationVector{X: th, Y: 0, Z: 0}                                              // in rotation vector representation

	// in rotation matrix representation
	rm45x = NewRotationMatrix(1, 0, 0, 0, math.Cos(th), -math.Sin(th), 0, math.Sin(th), math.Cos(th))
)

func TestZeroOrientation(t *testing.T) {
	zero := NewZeroOrientation()
	test.That(t, zero.AxisAngles(), test.ShouldResemble, NewR4AA())
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{Real: 1, Imag: 0, Jmag: 0, Kmag: 0})
	test.That(t, zero.EulerAngles(), test.ShouldResemble, NewEulerAngles())
	test.That(t, zero.RotationVector(), test.ShouldResemble, RotationVector{})
	test.That(t, zero.RotationMatrix(), test.ShouldResemble, NewIdentityRotationMatrix())
}

func check45x(t *testing.T, o Orientation) {
	t.Helper()
	test.That(t, o.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, o.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, o.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, o.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, o.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, o.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, o.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, o.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, o.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, o.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, o.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	rv := o.RotationVector()
	test.That(t, rv.EpsilonEquals(rv45x, 1e-10), test.ShouldBeTrue)
	test.That(t, o.RotationMatrix().EpsilonEquals(rm45x, 1e-10), test.ShouldBeTrue)
}

func TestQuaternions(t *testing.T) {
	qq45x := Quaternion(q45x)
	check45x(t, &qq45x)
}

func TestEulerAngles(t *testing.T) {
	check45x(t, ea45x)
}

func TestAxisAngles(t *testing.T) {
	check45x(t, aa45x)
}

func TestRotationVector(t *testing.T) {
	check45x(t, rv45x)
}

func TestRotationMatrix(t *testing.T) {
	check45x(t, rm45x)
}

func TestSlerp(t *testing.T) {
	q1 := q45x
	q2 := quat.Conj(q45x)
	s1 := slerp(q1, q2, 0.25)
	s2 := slerp(q1, q2, 0.5)

	expect1 := quat.Number{Real: 0.9808, Imag: 0.1951, Jmag: 0, Kmag: 0}
	expect2 := quat.Number{Real: 1, Imag: 0, Jmag: 0, Kmag: 0}

	test.That(t, s1.Real, test.ShouldAlmostEqual, expect1.Real, 0.001)
	test.That(t, s1.Imag, test.ShouldAlmostEqual, expect1.Imag, 0.001)
	test.That(t, s1.Jmag, test.ShouldAlmostEqual, expect1.Jmag, 0.001)
	test.That(t, s1.Kmag, test.ShouldAlmostEqual, expect1.Kmag, 0.001)
	test.That(t, s2.Real, test.ShouldAlmostEqual, expect2.Real)
	test.That(t, s2.Imag, test.ShouldAlmostEqual, expect2.Imag)
	test.That(t, s2.Jmag, test.ShouldAlmostEqual, expect2.Jmag)
	test.That(t, s2.Kmag, test.ShouldAlmostEqual, expect2.Kmag)

	// the end points are reached
	test.That(t, QuaternionAlmostEqual(slerp(q1, q2, 0), q1, 1e-12), test.ShouldBeTrue)
	test.That(t, QuaternionAlmostEqual(slerp(q1, q2, 1), q2, 1e-12), test.ShouldBeTrue)

	// the shortest arc is taken through the double cover
	s3 := slerp(q1, Flip(q2), 0.5)
	test.That(t, QuaternionAlmostEqual(s3, expect2, 1e-9), test.ShouldBeTrue)

	// nearly identical rotations fall back to a normalized lerp
	s4 := slerp(q1, quat.Number{Real: q1.Real, Imag: q1.Imag + 1e-9}, 0.5)
	test.That(t, Norm(s4)*Norm(s4)+s4.Real*s4.Real, test.ShouldAlmostEqual, 1)
}

func TestInterpolate(t *testing.T) {
	from := &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
	to := NewEulerAnglesFromYawPitchRoll(math.Pi/2, 0, 0)
	for _, by := range []float64{0, 0.25, 0.5, 1} {
		mid := Interpolate(from, to, by)
		expected := &R4AA{Theta: by * math.Pi / 2, RX: 0, RY: 0, RZ: 1}
		test.That(t, OrientationGeometricallyEquals(mid, expected, 1e-9), test.ShouldBeTrue)
	}
}

func TestOrientationTransform(t *testing.T) {
	aa := &R4AA{Theta: math.Pi / 2., RX: 0., RY: 1., RZ: 0.}
	rv := &RotationVector{X: 0, Y: math.Pi / 2, Z: 0}
	rvResult := aa.RotationVector()
	aaResult := rv.AxisAngles()
	t.Logf("result as rotation vector: X: %.2f, Y: %.2f, Z: %.2f", rvResult.X, rvResult.Y, rvResult.Z)
	test.That(t, rvResult.X, test.ShouldAlmostEqual, rv.X)
	test.That(t, rvResult.Y, test.ShouldAlmostEqual, rv.Y)
	test.That(t, rvResult.Z, test.ShouldAlmostEqual, rv.Z)
	t.Logf("result as axis angle: Theta: %.2f, X: %.2f, Y: %.2f, Z: %.2f", aaResult.Theta, aaResult.RX, aaResult.RY, aaResult.RZ)
	test.That(t, aaResult.Theta, test.ShouldAlmostEqual, aa.Theta)
	test.That(t, aaResult.RX, test.ShouldAlmostEqual, aa.RX)
	test.That(t, aaResult.RY, test.ShouldAlmostEqual, aa.RY)
	test.That(t, aaResult.RZ, test.ShouldAlmostEqual, aa.RZ)
}

func TestOrientationBetween(t *testing.T) {
	aa := &R4AA{Theta: math.Pi / 2., RX: 0., RY: 1., RZ: 0.}
	btw := OrientationBetween(aa, rv45x)

	// applying the difference after the first orientation gives the second
	qa := Quaternion(aa.Quaternion())
	var composed Quaternion
	test.That(t, TransformQuaternion(btw, &qa, &composed), test.ShouldBeNil)
	test.That(t, OrientationGeometricallyEquals(&composed, rv45x, 1e-9), test.ShouldBeTrue)

	c1, s1 := math.Cos(th/2), math.Sin(th/2)
	c2, s2 := math.Cos(math.Pi/4), math.Sin(math.Pi/4)
	result := quat.Number{Real: c1 * c2, Imag: c2 * s1, Jmag: -c1 * s2, Kmag: -s1 * s2}
	test.That(t, QuaternionAlmostEqual(btw.Quaternion(), result, 1e-12), test.ShouldBeTrue)

	test.That(t, OrientationBetween(rv45x, rv45x).AxisAngles().Theta, test.ShouldAlmostEqual, 0)
}
