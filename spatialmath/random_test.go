package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// Reference quaternions [x, y, z, w] from https://www.andre-gaschler.com/rotationconverter/
var referenceOrientations = []struct {
	name string
	o    Orientation
	q    quat.Number
}{
	{"axis angle xyz", &R4AA{1, 1, 1, 1}, quat.Number{Imag: 0.2767965, Jmag: 0.2767965, Kmag: 0.2767965, Real: 0.8775826}},
	{"axis angle x", &R4AA{1, 1, 0, 0}, quat.Number{Imag: 0.4794255, Real: 0.8775826}},
	{"axis angle y", &R4AA{1, 0, 1, 0}, quat.Number{Jmag: 0.4794255, Real: 0.8775826}},
	{"axis angle z", &R4AA{1, 0, 0, 1}, quat.Number{Kmag: 0.4794255, Real: 0.8775826}},
	{"euler roll", &EulerAngles{Roll: 1}, quat.Number{Imag: 0.4794255, Real: 0.8775826}},
	{"euler roll pitch", &EulerAngles{Roll: 1, Pitch: 1}, quat.Number{Imag: 0.4207355, Jmag: 0.4207355, Kmag: 0.2298488, Real: 0.7701512}},
	{"euler roll yaw", &EulerAngles{Roll: 1, Yaw: 1}, quat.Number{Imag: 0.4207355, Jmag: -0.2298488, Kmag: 0.4207355, Real: 0.7701512}},
	{"rotation vector z", &RotationVector{Z: math.Pi / 2}, quat.Number{Kmag: 0.7071068, Real: 0.7071068}},
	{"rotation matrix x", NewRotationMatrix(1, 0, 0, 0, 0, -1, 0, 1, 0), quat.Number{Imag: 0.7071068, Real: 0.7071068}},
}

func TestReferenceQuaternions(t *testing.T) {
	for _, ref := range referenceOrientations {
		t.Run(ref.name, func(t *testing.T) {
			if aa, ok := ref.o.(*R4AA); ok {
				aa.Normalize()
			}
			q := ref.o.Quaternion()
			test.That(t, q.Real, test.ShouldAlmostEqual, ref.q.Real, 1e-5)
			test.That(t, q.Imag, test.ShouldAlmostEqual, ref.q.Imag, 1e-5)
			test.That(t, q.Jmag, test.ShouldAlmostEqual, ref.q.Jmag, 1e-5)
			test.That(t, q.Kmag, test.ShouldAlmostEqual, ref.q.Kmag, 1e-5)

			// every other representation describes the same rotation
			for _, other := range []Orientation{ref.o.AxisAngles(), ref.o.EulerAngles(), ref.o.RotationMatrix()} {
				test.That(t, OrientationGeometricallyEquals(ref.o, other, 1e-9), test.ShouldBeTrue)
			}
			rv := ref.o.RotationVector()
			test.That(t, OrientationGeometricallyEquals(ref.o, &rv, 1e-9), test.ShouldBeTrue)
		})
	}
}

func TestAxisAnglesSurviveQuaternion(t *testing.T) {
	for _, ref := range referenceOrientations {
		aa, ok := ref.o.(*R4AA)
		if !ok {
			continue
		}
		aa.Normalize()
		q := Quaternion(aa.Quaternion())
		test.That(t, q.AxisAngles().EpsilonEquals(aa, 1e-9), test.ShouldBeTrue)
	}
}

func TestRotationVectorToAxisAngle(t *testing.T) {
	for _, rv := range []RotationVector{{1, 1, 1}, {1, 0, 0}, {0, -2, 0}, {0, 0, 3}} {
		q := Quaternion(rv.Quaternion())
		back := q.RotationVector()
		test.That(t, back.EpsilonEquals(&rv, 1e-9), test.ShouldBeTrue)

		aa := rv.AxisAngles()
		test.That(t, aa.Theta, test.ShouldAlmostEqual, rv.R3().Norm())
		fromAxisAngle := aa.ToR3()
		test.That(t, fromAxisAngle.EpsilonEquals(&rv, 1e-12), test.ShouldBeTrue)
	}
}

func TestSingleAxisRotationVectorToEuler(t *testing.T) {
	for _, tc := range []struct {
		rv RotationVector
		ea EulerAngles
	}{
		{RotationVector{Y: math.Pi / 4}, EulerAngles{Pitch: math.Pi / 4}},
		{RotationVector{Z: -1}, EulerAngles{Yaw: -1}},
		{RotationVector{X: 0.5}, EulerAngles{Roll: 0.5}},
		{RotationVector{X: -3}, EulerAngles{Roll: -3}},
	} {
		ea := tc.rv.EulerAngles()
		test.That(t, ea.EpsilonEquals(&tc.ea, 1e-9), test.ShouldBeTrue)

		q := Quaternion(tc.ea.Quaternion())
		back := q.RotationVector()
		test.That(t, back.EpsilonEquals(&tc.rv, 1e-9), test.ShouldBeTrue)
	}
}
