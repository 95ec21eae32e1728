package spatialmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestTupleAccessors(t *testing.T) {
	p2 := NewPoint2D(1, 2)
	p2.SetX(3)
	p2.SetY(4)
	test.That(t, p2.X(), test.ShouldEqual, 3)
	test.That(t, p2.Y(), test.ShouldEqual, 4)
	test.That(t, p2.String(), test.ShouldEqual, "(3, 4)")

	p3 := NewPoint3DFromR3(r3.Vector{X: 1, Y: 2, Z: 3})
	p3.SetZ(-3)
	test.That(t, p3.R3(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: -3})
	test.That(t, p3.String(), test.ShouldEqual, "(1, 2, -3)")

	v3 := NewVector3D(0, 0, 0)
	v3.Set(p3.X(), p3.Y(), p3.Z())
	test.That(t, v3.EpsilonEquals(p3, 0), test.ShouldBeTrue)
	test.That(t, NewVector3DFromR3(p3.R3()).R3(), test.ShouldResemble, p3.R3())

	v4 := NewVector4D(1, 2, 3, 4)
	test.That(t, v4.S(), test.ShouldEqual, 4)
	test.That(t, v4.EpsilonEquals(NewVector4D(1, 2, 3, 4.05), 0.1), test.ShouldBeTrue)
	test.That(t, v4.EpsilonEquals(NewVector4D(1, 2, 3, 4.05), 0.01), test.ShouldBeFalse)
}

func TestTupleNaN(t *testing.T) {
	test.That(t, NewPoint2D(0, 0).ContainsNaN(), test.ShouldBeFalse)
	test.That(t, NewVector2D(math.NaN(), 0).ContainsNaN(), test.ShouldBeTrue)
	test.That(t, NewPoint3D(0, 0, math.NaN()).ContainsNaN(), test.ShouldBeTrue)
	test.That(t, NewVector4D(0, 0, 0, math.NaN()).ContainsNaN(), test.ShouldBeTrue)

	// NaN is never within any tolerance
	nan := NewPoint3D(math.NaN(), 0, 0)
	test.That(t, nan.EpsilonEquals(nan, math.Inf(1)), test.ShouldBeFalse)
}

func TestMatrix3D(t *testing.T) {
	m := NewMatrix3D(1, 2, 3, 4, 5, 6, 7, 8, 10)
	r, c := m.Dims()
	test.That(t, r, test.ShouldEqual, 3)
	test.That(t, c, test.ShouldEqual, 3)
	test.That(t, m.At(1, 2), test.ShouldEqual, 6)
	test.That(t, m.T().At(2, 1), test.ShouldEqual, 6)
	test.That(t, mat.Det(m), test.ShouldAlmostEqual, -3)

	m.Set(2, 2, math.NaN())
	test.That(t, m.ContainsNaN(), test.ShouldBeTrue)
	m.SetMatrix(NewMatrix3DFromMgl(mgl64.Ident3()))
	test.That(t, m.ContainsNaN(), test.ShouldBeFalse)
	test.That(t, m.EpsilonEquals(NewIdentityRotationMatrix(), 0), test.ShouldBeTrue)

	copied := NewMatrix3DFrom(mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	test.That(t, copied.At(2, 0), test.ShouldEqual, 7)
	test.That(t, copied.Mgl().At(2, 0), test.ShouldEqual, 7)
	test.That(t, NewMatrix3DFromMgl(copied.Mgl()).EpsilonEquals(copied, 0), test.ShouldBeTrue)
}
