package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tuple2DReader is a read-only view of a 2 component tuple.
type Tuple2DReader interface {
	X() float64
	Y() float64
}

// Tuple2D is a mutable 2 component tuple.
type Tuple2D interface {
	Tuple2DReader
	Set(x, y float64)
}

// Tuple3DReader is a read-only view of a 3 component tuple.
type Tuple3DReader interface {
	X() float64
	Y() float64
	Z() float64
}

// Tuple3D is a mutable 3 component tuple.
type Tuple3D interface {
	Tuple3DReader
	Set(x, y, z float64)
}

// Tuple4DReader is a read-only view of a 4 component tuple made of a vector part (x, y, z) and a scalar part s.
type Tuple4DReader interface {
	X() float64
	Y() float64
	Z() float64
	S() float64
}

// Tuple4D is a mutable 4 component tuple.
type Tuple4D interface {
	Tuple4DReader
	Set(x, y, z, s float64)
}

// Point2D is a location in the XY plane.
type Point2D struct {
	x, y float64
}

// NewPoint2D returns a new 2D point.
func NewPoint2D(x, y float64) *Point2D {
	return &Point2D{x, y}
}

// X returns the x component.
func (p *Point2D) X() float64 { return p.x }

// Y returns the y component.
func (p *Point2D) Y() float64 { return p.y }

// Set sets both components.
func (p *Point2D) Set(x, y float64) { p.x, p.y = x, y }

// SetX sets the x component.
func (p *Point2D) SetX(x float64) { p.x = x }

// SetY sets the y component.
func (p *Point2D) SetY(y float64) { p.y = y }

// ContainsNaN returns whether any component is NaN.
func (p *Point2D) ContainsNaN() bool { return containsNaN(p.x, p.y) }

// EpsilonEquals compares the two tuples component-wise.
func (p *Point2D) EpsilonEquals(other Tuple2DReader, epsilon float64) bool {
	return scalar.EqualWithinAbs(p.x, other.X(), epsilon) && scalar.EqualWithinAbs(p.y, other.Y(), epsilon)
}

func (p *Point2D) String() string { return fmt.Sprintf("(%v, %v)", p.x, p.y) }

// Vector2D is a free vector in the XY plane.
type Vector2D struct {
	x, y float64
}

// NewVector2D returns a new 2D vector.
func NewVector2D(x, y float64) *Vector2D {
	return &Vector2D{x, y}
}

// X returns the x component.
func (v *Vector2D) X() float64 { return v.x }

// Y returns the y component.
func (v *Vector2D) Y() float64 { return v.y }

// Set sets both components.
func (v *Vector2D) Set(x, y float64) { v.x, v.y = x, y }

// ContainsNaN returns whether any component is NaN.
func (v *Vector2D) ContainsNaN() bool { return containsNaN(v.x, v.y) }

// EpsilonEquals compares the two tuples component-wise.
func (v *Vector2D) EpsilonEquals(other Tuple2DReader, epsilon float64) bool {
	return scalar.EqualWithinAbs(v.x, other.X(), epsilon) && scalar.EqualWithinAbs(v.y, other.Y(), epsilon)
}

func (v *Vector2D) String() string { return fmt.Sprintf("(%v, %v)", v.x, v.y) }

// Point3D is a location in 3D space.
type Point3D struct {
	x, y, z float64
}

// NewPoint3D returns a new 3D point.
func NewPoint3D(x, y, z float64) *Point3D {
	return &Point3D{x, y, z}
}

// NewPoint3DFromR3 converts an r3.Vector into a point.
func NewPoint3DFromR3(v r3.Vector) *Point3D {
	return &Point3D{v.X, v.Y, v.Z}
}

// X returns the x component.
func (p *Point3D) X() float64 { return p.x }

// Y returns the y component.
func (p *Point3D) Y() float64 { return p.y }

// Z returns the z component.
func (p *Point3D) Z() float64 { return p.z }

// Set sets the three components.
func (p *Point3D) Set(x, y, z float64) { p.x, p.y, p.z = x, y, z }

// SetX sets the x component.
func (p *Point3D) SetX(x float64) { p.x = x }

// SetY sets the y component.
func (p *Point3D) SetY(y float64) { p.y = y }

// SetZ sets the z component.
func (p *Point3D) SetZ(z float64) { p.z = z }

// R3 returns the point as an r3.Vector.
func (p *Point3D) R3() r3.Vector { return r3.Vector{X: p.x, Y: p.y, Z: p.z} }

// ContainsNaN returns whether any component is NaN.
func (p *Point3D) ContainsNaN() bool { return containsNaN(p.x, p.y, p.z) }

// EpsilonEquals compares the two tuples component-wise.
func (p *Point3D) EpsilonEquals(other Tuple3DReader, epsilon float64) bool {
	return tuple3DEpsilonEquals(p, other, epsilon)
}

func (p *Point3D) String() string { return fmt.Sprintf("(%v, %v, %v)", p.x, p.y, p.z) }

// Vector3D is a free vector in 3D space.
type Vector3D struct {
	x, y, z float64
}

// NewVector3D returns a new 3D vector.
func NewVector3D(x, y, z float64) *Vector3D {
	return &Vector3D{x, y, z}
}

// NewVector3DFromR3 converts an r3.Vector.
func NewVector3DFromR3(v r3.Vector) *Vector3D {
	return &Vector3D{v.X, v.Y, v.Z}
}

// X returns the x component.
func (v *Vector3D) X() float64 { return v.x }

// Y returns the y component.
func (v *Vector3D) Y() float64 { return v.y }

// Z returns the z component.
func (v *Vector3D) Z() float64 { return v.z }

// Set sets the three components.
func (v *Vector3D) Set(x, y, z float64) { v.x, v.y, v.z = x, y, z }

// R3 returns the vector as an r3.Vector.
func (v *Vector3D) R3() r3.Vector { return r3.Vector{X: v.x, Y: v.y, Z: v.z} }

// ContainsNaN returns whether any component is NaN.
func (v *Vector3D) ContainsNaN() bool { return containsNaN(v.x, v.y, v.z) }

// EpsilonEquals compares the two tuples component-wise.
func (v *Vector3D) EpsilonEquals(other Tuple3DReader, epsilon float64) bool {
	return tuple3DEpsilonEquals(v, other, epsilon)
}

func (v *Vector3D) String() string { return fmt.Sprintf("(%v, %v, %v)", v.x, v.y, v.z) }

// Vector4D is a scalar weight s together with an embedded 3D vector (x, y, z). Rotations only act on the
// vector part. It shares its shape with a quaternion but not its semantics.
type Vector4D struct {
	x, y, z, s float64
}

// NewVector4D returns a new 4D vector.
func NewVector4D(x, y, z, s float64) *Vector4D {
	return &Vector4D{x, y, z, s}
}

// X returns the x component.
func (v *Vector4D) X() float64 { return v.x }

// Y returns the y component.
func (v *Vector4D) Y() float64 { return v.y }

// Z returns the z component.
func (v *Vector4D) Z() float64 { return v.z }

// S returns the scalar component.
func (v *Vector4D) S() float64 { return v.s }

// Set sets the four components.
func (v *Vector4D) Set(x, y, z, s float64) { v.x, v.y, v.z, v.s = x, y, z, s }

// ContainsNaN returns whether any component is NaN.
func (v *Vector4D) ContainsNaN() bool { return containsNaN(v.x, v.y, v.z, v.s) }

// EpsilonEquals compares the two tuples component-wise.
func (v *Vector4D) EpsilonEquals(other Tuple4DReader, epsilon float64) bool {
	return tuple3DEpsilonEquals(v, other, epsilon) && scalar.EqualWithinAbs(v.s, other.S(), epsilon)
}

func (v *Vector4D) String() string { return fmt.Sprintf("(%v, %v, %v, %v)", v.x, v.y, v.z, v.s) }

func tuple3DEpsilonEquals(a, b Tuple3DReader, epsilon float64) bool {
	return scalar.EqualWithinAbs(a.X(), b.X(), epsilon) &&
		scalar.EqualWithinAbs(a.Y(), b.Y(), epsilon) &&
		scalar.EqualWithinAbs(a.Z(), b.Z(), epsilon)
}

func containsNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
