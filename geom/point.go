// SPDX-License-Identifier: MIT
package geom

import (
	"fmt"

	"github.com/katalvlaran/penrose/numfield"
)

// Point is a point in the Euclidean plane, with coordinates in K.
type Point struct {
	X, Y numfield.Elt
}

// NewPoint builds the point (x, y).
func NewPoint(x, y numfield.Elt) Point { return Point{X: x, Y: y} }

// Equal reports exact (componentwise) equality.
func (p Point) Equal(o Point) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// Sub returns the Vector from o to p (p - o).
func (p Point) Sub(o Point) Vector {
	return Vector{X: numfield.Sub(p.X, o.X), Y: numfield.Sub(p.Y, o.Y)}
}

// Translate returns p translated by (dx, dy).
func (p Point) Translate(dx, dy numfield.Elt) Point {
	return Point{X: numfield.Add(p.X, dx), Y: numfield.Add(p.Y, dy)}
}

// TranslateBy returns p translated by the vector v.
func (p Point) TranslateBy(v Vector) Point {
	return p.Translate(v.X, v.Y)
}

// Transform returns p mapped through the affine transform t.
func (p Point) Transform(t AffineTransform) Point {
	return Point{
		X: numfield.Add(numfield.Add(numfield.Mul(t.a, p.X), numfield.Mul(t.b, p.Y)), t.c),
		Y: numfield.Add(numfield.Add(numfield.Mul(t.d, p.X), numfield.Mul(t.e, p.Y)), t.f),
	}
}

// Rotate returns p rotated by n*18 degrees about the origin.
func (p Point) Rotate(n int) Point {
	return p.Transform(Rotation(n))
}

// BBox returns the degenerate rectangle {p}.
func (p Point) BBox() Rectangle {
	return NewRectangleFromPoints(p, p)
}

// AsVector returns the position vector of p (the vector from the origin).
func (p Point) AsVector() Vector {
	return Vector{X: p.X, Y: p.Y}
}

// String renders p for debugging.
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Vector is an offset in the Euclidean plane, with components in K. Vector
// and Point are deliberately disjoint types: Go's type system, rather than
// a runtime isinstance check, enforces that a Vector is never mistaken for
// a Point.
type Vector struct {
	X, Y numfield.Elt
}

// NewVector builds the vector (x, y).
func NewVector(x, y numfield.Elt) Vector { return Vector{X: x, Y: y} }

// Equal reports exact (componentwise) equality.
func (v Vector) Equal(o Vector) bool {
	return v.X.Equal(o.X) && v.Y.Equal(o.Y)
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: numfield.Neg(v.X), Y: numfield.Neg(v.Y)}
}

// Add returns v+o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: numfield.Add(v.X, o.X), Y: numfield.Add(v.Y, o.Y)}
}

// Sub returns v-o.
func (v Vector) Sub(o Vector) Vector {
	return v.Add(o.Neg())
}

// Scale returns v scaled by the scalar s.
func (v Vector) Scale(s numfield.Elt) Vector {
	return Vector{X: numfield.Mul(s, v.X), Y: numfield.Mul(s, v.Y)}
}

// Dot returns the inner product v . o.
func (v Vector) Dot(o Vector) numfield.Elt {
	return numfield.Add(numfield.Mul(v.X, o.X), numfield.Mul(v.Y, o.Y))
}

// Cross returns the scalar cross product v x o = v.X*o.Y - v.Y*o.X.
//
// Its sign tells which side of v the vector o points to: positive if o is
// a counterclockwise turn from v (0 < angle < 180 degrees), negative if
// clockwise, zero if collinear.
func (v Vector) Cross(o Vector) numfield.Elt {
	return numfield.Sub(numfield.Mul(v.X, o.Y), numfield.Mul(v.Y, o.X))
}

// Transform returns v mapped through the linear part of t only (the
// affine translation c, f is ignored — a Vector is an offset, not a
// position, so translating it is meaningless).
func (v Vector) Transform(t AffineTransform) Vector {
	return Vector{
		X: numfield.Add(numfield.Mul(t.a, v.X), numfield.Mul(t.b, v.Y)),
		Y: numfield.Add(numfield.Mul(t.d, v.X), numfield.Mul(t.e, v.Y)),
	}
}

// Rotate returns v rotated by n*18 degrees.
func (v Vector) Rotate(n int) Vector {
	return v.Transform(Rotation(n))
}

// String renders v for debugging.
func (v Vector) String() string {
	return fmt.Sprintf("<%s, %s>", v.X, v.Y)
}
