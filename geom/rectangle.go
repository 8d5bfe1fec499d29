// SPDX-License-Identifier: MIT
package geom

import (
	"fmt"

	"github.com/katalvlaran/penrose/numfield"
)

// Rectangle is an axis-aligned bounding box, inclusive of its edges.
// Rectangle{} (the zero value) is never produced by this package; every
// constructor normalizes Lo/Hi so Lo.X <= Hi.X and Lo.Y <= Hi.Y.
type Rectangle struct {
	Lo, Hi Point
}

// NewRectangleFromPoints returns the smallest Rectangle containing both p
// and q, regardless of their relative order.
func NewRectangleFromPoints(p, q Point) Rectangle {
	return Rectangle{
		Lo: NewPoint(minElt(p.X, q.X), minElt(p.Y, q.Y)),
		Hi: NewPoint(maxElt(p.X, q.X), maxElt(p.Y, q.Y)),
	}
}

// NewRectangle returns the smallest Rectangle containing the corner
// points (x1,y1) and (x2,y2), regardless of coordinate order.
func NewRectangle(x1, y1, x2, y2 numfield.Elt) Rectangle {
	return NewRectangleFromPoints(NewPoint(x1, y1), NewPoint(x2, y2))
}

// NewRectangleFromPointVector returns the Rectangle spanned by p and p+v.
func NewRectangleFromPointVector(p Point, v Vector) Rectangle {
	return NewRectangleFromPoints(p, p.TranslateBy(v))
}

// Union returns the smallest Rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	return Rectangle{
		Lo: NewPoint(minElt(r.Lo.X, o.Lo.X), minElt(r.Lo.Y, o.Lo.Y)),
		Hi: NewPoint(maxElt(r.Hi.X, o.Hi.X), maxElt(r.Hi.Y, o.Hi.Y)),
	}
}

// BBoxesOverlap reports whether r and o share at least one point. Touching
// at an edge or corner counts as overlap, matching the fast-reject use the
// rest of this package makes of it (a conservative pre-filter ahead of an
// exact SAT check, never the final word on intersection).
func BBoxesOverlap(r, o Rectangle) bool {
	if r.Hi.X.Less(o.Lo.X) || o.Hi.X.Less(r.Lo.X) {
		return false
	}
	if r.Hi.Y.Less(o.Lo.Y) || o.Hi.Y.Less(r.Lo.Y) {
		return false
	}
	return true
}

// Width returns Hi.X - Lo.X.
func (r Rectangle) Width() numfield.Elt { return numfield.Sub(r.Hi.X, r.Lo.X) }

// Height returns Hi.Y - Lo.Y.
func (r Rectangle) Height() numfield.Elt { return numfield.Sub(r.Hi.Y, r.Lo.Y) }

func (r Rectangle) String() string {
	return fmt.Sprintf("[%s .. %s]", r.Lo, r.Hi)
}

func minElt(a, b numfield.Elt) numfield.Elt {
	if a.Less(b) {
		return a
	}
	return b
}

func maxElt(a, b numfield.Elt) numfield.Elt {
	if a.Greater(b) {
		return a
	}
	return b
}
