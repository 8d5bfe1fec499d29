// SPDX-License-Identifier: MIT
package geom

import "github.com/katalvlaran/penrose/numfield"

// PointInPolygon classifies p against poly: -1 if p lies strictly outside,
// 0 if p lies exactly on an edge or vertex, +1 if p lies strictly inside.
//
// The interior test is the Shimrat/Hacker horizontal-ray crossing count:
// cast a ray from p in the +X direction and count edges it crosses an odd
// number of times. The crossing test below is the exact-arithmetic,
// division-free form of that check: an edge (a,b) straddling p's height
// crosses to the right of p iff the cross product of (b-a) and (p-a) has
// the same sign as (b.Y-a.Y).
func PointInPolygon(poly Polygon, p Point) int {
	for _, e := range poly.Edges() {
		if e.ContainsPoint(p) {
			return 0
		}
	}

	vs := poly.Vertices()
	n := len(vs)
	inside := false
	for i := 0; i < n; i++ {
		a := vs[i]
		b := vs[(i+1)%n]
		aAbove := a.Y.Greater(p.Y)
		bAbove := b.Y.Greater(p.Y)
		if aAbove == bAbove {
			continue
		}
		dy := numfield.Sub(b.Y, a.Y)
		cross := numfield.Sub(
			numfield.Mul(numfield.Sub(b.X, a.X), numfield.Sub(p.Y, a.Y)),
			numfield.Mul(dy, numfield.Sub(p.X, a.X)),
		)
		if cross.Sign() == dy.Sign() {
			inside = !inside
		}
	}
	if inside {
		return 1
	}
	return -1
}

// EdgePair identifies one edge in each of two polygons: edge I of the
// first and edge J of the second, by Edges() index.
type EdgePair struct {
	I, J int
}

// DoConvexPolygonsIntersect decides whether two convex polygons share any
// point (intersects) and, if so, whether they share more than a boundary
// (areal — a positive-area overlap rather than merely touching at a
// shared vertex or a collinear shared edge). When the overlap has measure
// zero and the polygons share a positive-length stretch of boundary,
// edges identifies one such pair of collinear overlapping edges; it is
// nil for an areal overlap, a single-point touch, or no intersection.
//
// Polygons with disjoint bounding boxes are reported as not intersecting
// before convexity is checked. Otherwise it returns ErrNotConvex if either
// polygon is not convex; convexity is a precondition of the Separating
// Axis Theorem this uses.
func DoConvexPolygonsIntersect(p, q Polygon) (intersects, areal bool, edges *EdgePair, err error) {
	if !BBoxesOverlap(p.BBox(), q.BBox()) {
		return false, false, nil, nil
	}
	if !p.IsConvex() || !q.IsConvex() {
		return false, false, nil, ErrNotConvex
	}

	axes := append(edgeNormals(p), edgeNormals(q)...)

	touchedOnly := false
	for _, axis := range axes {
		pLo, pHi := projectExtent(p, axis)
		qLo, qHi := projectExtent(q, axis)

		lo := pLo
		if qLo.Greater(lo) {
			lo = qLo
		}
		hi := pHi
		if qHi.Less(hi) {
			hi = qHi
		}

		if hi.Less(lo) {
			return false, false, nil, nil
		}
		if hi.Equal(lo) {
			touchedOnly = true
		}
	}
	if !touchedOnly {
		return true, true, nil, nil
	}

	// Measure-zero overlap: either a positive-length shared stretch of
	// boundary (report one witnessing edge pair) or a single-point touch.
	for i, ep := range p.Edges() {
		for j, eq := range q.Edges() {
			if ep.SignificantlyOverlapsWith(eq) {
				return true, false, &EdgePair{I: i, J: j}, nil
			}
		}
	}
	return true, false, nil, nil
}

// edgeNormals returns, for each edge of p, a vector perpendicular to that
// edge — the candidate separating axes a convex polygon contributes to
// SAT.
func edgeNormals(p Polygon) []Vector {
	edges := p.Edges()
	axes := make([]Vector, len(edges))
	for i, e := range edges {
		d := e.Direction()
		axes[i] = NewVector(numfield.Neg(d.Y), d.X)
	}
	return axes
}

// projectExtent returns the minimum and maximum dot product of axis with
// every vertex of p.
func projectExtent(p Polygon, axis Vector) (lo, hi numfield.Elt) {
	vs := p.Vertices()
	lo = axis.Dot(vs[0].AsVector())
	hi = lo
	for _, v := range vs[1:] {
		d := axis.Dot(v.AsVector())
		if d.Less(lo) {
			lo = d
		}
		if d.Greater(hi) {
			hi = d
		}
	}
	return lo, hi
}
