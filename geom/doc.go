// Package geom implements an exact 2-D Euclidean geometry kernel over the
// algebraic number field numfield.Elt: points, vectors, affine transforms,
// oriented line segments, axis-aligned rectangles, and simple polygons,
// together with the decision procedures the rest of this module builds on
// — point-in-polygon classification and convex-polygon intersection via
// the Separating Axis Theorem.
//
// Every predicate here is decided exactly: no coordinate is ever rounded
// or approximated, so repeated transformation (deflation, in package
// tile) never introduces drift between vertices that are supposed to
// coincide.
//
// Key exported surface:
//
//	Point, Vector        — disjoint K^2 types; Point.Sub(Point) yields a
//	                       Vector, Point.TranslateBy(Vector) yields a Point.
//	AffineTransform      — (x,y) -> (ax+by+c, dx+ey+f); Compose, Det,
//	                       IsOrientationPreserving, IsConformal (pure
//	                       functions of the six coefficients; package tile
//	                       evaluates them once per tile construction).
//	Rotation/Scaling/Translation — transform constructors; Rotation(n)
//	                       rotates by n*18 degrees exactly, for any integer
//	                       n, via a precomputed table of 20 (cos,sin) pairs.
//	LineSegment          — oriented, begin != end; IsAlongSameLine,
//	                       ContainsPoint, SignificantlyOverlapsWith.
//	Rectangle            — axis-aligned bounding box; BBoxesOverlap.
//	Polygon              — immutable, >= 3 vertices, CCW; Edges, IsConvex,
//	                       BBox (computed once at construction, cached).
//	PointInPolygon        — Shimrat/Hacker ternary classification, -1/0/+1.
//	DoConvexPolygonsIntersect — SAT-based intersection classification.
//
// Package tile is the sole intended consumer of convex-only routines;
// non-convex polygon intersection is explicitly out of scope.
package geom
