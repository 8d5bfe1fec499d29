// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
//
// Only sentinel variables are exposed; callers branch with errors.Is.
// Every one of them is caused by a caller-supplied input that violates a
// documented domain invariant, never by internal state.

package geom

import "errors"

// ErrDegenerateSegment is returned when constructing a LineSegment whose
// begin and end coincide.
var ErrDegenerateSegment = errors.New("geom: line segment has zero length")

// ErrTooFewVertices is returned when constructing a Polygon with fewer
// than three vertices.
var ErrTooFewVertices = errors.New("geom: polygon needs at least three vertices")

// ErrNotConvex is returned by DoConvexPolygonsIntersect when either
// argument's IsConvex() is false and the bounding-box fast path did not
// already decide the answer.
var ErrNotConvex = errors.New("geom: polygon is not convex")

// ErrZeroScale is returned by Scaling when asked to scale by zero, which
// would collapse the plane and violate every AffineTransform's
// orientation-preserving/conformal invariants downstream.
var ErrZeroScale = errors.New("geom: scale factor must be nonzero")
