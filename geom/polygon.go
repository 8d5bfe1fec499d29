// SPDX-License-Identifier: MIT
package geom

// Polygon is an immutable simple polygon with vertices listed
// counterclockwise. Edges, convexity, and the bounding box are derived
// once at construction time and cached on the value, since a Polygon
// never changes after NewPolygon returns.
type Polygon struct {
	vertices []Point
	edges    []LineSegment
	convex   bool
	bbox     Rectangle
}

// NewPolygon builds a Polygon from vertices listed counterclockwise. It
// returns ErrTooFewVertices if fewer than three vertices are given.
//
// NewPolygon does not reject self-intersecting input; non-simple polygons
// are out of scope for this package's predicates, but the type itself
// does not police simplicity.
func NewPolygon(vertices ...Point) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, ErrTooFewVertices
	}
	vs := make([]Point, len(vertices))
	copy(vs, vertices)

	edges := make([]LineSegment, len(vs))
	bbox := vs[0].BBox()
	for i := range vs {
		j := (i + 1) % len(vs)
		seg, err := NewLineSegment(vs[i], vs[j])
		if err != nil {
			return Polygon{}, err
		}
		edges[i] = seg
		bbox = bbox.Union(vs[i].BBox())
	}

	return Polygon{
		vertices: vs,
		edges:    edges,
		convex:   computeConvex(vs),
		bbox:     bbox,
	}, nil
}

// Vertices returns the polygon's vertices, in counterclockwise order. The
// returned slice is a copy; mutating it does not affect p.
func (p Polygon) Vertices() []Point {
	out := make([]Point, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Edges returns the polygon's edges, each directed consistently
// counterclockwise.
func (p Polygon) Edges() []LineSegment {
	out := make([]LineSegment, len(p.edges))
	copy(out, p.edges)
	return out
}

// NumVertices returns the number of vertices (equivalently, edges).
func (p Polygon) NumVertices() int { return len(p.vertices) }

// IsConvex reports whether every interior angle is at most 180 degrees,
// i.e. every edge turns the same way.
func (p Polygon) IsConvex() bool { return p.convex }

// BBox returns the polygon's axis-aligned bounding box.
func (p Polygon) BBox() Rectangle { return p.bbox }

func computeConvex(vs []Point) bool {
	n := len(vs)
	sawPositive, sawNegative := false, false
	for i := 0; i < n; i++ {
		a := vs[i]
		b := vs[(i+1)%n]
		c := vs[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		switch cross.Sign() {
		case 1:
			sawPositive = true
		case -1:
			sawNegative = true
		}
		if sawPositive && sawNegative {
			return false
		}
	}
	return true
}
