// SPDX-License-Identifier: MIT
package geom

import (
	"fmt"

	"github.com/katalvlaran/penrose/numfield"
)

// LineSegment is an oriented segment from Begin to End, with Begin != End.
type LineSegment struct {
	Begin, End Point
}

// NewLineSegment builds the segment from begin to end. It returns
// ErrDegenerateSegment if begin and end coincide.
func NewLineSegment(begin, end Point) (LineSegment, error) {
	if begin.Equal(end) {
		return LineSegment{}, ErrDegenerateSegment
	}
	return LineSegment{Begin: begin, End: end}, nil
}

// Direction returns End - Begin.
func (s LineSegment) Direction() Vector {
	return s.End.Sub(s.Begin)
}

// BBox returns the axis-aligned bounding box of s.
func (s LineSegment) BBox() Rectangle {
	return NewRectangleFromPoints(s.Begin, s.End)
}

// IsAlongSameLine reports whether s and o lie on the same infinite line,
// i.e. o's direction is parallel to s's and o.Begin lies on s's line.
func (s LineSegment) IsAlongSameLine(o LineSegment) bool {
	d1, d2 := s.Direction(), o.Direction()
	if !d1.Cross(d2).IsZero() {
		return false
	}
	toOther := o.Begin.Sub(s.Begin)
	return d1.Cross(toOther).IsZero()
}

// ContainsPoint reports whether p lies on the closed segment s (between
// Begin and End, inclusive).
func (s LineSegment) ContainsPoint(p Point) bool {
	d := s.Direction()
	toP := p.Sub(s.Begin)
	if !d.Cross(toP).IsZero() {
		return false
	}
	dot := d.Dot(toP)
	if dot.Sign() < 0 {
		return false
	}
	lenSq := d.Dot(d)
	return !dot.Greater(lenSq)
}

// SignificantlyOverlapsWith reports whether s and o are collinear and
// share more than a single point of overlap (a shared endpoint alone does
// not count as "significant").
func (s LineSegment) SignificantlyOverlapsWith(o LineSegment) bool {
	if !s.IsAlongSameLine(o) {
		return false
	}
	d := s.Direction()
	// Parametrize every point along d by its dot product with d, which is
	// monotonic along the shared line since all four points are collinear
	// with s.Begin.
	param := func(p Point) numfield.Elt { return d.Dot(p.Sub(s.Begin)) }
	sLo, sHi := orderPair(param(s.Begin), param(s.End))
	oLo, oHi := orderPair(param(o.Begin), param(o.End))
	lo := sLo
	if oLo.Greater(lo) {
		lo = oLo
	}
	hi := sHi
	if oHi.Less(hi) {
		hi = oHi
	}
	return lo.Less(hi)
}

func orderPair(a, b numfield.Elt) (numfield.Elt, numfield.Elt) {
	if a.Greater(b) {
		return b, a
	}
	return a, b
}

func (s LineSegment) String() string {
	return fmt.Sprintf("%s->%s", s.Begin, s.End)
}
