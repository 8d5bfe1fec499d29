// SPDX-License-Identifier: MIT
package tile

import (
	"fmt"

	"github.com/katalvlaran/penrose/geom"
	"github.com/katalvlaran/penrose/numfield"
)

// Tile is the capability set shared by every prototile class: a concrete
// instance exposes its transformed vertices, its matching-rule labels (one
// per edge, invariant under transform), a convex decomposition for
// intersection testing, its tile-set tag, and the decomposition table
// lookup. Prototiles are modeled as this interface over a handful of
// concrete per-class constructors rather than a class hierarchy with
// mutable state.
type Tile interface {
	Vertices() []geom.Point
	Edges() []geom.LineSegment
	MatchingRules() []int
	ConvexDecomposition() []geom.Polygon
	TileSet() string
	Class() string
	Transform() geom.AffineTransform
	BBox() geom.Rectangle
	Matches(other Tile) (bool, error)
	Decompose(ruleID string) ([]Tile, bool)
	Equal(other Tile) bool
}

// protoClass holds the static, process-wide data for one prototile class:
// its proto-vertices in a canonical local frame (listed counterclockwise),
// its matching-rule labels (one per edge, same order as vertices), its
// tile-set tag, any additional proto-points, and the index groups defining
// its convex decomposition. In a decomposition index, a value i >= 0
// selects vertex i; a value i < 0 selects additional point -i-1.
type protoClass struct {
	name       string
	tileSet    string
	vertices   []geom.Point
	matching   []int
	additional []geom.Point
	decompIdx  [][]int
}

func newProtoClass(name, tileSet string, vertices []geom.Point, matching []int) *protoClass {
	c := &protoClass{name: name, tileSet: tileSet, vertices: vertices, matching: matching}
	if !isCCW(vertices) {
		panic("tile: proto-vertex table for " + name + " is not counterclockwise")
	}
	idx := make([]int, len(vertices))
	for i := range idx {
		idx[i] = i
	}
	c.decompIdx = [][]int{idx}
	return c
}

// withDecomposition overrides the default whole-polygon convex
// decomposition; negative indices reference additional proto-points.
func (c *protoClass) withDecomposition(additional []geom.Point, decompIdx [][]int) *protoClass {
	c.additional = additional
	c.decompIdx = decompIdx
	return c
}

func isCCW(vertices []geom.Point) bool {
	area := numfield.Zero()
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		area = numfield.Add(area, numfield.Sub(numfield.Mul(a.X, b.Y), numfield.Mul(b.X, a.Y)))
	}
	return area.Sign() > 0
}

// unit is the point at distance 1 from the origin, at angle n*18 degrees.
func unit(n int) geom.Point {
	return geom.NewPoint(numfield.One, numfield.Zero()).Rotate(n)
}

// sum returns the point p+q (treating q as an offset from the origin).
func sum(p, q geom.Point) geom.Point {
	return geom.NewPoint(numfield.Add(p.X, q.X), numfield.Add(p.Y, q.Y))
}

// Canonical proto-frame landmarks, mirroring the original prototype's
// kite/dart/rhomb coordinates: every prototile lives in the wedge of
// angles 0..72 degrees with its first edge leaving the origin along +x.
//
//	ptO --- origin, the kite/dart/rhomb corner all frames share
//	ptX --- (1,0), the far end of the first unit edge
//	ptC --- (1,0) rotated 36 degrees (the kite's upper mid vertex)
//	ptY --- (1,0) rotated 72 degrees
//	ptR --- ptC scaled by 1/phi (the dart's reflex vertex)
//	ptT --- ptX + ptY (the thick rhomb's far corner)
//	ptU --- ptX + ptC (the thin rhomb's far corner)
var (
	ptO = geom.NewPoint(numfield.Zero(), numfield.Zero())
	ptX = unit(0)
	ptC = unit(2)
	ptY = unit(4)
	ptR = geom.NewPoint(numfield.Mul(numfield.InvPhi, ptC.X), numfield.Mul(numfield.InvPhi, ptC.Y))
	ptT = sum(ptX, ptY)
	ptU = sum(ptX, ptC)
)

var classes = map[string]*protoClass{}

func register(c *protoClass) { classes[c.name] = c }

func init() {
	// P2: kite and dart, long side 1. The dart's vertex 2 is the reflex
	// corner, so the dart is not convex; its decomposition uses an
	// auxiliary point on the O--Y edge at distance 1 beyond X along the
	// X--R direction, giving two convex triangles whose interiors overlap
	// just enough that their union is point-for-point the dart interior
	// (the seam O--R would otherwise be covered by neither).
	register(newProtoClass("Kite", "P2",
		[]geom.Point{ptO, ptX, ptC, ptY},
		[]int{2, 1, -1, -2}))
	dartAux := sum(ptX, unit(8))
	register(newProtoClass("Dart", "P2",
		[]geom.Point{ptO, ptX, ptR, ptY},
		[]int{-2, -1, 1, 2}).
		withDecomposition([]geom.Point{dartAux}, [][]int{{0, 1, -1}, {0, 2, 3}}))

	// P3: thick and thin rhombs, side 1.
	register(newProtoClass("ThickRhomb", "P3",
		[]geom.Point{ptO, ptX, ptT, ptY},
		[]int{3, 4, -4, -3}))
	register(newProtoClass("ThinRhomb", "P3",
		[]geom.Point{ptO, ptX, ptU, ptC},
		[]int{3, -3, 4, -4}))

	// Robinson-A: the triangle halves of Kite and Dart, cut along the
	// O--C (kite) and O--R (dart) symmetry axes. Each half keeps its
	// parent's frame so to-P2 can reuse the instance transform unchanged;
	// outer edges carry A-set relabelings of the parent's P2 rules
	// (1 -> 42, 2 -> 43) and the fresh axis rules 41 (kite) / 44 (dart).
	register(newProtoClass("A_K1", "Robinson-A",
		[]geom.Point{ptO, ptX, ptC}, []int{43, 42, 41}))
	register(newProtoClass("A_K2", "Robinson-A",
		[]geom.Point{ptO, ptC, ptY}, []int{-41, -42, -43}))
	register(newProtoClass("A_D1", "Robinson-A",
		[]geom.Point{ptO, ptX, ptR}, []int{-43, -42, 44}))
	register(newProtoClass("A_D2", "Robinson-A",
		[]geom.Point{ptO, ptR, ptY}, []int{-44, 42, 43}))

	// Robinson-B: the triangle halves of ThickRhomb and ThinRhomb, cut
	// along the long diagonal O--T and the short diagonal X--C
	// respectively. Same relabeling pattern as Robinson-A on a disjoint
	// rule range (3 -> 52, 4 -> 53, axes 51/54), so A and B triangles can
	// never be mistaken for one another by the matching check even where
	// their shapes coincide.
	register(newProtoClass("B_L1", "Robinson-B",
		[]geom.Point{ptO, ptX, ptT}, []int{52, 53, 51}))
	register(newProtoClass("B_L2", "Robinson-B",
		[]geom.Point{ptO, ptT, ptY}, []int{-51, -53, -52}))
	register(newProtoClass("B_S1", "Robinson-B",
		[]geom.Point{ptO, ptX, ptC}, []int{52, 54, -53}))
	register(newProtoClass("B_S2", "Robinson-B",
		[]geom.Point{ptX, ptU, ptC}, []int{-52, 53, -54}))
}

// tileImpl is the single concrete realization of Tile: a prototile class
// plus the transform placing it in the plane.
type tileImpl struct {
	class *protoClass
	t     geom.AffineTransform
}

func newInstance(className string, t geom.AffineTransform) (Tile, error) {
	c, ok := classes[className]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, className)
	}
	if !t.IsOrientationPreserving() {
		return nil, ErrNotOrientationPreserving
	}
	if !t.IsConformal() {
		return nil, ErrNotConformal
	}
	return tileImpl{class: c, t: t}, nil
}

// NewKite builds a Kite instance placed by t.
func NewKite(t geom.AffineTransform) (Tile, error) { return newInstance("Kite", t) }

// NewDart builds a Dart instance placed by t.
func NewDart(t geom.AffineTransform) (Tile, error) { return newInstance("Dart", t) }

// NewThickRhomb builds a ThickRhomb instance placed by t.
func NewThickRhomb(t geom.AffineTransform) (Tile, error) { return newInstance("ThickRhomb", t) }

// NewThinRhomb builds a ThinRhomb instance placed by t.
func NewThinRhomb(t geom.AffineTransform) (Tile, error) { return newInstance("ThinRhomb", t) }

// NewRobinsonTriangle builds an instance of one of the eight Robinson
// triangle classes ("A_K1", "A_K2", "A_D1", "A_D2", "B_L1", "B_L2",
// "B_S1", "B_S2") placed by t.
func NewRobinsonTriangle(class string, t geom.AffineTransform) (Tile, error) {
	return newInstance(class, t)
}

// NewTile builds an instance of any known prototile class by name, for
// callers (package tilemgr) that only know a class name obtained from an
// existing Tile's Class() rather than which constructor to call.
func NewTile(className string, t geom.AffineTransform) (Tile, error) {
	return newInstance(className, t)
}

// ClassNames lists every registered prototile class name.
func ClassNames() []string {
	out := make([]string, 0, len(classes))
	for name := range classes {
		out = append(out, name)
	}
	return out
}

func (ti tileImpl) Transform() geom.AffineTransform { return ti.t }

func (ti tileImpl) Class() string { return ti.class.name }

func (ti tileImpl) TileSet() string { return ti.class.tileSet }

func (ti tileImpl) Vertices() []geom.Point {
	out := make([]geom.Point, len(ti.class.vertices))
	for i, v := range ti.class.vertices {
		out[i] = v.Transform(ti.t)
	}
	return out
}

func (ti tileImpl) Edges() []geom.LineSegment {
	vs := ti.Vertices()
	n := len(vs)
	out := make([]geom.LineSegment, n)
	for i := range vs {
		seg, err := geom.NewLineSegment(vs[i], vs[(i+1)%n])
		if err != nil {
			// Prototile vertex tables never produce a degenerate edge;
			// a panic here would indicate a corrupt static table.
			panic(err)
		}
		out[i] = seg
	}
	return out
}

func (ti tileImpl) MatchingRules() []int {
	out := make([]int, len(ti.class.matching))
	copy(out, ti.class.matching)
	return out
}

func (ti tileImpl) ConvexDecomposition() []geom.Polygon {
	vs := ti.Vertices()
	addl := make([]geom.Point, len(ti.class.additional))
	for i, p := range ti.class.additional {
		addl[i] = p.Transform(ti.t)
	}
	out := make([]geom.Polygon, len(ti.class.decompIdx))
	for i, idx := range ti.class.decompIdx {
		pts := make([]geom.Point, len(idx))
		for j, k := range idx {
			if k >= 0 {
				pts[j] = vs[k]
			} else {
				pts[j] = addl[-k-1]
			}
		}
		poly, err := geom.NewPolygon(pts...)
		if err != nil {
			panic(err)
		}
		out[i] = poly
	}
	return out
}

func (ti tileImpl) BBox() geom.Rectangle {
	vs := ti.Vertices()
	bbox := vs[0].BBox()
	for _, v := range vs[1:] {
		bbox = bbox.Union(v.BBox())
	}
	return bbox
}

// Equal reports vertex/matching-rule equality up to cyclic rotation of
// the vertex list, both rotated in lockstep.
func (ti tileImpl) Equal(other Tile) bool {
	if ti.Class() != other.Class() {
		return false
	}
	a, b := ti.Vertices(), other.Vertices()
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if !a[i].Equal(b[(i+shift)%n]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func (ti tileImpl) String() string {
	return fmt.Sprintf("%s@%s", ti.Class(), ti.t)
}
