// SPDX-License-Identifier: MIT
package tile

import "github.com/katalvlaran/penrose/geom"

// Matches reports whether ti and other can coexist in the same tiling: they
// must not overlap with positive area, and wherever their boundaries
// significantly overlap the shared edges must carry opposite-sign
// matching-rule labels. It proceeds in four steps:
//
//  1. bounding-box fast path: disjoint boxes can never conflict.
//  2. pairwise convex-decomposition SAT: any piece pair with areal overlap
//     is a hard conflict.
//  3. if no pair of pieces even touches, the tiles are compatible.
//  4. for every pair of tile edges that significantly overlap (share more
//     than a point), the edges must run opposite directions and their
//     labels must sum to zero; any violation is a conflict.
func (ti tileImpl) Matches(other Tile) (bool, error) {
	if !geom.BBoxesOverlap(ti.BBox(), other.BBox()) {
		return true, nil
	}

	piecesA := ti.ConvexDecomposition()
	piecesB := other.ConvexDecomposition()

	anyTouch := false
	for _, a := range piecesA {
		for _, b := range piecesB {
			intersects, areal, _, err := geom.DoConvexPolygonsIntersect(a, b)
			if err != nil {
				return false, err
			}
			if areal {
				return false, nil
			}
			if intersects {
				anyTouch = true
			}
		}
	}
	if !anyTouch {
		return true, nil
	}

	edgesA := ti.Edges()
	labelsA := ti.MatchingRules()
	edgesB := other.Edges()
	labelsB := other.MatchingRules()

	for i, ea := range edgesA {
		for j, eb := range edgesB {
			if !ea.SignificantlyOverlapsWith(eb) {
				continue
			}
			if !ea.Begin.Equal(eb.End) || !ea.End.Equal(eb.Begin) {
				return false, nil
			}
			if labelsA[i]+labelsB[j] != 0 {
				return false, nil
			}
		}
	}
	return true, nil
}
