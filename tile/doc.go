// Package tile implements the Penrose prototile catalogue: the kite and
// dart (tile set P2), the thick and thin rhombs (tile set P3), and the
// eight Robinson triangles that halve them (tile sets Robinson-A and
// Robinson-B), together with the matching-rule consistency check and the
// conversion/deflation substitution tables that connect them.
//
// Every concrete tile is a pair (prototile class, geom.AffineTransform):
// the class supplies static, process-wide proto-vertex and matching-rule
// data; the transform places a specific instance in the plane. A
// transform must be orientation-preserving and conformal — mirrored or
// stretched tiles are rejected at construction (NewKite, NewDart, ...
// return ErrNotOrientationPreserving / ErrNotConformal).
//
// Key exported surface:
//
//	Tile                  — Vertices, MatchingRules, ConvexDecomposition,
//	                        TileSet, Class, Matches, Decompose.
//	NewKite/NewDart/...   — one constructor per prototile class.
//	RuleIDs/KnownChildClasses — introspection over the substitution table.
//
// Matching-rule labels are signed integers; two tiles may share an edge
// only when the labels on that edge sum to zero. Label ranges are
// disjoint per tile set: P2 uses ±1/±2, P3 uses ±3/±4, Robinson-A uses
// ±41..±44, Robinson-B uses ±51..±54.
package tile
