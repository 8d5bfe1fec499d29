// Package penrose is an exact-arithmetic kernel for Penrose aperiodic
// tiling: the algebraic number field its coordinates live in, the
// geometric predicates over that field, and the prototile/substitution
// model built on top.
//
// 🚀 What is this?
//
//	A dependency-light, exact-arithmetic library that brings together:
//
//	  • rational  — closed rational intervals, the bisection primitive
//	  • numfield  — K = Q(alpha), alpha = sqrt(2(5+sqrt5)), exact +,-,*,sign
//	  • geom      — points, polygons, affine transforms, SAT intersection
//	  • tile      — the ten prototile classes and their substitution rules
//	  • tilemgr   — an evolving, matching-rule-checked set of placed tiles
//
// ✨ Why exact arithmetic?
//
//   - No epsilon tuning    — every predicate (sign, convexity, overlap) is
//     decided exactly, never by a float comparison against a fudge factor
//   - Reproducible          — the same inputs always decide the same way,
//     regardless of platform or accumulated floating-point error
//   - float64 stays cosmetic — Elt.Float() exists only for display and for
//     seeding numerical approximations (tilemgr.ApproxInvSqrt); no
//     geometric decision ever consults it
//
// Under the hood, the five packages form a strict dependency chain:
//
//	rational/  — exact interval arithmetic over math/big.Rat
//	numfield/  — the quartic number field K, built on rational
//	geom/      — the Euclidean kernel, built on numfield
//	tile/      — prototile classes and substitution tables, built on geom
//	tilemgr/   — the tile manager, built on tile
//
// Quick example — the "sun": five Kites rotated by 18°·{-1,3,7,11,15}
// about the origin meet edge to edge around a shared vertex; converting
// them to Robinson-A triangles and running repeated half-deflation
// produces ever-finer Penrose tilings, with every pair of tiles staying
// mutually compatible at every generation (see
// TestSunSeedSurvivesRepeatedHalfDeflation in package tilemgr).
//
//	go get github.com/katalvlaran/penrose
package penrose
