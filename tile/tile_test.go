package tile_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/penrose/geom"
	"github.com/katalvlaran/penrose/numfield"
	"github.com/katalvlaran/penrose/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placement(t *testing.T) geom.AffineTransform {
	t.Helper()
	return geom.Rotation(3).Compose(geom.Translation(numfield.FromInt(2), numfield.FromInt(-1)))
}

func TestNewKiteRejectsMirroredTransform(t *testing.T) {
	mirror, err := geom.Scaling(numfield.One, numfield.FromInt(-1))
	require.NoError(t, err)
	_, err = tile.NewKite(mirror)
	assert.ErrorIs(t, err, tile.ErrNotOrientationPreserving)
}

func TestNewKiteRejectsNonConformalTransform(t *testing.T) {
	stretch, err := geom.Scaling(numfield.FromInt(2), numfield.One)
	require.NoError(t, err)
	_, err = tile.NewKite(stretch)
	assert.ErrorIs(t, err, tile.ErrNotConformal)
}

func TestKiteToARoundTrip(t *testing.T) {
	kite, err := tile.NewKite(placement(t))
	require.NoError(t, err)

	halves, ok := kite.Decompose(tile.RuleToA)
	require.True(t, ok)
	require.Len(t, halves, 2)
	assert.Equal(t, "Robinson-A", halves[0].TileSet())
	assert.Equal(t, "Robinson-A", halves[1].TileSet())

	for _, half := range halves {
		parents, ok := half.Decompose(tile.RuleToP2)
		require.True(t, ok)
		require.Len(t, parents, 1)
		assert.True(t, parents[0].Equal(kite), "to-P2 after to-A should reconstruct the original Kite")
	}
}

func TestDartToARoundTrip(t *testing.T) {
	dart, err := tile.NewDart(placement(t))
	require.NoError(t, err)

	halves, ok := dart.Decompose(tile.RuleToA)
	require.True(t, ok)
	require.Len(t, halves, 2)

	for _, half := range halves {
		parents, ok := half.Decompose(tile.RuleToP2)
		require.True(t, ok)
		require.Len(t, parents, 1)
		assert.True(t, parents[0].Equal(dart))
	}
}

func TestThickRhombToBRoundTrip(t *testing.T) {
	rhomb, err := tile.NewThickRhomb(placement(t))
	require.NoError(t, err)

	halves, ok := rhomb.Decompose(tile.RuleToB)
	require.True(t, ok)
	require.Len(t, halves, 2)
	assert.Equal(t, "Robinson-B", halves[0].TileSet())

	for _, half := range halves {
		parents, ok := half.Decompose(tile.RuleToP3)
		require.True(t, ok)
		require.Len(t, parents, 1)
		assert.True(t, parents[0].Equal(rhomb))
	}
}

func TestThinRhombToBRoundTrip(t *testing.T) {
	rhomb, err := tile.NewThinRhomb(placement(t))
	require.NoError(t, err)

	halves, ok := rhomb.Decompose(tile.RuleToB)
	require.True(t, ok)
	for _, half := range halves {
		parents, ok := half.Decompose(tile.RuleToP3)
		require.True(t, ok)
		assert.True(t, parents[0].Equal(rhomb))
	}
}

func TestDecomposeUnknownRuleFails(t *testing.T) {
	kite, err := tile.NewKite(geom.IdentityTransform)
	require.NoError(t, err)
	_, ok := kite.Decompose("not-a-rule")
	assert.False(t, ok)

	_, ok = kite.Decompose(tile.RuleToP2)
	assert.False(t, ok, "Kite has no to-P2 rule, only Robinson-A tiles do")
}

func TestHalfDeflationTwiceMatchesDeflation(t *testing.T) {
	akite, err := tile.NewRobinsonTriangle("A_K1", geom.IdentityTransform)
	require.NoError(t, err)

	half1, ok := akite.Decompose(tile.RuleHalfDeflation)
	require.True(t, ok)
	var nested []tile.Tile
	for _, child := range half1 {
		half2, ok := child.Decompose(tile.RuleHalfDeflation)
		require.True(t, ok)
		nested = append(nested, half2...)
	}

	direct, ok := akite.Decompose(tile.RuleDeflation)
	require.True(t, ok)

	require.Len(t, direct, len(nested))
	for i := range direct {
		assert.True(t, direct[i].Equal(nested[i]), "deflation should equal two composed half-deflations at child %d", i)
	}
}

func TestHalfDeflationChildCounts(t *testing.T) {
	cases := []struct {
		class string
		want  int
	}{
		{"A_K1", 2}, {"A_K2", 2}, // acute half-kites split in two
		{"A_D1", 1}, {"A_D2", 1}, // half-darts map to one congruent B triangle
		{"B_L1", 2}, {"B_L2", 2}, // half-thick-rhombs split in two
		{"B_S1", 1}, {"B_S2", 1}, // half-thin-rhombs map to one congruent A triangle
	}
	for _, c := range cases {
		tri, err := tile.NewRobinsonTriangle(c.class, geom.IdentityTransform)
		require.NoError(t, err)
		children, ok := tri.Decompose(tile.RuleHalfDeflation)
		require.True(t, ok)
		assert.Len(t, children, c.want, "half-deflation of %s", c.class)
	}
}

func TestHalfDeflationSwapsTileSet(t *testing.T) {
	for _, class := range []string{"A_K1", "A_K2", "A_D1", "A_D2"} {
		tri, err := tile.NewRobinsonTriangle(class, geom.IdentityTransform)
		require.NoError(t, err)
		children, ok := tri.Decompose(tile.RuleHalfDeflation)
		require.True(t, ok)
		for _, c := range children {
			assert.Equal(t, "Robinson-B", c.TileSet(), "half-deflation of %s crosses to the complementary set", class)
		}
	}
	for _, class := range []string{"B_L1", "B_L2", "B_S1", "B_S2"} {
		tri, err := tile.NewRobinsonTriangle(class, geom.IdentityTransform)
		require.NoError(t, err)
		children, ok := tri.Decompose(tile.RuleHalfDeflation)
		require.True(t, ok)
		for _, c := range children {
			assert.Equal(t, "Robinson-A", c.TileSet())
		}
	}
}

func TestDeflationReproducesPenroseCounts(t *testing.T) {
	// The canonical Penrose substitution: a half-kite deflates into two
	// half-kites and a half-dart; a half-dart into one of each.
	counts := func(children []tile.Tile) (kiteHalves, dartHalves int) {
		for _, c := range children {
			switch c.Class() {
			case "A_K1", "A_K2":
				kiteHalves++
			case "A_D1", "A_D2":
				dartHalves++
			default:
				t.Fatalf("unexpected class %s in an A-set deflation", c.Class())
			}
		}
		return kiteHalves, dartHalves
	}

	halfKite, err := tile.NewRobinsonTriangle("A_K1", geom.IdentityTransform)
	require.NoError(t, err)
	children, ok := halfKite.Decompose(tile.RuleDeflation)
	require.True(t, ok)
	k, d := counts(children)
	assert.Equal(t, 2, k)
	assert.Equal(t, 1, d)

	halfDart, err := tile.NewRobinsonTriangle("A_D1", geom.IdentityTransform)
	require.NoError(t, err)
	children, ok = halfDart.Decompose(tile.RuleDeflation)
	require.True(t, ok)
	k, d = counts(children)
	assert.Equal(t, 1, k)
	assert.Equal(t, 1, d)
}

func TestHalfDeflationChildrenPartitionParent(t *testing.T) {
	// The acute half-kite splits at the golden point R of its O--C leg:
	// children are the triangles (X, R, O) and (R, X, C).
	akite, err := tile.NewRobinsonTriangle("A_K1", geom.IdentityTransform)
	require.NoError(t, err)
	children, ok := akite.Decompose(tile.RuleHalfDeflation)
	require.True(t, ok)
	require.Len(t, children, 2)

	o := geom.NewPoint(numfield.Zero(), numfield.Zero())
	x := geom.NewPoint(numfield.One, numfield.Zero())
	c := x.Rotate(2)
	r := geom.NewPoint(numfield.Mul(numfield.InvPhi, c.X), numfield.Mul(numfield.InvPhi, c.Y))

	obtuse := children[0].Vertices()
	require.Len(t, obtuse, 3)
	assert.True(t, obtuse[0].Equal(x))
	assert.True(t, obtuse[1].Equal(r))
	assert.True(t, obtuse[2].Equal(o))

	acute := children[1].Vertices()
	require.Len(t, acute, 3)
	assert.True(t, acute[0].Equal(r))
	assert.True(t, acute[1].Equal(x))
	assert.True(t, acute[2].Equal(c))
}

func TestHalfDeflationSiblingsMatch(t *testing.T) {
	// Sibling children share a fresh internal seam; its labels must
	// cancel, so every sibling pair has to pass the matching check.
	for _, class := range []string{"A_K1", "A_K2", "B_L1", "B_L2"} {
		tri, err := tile.NewRobinsonTriangle(class, placement(t))
		require.NoError(t, err)
		children, ok := tri.Decompose(tile.RuleHalfDeflation)
		require.True(t, ok)
		require.Len(t, children, 2)
		compatible, err := children[0].Matches(children[1])
		require.NoError(t, err)
		assert.True(t, compatible, "half-deflation children of %s must satisfy matching rules", class)
	}
}

func TestToAHalvesOfOneKiteMatch(t *testing.T) {
	kite, err := tile.NewKite(placement(t))
	require.NoError(t, err)
	halves, ok := kite.Decompose(tile.RuleToA)
	require.True(t, ok)
	compatible, err := halves[0].Matches(halves[1])
	require.NoError(t, err)
	assert.True(t, compatible, "the two Robinson-A halves of a kite share the axis seam")
}

func TestMatchesDisjointTilesAlwaysCompatible(t *testing.T) {
	a, err := tile.NewKite(geom.IdentityTransform)
	require.NoError(t, err)
	far := geom.Translation(numfield.FromInt(1000), numfield.FromInt(1000))
	b, err := tile.NewKite(far)
	require.NoError(t, err)

	ok, err := a.Matches(b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchesOverlappingTilesConflict(t *testing.T) {
	a, err := tile.NewKite(geom.IdentityTransform)
	require.NoError(t, err)
	b, err := tile.NewKite(geom.Translation(numfield.FromRat(big.NewRat(1, 10)), numfield.Zero()))
	require.NoError(t, err)

	ok, err := a.Matches(b)
	require.NoError(t, err)
	assert.False(t, ok, "a small shift makes the two kites overlap with positive area")
}

func TestDartConvexDecompositionCoversReflexTile(t *testing.T) {
	dart, err := tile.NewDart(geom.IdentityTransform)
	require.NoError(t, err)
	pieces := dart.ConvexDecomposition()
	require.Len(t, pieces, 2)
	for i, p := range pieces {
		assert.True(t, p.IsConvex(), "dart decomposition piece %d must be convex", i)
	}

	// A point slightly pulled in from the reflex vertex toward the origin
	// lies on the dart's symmetry axis, strictly inside the tile; it must
	// be covered by a decomposition piece.
	vs := dart.Vertices()
	reflex := vs[2]
	inward := geom.NewPoint(
		numfield.Mul(reflex.X, numfield.FromRat(big.NewRat(9, 10))),
		numfield.Mul(reflex.Y, numfield.FromRat(big.NewRat(9, 10))),
	)
	covered := false
	for _, p := range pieces {
		if geom.PointInPolygon(p, inward) >= 0 {
			covered = true
		}
	}
	assert.True(t, covered, "interior point near the reflex vertex must be covered")
}

func TestRuleIDsAndKnownChildClasses(t *testing.T) {
	ids := tile.RuleIDs()
	assert.Contains(t, ids, tile.RuleToA)
	assert.Contains(t, ids, tile.RuleHalfDeflation)

	kids := tile.KnownChildClasses(tile.RuleToA, "Kite")
	assert.ElementsMatch(t, []string{"A_K1", "A_K2"}, kids)

	assert.Equal(t, []string{"B_L2"}, tile.KnownChildClasses(tile.RuleHalfDeflation, "A_D1"))
	assert.Nil(t, tile.KnownChildClasses(tile.RuleToA, "ThickRhomb"))
}
