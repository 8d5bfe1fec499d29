// SPDX-License-Identifier: MIT
package geom

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/penrose/numfield"
)

// AffineTransform maps (x,y) to (a*x + b*y + c, d*x + e*y + f).
//
// AffineTransform is an immutable value type, freely copyable. Det,
// IsOrientationPreserving, and IsConformal are pure functions of
// (a,b,c,d,e,f) and are recomputed on every call; package tile checks
// IsOrientationPreserving and IsConformal once, when a tile is
// constructed, and does not store the result.
type AffineTransform struct {
	a, b, c, d, e, f numfield.Elt
}

// NewAffineTransform builds the transform (x,y) -> (a*x+b*y+c, d*x+e*y+f).
func NewAffineTransform(a, b, c, d, e, f numfield.Elt) AffineTransform {
	return AffineTransform{a: a, b: b, c: c, d: d, e: e, f: f}
}

// Components returns the six coefficients (a,b,c,d,e,f).
func (t AffineTransform) Components() (a, b, c, d, e, f numfield.Elt) {
	return t.a, t.b, t.c, t.d, t.e, t.f
}

// IdentityTransform is the identity affine map.
var IdentityTransform = NewAffineTransform(numfield.One, numfield.Zero(), numfield.Zero(), numfield.Zero(), numfield.One, numfield.Zero())

// Compose returns the transform that first applies t, then other:
// Compose(t, other)(p) == other.Transform(t.Transform(p)).
//
// This matches the original prototype's "@" operator, whose docstring
// notes composition is traditionally written right-to-left in math
// notation but implemented so that t.Compose(other) applies t first.
func (t AffineTransform) Compose(other AffineTransform) AffineTransform {
	return NewAffineTransform(
		numfield.Add(numfield.Mul(t.a, other.a), numfield.Mul(t.d, other.b)),
		numfield.Add(numfield.Mul(t.b, other.a), numfield.Mul(t.e, other.b)),
		numfield.Add(numfield.Add(numfield.Mul(t.c, other.a), numfield.Mul(t.f, other.b)), other.c),
		numfield.Add(numfield.Mul(t.a, other.d), numfield.Mul(t.d, other.e)),
		numfield.Add(numfield.Mul(t.b, other.d), numfield.Mul(t.e, other.e)),
		numfield.Add(numfield.Add(numfield.Mul(t.c, other.d), numfield.Mul(t.f, other.e)), other.f),
	)
}

// Det returns the determinant a*e - b*d.
func (t AffineTransform) Det() numfield.Elt {
	return numfield.Sub(numfield.Mul(t.a, t.e), numfield.Mul(t.b, t.d))
}

// IsOrientationPreserving reports whether t keeps clockwise paths
// clockwise, i.e. Det() > 0.
func (t AffineTransform) IsOrientationPreserving() bool {
	return t.Det().Sign() > 0
}

// IsConformal reports whether t preserves angles: equivalently, whether it
// scales every vector by the same factor. Algebraically this reduces to
// a*a+d*d == b*b+e*e and a*b == -(d*e).
func (t AffineTransform) IsConformal() bool {
	lhs := numfield.Add(numfield.Mul(t.a, t.a), numfield.Mul(t.d, t.d))
	rhs := numfield.Add(numfield.Mul(t.b, t.b), numfield.Mul(t.e, t.e))
	cross := numfield.Add(numfield.Mul(t.a, t.b), numfield.Mul(t.d, t.e))
	return lhs.Equal(rhs) && cross.IsZero()
}

// cos18, sin18 are the exact cosine and sine of 18 degrees in K:
// cos18 = alpha/4, sin18 = -3/2 + alpha^2/8.
var (
	cos18 = numfield.Alpha.MulRat(big.NewRat(1, 4))
	sin18 = numfield.Add(
		numfield.FromRat(big.NewRat(-3, 2)),
		numfield.Mul(numfield.Alpha, numfield.Alpha).MulRat(big.NewRat(1, 8)),
	)
)

// trigMultiplesOf18[n] holds (cos(n*18deg), sin(n*18deg)) for n = 0..19,
// built by iteratively rotating (1,0) by (cos18,sin18). Since 20*18 = 360
// degrees, every rotation by a multiple of 18 degrees is represented
// exactly in this table.
var trigMultiplesOf18 [20][2]numfield.Elt

func init() {
	c, s := numfield.One, numfield.Zero()
	for i := 0; i < 20; i++ {
		trigMultiplesOf18[i] = [2]numfield.Elt{c, s}
		// (c,s) <- rotate (c,s) by (cos18,sin18):
		nc := numfield.Sub(numfield.Mul(cos18, c), numfield.Mul(sin18, s))
		ns := numfield.Add(numfield.Mul(sin18, c), numfield.Mul(cos18, s))
		c, s = nc, ns
	}
}

// Rotation returns the AffineTransform for a rotation of n*18 degrees
// counterclockwise about the origin, for any integer n (exact for every
// n, since the construction only ever needs multiples of 18 degrees).
func Rotation(n int) AffineTransform {
	idx := ((n % 20) + 20) % 20
	cs := trigMultiplesOf18[idx]
	c, s := cs[0], cs[1]
	return NewAffineTransform(c, numfield.Neg(s), numfield.Zero(), s, c, numfield.Zero())
}

// Scaling returns the AffineTransform scaling x by sx and y by sy. It
// returns ErrZeroScale if either factor is zero.
func Scaling(sx, sy numfield.Elt) (AffineTransform, error) {
	if sx.IsZero() || sy.IsZero() {
		return AffineTransform{}, ErrZeroScale
	}
	return NewAffineTransform(sx, numfield.Zero(), numfield.Zero(), numfield.Zero(), sy, numfield.Zero()), nil
}

// UniformScaling returns the AffineTransform scaling both axes by s. It
// returns ErrZeroScale if s is zero.
func UniformScaling(s numfield.Elt) (AffineTransform, error) {
	return Scaling(s, s)
}

// Translation returns the AffineTransform translating by (dx, dy).
func Translation(dx, dy numfield.Elt) AffineTransform {
	return NewAffineTransform(numfield.One, numfield.Zero(), dx, numfield.Zero(), numfield.One, dy)
}

// TranslationBy returns the AffineTransform translating by the vector v.
func TranslationBy(v Vector) AffineTransform {
	return Translation(v.X, v.Y)
}

// String renders t for debugging.
func (t AffineTransform) String() string {
	return fmt.Sprintf("[%s %s %s; %s %s %s]", t.a, t.b, t.c, t.d, t.e, t.f)
}
