// SPDX-License-Identifier: MIT
package numfield

import "math/big"

// Elt is an element c0 + c1*alpha + c2*alpha^2 + c3*alpha^3 of K = Q(alpha).
// The zero value of Elt is not directly usable (its coefficients are nil
// big.Rat pointers); always obtain Elt values through a constructor
// (FromInt, FromRat, FromVector, FromString) or an arithmetic method.
type Elt struct {
	c0, c1, c2, c3 *big.Rat
}

// vec returns the four coefficients as an array, in c0..c3 order. Used
// internally by String and GoString; never mutate the returned
// pointers' underlying big.Rat values in place.
func (e Elt) vec() [4]*big.Rat { return [4]*big.Rat{e.c0, e.c1, e.c2, e.c3} }

// FromVector builds an Elt from four rational coefficients, copying each.
func FromVector(c0, c1, c2, c3 *big.Rat) Elt {
	return Elt{
		c0: new(big.Rat).Set(c0),
		c1: new(big.Rat).Set(c1),
		c2: new(big.Rat).Set(c2),
		c3: new(big.Rat).Set(c3),
	}
}

// FromInt builds the rational element n (as 4-tuple (n,0,0,0)).
func FromInt(n int64) Elt {
	return FromVector(big.NewRat(n, 1), zeroRat(), zeroRat(), zeroRat())
}

// FromRat builds the rational element q (as 4-tuple (q,0,0,0)).
func FromRat(q *big.Rat) Elt {
	return FromVector(q, zeroRat(), zeroRat(), zeroRat())
}

// FromString parses a rational literal ("p/q", or a plain integer) and
// returns the corresponding rational element of K. Returns
// ErrMalformedRationalString if s is not accepted by big.Rat.SetString.
func FromString(s string) (Elt, error) {
	q, ok := new(big.Rat).SetString(s)
	if !ok {
		return Elt{}, ErrMalformedRationalString
	}
	return FromRat(q), nil
}

func zeroRat() *big.Rat { return new(big.Rat) }

// Zero is the additive identity of K.
func Zero() Elt { return FromInt(0) }

// Distinguished constants of K (spec.md §3).
var (
	// One is the multiplicative identity, 1 = (1,0,0,0).
	One = FromInt(1)

	// Alpha is the field generator, the positive real root of
	// x^4 - 20*x^2 + 80 in (7/2, 4).
	Alpha = FromVector(big.NewRat(0, 1), big.NewRat(1, 1), big.NewRat(0, 1), big.NewRat(0, 1))

	// Sqrt5 = alpha^2/2 - 5, since alpha^2 = 2*(5+sqrt(5)).
	Sqrt5 = FromVector(big.NewRat(-5, 1), big.NewRat(0, 1), big.NewRat(1, 2), big.NewRat(0, 1))

	// Phi is the golden ratio, (1+sqrt(5))/2.
	Phi = mustHalve(Add(Sqrt5, One))

	// InvPhi is 1/Phi, which conveniently equals Phi - 1.
	InvPhi = Sub(Phi, One)
)

func mustHalve(e Elt) Elt {
	half := big.NewRat(1, 2)
	return FromVector(
		new(big.Rat).Mul(e.c0, half),
		new(big.Rat).Mul(e.c1, half),
		new(big.Rat).Mul(e.c2, half),
		new(big.Rat).Mul(e.c3, half),
	)
}
