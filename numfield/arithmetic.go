// SPDX-License-Identifier: MIT
package numfield

import "math/big"

// powersOfAlpha[i] gives alpha^i, i=0..6, expressed as a 4-vector in the
// basis (1, alpha, alpha^2, alpha^3). Derived from the minimal polynomial
// alpha^4 = 20*alpha^2 - 80 by repeated multiplication-by-alpha and
// reduction. This table is the one piece of literal numeric data
// multiplication depends on; it is computed once at package init and
// never mutated.
var powersOfAlpha [7][4]*big.Rat

func init() {
	row := func(a, b, c, d int64) [4]*big.Rat {
		return [4]*big.Rat{big.NewRat(a, 1), big.NewRat(b, 1), big.NewRat(c, 1), big.NewRat(d, 1)}
	}
	powersOfAlpha = [7][4]*big.Rat{
		row(1, 0, 0, 0),       // alpha^0
		row(0, 1, 0, 0),       // alpha^1
		row(0, 0, 1, 0),       // alpha^2
		row(0, 0, 0, 1),       // alpha^3
		row(-80, 0, 20, 0),    // alpha^4 = 20*alpha^2 - 80
		row(0, -80, 0, 20),    // alpha^5 = alpha * alpha^4
		row(-1600, 0, 320, 0), // alpha^6 = alpha^2 * alpha^4
	}
}

// Neg returns -e.
func Neg(e Elt) Elt {
	return FromVector(
		new(big.Rat).Neg(e.c0),
		new(big.Rat).Neg(e.c1),
		new(big.Rat).Neg(e.c2),
		new(big.Rat).Neg(e.c3),
	)
}

// Add returns a+b, componentwise.
func Add(a, b Elt) Elt {
	return FromVector(
		new(big.Rat).Add(a.c0, b.c0),
		new(big.Rat).Add(a.c1, b.c1),
		new(big.Rat).Add(a.c2, b.c2),
		new(big.Rat).Add(a.c3, b.c3),
	)
}

// Sub returns a-b.
func Sub(a, b Elt) Elt {
	return Add(a, Neg(b))
}

// IsRational reports whether e lies in Q, i.e. its alpha, alpha^2, alpha^3
// coefficients are all zero.
func (e Elt) IsRational() bool {
	return e.c1.Sign() == 0 && e.c2.Sign() == 0 && e.c3.Sign() == 0
}

// RatValue returns the rational value of e and true, if e.IsRational();
// otherwise it returns nil and false.
func (e Elt) RatValue() (*big.Rat, bool) {
	if !e.IsRational() {
		return nil, false
	}
	return new(big.Rat).Set(e.c0), true
}

// scaleBy returns e scaled componentwise by the rational scalar s.
func (e Elt) scaleBy(s *big.Rat) Elt {
	return FromVector(
		new(big.Rat).Mul(e.c0, s),
		new(big.Rat).Mul(e.c1, s),
		new(big.Rat).Mul(e.c2, s),
		new(big.Rat).Mul(e.c3, s),
	)
}

// MulRat returns e scaled by the rational scalar s. Equivalent to, but
// cheaper than, Mul(e, FromRat(s)).
func (e Elt) MulRat(s *big.Rat) Elt {
	return e.scaleBy(s)
}

// Mul returns a*b, the product in K.
//
// Fast paths: if either operand is rational, scale the other's vector
// directly rather than running the full convolution. Otherwise compute
// the 7-term convolution of the two degree-3 polynomials in alpha and
// reduce powers alpha^4..alpha^6 through powersOfAlpha.
func Mul(a, b Elt) Elt {
	if ra, ok := a.RatValue(); ok {
		return b.scaleBy(ra)
	}
	if rb, ok := b.RatValue(); ok {
		return a.scaleBy(rb)
	}

	s := [4]*big.Rat{a.c0, a.c1, a.c2, a.c3}
	o := [4]*big.Rat{b.c0, b.c1, b.c2, b.c3}

	// 7 convolution coefficients, degree 0..6.
	coeffs := make([]*big.Rat, 7)
	for k := 0; k < 7; k++ {
		acc := new(big.Rat)
		for i := 0; i <= k && i < 4; i++ {
			j := k - i
			if j < 0 || j >= 4 {
				continue
			}
			acc.Add(acc, new(big.Rat).Mul(s[i], o[j]))
		}
		coeffs[k] = acc
	}

	prod := [4]*big.Rat{new(big.Rat), new(big.Rat), new(big.Rat), new(big.Rat)}
	for k, coeff := range coeffs {
		if coeff.Sign() == 0 {
			continue
		}
		poa := powersOfAlpha[k]
		for d := 0; d < 4; d++ {
			prod[d].Add(prod[d], new(big.Rat).Mul(coeff, poa[d]))
		}
	}
	return FromVector(prod[0], prod[1], prod[2], prod[3])
}

// Equal reports exact componentwise equality. K's 4-tuple representation
// is unique (the minimal polynomial of alpha has degree 4), so this is a
// sound and complete equality test — no reduction or normalization step
// could ever make two distinct 4-tuples denote the same field element.
func (e Elt) Equal(o Elt) bool {
	return e.c0.Cmp(o.c0) == 0 && e.c1.Cmp(o.c1) == 0 && e.c2.Cmp(o.c2) == 0 && e.c3.Cmp(o.c3) == 0
}

// IsZero reports whether e is the additive identity.
func (e Elt) IsZero() bool {
	return e.c0.Sign() == 0 && e.c1.Sign() == 0 && e.c2.Sign() == 0 && e.c3.Sign() == 0
}
