// SPDX-License-Identifier: MIT
package tilemgr

import (
	"math"
	"math/big"

	"github.com/katalvlaran/penrose/numfield"
)

// ApproxInvSqrt returns a rational q with 0.99 <= q^2*x <= 1.01, for a
// positive K-element x. It seeds from a float64 approximation of x, then
// runs Newton's method for the inverse square root entirely in big.Rat
// arithmetic against that seed, and checks the result against the true x
// using exact K-field comparison (numfield.Mul, Sign) so the accepted
// tolerance is never itself approximate.
//
// Used only for sizing the tile manager's grid cells; never consulted by
// any geometric predicate.
func ApproxInvSqrt(x numfield.Elt) *big.Rat {
	f := x.Float()
	if f <= 0 {
		return big.NewRat(1, 1)
	}
	xApprox := new(big.Rat).SetFloat64(1.0 / math.Sqrt(f))
	if xApprox == nil {
		xApprox = big.NewRat(1, 1)
	}
	xRat := new(big.Rat).SetFloat64(f)
	if xRat == nil {
		xRat = big.NewRat(1, 1)
	}

	q := xApprox
	lowBound := numfield.FromRat(big.NewRat(99, 100))
	highBound := numfield.FromRat(big.NewRat(101, 100))

	const maxIterations = 30
	for i := 0; i < maxIterations; i++ {
		qElt := numfield.FromRat(q)
		check := numfield.Mul(numfield.Mul(qElt, qElt), x)
		if numfield.Sub(check, lowBound).Sign() >= 0 && numfield.Sub(highBound, check).Sign() >= 0 {
			return q
		}

		// Newton step for f(q) = 1/q^2 - xRat: q_{n+1} = q*(3 - xRat*q^2)/2.
		q2 := new(big.Rat).Mul(q, q)
		xq2 := new(big.Rat).Mul(xRat, q2)
		three := big.NewRat(3, 1)
		factor := new(big.Rat).Sub(three, xq2)
		next := new(big.Rat).Mul(q, factor)
		next.Quo(next, big.NewRat(2, 1))
		q = next
	}
	return q
}
