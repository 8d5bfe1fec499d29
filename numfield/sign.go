// SPDX-License-Identifier: MIT
package numfield

import (
	"math/big"
	"sync"

	"github.com/katalvlaran/penrose/rational"
)

// alphaIntervals is the process-wide, append-only cache of ever-tightening
// rational intervals bounding alpha, shared across all sign queries so the
// bisection work done for one caller benefits every other. alphaIntervals[0]
// is always [7/2, 4]; entry i+1 halves entry i in the direction fixed by the
// sign of the generating polynomial at its midpoint. Guarded by alphaMu so
// concurrent callers across independent tile managers can safely extend it.
var (
	alphaMu        sync.Mutex
	alphaIntervals = []rational.Interval{rational.NewRange(big.NewRat(7, 2), big.NewRat(4, 1))}
)

// generatingPoly evaluates f(x) = (x*x - 20)*x*x + 80, the minimal
// polynomial of alpha, at the rational point x.
func generatingPoly(x *big.Rat) *big.Rat {
	xx := new(big.Rat).Mul(x, x)
	t := new(big.Rat).Sub(xx, big.NewRat(20, 1))
	t.Mul(t, xx)
	return t.Add(t, big.NewRat(80, 1))
}

// alphaInterval returns the n'th cached interval bounding alpha,
// extending the shared cache as needed (bisecting based on the sign of
// the generating polynomial at each midpoint).
func alphaInterval(n int) rational.Interval {
	alphaMu.Lock()
	defer alphaMu.Unlock()

	for len(alphaIntervals) <= n {
		prev := alphaIntervals[len(alphaIntervals)-1]
		mid := prev.Midpoint()
		var next rational.Interval
		if generatingPoly(mid).Sign() > 0 {
			// f is positive past alpha (f is increasing on [7/2,4]), so
			// alpha is below mid.
			next = rational.NewRange(prev.Lo, mid)
		} else {
			next = rational.NewRange(mid, prev.Hi)
		}
		alphaIntervals = append(alphaIntervals, next)
	}
	return alphaIntervals[n]
}

// hornerInterval evaluates ((c3*a + c2)*a + c1)*a + c0 over the interval a,
// using sound interval arithmetic throughout.
func hornerInterval(c0, c1, c2, c3 *big.Rat, a rational.Interval) rational.Interval {
	acc := a.MulScalar(c3)
	acc = acc.AddScalar(c2)
	acc = acc.Mul(a)
	acc = acc.AddScalar(c1)
	acc = acc.Mul(a)
	acc = acc.AddScalar(c0)
	return acc
}

// Sign returns -1, 0, or +1 according to whether e is negative, zero, or
// positive. Exact: decided by iterated interval refinement of alpha,
// never by a floating-point approximation.
//
// Termination: every nonzero element of a number field is bounded away
// from zero (K has no zero divisors and alpha is irrational), so the
// refinement loop always eventually produces an interval whose sign is
// unambiguous.
func (e Elt) Sign() int {
	if e.IsZero() {
		return 0
	}
	for n := 0; ; n++ {
		iv := hornerInterval(e.c0, e.c1, e.c2, e.c3, alphaInterval(n))
		if iv.Lo.Sign() > 0 {
			return 1
		}
		if iv.Hi.Sign() < 0 {
			return -1
		}
	}
}

// Cmp returns -1, 0, or +1 according to whether e < o, e == o, or e > o.
func (e Elt) Cmp(o Elt) int {
	return Sub(e, o).Sign()
}

// Less, LessEqual, Greater, GreaterEqual are convenience wrappers over Cmp.
func (e Elt) Less(o Elt) bool         { return e.Cmp(o) < 0 }
func (e Elt) LessEqual(o Elt) bool    { return e.Cmp(o) <= 0 }
func (e Elt) Greater(o Elt) bool      { return e.Cmp(o) > 0 }
func (e Elt) GreaterEqual(o Elt) bool { return e.Cmp(o) >= 0 }

// ratFloor returns floor(q) as a *big.Int, for a rational q.
func ratFloor(q *big.Rat) *big.Int {
	num, den := q.Num(), q.Denom()
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 && (rem.Sign() < 0) != (den.Sign() < 0) {
		quo.Sub(quo, big.NewInt(1))
	}
	return quo
}

// Floor returns the greatest integer <= e, as a *big.Int.
//
// For a rational e this delegates to rational floor division. Otherwise
// (e irrational, hence non-integer) it refines alpha-intervals until
// floor(lo) == floor(hi), which must eventually happen since e is strictly
// between two consecutive integers.
func (e Elt) Floor() *big.Int {
	if q, ok := e.RatValue(); ok {
		return ratFloor(q)
	}
	for n := 0; ; n++ {
		iv := hornerInterval(e.c0, e.c1, e.c2, e.c3, alphaInterval(n))
		fl := ratFloor(iv.Lo)
		fh := ratFloor(iv.Hi)
		if fl.Cmp(fh) == 0 {
			return fl
		}
	}
}

// Ceil returns the least integer >= e, as a *big.Int.
func (e Elt) Ceil() *big.Int {
	if q, ok := e.RatValue(); ok {
		fl := ratFloor(q)
		if new(big.Rat).SetInt(fl).Cmp(q) == 0 {
			return fl
		}
		return new(big.Int).Add(fl, big.NewInt(1))
	}
	// Irrational, hence not an integer: ceil = floor + 1.
	return new(big.Int).Add(e.Floor(), big.NewInt(1))
}

// Trunc returns the integer part of e, truncated toward zero.
func (e Elt) Trunc() *big.Int {
	fl := e.Floor()
	if e.Sign() >= 0 {
		return fl
	}
	// Negative and non-integer: truncation rounds toward zero, one past floor.
	if q, ok := e.RatValue(); ok && new(big.Rat).SetInt(fl).Cmp(q) == 0 {
		return fl // exact negative integer
	}
	return new(big.Int).Add(fl, big.NewInt(1))
}
