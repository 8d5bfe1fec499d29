// SPDX-License-Identifier: MIT
package rational

import (
	"fmt"
	"math/big"
)

// Interval is a closed interval [Lo, Hi] of exact rationals, Lo <= Hi.
// Interval values are treated as immutable: every arithmetic method
// returns a new Interval and never mutates its receiver or argument.
type Interval struct {
	Lo, Hi *big.Rat
}

// New builds an Interval around a single rational (a degenerate,
// zero-width interval). It never fails.
func New(q *big.Rat) Interval {
	v := new(big.Rat).Set(q)
	return Interval{Lo: v, Hi: new(big.Rat).Set(v)}
}

// NewRange builds the Interval [lo, hi].
//
// Panics if lo > hi: a caller constructing an interval directly from two
// endpoints it computed itself is expected to know their order; this is a
// program-invariant violation, not a caller-input error (see NewChecked
// for the checked variant used at trust boundaries).
func NewRange(lo, hi *big.Rat) Interval {
	if lo.Cmp(hi) > 0 {
		panic("rational: NewRange: lo > hi")
	}
	return Interval{Lo: new(big.Rat).Set(lo), Hi: new(big.Rat).Set(hi)}
}

// NewChecked builds the Interval [lo, hi], returning ErrEmptyInterval
// instead of panicking when lo > hi. Use this at any boundary where lo/hi
// derive from caller-supplied or externally-sourced values.
func NewChecked(lo, hi *big.Rat) (Interval, error) {
	if lo.Cmp(hi) > 0 {
		return Interval{}, ErrEmptyInterval
	}
	return NewRange(lo, hi), nil
}

// Midpoint returns (Lo+Hi)/2.
func (iv Interval) Midpoint() *big.Rat {
	sum := new(big.Rat).Add(iv.Lo, iv.Hi)
	return sum.Quo(sum, big.NewRat(2, 1))
}

// Width returns Hi - Lo, always >= 0.
func (iv Interval) Width() *big.Rat {
	return new(big.Rat).Sub(iv.Hi, iv.Lo)
}

// Contains reports whether other is entirely within iv (inclusive).
func (iv Interval) Contains(other Interval) bool {
	return iv.Lo.Cmp(other.Lo) <= 0 && iv.Hi.Cmp(other.Hi) >= 0
}

// Equal reports exact equality of both endpoints.
func (iv Interval) Equal(other Interval) bool {
	return iv.Lo.Cmp(other.Lo) == 0 && iv.Hi.Cmp(other.Hi) == 0
}

// Add returns an interval containing every x+y, x in iv, y in other.
func (iv Interval) Add(other Interval) Interval {
	return Interval{
		Lo: new(big.Rat).Add(iv.Lo, other.Lo),
		Hi: new(big.Rat).Add(iv.Hi, other.Hi),
	}
}

// Neg returns -iv, i.e. {-x : x in iv}.
func (iv Interval) Neg() Interval {
	return Interval{
		Lo: new(big.Rat).Neg(iv.Hi),
		Hi: new(big.Rat).Neg(iv.Lo),
	}
}

// Sub returns an interval containing every x-y, x in iv, y in other.
func (iv Interval) Sub(other Interval) Interval {
	return iv.Add(other.Neg())
}

// Mul returns an interval containing every x*y, x in iv, y in other, via
// the standard min/max-of-four-corner-products rule. This is always sound;
// it is tight whenever at least one of the two intervals has a fixed sign.
func (iv Interval) Mul(other Interval) Interval {
	a := new(big.Rat).Mul(iv.Lo, other.Lo)
	b := new(big.Rat).Mul(iv.Lo, other.Hi)
	c := new(big.Rat).Mul(iv.Hi, other.Lo)
	d := new(big.Rat).Mul(iv.Hi, other.Hi)

	lo := a
	for _, x := range []*big.Rat{b, c, d} {
		if x.Cmp(lo) < 0 {
			lo = x
		}
	}
	hi := a
	for _, x := range []*big.Rat{b, c, d} {
		if x.Cmp(hi) > 0 {
			hi = x
		}
	}
	return Interval{Lo: new(big.Rat).Set(lo), Hi: new(big.Rat).Set(hi)}
}

// MulScalar returns an interval containing every x*s, x in iv, for a fixed
// rational scalar s. Cheaper than Mul(New(s)) and used for the leading
// Horner step of numfield's sign evaluation.
func (iv Interval) MulScalar(s *big.Rat) Interval {
	lo := new(big.Rat).Mul(iv.Lo, s)
	hi := new(big.Rat).Mul(iv.Hi, s)
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return Interval{Lo: lo, Hi: hi}
}

// AddScalar returns an interval containing every x+s, x in iv.
func (iv Interval) AddScalar(s *big.Rat) Interval {
	return Interval{
		Lo: new(big.Rat).Add(iv.Lo, s),
		Hi: new(big.Rat).Add(iv.Hi, s),
	}
}

// String renders iv as "[lo, hi]" using big.Rat's RatString.
func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s]", iv.Lo.RatString(), iv.Hi.RatString())
}
