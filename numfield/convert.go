// SPDX-License-Identifier: MIT
package numfield

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// floatPreAlpha, floatAlpha and floatPowersOfAlpha4 are double-precision
// approximations of alpha^2, alpha and alpha^0..alpha^3, computed once,
// used only by Float. No geometric decision may consume this cast; Sign,
// Cmp, Floor, Ceil, and Trunc (sign.go) never reference them.
var (
	floatPreAlpha       = 10.0 + 2.0*math.Sqrt(5.0)
	floatAlpha          = math.Sqrt(floatPreAlpha)
	floatPowersOfAlpha4 = [4]float64{1.0, floatAlpha, floatPreAlpha, floatAlpha * floatPreAlpha}
)

// Float casts e to a float64 for display purposes only.
func (e Elt) Float() float64 {
	c0, _ := e.c0.Float64()
	c1, _ := e.c1.Float64()
	c2, _ := e.c2.Float64()
	c3, _ := e.c3.Float64()
	coeffs := [4]float64{c0, c1, c2, c3}
	var sum float64
	for i, c := range coeffs {
		sum += c * floatPowersOfAlpha4[i]
	}
	return sum
}

var displayPowerSuffix = [4]string{"", "*α", "*α²", "*α³"}

// String renders the nonzero alpha-power terms of e, e.g. "3/2 + 1*α -
// 1/4*α²", falling back to "0" for the zero element. For debugging
// and test failure messages only; never consulted by any arithmetic or
// predicate in this module.
func (e Elt) String() string {
	v := e.vec()
	var sb strings.Builder
	for i, c := range v {
		if c.Sign() == 0 {
			continue
		}
		term := new(big.Rat).Abs(c).RatString() + displayPowerSuffix[i]
		switch {
		case sb.Len() == 0 && c.Sign() < 0:
			sb.WriteString("-" + term)
		case sb.Len() == 0:
			sb.WriteString(term)
		case c.Sign() < 0:
			sb.WriteString(" - " + term)
		default:
			sb.WriteString(" + " + term)
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// GoString gives a copy/paste-able constructor form, mirroring the
// original prototype's __repr__.
func (e Elt) GoString() string {
	v := e.vec()
	return fmt.Sprintf("numfield.FromVector(%s, %s, %s, %s)", v[0].RatString(), v[1].RatString(), v[2].RatString(), v[3].RatString())
}
