package numfield_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/penrose/numfield"
	"github.com/stretchr/testify/assert"
)

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

func TestAlphaPowers(t *testing.T) {
	alpha2 := numfield.Mul(numfield.Alpha, numfield.Alpha)
	assert.True(t, alpha2.Equal(numfield.FromVector(rat(0, 1), rat(0, 1), rat(1, 1), rat(0, 1))), "alpha^2 = (0,0,1,0), got %v", alpha2)

	alpha3 := numfield.Mul(alpha2, numfield.Alpha)
	assert.True(t, alpha3.Equal(numfield.FromVector(rat(0, 1), rat(0, 1), rat(0, 1), rat(1, 1))), "alpha^3 = (0,0,0,1), got %v", alpha3)

	alpha4 := numfield.Mul(alpha3, numfield.Alpha)
	assert.True(t, alpha4.Equal(numfield.FromVector(rat(-80, 1), rat(0, 1), rat(20, 1), rat(0, 1))), "alpha^4 = (-80,0,20,0), got %v", alpha4)

	alpha5 := numfield.Mul(alpha4, numfield.Alpha)
	assert.True(t, alpha5.Equal(numfield.FromVector(rat(0, 1), rat(-80, 1), rat(0, 1), rat(20, 1))), "alpha^5 = (0,-80,0,20), got %v", alpha5)
}

func TestPhiIdentities(t *testing.T) {
	// phi*(phi-1) == 1
	prod := numfield.Mul(numfield.Phi, numfield.InvPhi)
	assert.True(t, prod.Equal(numfield.One))

	// phi^2 == phi + 1
	phi2 := numfield.Mul(numfield.Phi, numfield.Phi)
	assert.True(t, phi2.Equal(numfield.Add(numfield.Phi, numfield.One)))

	// sqrt5 * sqrt5 == 5
	five := numfield.Mul(numfield.Sqrt5, numfield.Sqrt5)
	assert.True(t, five.Equal(numfield.FromInt(5)))

	// (1+sqrt5)/2 == phi
	onePlusSqrt5 := numfield.Add(numfield.One, numfield.Sqrt5)
	half := onePlusSqrt5.MulRat(rat(1, 2))
	assert.True(t, half.Equal(numfield.Phi))
}

func TestFieldAxioms(t *testing.T) {
	a := numfield.FromVector(rat(1, 3), rat(-2, 1), rat(5, 7), rat(0, 1))
	b := numfield.FromVector(rat(-1, 2), rat(4, 1), rat(0, 1), rat(3, 1))
	c := numfield.FromVector(rat(2, 1), rat(1, 1), rat(-1, 1), rat(1, 5))

	assert.True(t, numfield.Add(a, b).Equal(numfield.Add(b, a)), "addition commutes")
	assert.True(t, numfield.Mul(a, b).Equal(numfield.Mul(b, a)), "multiplication commutes")
	assert.True(t, numfield.Add(numfield.Add(a, b), c).Equal(numfield.Add(a, numfield.Add(b, c))), "addition associates")
	assert.True(t, numfield.Mul(numfield.Mul(a, b), c).Equal(numfield.Mul(a, numfield.Mul(b, c))), "multiplication associates")

	lhs := numfield.Mul(a, numfield.Add(b, c))
	rhs := numfield.Add(numfield.Mul(a, b), numfield.Mul(a, c))
	assert.True(t, lhs.Equal(rhs), "distributes")
}

func TestSignConcrete(t *testing.T) {
	// sgn(Y(-864/227, 1, 0, 0)) = -1 because 864/227 > alpha.
	y1 := numfield.FromVector(rat(-864, 227), rat(1, 1), rat(0, 1), rat(0, 1))
	assert.Equal(t, -1, y1.Sign())

	// sgn(Y(-863/227, 1, 0, 0)) = +1 because 863/227 < alpha.
	y2 := numfield.FromVector(rat(-863, 227), rat(1, 1), rat(0, 1), rat(0, 1))
	assert.Equal(t, 1, y2.Sign())
}

func TestSignAgainstSubtraction(t *testing.T) {
	lhs := numfield.FromVector(rat(0, 1), rat(1, 1), rat(0, 1), rat(0, 1))
	a := numfield.Sub(lhs, numfield.FromRat(rat(863, 227)))
	assert.Equal(t, 1, a.Sign())

	b := numfield.Sub(lhs, numfield.FromRat(rat(864, 227)))
	assert.Equal(t, -1, b.Sign())
}

func TestSignConsistentWithCompareAndFloat(t *testing.T) {
	vals := []numfield.Elt{
		numfield.FromInt(-3),
		numfield.FromRat(rat(-1, 2)),
		numfield.Zero(),
		numfield.FromRat(rat(1, 3)),
		numfield.Alpha,
		numfield.Phi,
		numfield.Sub(numfield.Alpha, numfield.FromInt(4)),
	}
	for _, v := range vals {
		switch v.Sign() {
		case 1:
			assert.True(t, v.Greater(numfield.Zero()))
			assert.Greater(t, v.Float(), 0.0)
		case -1:
			assert.True(t, v.Less(numfield.Zero()))
			assert.Less(t, v.Float(), 0.0)
		case 0:
			assert.True(t, v.Equal(numfield.Zero()))
			assert.Equal(t, 0.0, v.Float())
		}
	}
}

func TestFloorCeilOnRationals(t *testing.T) {
	cases := []struct {
		num, den int64
		wantFl   int64
		wantCl   int64
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{4, 1, 4, 4},
		{0, 1, 0, 0},
	}
	for _, c := range cases {
		e := numfield.FromRat(rat(c.num, c.den))
		assert.Equal(t, big.NewInt(c.wantFl), e.Floor(), "floor(%d/%d)", c.num, c.den)
		assert.Equal(t, big.NewInt(c.wantCl), e.Ceil(), "ceil(%d/%d)", c.num, c.den)
	}
}

func TestFloorCeilOnAlpha(t *testing.T) {
	// alpha is strictly between 3 and 4 (and in fact in (7/2, 4)).
	assert.Equal(t, big.NewInt(3), numfield.Alpha.Floor())
	assert.Equal(t, big.NewInt(4), numfield.Alpha.Ceil())
}

func TestStringNeverPanics(t *testing.T) {
	vals := []numfield.Elt{numfield.Zero(), numfield.One, numfield.Alpha, numfield.Phi, numfield.FromRat(rat(-5, 3))}
	for _, v := range vals {
		assert.NotPanics(t, func() { _ = v.String() })
	}
	assert.Equal(t, "0", numfield.Zero().String())
}
