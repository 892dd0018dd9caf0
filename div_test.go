package bigint

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestIntQuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, v, q, r Int
	}{
		{u: i64(1), v: i64(2), q: i64(0), r: i64(1)},
		{u: i64(10), v: i64(3), q: i64(3), r: i64(1)},
		{u: i64(-10), v: i64(3), q: i64(-3), r: i64(-1)},
		{u: i64(10), v: i64(-3), q: i64(-3), r: i64(1)},
		{u: i64(-10), v: i64(-3), q: i64(3), r: i64(-1)},
		{u: i64(-1), v: i64(2), q: i64(0), r: i64(-1)},
		{u: i64(0), v: i64(-7), q: i64(0), r: i64(0)},
		{u: ints("1000000000000000000000"), v: ints("999999999999"), q: ints("1000000000"), r: ints("1000000000")},
		{u: ints("1000000000000000000000000"), v: ints("999999999999"), q: ints("1000000000001"), r: i64(1)},
		{u: ints("-1000000000000000000000000"), v: ints("999999999999"), q: ints("-1000000000001"), r: i64(-1)},

		// Divisor wider than one word:
		{u: ints("0x100000000000000000000"), v: ints("0x100000000"), q: ints("0x1000000000000"), r: i64(0)},
		{u: ints("0xFFFFFFFFFFFFFFFFFFFFFFFF"), v: ints("0xFFFFFFFFFFFFFFFF"), q: ints("0x100000000"), r: ints("0xFFFFFFFF")},
		{u: ints("0xFFFFFFFFFFFFFFFF"), v: ints("0xFFFFFFFFFFFFFFFF"), q: i64(1), r: i64(0)},
		{u: ints("0xFFFFFFFFFFFFFFFE"), v: ints("0xFFFFFFFFFFFFFFFF"), q: i64(0), r: ints("0xFFFFFFFFFFFFFFFE")},

		// Top divisor digit of 0x80000000 is already normalised:
		{u: ints("0x80000000000000000000000000000000"), v: ints("0x8000000000000001"), q: ints("0xFFFFFFFFFFFFFFFE"), r: ints("0x2")},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.v, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			q, r := tc.u.QuoRem(tc.v)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
			tt.MustEqual(tc.q, tc.u.Quo(tc.v))
			tt.MustEqual(tc.r, tc.u.Rem(tc.v))

			bq, br := new(big.Int).QuoRem(tc.u.AsBigInt(), tc.v.AsBigInt(), new(big.Int))
			tt.MustEqual(bq.String(), q.String())
			tt.MustEqual(br.String(), r.String())
		})
	}
}

func TestIntDivideByZero(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func()
	}{
		{"quo", func() { i64(1).Quo(i64(0)) }},
		{"quo-zero", func() { i64(0).Quo(i64(0)) }},
		{"rem", func() { ints("0x123456789ABCDEF0123").Rem(Int{}) }},
		{"quorem", func() { i64(-5).QuoRem(i64(0)) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(ErrDivisionByZero, mustPanicWith(tc.fn))
		})
	}
}

// Every sign combination must satisfy x == q*y + r with |r| < |y| and r
// taking the sign of x.
func TestIntDivisionLaw(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(globalRNG.Int63()))

	for i := 0; i < 2000; i++ {
		x := IntFromBigInt(randomBigInt(rng, 1+rng.Intn(40)))
		y := IntFromBigInt(randomBigInt(rng, 1+rng.Intn(20)))
		if y.IsZero() {
			continue
		}

		q, r := x.QuoRem(y)
		tt.MustAssert(q.Mul(y).Add(r).Equal(x), "%s != %s*%s + %s", x, q, y, r)
		tt.MustAssert(r.Abs().LessThan(y.Abs()), "|%s| >= |%s|", r, y)
		tt.MustAssert(r.IsZero() || r.Sign() == x.Sign(), "sign of %s does not follow %s", r, x)
	}
}

func TestDivKnuth(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(globalRNG.Int63()))

	for i := 0; i < 3000; i++ {
		vw := 2 + rng.Intn(20)
		uw := vw + rng.Intn(30)
		u, v := randNat(rng, uw), randNat(rng, vw)

		// Divisors with a small or large top digit push the normalisation
		// factor to its extremes:
		switch i % 4 {
		case 0:
			v[len(v)-1] = 1
		case 1:
			v[len(v)-1] = maxWord
		case 2:
			u = allOnes(uw)
		}
		if natCmp(u, v) < 0 {
			continue
		}

		expected := new(big.Int).Quo(bigFromNat(u), bigFromNat(v))
		tt.MustEqual(expected.String(), bigFromNat(divKnuth(u, v)).String(), "failed at index %d", i)
	}
}

// Remainders that land just below a multiple of the divisor force the trial
// quotient digit to be corrected.
func TestDivKnuthCorrection(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, tc := range []struct {
		u, v string
	}{
		{"0x7FFFFFFF800000010000000000000000", "0x800000000000000000000003"},
		{"0x80000000000000000000000000000000", "0x80000000FFFFFFFFFFFFFFFF"},
		{"0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", "0x100000000FFFFFFFF"},
		{"0x1000000000000000000000000", "0x10000000000000001"},
		{"0x3FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", "0x8000000000000001FFFFFFFF"},
	} {
		u, v := bigs(tc.u), bigs(tc.v)
		for _, delta := range []int64{-1, 0, 1} {
			ud := new(big.Int).Add(u, big.NewInt(delta))
			q := IntFromBigInt(ud).Quo(IntFromBigInt(v))
			tt.MustOK(checkEqualInt(q, new(big.Int).Quo(ud, v)))
		}
	}
}
